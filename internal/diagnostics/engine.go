// Package diagnostics computes which technical diagnostics a sale legally requires and
// prices the bundle.
package diagnostics

import (
	"time"

	"github.com/mamadbah2/agence/internal/domain/models"
)

// Kind names one diagnostic.
type Kind string

const (
	DPE        Kind = "dpe"
	Carrez     Kind = "carrez"
	Electrical Kind = "electricite"
	Gas        Kind = "gaz"
	Asbestos   Kind = "amiante"
	Lead       Kind = "plomb"
)

// Kinds lists every diagnostic in document order.
var Kinds = []Kind{DPE, Carrez, Electrical, Gas, Asbestos, Lead}

var labels = map[Kind]string{
	DPE:        "Diagnostic de performance énergétique",
	Carrez:     "Mesurage loi Carrez",
	Electrical: "État de l'installation intérieure d'électricité",
	Gas:        "État de l'installation intérieure de gaz",
	Asbestos:   "Constat amiante",
	Lead:       "Constat de risque d'exposition au plomb",
}

// Label returns the French name of a diagnostic.
func Label(k Kind) string {
	return labels[k]
}

// Bundle prices indexed by required count (index 0 unused).
var (
	coPropertyPrices   = [...]int{0, 90, 150, 210, 270, 320, 370}
	monoPropertyPrices = [...]int{0, 110, 180, 250, 310, 360, 420}
)

const (
	installationAgeLimit = 15
	asbestosCutoffYear   = 1998
	leadCutoffYear       = 1949
)

// Input describes the property being diagnosed. ConstructionYear 0 means unknown.
type Input struct {
	PropertyType     models.PropertyType `json:"property_type"`
	InCoproperty     bool                `json:"in_coproperty"`
	ConstructionYear int                 `json:"construction_year"`
	HasGas           bool                `json:"has_gas"`
}

// Result lists the required diagnostics and the bundle price in euros.
type Result struct {
	Flags         map[Kind]bool `json:"flags"`
	RequiredCount int           `json:"required_count"`
	BundlePrice   int           `json:"bundle_price"`
}

// Required returns the required kinds in document order.
func (r Result) Required() []Kind {
	out := make([]Kind, 0, r.RequiredCount)
	for _, k := range Kinds {
		if r.Flags[k] {
			out = append(out, k)
		}
	}
	return out
}

// Engine evaluates requirements against an injectable clock.
type Engine struct {
	now func() time.Time
}

// NewEngine builds an engine using the wall clock.
func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// NewEngineAt builds an engine whose current year is taken from now.
func NewEngineAt(now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{now: now}
}

// Evaluate computes the required diagnostics for in.
func (e *Engine) Evaluate(in Input) Result {
	currentYear := e.now().Year()
	known := in.ConstructionYear > 0

	electrical := known && currentYear-in.ConstructionYear > installationAgeLimit
	flags := map[Kind]bool{
		DPE:        true,
		Carrez:     in.InCoproperty,
		Electrical: electrical,
		Gas:        electrical && in.HasGas,
		Asbestos:   known && in.ConstructionYear < asbestosCutoffYear,
		Lead:       known && in.ConstructionYear < leadCutoffYear,
	}

	count := 0
	for _, required := range flags {
		if required {
			count++
		}
	}

	return Result{
		Flags:         flags,
		RequiredCount: count,
		BundlePrice:   BundlePrice(count, in.InCoproperty),
	}
}

// BundlePrice looks up the price of a bundle of count diagnostics. Counts outside the
// table price at 0.
func BundlePrice(count int, inCoproperty bool) int {
	table := monoPropertyPrices[:]
	if inCoproperty {
		table = coPropertyPrices[:]
	}
	if count <= 0 || count >= len(table) {
		return 0
	}
	return table[count]
}

// FromMandate derives the engine input from a mandate.
func FromMandate(m models.Mandate) Input {
	return Input{
		PropertyType:     m.PropertyType,
		InCoproperty:     m.InCoproperty,
		ConstructionYear: m.ConstructionYear,
		HasGas:           m.HasGas,
	}
}
