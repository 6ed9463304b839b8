package documents

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mamadbah2/agence/internal/diagnostics"
	"github.com/mamadbah2/agence/internal/domain/models"
	"github.com/mamadbah2/agence/internal/legaltext"
)

// cadastralSlots is the fixed number of parcel rows in the templates.
const cadastralSlots = 3

const (
	offerValidityDays   = 10
	compromiseDelayDays = 15
)

// Assembler turns a mandate into the field maps merged into each document template.
// It holds only immutable lookups and is safe for concurrent use.
type Assembler struct {
	agents      AgentDirectory
	diagnostics *diagnostics.Engine
}

// NewAssembler wires an assembler.
func NewAssembler(agents AgentDirectory, engine *diagnostics.Engine) *Assembler {
	if engine == nil {
		engine = diagnostics.NewEngine()
	}
	return &Assembler{agents: agents, diagnostics: engine}
}

// Validate checks the identity data every document requires.
func Validate(m models.Mandate) error {
	if strings.TrimSpace(m.Number) == "" {
		return invalid("mandate_number", "mandate number is required")
	}
	if len(m.Sellers) == 0 {
		return invalid("sellers", "at least one seller is required")
	}
	return nil
}

// Assemble dispatches req to the assembler of its document kind.
func (a *Assembler) Assemble(m models.Mandate, req models.DocumentRequest) (models.FieldMap, error) {
	switch req.Kind {
	case models.DocumentMandate:
		return a.Mandate(m)
	case models.DocumentCompromise:
		return a.Compromise(m, req.OfferIndex)
	case models.DocumentPurchaseOffer:
		return a.PurchaseOffer(m, req.OfferIndex)
	case models.DocumentKeyReceipt:
		return a.KeyReceipt(m)
	case models.DocumentPriceAmendment:
		return a.PriceAmendment(m, req.AmendmentIndex)
	default:
		return nil, ErrUnknownKind
	}
}

// Mandate builds the field map of the sale mandate.
func (a *Assembler) Mandate(m models.Mandate) (models.FieldMap, error) {
	if err := Validate(m); err != nil {
		return nil, err
	}

	fields := a.common(m)
	fields["date_mandat_longue"] = legaltext.LongDate(m.Date)
	fields["type_mandat"] = legaltext.MandateTypeLabel(m.Type)
	fields["objet_mandat"] = legaltext.ObjectText(m.Type)
	fields["duree_mandat"] = legaltext.DurationText(m.Type)
	fields["engagements"] = legaltext.EngagementsText(m.Type)
	fields["vendeurs"] = legaltext.ComposeParties(models.PropagateCouple(m.Sellers))
	fields["occupation"] = legaltext.OccupationStatusText(m.OccupationStatus)
	fields["dpe"] = legaltext.DPEStatusText(m.DPEStatus)

	first := m.Sellers[0]
	fields["vendeur_telephone"] = first.Phone
	fields["vendeur_email"] = first.Email

	a.priceFields(fields, m)
	for k, v := range legaltext.CriteriaFields(m.Criteria) {
		fields[k] = v
	}
	a.diagnosticFields(fields, m)

	return fields, nil
}

// common holds the identification, property and agent fields shared by every document.
func (a *Assembler) common(m models.Mandate) models.FieldMap {
	fields := models.FieldMap{
		"numero_mandat":       m.Number,
		"date_mandat":         legaltext.FormatDate(m.Date),
		"vendeurs_noms":       legaltext.PartyNames(m.Sellers),
		"adresse_bien":        m.PropertyAddress,
		"type_bien":           propertyTypeLabel(m.PropertyType),
		"adresse_copropriete": m.CoPropertyAddress,
		"designation":         PropertyDescription(m),
		"quote_part":          firstTantieme(m.Lots),
	}

	agent := a.agents.Lookup(m.CommercialAgent)
	fields["agent_nom"] = agent.Name
	fields["agent_telephone"] = agent.Phone
	fields["agent_email"] = agent.Email

	cadastralFields(fields, m.CadastralSections)
	return fields
}

func (a *Assembler) priceFields(fields models.FieldMap, m models.Mandate) {
	fees := m.Fees
	if fees.HT.IsZero() && !fees.TTC.IsZero() {
		fees = DeriveFees(fees.TTC)
	}

	setMoney(fields, "prix_net", dec(m.NetPrice))
	setMoney(fields, "honoraires_ttc", dec(fees.TTC))
	setMoney(fields, "honoraires_ht", dec(fees.HT))
	setMoney(fields, "prix_fai", PriceWithFees(m.NetPrice, fees.TTC))
	fields["charge_honoraires"] = legaltext.FeesClause(m.FeePayer, fees.TTC.Float(), m.NetPrice.Float())
	fields["charge_honoraires_court"] = legaltext.FeesPayerText(m.FeePayer)
}

func (a *Assembler) diagnosticFields(fields models.FieldMap, m models.Mandate) {
	result := a.diagnostics.Evaluate(diagnostics.FromMandate(m))
	names := make([]string, 0, result.RequiredCount)
	for _, k := range result.Required() {
		names = append(names, "- "+diagnostics.Label(k))
	}
	fields["diagnostics_obligatoires"] = strings.Join(names, "\n")
	fields["diagnostics_nombre"] = result.RequiredCount
	setMoney(fields, "diagnostics_prix", decimal.NewFromInt(int64(result.BundlePrice)))
}

// PropertyDescription is the concatenated lot descriptions for a co-owned property, with
// the Carrez disclaimer right after the first lot, or the official designation otherwise.
func PropertyDescription(m models.Mandate) string {
	if !m.InCoproperty || len(m.Lots) == 0 {
		return m.OfficialDesignation
	}

	blocks := make([]string, 0, len(m.Lots)+1)
	for i, lot := range m.Lots {
		blocks = append(blocks, formatLot(lot))
		if i == 0 {
			if carrez := legaltext.CarrezText(lot.CarrezSurface, lot.CarrezGuarantor); carrez != "" {
				blocks = append(blocks, carrez)
			}
		}
	}
	return strings.Join(blocks, "\n\n")
}

func formatLot(lot models.Lot) string {
	head := "Lot numéro " + lot.Number
	if n := legaltext.ParseInt(lot.Number); n > 0 {
		head += " (" + legaltext.Words(n) + ")"
	}
	lines := []string{head + " :"}
	if d := strings.TrimSpace(lot.Description); d != "" {
		lines = append(lines, d)
	}
	if t := legaltext.FormatLotTantiemes(lot.Tantiemes); t != "" {
		lines = append(lines, t)
	}
	return strings.Join(lines, "\n")
}

// firstTantieme surfaces only the first share of the first lot.
func firstTantieme(lots []models.Lot) string {
	if len(lots) == 0 || len(lots[0].Tantiemes) == 0 {
		return ""
	}
	t := lots[0].Tantiemes[0]
	return legaltext.FormatTantieme(t.Numerator, t.Denominator, t.Type, t.CustomLabel)
}

// cadastralFields fills exactly cadastralSlots fixed rows plus a free-form list.
func cadastralFields(fields models.FieldMap, sections []models.CadastralSection) {
	for i := 0; i < cadastralSlots; i++ {
		var s models.CadastralSection
		if i < len(sections) {
			s = sections[i]
		}
		suffix := "_" + strconv.Itoa(i+1)
		fields["cadastre_section"+suffix] = s.Section
		fields["cadastre_numero"+suffix] = s.Number
		fields["cadastre_lieudit"+suffix] = s.PlaceName
		fields["cadastre_surface"+suffix] = ""
		if s.Surface != "" {
			fields["cadastre_surface"+suffix] = legaltext.FormatSurface(legaltext.ParseInt(s.Surface))
		}
	}
	fields["cadastre_liste"] = legaltext.FormatCadastralList(sections)
	fields["cadastre_surface_totale"] = legaltext.FormatSurface(legaltext.TotalSurface(sections))
}

func propertyTypeLabel(t models.PropertyType) string {
	switch t {
	case models.PropertyApartment:
		return "Appartement"
	case models.PropertyHouse:
		return "Maison"
	case models.PropertyLand:
		return "Terrain"
	case models.PropertyCommercial:
		return "Local commercial"
	case models.PropertyParking:
		return "Parking"
	default:
		return string(t)
	}
}
