package models

// TantiemeType selects the common-parts clause a share refers to.
type TantiemeType string

const (
	TantiemeGeneral        TantiemeType = "general"
	TantiemeSoilAndGeneral TantiemeType = "soil-and-general"
	TantiemeCustom         TantiemeType = "custom"
)

// Tantieme is a fractional share of the common parts of a co-owned building.
// Numerator and denominator arrive from forms as text.
type Tantieme struct {
	Numerator   string       `json:"numerator" bson:"numerator"`
	Denominator string       `json:"denominator" bson:"denominator"`
	Type        TantiemeType `json:"type" bson:"type"`
	CustomLabel string       `json:"custom_label,omitempty" bson:"custom_label,omitempty"`
}

// CarrezGuarantor tells who vouches for the Carrez surface of a lot.
type CarrezGuarantor string

const (
	CarrezByDiagnostician CarrezGuarantor = "diagnostician"
	CarrezByOwner         CarrezGuarantor = "owner"
)

// Lot is one private lot of a co-owned building.
type Lot struct {
	Number          string          `json:"number"`
	Description     string          `json:"description"`
	Tantiemes       []Tantieme      `json:"tantiemes"`
	CarrezSurface   string          `json:"carrez_surface,omitempty"`
	CarrezGuarantor CarrezGuarantor `json:"carrez_guarantor,omitempty"`
}

// CadastralSection identifies one parcel of the land register. Surface is in centiares.
type CadastralSection struct {
	Section   string `json:"section"`
	Number    string `json:"number"`
	PlaceName string `json:"place_name"`
	Surface   string `json:"surface"`
}

// PropertyType is the kind of good under mandate.
type PropertyType string

const (
	PropertyApartment  PropertyType = "appartement"
	PropertyHouse      PropertyType = "maison"
	PropertyLand       PropertyType = "terrain"
	PropertyCommercial PropertyType = "local-commercial"
	PropertyParking    PropertyType = "parking"
)

// OccupationStatus describes who occupies the property at signature.
type OccupationStatus string

const (
	OccupiedBySeller OccupationStatus = "occupe-vendeur"
	OccupiedByTenant OccupationStatus = "loue"
	OccupationFree   OccupationStatus = "libre"
)

// DPEStatus is the state of the energy-performance diagnostic.
type DPEStatus string

const (
	DPEDone       DPEStatus = "realise"
	DPEInProgress DPEStatus = "en-cours"
	DPENotDone    DPEStatus = "non-realise"
	DPEExempt     DPEStatus = "non-soumis"
)

// PropertyCriteria are descriptive criteria stored as raw form values.
// Unknown values are rendered verbatim.
type PropertyCriteria struct {
	Heating       string `json:"heating,omitempty" bson:"heating,omitempty"`
	HeatingEnergy string `json:"heating_energy,omitempty" bson:"heating_energy,omitempty"`
	Exposure      string `json:"exposure,omitempty" bson:"exposure,omitempty"`
	Condition     string `json:"condition,omitempty" bson:"condition,omitempty"`
	Elevator      string `json:"elevator,omitempty" bson:"elevator,omitempty"`
	Balcony       string `json:"balcony,omitempty" bson:"balcony,omitempty"`
	Terrace       string `json:"terrace,omitempty" bson:"terrace,omitempty"`
	Garden        string `json:"garden,omitempty" bson:"garden,omitempty"`
	Parking       string `json:"parking,omitempty" bson:"parking,omitempty"`
	Cellar        string `json:"cellar,omitempty" bson:"cellar,omitempty"`
	Pool          string `json:"pool,omitempty" bson:"pool,omitempty"`
	Furnished     string `json:"furnished,omitempty" bson:"furnished,omitempty"`
}
