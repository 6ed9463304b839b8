package models

// MandateType governs exclusivity and termination terms.
type MandateType string

const (
	MandateSimple        MandateType = "simple"
	MandateExclusive     MandateType = "exclusive"
	MandateSemiExclusive MandateType = "semi-exclusive"
)

// FeePayer is the party bearing the agency fees.
type FeePayer string

const (
	FeesPaidBySeller FeePayer = "seller"
	FeesPaidByBuyer  FeePayer = "buyer"
)

// Fees are the agency fees, all taxes included (TTC) and excluding VAT (HT).
type Fees struct {
	TTC Amount `json:"ttc" bson:"ttc"`
	HT  Amount `json:"ht" bson:"ht"`
}

// KeyCustody records keys handed over to the agency.
type KeyCustody struct {
	Date        string `json:"date" bson:"date"`
	Count       Amount `json:"count" bson:"count"`
	Description string `json:"description" bson:"description"`
	Holder      string `json:"holder" bson:"holder"`
	ReturnDate  string `json:"return_date,omitempty" bson:"return_date,omitempty"`
}

// PriceAmendment is a full price and fee snapshot taking effect at Date.
type PriceAmendment struct {
	Date     string `json:"date" bson:"date"`
	NetPrice Amount `json:"net_price" bson:"net_price"`
	Fees     Fees   `json:"fees" bson:"fees"`
}

// PurchaseOffer is a buyer's written offer on the mandated property.
type PurchaseOffer struct {
	Date                 string  `json:"date" bson:"date"`
	Amount               Amount  `json:"amount" bson:"amount"`
	PersonalContribution Amount  `json:"personal_contribution" bson:"personal_contribution"`
	MonthlyIncome        Amount  `json:"monthly_income" bson:"monthly_income"`
	CurrentLoans         Amount  `json:"current_loans" bson:"current_loans"`
	Deposit              Amount  `json:"deposit" bson:"deposit"`
	Buyers               []Party `json:"buyers" bson:"buyers"`
}

// Mandate is the sale-brokerage contract with everything the documents need.
type Mandate struct {
	ID              string      `json:"id,omitempty"`
	Number          string      `json:"number"`
	Date            string      `json:"date"`
	Type            MandateType `json:"type"`
	NetPrice        Amount      `json:"net_price"`
	Fees            Fees        `json:"fees"`
	FeePayer        FeePayer    `json:"fee_payer"`
	CommercialAgent string      `json:"commercial_agent"`
	Keys            *KeyCustody `json:"keys,omitempty"`

	Amendments []PriceAmendment `json:"amendments,omitempty"`
	Offers     []PurchaseOffer  `json:"offers,omitempty"`

	Sellers             []Party            `json:"sellers"`
	PropertyAddress     string             `json:"property_address"`
	PropertyType        PropertyType       `json:"property_type"`
	InCoproperty        bool               `json:"in_coproperty"`
	CoPropertyAddress   string             `json:"coproperty_address,omitempty"`
	Lots                []Lot              `json:"lots,omitempty"`
	OfficialDesignation string             `json:"official_designation,omitempty"`
	CadastralSections   []CadastralSection `json:"cadastral_sections,omitempty"`
	OccupationStatus    OccupationStatus   `json:"occupation_status"`
	DPEStatus           DPEStatus          `json:"dpe_status"`
	ConstructionYear    int                `json:"construction_year,omitempty"`
	HasGas              bool               `json:"has_gas,omitempty"`
	Criteria            PropertyCriteria   `json:"criteria"`
}

// PriceWithFees is the "prix frais d'agence inclus" figure used throughout documents.
func (m Mandate) PriceWithFees() float64 {
	return m.NetPrice.Float() + m.Fees.TTC.Float()
}

// WithAmendment returns a copy of the mandate carrying the amendment's price and fees.
func (m Mandate) WithAmendment(a PriceAmendment) Mandate {
	out := m
	out.NetPrice = a.NetPrice
	out.Fees = a.Fees
	return out
}
