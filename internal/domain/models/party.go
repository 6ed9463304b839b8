package models

// PartyKind distinguishes natural persons from legal entities.
type PartyKind string

const (
	PartyIndividual PartyKind = "individual"
	PartyCompany    PartyKind = "company"
)

// Title is the civility of an individual party. It drives every gendered suffix in legal prose.
type Title string

const (
	TitleMr  Title = "Mr"
	TitleMrs Title = "Mrs"
)

// MaritalStatus enumerates the nine civil situations handled by the civil-status clauses.
type MaritalStatus string

const (
	MaritalSingle                MaritalStatus = "celibataire-non-pacse"
	MaritalPacs                  MaritalStatus = "celibataire-pacse"
	MaritalDivorced              MaritalStatus = "divorce"
	MaritalWidowed               MaritalStatus = "veuf"
	MaritalMarriedNoContract     MaritalStatus = "marie-sans-contrat"
	MaritalCommunityOfAcquests   MaritalStatus = "communaute-acquets"
	MaritalSeparationOfProperty  MaritalStatus = "separation-biens"
	MaritalUniversalCommunity    MaritalStatus = "communaute-universelle"
	MaritalParticipationAcquests MaritalStatus = "participation-acquets"
)

// IsMarried reports whether the status is one of the matrimonial regimes.
func (s MaritalStatus) IsMarried() bool {
	switch s {
	case MaritalMarriedNoContract, MaritalCommunityOfAcquests, MaritalSeparationOfProperty,
		MaritalUniversalCommunity, MaritalParticipationAcquests:
		return true
	}
	return false
}

// MarriageDetails is populated for every married status.
type MarriageDetails struct {
	SpouseName   string `json:"spouse_name" bson:"spouse_name"`
	Date         string `json:"date" bson:"date"`
	Place        string `json:"place" bson:"place"`
	NotaryName   string `json:"notary_name,omitempty" bson:"notary_name,omitempty"`
	NotaryCity   string `json:"notary_city,omitempty" bson:"notary_city,omitempty"`
	ContractDate string `json:"contract_date,omitempty" bson:"contract_date,omitempty"`
}

// PacsDetails is populated for MaritalPacs.
type PacsDetails struct {
	PartnerName string `json:"partner_name" bson:"partner_name"`
	Date        string `json:"date" bson:"date"`
	Place       string `json:"place,omitempty" bson:"place,omitempty"`
}

// DivorceDetails is populated for MaritalDivorced.
type DivorceDetails struct {
	ExSpouseName string `json:"ex_spouse_name" bson:"ex_spouse_name"`
	Date         string `json:"date,omitempty" bson:"date,omitempty"`
	Court        string `json:"court,omitempty" bson:"court,omitempty"`
}

// WidowDetails is populated for MaritalWidowed.
type WidowDetails struct {
	DeceasedSpouseName string `json:"deceased_spouse_name" bson:"deceased_spouse_name"`
}

// CoupleLink ties an individual to another party of the same list.
type CoupleLink struct {
	PartnerIndex int  `json:"partner_index" bson:"partner_index"`
	LinkedRegime bool `json:"linked_regime" bson:"linked_regime"`
}

// Company holds the identification of a legal-entity party.
type Company struct {
	LegalForm    string `json:"legal_form" bson:"legal_form"`
	Name         string `json:"name" bson:"name"`
	Capital      Amount `json:"capital" bson:"capital"`
	RCSCity      string `json:"rcs_city" bson:"rcs_city"`
	RCSNumber    string `json:"rcs_number" bson:"rcs_number"`
	ManagerTitle Title  `json:"manager_title" bson:"manager_title"`
	ManagerName  string `json:"manager_name" bson:"manager_name"`
}

// Party is a seller or a buyer.
type Party struct {
	Kind PartyKind `json:"kind" bson:"kind"`

	Title           Title  `json:"title" bson:"title"`
	FirstName       string `json:"first_name" bson:"first_name"`
	LastName        string `json:"last_name" bson:"last_name"`
	BirthDate       string `json:"birth_date" bson:"birth_date"`
	BirthPlace      string `json:"birth_place" bson:"birth_place"`
	BirthPostalCode string `json:"birth_postal_code" bson:"birth_postal_code"`
	Nationality     string `json:"nationality" bson:"nationality"`
	Profession      string `json:"profession" bson:"profession"`

	MaritalStatus MaritalStatus    `json:"marital_status" bson:"marital_status"`
	Marriage      *MarriageDetails `json:"marriage_details,omitempty" bson:"marriage_details,omitempty"`
	Pacs          *PacsDetails     `json:"pacs_details,omitempty" bson:"pacs_details,omitempty"`
	Divorce       *DivorceDetails  `json:"divorce_details,omitempty" bson:"divorce_details,omitempty"`
	Widow         *WidowDetails    `json:"widow_details,omitempty" bson:"widow_details,omitempty"`

	Company *Company `json:"company,omitempty" bson:"company,omitempty"`

	Address     string      `json:"address" bson:"address"`
	Phone       string      `json:"phone" bson:"phone"`
	Email       string      `json:"email" bson:"email"`
	TaxResident bool        `json:"tax_resident" bson:"tax_resident"`
	Couple      *CoupleLink `json:"couple,omitempty" bson:"couple,omitempty"`
}

// IsCompany reports whether the party is a legal entity.
func (p Party) IsCompany() bool {
	return p.Kind == PartyCompany
}

// IsFemale reports whether gendered agreements take the feminine form.
func (p Party) IsFemale() bool {
	return p.Title == TitleMrs
}

// Normalized returns a copy where only the marital sub-record matching MaritalStatus is kept.
// A missing matching sub-record is replaced by an empty one so that clause builders never
// dereference nil.
func (p Party) Normalized() Party {
	out := p
	out.Marriage, out.Pacs, out.Divorce, out.Widow = nil, nil, nil, nil

	switch {
	case p.MaritalStatus.IsMarried():
		out.Marriage = orEmpty(p.Marriage)
	case p.MaritalStatus == MaritalPacs:
		out.Pacs = orEmpty(p.Pacs)
	case p.MaritalStatus == MaritalDivorced:
		out.Divorce = orEmpty(p.Divorce)
	case p.MaritalStatus == MaritalWidowed:
		out.Widow = orEmpty(p.Widow)
	}
	return out
}

func orEmpty[T any](v *T) *T {
	if v == nil {
		return new(T)
	}
	c := *v
	return &c
}

// PropagateCouple copies the marital status and details of party 0 onto its linked partner
// when the couple shares the same regime. The input slice is not modified.
func PropagateCouple(parties []Party) []Party {
	out := make([]Party, len(parties))
	copy(out, parties)
	if len(out) < 2 {
		return out
	}

	head := out[0]
	if head.Couple == nil || !head.Couple.LinkedRegime {
		return out
	}
	idx := head.Couple.PartnerIndex
	if idx <= 0 || idx >= len(out) || out[idx].IsCompany() {
		return out
	}

	partner := out[idx]
	partner.MaritalStatus = head.MaritalStatus
	partner.Marriage = head.Marriage
	partner.Pacs = head.Pacs
	partner.Divorce = head.Divorce
	partner.Widow = head.Widow
	out[idx] = partner.Normalized()
	return out
}
