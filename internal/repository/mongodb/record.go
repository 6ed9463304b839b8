package mongodb

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/mamadbah2/agence/internal/domain/models"
)

// mandateRecord is the persisted shape of a mandate. Lots and cadastral sections are kept
// as JSON-encoded strings, monetary fields as plain numbers.
type mandateRecord struct {
	ID              string             `bson:"_id"`
	Number          string             `bson:"number"`
	Date            string             `bson:"date"`
	Type            models.MandateType `bson:"type"`
	NetPrice        float64            `bson:"net_price"`
	FeesTTC         float64            `bson:"fees_ttc"`
	FeesHT          float64            `bson:"fees_ht"`
	FeePayer        models.FeePayer    `bson:"fee_payer"`
	CommercialAgent string             `bson:"commercial_agent"`
	Keys            *models.KeyCustody `bson:"keys,omitempty"`

	Amendments []models.PriceAmendment `bson:"amendments"`
	Offers     []models.PurchaseOffer  `bson:"offers"`
	Sellers    []models.Party          `bson:"sellers"`

	PropertyAddress     string                  `bson:"property_address"`
	PropertyType        models.PropertyType     `bson:"property_type"`
	InCoproperty        bool                    `bson:"in_coproperty"`
	CoPropertyAddress   string                  `bson:"coproperty_address"`
	LotsJSON            string                  `bson:"lots"`
	OfficialDesignation string                  `bson:"official_designation"`
	CadastralJSON       string                  `bson:"cadastral_sections"`
	OccupationStatus    models.OccupationStatus `bson:"occupation_status"`
	DPEStatus           models.DPEStatus        `bson:"dpe_status"`
	ConstructionYear    int                     `bson:"construction_year"`
	HasGas              bool                    `bson:"has_gas"`
	Criteria            models.PropertyCriteria `bson:"criteria"`

	UpdatedAt time.Time `bson:"updated_at"`
}

func toRecord(m models.Mandate, now time.Time) (mandateRecord, error) {
	lots, err := encodeJSONColumn(m.Lots)
	if err != nil {
		return mandateRecord{}, fmt.Errorf("encode lots: %w", err)
	}
	sections, err := encodeJSONColumn(m.CadastralSections)
	if err != nil {
		return mandateRecord{}, fmt.Errorf("encode cadastral sections: %w", err)
	}

	return mandateRecord{
		ID:                  m.ID,
		Number:              m.Number,
		Date:                m.Date,
		Type:                m.Type,
		NetPrice:            m.NetPrice.Float(),
		FeesTTC:             m.Fees.TTC.Float(),
		FeesHT:              m.Fees.HT.Float(),
		FeePayer:            m.FeePayer,
		CommercialAgent:     m.CommercialAgent,
		Keys:                m.Keys,
		Amendments:          m.Amendments,
		Offers:              m.Offers,
		Sellers:             m.Sellers,
		PropertyAddress:     m.PropertyAddress,
		PropertyType:        m.PropertyType,
		InCoproperty:        m.InCoproperty,
		CoPropertyAddress:   m.CoPropertyAddress,
		LotsJSON:            lots,
		OfficialDesignation: m.OfficialDesignation,
		CadastralJSON:       sections,
		OccupationStatus:    m.OccupationStatus,
		DPEStatus:           m.DPEStatus,
		ConstructionYear:    m.ConstructionYear,
		HasGas:              m.HasGas,
		Criteria:            m.Criteria,
		UpdatedAt:           now,
	}, nil
}

func fromRecord(r mandateRecord) (models.Mandate, error) {
	var lots []models.Lot
	if err := decodeJSONColumn(r.LotsJSON, &lots); err != nil {
		return models.Mandate{}, fmt.Errorf("decode lots of mandate %s: %w", r.ID, err)
	}
	var sections []models.CadastralSection
	if err := decodeJSONColumn(r.CadastralJSON, &sections); err != nil {
		return models.Mandate{}, fmt.Errorf("decode cadastral sections of mandate %s: %w", r.ID, err)
	}

	return models.Mandate{
		ID:                  r.ID,
		Number:              r.Number,
		Date:                r.Date,
		Type:                r.Type,
		NetPrice:            models.Amount(r.NetPrice),
		Fees:                models.Fees{TTC: models.Amount(r.FeesTTC), HT: models.Amount(r.FeesHT)},
		FeePayer:            r.FeePayer,
		CommercialAgent:     r.CommercialAgent,
		Keys:                r.Keys,
		Amendments:          r.Amendments,
		Offers:              r.Offers,
		Sellers:             r.Sellers,
		PropertyAddress:     r.PropertyAddress,
		PropertyType:        r.PropertyType,
		InCoproperty:        r.InCoproperty,
		CoPropertyAddress:   r.CoPropertyAddress,
		Lots:                lots,
		OfficialDesignation: r.OfficialDesignation,
		CadastralSections:   sections,
		OccupationStatus:    r.OccupationStatus,
		DPEStatus:           r.DPEStatus,
		ConstructionYear:    r.ConstructionYear,
		HasGas:              r.HasGas,
		Criteria:            r.Criteria,
	}, nil
}

func encodeJSONColumn(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeJSONColumn(raw string, v any) error {
	if raw == "" || raw == "null" {
		return nil
	}
	return json.Unmarshal([]byte(raw), v)
}
