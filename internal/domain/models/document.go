package models

// DocumentKind identifies a generated document.
type DocumentKind string

const (
	DocumentMandate        DocumentKind = "mandate"
	DocumentCompromise     DocumentKind = "compromise"
	DocumentPurchaseOffer  DocumentKind = "purchase-offer"
	DocumentKeyReceipt     DocumentKind = "key-receipt"
	DocumentPriceAmendment DocumentKind = "price-amendment"
)

// DocumentKinds lists every generated document in display order.
var DocumentKinds = []DocumentKind{
	DocumentMandate,
	DocumentCompromise,
	DocumentPurchaseOffer,
	DocumentKeyReceipt,
	DocumentPriceAmendment,
}

// FieldMap is the flat placeholder → value record merged into a template.
// Values are strings or numbers only.
type FieldMap map[string]any

// String returns the value of key as text, or "" when absent or not a string.
func (f FieldMap) String(key string) string {
	if v, ok := f[key].(string); ok {
		return v
	}
	return ""
}

// DocumentRequest selects what to generate from a mandate.
type DocumentRequest struct {
	Kind           DocumentKind `json:"kind"`
	OfferIndex     int          `json:"offer_index"`
	AmendmentIndex int          `json:"amendment_index"`
	Format         string       `json:"format,omitempty"`
}
