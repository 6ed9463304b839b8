package documents

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/mamadbah2/agence/internal/diagnostics"
	"github.com/mamadbah2/agence/internal/domain/models"
	"github.com/mamadbah2/agence/internal/legaltext"
)

const sp = legaltext.NarrowSpace

func newTestAssembler() *Assembler {
	engine := diagnostics.NewEngineAt(func() time.Time {
		return time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	})
	return NewAssembler(NewAgentDirectory("agence.test"), engine)
}

func sampleMandate() models.Mandate {
	return models.Mandate{
		Number:          "M-2024-042",
		Date:            "2024-03-01",
		Type:            models.MandateExclusive,
		NetPrice:        250000,
		Fees:            models.Fees{TTC: 12000},
		FeePayer:        models.FeesPaidBySeller,
		CommercialAgent: "Sophie",
		Sellers: []models.Party{{
			Kind:          models.PartyIndividual,
			Title:         models.TitleMr,
			FirstName:     "Paul",
			LastName:      "Martin",
			BirthDate:     "1975-02-11",
			BirthPlace:    "Nantes",
			Nationality:   "française",
			MaritalStatus: models.MaritalSingle,
			Phone:         "06 00 00 00 00",
			Email:         "paul@example.com",
		}},
		PropertyAddress:  "8 quai Saint-Antoine, 69002 Lyon",
		PropertyType:     models.PropertyApartment,
		InCoproperty:     true,
		ConstructionYear: 2010,
		Lots: []models.Lot{
			{
				Number:          "12",
				Description:     "Un appartement au deuxième étage",
				Tantiemes:       []models.Tantieme{{Numerator: "500", Denominator: "10000", Type: models.TantiemeGeneral}},
				CarrezSurface:   "64,30",
				CarrezGuarantor: models.CarrezByDiagnostician,
			},
			{
				Number:        "40",
				Description:   "Une cave",
				CarrezSurface: "6",
			},
		},
		CadastralSections: []models.CadastralSection{
			{Section: "AB", Number: "101", Surface: "1200"},
			{Section: "AB", Number: "102", Surface: "345"},
		},
		Offers: []models.PurchaseOffer{{
			Date:                 "2024-04-02",
			Amount:               262000,
			PersonalContribution: 30000,
			Deposit:              13100,
			Buyers: []models.Party{{
				Kind:          models.PartyIndividual,
				Title:         models.TitleMrs,
				FirstName:     "Anne",
				LastName:      "Roux",
				MaritalStatus: models.MaritalSingle,
			}},
		}},
		Amendments: []models.PriceAmendment{{
			Date:     "2024-05-10",
			NetPrice: 240000,
			Fees:     models.Fees{TTC: 11000},
		}},
		Keys: &models.KeyCustody{Date: "2024-03-02", Count: 3, Description: "porte d'entrée et boîte aux lettres", Holder: "Agence"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Mandate)
		field  string
	}{
		{"missing number", func(m *models.Mandate) { m.Number = "  " }, "mandate_number"},
		{"missing sellers", func(m *models.Mandate) { m.Sellers = nil }, "sellers"},
	}

	a := newTestAssembler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := sampleMandate()
			tt.mutate(&m)

			for _, kind := range models.DocumentKinds {
				_, err := a.Assemble(m, models.DocumentRequest{Kind: kind})
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("%s: expected a validation error, got %v", kind, err)
				}
				if verr.Field != tt.field {
					t.Fatalf("%s: field = %q, want %q", kind, verr.Field, tt.field)
				}
			}
		})
	}
}

func TestAssembleUnknownKind(t *testing.T) {
	_, err := newTestAssembler().Assemble(sampleMandate(), models.DocumentRequest{Kind: "lease"})
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestMandateFields(t *testing.T) {
	fields, err := newTestAssembler().Mandate(sampleMandate())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{
		"numero_mandat":      "M-2024-042",
		"date_mandat":        "01/03/2024",
		"date_mandat_longue": "1er mars 2024",
		"type_mandat":        "Mandat exclusif",
		"type_bien":          "Appartement",
		"prix_net":           "250" + sp + "000",
		"honoraires_ttc":     "12" + sp + "000",
		"honoraires_ht":      "10" + sp + "000",
		"prix_fai":           "262" + sp + "000",
		"prix_fai_lettres":   "deux cent soixante-deux mille",
		"agent_nom":          "Sophie LAMBERT",
		"agent_email":        "sophie.lambert@agence.test",
		"vendeur_telephone":  "06 00 00 00 00",
		"vendeurs_noms":      "Monsieur Paul MARTIN",
		"quote_part":         "Et les cinq cents / dix millièmes (500/10000 èmes) des parties communes générales",
	}
	for key, value := range want {
		if got := fields.String(key); got != value {
			t.Errorf("%s = %q, want %q", key, got, value)
		}
	}

	if got := fields["prix_fai_nombre"].(float64); got != fields["prix_net_nombre"].(float64)+fields["honoraires_ttc_nombre"].(float64) {
		t.Errorf("price with fees %v is not net price plus fees", got)
	}
	if fields["diagnostics_nombre"] != 2 {
		t.Errorf("expected two diagnostics, got %v", fields["diagnostics_nombre"])
	}
	if got := fields.String("diagnostics_prix"); got != "150" {
		t.Errorf("diagnostics_prix = %q, want 150", got)
	}
	if !strings.Contains(fields.String("vendeurs"), "déclare être célibataire") {
		t.Errorf("missing civil status in %q", fields.String("vendeurs"))
	}
	if !strings.Contains(fields.String("duree_mandat"), "trois mois") {
		t.Error("missing duration clause")
	}
}

func TestOversizedTypedPriceDegradesToZero(t *testing.T) {
	m := sampleMandate()
	if err := json.Unmarshal([]byte(`"100000000000000000000000 €"`), &m.NetPrice); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.Keys.Count = 1e30

	a := newTestAssembler()
	fields, err := a.Mandate(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := fields.String("prix_net"); got != "0" {
		t.Errorf("prix_net = %q, want 0", got)
	}
	if got := fields.String("prix_fai_lettres"); got != "douze mille" {
		t.Errorf("prix_fai_lettres = %q, want douze mille", got)
	}

	fields, err = a.KeyReceipt(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := fields.String("nombre_cles_lettres"); got != "zéro" {
		t.Errorf("nombre_cles_lettres = %q, want zéro", got)
	}
}

func TestMandateFieldValuesAreStringsOrNumbers(t *testing.T) {
	fields, err := newTestAssembler().Mandate(sampleMandate())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for key, value := range fields {
		switch value.(type) {
		case string, int, int64, float64:
		default:
			t.Errorf("%s has unexpected type %T", key, value)
		}
	}
}

func TestPropertyDescriptionCarrezAfterFirstLotOnly(t *testing.T) {
	desc := PropertyDescription(sampleMandate())

	if n := strings.Count(desc, "La superficie de la partie privative"); n != 1 {
		t.Fatalf("expected one Carrez disclaimer, got %d", n)
	}
	carrez := strings.Index(desc, "La superficie de la partie privative")
	first := strings.Index(desc, "Lot numéro 12 (douze) :")
	second := strings.Index(desc, "Lot numéro 40 (quarante) :")
	if first < 0 || second < 0 || !(first < carrez && carrez < second) {
		t.Fatalf("Carrez disclaimer misplaced in %q", desc)
	}

	m := sampleMandate()
	m.InCoproperty = false
	m.OfficialDesignation = "Une maison d'habitation"
	if got := PropertyDescription(m); got != "Une maison d'habitation" {
		t.Fatalf("expected official designation, got %q", got)
	}
}

func TestCadastralFieldsArePadded(t *testing.T) {
	fields := models.FieldMap{}
	cadastralFields(fields, sampleMandate().CadastralSections)

	if got := fields.String("cadastre_surface_1"); got != "00ha 12a 00ca" {
		t.Errorf("cadastre_surface_1 = %q", got)
	}
	if got := fields.String("cadastre_numero_2"); got != "102" {
		t.Errorf("cadastre_numero_2 = %q", got)
	}
	for _, key := range []string{"cadastre_section_3", "cadastre_numero_3", "cadastre_lieudit_3", "cadastre_surface_3"} {
		v, ok := fields[key]
		if !ok || v != "" {
			t.Errorf("%s should be present and empty, got %v", key, v)
		}
	}
	if got := fields.String("cadastre_surface_totale"); got != "00ha 15a 45ca" {
		t.Errorf("cadastre_surface_totale = %q", got)
	}
}

func TestPurchaseOfferFields(t *testing.T) {
	fields, err := newTestAssembler().PurchaseOffer(sampleMandate(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{
		"date_offre":      "02/04/2024",
		"date_fin_offre":  "12/04/2024",
		"date_compromis":  "17/04/2024",
		"montant_offre":   "262" + sp + "000",
		"montant_credit":  "253" + sp + "746",
		"acquereurs_noms": "Madame Anne ROUX",
	}
	for key, value := range want {
		if got := fields.String(key); got != value {
			t.Errorf("%s = %q, want %q", key, got, value)
		}
	}

	_, err = newTestAssembler().PurchaseOffer(sampleMandate(), 3)
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "offer" {
		t.Fatalf("expected an offer validation error, got %v", err)
	}
}

func TestCompromiseFields(t *testing.T) {
	fields, err := newTestAssembler().Compromise(sampleMandate(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{
		"prix_vente":       "262" + sp + "000",
		"prix_net_vendeur": "250" + sp + "000",
		"montant_credit":   "252" + sp + "960",
		"depot_garantie":   "13" + sp + "100",
	}
	for key, value := range want {
		if got := fields.String(key); got != value {
			t.Errorf("%s = %q, want %q", key, got, value)
		}
	}
	if !strings.Contains(fields.String("acquereurs"), "Madame Anne ROUX") {
		t.Errorf("missing buyer in %q", fields.String("acquereurs"))
	}
}

func TestKeyReceiptFields(t *testing.T) {
	fields, err := newTestAssembler().KeyReceipt(sampleMandate())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fields["nombre_cles"] != int64(3) || fields.String("nombre_cles_lettres") != "trois" {
		t.Fatalf("unexpected key count %v / %q", fields["nombre_cles"], fields.String("nombre_cles_lettres"))
	}

	m := sampleMandate()
	m.Keys = nil
	fields, err = newTestAssembler().KeyReceipt(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fields.String("date_remise") != "" || fields.String("nombre_cles_lettres") != "zéro" {
		t.Fatalf("expected blank key fields, got %v", fields)
	}
}

func TestPriceAmendmentFields(t *testing.T) {
	fields, err := newTestAssembler().PriceAmendment(sampleMandate(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{
		"prix_initial_net":            "250" + sp + "000",
		"prix_initial_fai":            "262" + sp + "000",
		"nouveau_prix_net":            "240" + sp + "000",
		"nouveau_prix_honoraires_ttc": "11" + sp + "000",
		"nouveau_prix_honoraires_ht":  "9" + sp + "167",
		"nouveau_prix_fai":            "251" + sp + "000",
		"variation_prix":              "-11" + sp + "000",
		"variation_prix_lettres":      "moins onze mille",
		"date_avenant":                "10/05/2024",
	}
	for key, value := range want {
		if got := fields.String(key); got != value {
			t.Errorf("%s = %q, want %q", key, got, value)
		}
	}
	if fields["numero_avenant"] != 1 {
		t.Errorf("numero_avenant = %v, want 1", fields["numero_avenant"])
	}

	if _, err := newTestAssembler().PriceAmendment(sampleMandate(), 1); !IsValidation(err) {
		t.Fatalf("expected a validation error for a missing amendment, got %v", err)
	}
}

func TestAgentLookup(t *testing.T) {
	dir := NewAgentDirectory("@agence.test")

	tests := []struct {
		reference string
		want      Agent
	}{
		{"Thomas", Agent{Name: "Thomas REYNAUD", Phone: "06 23 56 89 01", Email: "thomas.reynaud@agence.test"}},
		{"nadia benali", Agent{Name: "Nadia BENALI", Phone: "06 34 67 90 12", Email: "nadia.benali@agence.test"}},
		{"Jean Dupuis", Agent{Name: "Jean Dupuis", Email: "jean@agence.test"}},
		{"", Agent{}},
	}

	for _, tt := range tests {
		if got := dir.Lookup(tt.reference); got != tt.want {
			t.Errorf("Lookup(%q) = %+v, want %+v", tt.reference, got, tt.want)
		}
	}
}

func TestMoney(t *testing.T) {
	if got := DeriveFees(12000); got.HT != 10000 || got.TTC != 12000 {
		t.Errorf("unexpected fees %+v", got)
	}
	if got := DeriveFees(11000); got.HT != 9167 {
		t.Errorf("expected HT 9167, got %v", got.HT)
	}
	if got := LoanAmount(200000, 20000, offerLoanFactor); got.IntPart() != 196600 {
		t.Errorf("offer loan = %s, want 196600", got)
	}
	if got := LoanAmount(200000, 20000, compromiseLoanFactor); got.IntPart() != 196000 {
		t.Errorf("compromise loan = %s, want 196000", got)
	}
	if got := PriceWithFees(250000.5, 12000.25); got.String() != "262000.75" {
		t.Errorf("price with fees = %s", got)
	}
}
