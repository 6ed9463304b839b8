package documents

import (
	"fmt"

	"github.com/mamadbah2/agence/internal/domain/models"
	"github.com/mamadbah2/agence/internal/legaltext"
)

func offerAt(m models.Mandate, index int) (models.PurchaseOffer, error) {
	if index < 0 || index >= len(m.Offers) {
		return models.PurchaseOffer{}, invalid("offer", fmt.Sprintf("purchase offer #%d does not exist", index+1))
	}
	return m.Offers[index], nil
}

// PurchaseOffer builds the field map of the buyer's purchase offer.
func (a *Assembler) PurchaseOffer(m models.Mandate, offerIndex int) (models.FieldMap, error) {
	if err := Validate(m); err != nil {
		return nil, err
	}
	offer, err := offerAt(m, offerIndex)
	if err != nil {
		return nil, err
	}

	fields := a.common(m)
	buyers := models.PropagateCouple(offer.Buyers)
	fields["acquereurs"] = legaltext.ComposeParties(buyers)
	fields["acquereurs_noms"] = legaltext.PartyNames(buyers)
	fields["date_offre"] = legaltext.FormatDate(offer.Date)
	fields["date_fin_offre"] = legaltext.AddDays(offer.Date, offerValidityDays)
	fields["date_compromis"] = legaltext.AddDays(offer.Date, compromiseDelayDays)

	setMoney(fields, "prix_fai", PriceWithFees(m.NetPrice, m.Fees.TTC))
	setMoney(fields, "montant_offre", dec(offer.Amount))
	setMoney(fields, "apport_personnel", dec(offer.PersonalContribution))
	setMoney(fields, "montant_credit", LoanAmount(offer.Amount, offer.PersonalContribution, offerLoanFactor))
	setMoney(fields, "revenus_mensuels", dec(offer.MonthlyIncome))
	setMoney(fields, "credits_en_cours", dec(offer.CurrentLoans))
	setMoney(fields, "depot_garantie", dec(offer.Deposit))
	fields["charge_honoraires_court"] = legaltext.FeesPayerText(m.FeePayer)

	return fields, nil
}

// Compromise builds the field map of the sale agreement concluded on an accepted offer.
func (a *Assembler) Compromise(m models.Mandate, offerIndex int) (models.FieldMap, error) {
	if err := Validate(m); err != nil {
		return nil, err
	}
	offer, err := offerAt(m, offerIndex)
	if err != nil {
		return nil, err
	}

	fields := a.common(m)
	buyers := models.PropagateCouple(offer.Buyers)
	fields["vendeurs"] = legaltext.ComposeParties(models.PropagateCouple(m.Sellers))
	fields["acquereurs"] = legaltext.ComposeParties(buyers)
	fields["acquereurs_noms"] = legaltext.PartyNames(buyers)
	fields["date_offre"] = legaltext.FormatDate(offer.Date)
	fields["date_compromis"] = legaltext.AddDays(offer.Date, compromiseDelayDays)
	fields["occupation"] = legaltext.OccupationStatusText(m.OccupationStatus)
	fields["dpe"] = legaltext.DPEStatusText(m.DPEStatus)

	setMoney(fields, "prix_vente", dec(offer.Amount))
	setMoney(fields, "honoraires_ttc", dec(m.Fees.TTC))
	setMoney(fields, "prix_net_vendeur", dec(offer.Amount).Sub(dec(m.Fees.TTC)))
	setMoney(fields, "depot_garantie", dec(offer.Deposit))
	setMoney(fields, "apport_personnel", dec(offer.PersonalContribution))
	setMoney(fields, "montant_credit", LoanAmount(offer.Amount, offer.PersonalContribution, compromiseLoanFactor))
	fields["charge_honoraires"] = legaltext.FeesClause(m.FeePayer, m.Fees.TTC.Float(), dec(offer.Amount).Sub(dec(m.Fees.TTC)).InexactFloat64())
	a.diagnosticFields(fields, m)

	return fields, nil
}

// KeyReceipt builds the field map of the receipt for keys left with the agency. A mandate
// without a custody record yields blank key fields.
func (a *Assembler) KeyReceipt(m models.Mandate) (models.FieldMap, error) {
	if err := Validate(m); err != nil {
		return nil, err
	}

	keys := models.KeyCustody{}
	if m.Keys != nil {
		keys = *m.Keys
	}

	fields := a.common(m)
	fields["date_remise"] = legaltext.FormatDate(keys.Date)
	fields["nombre_cles"] = keys.Count.Int()
	fields["nombre_cles_lettres"] = legaltext.Words(keys.Count.Int())
	fields["description_cles"] = keys.Description
	fields["detenteur_cles"] = keys.Holder
	fields["date_restitution"] = legaltext.FormatDate(keys.ReturnDate)

	return fields, nil
}

// PriceAmendment builds the field map of a price amendment. The "initial" columns carry the
// mandate's stored values, the "nouveau" columns the amendment snapshot.
func (a *Assembler) PriceAmendment(m models.Mandate, amendmentIndex int) (models.FieldMap, error) {
	if err := Validate(m); err != nil {
		return nil, err
	}
	if amendmentIndex < 0 || amendmentIndex >= len(m.Amendments) {
		return nil, invalid("amendment", fmt.Sprintf("price amendment #%d does not exist", amendmentIndex+1))
	}
	amendment := m.Amendments[amendmentIndex]
	amended := m.WithAmendment(amendment)

	newFees := amendment.Fees
	if newFees.HT.IsZero() && !newFees.TTC.IsZero() {
		newFees = DeriveFees(newFees.TTC)
	}

	fields := a.common(m)
	fields["numero_avenant"] = amendmentIndex + 1
	fields["date_avenant"] = legaltext.FormatDate(amendment.Date)
	fields["type_mandat"] = legaltext.MandateTypeLabel(m.Type)

	setMoney(fields, "prix_initial_net", dec(m.NetPrice))
	setMoney(fields, "prix_initial_honoraires_ttc", dec(m.Fees.TTC))
	setMoney(fields, "prix_initial_fai", PriceWithFees(m.NetPrice, m.Fees.TTC))

	setMoney(fields, "nouveau_prix_net", dec(amended.NetPrice))
	setMoney(fields, "nouveau_prix_honoraires_ttc", dec(newFees.TTC))
	setMoney(fields, "nouveau_prix_honoraires_ht", dec(newFees.HT))
	setMoney(fields, "nouveau_prix_fai", PriceWithFees(amended.NetPrice, newFees.TTC))
	setMoney(fields, "variation_prix", PriceWithFees(amended.NetPrice, newFees.TTC).Sub(PriceWithFees(m.NetPrice, m.Fees.TTC)))
	fields["charge_honoraires"] = legaltext.FeesClause(m.FeePayer, newFees.TTC.Float(), amended.NetPrice.Float())

	return fields, nil
}
