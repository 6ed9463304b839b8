package documents

import (
	"github.com/shopspring/decimal"

	"github.com/mamadbah2/agence/internal/domain/models"
	"github.com/mamadbah2/agence/internal/legaltext"
)

// Loan amount multipliers. The purchase-offer and compromise documents have historically
// used different factors for the same "montant du crédit" figure; both are kept per path
// until the agency settles on one.
const (
	offerLoanFactor      = "1.083"
	compromiseLoanFactor = "1.08"
)

var vatDivisor = decimal.RequireFromString("1.2")

func dec(a models.Amount) decimal.Decimal {
	return decimal.NewFromFloat(a.Float())
}

// PriceWithFees returns net price plus fees TTC.
func PriceWithFees(netPrice, feesTTC models.Amount) decimal.Decimal {
	return dec(netPrice).Add(dec(feesTTC))
}

// DeriveFees computes HT from a TTC amount, rounded to the euro.
func DeriveFees(ttc models.Amount) models.Fees {
	ht := dec(ttc).Div(vatDivisor).Round(0)
	return models.Fees{TTC: ttc, HT: models.Amount(ht.InexactFloat64())}
}

// LoanAmount is round(amount × factor) − personal contribution.
func LoanAmount(amount, contribution models.Amount, factor string) decimal.Decimal {
	f := decimal.RequireFromString(factor)
	return dec(amount).Mul(f).Round(0).Sub(dec(contribution))
}

// setMoney writes the digit, word and numeric forms of an amount under key.
func setMoney(fields models.FieldMap, key string, v decimal.Decimal) {
	f := v.InexactFloat64()
	fields[key] = legaltext.Euros(f)
	fields[key+"_lettres"] = legaltext.EurosInWords(f)
	fields[key+"_nombre"] = f
}
