package domain

import (
	"github.com/shopspring/decimal"
)

// Statutory withholding tables for a gross monthly salary. Pension (INSS) is
// progressive: each rate applies only to the slice of salary inside its band,
// and contributions are capped above the top band. Income tax (IRRF) uses the
// official rate-and-deduction form over the pension-discounted base.
var (
	pensionBands = []struct {
		Upper decimal.Decimal
		Rate  decimal.Decimal
	}{
		{decimal.NewFromFloat(1412.00), decimal.NewFromFloat(0.075)},
		{decimal.NewFromFloat(2666.68), decimal.NewFromFloat(0.09)},
		{decimal.NewFromFloat(4000.03), decimal.NewFromFloat(0.12)},
		{decimal.NewFromFloat(7786.02), decimal.NewFromFloat(0.14)},
	}

	// pensionCeiling is the fixed contribution above the top band.
	pensionCeiling = decimal.NewFromFloat(908.85)

	incomeTaxBands = []struct {
		Upper     decimal.Decimal
		Rate      decimal.Decimal
		Deduction decimal.Decimal
	}{
		{decimal.NewFromFloat(2259.20), decimal.Zero, decimal.Zero},
		{decimal.NewFromFloat(2826.65), decimal.NewFromFloat(0.075), decimal.NewFromFloat(169.44)},
		{decimal.NewFromFloat(3751.05), decimal.NewFromFloat(0.15), decimal.NewFromFloat(381.44)},
		{decimal.NewFromFloat(4664.68), decimal.NewFromFloat(0.225), decimal.NewFromFloat(662.77)},
	}

	// topIncomeTaxBand applies to any base above the last bounded band.
	topIncomeTaxBand = struct {
		Rate      decimal.Decimal
		Deduction decimal.Decimal
	}{decimal.NewFromFloat(0.275), decimal.NewFromFloat(896.00)}
)

// NetPay is the result of the statutory payroll calculation.
type NetPay struct {
	Net       decimal.Decimal `json:"net"`
	Pension   decimal.Decimal `json:"pension"`
	IncomeTax decimal.Decimal `json:"incomeTax"`
}

// CalculateNetPay converts a gross monthly salary into net pay. It is total:
// a zero or negative gross yields an all-zero result rather than an error.
// A negative intermediate income tax is clamped to zero, never refunded.
func CalculateNetPay(gross decimal.Decimal) NetPay {
	if !gross.IsPositive() {
		return NetPay{Net: decimal.Zero, Pension: decimal.Zero, IncomeTax: decimal.Zero}
	}

	pension := pensionWithholding(gross)
	base := gross.Sub(pension)
	tax := incomeTaxWithholding(base)
	if tax.IsNegative() {
		tax = decimal.Zero
	}

	return NetPay{
		Net:       gross.Sub(pension).Sub(tax),
		Pension:   pension,
		IncomeTax: tax,
	}
}

func pensionWithholding(salary decimal.Decimal) decimal.Decimal {
	top := pensionBands[len(pensionBands)-1].Upper
	if salary.GreaterThan(top) {
		return pensionCeiling
	}

	total := decimal.Zero
	lower := decimal.Zero
	for _, band := range pensionBands {
		if salary.LessThanOrEqual(lower) {
			break
		}
		slice := decimal.Min(salary, band.Upper).Sub(lower)
		total = total.Add(slice.Mul(band.Rate))
		lower = band.Upper
	}
	return total
}

func incomeTaxWithholding(base decimal.Decimal) decimal.Decimal {
	for _, band := range incomeTaxBands {
		if base.LessThanOrEqual(band.Upper) {
			return base.Mul(band.Rate).Sub(band.Deduction)
		}
	}
	return base.Mul(topIncomeTaxBand.Rate).Sub(topIncomeTaxBand.Deduction)
}
