package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculateNetPay_ZeroAndNegativeGross(t *testing.T) {
	for _, gross := range []string{"0", "-100"} {
		pay := CalculateNetPay(dec(gross))
		assert.True(t, pay.Net.IsZero(), "net for gross %s", gross)
		assert.True(t, pay.Pension.IsZero(), "pension for gross %s", gross)
		assert.True(t, pay.IncomeTax.IsZero(), "income tax for gross %s", gross)
	}
}

func TestCalculateNetPay_FirstBandOnly(t *testing.T) {
	// Gross inside the first pension band, base below the tax threshold.
	pay := CalculateNetPay(dec("1412.00"))

	assert.True(t, pay.Pension.Equal(dec("105.90")), "pension = %s", pay.Pension)
	assert.True(t, pay.IncomeTax.IsZero(), "income tax = %s", pay.IncomeTax)
	assert.True(t, pay.Net.Equal(dec("1306.10")), "net = %s", pay.Net)
}

func TestCalculateNetPay_SecondBandNoTax(t *testing.T) {
	// Gross 2000: pension spans two bands, the discounted base stays under
	// the first tax threshold.
	pay := CalculateNetPay(dec("2000"))

	assert.True(t, pay.Pension.Equal(dec("158.82")), "pension = %s", pay.Pension)
	assert.True(t, pay.IncomeTax.IsZero(), "income tax = %s", pay.IncomeTax)
	assert.True(t, pay.Net.Equal(dec("1841.18")), "net = %s", pay.Net)
}

func TestCalculateNetPay_AllBands(t *testing.T) {
	// Gross 5000 exercises all four pension bands and the fourth tax band.
	pay := CalculateNetPay(dec("5000"))

	assert.True(t, pay.Pension.Equal(dec("518.819")), "pension = %s", pay.Pension)
	assert.True(t, pay.IncomeTax.Equal(dec("345.495725")), "income tax = %s", pay.IncomeTax)
	assert.True(t, pay.Net.Equal(dec("4135.685275")), "net = %s", pay.Net)
}

func TestCalculateNetPay_AbovePensionCeiling(t *testing.T) {
	// Above the top pension band the contribution is the fixed ceiling and
	// tax falls in the open-ended top band.
	pay := CalculateNetPay(dec("10000"))

	assert.True(t, pay.Pension.Equal(dec("908.85")), "pension = %s", pay.Pension)
	assert.True(t, pay.IncomeTax.Equal(dec("1604.06625")), "income tax = %s", pay.IncomeTax)
	assert.True(t, pay.Net.Equal(dec("7487.08375")), "net = %s", pay.Net)
}

func TestPensionWithholding_MarginalContinuity(t *testing.T) {
	// Withholding one cent above each band boundary must differ from the
	// boundary value by at most that band's rate applied to one cent, so the
	// schedule has no jumps.
	cent := dec("0.01")
	boundaries := []struct {
		upper string
		rate  string
	}{
		{"1412.00", "0.09"},
		{"2666.68", "0.12"},
		{"4000.03", "0.14"},
	}
	for _, b := range boundaries {
		at := pensionWithholding(dec(b.upper))
		above := pensionWithholding(dec(b.upper).Add(cent))
		step := above.Sub(at)
		want := cent.Mul(dec(b.rate))
		assert.True(t, step.Equal(want), "boundary %s: step = %s, want %s", b.upper, step, want)
	}

	// Above the top band the fixed ceiling applies. The published ceiling
	// 908.85 sits 0.0118 below the marginal sum at the boundary, so the
	// schedule dips there; that dip is in the statutory table itself.
	top := pensionWithholding(dec("7786.02"))
	aboveTop := pensionWithholding(dec("7786.03"))
	assert.True(t, top.Equal(dec("908.8618")), "top band boundary = %s", top)
	assert.True(t, aboveTop.Equal(dec("908.85")), "above top band = %s", aboveTop)
}

func TestIncomeTaxWithholding_BoundaryContinuity(t *testing.T) {
	// The published deductions make the schedule continuous at each band edge
	// up to rounding of the official table values.
	tolerance := dec("0.005")
	cases := []struct {
		base          string
		nextRate      string
		nextDeduction string
	}{
		{"2259.20", "0.075", "169.44"},
		{"2826.65", "0.15", "381.44"},
		{"3751.05", "0.225", "662.77"},
		{"4664.68", "0.275", "896.00"},
	}
	for _, c := range cases {
		inBand := incomeTaxWithholding(dec(c.base))
		viaNext := dec(c.base).Mul(dec(c.nextRate)).Sub(dec(c.nextDeduction))
		jump := inBand.Sub(viaNext).Abs()
		assert.True(t, jump.LessThanOrEqual(tolerance), "base %s: in-band %s, via next band %s", c.base, inBand, viaNext)
	}
}

func TestCalculateNetPay_ComponentsSumToGross(t *testing.T) {
	for _, gross := range []string{"1000", "2500.50", "3900", "4500", "7786.02", "12345.67"} {
		g := dec(gross)
		pay := CalculateNetPay(g)
		sum := pay.Net.Add(pay.Pension).Add(pay.IncomeTax)
		assert.True(t, sum.Equal(g), "gross %s: components sum to %s", gross, sum)
		assert.False(t, pay.IncomeTax.IsNegative(), "gross %s: negative tax", gross)
	}
}
