package service

import (
	"testing"

	"github.com/acarvalho/familywealth/familywealth-backend/internal/domain"
	"github.com/acarvalho/familywealth/familywealth-backend/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestIncomeService_Create_GrossSalaryDerivesNet(t *testing.T) {
	repo := testutil.NewMockIncomeRepository()
	svc := NewIncomeService(repo)

	income, err := svc.Create(CreateIncomeInput{
		Name:   "Main job",
		Amount: dec("2000"),
		Type:   domain.IncomeTypeSalary,
		Basis:  domain.IncomeBasisGross,
	})
	require.NoError(t, err)

	assert.True(t, income.RawAmount.Equal(dec("2000")), "raw = %s", income.RawAmount)
	assert.True(t, income.NetAmount.Equal(dec("1841.18")), "net = %s", income.NetAmount)
	assert.NotEmpty(t, income.ID)
	assert.Len(t, repo.Incomes, 1)
}

func TestIncomeService_Create_NetSalaryKeptAsIs(t *testing.T) {
	repo := testutil.NewMockIncomeRepository()
	svc := NewIncomeService(repo)

	income, err := svc.Create(CreateIncomeInput{
		Name:   "Main job",
		Amount: dec("2000"),
		Type:   domain.IncomeTypeSalary,
		Basis:  domain.IncomeBasisNet,
	})
	require.NoError(t, err)

	assert.True(t, income.NetAmount.Equal(dec("2000")))
}

func TestIncomeService_Create_BenefitNeverWithheld(t *testing.T) {
	repo := testutil.NewMockIncomeRepository()
	svc := NewIncomeService(repo)

	// A benefit marked gross still bypasses payroll withholding.
	income, err := svc.Create(CreateIncomeInput{
		Name:   "Meal allowance",
		Amount: dec("800"),
		Type:   domain.IncomeTypeBenefit,
		Basis:  domain.IncomeBasisGross,
	})
	require.NoError(t, err)

	assert.True(t, income.NetAmount.Equal(dec("800")))
}

func TestIncomeService_Create_Validation(t *testing.T) {
	repo := testutil.NewMockIncomeRepository()
	svc := NewIncomeService(repo)

	_, err := svc.Create(CreateIncomeInput{
		Name:   "  ",
		Amount: dec("100"),
		Type:   domain.IncomeTypeSalary,
		Basis:  domain.IncomeBasisNet,
	})
	assert.ErrorIs(t, err, domain.ErrNameRequired)

	_, err = svc.Create(CreateIncomeInput{
		Name:   "Job",
		Amount: dec("-100"),
		Type:   domain.IncomeTypeSalary,
		Basis:  domain.IncomeBasisNet,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	assert.Empty(t, repo.Incomes)
}

func TestIncomeService_Delete(t *testing.T) {
	repo := testutil.NewMockIncomeRepository()
	svc := NewIncomeService(repo)

	income, err := svc.Create(CreateIncomeInput{
		Name:   "Job",
		Amount: dec("100"),
		Type:   domain.IncomeTypeSalary,
		Basis:  domain.IncomeBasisNet,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(income.ID))
	assert.Empty(t, repo.Incomes)

	assert.ErrorIs(t, svc.Delete(income.ID), domain.ErrNotFound)
}
