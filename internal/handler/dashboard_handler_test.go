package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/acarvalho/familywealth/familywealth-backend/internal/domain"
	"github.com/acarvalho/familywealth/familywealth-backend/internal/service"
	"github.com/acarvalho/familywealth/familywealth-backend/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

func newDashboardHandlerFixture() (*DashboardHandler, *testutil.MockIncomeRepository, *testutil.MockFixedExpenseRepository, *testutil.MockTransactionRepository) {
	incomeRepo := testutil.NewMockIncomeRepository()
	fixedRepo := testutil.NewMockFixedExpenseRepository()
	txRepo := testutil.NewMockTransactionRepository()
	goalRepo := testutil.NewMockGoalRepository()
	budgetService := service.NewBudgetService(incomeRepo, fixedRepo, txRepo)
	goalService := service.NewGoalService(goalRepo, budgetService)
	dashboardService := service.NewDashboardService(budgetService, goalService)
	return NewDashboardHandler(dashboardService), incomeRepo, fixedRepo, txRepo
}

func TestDashboardGetSummary_Success(t *testing.T) {
	e := echo.New()
	handler, incomeRepo, fixedRepo, txRepo := newDashboardHandlerFixture()

	incomeRepo.Put(&domain.IncomeSource{
		ID:        "i1",
		Name:      "Job",
		RawAmount: decimal.NewFromInt(5000),
		NetAmount: decimal.NewFromInt(5000),
		Type:      domain.IncomeTypeSalary,
		Basis:     domain.IncomeBasisNet,
	})
	fixedRepo.Put(&domain.FixedExpense{
		ID:       "f1",
		Name:     "Rent",
		Amount:   decimal.NewFromInt(1000),
		Category: domain.CategoryEssentials,
	})
	txRepo.Put(&domain.Transaction{
		ID:          "t1",
		Description: "Dinner",
		Amount:      decimal.NewFromInt(200),
		Category:    domain.CategoryLifestyle,
		Date:        time.Date(2026, time.March, 10, 0, 0, 0, 0, time.Local),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/summary?year=2026&month=3", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetSummary(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var response service.DashboardSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.Budget == nil {
		t.Fatal("Expected budget in response")
	}
	if !response.Budget.TotalSpent.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("Expected total spent 1200, got %s", response.Budget.TotalSpent)
	}
	if len(response.Donut.Arcs) != 2 {
		t.Errorf("Expected 2 donut arcs, got %d", len(response.Donut.Arcs))
	}
}

func TestDashboardGetSummary_MissingPeriod(t *testing.T) {
	e := echo.New()
	handler, _, _, _ := newDashboardHandlerFixture()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/summary", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetSummary(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestDashboardGetSummary_InvalidMonth(t *testing.T) {
	e := echo.New()
	handler, _, _, _ := newDashboardHandlerFixture()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/summary?year=2026&month=13", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetSummary(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}
