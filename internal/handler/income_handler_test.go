package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/acarvalho/familywealth/familywealth-backend/internal/service"
	"github.com/acarvalho/familywealth/familywealth-backend/internal/testutil"
	"github.com/labstack/echo/v4"
)

func newIncomeHandlerFixture() (*IncomeHandler, *testutil.MockIncomeRepository) {
	repo := testutil.NewMockIncomeRepository()
	return NewIncomeHandler(service.NewIncomeService(repo)), repo
}

func TestCreateIncome_GrossSalary(t *testing.T) {
	e := echo.New()
	handler, repo := newIncomeHandlerFixture()

	body := `{"name":"Main job","amount":"2000","type":"salary","basis":"gross"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/incomes", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.CreateIncome(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var response IncomeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.RawAmount != "2000.00" {
		t.Errorf("Expected raw amount '2000.00', got %s", response.RawAmount)
	}
	if response.NetAmount != "1841.18" {
		t.Errorf("Expected net amount '1841.18', got %s", response.NetAmount)
	}
	if len(repo.Incomes) != 1 {
		t.Errorf("Expected 1 stored income, got %d", len(repo.Incomes))
	}
}

func TestCreateIncome_InvalidAmount(t *testing.T) {
	e := echo.New()
	handler, repo := newIncomeHandlerFixture()

	body := `{"name":"Main job","amount":"not-a-number","type":"salary","basis":"net"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/incomes", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.CreateIncome(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
	if len(repo.Incomes) != 0 {
		t.Errorf("Expected no stored incomes, got %d", len(repo.Incomes))
	}
}

func TestCreateIncome_MissingName(t *testing.T) {
	e := echo.New()
	handler, _ := newIncomeHandlerFixture()

	body := `{"name":"","amount":"100","type":"salary","basis":"net"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/incomes", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.CreateIncome(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestDeleteIncome_NotFound(t *testing.T) {
	e := echo.New()
	handler, _ := newIncomeHandlerFixture()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/incomes/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := handler.DeleteIncome(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}
