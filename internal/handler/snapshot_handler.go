package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/acarvalho/familywealth/familywealth-backend/internal/domain"
	"github.com/acarvalho/familywealth/familywealth-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// SnapshotHandler handles full-database export and import
type SnapshotHandler struct {
	snapshotService *service.SnapshotService
}

// NewSnapshotHandler creates a new SnapshotHandler
func NewSnapshotHandler(snapshotService *service.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{snapshotService: snapshotService}
}

// ImportResponse reports the record counts restored by an import
type ImportResponse struct {
	Incomes       int `json:"incomes"`
	FixedExpenses int `json:"fixedExpenses"`
	Transactions  int `json:"transactions"`
	Goals         int `json:"goals"`
}

// Export handles GET /api/v1/snapshot/export. The response is served as a
// file download named after the export date.
func (h *SnapshotHandler) Export(c echo.Context) error {
	snapshot, err := h.snapshotService.Export()
	if err != nil {
		log.Error().Err(err).Msg("Failed to export snapshot")
		return NewInternalError(c, "Failed to export snapshot")
	}

	filename := service.ExportFilename(time.Now())
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.JSON(http.StatusOK, snapshot)
}

// Import handles POST /api/v1/snapshot/import. A document that fails to
// parse or validate leaves the store untouched.
func (h *SnapshotHandler) Import(c echo.Context) error {
	var snapshot domain.Snapshot
	if err := c.Bind(&snapshot); err != nil {
		return NewValidationError(c, "Invalid snapshot document", nil)
	}

	if err := h.snapshotService.Import(&snapshot); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrNameRequired) ||
			errors.Is(err, domain.ErrNameTooLong) || errors.Is(err, domain.ErrInvalidAmount) ||
			errors.Is(err, domain.ErrInvalidCategory) {
			return NewValidationError(c, err.Error(), nil)
		}
		log.Error().Err(err).Msg("Failed to import snapshot")
		return NewInternalError(c, "Failed to import snapshot")
	}

	return c.JSON(http.StatusOK, ImportResponse{
		Incomes:       len(snapshot.Incomes),
		FixedExpenses: len(snapshot.FixedExpenses),
		Transactions:  len(snapshot.Transactions),
		Goals:         len(snapshot.Goals),
	})
}
