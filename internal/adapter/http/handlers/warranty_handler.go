package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	response "sav_interventions/internal/adapter/http/dto/response"
	"sav_interventions/internal/domain/entities"
	"sav_interventions/internal/usecase"
	"sav_interventions/pkg"

	"github.com/gin-gonic/gin"
)

// WarrantyHandler exposes the informational warranty computation.

type WarrantyHandler struct {
	warranty      usecase.IWarrantyUseCase
	interventions usecase.IInterventionUseCase
}

func NewWarrantyHandler(warranty usecase.IWarrantyUseCase, interventions usecase.IInterventionUseCase) *WarrantyHandler {
	return &WarrantyHandler{warranty: warranty, interventions: interventions}
}

// CheckWarranty recomputes warranty status for an existing intervention from
// purchase_date and months query parameters. Informational only: stored state
// is never touched, so drift detection stays with the caller.
func (h *WarrantyHandler) CheckWarranty(c *gin.Context) {
	if _, err := h.interventions.GetByID(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapInterventionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	purchaseDate, err := time.Parse(time.RFC3339, strings.TrimSpace(c.Query("purchase_date")))
	if err != nil {
		// Date-only input is also accepted.
		purchaseDate, err = time.Parse("2006-01-02", strings.TrimSpace(c.Query("purchase_date")))
	}
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PURCHASE_DATE", "purchase_date must be an ISO-8601 date", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	months := entities.DefaultWarrantyMonths
	if raw := strings.TrimSpace(c.Query("months")); raw != "" {
		months, err = strconv.Atoi(raw)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_MONTHS", "months must be an integer", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	status, err := h.warranty.ComputeWarranty(purchaseDate, months, time.Now().UTC())
	if err != nil {
		appErr := mapWarrantyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWarrantyStatus(status))
}

func mapWarrantyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPurchaseDate), errors.Is(err, usecase.ErrInvalidWarrantyMonths):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
