package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "sav_interventions/internal/adapter/http/dto/request"
	response "sav_interventions/internal/adapter/http/dto/response"
	"sav_interventions/internal/domain/entities"
	"sav_interventions/internal/usecase"
	"sav_interventions/internal/usecase/interfaces"
	"sav_interventions/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidInterventionPayload = pkg.NewDomainErrorSimple("INVALID_INTERVENTION_INPUT", "Invalid intervention payload", http.StatusBadRequest)
)

// InterventionHandler handles HTTP requests for the intervention lifecycle.

type InterventionHandler struct {
	usecase usecase.IInterventionUseCase
}

func NewInterventionHandler(uc usecase.IInterventionUseCase) *InterventionHandler {
	return &InterventionHandler{usecase: uc}
}

// CreateIntervention schedules a new intervention for a reclamation.
func (h *InterventionHandler) CreateIntervention(c *gin.Context) {
	var payload request.CreateInterventionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInterventionPayload.HTTPStatus, errInvalidInterventionPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToCommand(createdByFrom(c)))
	if err != nil {
		appErr := mapInterventionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromIntervention(created))
}

func (h *InterventionHandler) GetIntervention(c *gin.Context) {
	i, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInterventionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromIntervention(i))
}

func (h *InterventionHandler) GetInterventionByNumero(c *gin.Context) {
	i, err := h.usecase.GetByNumero(c.Request.Context(), c.Param("numero"))
	if err != nil {
		appErr := mapInterventionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromIntervention(i))
}

func (h *InterventionHandler) ListInterventions(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapInterventionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInterventions(items))
}

func (h *InterventionHandler) ListByReclamation(c *gin.Context) {
	items, err := h.usecase.ListByReclamationID(c.Request.Context(), c.Param("reclamation_id"))
	if err != nil {
		appErr := mapInterventionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInterventions(items))
}

func (h *InterventionHandler) ListByStatus(c *gin.Context) {
	items, err := h.usecase.ListByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		appErr := mapInterventionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInterventions(items))
}

// UpdateIntervention applies a partial merge on a non-terminal intervention.
func (h *InterventionHandler) UpdateIntervention(c *gin.Context) {
	var payload request.UpdateInterventionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInterventionPayload.HTTPStatus, errInvalidInterventionPayload.ToHTTPError())
		return
	}

	i, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToUpdate())
	if err != nil {
		appErr := mapInterventionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromIntervention(i))
}

// StartIntervention moves a planned intervention to in_progress.
func (h *InterventionHandler) StartIntervention(c *gin.Context) {
	i, err := h.usecase.Start(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInterventionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromIntervention(i))
}

// FinishIntervention completes an in_progress intervention with its report.
func (h *InterventionHandler) FinishIntervention(c *gin.Context) {
	var payload request.FinishInterventionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInterventionPayload.HTTPStatus, errInvalidInterventionPayload.ToHTTPError())
		return
	}

	i, err := h.usecase.Finish(c.Request.Context(), c.Param("id"), payload.Report)
	if err != nil {
		appErr := mapInterventionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromIntervention(i))
}

func (h *InterventionHandler) CancelIntervention(c *gin.Context) {
	i, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInterventionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromIntervention(i))
}

// createdByFrom resolves the acting responsable. Auth is handled upstream
// (gateway); only the identity header travels with the request.
func createdByFrom(c *gin.Context) string {
	if email := strings.TrimSpace(c.GetHeader("X-User-Email")); email != "" {
		return email
	}
	return "system"
}

func mapInterventionError(err error) *pkg.AppError {
	var transition *entities.InvalidTransitionError
	switch {
	case errors.As(err, &transition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", transition.Error(), http.StatusConflict)
	case errors.Is(err, interfaces.ErrVersionConflict):
		return pkg.NewDomainErrorSimple("CONFLICT", "Intervention was modified concurrently", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidIntervention),
		errors.Is(err, usecase.ErrInvalidReclamationID),
		errors.Is(err, usecase.ErrInvalidNumero),
		errors.Is(err, usecase.ErrInvalidPlannedDate),
		errors.Is(err, usecase.ErrMissingDescription),
		errors.Is(err, usecase.ErrInvalidStatusFilter),
		errors.Is(err, usecase.ErrUnknownTechnician),
		errors.Is(err, entities.ErrEmptyReport):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInterventionNotFound):
		return pkg.NewDomainErrorSimple("INTERVENTION_NOT_FOUND", "Intervention not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
