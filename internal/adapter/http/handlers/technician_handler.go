package handlers

import (
	"net/http"

	response "sav_interventions/internal/adapter/http/dto/response"
	"sav_interventions/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// TechnicianHandler serves the read-only technician roster.

type TechnicianHandler struct {
	roster interfaces.ITechnicianRoster
}

func NewTechnicianHandler(roster interfaces.ITechnicianRoster) *TechnicianHandler {
	return &TechnicianHandler{roster: roster}
}

func (h *TechnicianHandler) ListTechnicians(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromTechnicians(h.roster.List()))
}
