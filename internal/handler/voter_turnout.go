package handler

import (
	"context"
	"net/http"

	"elections-api/internal/models"

	"github.com/gin-gonic/gin"
)

// VoterTurnoutHandler handles voter turnout requests
type VoterTurnoutHandler struct {
	service VoterTurnoutService
}

// Service interface for dependency injection
type VoterTurnoutService interface {
	List(ctx context.Context) ([]models.Institution, error)
}

// NewVoterTurnoutHandler creates a new voter turnout handler
func NewVoterTurnoutHandler(svc VoterTurnoutService) *VoterTurnoutHandler {
	return &VoterTurnoutHandler{service: svc}
}

// List handles GET /api/voter-turnout requests
//
//	@Summary	List on-campus voter turnout by institution
//	@Produce	json
//	@Success	200	{array}	models.Institution
//	@Router		/api/voter-turnout [get]
func (h *VoterTurnoutHandler) List(c *gin.Context) {
	institutions, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, institutions)
}
