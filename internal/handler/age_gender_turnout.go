package handler

import (
	"context"
	"net/http"

	"elections-api/internal/models"

	"github.com/gin-gonic/gin"
)

// AgeGenderTurnoutHandler handles age/gender turnout requests
type AgeGenderTurnoutHandler struct {
	service AgeGenderTurnoutService
}

// Service interface for dependency injection
type AgeGenderTurnoutService interface {
	List(ctx context.Context) ([]models.AgeGenderTurnout, error)
}

// NewAgeGenderTurnoutHandler creates a new age/gender turnout handler
func NewAgeGenderTurnoutHandler(svc AgeGenderTurnoutService) *AgeGenderTurnoutHandler {
	return &AgeGenderTurnoutHandler{service: svc}
}

// List handles GET /api/age-gender-turnout requests
//
//	@Summary	List turnout by age group, gender and province
//	@Produce	json
//	@Success	200	{array}	models.AgeGenderTurnout
//	@Router		/api/age-gender-turnout [get]
func (h *AgeGenderTurnoutHandler) List(c *gin.Context) {
	records, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, records)
}
