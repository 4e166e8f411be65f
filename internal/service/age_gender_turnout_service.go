package service

import (
	"context"
	"fmt"

	"elections-api/internal/models"
)

// AgeGenderTurnoutService exposes the turnout breakdown by age group,
// gender and province
type AgeGenderTurnoutService struct {
	repo AgeGenderTurnoutRepository
}

// AgeGenderTurnoutRepository interface for dependency injection
type AgeGenderTurnoutRepository interface {
	ListAgeGenderTurnout(ctx context.Context) ([]models.AgeGenderTurnout, error)
}

// NewAgeGenderTurnoutService creates a new age/gender turnout service
func NewAgeGenderTurnoutService(repo AgeGenderTurnoutRepository) *AgeGenderTurnoutService {
	return &AgeGenderTurnoutService{repo: repo}
}

// List returns the full age/gender turnout record set
func (s *AgeGenderTurnoutService) List(ctx context.Context) ([]models.AgeGenderTurnout, error) {
	records, err := s.repo.ListAgeGenderTurnout(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list age/gender turnout: %w", err)
	}

	if records == nil {
		records = []models.AgeGenderTurnout{}
	}
	return records, nil
}
