package service

import (
	"context"
	"fmt"

	"elections-api/internal/models"
)

// VoterTurnoutService exposes the institution-level voter turnout data
type VoterTurnoutService struct {
	repo InstitutionRepository
}

// Repository interface for dependency injection
type InstitutionRepository interface {
	ListInstitutions(ctx context.Context) ([]models.Institution, error)
}

// NewVoterTurnoutService creates a new voter turnout service
func NewVoterTurnoutService(repo InstitutionRepository) *VoterTurnoutService {
	return &VoterTurnoutService{repo: repo}
}

// List returns every institution record in insertion order
func (s *VoterTurnoutService) List(ctx context.Context) ([]models.Institution, error) {
	institutions, err := s.repo.ListInstitutions(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list institutions: %w", err)
	}

	// An empty table serializes as [] rather than null.
	if institutions == nil {
		institutions = []models.Institution{}
	}
	return institutions, nil
}
