package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/summitlabs/ascent-backend/internal/logger"
	"github.com/summitlabs/ascent-backend/internal/normalization"
	"github.com/summitlabs/ascent-backend/internal/repos"
	"github.com/summitlabs/ascent-backend/internal/requestdata"
	"github.com/summitlabs/ascent-backend/internal/types"
)

// ProfileInput is the writable slice of a user's company profile.
type ProfileInput struct {
	CompanyName   string `json:"company_name"`
	Industry      string `json:"industry"`
	CompanySize   string `json:"company_size"`
	BusinessStage string `json:"business_stage"`
	Bio           string `json:"bio"`
}

type ProfileService interface {
	GetMine(ctx context.Context) (*types.UserProfile, error)
	UpsertMine(ctx context.Context, input ProfileInput) (*types.UserProfile, error)
}

type profileService struct {
	db          *gorm.DB
	log         *logger.Logger
	profileRepo repos.UserProfileRepo
}

func NewProfileService(db *gorm.DB, log *logger.Logger, profileRepo repos.UserProfileRepo) ProfileService {
	return &profileService{db: db, log: log.With("service", "ProfileService"), profileRepo: profileRepo}
}

func (ps *profileService) GetMine(ctx context.Context) (*types.UserProfile, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, fmt.Errorf("no user in request context")
	}
	profiles, err := ps.profileRepo.GetByUserIDs(ctx, nil, []uuid.UUID{rd.UserID})
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if len(profiles) == 0 {
		return nil, nil
	}
	return profiles[0], nil
}

func (ps *profileService) UpsertMine(ctx context.Context, input ProfileInput) (*types.UserProfile, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, fmt.Errorf("no user in request context")
	}
	profile := &types.UserProfile{
		ID:            uuid.New(),
		UserID:        rd.UserID,
		CompanyName:   normalization.TrimInputString(input.CompanyName),
		Industry:      normalization.TrimInputString(input.Industry),
		CompanySize:   normalization.TrimInputString(input.CompanySize),
		BusinessStage: normalization.TrimInputString(input.BusinessStage),
		Bio:           normalization.TrimInputString(input.Bio),
	}
	saved, err := ps.profileRepo.Upsert(ctx, nil, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return saved, nil
}
