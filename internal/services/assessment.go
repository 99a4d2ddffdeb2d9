package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/summitlabs/ascent-backend/internal/cache"
	"github.com/summitlabs/ascent-backend/internal/logger"
	"github.com/summitlabs/ascent-backend/internal/repos"
	"github.com/summitlabs/ascent-backend/internal/scoring"
	"github.com/summitlabs/ascent-backend/internal/types"
)

// AssessmentService runs the scoring pipeline for a completed questionnaire:
// pillar scores, category scores, per-pillar advice, summary averages, and
// the append to the user's score history. The steps are strictly ordered
// because each consumes the previous step's output.
type AssessmentService interface {
	CompleteAssessment(ctx context.Context, userID uuid.UUID, answers map[string]scoring.Answer) (*types.ScoreRecord, error)
	SaveScores(ctx context.Context, userID uuid.UUID, pillarScores map[scoring.Pillar]float64, categoryScores map[scoring.Category]float64) (*types.ScoreRecord, error)
	History(ctx context.Context, userID uuid.UUID) ([]*types.ScoreRecord, error)
	Latest(ctx context.Context, userID uuid.UUID) (*types.ScoreRecord, error)
	AllRecords(ctx context.Context) ([]*types.ScoreRecord, error)
}

type assessmentService struct {
	log        *logger.Logger
	scoreRepo  repos.ScoreRecordRepo
	resolver   *scoring.AdviceResolver
	scoreCache cache.ScoreCache
}

// NewAssessmentService wires the pipeline. scoreCache may be nil; caching is
// an accelerator, never a dependency.
func NewAssessmentService(log *logger.Logger, scoreRepo repos.ScoreRecordRepo, resolver *scoring.AdviceResolver, scoreCache cache.ScoreCache) AssessmentService {
	return &assessmentService{
		log:        log.With("service", "AssessmentService"),
		scoreRepo:  scoreRepo,
		resolver:   resolver,
		scoreCache: scoreCache,
	}
}

func (s *assessmentService) CompleteAssessment(ctx context.Context, userID uuid.UUID, answers map[string]scoring.Answer) (*types.ScoreRecord, error) {
	ctx, span := otel.Tracer("assessment").Start(ctx, "assessment.complete")
	defer span.End()
	span.SetAttributes(attribute.Int("assessment.answer_count", len(answers)))

	pillarScores := scoring.CalculateAllPillarScores(answers)
	categoryScores := scoring.CalculateCategoryScores(answers)
	return s.SaveScores(ctx, userID, pillarScores, categoryScores)
}

// SaveScores builds a snapshot and appends it to the user's history. A
// persistence failure is logged and swallowed: the caller still gets the
// computed record, because the user flow must not be blocked by a storage
// hiccup.
func (s *assessmentService) SaveScores(ctx context.Context, userID uuid.UUID, pillarScores map[scoring.Pillar]float64, categoryScores map[scoring.Category]float64) (*types.ScoreRecord, error) {
	reports := s.resolver.PillarReports(pillarScores, userID.String())
	summary := types.ScoreSummary{
		PillarAverage:   scoring.MeanOf(pillarScores),
		CategoryAverage: scoring.MeanOf(categoryScores),
	}

	record, err := buildScoreRecord(userID, pillarScores, categoryScores, reports, summary)
	if err != nil {
		return nil, err
	}

	if _, err := s.scoreRepo.Append(ctx, nil, []*types.ScoreRecord{record}); err != nil {
		s.log.Error("Failed to append score record", "user_id", userID.String(), "error", err)
		return record, nil
	}
	if s.scoreCache != nil {
		if err := s.scoreCache.SetLatest(ctx, record); err != nil {
			s.log.Warn("Failed to cache latest score record", "user_id", userID.String(), "error", err)
		}
	}
	return record, nil
}

func (s *assessmentService) History(ctx context.Context, userID uuid.UUID) ([]*types.ScoreRecord, error) {
	return s.scoreRepo.GetByUserID(ctx, nil, userID)
}

func (s *assessmentService) Latest(ctx context.Context, userID uuid.UUID) (*types.ScoreRecord, error) {
	if s.scoreCache != nil {
		cached, err := s.scoreCache.GetLatest(ctx, userID.String())
		if err != nil {
			s.log.Warn("Score cache read failed", "user_id", userID.String(), "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}
	return s.scoreRepo.GetLatestByUserID(ctx, nil, userID)
}

func (s *assessmentService) AllRecords(ctx context.Context) ([]*types.ScoreRecord, error) {
	return s.scoreRepo.GetAll(ctx, nil)
}

func buildScoreRecord(userID uuid.UUID, pillarScores map[scoring.Pillar]float64, categoryScores map[scoring.Category]float64, reports map[scoring.Pillar]string, summary types.ScoreSummary) (*types.ScoreRecord, error) {
	pillarJSON, err := json.Marshal(pillarScores)
	if err != nil {
		return nil, fmt.Errorf("marshal pillar scores: %w", err)
	}
	categoryJSON, err := json.Marshal(categoryScores)
	if err != nil {
		return nil, fmt.Errorf("marshal category scores: %w", err)
	}
	reportsJSON, err := json.Marshal(reports)
	if err != nil {
		return nil, fmt.Errorf("marshal pillar reports: %w", err)
	}
	summaryJSON, err := json.Marshal(summary)
	if err != nil {
		return nil, fmt.Errorf("marshal summary: %w", err)
	}
	return &types.ScoreRecord{
		ID:             uuid.New(),
		UserID:         userID,
		PillarScores:   pillarJSON,
		CategoryScores: categoryJSON,
		PillarReports:  reportsJSON,
		Summary:        summaryJSON,
		CreatedAt:      time.Now().UTC(),
	}, nil
}
