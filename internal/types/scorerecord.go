package types

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ScoreSummary is the denormalized roll-up stored alongside each snapshot.
type ScoreSummary struct {
	PillarAverage   float64 `json:"pillar_average"`
	CategoryAverage float64 `json:"category_average"`
}

// ScoreRecord is one completed-assessment snapshot. Records are append-only:
// they are created once and never updated, and the newest record per user is
// what the dashboard renders.
type ScoreRecord struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID      `gorm:"type:uuid;index;not null" json:"user_id"`
	User           *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	PillarScores   datatypes.JSON `gorm:"type:jsonb;column:pillar_scores" json:"pillar_scores"`
	CategoryScores datatypes.JSON `gorm:"type:jsonb;column:category_scores" json:"category_scores"`
	PillarReports  datatypes.JSON `gorm:"type:jsonb;column:pillar_reports" json:"pillar_reports"`
	Summary        datatypes.JSON `gorm:"type:jsonb;column:summary" json:"summary"`
	CreatedAt      time.Time      `gorm:"not null;index" json:"created_at"`
}

func (ScoreRecord) TableName() string {
	return "score_record"
}

func (sr *ScoreRecord) DecodePillarScores() (map[string]float64, error) {
	out := map[string]float64{}
	if len(sr.PillarScores) == 0 {
		return out, nil
	}
	err := json.Unmarshal(sr.PillarScores, &out)
	return out, err
}

func (sr *ScoreRecord) DecodeCategoryScores() (map[string]float64, error) {
	out := map[string]float64{}
	if len(sr.CategoryScores) == 0 {
		return out, nil
	}
	err := json.Unmarshal(sr.CategoryScores, &out)
	return out, err
}

func (sr *ScoreRecord) DecodePillarReports() (map[string]string, error) {
	out := map[string]string{}
	if len(sr.PillarReports) == 0 {
		return out, nil
	}
	err := json.Unmarshal(sr.PillarReports, &out)
	return out, err
}

func (sr *ScoreRecord) DecodeSummary() (ScoreSummary, error) {
	var out ScoreSummary
	if len(sr.Summary) == 0 {
		return out, nil
	}
	err := json.Unmarshal(sr.Summary, &out)
	return out, err
}
