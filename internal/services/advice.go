package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/summitlabs/ascent-backend/internal/logger"
	"github.com/summitlabs/ascent-backend/internal/types"
)

// narrativeText is the placeholder recommendation returned until the real
// inference backend lands. TODO: replace with the LLM advice client once the
// inference service exposes its endpoint.
const narrativeText = `Based on your assessment results, I provide the following business recommendations:

🎯 **Key Findings**
Your business performs well across multiple dimensions, particularly in customer service and team collaboration. Here are targeted improvement suggestions:

📈 **Priority Improvement Areas**
1. **Process Optimization**: Recommend implementing more systematic project management processes
2. **Technology Upgrade**: Consider introducing automation tools to improve efficiency
3. **Market Expansion**: Explore new market opportunities based on existing advantages

💡 **Specific Action Recommendations**
• Establish weekly team review meeting mechanisms
• Invest in customer relationship management systems
• Develop quarterly goal tracking systems

🚀 **Expected Outcomes**
After implementing these recommendations, you can expect to see significant efficiency improvements and customer satisfaction enhancements within 3-6 months.

*This advice is generated based on your assessment data. Regular re-assessment is recommended to track progress.*`

// NarrativeAdvice is a generated long-form recommendation for one user.
type NarrativeAdvice struct {
	Advice    string    `json:"advice"`
	Timestamp time.Time `json:"timestamp"`
}

type AdviceService interface {
	Narrative(ctx context.Context, userID uuid.UUID, record *types.ScoreRecord) (*NarrativeAdvice, error)
}

type adviceService struct {
	log   *logger.Logger
	delay time.Duration
}

// NewAdviceService builds the narrative-advice placeholder. The delay
// simulates inference latency so the consuming UI exercises its loading
// states; it is context-cancellable.
func NewAdviceService(log *logger.Logger, delay time.Duration) AdviceService {
	return &adviceService{log: log.With("service", "AdviceService"), delay: delay}
}

func (s *adviceService) Narrative(ctx context.Context, userID uuid.UUID, record *types.ScoreRecord) (*NarrativeAdvice, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	s.log.Debug("Narrative advice generated", "user_id", userID.String())
	return &NarrativeAdvice{
		Advice:    narrativeText,
		Timestamp: time.Now().UTC(),
	}, nil
}
