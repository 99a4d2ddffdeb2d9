package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/summitlabs/ascent-backend/internal/logger"
	"github.com/summitlabs/ascent-backend/internal/types"
)

// ScoreCache keeps the newest score record per user so dashboard reads skip
// the history query. It is strictly an accelerator: every method tolerates a
// cold or absent cache.
type ScoreCache interface {
	SetLatest(ctx context.Context, record *types.ScoreRecord) error
	GetLatest(ctx context.Context, userID string) (*types.ScoreRecord, error)
}

type scoreCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

// NewScoreCache connects to redis at REDIS_ADDR. Returns an error when the
// address is missing or unreachable; callers treat that as "run without a
// cache", not as a boot failure.
func NewScoreCache(log *logger.Logger) (ScoreCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &scoreCache{
		log: log.With("service", "ScoreCache"),
		rdb: rdb,
		ttl: 24 * time.Hour,
	}, nil
}

func latestKey(userID string) string {
	return "score:latest:" + userID
}

func (c *scoreCache) SetLatest(ctx context.Context, record *types.ScoreRecord) error {
	if record == nil {
		return nil
	}
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal score record: %w", err)
	}
	return c.rdb.Set(ctx, latestKey(record.UserID.String()), raw, c.ttl).Err()
}

func (c *scoreCache) GetLatest(ctx context.Context, userID string) (*types.ScoreRecord, error) {
	raw, err := c.rdb.Get(ctx, latestKey(userID)).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var record types.ScoreRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("unmarshal cached score record: %w", err)
	}
	return &record, nil
}
