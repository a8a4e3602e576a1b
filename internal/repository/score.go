package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/cookiemilk-backend/internal/entity"
)

var ErrUnknownOutcome = errors.New("unknown outcome")

const scoreKeyPrefix = "score:"

type ScoreRepository interface {
	Record(ctx context.Context, outcome entity.Outcome) error
	Get(ctx context.Context) (*entity.Scoreboard, error)
}

type dbScore struct {
	client *redis.Client
}

func NewScoreRepository(client *redis.Client) ScoreRepository {
	return &dbScore{
		client: client,
	}
}

func (that *dbScore) Record(ctx context.Context, outcome entity.Outcome) error {
	if err := validateOutcome(outcome); err != nil {
		return err
	}

	if err := that.client.Incr(ctx, scoreKeyPrefix+string(outcome)).Err(); err != nil {
		return fmt.Errorf("failed to record %s: %w", outcome, err)
	}

	return nil
}

func (that *dbScore) Get(ctx context.Context) (*entity.Scoreboard, error) {
	keys := make([]string, 0, len(entity.Outcomes))
	for _, outcome := range entity.Outcomes {
		keys = append(keys, scoreKeyPrefix+string(outcome))
	}

	values, err := that.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get scores: %w", err)
	}

	score := &entity.Scoreboard{}
	for i, value := range values {
		// missing keys come back as nil
		raw, ok := value.(string)
		if !ok {
			continue
		}

		count, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", keys[i], err)
		}

		score.Add(entity.Outcomes[i], count)
	}

	return score, nil
}

func validateOutcome(outcome entity.Outcome) error {
	for _, known := range entity.Outcomes {
		if outcome == known {
			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrUnknownOutcome, outcome)
}
