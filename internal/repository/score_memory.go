package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/cookiemilk-backend/internal/entity"
)

// memoryScore keeps the scoreboard for the lifetime of the process.
type memoryScore struct {
	mu    sync.RWMutex
	score entity.Scoreboard
}

func NewMemoryScoreRepository() ScoreRepository {
	return &memoryScore{}
}

func (that *memoryScore) Record(_ context.Context, outcome entity.Outcome) error {
	if err := validateOutcome(outcome); err != nil {
		return err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.score.Add(outcome, 1)

	return nil
}

func (that *memoryScore) Get(_ context.Context) (*entity.Scoreboard, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	score := that.score

	return &score, nil
}
