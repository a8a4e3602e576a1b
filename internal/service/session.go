package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/rocketscienceinc/cookiemilk-backend/internal/apperror"
	"github.com/rocketscienceinc/cookiemilk-backend/internal/entity"
)

const DefaultSeed int64 = 2024

type GameSession interface {
	Board(ctx context.Context) string
	Reset(ctx context.Context) string
	Place(ctx context.Context, team entity.Team, column int) (string, error)
	RandomBoard(ctx context.Context) string

	Scoreboard(ctx context.Context) (*entity.Scoreboard, error)
}

type scoreRepo interface {
	Record(ctx context.Context, outcome entity.Outcome) error
	Get(ctx context.Context) (*entity.Scoreboard, error)
}

// gameSession owns the single shared board. Locks are always taken board
// first, generator second.
type gameSession struct {
	logger *slog.Logger
	seed   int64

	boardMu sync.Mutex
	board   *entity.Board

	rngMu sync.Mutex
	rng   *rand.Rand

	scoreRepo scoreRepo
}

func NewGameSession(logger *slog.Logger, seed int64, scoreRepo scoreRepo) GameSession {
	return &gameSession{
		logger:    logger.With("component", "session"),
		seed:      seed,
		board:     entity.NewBoard(),
		rng:       newRand(seed),
		scoreRepo: scoreRepo,
	}
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) //nolint: gosec // reproducible boards are required
}

func (that *gameSession) Board(_ context.Context) string {
	that.boardMu.Lock()
	defer that.boardMu.Unlock()

	return that.board.Display()
}

// Reset empties the board and rewinds the generator to the seed.
func (that *gameSession) Reset(_ context.Context) string {
	that.boardMu.Lock()
	defer that.boardMu.Unlock()

	that.rngMu.Lock()
	that.rng = newRand(that.seed)
	that.rngMu.Unlock()

	that.board.Reset()

	return that.board.Display()
}

// Place returns the rendering after the move. On a rule violation the
// unchanged rendering is returned together with the error.
func (that *gameSession) Place(ctx context.Context, team entity.Team, column int) (string, error) {
	if column < entity.FirstColumn || column > entity.LastColumn {
		return "", fmt.Errorf("%w: %d", apperror.ErrColumnOutOfRange, column)
	}

	that.boardMu.Lock()
	err := that.board.Place(team, column)
	rendering := that.board.Display()
	outcome, finished := finishedOutcome(that.board)
	that.boardMu.Unlock()

	if err != nil {
		return rendering, fmt.Errorf("failed to place %s in column %d: %w", team, column, err)
	}

	if finished {
		that.recordOutcome(ctx, outcome)
	}

	return rendering, nil
}

func (that *gameSession) RandomBoard(_ context.Context) string {
	that.boardMu.Lock()
	defer that.boardMu.Unlock()

	that.rngMu.Lock()
	that.board.Randomize(that.rng)
	that.rngMu.Unlock()

	return that.board.Display()
}

func (that *gameSession) Scoreboard(ctx context.Context) (*entity.Scoreboard, error) {
	score, err := that.scoreRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get scoreboard: %w", err)
	}

	return score, nil
}

func finishedOutcome(board *entity.Board) (entity.Outcome, bool) {
	if winner, ok := board.Winner(); ok {
		return entity.OutcomeOf(winner), true
	}

	if board.IsFull() {
		return entity.OutcomeDraw, true
	}

	return "", false
}

// recordOutcome never fails the move that finished the game.
func (that *gameSession) recordOutcome(ctx context.Context, outcome entity.Outcome) {
	log := that.logger.With("method", "recordOutcome")

	if err := that.scoreRepo.Record(ctx, outcome); err != nil {
		log.Error("failed to record outcome", "outcome", outcome, "error", err)
		return
	}

	log.Info("game finished", "outcome", outcome)
}
