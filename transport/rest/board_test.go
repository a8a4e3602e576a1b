package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/cookiemilk-backend/internal/entity"
	"github.com/rocketscienceinc/cookiemilk-backend/internal/repository"
	"github.com/rocketscienceinc/cookiemilk-backend/internal/service"
)

var errStorageDown = errors.New("storage down")

type brokenScoreRepo struct{}

func (brokenScoreRepo) Record(context.Context, entity.Outcome) error { return errStorageDown }

func (brokenScoreRepo) Get(context.Context) (*entity.Scoreboard, error) { return nil, errStorageDown }

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	return newRouterWithScores(repository.NewMemoryScoreRepository())
}

func newRouterWithScores(scoreRepo repository.ScoreRepository) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	session := service.NewGameSession(logger, service.DefaultSeed, scoreRepo)

	return NewRouter(logger, NewBoardHandler(logger, session), NewPingHandler())
}

func do(t *testing.T, router http.Handler, method, path string) (int, string) {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	return rec.Code, string(body)
}

func TestPing(t *testing.T) {
	code, body := do(t, newTestRouter(t), http.MethodGet, "/ping")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "pong", body)
}

func TestBoardHandler_Board(t *testing.T) {
	// Given: a fresh router
	router := newTestRouter(t)

	// When: GET /board
	code, body := do(t, router, http.MethodGet, "/board")

	// Then: the default board is returned as plain text
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, entity.NewBoard().Display(), body)
}

func TestBoardHandler_Place(t *testing.T) {
	t.Run("Successful placement", func(t *testing.T) {
		router := newTestRouter(t)

		// When: cookie drops into column 4
		code, body := do(t, router, http.MethodPost, "/place/cookie/4")

		// Then: the board shows the tile
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "⬜⬛⬛⬛🍪⬜", strings.Split(body, "\n")[3])
	})

	t.Run("Bad requests do not touch the board", func(t *testing.T) {
		router := newTestRouter(t)

		for _, path := range []string{
			"/place/cookie/0",
			"/place/milk/5",
			"/place/milk/-1",
			"/place/milk/two",
			"/place/wall/1",
		} {
			// When: an invalid move is posted
			code, _ := do(t, router, http.MethodPost, path)

			// Then: 400 is returned
			assert.Equal(t, http.StatusBadRequest, code, path)
		}

		_, body := do(t, router, http.MethodGet, "/board")
		assert.Equal(t, entity.NewBoard().Display(), body)
	})

	t.Run("Out of range body", func(t *testing.T) {
		code, body := do(t, newTestRouter(t), http.MethodPost, "/place/cookie/9")

		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "out of range", body)
	})

	t.Run("Refused moves return 503 with the board", func(t *testing.T) {
		router := newTestRouter(t)

		// Given: cookie owns column 1
		var won string
		for range 4 {
			var code int
			code, won = do(t, router, http.MethodPost, "/place/cookie/1")
			require.Equal(t, http.StatusOK, code)
		}
		require.True(t, strings.HasSuffix(won, "🍪 wins!\n"))

		// When: milk tries to place
		code, body := do(t, router, http.MethodPost, "/place/milk/1")

		// Then: 503 with the unchanged board
		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, won, body)
	})
}

func TestBoardHandler_Reset(t *testing.T) {
	router := newTestRouter(t)

	// Given: a board with a tile and a couple of random draws
	code, _ := do(t, router, http.MethodPost, "/place/milk/2")
	require.Equal(t, http.StatusOK, code)
	_, first := do(t, router, http.MethodGet, "/random-board")
	_, _ = do(t, router, http.MethodGet, "/random-board")

	// When: POST /reset
	code, body := do(t, router, http.MethodPost, "/reset")

	// Then: the empty board is returned
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, entity.NewBoard().Display(), body)

	// Then: the random sequence starts over
	_, replay := do(t, router, http.MethodGet, "/random-board")
	assert.Equal(t, first, replay)
}

func TestBoardHandler_RandomBoard(t *testing.T) {
	// Given: two processes worth of routers
	one, two := newTestRouter(t), newTestRouter(t)

	// When: both draw a random board
	codeOne, bodyOne := do(t, one, http.MethodGet, "/random-board")
	codeTwo, bodyTwo := do(t, two, http.MethodGet, "/random-board")

	// Then: the layouts are identical and the board is full
	assert.Equal(t, http.StatusOK, codeOne)
	assert.Equal(t, http.StatusOK, codeTwo)
	assert.Equal(t, bodyOne, bodyTwo)
	assert.NotContains(t, bodyOne, entity.GlyphEmpty)

	// Then: GET /board shows the same layout
	_, board := do(t, one, http.MethodGet, "/board")
	assert.Equal(t, bodyOne, board)
}

func TestBoardHandler_Scoreboard(t *testing.T) {
	t.Run("Counts finished games", func(t *testing.T) {
		router := newTestRouter(t)

		// Given: milk wins by the bottom row
		for _, path := range []string{"/place/milk/1", "/place/milk/2", "/place/milk/3", "/place/milk/4"} {
			code, _ := do(t, router, http.MethodPost, path)
			require.Equal(t, http.StatusOK, code)
		}

		// When: GET /scoreboard
		code, body := do(t, router, http.MethodGet, "/scoreboard")

		// Then: one milk win is listed
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "🍪 0\n🥛 1\nNo winner. 0\n", body)
	})

	t.Run("Storage failure", func(t *testing.T) {
		router := newRouterWithScores(brokenScoreRepo{})

		code, _ := do(t, router, http.MethodGet, "/scoreboard")

		assert.Equal(t, http.StatusInternalServerError, code)
	})
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	code, _ := do(t, newTestRouter(t), http.MethodGet, "/reset")

	assert.Equal(t, http.StatusMethodNotAllowed, code)
}
