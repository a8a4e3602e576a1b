package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rocketscienceinc/cookiemilk-backend/internal/apperror"
	"github.com/rocketscienceinc/cookiemilk-backend/internal/entity"
)

type BoardHandler interface {
	Board(w http.ResponseWriter, r *http.Request)
	Reset(w http.ResponseWriter, r *http.Request)
	Place(w http.ResponseWriter, r *http.Request)
	RandomBoard(w http.ResponseWriter, r *http.Request)
	Scoreboard(w http.ResponseWriter, r *http.Request)
}

type gameSession interface {
	Board(ctx context.Context) string
	Reset(ctx context.Context) string
	Place(ctx context.Context, team entity.Team, column int) (string, error)
	RandomBoard(ctx context.Context) string

	Scoreboard(ctx context.Context) (*entity.Scoreboard, error)
}

type boardHandler struct {
	logger  *slog.Logger
	session gameSession
}

func NewBoardHandler(logger *slog.Logger, session gameSession) BoardHandler {
	return &boardHandler{
		logger:  logger.With("component", "board-handler"),
		session: session,
	}
}

func (that *boardHandler) Board(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, that.session.Board(r.Context()))
}

func (that *boardHandler) Reset(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, that.session.Reset(r.Context()))
}

func (that *boardHandler) Place(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Place", "request_id", middleware.GetReqID(r.Context()))

	team, err := entity.ParseTeam(chi.URLParam(r, "team"))
	if err != nil {
		log.Debug("rejected team", "error", err)
		writeText(w, http.StatusBadRequest, "unknown team")
		return
	}

	column, err := strconv.Atoi(chi.URLParam(r, "column"))
	if err != nil {
		log.Debug("rejected column", "error", err)
		writeText(w, http.StatusBadRequest, "invalid column")
		return
	}

	rendering, err := that.session.Place(r.Context(), team, column)
	switch {
	case errors.Is(err, apperror.ErrColumnOutOfRange):
		writeText(w, http.StatusBadRequest, "out of range")
	case err != nil:
		log.Info("move refused", "team", team, "column", column, "error", err)
		writeText(w, http.StatusServiceUnavailable, rendering)
	default:
		writeText(w, http.StatusOK, rendering)
	}
}

func (that *boardHandler) RandomBoard(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, that.session.RandomBoard(r.Context()))
}

func (that *boardHandler) Scoreboard(w http.ResponseWriter, r *http.Request) {
	score, err := that.session.Scoreboard(r.Context())
	if err != nil {
		that.logger.Error("failed to get scoreboard", "error", err, "request_id", middleware.GetReqID(r.Context()))
		writeText(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeText(w, http.StatusOK, score.Display())
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
