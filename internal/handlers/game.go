package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vancomm/sudoku-server/internal/config"
	"github.com/vancomm/sudoku-server/internal/corpus"
	"github.com/vancomm/sudoku-server/internal/middleware"
	"github.com/vancomm/sudoku-server/internal/repository"
	"github.com/vancomm/sudoku-server/internal/sudoku"
)

type GameHandler struct {
	logger *slog.Logger
	repo   *repository.Queries
	ws     *config.WebSocket
	rnd    *rand.Rand
}

func NewGameHandler(
	logger *slog.Logger,
	db *pgxpool.Pool,
	ws *config.WebSocket,
	rnd *rand.Rand,
) *GameHandler {
	return &GameHandler{
		logger: logger,
		repo:   repository.New(db),
		ws:     ws,
		rnd:    rnd,
	}
}

// NewGame starts a session. An explicit 81-digit definition may be supplied
// via the `puzzle` query parameter; otherwise one is drawn from the bundled
// catalog.
func (g GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseNewGameDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	def := dto.Puzzle
	if def == "" {
		def = corpus.Pick(g.rnd)
	}

	board, err := sudoku.New(def)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	var sessionParams repository.CreateGameSessionParams
	if claims, ok := middleware.PlayerClaims(r); ok {
		g.logger.Debug("creating player session", "player_id", claims.PlayerId)
		sessionParams.PlayerId = &claims.PlayerId
	}

	session, err := g.repo.CreateGameSession(r.Context(), board, sessionParams)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to create game session", "error", err)
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(session, board))
}

func (g GameHandler) fetchSession(
	w http.ResponseWriter, r *http.Request,
) (*repository.GameSession, *sudoku.Board, bool) {
	sessionId, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return nil, nil, false
	}

	session, err := g.repo.FetchGameSession(r.Context(), sessionId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return nil, nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to fetch session from db", "error", err)
		return nil, nil, false
	}

	if claims, ok := middleware.PlayerClaims(r); ok &&
		session.PlayerId != nil && *session.PlayerId != claims.PlayerId {
		w.WriteHeader(http.StatusUnauthorized)
		return nil, nil, false
	}

	board, err := session.Board()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("db returned invalid game_session.state", "error", err)
		return nil, nil, false
	}

	return session, board, true
}

func (g GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	session, board, ok := g.fetchSession(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, g.logger, NewGameSessionDTO(session, board))
}

// persist writes the board back into the session row, maintaining the won
// flag and the session end timestamp from the board's current state.
func (g GameHandler) persist(
	r *http.Request, session *repository.GameSession, board *sudoku.Board,
) (*repository.GameSession, error) {
	state, err := board.Bytes()
	if err != nil {
		return nil, fmt.Errorf("unable to serialize board state: %w", err)
	}

	won := board.Won()
	params := repository.UpdateGameSessionParams{
		Won:   &won,
		State: &state,
	}
	if won && !session.EndedAt.Valid {
		now := time.Now().UTC()
		params.EndedAt = &now
	} else if !won && session.EndedAt.Valid {
		// a solved board mutated back out of its win state
		params.ClearEndedAt = true
	}

	return g.repo.UpdateGameSession(r.Context(), session.GameSessionId, params)
}

// Move writes a value into one cell. A move rejected by the board (fixed
// cell, out-of-range value) is a normal outcome reported via the `accepted`
// field, not an error.
func (g GameHandler) Move(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseMoveDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}
	if !dto.InBounds() {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(fmt.Errorf("invalid cell position")))
		return
	}

	session, board, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	accepted := board.SetCell(dto.Row, dto.Col, dto.Value)
	if accepted {
		session, err = g.persist(r, session, board)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			g.logger.Error("unable to update session in db", "error", err)
			return
		}
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(session, board).withAccepted(accepted))
}

// Restart erases every player move, returning the board to its givens.
func (g GameHandler) Restart(w http.ResponseWriter, r *http.Request) {
	session, board, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	board.Restart()

	session, err := g.persist(r, session, board)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to update session in db", "error", err)
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(session, board))
}

func (g GameHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repository.LeaderboardFilter{}

	if query.Has("username") {
		username := query.Get("username")
		filter.Username = &username
	}
	if query.Has("puzzle") {
		puzzle := query.Get("puzzle")
		filter.Puzzle = &puzzle
	}

	entries, err := g.repo.GetLeaderboard(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to fetch leaderboard", "error", err, "filter", filter)
		return
	}

	sendJSONOrLog(w, g.logger, entries)
}
