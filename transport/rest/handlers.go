package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/gridlab/sudoku-pool-backend/internal/apperror"
	"github.com/gridlab/sudoku-pool-backend/internal/entity"
)

const leaderboardLimit = 10

type registerRequest struct {
	Identity string `json:"identity,omitempty"`
}

type registerResponse struct {
	Player *entity.Player `json:"player"`
	Token  string         `json:"token"`
}

type addGameRequest struct {
	Board    entity.Grid `json:"board"`
	Solution entity.Grid `json:"solution"`
}

type addGameResponse struct {
	GameID int `json:"game_id"`
}

type submitSolutionRequest struct {
	Solution entity.Grid `json:"solution"`
}

type playerResponse struct {
	Player *entity.Player `json:"player"`
}

type progressResponse struct {
	Player *entity.Player `json:"player"`
	Board  entity.Grid    `json:"board"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

// handleRegister - registers an identity; a fresh one is minted when the
// request does not carry its own. Responds with the player and its session
// token.
func (that *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		that.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	identity := req.Identity
	if identity == "" {
		identity = uuid.NewString()
	}

	player, err := that.coordinator.Register(r.Context(), identity)
	if err != nil {
		that.writeCoordinatorError(w, err)
		return
	}

	token, err := that.auth.GenerateToken(identity)
	if err != nil {
		that.logger.Error("failed to generate token", "error", err)
		that.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	that.writeJSON(w, http.StatusCreated, registerResponse{Player: player, Token: token})
}

func (that *Server) handleAddGame(w http.ResponseWriter, r *http.Request) {
	var req addGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	gameID, err := that.coordinator.AddGame(r.Context(), identityFromContext(r.Context()), req.Board, req.Solution)
	if err != nil {
		that.writeCoordinatorError(w, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, addGameResponse{GameID: gameID})
}

func (that *Server) handleSubmitSolution(w http.ResponseWriter, r *http.Request) {
	var req submitSolutionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	player, err := that.coordinator.SubmitSolution(r.Context(), identityFromContext(r.Context()), req.Solution)
	if err != nil {
		that.writeCoordinatorError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, playerResponse{Player: player})
}

func (that *Server) handlePass(w http.ResponseWriter, r *http.Request) {
	player, err := that.coordinator.Pass(r.Context(), identityFromContext(r.Context()))
	if err != nil {
		that.writeCoordinatorError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, playerResponse{Player: player})
}

func (that *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	player, game, err := that.coordinator.Progress(r.Context(), identityFromContext(r.Context()))
	if err != nil {
		that.writeCoordinatorError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, progressResponse{Player: player, Board: game.Board})
}

func (that *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	stats, err := that.coordinator.TopSolvers(r.Context(), leaderboardLimit)
	if err != nil {
		that.writeCoordinatorError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, stats)
}

// writeCoordinatorError - maps the core error taxonomy to status codes.
func (that *Server) writeCoordinatorError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperror.ErrAlreadyRegistered),
		errors.Is(err, apperror.ErrNoPlayableGames):
		that.writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, apperror.ErrNotRegistered):
		that.writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, apperror.ErrInvalidBoard),
		errors.Is(err, apperror.ErrInvalidSolution),
		errors.Is(err, apperror.ErrBadGridShape),
		errors.Is(err, apperror.ErrIncompleteUnit):
		that.writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		that.logger.Error("operation failed", "error", err)
		that.writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}

func (that *Server) writeError(w http.ResponseWriter, status int, message string) {
	that.writeJSON(w, status, errorResponse{Error: message})
}
