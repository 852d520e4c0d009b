package matchhandlers

import (
	"log/slog"
	"net/http"

	matchservice "github.com/Black-And-White-Club/matchday/app/modules/match/application"
	"github.com/Black-And-White-Club/matchday/app/shared/httpx"
	"github.com/go-chi/chi/v5"
)

// MatchHandlers implements the Handlers interface.
type MatchHandlers struct {
	service matchservice.Service
	logger  *slog.Logger
}

// NewMatchHandlers creates a new MatchHandlers instance.
func NewMatchHandlers(service matchservice.Service, logger *slog.Logger) Handlers {
	return &MatchHandlers{
		service: service,
		logger:  logger,
	}
}

// SubmitScoresRequest maps signed participant ids to scores. JSON object keys are
// the decimal ids, e.g. {"scores": {"1": 21, "-7": 15}}.
type SubmitScoresRequest struct {
	Scores map[int64]int `json:"scores"`
}

// Register mounts the match routes on r.
func (h *MatchHandlers) Register(r chi.Router) {
	r.Post("/matches", h.HandleCreateMatch)
	r.Get("/matches/{matchID}", h.HandleGetMatch)
	r.Delete("/matches/{matchID}", h.HandleDeleteMatch)
	r.Post("/matches/{matchID}/start", h.HandleStartMatch)
	r.Put("/matches/{matchID}/scores", h.HandleSubmitScores)
	r.Get("/competitions/{competitionID}/matches", h.HandleListMatches)
}

// HandleCreateMatch creates a pending match in the competition named by the body.
func (h *MatchHandlers) HandleCreateMatch(w http.ResponseWriter, r *http.Request) {
	actor, ok := httpx.RequireActor(w, r)
	if !ok {
		return
	}

	var req matchservice.CreateMatchRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	match, err := h.service.CreateMatch(r.Context(), actor, req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, match)
}

func (h *MatchHandlers) HandleListMatches(w http.ResponseWriter, r *http.Request) {
	competitionID, err := httpx.PathInt64(r, "competitionID")
	if err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	matches, err := h.service.ListMatches(r.Context(), competitionID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	if matches == nil {
		matches = []*matchservice.MatchInfo{}
	}
	httpx.WriteJSON(w, http.StatusOK, matches)
}

func (h *MatchHandlers) HandleGetMatch(w http.ResponseWriter, r *http.Request) {
	matchID, err := httpx.PathInt64(r, "matchID")
	if err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	match, err := h.service.GetMatch(r.Context(), matchID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, match)
}

// HandleStartMatch moves a pending match to in progress.
func (h *MatchHandlers) HandleStartMatch(w http.ResponseWriter, r *http.Request) {
	actor, ok := httpx.RequireActor(w, r)
	if !ok {
		return
	}
	matchID, err := httpx.PathInt64(r, "matchID")
	if err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	match, err := h.service.StartMatch(r.Context(), matchID, actor)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, match)
}

// HandleSubmitScores replaces the ledger of a match and completes it.
func (h *MatchHandlers) HandleSubmitScores(w http.ResponseWriter, r *http.Request) {
	actor, ok := httpx.RequireActor(w, r)
	if !ok {
		return
	}
	matchID, err := httpx.PathInt64(r, "matchID")
	if err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	var req SubmitScoresRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}
	if req.Scores == nil {
		req.Scores = map[int64]int{}
	}

	match, err := h.service.SubmitScores(r.Context(), matchID, actor, req.Scores)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, match)
}

func (h *MatchHandlers) HandleDeleteMatch(w http.ResponseWriter, r *http.Request) {
	actor, ok := httpx.RequireActor(w, r)
	if !ok {
		return
	}
	matchID, err := httpx.PathInt64(r, "matchID")
	if err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	if err := h.service.DeleteMatch(r.Context(), matchID, actor); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
