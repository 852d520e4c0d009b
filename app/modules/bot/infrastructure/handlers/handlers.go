package bothandlers

import (
	"log/slog"
	"net/http"

	botservice "github.com/Black-And-White-Club/matchday/app/modules/bot/application"
	"github.com/Black-And-White-Club/matchday/app/shared/httpx"
	"github.com/go-chi/chi/v5"
)

// BotHandlers serves the bot roster of a competition.
type BotHandlers struct {
	service botservice.Service
	logger  *slog.Logger
}

// NewBotHandlers creates a new BotHandlers instance.
func NewBotHandlers(service botservice.Service, logger *slog.Logger) *BotHandlers {
	return &BotHandlers{
		service: service,
		logger:  logger,
	}
}

// Register mounts the bot routes on r.
func (h *BotHandlers) Register(r chi.Router) {
	r.Get("/competitions/{competitionID}/bots", h.HandleListBots)
	r.Put("/competitions/{competitionID}/bots", h.HandleRegenerateBots)
	r.Delete("/competitions/{competitionID}/bots", h.HandleDeleteBots)
}

func (h *BotHandlers) HandleListBots(w http.ResponseWriter, r *http.Request) {
	competitionID, err := httpx.PathInt64(r, "competitionID")
	if err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	bots, err := h.service.ListBots(r.Context(), competitionID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	if bots == nil {
		bots = []botservice.BotInfo{}
	}
	httpx.WriteJSON(w, http.StatusOK, bots)
}

// HandleRegenerateBots replaces the roster with the usernames in the body.
func (h *BotHandlers) HandleRegenerateBots(w http.ResponseWriter, r *http.Request) {
	actor, ok := httpx.RequireActor(w, r)
	if !ok {
		return
	}
	competitionID, err := httpx.PathInt64(r, "competitionID")
	if err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	var req botservice.RegenerateRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	bots, err := h.service.RegenerateBots(r.Context(), competitionID, actor, req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, bots)
}

func (h *BotHandlers) HandleDeleteBots(w http.ResponseWriter, r *http.Request) {
	actor, ok := httpx.RequireActor(w, r)
	if !ok {
		return
	}
	competitionID, err := httpx.PathInt64(r, "competitionID")
	if err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	if err := h.service.DeleteBots(r.Context(), competitionID, actor); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
