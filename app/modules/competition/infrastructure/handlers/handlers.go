package competitionhandlers

import (
	"log/slog"
	"net/http"

	competitionservice "github.com/Black-And-White-Club/matchday/app/modules/competition/application"
	"github.com/Black-And-White-Club/matchday/app/shared/httpx"
	"github.com/go-chi/chi/v5"
)

// CompetitionHandlers implements the Handlers interface.
type CompetitionHandlers struct {
	service competitionservice.Service
	logger  *slog.Logger
}

// NewCompetitionHandlers creates a new CompetitionHandlers instance.
func NewCompetitionHandlers(service competitionservice.Service, logger *slog.Logger) Handlers {
	return &CompetitionHandlers{
		service: service,
		logger:  logger,
	}
}

// AddParticipantsRequest is the body of the add participants route.
type AddParticipantsRequest struct {
	UserIDs []int64 `json:"user_ids"`
}

func (h *CompetitionHandlers) Register(r chi.Router) {
	r.Post("/competitions", h.HandleCreateCompetition)
	r.Get("/competitions", h.HandleListCompetitions)
	r.Get("/competitions/{competitionID}", h.HandleGetCompetition)
	r.Delete("/competitions/{competitionID}", h.HandleDeleteCompetition)
	r.Post("/competitions/{competitionID}/participants", h.HandleAddParticipants)
	r.Post("/competitions/{competitionID}/leave", h.HandleLeaveCompetition)
	r.Get("/competitions/{competitionID}/selectable-participants", h.HandleSelectableParticipants)
}

// HandleCreateCompetition creates a competition owned by the caller.
func (h *CompetitionHandlers) HandleCreateCompetition(w http.ResponseWriter, r *http.Request) {
	actor, ok := httpx.RequireActor(w, r)
	if !ok {
		return
	}

	var req competitionservice.CreateCompetitionRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	info, err := h.service.CreateCompetition(r.Context(), actor, req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, info)
}

// HandleListCompetitions lists the competitions the caller belongs to, or only the
// ones they created with ?created=true.
func (h *CompetitionHandlers) HandleListCompetitions(w http.ResponseWriter, r *http.Request) {
	actor, ok := httpx.RequireActor(w, r)
	if !ok {
		return
	}

	var (
		list []*competitionservice.CompetitionInfo
		err  error
	)
	if r.URL.Query().Get("created") == "true" {
		list, err = h.service.ListCreatedBy(r.Context(), actor)
	} else {
		list, err = h.service.ListForUser(r.Context(), actor)
	}
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	if list == nil {
		list = []*competitionservice.CompetitionInfo{}
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

func (h *CompetitionHandlers) HandleGetCompetition(w http.ResponseWriter, r *http.Request) {
	competitionID, err := httpx.PathInt64(r, "competitionID")
	if err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	info, err := h.service.GetCompetition(r.Context(), competitionID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, info)
}

func (h *CompetitionHandlers) HandleAddParticipants(w http.ResponseWriter, r *http.Request) {
	actor, ok := httpx.RequireActor(w, r)
	if !ok {
		return
	}
	competitionID, err := httpx.PathInt64(r, "competitionID")
	if err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	var req AddParticipantsRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	info, err := h.service.AddParticipants(r.Context(), competitionID, req.UserIDs, actor)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, info)
}

// HandleLeaveCompetition removes the caller from a competition.
func (h *CompetitionHandlers) HandleLeaveCompetition(w http.ResponseWriter, r *http.Request) {
	actor, ok := httpx.RequireActor(w, r)
	if !ok {
		return
	}
	competitionID, err := httpx.PathInt64(r, "competitionID")
	if err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	if err := h.service.LeaveCompetition(r.Context(), competitionID, actor); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDeleteCompetition deletes a competition and everything it owns. Creator only.
func (h *CompetitionHandlers) HandleDeleteCompetition(w http.ResponseWriter, r *http.Request) {
	actor, ok := httpx.RequireActor(w, r)
	if !ok {
		return
	}
	competitionID, err := httpx.PathInt64(r, "competitionID")
	if err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	if err := h.service.DeleteCompetition(r.Context(), competitionID, actor); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CompetitionHandlers) HandleSelectableParticipants(w http.ResponseWriter, r *http.Request) {
	competitionID, err := httpx.PathInt64(r, "competitionID")
	if err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	list, err := h.service.SelectableParticipants(r.Context(), competitionID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	if list == nil {
		list = []competitionservice.SelectableParticipant{}
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}
