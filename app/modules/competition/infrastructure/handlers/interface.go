package competitionhandlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handlers defines the HTTP surface of the competition module.
type Handlers interface {
	// Register mounts the competition routes on r.
	Register(r chi.Router)

	HandleCreateCompetition(w http.ResponseWriter, r *http.Request)
	HandleListCompetitions(w http.ResponseWriter, r *http.Request)
	HandleGetCompetition(w http.ResponseWriter, r *http.Request)
	HandleAddParticipants(w http.ResponseWriter, r *http.Request)
	HandleLeaveCompetition(w http.ResponseWriter, r *http.Request)
	HandleDeleteCompetition(w http.ResponseWriter, r *http.Request)
	HandleSelectableParticipants(w http.ResponseWriter, r *http.Request)
}
