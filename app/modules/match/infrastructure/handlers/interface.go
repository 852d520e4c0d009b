package matchhandlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handlers defines the HTTP surface of the match lifecycle.
type Handlers interface {
	Register(r chi.Router)

	HandleCreateMatch(w http.ResponseWriter, r *http.Request)
	HandleListMatches(w http.ResponseWriter, r *http.Request)
	HandleGetMatch(w http.ResponseWriter, r *http.Request)
	HandleStartMatch(w http.ResponseWriter, r *http.Request)
	HandleSubmitScores(w http.ResponseWriter, r *http.Request)
	HandleDeleteMatch(w http.ResponseWriter, r *http.Request)
}
