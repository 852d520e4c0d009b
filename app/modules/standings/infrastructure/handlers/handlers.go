package standingshandlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	standingsservice "github.com/Black-And-White-Club/matchday/app/modules/standings/application"
	"github.com/Black-And-White-Club/matchday/app/shared/httpx"
	"github.com/go-chi/chi/v5"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// StandingsHandlers serves standings as JSON, a PNG chart and an XLSX workbook.
type StandingsHandlers struct {
	service standingsservice.Service
	logger  *slog.Logger
}

// NewStandingsHandlers creates a new StandingsHandlers instance.
func NewStandingsHandlers(service standingsservice.Service, logger *slog.Logger) *StandingsHandlers {
	return &StandingsHandlers{
		service: service,
		logger:  logger,
	}
}

// Register mounts the standings routes on r.
func (h *StandingsHandlers) Register(r chi.Router) {
	r.Get("/competitions/{competitionID}/standings", h.HandleGetStandings)
	r.Get("/competitions/{competitionID}/standings.png", h.HandleStandingsChart)
	r.Get("/competitions/{competitionID}/standings.xlsx", h.HandleStandingsWorkbook)
}

func (h *StandingsHandlers) HandleGetStandings(w http.ResponseWriter, r *http.Request) {
	competitionID, err := httpx.PathInt64(r, "competitionID")
	if err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	view, err := h.service.GetStandings(r.Context(), competitionID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, view)
}

func (h *StandingsHandlers) HandleStandingsChart(w http.ResponseWriter, r *http.Request) {
	competitionID, err := httpx.PathInt64(r, "competitionID")
	if err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	png, err := h.service.StandingsChart(r.Context(), competitionID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	writeBinary(w, "image/png", "", png)
}

func (h *StandingsHandlers) HandleStandingsWorkbook(w http.ResponseWriter, r *http.Request) {
	competitionID, err := httpx.PathInt64(r, "competitionID")
	if err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	book, err := h.service.StandingsWorkbook(r.Context(), competitionID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	writeBinary(w, xlsxContentType, fmt.Sprintf("standings-%d.xlsx", competitionID), book)
}

func writeBinary(w http.ResponseWriter, contentType, filename string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	if filename != "" {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
