package standings

import (
	"context"

	standingsservice "github.com/Black-And-White-Club/matchday/app/modules/standings/application"
	standingshandlers "github.com/Black-And-White-Club/matchday/app/modules/standings/infrastructure/handlers"
	"github.com/Black-And-White-Club/matchday/app/shared/observability"
	"github.com/Black-And-White-Club/matchday/db/bundb"
	"github.com/go-chi/chi/v5"
)

// Module represents the standings module. It is read only.
type Module struct {
	StandingsService standingsservice.Service
	handlers         *standingshandlers.StandingsHandlers
}

// NewStandingsModule creates a new instance of the standings module.
func NewStandingsModule(
	ctx context.Context,
	obs observability.Observability,
	dbService *bundb.DBService,
	ledger standingsservice.Ledger,
) (*Module, error) {
	logger := obs.Provider.Logger
	logger.InfoContext(ctx, "standings.NewStandingsModule called")

	service := standingsservice.NewStandingsService(
		dbService.CompetitionDB,
		dbService.UserDB,
		dbService.BotDB,
		dbService.MatchDB,
		ledger,
		logger,
		obs.Registry.Metrics,
		obs.Registry.Tracer,
		dbService.GetDB(),
	)

	return &Module{
		StandingsService: service,
		handlers:         standingshandlers.NewStandingsHandlers(service, logger),
	}, nil
}

// RegisterRoutes mounts the standings routes on r.
func (m *Module) RegisterRoutes(r chi.Router) {
	m.handlers.Register(r)
}
