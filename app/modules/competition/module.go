package competition

import (
	"context"

	competitionservice "github.com/Black-And-White-Club/matchday/app/modules/competition/application"
	competitionhandlers "github.com/Black-And-White-Club/matchday/app/modules/competition/infrastructure/handlers"
	"github.com/Black-And-White-Club/matchday/app/shared/observability"
	"github.com/Black-And-White-Club/matchday/db/bundb"
	"github.com/go-chi/chi/v5"
)

// Module represents the competition module.
type Module struct {
	CompetitionService competitionservice.Service
	Handlers           competitionhandlers.Handlers
}

// NewCompetitionModule creates a new instance of the competition module.
func NewCompetitionModule(
	ctx context.Context,
	obs observability.Observability,
	dbService *bundb.DBService,
	ledger competitionservice.Ledger,
	notifier competitionservice.Notifier,
) (*Module, error) {
	logger := obs.Provider.Logger
	logger.InfoContext(ctx, "competition.NewCompetitionModule called")

	service := competitionservice.NewCompetitionService(
		dbService.CompetitionDB,
		dbService.UserDB,
		dbService.BotDB,
		dbService.MatchDB,
		ledger,
		notifier,
		logger,
		obs.Registry.Metrics,
		obs.Registry.Tracer,
		dbService.GetDB(),
	)

	return &Module{
		CompetitionService: service,
		Handlers:           competitionhandlers.NewCompetitionHandlers(service, logger),
	}, nil
}

// RegisterRoutes mounts the competition routes on r.
func (m *Module) RegisterRoutes(r chi.Router) {
	m.Handlers.Register(r)
}
