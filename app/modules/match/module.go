package match

import (
	"context"

	matchservice "github.com/Black-And-White-Club/matchday/app/modules/match/application"
	matchhandlers "github.com/Black-And-White-Club/matchday/app/modules/match/infrastructure/handlers"
	"github.com/Black-And-White-Club/matchday/app/shared/observability"
	"github.com/Black-And-White-Club/matchday/db/bundb"
	"github.com/go-chi/chi/v5"
)

// Module represents the match module.
type Module struct {
	MatchService matchservice.Service
	Handlers     matchhandlers.Handlers
}

// NewMatchModule creates a new instance of the match module. The ledger is shared
// with the standings and competition modules so every writer goes through one
// implementation.
func NewMatchModule(
	ctx context.Context,
	obs observability.Observability,
	dbService *bundb.DBService,
	ledger matchservice.Ledger,
	notifier matchservice.Notifier,
) (*Module, error) {
	logger := obs.Provider.Logger
	logger.InfoContext(ctx, "match.NewMatchModule called")

	service := matchservice.NewMatchService(
		dbService.MatchDB,
		dbService.CompetitionDB,
		dbService.UserDB,
		dbService.BotDB,
		ledger,
		notifier,
		logger,
		obs.Registry.Metrics,
		obs.Registry.Tracer,
		dbService.GetDB(),
	)

	return &Module{
		MatchService: service,
		Handlers:     matchhandlers.NewMatchHandlers(service, logger),
	}, nil
}

// RegisterRoutes mounts the match routes on r.
func (m *Module) RegisterRoutes(r chi.Router) {
	m.Handlers.Register(r)
}
