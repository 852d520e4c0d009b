package bot

import (
	"context"

	botservice "github.com/Black-And-White-Club/matchday/app/modules/bot/application"
	bothandlers "github.com/Black-And-White-Club/matchday/app/modules/bot/infrastructure/handlers"
	"github.com/Black-And-White-Club/matchday/app/shared/observability"
	"github.com/Black-And-White-Club/matchday/db/bundb"
	"github.com/go-chi/chi/v5"
)

// Module represents the bot roster module.
type Module struct {
	BotService botservice.Service
	handlers   *bothandlers.BotHandlers
}

// NewBotModule creates a new instance of the bot module.
func NewBotModule(ctx context.Context, obs observability.Observability, dbService *bundb.DBService) (*Module, error) {
	logger := obs.Provider.Logger
	logger.InfoContext(ctx, "bot.NewBotModule called")

	service := botservice.NewBotService(
		dbService.BotDB,
		dbService.CompetitionDB,
		dbService.UserDB,
		logger,
		obs.Registry.Metrics,
		obs.Registry.Tracer,
		dbService.GetDB(),
	)

	return &Module{
		BotService: service,
		handlers:   bothandlers.NewBotHandlers(service, logger),
	}, nil
}

// RegisterRoutes mounts the bot routes on r.
func (m *Module) RegisterRoutes(r chi.Router) {
	m.handlers.Register(r)
}
