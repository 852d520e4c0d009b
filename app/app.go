package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Black-And-White-Club/matchday/app/eventbus"
	"github.com/Black-And-White-Club/matchday/app/modules/bot"
	"github.com/Black-And-White-Club/matchday/app/modules/competition"
	"github.com/Black-And-White-Club/matchday/app/modules/match"
	"github.com/Black-And-White-Club/matchday/app/modules/notification"
	scoreservice "github.com/Black-And-White-Club/matchday/app/modules/score/application"
	"github.com/Black-And-White-Club/matchday/app/modules/standings"
	"github.com/Black-And-White-Club/matchday/app/shared/observability"
	"github.com/Black-And-White-Club/matchday/config"
	"github.com/Black-And-White-Club/matchday/db/bundb"
)

// Modules holds every wired module.
type Modules struct {
	CompetitionModule  *competition.Module
	BotModule          *bot.Module
	MatchModule        *match.Module
	StandingsModule    *standings.Module
	NotificationModule *notification.Module
}

// App owns the process-wide dependencies and the HTTP server.
type App struct {
	Config        *config.Config
	Observability observability.Observability
	DB            *bundb.DBService
	EventBus      eventbus.EventBus
	Modules       *Modules
	server        *http.Server
	metricsServer *http.Server
}

// NewApp connects to Postgres and the event bus and wires every module.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	obs := observability.New(config.ToObsConfig(cfg))
	logger := obs.Provider.Logger

	dbService, err := bundb.NewBunDBService(ctx, cfg.Postgres.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database service: %w", err)
	}

	var bus eventbus.EventBus
	if cfg.NATS.URL == "" {
		logger.WarnContext(ctx, "NATS URL not configured, using in-memory event bus")
		bus = eventbus.NewInMemory(logger)
	} else {
		bus, err = eventbus.NewEventBus(ctx, cfg.NATS.URL, logger)
		if err != nil {
			_ = dbService.Close()
			return nil, fmt.Errorf("failed to create event bus: %w", err)
		}
	}

	app, err := Build(ctx, cfg, obs, dbService, bus)
	if err != nil {
		_ = bus.Close()
		_ = dbService.Close()
		return nil, err
	}
	return app, nil
}

// Build wires the modules over already opened dependencies.
func Build(
	ctx context.Context,
	cfg *config.Config,
	obs observability.Observability,
	dbService *bundb.DBService,
	bus eventbus.EventBus,
) (*App, error) {
	app := &App{
		Config:        cfg,
		Observability: obs,
		DB:            dbService,
		EventBus:      bus,
	}
	if err := app.initializeModules(ctx); err != nil {
		return nil, err
	}

	app.server = &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: app.Router(),
	}
	if cfg.Observability.MetricsAddress != "" {
		app.metricsServer = &http.Server{
			Addr:    cfg.Observability.MetricsAddress,
			Handler: app.metricsHandler(),
		}
	}
	return app, nil
}

func (app *App) initializeModules(ctx context.Context) error {
	obs := app.Observability
	ledger := scoreservice.NewLedger(app.DB.ScoreDB, obs.Provider.Logger)

	notificationModule, err := notification.NewNotificationModule(ctx, obs, app.DB, app.EventBus)
	if err != nil {
		return fmt.Errorf("failed to initialize notification module: %w", err)
	}
	notifier := notificationModule.NotificationService

	competitionModule, err := competition.NewCompetitionModule(ctx, obs, app.DB, ledger, notifier)
	if err != nil {
		return fmt.Errorf("failed to initialize competition module: %w", err)
	}

	botModule, err := bot.NewBotModule(ctx, obs, app.DB)
	if err != nil {
		return fmt.Errorf("failed to initialize bot module: %w", err)
	}

	matchModule, err := match.NewMatchModule(ctx, obs, app.DB, ledger, notifier)
	if err != nil {
		return fmt.Errorf("failed to initialize match module: %w", err)
	}

	standingsModule, err := standings.NewStandingsModule(ctx, obs, app.DB, ledger)
	if err != nil {
		return fmt.Errorf("failed to initialize standings module: %w", err)
	}

	app.Modules = &Modules{
		CompetitionModule:  competitionModule,
		BotModule:          botModule,
		MatchModule:        matchModule,
		StandingsModule:    standingsModule,
		NotificationModule: notificationModule,
	}
	return nil
}
