package notification

import (
	"context"

	"github.com/Black-And-White-Club/matchday/app/eventbus"
	notificationservice "github.com/Black-And-White-Club/matchday/app/modules/notification/application"
	notificationhandlers "github.com/Black-And-White-Club/matchday/app/modules/notification/infrastructure/handlers"
	"github.com/Black-And-White-Club/matchday/app/shared/observability"
	"github.com/Black-And-White-Club/matchday/db/bundb"
	"github.com/go-chi/chi/v5"
)

// Module represents the notification module.
type Module struct {
	NotificationService notificationservice.Service
	handlers            *notificationhandlers.NotificationHandlers
}

// NewNotificationModule creates a new instance of the notification module. Created
// notifications are published on the bus and relayed to live streams from it.
func NewNotificationModule(
	ctx context.Context,
	obs observability.Observability,
	dbService *bundb.DBService,
	bus eventbus.EventBus,
) (*Module, error) {
	logger := obs.Provider.Logger
	logger.InfoContext(ctx, "notification.NewNotificationModule called")

	service := notificationservice.NewNotificationService(
		dbService.NotificationDB,
		dbService.UserDB,
		bus,
		logger,
		obs.Registry.Metrics,
		obs.Registry.Tracer,
		dbService.GetDB(),
	)

	return &Module{
		NotificationService: service,
		handlers:            notificationhandlers.NewNotificationHandlers(service, bus, logger),
	}, nil
}

// RegisterRoutes mounts the notification routes on r.
func (m *Module) RegisterRoutes(r chi.Router) {
	m.handlers.Register(r)
}
