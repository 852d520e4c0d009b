package notificationservice

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	notificationdomain "github.com/Black-And-White-Club/matchday/app/modules/notification/domain"
	notificationdb "github.com/Black-And-White-Club/matchday/app/modules/notification/infrastructure/repositories"
	userdb "github.com/Black-And-White-Club/matchday/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/matchday/app/shared/observability"
	"github.com/Black-And-White-Club/matchday/app/shared/observability/attr"
	"github.com/Black-And-White-Club/matchday/app/shared/operations"
	"github.com/Black-And-White-Club/matchday/app/shared/results"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// NotificationService implements the Service interface.
type NotificationService struct {
	repo      notificationdb.Repository
	users     userdb.Repository
	publisher message.Publisher
	runner    *operations.Runner
}

// NewNotificationService creates a new NotificationService. publisher may be nil, in
// which case notifications are only persisted.
func NewNotificationService(
	repo notificationdb.Repository,
	users userdb.Repository,
	publisher message.Publisher,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *NotificationService {
	return &NotificationService{
		repo:      repo,
		users:     users,
		publisher: publisher,
		runner:    operations.NewRunner("NotificationService", logger, tracer, metrics, db),
	}
}

var _ Service = (*NotificationService)(nil)

// Notify persists a notification and publishes it on the recipient's topic. It never
// fails the caller: errors are logged and counted.
func (s *NotificationService) Notify(ctx context.Context, recipientID int64, kind notificationdomain.Kind, msg string, relatedID int64) {
	notifyTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[*notificationdb.Notification, error], error) {
		n := &notificationdb.Notification{
			RecipientID: recipientID,
			Kind:        kind,
			Message:     msg,
			RelatedID:   relatedID,
		}
		if err := s.repo.Create(ctx, db, n); err != nil {
			return results.OperationResult[*notificationdb.Notification, error]{}, err
		}
		return operations.Succeed(n)
	}

	n, err := operations.Execute(s.runner, ctx, "Notify", strconv.FormatInt(recipientID, 10), notifyTx)
	if err != nil {
		s.runner.Logger.WarnContext(ctx, "Notification dropped",
			attr.ExtractCorrelationID(ctx),
			attr.Int64("recipient_id", recipientID),
			attr.String("kind", string(kind)),
			attr.Error(err),
		)
		return
	}
	s.publish(ctx, n)
}

func (s *NotificationService) publish(ctx context.Context, n *notificationdb.Notification) {
	if s.publisher == nil {
		return
	}
	payload, err := json.Marshal(notificationdomain.CreatedPayload{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		Kind:        n.Kind,
		Message:     n.Message,
		RelatedID:   n.RelatedID,
		CreatedAt:   n.CreatedAt,
	})
	if err != nil {
		s.publishFailed(ctx, n, err)
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("correlation_id", attr.CorrelationID(ctx))
	msg.Metadata.Set("kind", string(n.Kind))

	if err := s.publisher.Publish(notificationdomain.CreatedTopic(n.RecipientID), msg); err != nil {
		s.publishFailed(ctx, n, err)
	}
}

func (s *NotificationService) publishFailed(ctx context.Context, n *notificationdb.Notification, err error) {
	s.runner.Metrics.RecordOperationFailure(ctx, "PublishNotification", s.runner.Service)
	s.runner.Logger.ErrorContext(ctx, "Failed to publish notification event",
		attr.ExtractCorrelationID(ctx),
		attr.Int64("notification_id", n.ID),
		attr.Int64("recipient_id", n.RecipientID),
		attr.Error(err),
	)
}
