package notificationservice

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	notificationdomain "github.com/Black-And-White-Club/matchday/app/modules/notification/domain"
	notificationdb "github.com/Black-And-White-Club/matchday/app/modules/notification/infrastructure/repositories"
	userdb "github.com/Black-And-White-Club/matchday/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/matchday/app/shared/apperrors"
	"github.com/Black-And-White-Club/matchday/app/shared/observability"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMetrics struct {
	mu       sync.Mutex
	failures []string
}

func (m *recordingMetrics) RecordOperationAttempt(context.Context, string, string) {}
func (m *recordingMetrics) RecordOperationSuccess(context.Context, string, string) {}
func (m *recordingMetrics) RecordOperationFailure(_ context.Context, operation, _ string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures = append(m.failures, operation)
}
func (m *recordingMetrics) RecordOperationDuration(context.Context, string, string, time.Duration) {}

type failingPublisher struct{}

func (failingPublisher) Publish(string, ...*message.Message) error { return errors.New("nats unavailable") }
func (failingPublisher) Close() error                              { return nil }

func newService(repo notificationdb.Repository, publisher message.Publisher, metrics observability.OperationMetrics) *NotificationService {
	users := (&userdb.FakeRepository{}).Seed(
		&userdb.User{ID: 1, Username: "alice"},
		&userdb.User{ID: 2, Username: "bob"},
	)
	obs := observability.NewNoop()
	return NewNotificationService(repo, users, publisher, obs.Provider.Logger, metrics, obs.Registry.Tracer, nil)
}

func TestNotifyPersistsAndPublishes(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 8}, watermill.NopLogger{})
	defer pubSub.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	messages, err := pubSub.Subscribe(ctx, notificationdomain.CreatedTopic(2))
	require.NoError(t, err)

	repo := &notificationdb.FakeRepository{}
	svc := newService(repo, pubSub, observability.NewNoopMetrics())

	svc.Notify(context.Background(), 2, notificationdomain.KindMatchCreated, "alice created a new match: Match 1 in Friday Darts", 50)

	stored := repo.All()
	require.Len(t, stored, 1)
	assert.Equal(t, int64(2), stored[0].RecipientID)
	assert.False(t, stored[0].Read)

	select {
	case msg := <-messages:
		var payload notificationdomain.CreatedPayload
		require.NoError(t, json.Unmarshal(msg.Payload, &payload))
		assert.Equal(t, stored[0].ID, payload.ID)
		assert.Equal(t, notificationdomain.KindMatchCreated, payload.Kind)
		assert.Equal(t, int64(50), payload.RelatedID)
		assert.Equal(t, "MATCH_CREATED", msg.Metadata.Get("kind"))
		msg.Ack()
	case <-time.After(time.Second):
		t.Fatal("notification event was not published")
	}
}

func TestNotifyNeverFailsTheCaller(t *testing.T) {
	t.Run("persistence failure", func(t *testing.T) {
		metrics := &recordingMetrics{}
		repo := &notificationdb.FakeRepository{CreateErr: errors.New("disk full")}
		svc := newService(repo, failingPublisher{}, metrics)

		assert.NotPanics(t, func() {
			svc.Notify(context.Background(), 2, notificationdomain.KindUserLeftCompetition, "bob has left the competition Friday Darts", 10)
		})
		assert.Empty(t, repo.All())
		assert.Equal(t, []string{"Notify"}, metrics.failures)
	})

	t.Run("publish failure keeps the stored notification", func(t *testing.T) {
		metrics := &recordingMetrics{}
		repo := &notificationdb.FakeRepository{}
		svc := newService(repo, failingPublisher{}, metrics)

		svc.Notify(context.Background(), 2, notificationdomain.KindUserLeftCompetition, "bob has left the competition Friday Darts", 10)
		assert.Len(t, repo.All(), 1)
		assert.Equal(t, []string{"PublishNotification"}, metrics.failures)
	})
}

func TestInbox(t *testing.T) {
	repo := &notificationdb.FakeRepository{}
	svc := newService(repo, nil, observability.NewNoopMetrics())
	ctx := context.Background()

	svc.Notify(ctx, 2, notificationdomain.KindMatchCreated, "first", 50)
	svc.Notify(ctx, 2, notificationdomain.KindMatchCreated, "second", 51)
	svc.Notify(ctx, 1, notificationdomain.KindUserLeftCompetition, "for alice", 10)

	all, err := svc.List(ctx, "bob", 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "second", all[0].Message, "newest first")

	count, err := svc.UnreadCount(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, svc.MarkRead(ctx, all[1].ID, "bob"))
	unread, err := svc.ListUnread(ctx, "bob", 10)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, "second", unread[0].Message)

	err = svc.MarkRead(ctx, all[0].ID, "alice")
	assert.ErrorIs(t, err, apperrors.ErrAuthorization)

	err = svc.MarkRead(ctx, 999, "bob")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	changed, err := svc.MarkAllRead(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(1), changed)

	count, err = svc.UnreadCount(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = svc.List(ctx, "ghost", 0)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
