package competitionhandlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	authdomain "github.com/Black-And-White-Club/matchday/app/modules/auth/domain"
	competitionservice "github.com/Black-And-White-Club/matchday/app/modules/competition/application"
	"github.com/Black-And-White-Club/matchday/app/shared/apperrors"
	"github.com/Black-And-White-Club/matchday/app/shared/httpx"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(svc *FakeCompetitionService, actor string) http.Handler {
	r := chi.NewRouter()
	if actor != "" {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				ctx := authdomain.WithPrincipal(req.Context(), &authdomain.Principal{UserID: 1, Username: actor})
				next.ServeHTTP(w, req.WithContext(ctx))
			})
		})
	}
	NewCompetitionHandlers(svc, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, reader))
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) httpx.ErrorBody {
	t.Helper()
	var body httpx.ErrorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestHandleCreateCompetition(t *testing.T) {
	svc := NewFakeCompetitionService()
	var gotActor string
	var gotReq competitionservice.CreateCompetitionRequest
	svc.CreateCompetitionFunc = func(ctx context.Context, actor string, req competitionservice.CreateCompetitionRequest) (*competitionservice.CompetitionInfo, error) {
		gotActor, gotReq = actor, req
		return &competitionservice.CompetitionInfo{ID: 10, Title: req.Title}, nil
	}

	rec := do(t, newRouter(svc, "alice"), http.MethodPost, "/competitions",
		`{"title":"Friday Darts","icon":"dart","participant_ids":[2,3]}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "alice", gotActor)
	assert.Equal(t, competitionservice.CreateCompetitionRequest{Title: "Friday Darts", Icon: "dart", ParticipantIDs: []int64{2, 3}}, gotReq)

	var info competitionservice.CompetitionInfo
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&info))
	assert.Equal(t, int64(10), info.ID)
}

func TestHandleCreateCompetitionRejectsBadInput(t *testing.T) {
	tests := []struct {
		name       string
		actor      string
		body       string
		wantStatus int
	}{
		{name: "no principal", actor: "", body: `{"title":"x"}`, wantStatus: http.StatusUnauthorized},
		{name: "malformed json", actor: "alice", body: `{"title":`, wantStatus: http.StatusBadRequest},
		{name: "unknown field", actor: "alice", body: `{"title":"x","owner":3}`, wantStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewFakeCompetitionService()
			rec := do(t, newRouter(svc, tt.actor), http.MethodPost, "/competitions", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Empty(t, svc.Trace())
		})
	}
}

func TestHandleListCompetitions(t *testing.T) {
	svc := NewFakeCompetitionService()
	svc.ListCreatedByFunc = func(ctx context.Context, actor string) ([]*competitionservice.CompetitionInfo, error) {
		return []*competitionservice.CompetitionInfo{{ID: 4}}, nil
	}
	h := newRouter(svc, "alice")

	rec := do(t, h, http.MethodGet, "/competitions", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/competitions?created=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"ListForUser", "ListCreatedBy"}, svc.Trace())
}

func TestHandleErrorsMapToStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
		wantMsg    string
	}{
		{name: "not found", err: apperrors.NotFound("competition 10 not found"), wantStatus: http.StatusNotFound, wantKind: "not_found", wantMsg: "competition 10 not found"},
		{name: "authorization", err: apperrors.Unauthorized("creator cannot leave"), wantStatus: http.StatusForbidden, wantKind: "authorization", wantMsg: "creator cannot leave"},
		{name: "validation", err: apperrors.Validation("not a member"), wantStatus: http.StatusBadRequest, wantKind: "validation", wantMsg: "not a member"},
		{name: "infrastructure", err: errors.New("pq: connection refused"), wantStatus: http.StatusInternalServerError, wantMsg: "Internal Server Error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewFakeCompetitionService()
			svc.LeaveCompetitionFunc = func(ctx context.Context, competitionID int64, actor string) error {
				return tt.err
			}

			rec := do(t, newRouter(svc, "bob"), http.MethodPost, "/competitions/10/leave", "")

			require.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantKind, body.Kind)
			assert.Equal(t, tt.wantMsg, body.Error)
		})
	}
}

func TestHandleLeaveAndDeleteReturnNoContent(t *testing.T) {
	svc := NewFakeCompetitionService()
	var left, deleted int64
	svc.LeaveCompetitionFunc = func(ctx context.Context, competitionID int64, actor string) error {
		left = competitionID
		return nil
	}
	svc.DeleteCompetitionFunc = func(ctx context.Context, competitionID int64, actor string) error {
		deleted = competitionID
		return nil
	}
	h := newRouter(svc, "bob")

	assert.Equal(t, http.StatusNoContent, do(t, h, http.MethodPost, "/competitions/10/leave", "").Code)
	assert.Equal(t, http.StatusNoContent, do(t, h, http.MethodDelete, "/competitions/11", "").Code)
	assert.Equal(t, int64(10), left)
	assert.Equal(t, int64(11), deleted)
}

func TestHandleAddParticipants(t *testing.T) {
	svc := NewFakeCompetitionService()
	var gotIDs []int64
	svc.AddParticipantsFunc = func(ctx context.Context, competitionID int64, userIDs []int64, actor string) (*competitionservice.CompetitionInfo, error) {
		gotIDs = userIDs
		return &competitionservice.CompetitionInfo{ID: competitionID}, nil
	}

	rec := do(t, newRouter(svc, "alice"), http.MethodPost, "/competitions/10/participants", `{"user_ids":[4,5]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int64{4, 5}, gotIDs)
}

func TestHandleInvalidCompetitionID(t *testing.T) {
	svc := NewFakeCompetitionService()
	h := newRouter(svc, "alice")

	for _, path := range []string{"/competitions/abc", "/competitions/0", "/competitions/-3/selectable-participants"} {
		rec := do(t, h, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
	assert.Empty(t, svc.Trace())
}

func TestHandleSelectableParticipants(t *testing.T) {
	svc := NewFakeCompetitionService()
	svc.SelectableParticipantsFunc = func(ctx context.Context, competitionID int64) ([]competitionservice.SelectableParticipant, error) {
		return []competitionservice.SelectableParticipant{
			{ID: 1, Username: "alice"},
			{ID: -7, Username: "RoboBob", IsBot: true},
		}, nil
	}

	rec := do(t, newRouter(svc, "alice"), http.MethodGet, "/competitions/10/selectable-participants", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"username":"alice","is_bot":false},{"id":-7,"username":"RoboBob","is_bot":true}]`, rec.Body.String())
}
