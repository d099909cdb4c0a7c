package worker

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mastercraft/config"
	"mastercraft/internal/delivery/worker/handler"
	"mastercraft/internal/domain/entity"
	"mastercraft/internal/domain/service"
	"mastercraft/internal/infra/pubsub"
	mockUC "mastercraft/internal/mocks/usecase"
	"mastercraft/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWorkerEcho(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	matchingUC := mockUC.NewMockMatchingUsecase(t)
	push := handler.NewPushHandler(handler.PushHandlerParams{
		Config:      cfg,
		Logger:      logger,
		MatchingUC:  matchingUC,
		LifecycleUC: mockUC.NewMockLifecycleUsecase(t),
	})
	e := newEcho(cfg, logger, push)

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
		assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	})

	t.Run("push routes created events to matching", func(t *testing.T) {
		after := &entity.ServiceRequest{ID: "r1", ServiceType: "plumbing", Status: entity.RequestStatusPending}
		matchingUC.EXPECT().
			OnRequestCreated(mock.Anything, mock.MatchedBy(func(r *entity.ServiceRequest) bool { return r.ID == "r1" })).
			Return(&usecase.DispatchResult{NotificationsCreated: 2}, nil).
			Once()

		data, err := json.Marshal(&service.RequestEvent{Kind: service.RequestEventCreated, RequestID: "r1", After: after})
		require.NoError(t, err)
		var msg pubsub.PushMessage
		msg.Message.Data = base64.StdEncoding.EncodeToString(data)
		msg.Message.MessageID = "m1"
		body, err := json.Marshal(msg)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Request-Id", "trace-9")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "trace-9", rec.Header().Get("X-Request-Id"))
		assert.Contains(t, rec.Body.String(), `"notifications_created":2`)
	})
}
