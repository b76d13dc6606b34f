package handler

import (
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"greenfund-demo/internal/core/domain"
	"greenfund-demo/internal/core/ports/mocks"
	"greenfund-demo/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuditHandlerWithRepo(repo *mocks.MockAuditRepository) *AuditHandler {
	return NewAuditHandler(service.NewAuditService(repo, zerolog.New(io.Discard)))
}

func TestAuditList_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuditRepository(ctrl)
	h := newAuditHandlerWithRepo(mockRepo)

	sessionID := uuid.New()
	created := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	mockRepo.EXPECT().ListBySession(gomock.Any(), sessionID, defaultAuditLimit).Return([]domain.AuditLog{
		{
			ID:           uuid.New(),
			SessionID:    &sessionID,
			Action:       domain.AuditActionSubmitDraft,
			ResourceType: "draft",
			ResourceID:   sessionID.String(),
			IPAddress:    "10.0.0.1",
			Details:      `{"status":200}`,
			CreatedAt:    created,
		},
		{
			ID:           uuid.New(),
			SessionID:    &sessionID,
			Action:       domain.AuditActionCreateSession,
			ResourceType: "session",
			CreatedAt:    created.Add(-time.Minute),
		},
	}, nil)

	w, c := newEngineContext(http.MethodGet, "/api/v1/session/audit", nil, sessionID, mocks.NewMockLoanDemoEngine(ctrl))
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, float64(2), data["total"])
	items := data["items"].([]interface{})
	require.Len(t, items, 2)

	first := items[0].(map[string]interface{})
	assert.Equal(t, "SUBMIT_DRAFT", first["action"])
	assert.Equal(t, "draft", first["resource_type"])
	assert.Equal(t, "2026-10-19T12:00:00Z", first["created_at"])
	assert.Equal(t, float64(200), first["details"].(map[string]interface{})["status"])
	assert.Equal(t, "CREATE_SESSION", items[1].(map[string]interface{})["action"])
}

func TestAuditList_CustomLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuditRepository(ctrl)
	h := newAuditHandlerWithRepo(mockRepo)

	sessionID := uuid.New()
	mockRepo.EXPECT().ListBySession(gomock.Any(), sessionID, 5).Return(nil, nil)

	w, c := newEngineContext(http.MethodGet, "/api/v1/session/audit?limit=5", nil, sessionID, mocks.NewMockLoanDemoEngine(ctrl))
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{}, decodeData(t, w)["items"])
}

func TestAuditList_InvalidLimit(t *testing.T) {
	for _, limit := range []string{"0", "101", "ten", "-3"} {
		t.Run(limit, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// No repository calls expected.
			h := newAuditHandlerWithRepo(mocks.NewMockAuditRepository(ctrl))

			w, c := newEngineContext(http.MethodGet, "/api/v1/session/audit?limit="+limit, nil, uuid.New(), mocks.NewMockLoanDemoEngine(ctrl))
			h.List(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "VAL_001", decodeErrorCode(t, w))
		})
	}
}

func TestAuditList_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuditRepository(ctrl)
	h := newAuditHandlerWithRepo(mockRepo)

	mockRepo.EXPECT().ListBySession(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

	w, c := newEngineContext(http.MethodGet, "/api/v1/session/audit", nil, uuid.New(), mocks.NewMockLoanDemoEngine(ctrl))
	h.List(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "SYS_001", decodeErrorCode(t, w))
}

func TestAuditList_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newAuditHandlerWithRepo(mocks.NewMockAuditRepository(ctrl))

	w, c := newEngineContext(http.MethodGet, "/api/v1/session/audit", nil, uuid.Nil, nil)
	h.List(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
