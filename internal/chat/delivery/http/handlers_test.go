package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-agent/internal/chat"
	"hr-agent/internal/middleware"
	"hr-agent/pkg/log"
)

type mockUseCase struct {
	out   chat.HandleOutput
	err   error
	input chat.HandleInput
}

func (m *mockUseCase) Handle(ctx context.Context, in chat.HandleInput) (chat.HandleOutput, error) {
	m.input = in
	return m.out, m.err
}

func (m *mockUseCase) Suggestions(ctx context.Context) []string {
	return []string{"Danh sách nhân viên", "Tổng quan nhân sự"}
}

func (m *mockUseCase) Help(ctx context.Context) string { return "help text" }

func setup(uc chat.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/chat"), New(log.NewNop(), uc), middleware.New(log.NewNop(), 0))
	return r
}

func post(r *gin.Engine, body string) (*httptest.ResponseRecorder, map[string]any) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat/hr_agent", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var out map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func TestAgent_Success(t *testing.T) {
	uc := &mockUseCase{out: chat.HandleOutput{
		Success:        true,
		Response:       "👥 DANH SÁCH NHÂN VIÊN (0)",
		APICalled:      "GET /api/hr/employees",
		Data:           []any{},
		Intent:         chat.IntentHRAction,
		Confidence:     0.9,
		ConversationID: "c-1",
	}}
	r := setup(uc)

	w, body := post(r, `{"message":"Hiển thị danh sách nhân viên","conversation_id":"c-1"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hiển thị danh sách nhân viên", uc.input.Message)
	assert.Equal(t, "c-1", uc.input.ConversationID)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "GET /api/hr/employees", body["api_called"])
	assert.Equal(t, "hr_action", body["intent"])
	assert.Equal(t, 0.9, body["confidence"])
	assert.Equal(t, "c-1", body["conversation_id"])
	assert.Contains(t, body, "data")
}

func TestAgent_ApplicationFailureIs200(t *testing.T) {
	r := setup(&mockUseCase{out: chat.HandleOutput{
		Error:    "MissingArgument: leave_id",
		Response: "❌ Lỗi: MissingArgument: leave_id",
	}})

	w, body := post(r, `{"message":"Phê duyệt nghỉ phép"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "MissingArgument: leave_id", body["error"])
	assert.Equal(t, "❌ Lỗi: MissingArgument: leave_id", body["response"])
	assert.NotContains(t, body, "data")
}

func TestAgent_BadRequests(t *testing.T) {
	r := setup(&mockUseCase{})

	w, _ := post(r, `{"message":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, body := post(r, `{"message":"  "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, chat.ErrEmptyMessage.Error(), body["error"])
}

func TestAgent_UnknownRouteIs500(t *testing.T) {
	r := setup(&mockUseCase{err: errors.Join(chat.ErrUnknownRoute, errors.New("ghost.route"))})

	w, _ := post(r, `{"message":"x"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSuggestionsAndHelp(t *testing.T) {
	r := setup(&mockUseCase{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/chat/hr_suggestions", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var s map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))
	assert.Equal(t, true, s["success"])
	assert.Equal(t, float64(2), s["count"])
	assert.Len(t, s["suggestions"], 2)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/chat/hr_help", nil))
	var h map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &h))
	assert.Equal(t, "help text", h["help"])
}
