package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"hr-agent/pkg/response"
)

func TestResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	decode := func(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
		t.Helper()
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		return body
	}

	t.Run("OK", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.OK(c, map[string]string{"foo": "bar"})

		if w.Code != http.StatusOK {
			t.Errorf("expected %d but got %d", http.StatusOK, w.Code)
		}
		body := decode(t, w)
		if body["success"] != true {
			t.Errorf("expected success=true, got %v", body["success"])
		}
		data, ok := body["data"].(map[string]any)
		if !ok || data["foo"] != "bar" {
			t.Errorf("unexpected data payload: %v", body["data"])
		}
		if _, ok := body["error"]; ok {
			t.Errorf("error must be omitted on success")
		}
	})

	t.Run("Fail", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Fail(c, "MissingArgument: employee_id")

		if w.Code != http.StatusOK {
			t.Errorf("application failures must be 200, got %d", w.Code)
		}
		body := decode(t, w)
		if body["success"] != false || body["error"] != "MissingArgument: employee_id" {
			t.Errorf("unexpected body: %v", body)
		}
		if _, ok := body["data"]; ok {
			t.Errorf("data must be omitted on failure")
		}
	})

	t.Run("Error", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Error(c, errors.New("invalid JSON"))

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected %d, got %d", http.StatusBadRequest, w.Code)
		}
		if body := decode(t, w); body["error"] != "invalid JSON" {
			t.Errorf("unexpected body: %v", body)
		}
	})

	t.Run("InternalError", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.InternalError(c, nil)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected %d, got %d", http.StatusInternalServerError, w.Code)
		}
		if body := decode(t, w); body["error"] != response.DefaultErrorMessage {
			t.Errorf("unexpected body: %v", body)
		}
	})

	t.Run("TooManyRequests", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.TooManyRequests(c)

		if w.Code != http.StatusTooManyRequests {
			t.Errorf("expected %d, got %d", http.StatusTooManyRequests, w.Code)
		}
		if !c.IsAborted() {
			t.Errorf("expected the chain to be aborted")
		}
	})
}
