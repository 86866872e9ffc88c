package rpc_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-agent/internal/dataservice"
	"hr-agent/internal/dataservice/rpc"
	"hr-agent/pkg/log"
)

func TestClient_Call(t *testing.T) {
	var got dataservice.Request
	var auth, requestID string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		requestID = r.Header.Get("X-Request-ID")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(dataservice.Result{Success: true, Data: []map[string]any{{"id": 1, "name": "An"}}})
	}))
	defer ts.Close()

	c, err := rpc.New(log.NewNop(), rpc.Config{Endpoint: ts.URL, Token: "secret"})
	require.NoError(t, err)

	ctx := log.WithRequestID(context.Background(), "req-1")
	data, err := c.Call(ctx, dataservice.Request{
		Entity:  "employee",
		Op:      dataservice.OpList,
		Filters: []dataservice.Condition{dataservice.Cond("department_id", "=", 3)},
		PathIDs: map[string]int64{"department_id": 3},
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret", auth)
	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "employee", got.Entity)
	assert.Equal(t, dataservice.OpList, got.Op)
	require.Len(t, got.Filters, 1)
	assert.Equal(t, "department_id", got.Filters[0].Field)
	assert.Equal(t, int64(3), got.PathIDs["department_id"])

	rows := data.([]any)
	require.Len(t, rows, 1)
	assert.Equal(t, "An", rows[0].(map[string]any)["name"])
}

func TestClient_Failures(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/fail", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(dataservice.Result{Success: false, Error: "record not found"})
	})
	mux.HandleFunc("/boom", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	})
	mux.HandleFunc("/garbage", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>"))
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	for _, path := range []string{"/fail", "/boom", "/garbage"} {
		t.Run(path, func(t *testing.T) {
			c, err := rpc.New(log.NewNop(), rpc.Config{Endpoint: ts.URL + path})
			require.NoError(t, err)
			_, err = c.Call(context.Background(), dataservice.Request{Entity: "employee", Op: dataservice.OpRead})
			assert.ErrorIs(t, err, dataservice.ErrDataService)
		})
	}

	_, err := rpc.New(log.NewNop(), rpc.Config{})
	assert.ErrorIs(t, err, dataservice.ErrDataService)
}

func TestClient_OAuth2ClientCredentials(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"issued","token_type":"bearer","expires_in":3600}`))
	})
	var auth string
	mux.HandleFunc("/rpc", func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(dataservice.Result{Success: true, Data: map[string]any{"total_employees": 4}})
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	c, err := rpc.New(log.NewNop(), rpc.Config{
		Endpoint: ts.URL + "/rpc",
		Token:    "ignored",
		OAuth2:   rpc.OAuth2Config{TokenURL: ts.URL + "/token", ClientID: "hr", ClientSecret: "s3"},
	})
	require.NoError(t, err)

	data, err := c.Call(context.Background(), dataservice.Request{Entity: "dashboard", Op: dataservice.ActionOp("stats")})
	require.NoError(t, err)
	assert.Equal(t, "Bearer issued", auth)
	assert.Equal(t, 4.0, data.(map[string]any)["total_employees"])
}
