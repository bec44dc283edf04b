package api_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookkept/matchd/internal/api"
	"github.com/bookkept/matchd/internal/api/dto"
	"github.com/bookkept/matchd/internal/domain/matcher"
)

func newTestServer(t *testing.T) *api.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return api.NewServer(api.DefaultConfig(), matcher.New(matcher.DefaultConfig()), logger)
}

func postJSON(t *testing.T, server *api.Server, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)
	return rec
}

func TestServer_HealthEndpoint(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response dto.HealthResponse
	err := json.NewDecoder(rec.Body).Decode(&response)
	require.NoError(t, err)
	assert.Equal(t, "ok", response.Status)
}

func TestServer_MatchAttachment(t *testing.T) {
	t.Run("confident candidate matches", func(t *testing.T) {
		server := newTestServer(t)

		body := `{
			"transaction": {"id": "tx-1", "amount": -120.00, "date": "2024-03-10", "contact": "Acme Corp"},
			"candidates": [
				{"id": "att-far", "data": {"total_amount": 500.00, "invoicing_date": "2024-01-01", "recipient": "Unrelated LLC"}},
				{"id": "att-close", "data": {"total_amount": 120.00, "invoicing_date": "2024-03-10", "recipient": "Acme Corp"}}
			]
		}`

		rec := postJSON(t, server, "/api/match/attachment", body)
		assert.Equal(t, http.StatusOK, rec.Code)

		var response dto.MatchResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.True(t, response.Matched)
		assert.Equal(t, "att-close", response.ID)
		assert.Equal(t, 1, response.Index)
		assert.Equal(t, "score", response.Method)
		assert.Equal(t, 105.0, response.Score)
	})

	t.Run("reference decides without scoring", func(t *testing.T) {
		server := newTestServer(t)

		body := `{
			"transaction": {"id": "tx-1", "reference": "007"},
			"candidates": [{"id": "att-ref", "data": {"reference": "7"}}]
		}`

		rec := postJSON(t, server, "/api/match/attachment", body)

		var response dto.MatchResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.True(t, response.Matched)
		assert.Equal(t, "att-ref", response.ID)
		assert.Equal(t, "reference", response.Method)
		assert.Equal(t, 0.0, response.Score)
	})

	t.Run("no match is a normal response", func(t *testing.T) {
		server := newTestServer(t)

		body := `{
			"transaction": {"id": "tx-1", "amount": -10.00, "date": "2024-03-10"},
			"candidates": [{"id": "att-1", "data": {"total_amount": 900.00}}]
		}`

		rec := postJSON(t, server, "/api/match/attachment", body)
		assert.Equal(t, http.StatusOK, rec.Code)

		var response dto.MatchResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.False(t, response.Matched)
		assert.Equal(t, -1, response.Index)
	})

	t.Run("empty candidate list", func(t *testing.T) {
		server := newTestServer(t)

		rec := postJSON(t, server, "/api/match/attachment", `{"transaction": {"id": "tx-1"}, "candidates": []}`)
		assert.Equal(t, http.StatusOK, rec.Code)

		var response dto.MatchResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.False(t, response.Matched)
	})

	t.Run("malformed amount on one candidate is tolerated", func(t *testing.T) {
		server := newTestServer(t)

		body := `{
			"transaction": {"id": "tx-1", "amount": -42.00, "date": "2024-05-01"},
			"candidates": [
				{"id": "att-bad", "data": {"total_amount": "not-a-number", "invoicing_date": "2024-05-01"}},
				{"id": "att-good", "data": {"total_amount": "42.00", "invoicing_date": "2024-05-01"}}
			]
		}`

		rec := postJSON(t, server, "/api/match/attachment", body)
		assert.Equal(t, http.StatusOK, rec.Code)

		var response dto.MatchResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.True(t, response.Matched)
		assert.Equal(t, "att-good", response.ID)
	})

	t.Run("invalid JSON is a bad request", func(t *testing.T) {
		server := newTestServer(t)

		rec := postJSON(t, server, "/api/match/attachment", `{"transaction": `)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var apiErr dto.APIError
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
		assert.Equal(t, dto.ErrCodeBadRequest, apiErr.Code)
	})
}

func TestServer_MatchTransaction(t *testing.T) {
	server := newTestServer(t)

	body := `{
		"attachment": {"id": "att-1", "data": {"total_amount": 64.90, "receiving_date": "2024-02-14", "supplier": "Blue Cafe"}},
		"candidates": [
			{"id": "tx-other", "amount": -800.00, "date": "2023-12-01"},
			{"id": "tx-match", "amount": -64.90, "date": "2024-02-14", "contact": "Blue Cafe"}
		]
	}`

	rec := postJSON(t, server, "/api/match/transaction", body)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response dto.MatchResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.True(t, response.Matched)
	assert.Equal(t, "tx-match", response.ID)
	assert.Equal(t, 1, response.Index)
	assert.Equal(t, 105.0, response.Score)
}

func TestServer_RequestIDHeader(t *testing.T) {
	server := newTestServer(t)

	t.Run("generated when missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		server.Router().ServeHTTP(rec, req)

		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("propagated when supplied", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		rec := httptest.NewRecorder()
		server.Router().ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
	})
}
