package relayclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/contact", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var sub Submission
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sub))
		assert.Equal(t, "jane@example.com", sub.Email)

		json.NewEncoder(w).Encode(SubmitResponse{Success: true, Message: "sent", ID: "msg_123"})
	}))
	defer srv.Close()

	resp, err := New(srv.URL).Submit(context.Background(), Submission{
		Name:    "Jane",
		Email:   "jane@example.com",
		Subject: "Hi",
		Message: "A long enough message.",
	})
	require.NoError(t, err)
	assert.Equal(t, "msg_123", resp.ID)
}

func TestSubmitRelayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(SubmitResponse{Success: false, Error: "all fields are required"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).Submit(context.Background(), Submission{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all fields are required")
}

func TestSubmitNonJSONResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Submit(context.Background(), Submission{})
	assert.Error(t, err)
}

func TestSubmitTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	_, err := New(srv.URL).Submit(context.Background(), Submission{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unreachable")
}
