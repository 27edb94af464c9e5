package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsUnknownProvider(t *testing.T) {
	_, err := New(Config{Provider: "palm"})
	assert.Error(t, err)
}

func TestNewCompatRequiresBaseURL(t *testing.T) {
	_, err := New(Config{Provider: "compat", APIKey: "key", Model: "m"})
	assert.Error(t, err)
}

func TestCompatGenerate(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"2"}}]}`))
	}))
	defer server.Close()

	client, err := NewCompat(server.URL, "test-key", "test-model", 0)
	require.NoError(t, err)

	reply, err := client.Generate(context.Background(), "classify this")
	require.NoError(t, err)
	assert.Equal(t, "2", reply)
	assert.Equal(t, "test-model", gotBody["model"])
}

func TestCompatGenerateErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client, err := NewCompat(server.URL, "test-key", "test-model", 0)
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "classify this")
	assert.Error(t, err)
}

func TestCompatGenerateEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client, err := NewCompat(server.URL, "test-key", "test-model", 0)
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "classify this")
	assert.Error(t, err)
}
