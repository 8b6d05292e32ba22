package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.Endpoint = endpoint
	return cfg
}

func textResponse(text string) geminiResponse {
	return geminiResponse{
		Candidates: []geminiCandidate{
			{Content: geminiContent{Parts: []geminiPart{{Text: text}}}},
		},
	}
}

func TestGeminiClient_Generate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-2.0-flash:generateContent", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		require.Len(t, req.Contents[0].Parts, 1)
		assert.Equal(t, "study tips please", req.Contents[0].Parts[0].Text)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(textResponse("1. Review your notes daily."))
	}))
	defer srv.Close()

	client := NewGeminiClient(testConfig(srv.URL), NoopObserver{})
	resp, err := client.Generate(context.Background(), GenerateRequest{Prompt: "study tips please"})

	require.NoError(t, err)
	assert.Equal(t, "1. Review your notes daily.", resp.Text)
	assert.Equal(t, "gemini-2.0-flash", resp.Model)
	assert.GreaterOrEqual(t, resp.LatencyMs, int64(0))
}

func TestGeminiClient_Generate_Disabled(t *testing.T) {
	cfg := DefaultConfig() // no API key
	client := NewGeminiClient(cfg, NoopObserver{})

	_, err := client.Generate(context.Background(), GenerateRequest{Prompt: "test"})

	assert.ErrorIs(t, err, ErrDisabled)
}

func TestGeminiClient_Generate_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.TimeoutMs = 50

	client := NewGeminiClient(cfg, NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{Prompt: "test"})

	assert.ErrorIs(t, err, ErrTimeout)
}

func TestGeminiClient_Generate_Unavailable(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1") // nothing listening
	cfg.MaxRetries = 0
	cfg.TimeoutMs = 1000

	client := NewGeminiClient(cfg, NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{Prompt: "test"})

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGeminiClient_Generate_RetryOnTransientError(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("internal error"))
			return
		}
		json.NewEncoder(w).Encode(textResponse("ok"))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 1

	client := NewGeminiClient(cfg, NoopObserver{})
	resp, err := client.Generate(context.Background(), GenerateRequest{Prompt: "test"})

	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
	assert.Equal(t, 2, attempts)
}

func TestGeminiClient_Generate_NoRetryAfterTimeout(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		time.Sleep(200 * time.Millisecond)
		json.NewEncoder(w).Encode(textResponse("ok"))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 3
	cfg.TimeoutMs = 50

	client := NewGeminiClient(cfg, NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{Prompt: "test"})

	assert.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, int32(1), attempts.Load())
}

func TestGeminiClient_Generate_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("bad request"))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 0

	client := NewGeminiClient(cfg, NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{Prompt: "test"})

	assert.ErrorIs(t, err, ErrRetryExhausted)
}

func TestGeminiClient_Generate_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 0

	client := NewGeminiClient(cfg, NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{Prompt: "test"})

	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestGeminiClient_ObserverCalled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(textResponse("ok"))
	}))
	defer srv.Close()

	var captured CallEvent
	obs := &captureObserver{fn: func(e CallEvent) { captured = e }}

	client := NewGeminiClient(testConfig(srv.URL), obs)
	_, err := client.Generate(context.Background(), GenerateRequest{Prompt: "test"})

	require.NoError(t, err)
	assert.NotEmpty(t, captured.RequestID)
	assert.Equal(t, "gemini-2.0-flash", captured.Model)
	assert.True(t, captured.Success)
	assert.GreaterOrEqual(t, captured.LatencyMs, int64(0))
}

func TestGeminiClient_ObserverTimeoutErrorCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 0
	cfg.TimeoutMs = 50

	var captured CallEvent
	obs := &captureObserver{fn: func(e CallEvent) { captured = e }}
	client := NewGeminiClient(cfg, obs)

	_, err := client.Generate(context.Background(), GenerateRequest{Prompt: "test"})

	assert.ErrorIs(t, err, ErrTimeout)
	assert.False(t, captured.Success)
	assert.Equal(t, "TIMEOUT", captured.ErrorCode)
}

type captureObserver struct {
	fn func(CallEvent)
}

func (o *captureObserver) OnCallComplete(e CallEvent) { o.fn(e) }
