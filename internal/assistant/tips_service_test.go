package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avictorov/studydesk/internal/llm"
	"github.com/avictorov/studydesk/internal/report"
	"github.com/avictorov/studydesk/internal/repository"
	"github.com/avictorov/studydesk/internal/testutil"
)

type tipsFixture struct {
	subjects repository.SubjectRepo
	entries  repository.EntryRepo
	profile  repository.ProfileRepo
}

func setupTips(t *testing.T) tipsFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	return tipsFixture{
		subjects: repository.NewSQLiteSubjectRepo(database),
		entries:  repository.NewSQLiteEntryRepo(database),
		profile:  repository.NewSQLiteProfileRepo(database),
	}
}

func geminiStub(t *testing.T, text string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
			},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func stubClient(t *testing.T, endpoint string) llm.Client {
	cfg := llm.DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.Endpoint = endpoint
	cfg.MaxRetries = 0
	cfg.TimeoutMs = 2000
	return llm.NewGeminiClient(cfg, llm.NoopObserver{})
}

func TestTipsAsk_ReturnsModelAnswerVerbatim(t *testing.T) {
	f := setupTips(t)
	srv := geminiStub(t, "Break study blocks into 25 minute chunks.")

	svc := NewTipsService(stubClient(t, srv.URL), f.subjects, f.entries, f.profile)
	answer, err := svc.Ask(context.Background(), "how should I structure my day?")

	require.NoError(t, err)
	assert.Equal(t, "Break study blocks into 25 minute chunks.", answer.Answer)
	assert.Equal(t, SourceAI, answer.Source)
}

func TestTipsAsk_PromptCarriesStoredSubjects(t *testing.T) {
	f := setupTips(t)
	ctx := context.Background()

	_, err := f.subjects.Create(ctx, testutil.NewTestSubject("Organic Chemistry"))
	require.NoError(t, err)

	var prompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		prompt = req.Contents[0].Parts[0].Text
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": "ok"}}}},
			},
		})
	}))
	defer srv.Close()

	svc := NewTipsService(stubClient(t, srv.URL), f.subjects, f.entries, f.profile)
	_, err = svc.Ask(ctx, "what should I focus on?")
	require.NoError(t, err)

	assert.Contains(t, prompt, "Organic Chemistry")
	assert.Contains(t, prompt, "what should I focus on?")
}

func TestTipsAsk_FallsBackWhenEndpointDown(t *testing.T) {
	f := setupTips(t)

	svc := NewTipsService(stubClient(t, "http://127.0.0.1:1"), f.subjects, f.entries, f.profile)
	answer, err := svc.Ask(context.Background(), "any advice?")

	require.NoError(t, err)
	assert.Equal(t, SourceFallback, answer.Source)
	assert.NotEmpty(t, answer.Answer)
}

func TestTipsAsk_NilClientUsesFallback(t *testing.T) {
	f := setupTips(t)

	svc := NewTipsService(nil, f.subjects, f.entries, f.profile)
	answer, err := svc.Ask(context.Background(), "any advice?")

	require.NoError(t, err)
	assert.Equal(t, SourceFallback, answer.Source)
}

func TestTipsAsk_RejectsEmptyQuestion(t *testing.T) {
	f := setupTips(t)

	svc := NewTipsService(nil, f.subjects, f.entries, f.profile)
	_, err := svc.Ask(context.Background(), "   ")

	assert.Error(t, err)
}

func TestDeterministicTips_FlagsBehindSubject(t *testing.T) {
	due := testutil.Date("2026-03-05")
	subject := testutil.NewTestSubject("Calculus",
		testutil.WithTargetTotalHours(200),
		testutil.WithTargetDate(due),
	)
	progress := report.ComputeSubjectProgress(subject, nil, testutil.Date("2026-03-02"))
	sc := StudyContext{Progress: []report.SubjectProgress{progress}}

	answer := DeterministicTips(sc)

	assert.Equal(t, SourceFallback, answer.Source)
	assert.Contains(t, answer.Answer, "Calculus")
	assert.Contains(t, answer.Answer, "behind")
}

func TestDeterministicTips_NoDataSuggestsLogging(t *testing.T) {
	answer := DeterministicTips(StudyContext{})

	assert.Contains(t, answer.Answer, "log")
}
