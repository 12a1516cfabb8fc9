package encyclopedia

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toxiscan/internal/common/httpx"
	"toxiscan/internal/common/logger"
	"toxiscan/internal/providers"
)

// ==========================
// Test Helper Functions
// ==========================

func newTestService(t *testing.T, handler http.Handler) *Service {
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	cfg := &Config{BaseURL: ts.URL, Timeout: 2 * time.Second}
	require.NoError(t, cfg.Validate())
	return NewService(ServiceDependencies{
		Logger: logger.NewTestLogger(t),
		Client: httpx.NewClient(cfg.Timeout, "ToxiScan-Test/1.0"),
	}, cfg)
}

func TestDefaultConfig(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

// ==========================
// Page Title Tests
// ==========================

func TestPageTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "code prefix stripped and title cased", input: "E330 - citric acid", want: "Citric_Acid"},
		{name: "already clean", input: "Tartrazine", want: "Tartrazine"},
		{name: "multi word", input: "monosodium glutamate", want: "Monosodium_Glutamate"},
		{name: "upper case input normalized", input: "CITRIC ACID", want: "Citric_Acid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageTitle(tt.input))
		})
	}
}

// ==========================
// Summary Fetch Tests
// ==========================

func TestSummary_Success(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Citric_Acid", r.URL.Path)
		w.Write([]byte(`{
			"title": "Citric acid",
			"description": "organic compound",
			"extract": "Citric acid is a weak organic acid found in citrus fruits."
		}`))
	}))

	summary, status := svc.Summary(context.Background(), "citric acid")

	require.Equal(t, providers.StatusOK, status)
	assert.Contains(t, summary.Extract, "citrus fruits")
}

func TestSummary_NotFoundIsAbsent(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	summary, status := svc.Summary(context.Background(), "nonexistent additive")

	assert.Equal(t, providers.StatusAbsent, status)
	assert.Nil(t, summary)
}

func TestSummary_DecodeFaultIsFailed(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))

	_, status := svc.Summary(context.Background(), "citric acid")
	assert.Equal(t, providers.StatusFailed, status)
}

func TestSummary_EmptyName(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for an empty name")
	}))

	summary, status := svc.Summary(context.Background(), "")

	assert.Equal(t, providers.StatusAbsent, status)
	assert.Nil(t, summary)
}
