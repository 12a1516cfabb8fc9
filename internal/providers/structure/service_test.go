package structure

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
// Compound Lookup Tests
// ==========================

func TestCID_Success(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/compound/name/citric%20acid/cids/JSON", r.URL.EscapedPath())
		w.Write([]byte(`{"IdentifierList": {"CID": [311, 22230]}}`))
	}))

	cid, status := svc.CID(context.Background(), "citric acid")

	require.Equal(t, providers.StatusOK, status)
	assert.Equal(t, int64(311), cid)
}

func TestCID_EmptyListIsAbsent(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"IdentifierList": {"CID": []}}`))
	}))

	_, status := svc.CID(context.Background(), "citric acid")
	assert.Equal(t, providers.StatusAbsent, status)
}

func TestCID_NotFoundIsAbsent(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, status := svc.CID(context.Background(), "no such compound")
	assert.Equal(t, providers.StatusAbsent, status)
}

func TestCID_CodePrefixStripped(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/compound/name/aspartame/cids/JSON", r.URL.EscapedPath())
		w.Write([]byte(`{"IdentifierList": {"CID": [134601]}}`))
	}))

	cid, status := svc.CID(context.Background(), "E951 - aspartame")

	require.Equal(t, providers.StatusOK, status)
	assert.Equal(t, int64(134601), cid)
}

func TestCID_EmptyName(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for an empty name")
	}))

	_, status := svc.CID(context.Background(), "")
	assert.Equal(t, providers.StatusAbsent, status)
}

// ==========================
// Image URL Tests
// ==========================

func TestImageURLs(t *testing.T) {
	svc := NewService(ServiceDependencies{Logger: logger.NewNoOpLogger()}, &Config{
		BaseURL: "https://example.org/pug",
		Timeout: time.Second,
	})

	assert.Equal(t,
		"https://example.org/pug/compound/cid/311/PNG?record_type=2d&image_size=300x300",
		svc.ImageURL(311),
	)
	assert.Equal(t,
		"https://example.org/pug/compound/name/citric%20acid/PNG?record_type=2d&image_size=300x300",
		svc.ImageURLByName("citric acid"),
	)
}
