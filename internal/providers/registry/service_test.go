package registry

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

func newTestService(t *testing.T, handler http.Handler) (*Service, *httptest.Server) {
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	cfg := &Config{
		BaseURL:     ts.URL,
		TaxonomyURL: ts.URL + "/taxonomy",
		Timeout:     2 * time.Second,
		PageSize:    3,
	}
	require.NoError(t, cfg.Validate())

	svc := NewService(ServiceDependencies{
		Logger: logger.NewTestLogger(t),
		Client: httpx.NewClient(cfg.Timeout, "ToxiScan-Test/1.0"),
	}, cfg)
	return svc, ts
}

// ==========================
// Additive Lookup Tests
// ==========================

func TestAdditive_Success(t *testing.T) {
	var gotUserAgent string
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		assert.Equal(t, "/additive/e330", r.URL.Path)
		w.Write([]byte(`{
			"display_name_translations": {"en": "Citric acid", "fr": "Acide citrique"},
			"overexposure_risk": {"risk": "low"}
		}`))
	}))

	additive, status := svc.Additive(context.Background(), "e330")

	require.Equal(t, providers.StatusOK, status)
	assert.Equal(t, "Citric acid", additive.DisplayName())
	assert.Equal(t, "low", additive.RiskField())
	assert.Equal(t, "ToxiScan-Test/1.0", gotUserAgent)
}

func TestAdditive_FrenchFallback(t *testing.T) {
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"display_name_translations": {"fr": "Acide citrique"}}`))
	}))

	additive, status := svc.Additive(context.Background(), "e330")

	require.Equal(t, providers.StatusOK, status)
	assert.Equal(t, "Acide citrique", additive.DisplayName())
}

func TestAdditive_AllFailuresCollapseToAbsent(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed payload",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{not json`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t, tt.handler)

			additive, status := svc.Additive(context.Background(), "e330")

			assert.Equal(t, providers.StatusAbsent, status)
			assert.Nil(t, additive)
		})
	}
}

func TestAdditive_EmptyCode(t *testing.T) {
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for an empty code")
	}))

	additive, status := svc.Additive(context.Background(), "")

	assert.Equal(t, providers.StatusAbsent, status)
	assert.Nil(t, additive)
}

func TestAdditive_CodeIsTruncatedAtFirstSpace(t *testing.T) {
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/additive/e330", r.URL.Path)
		w.Write([]byte(`{}`))
	}))

	_, status := svc.Additive(context.Background(), "e330 citric acid")
	assert.Equal(t, providers.StatusOK, status)
}

// ==========================
// Product Search Tests
// ==========================

func TestProducts_Success(t *testing.T) {
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "e330", r.URL.Query().Get("additives_tags"))
		assert.Equal(t, "3", r.URL.Query().Get("page_size"))
		assert.Equal(t, "product_name,image_front_small_url", r.URL.Query().Get("fields"))
		w.Write([]byte(`{"products": [
			{"product_name": "Lemonade", "image_front_small_url": "https://img/1.jpg"},
			{"product_name": "Jam", "image_front_small_url": ""}
		]}`))
	}))

	products := svc.Products(context.Background(), "e330", "citric acid")

	require.Len(t, products, 2)
	assert.Equal(t, "Lemonade", products[0].ProductName)
}

func TestProducts_NameUsedWhenCodeMissing(t *testing.T) {
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "citric acid", r.URL.Query().Get("additives_tags"))
		w.Write([]byte(`{"products": []}`))
	}))

	products := svc.Products(context.Background(), "", "citric acid")
	assert.Empty(t, products)
}

func TestProducts_FailureYieldsNil(t *testing.T) {
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	assert.Nil(t, svc.Products(context.Background(), "e330", ""))
}

// ==========================
// Taxonomy Fetch Tests
// ==========================

func TestTaxonomy_Success(t *testing.T) {
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/taxonomy", r.URL.Path)
		w.Write([]byte(`{"en:e330": {"name": {"en": "Citric acid"}}}`))
	}))

	doc, err := svc.Taxonomy(context.Background())

	require.NoError(t, err)
	require.Len(t, doc, 1)
	assert.Equal(t, "Citric acid", doc["en:e330"].DisplayName("en"))
}

func TestTaxonomy_ErrorPropagates(t *testing.T) {
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	_, err := svc.Taxonomy(context.Background())
	assert.Error(t, err)
}
