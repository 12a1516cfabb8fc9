package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"toxiscan/internal/common/httpx"
	"toxiscan/internal/common/logger"
	"toxiscan/internal/common/metrics"
	"toxiscan/internal/models"
	"toxiscan/internal/providers"
	regdoc "toxiscan/pkg/registry"
)

type Service struct {
	config *Config
	client *httpx.Client
	logger logger.Logger
}

func NewService(deps ServiceDependencies, config *Config) *Service {
	client := deps.Client
	if client == nil {
		client = httpx.NewClient(config.Timeout, "")
	}
	log := deps.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Service{
		config: config,
		client: client,
		logger: log.WithFields(map[string]interface{}{"provider": "registry"}),
	}
}

// Additive looks up the per-code registry record. Every failure mode,
// transport faults included, collapses to Absent: downstream logic only
// checks presence for this source.
func (s *Service) Additive(ctx context.Context, code string) (*Additive, providers.Status) {
	if code == "" {
		return nil, providers.StatusAbsent
	}

	// Strip anything after the first space so "e330 citric" still resolves.
	clean := strings.Fields(code)[0]

	start := time.Now()
	defer func() {
		metrics.ProviderDuration.WithLabelValues("registry.additive").Observe(time.Since(start).Seconds())
	}()

	var payload Additive
	status := s.getJSON(ctx, fmt.Sprintf("%s/additive/%s", s.config.BaseURL, clean), &payload)
	metrics.ProviderRequests.WithLabelValues("registry.additive", status.String()).Inc()
	if status != providers.StatusOK {
		return nil, providers.StatusAbsent
	}
	return &payload, providers.StatusOK
}

// Products searches for products tagged with the additive. The code is the
// preferred tag; the name is used only when no code exists. Absence yields an
// empty slice, never an error.
func (s *Service) Products(ctx context.Context, code, name string) []models.Product {
	tag := code
	if tag == "" {
		tag = name
	}
	if tag == "" {
		return nil
	}

	start := time.Now()
	defer func() {
		metrics.ProviderDuration.WithLabelValues("registry.products").Observe(time.Since(start).Seconds())
	}()

	params := url.Values{}
	params.Set("additives_tags", tag)
	params.Set("page_size", fmt.Sprintf("%d", s.config.PageSize))
	params.Set("fields", "product_name,image_front_small_url")

	var payload searchResponse
	status := s.getJSON(ctx, fmt.Sprintf("%s/search?%s", s.config.BaseURL, params.Encode()), &payload)
	metrics.ProviderRequests.WithLabelValues("registry.products", status.String()).Inc()
	if status != providers.StatusOK {
		return nil
	}
	return payload.Products
}

// Taxonomy fetches the bulk additive taxonomy document used to build the
// startup index. Unlike the per-request lookups this returns an error, since
// the caller decides how loudly to degrade.
func (s *Service) Taxonomy(ctx context.Context) (regdoc.Document, error) {
	start := time.Now()
	defer func() {
		metrics.ProviderDuration.WithLabelValues("registry.taxonomy").Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.config.TaxonomyURL, nil)
	if err != nil {
		metrics.ProviderRequests.WithLabelValues("registry.taxonomy", providers.StatusFailed.String()).Inc()
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		metrics.ProviderRequests.WithLabelValues("registry.taxonomy", providers.StatusFailed.String()).Inc()
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.ProviderRequests.WithLabelValues("registry.taxonomy", providers.StatusAbsent.String()).Inc()
		return nil, fmt.Errorf("taxonomy fetch returned %d", resp.StatusCode)
	}

	var doc regdoc.Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		metrics.ProviderRequests.WithLabelValues("registry.taxonomy", providers.StatusFailed.String()).Inc()
		return nil, err
	}

	metrics.ProviderRequests.WithLabelValues("registry.taxonomy", providers.StatusOK.String()).Inc()
	return doc, nil
}

func (s *Service) getJSON(ctx context.Context, rawURL string, dest interface{}) providers.Status {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		s.logger.Warn("request build failed", map[string]interface{}{"url": rawURL, "error": err.Error()})
		return providers.StatusFailed
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("request failed", map[string]interface{}{"url": rawURL, "error": err.Error()})
		return providers.StatusFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return providers.StatusAbsent
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		s.logger.Warn("decode failed", map[string]interface{}{"url": rawURL, "error": err.Error()})
		return providers.StatusFailed
	}
	return providers.StatusOK
}
