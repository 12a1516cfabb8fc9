package composition

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"toxiscan/internal/common/httpx"
	"toxiscan/internal/common/logger"
	"toxiscan/internal/common/metrics"
	"toxiscan/internal/normalizer"
	"toxiscan/internal/providers"
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
		logger: log.WithFields(map[string]interface{}{"provider": "composition"}),
	}
}

// Verify checks whether the additive name appears in the food composition
// database. The credential is a hard precondition: without it the call
// returns false immediately and no request is issued. The result is true iff
// the cleaned name is a case-insensitive substring of the top search
// result's description.
func (s *Service) Verify(ctx context.Context, name string) (bool, providers.Status) {
	if s.config.APIKey == "" || name == "" {
		return false, providers.StatusAbsent
	}

	clean := strings.TrimSpace(normalizer.StripCodePrefix(name))

	start := time.Now()
	defer func() {
		metrics.ProviderDuration.WithLabelValues("composition").Observe(time.Since(start).Seconds())
	}()

	params := url.Values{}
	params.Set("api_key", s.config.APIKey)
	params.Set("query", clean)
	params.Add("dataType", "Foundation")
	params.Add("dataType", "SR Legacy")
	params.Set("pageSize", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.config.SearchURL+"?"+params.Encode(), nil)
	if err != nil {
		metrics.ProviderRequests.WithLabelValues("composition", providers.StatusFailed.String()).Inc()
		return false, providers.StatusFailed
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("verification request failed", map[string]interface{}{"query": clean, "error": err.Error()})
		metrics.ProviderRequests.WithLabelValues("composition", providers.StatusFailed.String()).Inc()
		return false, providers.StatusFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.ProviderRequests.WithLabelValues("composition", providers.StatusAbsent.String()).Inc()
		return false, providers.StatusAbsent
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		s.logger.Warn("verification decode failed", map[string]interface{}{"query": clean, "error": err.Error()})
		metrics.ProviderRequests.WithLabelValues("composition", providers.StatusFailed.String()).Inc()
		return false, providers.StatusFailed
	}

	metrics.ProviderRequests.WithLabelValues("composition", providers.StatusOK.String()).Inc()

	if payload.TotalHits == 0 || len(payload.Foods) == 0 {
		return false, providers.StatusOK
	}
	return strings.Contains(strings.ToLower(payload.Foods[0].Description), strings.ToLower(clean)), providers.StatusOK
}
