package encyclopedia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"toxiscan/internal/common/httpx"
	"toxiscan/internal/common/logger"
	"toxiscan/internal/common/metrics"
	"toxiscan/internal/normalizer"
	"toxiscan/internal/providers"
)

var titleCaser = cases.Title(language.English)

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
		logger: log.WithFields(map[string]interface{}{"provider": "encyclopedia"}),
	}
}

// Summary fetches the page summary for the additive name. The target system
// is case- and whitespace-sensitive: the name is stripped of any code prefix,
// title-cased, and joined with underscores before the request.
func (s *Service) Summary(ctx context.Context, name string) (*Summary, providers.Status) {
	if name == "" {
		return nil, providers.StatusAbsent
	}

	page := PageTitle(name)

	start := time.Now()
	defer func() {
		metrics.ProviderDuration.WithLabelValues("encyclopedia").Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s", s.config.BaseURL, page), nil)
	if err != nil {
		metrics.ProviderRequests.WithLabelValues("encyclopedia", providers.StatusFailed.String()).Inc()
		return nil, providers.StatusFailed
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("summary request failed", map[string]interface{}{"page": page, "error": err.Error()})
		metrics.ProviderRequests.WithLabelValues("encyclopedia", providers.StatusFailed.String()).Inc()
		return nil, providers.StatusFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.ProviderRequests.WithLabelValues("encyclopedia", providers.StatusAbsent.String()).Inc()
		return nil, providers.StatusAbsent
	}

	var payload Summary
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		s.logger.Warn("summary decode failed", map[string]interface{}{"page": page, "error": err.Error()})
		metrics.ProviderRequests.WithLabelValues("encyclopedia", providers.StatusFailed.String()).Inc()
		return nil, providers.StatusFailed
	}

	metrics.ProviderRequests.WithLabelValues("encyclopedia", providers.StatusOK.String()).Inc()
	return &payload, providers.StatusOK
}

// PageTitle turns "E330 - Citric Acid" into "Citric_Acid".
func PageTitle(name string) string {
	clean := strings.TrimSpace(normalizer.StripCodePrefix(name))
	clean = titleCaser.String(strings.ToLower(clean))
	return strings.ReplaceAll(clean, " ", "_")
}
