package structure

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
	"toxiscan/internal/normalizer"
	"toxiscan/internal/providers"
)

const imageParams = "PNG?record_type=2d&image_size=300x300"

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
		logger: log.WithFields(map[string]interface{}{"provider": "structure"}),
	}
}

// CID resolves the additive name to its first numeric compound identifier.
func (s *Service) CID(ctx context.Context, name string) (int64, providers.Status) {
	if name == "" {
		return 0, providers.StatusAbsent
	}

	clean := strings.TrimSpace(normalizer.StripCodePrefix(name))

	start := time.Now()
	defer func() {
		metrics.ProviderDuration.WithLabelValues("structure").Observe(time.Since(start).Seconds())
	}()

	lookupURL := fmt.Sprintf("%s/compound/name/%s/cids/JSON", s.config.BaseURL, url.PathEscape(clean))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		metrics.ProviderRequests.WithLabelValues("structure", providers.StatusFailed.String()).Inc()
		return 0, providers.StatusFailed
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("cid request failed", map[string]interface{}{"name": clean, "error": err.Error()})
		metrics.ProviderRequests.WithLabelValues("structure", providers.StatusFailed.String()).Inc()
		return 0, providers.StatusFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.ProviderRequests.WithLabelValues("structure", providers.StatusAbsent.String()).Inc()
		return 0, providers.StatusAbsent
	}

	var payload cidResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		s.logger.Warn("cid decode failed", map[string]interface{}{"name": clean, "error": err.Error()})
		metrics.ProviderRequests.WithLabelValues("structure", providers.StatusFailed.String()).Inc()
		return 0, providers.StatusFailed
	}

	metrics.ProviderRequests.WithLabelValues("structure", providers.StatusOK.String()).Inc()

	if len(payload.IdentifierList.CID) == 0 {
		return 0, providers.StatusAbsent
	}
	return payload.IdentifierList.CID[0], providers.StatusOK
}

// ImageURL formats the 2D structure image URL for a resolved compound id.
func (s *Service) ImageURL(cid int64) string {
	return fmt.Sprintf("%s/compound/cid/%d/%s", s.config.BaseURL, cid, imageParams)
}

// ImageURLByName is the last-resort image guess by compound name. The target
// may 404; the URL is not validated.
func (s *Service) ImageURLByName(name string) string {
	return fmt.Sprintf("%s/compound/name/%s/%s", s.config.BaseURL, url.PathEscape(name), imageParams)
}
