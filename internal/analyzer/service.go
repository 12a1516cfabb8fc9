// Package analyzer orchestrates the resolution pipeline: normalize the
// query, resolve the registry record, fan out to the remaining providers
// concurrently, then merge everything into a single report.
package analyzer

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"toxiscan/internal/classifier"
	"toxiscan/internal/common/errors"
	"toxiscan/internal/common/logger"
	"toxiscan/internal/common/metrics"
	"toxiscan/internal/models"
	"toxiscan/internal/providers"
	"toxiscan/internal/providers/encyclopedia"
)

const descriptionPlaceholder = "Description unavailable."

var displayCaser = cases.Title(language.English)

type Service struct {
	deps ServiceDependencies
}

func NewService(deps ServiceDependencies) *Service {
	if deps.Logger == nil {
		deps.Logger = logger.NewNoOpLogger()
	}
	return &Service{deps: deps}
}

// Analyze builds the consolidated safety report for a raw user query. The
// registry lookup runs first since its display name feeds the other
// providers; the encyclopedia, composition, structure and product lookups
// then run concurrently. Provider absence degrades individual fields, never
// the whole report.
func (s *Service) Analyze(ctx context.Context, raw string) (*models.Report, error) {
	start := time.Now()

	id := s.deps.Normalizer.Normalize(raw)
	if id.Code == "" && strings.TrimSpace(id.Name) == "" {
		s.record(ctx, start, "error")
		return nil, errors.NewIdentityUnresolvableError(raw)
	}

	additive, _ := s.deps.Registry.Additive(ctx, id.Code)

	canonical := additive.DisplayName()
	if canonical == "" {
		canonical = id.Name
	}

	var (
		summary   *encyclopedia.Summary
		verified  bool
		cid       int64
		cidStatus providers.Status
		products  []models.Product
	)

	var g errgroup.Group
	g.Go(func() error {
		summary, _ = s.deps.Encyclopedia.Summary(ctx, canonical)
		return nil
	})
	g.Go(func() error {
		verified, _ = s.deps.Composition.Verify(ctx, canonical)
		return nil
	})
	g.Go(func() error {
		cid, cidStatus = s.deps.Structure.CID(ctx, canonical)
		return nil
	})
	g.Go(func() error {
		products = s.deps.Registry.Products(ctx, id.Code, canonical)
		return nil
	})
	g.Wait()

	// Classification scans run on the raw extract only. The placeholder is
	// display text and must never feed the keyword matchers.
	var extract string
	if summary != nil {
		extract = summary.Extract
	}
	description := extract
	if description == "" {
		description = descriptionPlaceholder
	}

	risk := classifier.ClassifyRisk(id.Code, additive.RiskField(), extract)
	origin := classifier.ClassifyOrigin(extract)

	var image string
	if cidStatus == providers.StatusOK {
		image = s.deps.Structure.ImageURL(cid)
	} else if canonical != "" {
		image = s.deps.Structure.ImageURLByName(canonical)
	}

	displayCode := "Unknown"
	if id.Code != "" {
		displayCode = strings.ToUpper(id.Code)
	}
	displayName := "Unknown"
	if canonical != "" {
		displayName = displayCaser.String(canonical)
	}

	if products == nil {
		products = []models.Product{}
	}

	s.deps.Logger.Info("analysis complete", map[string]interface{}{
		"query":    raw,
		"code":     displayCode,
		"risk":     string(risk),
		"duration": time.Since(start).String(),
	})
	s.record(ctx, start, "success")

	return &models.Report{
		Identity:       models.Identity{Code: displayCode, Name: displayName},
		Safety:         classifier.Badge(risk),
		Origin:         classifier.OriginLabel(origin),
		Description:    description,
		USDAVerified:   verified,
		StructureImage: image,
		Products:       products,
	}, nil
}

func (s *Service) record(ctx context.Context, start time.Time, status string) {
	metrics.AnalyzeRequests.WithLabelValues(status).Inc()
	if s.deps.Observability != nil {
		s.deps.Observability.RecordLookup(ctx, status)
		s.deps.Observability.RecordLookupDuration(ctx, time.Since(start), status)
	}
}
