package analyzer

import (
	"context"

	"toxiscan/internal/common/logger"
	"toxiscan/internal/common/observability"
	"toxiscan/internal/models"
	"toxiscan/internal/normalizer"
	"toxiscan/internal/providers"
	"toxiscan/internal/providers/encyclopedia"
	"toxiscan/internal/providers/registry"
)

// Provider client interfaces, one per upstream. The concrete services in
// internal/providers satisfy these; tests swap in fakes.

type RegistryClient interface {
	Additive(ctx context.Context, code string) (*registry.Additive, providers.Status)
	Products(ctx context.Context, code, name string) []models.Product
}

type EncyclopediaClient interface {
	Summary(ctx context.Context, name string) (*encyclopedia.Summary, providers.Status)
}

type CompositionClient interface {
	Verify(ctx context.Context, name string) (bool, providers.Status)
}

type StructureClient interface {
	CID(ctx context.Context, name string) (int64, providers.Status)
	ImageURL(cid int64) string
	ImageURLByName(name string) string
}

// Identifier resolution, satisfied by *normalizer.Normalizer.
type QueryNormalizer interface {
	Normalize(raw string) normalizer.Identifier
}

// ServiceDependencies contains everything the orchestrator needs injected.
type ServiceDependencies struct {
	Logger        logger.Logger
	Observability *observability.Observability
	Normalizer    QueryNormalizer
	Registry      RegistryClient
	Encyclopedia  EncyclopediaClient
	Composition   CompositionClient
	Structure     StructureClient
}
