package registry

import (
	"toxiscan/internal/common/httpx"
	"toxiscan/internal/common/logger"
	"toxiscan/internal/models"
)

// Additive is the per-code registry payload, parsed tolerant of missing
// fields. Anything beyond the display names and the structured risk field is
// ignored.
type Additive struct {
	DisplayNameTranslations map[string]string `json:"display_name_translations"`
	OverexposureRisk        struct {
		Risk string `json:"risk"`
	} `json:"overexposure_risk"`
}

// DisplayName returns the English display name, falling back to French.
func (a *Additive) DisplayName() string {
	if a == nil {
		return ""
	}
	if name, ok := a.DisplayNameTranslations["en"]; ok && name != "" {
		return name
	}
	if name, ok := a.DisplayNameTranslations["fr"]; ok && name != "" {
		return name
	}
	return ""
}

// RiskField returns the structured overexposure risk, "" when unset.
func (a *Additive) RiskField() string {
	if a == nil {
		return ""
	}
	return a.OverexposureRisk.Risk
}

type searchResponse struct {
	Products []models.Product `json:"products"`
}

type ServiceDependencies struct {
	Logger logger.Logger
	Client *httpx.Client
}
