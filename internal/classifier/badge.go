package classifier

import "toxiscan/internal/models"

// Badge maps a risk level to its display badge. Colors are utility classes
// consumed directly by the frontend.
func Badge(level RiskLevel) models.SafetyBadge {
	switch level {
	case RiskHigh:
		return models.SafetyBadge{
			Level: string(RiskHigh),
			Label: "High Risk / Avoid",
			Color: "bg-red-600 text-white",
			Icon:  "⚠️",
		}
	case RiskModerate:
		return models.SafetyBadge{
			Level: string(RiskModerate),
			Label: "Moderate Caution",
			Color: "bg-yellow-500 text-black",
			Icon:  "✋",
		}
	default:
		return models.SafetyBadge{
			Level: string(RiskLow),
			Label: "Safe / Low Risk",
			Color: "bg-emerald-600 text-white",
			Icon:  "✅",
		}
	}
}
