package models

// Identity is the resolved (code, name) pair shown to the caller. Code is
// upper-cased for display, or "Unknown" when no code could be resolved.
type Identity struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// SafetyBadge carries the derived risk level plus the presentation strings
// the frontend renders directly.
type SafetyBadge struct {
	Level string `json:"level"`
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// Product is one related product from the registry search, field names
// passed through as the registry returns them.
type Product struct {
	ProductName        string `json:"product_name"`
	ImageFrontSmallURL string `json:"image_front_small_url"`
}

// Report is the consolidated safety profile returned by /api/analyze.
type Report struct {
	Identity       Identity    `json:"identity"`
	Safety         SafetyBadge `json:"safety"`
	Origin         string      `json:"origin"`
	Description    string      `json:"description"`
	USDAVerified   bool        `json:"usda_verified"`
	StructureImage string      `json:"structure_image"`
	Products       []Product   `json:"products"`
}
