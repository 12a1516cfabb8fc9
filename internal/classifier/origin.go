package classifier

import "strings"

type Origin string

const (
	OriginSynthetic Origin = "synthetic"
	OriginNatural   Origin = "natural"
	OriginUnknown   Origin = "unknown"
)

// Synthetic markers are scanned first so mixed descriptions such as
// "synthetic analogue of a natural pigment" classify as synthetic.
var syntheticTerms = []string{
	"petroleum",
	"artificial",
	"synthetic",
	"lab",
	"chemical synthesis",
	"coal tar",
	"preservative",
}

var naturalTerms = []string{
	"plant",
	"extracted",
	"natural",
	"fruit",
	"vegetable",
	"fermentation",
	"animal",
	"vitamin",
	"mineral",
}

// ClassifyOrigin scans the description for origin markers. An empty
// description yields unknown.
func ClassifyOrigin(description string) Origin {
	if description == "" {
		return OriginUnknown
	}

	text := strings.ToLower(description)
	for _, term := range syntheticTerms {
		if strings.Contains(text, term) {
			return OriginSynthetic
		}
	}
	for _, term := range naturalTerms {
		if strings.Contains(text, term) {
			return OriginNatural
		}
	}
	return OriginUnknown
}

// OriginLabel renders the origin as the user-facing string.
func OriginLabel(o Origin) string {
	switch o {
	case OriginSynthetic:
		return "Synthetic / Artificial"
	case OriginNatural:
		return "Natural Origin"
	default:
		return "Origin Unknown"
	}
}
