// Package normalizer turns free-form user queries into a resolved additive
// identity: a lowercased E-number code, a display name, or both.
package normalizer

import (
	"regexp"
	"strings"

	"toxiscan/internal/taxonomy"
)

var (
	// Matches combined inputs like "E330 - Citric Acid", "e102 – tartrazine"
	// or "E621_MSG". The separator may be a hyphen, an en dash or an
	// underscore, with optional surrounding whitespace.
	codeNamePattern = regexp.MustCompile(`^(e\d+)\s*[-–_]\s*(.+)$`)

	// Leading "E<digits> <sep>" prefix, any case, stripped before the name
	// is sent to downstream providers.
	codePrefixPattern = regexp.MustCompile(`^[eE]\d+\s*[-–_]\s*`)

	codeOnlyPattern = regexp.MustCompile(`^e\d`)
)

// Identifier is the resolved form of a raw query. Code is empty when the
// query was a bare name with no taxonomy match; Name is never empty, and is
// the lowercased trimmed query except when a combined code-name input was
// split. The canonical display name comes from the registry later, not from
// normalization.
type Identifier struct {
	Code string
	Name string
}

// Resolver looks up an exact lowercased code or name key. The taxonomy index
// satisfies this.
type Resolver interface {
	Lookup(key string) (taxonomy.Entry, bool)
}

type Normalizer struct {
	index Resolver
}

func New(index Resolver) *Normalizer {
	return &Normalizer{index: index}
}

// Normalize resolves raw input in a fixed order: combined "code - name"
// split, exact taxonomy match, bare E-number, then name fallback. The raw
// string survives untouched when it is only whitespace.
func (n *Normalizer) Normalize(raw string) Identifier {
	q := strings.ToLower(strings.TrimSpace(raw))
	if q == "" {
		return Identifier{Name: raw}
	}

	if m := codeNamePattern.FindStringSubmatch(q); m != nil {
		return Identifier{Code: m[1], Name: strings.TrimSpace(m[2])}
	}

	if n.index != nil {
		if entry, ok := n.index.Lookup(q); ok {
			return Identifier{Code: entry.Code, Name: q}
		}
	}

	if codeOnlyPattern.MatchString(q) {
		return Identifier{Code: q, Name: q}
	}

	return Identifier{Name: q}
}

// StripCodePrefix removes leading "E<number> -" style prefixes from a name.
// Prefixes are stripped repeatedly, so applying the function twice gives the
// same result as applying it once.
func StripCodePrefix(name string) string {
	for {
		stripped := codePrefixPattern.ReplaceAllString(name, "")
		if stripped == name {
			return name
		}
		name = stripped
	}
}
