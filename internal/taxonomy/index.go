// Package taxonomy holds the process-lifetime additive index built from the
// registry's bulk export. The index is immutable once built and is read
// lock-free by concurrent requests.
package taxonomy

import (
	"context"
	"sort"
	"strings"

	"toxiscan/internal/common/logger"
	"toxiscan/internal/common/metrics"
	regdoc "toxiscan/pkg/registry"
)

// Entry maps a lookup key back to its canonical code and display name.
type Entry struct {
	Code string
	Name string
}

// Source is anything able to produce the bulk taxonomy document.
type Source interface {
	Taxonomy(ctx context.Context) (regdoc.Document, error)
}

type Index struct {
	byKey      map[string]Entry
	searchable []string
}

// Build fetches the bulk document and constructs the index. A failed fetch
// is non-fatal: the service keeps running with an empty index, degrading
// autocomplete and name resolution only.
func Build(ctx context.Context, src Source, log logger.Logger) *Index {
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	doc, err := src.Taxonomy(ctx)
	if err != nil {
		log.Warn("taxonomy load failed, continuing with empty index", map[string]interface{}{
			"error": err.Error(),
		})
		return New(nil)
	}

	idx := New(doc)
	log.Info("taxonomy loaded", map[string]interface{}{"entries": idx.Len()})
	return idx
}

// BuildFromSnapshot constructs the index from a local snapshot file, with the
// same degrade-to-empty behavior as Build.
func BuildFromSnapshot(path string, log logger.Logger) *Index {
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	doc, err := regdoc.LoadSnapshot(path)
	if err != nil {
		log.Warn("taxonomy snapshot load failed, continuing with empty index", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return New(nil)
	}

	idx := New(doc)
	log.Info("taxonomy loaded from snapshot", map[string]interface{}{
		"path":    path,
		"entries": idx.Len(),
	})
	return idx
}

// New constructs the index from an already-fetched document. Keys are
// namespaced codes like "en:e330"; each entry contributes its code and, when
// present, its English display name. Document keys are sorted so the search
// list order is stable across runs.
func New(doc regdoc.Document) *Index {
	idx := &Index{byKey: make(map[string]Entry, len(doc)*2)}

	keys := make([]string, 0, len(doc))
	for key := range doc {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		code := key
		if i := strings.LastIndex(key, ":"); i >= 0 {
			code = key[i+1:]
		}
		code = strings.ToLower(code)

		entry := doc[key]
		name := entry.DisplayName("en")

		canonical := Entry{Code: code, Name: name}
		if canonical.Name == "" {
			canonical.Name = code
		}

		idx.byKey[code] = canonical
		idx.searchable = append(idx.searchable, code)

		if name != "" {
			idx.byKey[strings.ToLower(name)] = canonical
			idx.searchable = append(idx.searchable, name)
		}
	}

	metrics.TaxonomyEntries.Set(float64(len(idx.searchable)))
	return idx
}

// Lookup resolves an exact code or display-name key (lowercased by the
// caller) to its taxonomy entry.
func (i *Index) Lookup(key string) (Entry, bool) {
	e, ok := i.byKey[key]
	return e, ok
}

// Search returns at most limit entries whose code or display name contains
// the fragment, case-insensitively, in index-build order.
func (i *Index) Search(fragment string, limit int) []string {
	needle := strings.ToLower(fragment)
	matches := []string{}
	for _, candidate := range i.searchable {
		if strings.Contains(strings.ToLower(candidate), needle) {
			matches = append(matches, candidate)
			if len(matches) >= limit {
				break
			}
		}
	}
	return matches
}

// Len reports the number of searchable entries.
func (i *Index) Len() int {
	return len(i.searchable)
}
