// pkg/registry/schema.go
package registry

// Document is the bulk additive taxonomy export: keys are namespaced codes
// like "en:e330", values carry per-language display names. Unknown fields in
// the export are ignored.
type Document map[string]Entry

type Entry struct {
	Name map[string]string `json:"name"`
}

// DisplayName returns the entry's name in the given language, or "".
func (e Entry) DisplayName(lang string) string {
	return e.Name[lang]
}
