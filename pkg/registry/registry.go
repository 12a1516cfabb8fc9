// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"os"
)

// LoadSnapshot reads a bulk taxonomy document previously written to disk by
// the taxonomy-snapshot tool.
func LoadSnapshot(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc Document
	err = json.Unmarshal(data, &doc)
	return doc, err
}
