// Command taxonomy-snapshot fetches the bulk additive taxonomy and writes it
// to disk as indented JSON. Snapshots are useful for offline index builds and
// for inspecting what the registry currently publishes.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"toxiscan/internal/common/httpx"
	"toxiscan/internal/common/logger"
	"toxiscan/internal/providers/registry"
)

func main() {
	out := flag.String("out", "additives.json", "output file path")
	timeout := flag.Duration("timeout", 30*time.Second, "fetch timeout")
	flag.Parse()

	log := logger.NewStructured("info", "console")

	cfg := registry.DefaultConfig()
	svc := registry.NewService(registry.ServiceDependencies{
		Logger: log,
		Client: httpx.NewClient(*timeout, ""),
	}, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	doc, err := svc.Taxonomy(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "taxonomy fetch failed: %v\n", err)
		os.Exit(1)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal failed: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}

	log.Info("snapshot written", map[string]interface{}{
		"path":    *out,
		"entries": len(doc),
	})
}
