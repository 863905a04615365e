package main

import (
	"compress/gzip"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"amritha-heritage/internal/catalog"
)

// Writes the built-in catalog as YAML, the format CATALOG_FILE and the S3
// loader read. A ".gz" output name is gzip compressed.
//
//	go run ./scripts/export_catalog -out data/catalog/catalog.yaml.gz
func main() {
	out := flag.String("out", "data/catalog/catalog.yaml", "output file, \"-\" for stdout")
	flag.Parse()

	if err := export(catalog.Default(), *out); err != nil {
		log.Fatalf("Failed to export catalog: %v", err)
	}
}

func export(content *catalog.Content, out string) error {
	if out == "-" {
		return catalog.Encode(os.Stdout, content)
	}

	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}
	defer f.Close()

	var w io.Writer = f
	if strings.HasSuffix(out, ".gz") {
		gz := gzip.NewWriter(f)
		defer gz.Close()
		w = gz
	}

	if err := catalog.Encode(w, content); err != nil {
		return err
	}

	fmt.Printf("Wrote %d dishes and %d rooms to %s\n", content.Dishes.Len(), content.Rooms.Len(), out)
	return nil
}
