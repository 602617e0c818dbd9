// internal/payload/payload.go
// Package payload generates and loads the standard benchmark input files.
package payload

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// File is one benchmark payload, held immutably in memory for the duration
// of a run.
type File struct {
	Name string
	Path string
	Data []byte
}

const (
	// sixteenByteContent is the literal single-block sample.
	sixteenByteContent = "0123456789abcdef"
	// twentyKiBSize is the mid-size sample length (20 * 1024 bytes).
	twentyKiBSize = 20 * 1024
	// largeSize is the large sample length (2.5 * 1024 * 1024 bytes).
	largeSize = 2621440
)

// standardFiles describes the default payload set in benchmark order.
var standardFiles = []struct {
	name     string
	generate func() []byte
}{
	{"file_16B.txt", func() []byte { return []byte(sixteenByteContent) }},
	{"file_20KB.txt", func() []byte { return patternBytes(twentyKiBSize, 'A') }},
	{"file_2_5MB.bin", func() []byte { return patternBytes(largeSize, 'a') }},
}

// patternBytes fills n bytes with a repeating 26-letter alphabet starting at
// base.
func patternBytes(n int, base byte) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = base + byte(i%26)
	}
	return data
}

// DefaultPaths returns the standard payload file paths under dataDir.
func DefaultPaths(dataDir string) []string {
	paths := make([]string, 0, len(standardFiles))
	for _, f := range standardFiles {
		paths = append(paths, filepath.Join(dataDir, f.name))
	}
	return paths
}

// Generate creates any missing standard payload files under dataDir.
// Existing files are left untouched so repeated runs benchmark identical
// inputs.
func Generate(dataDir string) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	for _, f := range standardFiles {
		path := filepath.Join(dataDir, f.name)
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("check payload file %s: %w", path, err)
		}
		if err := os.WriteFile(path, f.generate(), 0o644); err != nil {
			return fmt.Errorf("write payload file %s: %w", path, err)
		}
		log.Printf("Created %s", path)
	}

	return nil
}

// Load reads each path into an immutable File.
func Load(paths []string) ([]File, error) {
	files := make([]File, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read payload file: %w", err)
		}
		files = append(files, File{
			Name: filepath.Base(path),
			Path: path,
			Data: data,
		})
	}
	return files, nil
}
