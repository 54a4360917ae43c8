package writer

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// ArchiveEntry is one file stored in an archive.
type ArchiveEntry struct {
	Name string
	Data []byte
}

// PackArchive bundles entries into a zip archive, in the given order.
func PackArchive(entries []ArchiveEntry) ([]byte, error) {
	if len(entries) == 0 {
		return nil, ErrNoData
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if seen[e.Name] {
			return nil, fmt.Errorf("duplicate archive entry %q", e.Name)
		}
		seen[e.Name] = true

		w, err := zw.Create(e.Name)
		if err != nil {
			return nil, fmt.Errorf("create entry %q: %w", e.Name, err)
		}
		if _, err := w.Write(e.Data); err != nil {
			return nil, fmt.Errorf("write entry %q: %w", e.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finish archive: %w", err)
	}
	return buf.Bytes(), nil
}
