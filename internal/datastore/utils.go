package datastore

import (
	"encoding/json"
	"os"
	"path/filepath"

	"breachwatch/internal/common"
)

// writeJSONAtomic serializes v with 2-space indentation and writes it via a
// temp file plus rename so a crash mid-write cannot leave a half-written
// state file behind.
func writeJSONAtomic(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return common.WrapError(err, "failed to marshal JSON for: "+path)
	}

	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return common.WrapError(err, "failed to create directory: "+dir)
		}
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return common.WrapError(err, "failed to write temp file: "+tmpPath)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		// Best effort: don't leave the temp file around on failure.
		_ = os.Remove(tmpPath)
		return common.WrapError(err, "failed to replace file: "+path)
	}

	return nil
}
