package dictionary

import (
	"encoding/json"
	"fmt"
	"os"
)

// The JSON bridge reads and writes the original dictionary file shape:
// an object mapping each lowercase word to {"whole": ..., "PI": {...}},
// where a PI value of null means the variation is undefined.

// ImportJSON merges entries from a JSON dictionary file into the store.
// With replace set, imported entries overwrite existing ones; otherwise
// words already present keep their stored forms. Returns the number of
// rows written.
func (s *Store) ImportJSON(path string, replace bool) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read dictionary file: %w", err)
	}

	var file map[string]Entry
	if err := json.Unmarshal(data, &file); err != nil {
		return 0, fmt.Errorf("failed to parse dictionary file: %w", err)
	}

	query := `INSERT OR IGNORE INTO entries (word, whole, pi) VALUES (?, ?, ?)`
	if replace {
		query = `INSERT INTO entries (word, whole, pi) VALUES (?, ?, ?)
		         ON CONFLICT(word) DO UPDATE SET whole = excluded.whole, pi = excluded.pi`
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin import transaction: %w", err)
	}

	count := 0
	for word, entry := range file {
		key := Normalize(word)
		if key == "" {
			continue
		}
		if entry.Whole == "" {
			entry.Whole = key
		}
		if entry.PI == nil {
			entry.PI = make(map[string]*string)
		}
		pi, err := json.Marshal(entry.PI)
		if err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("failed to encode entry %q: %w", key, err)
		}
		result, err := tx.Exec(query, key, entry.Whole, string(pi))
		if err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("failed to import entry %q: %w", key, err)
		}
		if n, err := result.RowsAffected(); err == nil && n > 0 {
			count++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit import: %w", err)
	}
	return count, s.Reload()
}

// ExportJSON writes the current snapshot to path in the JSON file shape.
func (s *Store) ExportJSON(path string) error {
	out := make(map[string]Entry, len(s.entries))
	for word, entry := range s.entries {
		out[word] = entry
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode dictionary: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write dictionary file: %w", err)
	}
	return nil
}
