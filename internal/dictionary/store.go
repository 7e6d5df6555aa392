package dictionary

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	_ "github.com/mattn/go-sqlite3"
)

// Store is the SQLite-backed PI dictionary. All lookups hit an in-memory
// snapshot; the database is only touched by Open, Put, import and Reload.
type Store struct {
	db      *sql.DB
	entries map[string]Entry
}

// Open opens the dictionary database at path, creating the file and schema
// if needed, and loads the lookup snapshot. Preliminary replacement words
// missing from the store are seeded with their L1 form so interactive
// review can display them like any other entry.
func Open(path string, preliminary map[string]string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create dictionary directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, err
	}
	if err := s.seed(preliminary); err != nil {
		db.Close()
		return nil, err
	}
	if err := s.Reload(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS entries (
			word  TEXT PRIMARY KEY,
			whole TEXT NOT NULL,
			pi    TEXT NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to create entries table: %w", err)
	}
	return nil
}

func (s *Store) seed(preliminary map[string]string) error {
	for word, form := range preliminary {
		entry := Entry{Whole: word}
		entry.SetForm("L1", form)
		pi, err := json.Marshal(entry.PI)
		if err != nil {
			return fmt.Errorf("failed to encode seed entry %q: %w", word, err)
		}
		_, err = s.db.Exec(
			`INSERT OR IGNORE INTO entries (word, whole, pi) VALUES (?, ?, ?)`,
			Normalize(word), word, string(pi))
		if err != nil {
			return fmt.Errorf("failed to seed entry %q: %w", word, err)
		}
	}
	return nil
}

// Reload replaces the lookup snapshot with the current database contents.
// Required after EditEntry or ImportJSON for lookups to observe the change.
func (s *Store) Reload() error {
	rows, err := s.db.Query(`SELECT word, whole, pi FROM entries`)
	if err != nil {
		return fmt.Errorf("failed to read dictionary entries: %w", err)
	}
	defer rows.Close()

	entries := make(map[string]Entry)
	for rows.Next() {
		var word, whole, pi string
		if err := rows.Scan(&word, &whole, &pi); err != nil {
			return fmt.Errorf("failed to scan dictionary entry: %w", err)
		}
		var forms map[string]*string
		if err := json.Unmarshal([]byte(pi), &forms); err != nil {
			return fmt.Errorf("corrupt PI column for %q: %w", word, err)
		}
		entries[word] = Entry{Whole: whole, PI: forms}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read dictionary entries: %w", err)
	}

	s.entries = entries
	return nil
}

// Close closes the underlying database. The snapshot stays usable.
func (s *Store) Close() error {
	return s.db.Close()
}

// GetEntry returns the entry for word, normalized to its key form. The
// returned entry is a copy; the snapshot itself only changes via Reload.
func (s *Store) GetEntry(word string) (Entry, bool) {
	entry, ok := s.entries[Normalize(word)]
	if !ok {
		return Entry{}, false
	}
	return entry.clone(), true
}

// PhoneticForm returns the phonetic form of word for variation. It
// satisfies the transcriber's Dictionary interface.
func (s *Store) PhoneticForm(word, variation string) (string, bool) {
	entry, ok := s.entries[Normalize(word)]
	if !ok {
		return "", false
	}
	return entry.Form(variation)
}

// Words returns all dictionary keys, sorted.
func (s *Store) Words() []string {
	words := make([]string, 0, len(s.entries))
	for word := range s.entries {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}

// Len returns the number of entries in the snapshot.
func (s *Store) Len() int {
	return len(s.entries)
}

// Put upserts an entry under the normalized form of word and refreshes the
// snapshot.
func (s *Store) Put(word string, entry Entry) error {
	key := Normalize(word)
	if key == "" {
		return fmt.Errorf("cannot store entry with empty word")
	}
	if entry.Whole == "" {
		entry.Whole = key
	}
	if entry.PI == nil {
		entry.PI = make(map[string]*string)
	}
	pi, err := json.Marshal(entry.PI)
	if err != nil {
		return fmt.Errorf("failed to encode entry %q: %w", key, err)
	}
	_, err = s.db.Exec(
		`INSERT INTO entries (word, whole, pi) VALUES (?, ?, ?)
		 ON CONFLICT(word) DO UPDATE SET whole = excluded.whole, pi = excluded.pi`,
		key, entry.Whole, string(pi))
	if err != nil {
		return fmt.Errorf("failed to store entry %q: %w", key, err)
	}
	return s.Reload()
}
