// Package store persists thumbnail hashes as a JSON array of {filename, phash} objects.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"thumbnail-matcher/phash"
)

// Entry is one hashed thumbnail. PHash holds the hash in base 10.
type Entry struct {
	Filename string `json:"filename"`
	PHash    string `json:"phash"`
}

// NewEntry builds an entry for a hashed file.
func NewEntry(filename string, h phash.Hash) Entry {
	return Entry{Filename: filename, PHash: h.Decimal()}
}

// Hash parses the stored hash.
func (e Entry) Hash() (phash.Hash, error) {
	return phash.ParseHash(e.PHash)
}

// Write stores entries sorted by filename, replacing any existing file.
func Write(path string, entries []Entry) error {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Filename < sorted[j].Filename })

	data, err := json.Marshal(sorted)
	if err != nil {
		return fmt.Errorf("encode hashes: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Read loads a file written by Write.
func Read(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return entries, nil
}
