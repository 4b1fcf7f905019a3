package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"time"

	"nff-scraper/internal/league"
)

// Top-level keys owned by the scraper. Anything else in the document belongs
// to someone else and is carried over untouched.
const (
	KeyTable     = "table"
	KeyMatches   = "matches"
	KeyMyMatches = "myMatches"
)

// Document is the persisted output, kept as raw JSON per top-level key.
type Document map[string]json.RawMessage

type Matches struct {
	All      []league.Match `json:"all"`
	Upcoming []league.Match `json:"upcoming"`
	Played   []league.Match `json:"played"`
}

// Snapshot is the part of the document one run recomputes.
type Snapshot struct {
	Table     []league.TeamStanding `json:"table"`
	Matches   Matches               `json:"matches"`
	MyMatches []league.Match        `json:"myMatches"`
}

// Build derives the filtered views from a freshly scraped table and fixture
// list.
func Build(table []league.TeamStanding, all []league.Match, club string, now time.Time) Snapshot {
	if table == nil {
		table = []league.TeamStanding{}
	}
	if all == nil {
		all = []league.Match{}
	}
	return Snapshot{
		Table: table,
		Matches: Matches{
			All:      all,
			Upcoming: Upcoming(all, now),
			Played:   Played(all),
		},
		MyMatches: ClubMatches(all, club),
	}
}

// Merge returns old with the snapshot's keys replaced. old is not modified.
func Merge(old Document, snap Snapshot) (Document, error) {
	next := make(Document, len(old)+3)
	maps.Copy(next, old)

	for key, v := range map[string]any{
		KeyTable:     snap.Table,
		KeyMatches:   snap.Matches,
		KeyMyMatches: snap.MyMatches,
	} {
		raw, err := marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", key, err)
		}
		next[key] = raw
	}
	return next, nil
}

func marshal(v any) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Snapshot decodes the scraper-owned keys of d. Missing keys decode as empty.
func (d Document) Snapshot() (Snapshot, error) {
	var snap Snapshot
	for key, dst := range map[string]any{
		KeyTable:     &snap.Table,
		KeyMatches:   &snap.Matches,
		KeyMyMatches: &snap.MyMatches,
	} {
		raw, ok := d[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return Snapshot{}, fmt.Errorf("decode %s: %w", key, err)
		}
	}
	return snap, nil
}

// Load reads the document at path. A missing file is an empty document.
func Load(path string) (Document, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Document{}, nil
	}
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if doc == nil {
		doc = Document{}
	}
	return doc, nil
}

// Save writes doc to path as two-space indented JSON. The file is replaced
// atomically. Strings are written unescaped, so "<", ">" and "&" in team names
// or preserved keys come back as they went in.
func Save(path string, doc Document) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	b := buf.Bytes()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
