package store

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/mesh-intelligence/kanban/pkg/types"
)

// snapshot assembles the full entity graph into a snapshot document.
// Collections are sorted by ID so the backing file is stable across
// rewrites of an unchanged graph.
func (s *Store) snapshot() *types.Snapshot {
	snap := &types.Snapshot{
		Boards:         make([]*types.Board, 0, len(s.boards)),
		Stories:        make([]*types.Story, 0, len(s.stories)),
		Tasks:          make([]*types.Task, 0, len(s.tasks)),
		Comments:       make([]*types.Comment, 0, len(s.comments)),
		WeeklyReviews:  make([]*types.WeeklyReview, 0, len(s.reviews)),
		StorySequences: make(map[string]int, len(s.sequences)),
		SchemaVersion:  types.SchemaVersion,
	}
	for _, b := range s.boards {
		snap.Boards = append(snap.Boards, b)
	}
	for _, st := range s.stories {
		snap.Stories = append(snap.Stories, st)
	}
	for _, t := range s.tasks {
		snap.Tasks = append(snap.Tasks, t)
	}
	for _, c := range s.comments {
		snap.Comments = append(snap.Comments, c)
	}
	for _, r := range s.reviews {
		snap.WeeklyReviews = append(snap.WeeklyReviews, r)
	}
	for code, seq := range s.sequences {
		snap.StorySequences[code] = seq
	}
	sort.Slice(snap.Boards, func(i, j int) bool { return snap.Boards[i].ID < snap.Boards[j].ID })
	sort.Slice(snap.Stories, func(i, j int) bool { return snap.Stories[i].ID < snap.Stories[j].ID })
	sort.Slice(snap.Tasks, func(i, j int) bool { return snap.Tasks[i].ID < snap.Tasks[j].ID })
	sort.Slice(snap.Comments, func(i, j int) bool { return snap.Comments[i].ID < snap.Comments[j].ID })
	sort.Slice(snap.WeeklyReviews, func(i, j int) bool { return snap.WeeklyReviews[i].ID < snap.WeeklyReviews[j].ID })
	return snap
}

// persist serializes the entire graph and atomically replaces the
// backing file. Every mutating store operation ends here.
func (s *Store) persist() error {
	data, err := json.MarshalIndent(s.snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	return writeFileAtomic(s.path, append(data, '\n'))
}

// load reads the backing file into the in-memory graph. A missing file
// bootstraps an empty graph and persists it; an unparsable file fails.
func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return s.persist()
	}
	if err != nil {
		return fmt.Errorf("read snapshot %s: %w", s.path, err)
	}
	var snap types.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("parse snapshot %s: %w", s.path, err)
	}
	s.merge(&snap)
	return nil
}

// ExportTo forces a persist and copies the backing file's bytes to
// dest, so an export is always a consistent, up-to-date snapshot.
func (s *Store) ExportTo(dest string) error {
	if err := s.persist(); err != nil {
		return err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read snapshot %s: %w", s.path, err)
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("write export %s: %w", dest, err)
	}
	return nil
}

// ImportFrom reads an external snapshot document and merges it into the
// store. The document's schema version must match exactly; on mismatch
// the store is left untouched. When mergeExisting is false all local
// collections and sequence counters are cleared first. Merging is
// additive: an incoming entity whose ID already exists locally is
// skipped entirely, and sequence counters take the per-code maximum.
func (s *Store) ImportFrom(path string, mergeExisting bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read import %s: %w", path, err)
	}
	var snap types.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("parse import %s: %w", path, err)
	}
	if snap.SchemaVersion != types.SchemaVersion {
		return fmt.Errorf("import %s: version %q: %w", path, snap.SchemaVersion, types.ErrSchemaMismatch)
	}
	if !mergeExisting {
		clear(s.boards)
		clear(s.stories)
		clear(s.tasks)
		clear(s.comments)
		clear(s.reviews)
		clear(s.sequences)
	}
	s.merge(&snap)
	return s.persist()
}

// merge inserts snapshot entities into the graph, skipping any ID that
// already exists (first writer wins, no field-level reconciliation).
// Sequence counters never decrease.
func (s *Store) merge(snap *types.Snapshot) {
	for _, b := range snap.Boards {
		if _, ok := s.boards[b.ID]; !ok {
			s.boards[b.ID] = b
		}
	}
	for _, st := range snap.Stories {
		if _, ok := s.stories[st.ID]; !ok {
			s.stories[st.ID] = st
		}
	}
	for _, t := range snap.Tasks {
		if _, ok := s.tasks[t.ID]; !ok {
			s.tasks[t.ID] = t
		}
	}
	for _, c := range snap.Comments {
		if _, ok := s.comments[c.ID]; !ok {
			s.comments[c.ID] = c
		}
	}
	for _, r := range snap.WeeklyReviews {
		if _, ok := s.reviews[r.ID]; !ok {
			s.reviews[r.ID] = r
		}
	}
	for code, seq := range snap.StorySequences {
		if seq > s.sequences[code] {
			s.sequences[code] = seq
		}
	}
}

// writeFileAtomic writes data to path via a temp file in the same
// directory, fsync, and rename, so the prior file is replaced only by a
// complete, successful write.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".snapshot-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	if _, err := w.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
