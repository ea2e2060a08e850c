// Package progress persists the set of completed standard numbers so an
// interrupted batch resumes where it left off.
package progress

import (
	"encoding/json"
	"log/slog"
	"os"
	"sort"
	"time"
)

// State is the durable on-disk shape.
type State struct {
	CompletedStandards []int     `json:"completed_standards"`
	LastUpdated        time.Time `json:"last_updated"`
	TotalCompleted     int       `json:"total_completed"`
}

// Store reads and rewrites the progress file. The runner calls Save after
// every newly completed standard, so a crash loses at most the in-flight one.
type Store struct {
	path   string
	logger *slog.Logger
}

func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{path: path, logger: logger}
}

// Load returns the set of completed standard numbers. A missing, unreadable,
// or corrupt progress file is logged and treated as no prior progress — never
// fatal.
func (s *Store) Load() map[int]struct{} {
	completed := make(map[int]struct{})

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("progress.load_failed", "path", s.path, "error", err)
		}
		return completed
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		s.logger.Warn("progress.parse_failed", "path", s.path, "error", err)
		return completed
	}

	for _, n := range state.CompletedStandards {
		completed[n] = struct{}{}
	}
	return completed
}

// Save overwrites the progress file with the full current set, a fresh
// timestamp, and the set size.
func (s *Store) Save(completed map[int]struct{}) error {
	nums := make([]int, 0, len(completed))
	for n := range completed {
		nums = append(nums, n)
	}
	sort.Ints(nums)

	state := State{
		CompletedStandards: nums,
		LastUpdated:        time.Now(),
		TotalCompleted:     len(nums),
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return err
	}

	s.logger.Info("progress.saved", "completed", len(nums), "path", s.path)
	return nil
}
