package categorizer

import (
	"strings"
	"sync"
)

// ColumnCandidates lists header names used to recognise and skip a header row.
// ID names the first column of a motions file; Code names the last column of a
// motions file and the first column of a code dictionary.
type ColumnCandidates struct {
	ID   []string `json:"id" yaml:"id" mapstructure:"id"`
	Code []string `json:"code" yaml:"code" mapstructure:"code"`
}

var (
	columnCandidatesMu  sync.RWMutex
	activeColumnOptions = defaultColumnCandidates()
)

func defaultColumnCandidates() ColumnCandidates {
	return ColumnCandidates{
		ID:   []string{"id", "motion_id", "motion id", "motion"},
		Code: []string{"code", "cmp_code", "cmp code", "label", "annotation", "cmp"},
	}
}

// DefaultColumnCandidates returns the built-in header candidates.
func DefaultColumnCandidates() ColumnCandidates {
	return defaultColumnCandidates().clone()
}

// SetColumnCandidates updates the header candidates used by ParseMotions and
// ParseCodeDictionary. Empty fields fall back to the built-in defaults.
func SetColumnCandidates(candidates ColumnCandidates) {
	columnCandidatesMu.Lock()
	defer columnCandidatesMu.Unlock()
	activeColumnOptions = candidates.withDefaults()
}

func getColumnCandidates() ColumnCandidates {
	columnCandidatesMu.RLock()
	defer columnCandidatesMu.RUnlock()
	return activeColumnOptions.clone()
}

func (c ColumnCandidates) withDefaults() ColumnCandidates {
	defaults := defaultColumnCandidates()
	return ColumnCandidates{
		ID:   pickStrings(c.ID, defaults.ID),
		Code: pickStrings(c.Code, defaults.Code),
	}
}

func (c ColumnCandidates) clone() ColumnCandidates {
	return ColumnCandidates{
		ID:   cloneStrings(c.ID),
		Code: cloneStrings(c.Code),
	}
}

func pickStrings(custom, fallback []string) []string {
	if len(custom) == 0 {
		return cloneStrings(fallback)
	}
	return cloneStrings(custom)
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}

// isMotionHeader reports whether row names an id column first and a code column last.
func isMotionHeader(row []string) bool {
	if len(row) < 2 {
		return false
	}
	c := getColumnCandidates()
	return matchesAny(row[0], c.ID) && matchesAny(row[len(row)-1], c.Code)
}

// isDictionaryHeader reports whether row starts with a code column name.
func isDictionaryHeader(row []string) bool {
	if len(row) < 1 {
		return false
	}
	return matchesAny(row[0], getColumnCandidates().Code)
}

func matchesAny(cell string, candidates []string) bool {
	cell = strings.TrimSpace(cell)
	for _, cand := range candidates {
		if strings.EqualFold(cell, cand) {
			return true
		}
	}
	return false
}
