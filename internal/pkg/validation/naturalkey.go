package validation

import (
	"strconv"
	"strings"

	"github.com/segfault/coursecatalog/internal/pkg/apperrors"
)

// Key is the canonical comparable form of a record's natural key. Fields are
// rendered to strings exactly once, at construction, so an integer column and
// its textual form always compare equal.
type Key string

// KeyOf joins canonical field values into a Key. Callers pass fields in the
// entity's declared natural-key order.
func KeyOf(fields ...string) Key {
	return Key(strings.Join(fields, "\x1f"))
}

// IntField renders an integer natural-key field canonically.
func IntField(n int64) string {
	return strconv.FormatInt(n, 10)
}

// Snapshot is the set of natural keys present in a table at the moment an
// admission decision is made. It is built from a full scan of existing rows
// and passed into the engine functionally; no table state is held between
// requests.
type Snapshot map[Key]struct{}

// NewSnapshot builds a Snapshot from existing rows' keys.
func NewSnapshot(keys ...Key) Snapshot {
	s := make(Snapshot, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Add records one more existing key.
func (s Snapshot) Add(k Key) {
	s[k] = struct{}{}
}

// ValidateInsert admits the candidate iff no existing row shares its natural
// key. A nil return is an admit verdict; a duplicate-entry error is a reject.
// The verdict depends only on the snapshot, so re-validating the same
// candidate against the same snapshot always yields the same answer.
func (s Snapshot) ValidateInsert(candidate Key) error {
	if _, exists := s[candidate]; exists {
		return apperrors.NewDuplicateError("record with the same natural key already exists")
	}
	return nil
}
