package models

import "github.com/segfault/coursecatalog/internal/pkg/validation"

// Requisite links a class to another class it requires. Prereq true marks a
// hard prerequisite; false marks a co-requisite. The (classid, reqid) pair
// is the composite key and both sides must resolve to existing classes.
type Requisite struct {
	ClassID int64 `json:"classid" db:"classid"`
	ReqID   int64 `json:"reqid" db:"reqid"`
	Prereq  bool  `json:"prereq" db:"prereq"`
}

// NaturalKey returns the canonical (classid, reqid) key.
func (r *Requisite) NaturalKey() validation.Key {
	return validation.KeyOf(validation.IntField(r.ClassID), validation.IntField(r.ReqID))
}
