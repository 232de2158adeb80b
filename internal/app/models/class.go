package models

// Class represents a catalog course. Identity (ClassID) is server-assigned
// and immutable; Code is unique across the catalog.
type Class struct {
	ID          int64   `json:"classid" db:"classid"`
	Name        string  `json:"cname" db:"cname"`
	Code        string  `json:"ccode" db:"ccode"`
	Description *string `json:"cdesc,omitempty" db:"cdesc"` // Nullable
	Term        string  `json:"term" db:"term"`
	Years       string  `json:"years" db:"years"`
	Credits     int     `json:"cred" db:"cred"`
	Syllabus    *string `json:"csyllabus,omitempty" db:"csyllabus"` // Nullable
}
