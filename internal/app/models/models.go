package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "STUDENT"
	RoleStaff   RoleType = "STAFF"
)

// Semester names used by section rows.
const (
	SemesterFall   = "Fall"
	SemesterSpring = "Spring"
	SemesterV1     = "V1"
	SemesterV2     = "V2"
)
