package models

// Room represents a physical room sections are scheduled into.
type Room struct {
	ID       int64  `json:"rid" db:"rid"`
	Building string `json:"building" db:"building"`
	Number   string `json:"room_number" db:"room_number"`
	Capacity int    `json:"capacity" db:"capacity"`
}

// RoomOccupancy is a room joined with its enrolled-student count, in rid
// scan order. Feeds the student-to-capacity ratio report.
type RoomOccupancy struct {
	Room     Room
	Students int
}
