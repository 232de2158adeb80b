// Package reports computes the ranked analytical views of the catalog. Every
// report is a pure function of the row snapshot(s) it is given: callers load
// the rows in primary-key scan order and the functions here group, rank and
// cut to top N. Ranking is stable, so rows that tie on the metric keep their
// scan order.
package reports

import (
	"sort"

	"github.com/segfault/coursecatalog/internal/app/models"
)

// Top-N cut sizes.
const (
	TopRooms    = 3
	TopClasses  = 3
	TopMeetings = 5
)

// ClassCount pairs a class with an occurrence count.
type ClassCount struct {
	Class models.Class `json:"class"`
	Count int          `json:"count"`
}

// RoomCapacity pairs a room with its capacity metric.
type RoomCapacity struct {
	Room     models.Room `json:"room"`
	Capacity int         `json:"capacity"`
}

// RoomRatio pairs a room with its student-to-capacity ratio.
type RoomRatio struct {
	Room     models.Room `json:"room"`
	Students int         `json:"students"`
	Ratio    float64     `json:"ratio"`
}

// MeetingCount pairs a meeting with the number of sections of its class.
type MeetingCount struct {
	Meeting  models.Meeting `json:"meeting"`
	Sections int            `json:"sections"`
}

// YearCount pairs a year with its section count.
type YearCount struct {
	Year     int `json:"year"`
	Sections int `json:"sections"`
}

// TopRoomsByCapacity ranks the given rooms (already scoped to one building)
// by capacity, descending, top 3.
func TopRoomsByCapacity(rooms []models.Room) []RoomCapacity {
	entries := make([]RoomCapacity, 0, len(rooms))
	for _, r := range rooms {
		entries = append(entries, RoomCapacity{Room: r, Capacity: r.Capacity})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Capacity > entries[j].Capacity })
	return cut(entries, TopRooms)
}

// TopRoomsByRatio ranks rooms of one building by enrolled-students over
// capacity, descending, top 3. Rooms with zero capacity rank with ratio 0.
func TopRoomsByRatio(rows []models.RoomOccupancy) []RoomRatio {
	entries := make([]RoomRatio, 0, len(rows))
	for _, row := range rows {
		ratio := 0.0
		if row.Room.Capacity > 0 {
			ratio = float64(row.Students) / float64(row.Room.Capacity)
		}
		entries = append(entries, RoomRatio{Room: row.Room, Students: row.Students, Ratio: ratio})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Ratio > entries[j].Ratio })
	return cut(entries, TopRooms)
}

// TopClassesBySectionCount ranks classes by how many of the given sections
// belong to them, descending, top 3. The same computation serves the
// per-room and per-semester reports; only the snapshot scope differs.
func TopClassesBySectionCount(rows []models.SectionClass) []ClassCount {
	entries := countClasses(rows)
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Count > entries[j].Count })
	return cut(entries, TopClasses)
}

// LeastOfferedClasses ranks classes by section count ascending, top 3.
func LeastOfferedClasses(rows []models.SectionClass) []ClassCount {
	entries := countClasses(rows)
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Count < entries[j].Count })
	return cut(entries, TopClasses)
}

// TopMeetingsBySectionCount ranks meetings by the number of sections of the
// class they schedule, descending, top 5.
func TopMeetingsBySectionCount(rows []models.MeetingSection) []MeetingCount {
	index := make(map[int64]int, len(rows))
	var entries []MeetingCount
	for _, row := range rows {
		if i, seen := index[row.Meeting.ID]; seen {
			entries[i].Sections++
			continue
		}
		index[row.Meeting.ID] = len(entries)
		entries = append(entries, MeetingCount{Meeting: row.Meeting, Sections: 1})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Sections > entries[j].Sections })
	return cut(entries, TopMeetings)
}

// TopPrerequisites ranks classes by how often they appear as the required
// side (reqid) of a hard prerequisite, descending, top 3. Requisite rows
// with prereq=false are co-requisites and do not count.
func TopPrerequisites(requisites []models.Requisite, classes []models.Class) []ClassCount {
	byID := make(map[int64]models.Class, len(classes))
	for _, c := range classes {
		byID[c.ID] = c
	}

	index := make(map[int64]int, len(requisites))
	var entries []ClassCount
	for _, r := range requisites {
		if !r.Prereq {
			continue
		}
		class, known := byID[r.ReqID]
		if !known {
			continue
		}
		if i, seen := index[r.ReqID]; seen {
			entries[i].Count++
			continue
		}
		index[r.ReqID] = len(entries)
		entries = append(entries, ClassCount{Class: class, Count: 1})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Count > entries[j].Count })
	return cut(entries, TopClasses)
}

// SectionsPerYear counts sections grouped by year, all years, ascending.
func SectionsPerYear(sections []models.Section) []YearCount {
	index := make(map[int]int, len(sections))
	var entries []YearCount
	for _, s := range sections {
		if i, seen := index[s.Year]; seen {
			entries[i].Sections++
			continue
		}
		index[s.Year] = len(entries)
		entries = append(entries, YearCount{Year: s.Year, Sections: 1})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Year < entries[j].Year })
	return entries
}

// countClasses groups section-class rows by class in first-seen order.
func countClasses(rows []models.SectionClass) []ClassCount {
	index := make(map[int64]int, len(rows))
	var entries []ClassCount
	for _, row := range rows {
		if i, seen := index[row.Class.ID]; seen {
			entries[i].Count++
			continue
		}
		index[row.Class.ID] = len(entries)
		entries = append(entries, ClassCount{Class: row.Class, Count: 1})
	}
	return entries
}

func cut[T any](entries []T, n int) []T {
	if entries == nil {
		return []T{}
	}
	if len(entries) > n {
		return entries[:n]
	}
	return entries
}
