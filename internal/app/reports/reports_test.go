package reports

import (
	"testing"

	"github.com/segfault/coursecatalog/internal/app/models"
)

func room(id int64, capacity int) models.Room {
	return models.Room{ID: id, Building: "DIS", Number: "R" + string(rune('0'+id)), Capacity: capacity}
}

func TestTopRoomsByCapacity_StableTies(t *testing.T) {
	// Rooms arrive in rid order; 2 and 3 tie on capacity and must keep that
	// order in the ranking.
	rooms := []models.Room{room(1, 10), room(2, 30), room(3, 30), room(4, 5)}

	got := TopRoomsByCapacity(rooms)

	wantIDs := []int64{2, 3, 1}
	if len(got) != len(wantIDs) {
		t.Fatalf("expected %d entries, got %d", len(wantIDs), len(got))
	}
	for i, want := range wantIDs {
		if got[i].Room.ID != want {
			t.Errorf("entry %d: expected room %d, got %d", i, want, got[i].Room.ID)
		}
	}
}

func TestTopRoomsByCapacity_Empty(t *testing.T) {
	got := TopRoomsByCapacity(nil)
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("expected 0 entries, got %d", len(got))
	}
}

func TestTopRoomsByRatio_ZeroCapacityRanksLast(t *testing.T) {
	rows := []models.RoomOccupancy{
		{Room: room(1, 0), Students: 50},
		{Room: room(2, 100), Students: 60},
		{Room: room(3, 10), Students: 9},
	}

	got := TopRoomsByRatio(rows)

	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	if got[0].Room.ID != 3 || got[1].Room.ID != 2 || got[2].Room.ID != 1 {
		t.Errorf("unexpected order: %d, %d, %d", got[0].Room.ID, got[1].Room.ID, got[2].Room.ID)
	}
	if got[2].Ratio != 0 {
		t.Errorf("zero-capacity room should rank with ratio 0, got %f", got[2].Ratio)
	}
}

func sectionClass(sid int64, classID int64) models.SectionClass {
	return models.SectionClass{SectionID: sid, Class: models.Class{ID: classID, Code: "C" + string(rune('0'+classID))}}
}

func TestTopClassesBySectionCount_CutsToThree(t *testing.T) {
	rows := []models.SectionClass{
		sectionClass(1, 1),
		sectionClass(2, 2), sectionClass(3, 2),
		sectionClass(4, 3), sectionClass(5, 3), sectionClass(6, 3),
		sectionClass(7, 4),
	}

	got := TopClassesBySectionCount(rows)

	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	if got[0].Class.ID != 3 || got[0].Count != 3 {
		t.Errorf("expected class 3 with 3 sections first, got class %d with %d", got[0].Class.ID, got[0].Count)
	}
	if got[1].Class.ID != 2 || got[2].Class.ID != 1 {
		t.Errorf("ties must keep first-seen order: got %d then %d", got[1].Class.ID, got[2].Class.ID)
	}
}

func TestLeastOfferedClasses_AscendingWithStableTies(t *testing.T) {
	rows := []models.SectionClass{
		sectionClass(1, 1), sectionClass(2, 1),
		sectionClass(3, 2),
		sectionClass(4, 3),
		sectionClass(5, 4), sectionClass(6, 4), sectionClass(7, 4),
	}

	got := LeastOfferedClasses(rows)

	wantIDs := []int64{2, 3, 1}
	if len(got) != len(wantIDs) {
		t.Fatalf("expected %d entries, got %d", len(wantIDs), len(got))
	}
	for i, want := range wantIDs {
		if got[i].Class.ID != want {
			t.Errorf("entry %d: expected class %d, got %d", i, want, got[i].Class.ID)
		}
	}
}

func TestTopMeetingsBySectionCount_TopFive(t *testing.T) {
	var rows []models.MeetingSection
	// Meeting m has m sections, m = 1..6.
	for m := int64(1); m <= 6; m++ {
		for s := int64(0); s < m; s++ {
			rows = append(rows, models.MeetingSection{
				Meeting:   models.Meeting{ID: m, Code: "CIS101"},
				SectionID: m*100 + s,
			})
		}
	}

	got := TopMeetingsBySectionCount(rows)

	if len(got) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(got))
	}
	if got[0].Meeting.ID != 6 || got[0].Sections != 6 {
		t.Errorf("expected meeting 6 with 6 sections first, got meeting %d with %d", got[0].Meeting.ID, got[0].Sections)
	}
	if got[4].Meeting.ID != 2 {
		t.Errorf("expected meeting 2 last, got %d", got[4].Meeting.ID)
	}
}

func TestTopPrerequisites_SkipsCorequisitesAndUnknownClasses(t *testing.T) {
	classes := []models.Class{{ID: 1}, {ID: 2}, {ID: 3}}
	requisites := []models.Requisite{
		{ClassID: 2, ReqID: 1, Prereq: true},
		{ClassID: 3, ReqID: 1, Prereq: true},
		{ClassID: 3, ReqID: 2, Prereq: false}, // co-requisite, must not count
		{ClassID: 1, ReqID: 99, Prereq: true}, // dangling reqid, must not count
		{ClassID: 1, ReqID: 3, Prereq: true},
	}

	got := TopPrerequisites(requisites, classes)

	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Class.ID != 1 || got[0].Count != 2 {
		t.Errorf("expected class 1 with count 2, got class %d with %d", got[0].Class.ID, got[0].Count)
	}
	if got[1].Class.ID != 3 || got[1].Count != 1 {
		t.Errorf("expected class 3 with count 1, got class %d with %d", got[1].Class.ID, got[1].Count)
	}
}

func TestSectionsPerYear_AllYearsAscending(t *testing.T) {
	sections := []models.Section{
		{ID: 1, Year: 2026},
		{ID: 2, Year: 2024},
		{ID: 3, Year: 2026},
		{ID: 4, Year: 2025},
		{ID: 5, Year: 2024},
	}

	got := SectionsPerYear(sections)

	want := []YearCount{
		{Year: 2024, Sections: 2},
		{Year: 2025, Sections: 1},
		{Year: 2026, Sections: 2},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}
