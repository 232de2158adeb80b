package services

import (
	"context"
	"testing"

	"github.com/segfault/coursecatalog/internal/app/models"
)

type mockReportSectionReader struct {
	sections []models.Section
	byRoom   map[int64][]models.SectionClass
	allJoin  []models.SectionClass
}

func (m *mockReportSectionReader) GetAll(_ context.Context) ([]models.Section, error) {
	return m.sections, nil
}

func (m *mockReportSectionReader) GetWithClassByRoom(_ context.Context, roomID int64) ([]models.SectionClass, error) {
	return m.byRoom[roomID], nil
}

func (m *mockReportSectionReader) GetWithClassBySemester(_ context.Context, year int, semester string) ([]models.SectionClass, error) {
	return m.allJoin, nil
}

func (m *mockReportSectionReader) GetAllWithClass(_ context.Context) ([]models.SectionClass, error) {
	return m.allJoin, nil
}

type mockReportRoomReader struct {
	rooms     map[string][]models.Room
	occupancy map[string][]models.RoomOccupancy
}

func (m *mockReportRoomReader) GetByBuilding(_ context.Context, building string) ([]models.Room, error) {
	return m.rooms[building], nil
}

func (m *mockReportRoomReader) GetOccupancyByBuilding(_ context.Context, building string) ([]models.RoomOccupancy, error) {
	return m.occupancy[building], nil
}

type mockReportMeetingReader struct {
	rows []models.MeetingSection
}

func (m *mockReportMeetingReader) GetAllWithSections(_ context.Context) ([]models.MeetingSection, error) {
	return m.rows, nil
}

func setupReportService() (*ReportService, *mockReportSectionReader, *mockReportRoomReader) {
	sectionReader := &mockReportSectionReader{byRoom: map[int64][]models.SectionClass{}}
	roomReader := &mockReportRoomReader{
		rooms:     map[string][]models.Room{},
		occupancy: map[string][]models.RoomOccupancy{},
	}
	svc := NewReportService(
		sectionReader,
		roomReader,
		&mockReportMeetingReader{},
		newMockRequisiteRepo(),
		newMockClassRepo(),
	)
	return svc, sectionReader, roomReader
}

func TestReportService_TopRoomsByCapacity_ScopedToBuilding(t *testing.T) {
	svc, _, roomReader := setupReportService()
	roomReader.rooms["DIS"] = []models.Room{
		{ID: 1, Building: "DIS", Number: "1", Capacity: 10},
		{ID: 2, Building: "DIS", Number: "2", Capacity: 30},
		{ID: 3, Building: "DIS", Number: "3", Capacity: 30},
		{ID: 4, Building: "DIS", Number: "4", Capacity: 5},
	}

	got, err := svc.TopRoomsByCapacity(context.Background(), "DIS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
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

func TestReportService_TopRoomsByCapacity_UnknownBuildingIsEmpty(t *testing.T) {
	svc, _, _ := setupReportService()

	got, err := svc.TopRoomsByCapacity(context.Background(), "NOPE")
	if err != nil {
		t.Fatalf("an empty scope is not an error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty report, got %d entries", len(got))
	}
}

func TestReportService_SectionsPerYear(t *testing.T) {
	svc, sectionReader, _ := setupReportService()
	sectionReader.sections = []models.Section{
		{ID: 1, Year: 2025},
		{ID: 2, Year: 2024},
		{ID: 3, Year: 2025},
	}

	got, err := svc.SectionsPerYear(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Year != 2024 || got[1].Year != 2025 {
		t.Errorf("years must ascend: %d, %d", got[0].Year, got[1].Year)
	}
	if got[1].Sections != 2 {
		t.Errorf("expected 2 sections for 2025, got %d", got[1].Sections)
	}
}

func TestReportService_TopClassesByRoom(t *testing.T) {
	svc, sectionReader, _ := setupReportService()
	sectionReader.byRoom[7] = []models.SectionClass{
		{SectionID: 1, Class: models.Class{ID: 1}},
		{SectionID: 2, Class: models.Class{ID: 2}},
		{SectionID: 3, Class: models.Class{ID: 2}},
	}

	got, err := svc.TopClassesByRoom(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Class.ID != 2 || got[0].Count != 2 {
		t.Errorf("expected class 2 with 2 sections first, got class %d with %d", got[0].Class.ID, got[0].Count)
	}
}
