package services

import (
	"context"
	"fmt"

	"github.com/segfault/coursecatalog/internal/app/models"
	"github.com/segfault/coursecatalog/internal/app/reports"
)

// ReportSectionReader is the section access needed by the report service.
type ReportSectionReader interface {
	GetAll(ctx context.Context) ([]models.Section, error)
	GetWithClassByRoom(ctx context.Context, roomID int64) ([]models.SectionClass, error)
	GetWithClassBySemester(ctx context.Context, year int, semester string) ([]models.SectionClass, error)
	GetAllWithClass(ctx context.Context) ([]models.SectionClass, error)
}

// ReportRoomReader is the room access needed by the report service.
type ReportRoomReader interface {
	GetByBuilding(ctx context.Context, building string) ([]models.Room, error)
	GetOccupancyByBuilding(ctx context.Context, building string) ([]models.RoomOccupancy, error)
}

// ReportMeetingReader is the meeting access needed by the report service.
type ReportMeetingReader interface {
	GetAllWithSections(ctx context.Context) ([]models.MeetingSection, error)
}

// ReportRequisiteReader is the requisite access needed by the report service.
type ReportRequisiteReader interface {
	GetAll(ctx context.Context) ([]models.Requisite, error)
}

// ReportService loads the snapshot each report needs and hands it to the
// aggregation functions in the reports package. An empty scope produces an
// empty ranking, never an error.
type ReportService struct {
	sectionRepo   ReportSectionReader
	roomRepo      ReportRoomReader
	meetingRepo   ReportMeetingReader
	requisiteRepo ReportRequisiteReader
	classRepo     ClassReader
}

// NewReportService creates a new report service instance
func NewReportService(
	sectionRepo ReportSectionReader,
	roomRepo ReportRoomReader,
	meetingRepo ReportMeetingReader,
	requisiteRepo ReportRequisiteReader,
	classRepo ClassReader,
) *ReportService {
	return &ReportService{
		sectionRepo:   sectionRepo,
		roomRepo:      roomRepo,
		meetingRepo:   meetingRepo,
		requisiteRepo: requisiteRepo,
		classRepo:     classRepo,
	}
}

// TopRoomsByCapacity reports the three largest rooms of one building.
func (s *ReportService) TopRoomsByCapacity(ctx context.Context, building string) ([]reports.RoomCapacity, error) {
	rooms, err := s.roomRepo.GetByBuilding(ctx, building)
	if err != nil {
		return nil, fmt.Errorf("error loading rooms: %w", err)
	}
	return reports.TopRoomsByCapacity(rooms), nil
}

// TopRoomsByRatio reports the three most crowded rooms of one building by
// student-to-capacity ratio.
func (s *ReportService) TopRoomsByRatio(ctx context.Context, building string) ([]reports.RoomRatio, error) {
	occupancy, err := s.roomRepo.GetOccupancyByBuilding(ctx, building)
	if err != nil {
		return nil, fmt.Errorf("error loading room occupancy: %w", err)
	}
	return reports.TopRoomsByRatio(occupancy), nil
}

// TopClassesByRoom reports the three classes most taught in one room.
func (s *ReportService) TopClassesByRoom(ctx context.Context, roomID int64) ([]reports.ClassCount, error) {
	rows, err := s.sectionRepo.GetWithClassByRoom(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("error loading room sections: %w", err)
	}
	return reports.TopClassesBySectionCount(rows), nil
}

// TopClassesBySemester reports the three classes most taught in one
// (year, semester) scope.
func (s *ReportService) TopClassesBySemester(ctx context.Context, year int, semester string) ([]reports.ClassCount, error) {
	rows, err := s.sectionRepo.GetWithClassBySemester(ctx, year, semester)
	if err != nil {
		return nil, fmt.Errorf("error loading semester sections: %w", err)
	}
	return reports.TopClassesBySectionCount(rows), nil
}

// TopMeetings reports the five meetings whose classes run the most sections.
func (s *ReportService) TopMeetings(ctx context.Context) ([]reports.MeetingCount, error) {
	rows, err := s.meetingRepo.GetAllWithSections(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading meeting sections: %w", err)
	}
	return reports.TopMeetingsBySectionCount(rows), nil
}

// TopPrerequisites reports the three classes most required as prerequisite.
func (s *ReportService) TopPrerequisites(ctx context.Context) ([]reports.ClassCount, error) {
	requisites, err := s.requisiteRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading requisites: %w", err)
	}
	classes, err := s.classRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading classes: %w", err)
	}
	return reports.TopPrerequisites(requisites, classes), nil
}

// LeastOfferedClasses reports the three classes with the fewest sections.
func (s *ReportService) LeastOfferedClasses(ctx context.Context) ([]reports.ClassCount, error) {
	rows, err := s.sectionRepo.GetAllWithClass(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading sections: %w", err)
	}
	return reports.LeastOfferedClasses(rows), nil
}

// SectionsPerYear reports section counts for every year, ascending.
func (s *ReportService) SectionsPerYear(ctx context.Context) ([]reports.YearCount, error) {
	sections, err := s.sectionRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading sections: %w", err)
	}
	return reports.SectionsPerYear(sections), nil
}
