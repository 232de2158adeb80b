package services

import (
	"context"

	"github.com/segfault/coursecatalog/internal/app/models"
)

// In-memory repository fakes. Slices keep insertion order so the services see
// the same primary-key scan order the SQL layer guarantees.

type mockMeetingRepo struct {
	meetings []models.Meeting
	nextID   int64
}

func newMockMeetingRepo() *mockMeetingRepo {
	return &mockMeetingRepo{nextID: 1}
}

func (m *mockMeetingRepo) GetAll(_ context.Context) ([]models.Meeting, error) {
	return append([]models.Meeting(nil), m.meetings...), nil
}

func (m *mockMeetingRepo) GetByID(_ context.Context, id int64) (*models.Meeting, error) {
	for i := range m.meetings {
		if m.meetings[i].ID == id {
			row := m.meetings[i]
			return &row, nil
		}
	}
	return nil, nil
}

func (m *mockMeetingRepo) Create(_ context.Context, meeting *models.Meeting) error {
	meeting.ID = m.nextID
	m.nextID++
	m.meetings = append(m.meetings, *meeting)
	return nil
}

func (m *mockMeetingRepo) Update(_ context.Context, meeting *models.Meeting) error {
	for i := range m.meetings {
		if m.meetings[i].ID == meeting.ID {
			m.meetings[i] = *meeting
			return nil
		}
	}
	return nil
}

func (m *mockMeetingRepo) Delete(_ context.Context, id int64) error {
	for i := range m.meetings {
		if m.meetings[i].ID == id {
			m.meetings = append(m.meetings[:i], m.meetings[i+1:]...)
			return nil
		}
	}
	return nil
}

type mockClassRepo struct {
	classes []models.Class
}

func newMockClassRepo(classes ...models.Class) *mockClassRepo {
	return &mockClassRepo{classes: classes}
}

func (m *mockClassRepo) GetAll(_ context.Context) ([]models.Class, error) {
	return append([]models.Class(nil), m.classes...), nil
}

func (m *mockClassRepo) GetByID(_ context.Context, id int64) (*models.Class, error) {
	for i := range m.classes {
		if m.classes[i].ID == id {
			row := m.classes[i]
			return &row, nil
		}
	}
	return nil, nil
}

type mockRequisiteRepo struct {
	requisites []models.Requisite
}

func newMockRequisiteRepo() *mockRequisiteRepo {
	return &mockRequisiteRepo{}
}

func (m *mockRequisiteRepo) GetAll(_ context.Context) ([]models.Requisite, error) {
	return append([]models.Requisite(nil), m.requisites...), nil
}

func (m *mockRequisiteRepo) GetByKey(_ context.Context, classID, reqID int64) (*models.Requisite, error) {
	for i := range m.requisites {
		if m.requisites[i].ClassID == classID && m.requisites[i].ReqID == reqID {
			row := m.requisites[i]
			return &row, nil
		}
	}
	return nil, nil
}

func (m *mockRequisiteRepo) Create(_ context.Context, requisite *models.Requisite) error {
	m.requisites = append(m.requisites, *requisite)
	return nil
}

func (m *mockRequisiteRepo) Update(_ context.Context, requisite *models.Requisite) error {
	for i := range m.requisites {
		if m.requisites[i].ClassID == requisite.ClassID && m.requisites[i].ReqID == requisite.ReqID {
			m.requisites[i] = *requisite
			return nil
		}
	}
	return nil
}

func (m *mockRequisiteRepo) Delete(_ context.Context, classID, reqID int64) error {
	for i := range m.requisites {
		if m.requisites[i].ClassID == classID && m.requisites[i].ReqID == reqID {
			m.requisites = append(m.requisites[:i], m.requisites[i+1:]...)
			return nil
		}
	}
	return nil
}
