package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	ClassRepository     *ClassRepository
	SectionRepository   *SectionRepository
	MeetingRepository   *MeetingRepository
	RoomRepository      *RoomRepository
	RequisiteRepository *RequisiteRepository
	UserRepository      *UserRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		ClassRepository:     NewClassRepository(db),
		SectionRepository:   NewSectionRepository(db),
		MeetingRepository:   NewMeetingRepository(db),
		RoomRepository:      NewRoomRepository(db),
		RequisiteRepository: NewRequisiteRepository(db),
		UserRepository:      NewUserRepository(db),
	}
}
