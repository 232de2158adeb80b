package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/segfault/coursecatalog/internal/pkg/apperrors"
	"github.com/segfault/coursecatalog/internal/pkg/validation"
)

func candidate(t *testing.T, body string) validation.Candidate {
	t.Helper()
	c, err := validation.Decode(strings.NewReader(body))
	if err != nil {
		t.Fatalf("Decode should accept %q: %v", body, err)
	}
	return c
}

func TestMeetingService_Create_Admits(t *testing.T) {
	svc := NewMeetingService(newMockMeetingRepo())

	meeting, err := svc.CreateMeeting(context.Background(), candidate(t,
		`{"ccode": "CIS101", "starttime": "09:00:00", "endtime": "09:50:00", "cdays": "MWF"}`))
	if err != nil {
		t.Fatalf("expected admit: %v", err)
	}
	if meeting.ID == 0 {
		t.Error("expected server-assigned identity")
	}
	if meeting.StartTime != "09:00:00" || meeting.EndTime != "09:50:00" {
		t.Errorf("times must round-trip canonically, got %q-%q", meeting.StartTime, meeting.EndTime)
	}
}

func TestMeetingService_Create_CanonicalizesTimes(t *testing.T) {
	svc := NewMeetingService(newMockMeetingRepo())

	meeting, err := svc.CreateMeeting(context.Background(), candidate(t,
		`{"ccode": "CIS101", "starttime": "9:0:0", "endtime": "9:50:0", "cdays": "MWF"}`))
	if err != nil {
		t.Fatalf("expected admit: %v", err)
	}
	if meeting.StartTime != "09:00:00" {
		t.Errorf("expected 09:00:00, got %q", meeting.StartTime)
	}
	if meeting.EndTime != "09:50:00" {
		t.Errorf("expected 09:50:00, got %q", meeting.EndTime)
	}
}

func TestMeetingService_Create_RejectsDuplicateKey(t *testing.T) {
	repo := newMockMeetingRepo()
	svc := NewMeetingService(repo)
	body := `{"ccode": "CIS101", "starttime": "09:00:00", "endtime": "09:50:00", "cdays": "MWF"}`

	if _, err := svc.CreateMeeting(context.Background(), candidate(t, body)); err != nil {
		t.Fatalf("first insert should admit: %v", err)
	}

	_, err := svc.CreateMeeting(context.Background(), candidate(t, body))
	if !errors.Is(err, apperrors.ErrDuplicateEntry) {
		t.Fatalf("expected ErrDuplicateEntry, got: %v", err)
	}
	if len(repo.meetings) != 1 {
		t.Errorf("rejected insert must not persist, have %d rows", len(repo.meetings))
	}

	// Same candidate, same state: the verdict must not flip.
	if _, err := svc.CreateMeeting(context.Background(), candidate(t, body)); !errors.Is(err, apperrors.ErrDuplicateEntry) {
		t.Errorf("revalidation flipped the verdict: %v", err)
	}
}

func TestMeetingService_Create_DifferentDaysAdmitted(t *testing.T) {
	svc := NewMeetingService(newMockMeetingRepo())

	if _, err := svc.CreateMeeting(context.Background(), candidate(t,
		`{"ccode": "CIS101", "starttime": "09:00:00", "endtime": "09:50:00", "cdays": "MWF"}`)); err != nil {
		t.Fatalf("first insert should admit: %v", err)
	}

	if _, err := svc.CreateMeeting(context.Background(), candidate(t,
		`{"ccode": "CIS101", "starttime": "09:00:00", "endtime": "09:50:00", "cdays": "TR"}`)); err != nil {
		t.Errorf("differing cdays makes a distinct key, expected admit: %v", err)
	}
}

func TestMeetingService_Create_MissingFieldOutranksBadFormat(t *testing.T) {
	svc := NewMeetingService(newMockMeetingRepo())

	// starttime is malformed AND cdays is absent; the missing field wins.
	_, err := svc.CreateMeeting(context.Background(), candidate(t,
		`{"ccode": "CIS101", "starttime": "25:99:99", "endtime": "09:50:00"}`))
	if !errors.Is(err, apperrors.ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got: %v", err)
	}
	if got := apperrors.FieldOf(err); got != "cdays" {
		t.Errorf("expected cdays, got %q", got)
	}
}

func TestMeetingService_Create_RejectsBadClock(t *testing.T) {
	svc := NewMeetingService(newMockMeetingRepo())

	_, err := svc.CreateMeeting(context.Background(), candidate(t,
		`{"ccode": "CIS101", "starttime": "25:00:00", "endtime": "09:50:00", "cdays": "MWF"}`))
	if !errors.Is(err, apperrors.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got: %v", err)
	}
	if got := apperrors.FieldOf(err); got != "starttime" {
		t.Errorf("expected starttime, got %q", got)
	}
}

func TestMeetingService_Create_RejectsNumericCode(t *testing.T) {
	svc := NewMeetingService(newMockMeetingRepo())

	_, err := svc.CreateMeeting(context.Background(), candidate(t,
		`{"ccode": 101, "starttime": "09:00:00", "endtime": "09:50:00", "cdays": "MWF"}`))
	if !errors.Is(err, apperrors.ErrInvalidType) {
		t.Fatalf("expected ErrInvalidType, got: %v", err)
	}
}

func TestMeetingService_Update_PartialFields(t *testing.T) {
	repo := newMockMeetingRepo()
	svc := NewMeetingService(repo)

	created, err := svc.CreateMeeting(context.Background(), candidate(t,
		`{"ccode": "CIS101", "starttime": "09:00:00", "endtime": "09:50:00", "cdays": "MWF"}`))
	if err != nil {
		t.Fatalf("insert should admit: %v", err)
	}

	updated, err := svc.UpdateMeeting(context.Background(), created.ID, candidate(t,
		`{"starttime": "10:00:00"}`))
	if err != nil {
		t.Fatalf("update should succeed: %v", err)
	}
	if updated.StartTime != "10:00:00" {
		t.Errorf("expected 10:00:00, got %q", updated.StartTime)
	}
	if updated.EndTime != "09:50:00" || updated.Code != "CIS101" || updated.Days != "MWF" {
		t.Error("untouched fields must survive a partial update")
	}
}

func TestMeetingService_Update_NotFound(t *testing.T) {
	svc := NewMeetingService(newMockMeetingRepo())

	_, err := svc.UpdateMeeting(context.Background(), 42, candidate(t, `{"cdays": "TR"}`))
	if !errors.Is(err, apperrors.ErrMeetingNotFound) {
		t.Errorf("expected ErrMeetingNotFound, got: %v", err)
	}
}

func TestMeetingService_Delete_NotFound(t *testing.T) {
	svc := NewMeetingService(newMockMeetingRepo())

	if err := svc.DeleteMeeting(context.Background(), 42); !errors.Is(err, apperrors.ErrMeetingNotFound) {
		t.Errorf("expected ErrMeetingNotFound, got: %v", err)
	}
}
