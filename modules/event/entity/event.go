package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// DateRange is an inclusive range of calendar dates (YYYY-MM-DD).
// Start == End represents a single-day event.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// TimeRange is the daily time window (HH:MM labels) slots are drawn from.
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Availability maps a calendar date (YYYY-MM-DD) to the slot labels the
// participant marked available on that date. Dates with no selected
// slots need not be present.
type Availability map[string][]string

// Participant is one submission in an event. Name is the identity key
// within the event; AvatarColor is a presentation-only tag.
type Participant struct {
	Name         string       `json:"name"`
	AvatarColor  string       `json:"avatarColor"`
	Availability Availability `json:"availability"`
}

// SlotsOn returns the participant's recorded slots for date, or an
// empty set when none are recorded.
func (p *Participant) SlotsOn(date string) []string {
	if p.Availability == nil {
		return nil
	}
	return p.Availability[date]
}

// IsAvailableAt reports whether the participant marked the slot on date.
func (p *Participant) IsAvailableAt(date, slot string) bool {
	for _, s := range p.SlotsOn(date) {
		if s == slot {
			return true
		}
	}
	return false
}

// ParticipantList is stored as one JSONB document on the event row.
type ParticipantList []Participant

func (l ParticipantList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return json.Marshal(l)
}

func (l *ParticipantList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported participants column type %T", src)
	}
}

// Event is a meeting-time poll. Code is the short public identifier,
// generated once at creation and matched case-insensitively.
type Event struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Code        string    `db:"code" json:"code"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	DateStart   string    `db:"date_start" json:"date_start"`
	DateEnd     string    `db:"date_end" json:"date_end"`
	TimeStart   string    `db:"time_start" json:"time_start"`
	TimeEnd     string    `db:"time_end" json:"time_end"`

	// AllowedParticipants nil means the event is open to any name.
	AllowedParticipants pq.StringArray  `db:"allowed_participants" json:"allowed_participants"`
	Participants        ParticipantList `db:"participants" json:"participants"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

func (e *Event) DateRange() DateRange {
	return DateRange{Start: e.DateStart, End: e.DateEnd}
}

func (e *Event) TimeRange() TimeRange {
	return TimeRange{Start: e.TimeStart, End: e.TimeEnd}
}

// IsOpen reports whether anyone may join, or only allowlisted names.
func (e *Event) IsOpen() bool {
	return e.AllowedParticipants == nil
}

// IsNameAllowed reports whether name may join this event.
func (e *Event) IsNameAllowed(name string) bool {
	if e.IsOpen() {
		return true
	}
	for _, allowed := range e.AllowedParticipants {
		if allowed == name {
			return true
		}
	}
	return false
}

// FindParticipant returns the participant with the given name, or nil.
func (e *Event) FindParticipant(name string) *Participant {
	for i := range e.Participants {
		if e.Participants[i].Name == name {
			return &e.Participants[i]
		}
	}
	return nil
}

// UpsertParticipant replaces any existing entry with the same name and
// appends the new one. A re-submission therefore moves to the end of
// the list rather than duplicating.
func (e *Event) UpsertParticipant(p Participant) {
	for i := range e.Participants {
		if e.Participants[i].Name == p.Name {
			e.Participants = append(e.Participants[:i], e.Participants[i+1:]...)
			break
		}
	}
	e.Participants = append(e.Participants, p)
}

// Clone returns a deep copy, used by the in-memory repository so
// callers never share state with the stored record.
func (e *Event) Clone() *Event {
	cp := *e
	if e.AllowedParticipants != nil {
		cp.AllowedParticipants = append(pq.StringArray{}, e.AllowedParticipants...)
	}
	cp.Participants = make(ParticipantList, len(e.Participants))
	for i, p := range e.Participants {
		cp.Participants[i] = Participant{
			Name:        p.Name,
			AvatarColor: p.AvatarColor,
		}
		if p.Availability != nil {
			cp.Participants[i].Availability = make(Availability, len(p.Availability))
			for date, slots := range p.Availability {
				cp.Participants[i].Availability[date] = append([]string{}, slots...)
			}
		}
	}
	return &cp
}
