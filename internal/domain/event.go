package domain

import (
	"time"
)

// Event is an alumni engagement event: reunion, workshop, webinar, or
// networking session.
type Event struct {
	Record
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Type        string    `json:"type,omitempty"` // reunion, workshop, webinar, networking
	Location    string    `json:"location,omitempty"`
	ChapterID   string    `json:"chapter_id,omitempty"`
	SponsorID   string    `json:"sponsor_id,omitempty"`
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
	Capacity    int       `json:"capacity,omitempty"` // 0 means unlimited
	Attendees   []string  `json:"attendees,omitempty"`
}

func (e *Event) SearchText() string {
	return searchable(e.Title, e.Description, e.Location, e.Type)
}

func (e *Event) FilterValue(key string) string {
	switch key {
	case "status":
		return string(e.Status)
	case "type":
		return e.Type
	case "location":
		return e.Location
	case "chapter_id":
		return e.ChapterID
	case "sponsor_id":
		return e.SponsorID
	default:
		return ""
	}
}

func (e *Event) Validate() map[string]string {
	problems := map[string]string{}
	if e.Title == "" {
		problems["title"] = "title is required"
	}
	if e.StartAt.IsZero() {
		problems["start_at"] = "start date is required"
	}
	if !e.StartAt.IsZero() && !e.EndAt.IsZero() && e.EndAt.Before(e.StartAt) {
		problems["end_at"] = "end date must not be before start date"
	}
	if e.Capacity < 0 {
		problems["capacity"] = "capacity must not be negative"
	}
	return problems
}

// HasAttendee reports whether the user has already RSVP'd.
func (e *Event) HasAttendee(userID string) bool {
	for _, id := range e.Attendees {
		if id == userID {
			return true
		}
	}
	return false
}

// IsFull reports whether the event has reached capacity. Zero capacity means
// unlimited.
func (e *Event) IsFull() bool {
	return e.Capacity > 0 && len(e.Attendees) >= e.Capacity
}
