package domain

import (
	"regexp"
	"strings"
	"time"
)

// Status is the lifecycle state of a managed record.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
	StatusCancelled Status = "cancelled"
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusFeatured  Status = "featured"
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
)

// Display describes how a status is rendered: label text, badge color token,
// and icon name. Supplied declaratively per resource instead of switch
// statements at every call site.
type Display struct {
	Label string `json:"label"`
	Badge string `json:"badge"`
	Icon  string `json:"icon"`
}

// Entity is implemented by every managed record. All implementations use
// pointer receivers; the zero value of an Entity type parameter is nil.
type Entity interface {
	EntityID() string
	SetEntityID(id string)
	EntityStatus() Status
	SetEntityStatus(s Status)
	// SearchText returns the lowercase haystack matched against the search
	// filter.
	SearchText() string
	// FilterValue returns the record's value for a named filter key, or ""
	// when the key does not apply to this record type.
	FilterValue(key string) string
	// Validate returns field name to problem description for every invalid
	// field, or an empty map when the record is valid.
	Validate() map[string]string
	Stamp(now time.Time)
	Touch(now time.Time)
	CreatedTime() time.Time
}

// Record carries the fields shared by every managed entity and implements
// the identity and timestamp parts of Entity.
type Record struct {
	ID        string    `json:"id"`
	Status    Status    `json:"status"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Record) EntityID() string         { return r.ID }
func (r *Record) SetEntityID(id string)    { r.ID = id }
func (r *Record) EntityStatus() Status     { return r.Status }
func (r *Record) SetEntityStatus(s Status) { r.Status = s }

// Stamp sets both timestamps, used on create.
func (r *Record) Stamp(now time.Time) {
	r.CreatedAt = now
	r.UpdatedAt = now
}

// Touch bumps the updated timestamp.
func (r *Record) Touch(now time.Time) {
	r.UpdatedAt = now
}

// CreatedTime returns the creation timestamp, used for list ordering.
func (r *Record) CreatedTime() time.Time {
	return r.CreatedAt
}

// searchable joins the given parts into a lowercase haystack.
func searchable(parts ...string) string {
	return strings.ToLower(strings.Join(parts, " "))
}

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validEmail(email string) bool {
	return emailRegex.MatchString(email)
}
