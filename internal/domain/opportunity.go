package domain

import (
	"time"
)

// Opportunity is a job, internship, or volunteer posting shared with alumni.
type Opportunity struct {
	Record
	Title       string    `json:"title"`
	Company     string    `json:"company,omitempty"`
	Kind        string    `json:"kind,omitempty"` // job, internship, volunteer
	Location    string    `json:"location,omitempty"`
	Remote      bool      `json:"remote,omitempty"`
	Description string    `json:"description,omitempty"`
	ApplyURL    string    `json:"apply_url,omitempty"`
	ClosesAt    time.Time `json:"closes_at,omitzero"`
}

func (o *Opportunity) SearchText() string {
	return searchable(o.Title, o.Company, o.Location, o.Description)
}

func (o *Opportunity) FilterValue(key string) string {
	switch key {
	case "status":
		return string(o.Status)
	case "kind":
		return o.Kind
	case "location":
		return o.Location
	default:
		return ""
	}
}

func (o *Opportunity) Validate() map[string]string {
	problems := map[string]string{}
	if o.Title == "" {
		problems["title"] = "title is required"
	}
	if o.Company == "" {
		problems["company"] = "company is required"
	}
	return problems
}
