package domain

// Mentorship is a mentorship program offering led by an alumni mentor.
type Mentorship struct {
	Record
	Title       string `json:"title"`
	MentorName  string `json:"mentor_name,omitempty"`
	MentorEmail string `json:"mentor_email,omitempty"`
	Track       string `json:"track,omitempty"` // career, technical, leadership
	Capacity    int    `json:"capacity,omitempty"`
	Description string `json:"description,omitempty"`
}

func (m *Mentorship) SearchText() string {
	return searchable(m.Title, m.MentorName, m.Track, m.Description)
}

func (m *Mentorship) FilterValue(key string) string {
	switch key {
	case "status":
		return string(m.Status)
	case "track":
		return m.Track
	default:
		return ""
	}
}

func (m *Mentorship) Validate() map[string]string {
	problems := map[string]string{}
	if m.Title == "" {
		problems["title"] = "title is required"
	}
	if m.MentorName == "" {
		problems["mentor_name"] = "mentor name is required"
	}
	if m.MentorEmail != "" && !validEmail(m.MentorEmail) {
		problems["mentor_email"] = "mentor email is invalid"
	}
	if m.Capacity < 0 {
		problems["capacity"] = "capacity must not be negative"
	}
	return problems
}
