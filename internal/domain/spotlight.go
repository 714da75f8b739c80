package domain

// Spotlight is an alumni success story featured on the portal.
type Spotlight struct {
	Record
	Title      string `json:"title"`
	AlumniName string `json:"alumni_name"`
	GradYear   int    `json:"grad_year,omitempty"`
	Summary    string `json:"summary,omitempty"`
	Body       string `json:"body,omitempty"`
	ImageURL   string `json:"image_url,omitempty"`
}

func (s *Spotlight) SearchText() string {
	return searchable(s.Title, s.AlumniName, s.Summary, s.Body)
}

func (s *Spotlight) FilterValue(key string) string {
	switch key {
	case "status":
		return string(s.Status)
	default:
		return ""
	}
}

func (s *Spotlight) Validate() map[string]string {
	problems := map[string]string{}
	if s.Title == "" {
		problems["title"] = "title is required"
	}
	if s.AlumniName == "" {
		problems["alumni_name"] = "alumni name is required"
	}
	return problems
}
