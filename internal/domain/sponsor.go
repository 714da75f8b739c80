package domain

// Sponsor is an organization funding alumni programming.
type Sponsor struct {
	Record
	Name         string `json:"name"`
	Tier         string `json:"tier,omitempty"` // platinum, gold, silver, bronze
	Website      string `json:"website,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	LogoURL      string `json:"logo_url,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

func (s *Sponsor) SearchText() string {
	return searchable(s.Name, s.Tier, s.Notes)
}

func (s *Sponsor) FilterValue(key string) string {
	switch key {
	case "status":
		return string(s.Status)
	case "tier":
		return s.Tier
	default:
		return ""
	}
}

func (s *Sponsor) Validate() map[string]string {
	problems := map[string]string{}
	if s.Name == "" {
		problems["name"] = "name is required"
	}
	if s.ContactEmail != "" && !validEmail(s.ContactEmail) {
		problems["contact_email"] = "contact email is invalid"
	}
	return problems
}
