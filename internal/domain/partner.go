package domain

// Partner is an institution collaborating with the alumni association.
type Partner struct {
	Record
	Name         string `json:"name"`
	Category     string `json:"category,omitempty"` // academic, corporate, nonprofit
	Website      string `json:"website,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	Description  string `json:"description,omitempty"`
}

func (p *Partner) SearchText() string {
	return searchable(p.Name, p.Category, p.Description)
}

func (p *Partner) FilterValue(key string) string {
	switch key {
	case "status":
		return string(p.Status)
	case "category":
		return p.Category
	default:
		return ""
	}
}

func (p *Partner) Validate() map[string]string {
	problems := map[string]string{}
	if p.Name == "" {
		problems["name"] = "name is required"
	}
	if p.ContactEmail != "" && !validEmail(p.ContactEmail) {
		problems["contact_email"] = "contact email is invalid"
	}
	return problems
}
