package domain

// Chapter is a regional alumni chapter.
type Chapter struct {
	Record
	Name        string `json:"name"`
	Region      string `json:"region,omitempty"`
	City        string `json:"city,omitempty"`
	Country     string `json:"country,omitempty"`
	LeadName    string `json:"lead_name,omitempty"`
	LeadEmail   string `json:"lead_email,omitempty"`
	MemberCount int    `json:"member_count,omitempty"`
}

func (ch *Chapter) SearchText() string {
	return searchable(ch.Name, ch.Region, ch.City, ch.Country, ch.LeadName)
}

func (ch *Chapter) FilterValue(key string) string {
	switch key {
	case "status":
		return string(ch.Status)
	case "region":
		return ch.Region
	case "country":
		return ch.Country
	default:
		return ""
	}
}

func (ch *Chapter) Validate() map[string]string {
	problems := map[string]string{}
	if ch.Name == "" {
		problems["name"] = "name is required"
	}
	if ch.LeadEmail != "" && !validEmail(ch.LeadEmail) {
		problems["lead_email"] = "lead email is invalid"
	}
	if ch.MemberCount < 0 {
		problems["member_count"] = "member count must not be negative"
	}
	return problems
}
