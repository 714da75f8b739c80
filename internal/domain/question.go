package domain

// Question is a community Q&A entry awaiting moderation.
type Question struct {
	Record
	Title       string `json:"title"`
	Body        string `json:"body,omitempty"`
	AuthorID    string `json:"author_id,omitempty"`
	Category    string `json:"category,omitempty"`
	AnswerCount int    `json:"answer_count,omitempty"`
	Upvotes     int    `json:"upvotes,omitempty"`
}

func (q *Question) SearchText() string {
	return searchable(q.Title, q.Body, q.Category)
}

func (q *Question) FilterValue(key string) string {
	switch key {
	case "status":
		return string(q.Status)
	case "category":
		return q.Category
	case "author_id":
		return q.AuthorID
	default:
		return ""
	}
}

func (q *Question) Validate() map[string]string {
	problems := map[string]string{}
	if q.Title == "" {
		problems["title"] = "title is required"
	}
	return problems
}
