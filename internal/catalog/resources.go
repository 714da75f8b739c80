package catalog

import (
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/domain"
)

// Events describes the alumni events resource.
func Events() Resource[*domain.Event] {
	return Resource[*domain.Event]{
		Name:          "event",
		Path:          "events",
		New:           func() *domain.Event { return &domain.Event{} },
		DefaultStatus: domain.StatusDraft,
		FilterKeys:    []string{"type", "location", "chapter_id", "sponsor_id"},
		DefaultFilters: map[string]string{
			"status": "",
			"type":   "",
		},
		Transitions: map[string]Transition{
			"publish": {From: []domain.Status{domain.StatusDraft}, To: domain.StatusPublished},
			"cancel":  {From: []domain.Status{domain.StatusDraft, domain.StatusPublished}, To: domain.StatusCancelled},
			"archive": {From: []domain.Status{domain.StatusPublished, domain.StatusCancelled}, To: domain.StatusArchived},
		},
		Display: map[domain.Status]domain.Display{
			domain.StatusDraft:     {Label: "Draft", Badge: "neutral", Icon: "pencil"},
			domain.StatusPublished: {Label: "Published", Badge: "success", Icon: "calendar"},
			domain.StatusCancelled: {Label: "Cancelled", Badge: "danger", Icon: "x-circle"},
			domain.StatusArchived:  {Label: "Archived", Badge: "muted", Icon: "archive"},
		},
	}
}

// Sponsors describes the sponsors resource.
func Sponsors() Resource[*domain.Sponsor] {
	return Resource[*domain.Sponsor]{
		Name:          "sponsor",
		Path:          "sponsors",
		New:           func() *domain.Sponsor { return &domain.Sponsor{} },
		DefaultStatus: domain.StatusPending,
		FilterKeys:    []string{"tier"},
		DefaultFilters: map[string]string{
			"status": "",
			"tier":   "",
		},
		Transitions: map[string]Transition{
			"approve":    {From: []domain.Status{domain.StatusPending}, To: domain.StatusActive},
			"deactivate": {From: []domain.Status{domain.StatusActive}, To: domain.StatusInactive},
			"reactivate": {From: []domain.Status{domain.StatusInactive}, To: domain.StatusActive},
		},
		Display: map[domain.Status]domain.Display{
			domain.StatusPending:  {Label: "Pending", Badge: "warning", Icon: "clock"},
			domain.StatusActive:   {Label: "Active", Badge: "success", Icon: "check-circle"},
			domain.StatusInactive: {Label: "Inactive", Badge: "muted", Icon: "pause-circle"},
		},
	}
}

// Partners describes the partners resource.
func Partners() Resource[*domain.Partner] {
	return Resource[*domain.Partner]{
		Name:          "partner",
		Path:          "partners",
		New:           func() *domain.Partner { return &domain.Partner{} },
		DefaultStatus: domain.StatusPending,
		FilterKeys:    []string{"category"},
		DefaultFilters: map[string]string{
			"status":   "",
			"category": "",
		},
		Transitions: map[string]Transition{
			"approve": {From: []domain.Status{domain.StatusPending}, To: domain.StatusApproved},
			"reject":  {From: []domain.Status{domain.StatusPending}, To: domain.StatusRejected},
			"archive": {From: []domain.Status{domain.StatusApproved}, To: domain.StatusArchived},
		},
		Display: map[domain.Status]domain.Display{
			domain.StatusPending:  {Label: "Pending", Badge: "warning", Icon: "clock"},
			domain.StatusApproved: {Label: "Approved", Badge: "success", Icon: "check-circle"},
			domain.StatusRejected: {Label: "Rejected", Badge: "danger", Icon: "x-circle"},
			domain.StatusArchived: {Label: "Archived", Badge: "muted", Icon: "archive"},
		},
	}
}

// Chapters describes the regional chapters resource.
func Chapters() Resource[*domain.Chapter] {
	return Resource[*domain.Chapter]{
		Name:          "chapter",
		Path:          "chapters",
		New:           func() *domain.Chapter { return &domain.Chapter{} },
		DefaultStatus: domain.StatusPending,
		FilterKeys:    []string{"region", "country"},
		DefaultFilters: map[string]string{
			"status": "",
			"region": "",
		},
		Transitions: map[string]Transition{
			"approve":    {From: []domain.Status{domain.StatusPending}, To: domain.StatusActive},
			"deactivate": {From: []domain.Status{domain.StatusActive}, To: domain.StatusInactive},
			"reactivate": {From: []domain.Status{domain.StatusInactive}, To: domain.StatusActive},
		},
		Display: map[domain.Status]domain.Display{
			domain.StatusPending:  {Label: "Pending", Badge: "warning", Icon: "clock"},
			domain.StatusActive:   {Label: "Active", Badge: "success", Icon: "map-pin"},
			domain.StatusInactive: {Label: "Inactive", Badge: "muted", Icon: "pause-circle"},
		},
	}
}

// Opportunities describes the job/volunteer opportunities resource.
func Opportunities() Resource[*domain.Opportunity] {
	return Resource[*domain.Opportunity]{
		Name:          "opportunity",
		Path:          "opportunities",
		New:           func() *domain.Opportunity { return &domain.Opportunity{} },
		DefaultStatus: domain.StatusDraft,
		FilterKeys:    []string{"kind", "location"},
		DefaultFilters: map[string]string{
			"status": "",
			"kind":   "",
		},
		Transitions: map[string]Transition{
			"publish": {From: []domain.Status{domain.StatusDraft}, To: domain.StatusPublished},
			"feature": {From: []domain.Status{domain.StatusPublished}, To: domain.StatusFeatured},
			"archive": {From: []domain.Status{domain.StatusPublished, domain.StatusFeatured}, To: domain.StatusArchived},
		},
		Display: map[domain.Status]domain.Display{
			domain.StatusDraft:     {Label: "Draft", Badge: "neutral", Icon: "pencil"},
			domain.StatusPublished: {Label: "Published", Badge: "success", Icon: "briefcase"},
			domain.StatusFeatured:  {Label: "Featured", Badge: "accent", Icon: "star"},
			domain.StatusArchived:  {Label: "Archived", Badge: "muted", Icon: "archive"},
		},
	}
}

// Mentorships describes the mentorship programs resource.
func Mentorships() Resource[*domain.Mentorship] {
	return Resource[*domain.Mentorship]{
		Name:          "mentorship",
		Path:          "mentorships",
		New:           func() *domain.Mentorship { return &domain.Mentorship{} },
		DefaultStatus: domain.StatusDraft,
		FilterKeys:    []string{"track"},
		DefaultFilters: map[string]string{
			"status": "",
			"track":  "",
		},
		Transitions: map[string]Transition{
			"publish": {From: []domain.Status{domain.StatusDraft}, To: domain.StatusPublished},
			"archive": {From: []domain.Status{domain.StatusPublished}, To: domain.StatusArchived},
		},
		Display: map[domain.Status]domain.Display{
			domain.StatusDraft:     {Label: "Draft", Badge: "neutral", Icon: "pencil"},
			domain.StatusPublished: {Label: "Published", Badge: "success", Icon: "users"},
			domain.StatusArchived:  {Label: "Archived", Badge: "muted", Icon: "archive"},
		},
	}
}

// Questions describes the community Q&A resource.
func Questions() Resource[*domain.Question] {
	return Resource[*domain.Question]{
		Name:          "question",
		Path:          "questions",
		New:           func() *domain.Question { return &domain.Question{} },
		DefaultStatus: domain.StatusPending,
		FilterKeys:    []string{"category", "author_id"},
		DefaultFilters: map[string]string{
			"status":   "",
			"category": "",
		},
		Transitions: map[string]Transition{
			"approve": {From: []domain.Status{domain.StatusPending}, To: domain.StatusApproved},
			"reject":  {From: []domain.Status{domain.StatusPending}, To: domain.StatusRejected},
			"feature": {From: []domain.Status{domain.StatusApproved}, To: domain.StatusFeatured},
			"archive": {From: []domain.Status{domain.StatusApproved, domain.StatusFeatured}, To: domain.StatusArchived},
		},
		Display: map[domain.Status]domain.Display{
			domain.StatusPending:  {Label: "Pending", Badge: "warning", Icon: "clock"},
			domain.StatusApproved: {Label: "Approved", Badge: "success", Icon: "message-circle"},
			domain.StatusRejected: {Label: "Rejected", Badge: "danger", Icon: "x-circle"},
			domain.StatusFeatured: {Label: "Featured", Badge: "accent", Icon: "star"},
			domain.StatusArchived: {Label: "Archived", Badge: "muted", Icon: "archive"},
		},
	}
}

// Spotlights describes the alumni spotlights resource.
func Spotlights() Resource[*domain.Spotlight] {
	return Resource[*domain.Spotlight]{
		Name:          "spotlight",
		Path:          "spotlights",
		New:           func() *domain.Spotlight { return &domain.Spotlight{} },
		DefaultStatus: domain.StatusDraft,
		FilterKeys:    nil,
		DefaultFilters: map[string]string{
			"status": "",
		},
		Transitions: map[string]Transition{
			"publish": {From: []domain.Status{domain.StatusDraft}, To: domain.StatusPublished},
			"feature": {From: []domain.Status{domain.StatusPublished}, To: domain.StatusFeatured},
			"archive": {From: []domain.Status{domain.StatusPublished, domain.StatusFeatured}, To: domain.StatusArchived},
		},
		Display: map[domain.Status]domain.Display{
			domain.StatusDraft:     {Label: "Draft", Badge: "neutral", Icon: "pencil"},
			domain.StatusPublished: {Label: "Published", Badge: "success", Icon: "award"},
			domain.StatusFeatured:  {Label: "Featured", Badge: "accent", Icon: "star"},
			domain.StatusArchived:  {Label: "Archived", Badge: "muted", Icon: "archive"},
		},
	}
}

// TablePaths lists every resource collection path, used for schema setup.
func TablePaths() []string {
	return []string{
		Events().Path,
		Sponsors().Path,
		Partners().Path,
		Chapters().Path,
		Opportunities().Path,
		Mentorships().Path,
		Questions().Path,
		Spotlights().Path,
	}
}
