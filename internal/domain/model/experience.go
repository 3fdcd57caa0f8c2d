package model

// Experience is a single position in the work history. Description and
// Responsibilities may contain Markdown.
type Experience struct {
	Title            string
	Company          string
	Location         string
	Duration         string // Free-form label, e.g. "2024 - Present".
	Description      string
	Responsibilities []string
	CoreTechnologies []string
}
