// Package viewmodel defines presentation-ready structs for templ components.
// View models decouple template rendering from domain model types.
package viewmodel

// PageViewModel holds everything the single portfolio page renders.
type PageViewModel struct {
	Title           string
	Profile         ProfileViewModel
	NavItems        []NavItemViewModel
	Experiences     []ExperienceViewModel
	SkillCategories []SkillCategoryViewModel
	Stats           []StatCardViewModel
	FeaturedBadges  []string
	Latest          *AchievementViewModel

	ActiveCertifications  []CertificationViewModel
	ExpiredCertifications []CertificationViewModel
	ActiveCount           string
	ExpiredCount          string

	Contact ContactFormViewModel
	Year    string
}

// NavItemViewModel is an in-page anchor in the navigation bar.
type NavItemViewModel struct {
	Label string
	Href  string
}

// ProfileViewModel holds the owner's identity for hero, navigation and footer.
type ProfileViewModel struct {
	Name      string
	Initials  string
	Headline  string
	Tagline   string
	Location  string
	Email     string
	MailtoURL string
	Links     []LinkViewModel
}

// LinkViewModel is an outbound social link.
type LinkViewModel struct {
	Label string
	URL   string
	Icon  string
}

// ExperienceViewModel holds a work-history entry. DescriptionHTML and
// Responsibilities are sanitized HTML rendered from Markdown.
type ExperienceViewModel struct {
	Title            string
	Company          string
	Location         string
	Duration         string
	DescriptionHTML  string
	Responsibilities []string
	CoreTechnologies []string
}

// SkillCategoryViewModel is a titled card of skill tags.
type SkillCategoryViewModel struct {
	Title  string
	Icon   string
	Skills []string
}

// StatCardViewModel is one animated counter card.
type StatCardViewModel struct {
	Key         string
	Title       string
	Value       string
	Suffix      string
	Description string
	// StreamURL is the server-sent events endpoint for the counter. Empty in
	// the static export, where the counter animates client-side.
	StreamURL string
}

// AchievementViewModel is the "latest achievement" banner.
type AchievementViewModel struct {
	Name   string
	Issuer string
	Earned string
}

// CertificationViewModel holds presentation-ready data for a certification card.
type CertificationViewModel struct {
	Name         string
	Issuer       string
	Issued       string
	Expires      string // "Never" when the certification has no expiry.
	CredentialID string
	Skills       []string
	Logo         string
	Status       string // "active" or "expired".
	StatusLabel  string
}

// ContactFormViewModel holds the contact form state, including the user's
// input when it has to be shown again.
type ContactFormViewModel struct {
	// Action is the POST target. Empty in the static export, where the form
	// is replaced by a mailto link.
	Action    string
	CSRFToken string
	MailtoURL string

	Name    string
	Email   string
	Message string

	Errors       map[string]string
	GeneralError string
	Retry        bool
}

// FieldError returns the validation message for field, or "".
func (c ContactFormViewModel) FieldError(field string) string {
	return c.Errors[field]
}

// ContactSuccessViewModel is shown once a submission has been accepted.
type ContactSuccessViewModel struct {
	Name      string
	ReceiptID string
}
