package model

// SocialLink is an outbound profile link shown in the navigation bar.
type SocialLink struct {
	Label string
	URL   string
	Icon  string // "mail", "linkedin", "github".
}

// Profile holds the owner's identity shown in the hero, navigation and footer.
type Profile struct {
	Name     string
	Initials string
	Headline string
	Tagline  string
	Location string
	Email    string
	Links    []SocialLink
}

// SkillCategory groups skills under a titled card.
type SkillCategory struct {
	Title  string
	Icon   string
	Skills []string
}

// Achievement is the editorial "latest achievement" banner.
type Achievement struct {
	Name   string
	Issuer string
	Earned string // Month-year text.
}

// Highlights holds editorial content that is not derived from the certification list.
type Highlights struct {
	FeaturedBadges []string
	Latest         *Achievement
}

// Portfolio is the complete static dataset. It is loaded once at startup and
// treated as read-only for the lifetime of the process.
type Portfolio struct {
	Profile         Profile
	Experiences     []Experience
	Certifications  []Certification
	Skills          []string
	SkillCategories []SkillCategory
	Highlights      Highlights
}
