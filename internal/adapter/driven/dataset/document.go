package dataset

import "github.com/ericfisherdev/portfolio/internal/domain/model"

// document mirrors portfolio.yaml. Field names follow the schema.
type document struct {
	Profile         profileDoc         `yaml:"profile"`
	Experiences     []experienceDoc    `yaml:"experiences"`
	Certifications  []certificationDoc `yaml:"certifications"`
	Skills          []string           `yaml:"skills"`
	SkillCategories []skillCategoryDoc `yaml:"skill_categories"`
	Highlights      highlightsDoc      `yaml:"highlights"`
}

type profileDoc struct {
	Name     string    `yaml:"name"`
	Initials string    `yaml:"initials"`
	Headline string    `yaml:"headline"`
	Tagline  string    `yaml:"tagline"`
	Location string    `yaml:"location"`
	Email    string    `yaml:"email"`
	Links    []linkDoc `yaml:"links"`
}

type linkDoc struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
	Icon  string `yaml:"icon"`
}

type experienceDoc struct {
	Title            string   `yaml:"title"`
	Company          string   `yaml:"company"`
	Location         string   `yaml:"location"`
	Duration         string   `yaml:"duration"`
	Description      string   `yaml:"description"`
	Responsibilities []string `yaml:"responsibilities"`
	CoreTechnologies []string `yaml:"core_technologies"`
}

type certificationDoc struct {
	Name         string   `yaml:"name"`
	Issuer       string   `yaml:"issuer"`
	Issued       string   `yaml:"issued"`
	Expires      string   `yaml:"expires"`
	CredentialID string   `yaml:"credential_id"`
	Skills       []string `yaml:"skills"`
	Logo         string   `yaml:"logo"`
}

type skillCategoryDoc struct {
	Title  string   `yaml:"title"`
	Icon   string   `yaml:"icon"`
	Skills []string `yaml:"skills"`
}

type highlightsDoc struct {
	FeaturedBadges []string        `yaml:"featured_badges"`
	Latest         *achievementDoc `yaml:"latest"`
}

type achievementDoc struct {
	Name   string `yaml:"name"`
	Issuer string `yaml:"issuer"`
	Earned string `yaml:"earned"`
}

func (d document) toModel() *model.Portfolio {
	p := &model.Portfolio{
		Profile: model.Profile{
			Name:     d.Profile.Name,
			Initials: d.Profile.Initials,
			Headline: d.Profile.Headline,
			Tagline:  d.Profile.Tagline,
			Location: d.Profile.Location,
			Email:    d.Profile.Email,
			Links:    make([]model.SocialLink, 0, len(d.Profile.Links)),
		},
		Experiences:     make([]model.Experience, 0, len(d.Experiences)),
		Certifications:  make([]model.Certification, 0, len(d.Certifications)),
		Skills:          nonNil(d.Skills),
		SkillCategories: make([]model.SkillCategory, 0, len(d.SkillCategories)),
		Highlights: model.Highlights{
			FeaturedBadges: nonNil(d.Highlights.FeaturedBadges),
		},
	}

	for _, l := range d.Profile.Links {
		p.Profile.Links = append(p.Profile.Links, model.SocialLink{Label: l.Label, URL: l.URL, Icon: l.Icon})
	}

	for _, e := range d.Experiences {
		p.Experiences = append(p.Experiences, model.Experience{
			Title:            e.Title,
			Company:          e.Company,
			Location:         e.Location,
			Duration:         e.Duration,
			Description:      e.Description,
			Responsibilities: nonNil(e.Responsibilities),
			CoreTechnologies: nonNil(e.CoreTechnologies),
		})
	}

	for _, c := range d.Certifications {
		p.Certifications = append(p.Certifications, model.Certification{
			Name:         c.Name,
			Issuer:       c.Issuer,
			Issued:       c.Issued,
			Expires:      c.Expires,
			CredentialID: c.CredentialID,
			Skills:       nonNil(c.Skills),
			Logo:         c.Logo,
		})
	}

	for _, sc := range d.SkillCategories {
		p.SkillCategories = append(p.SkillCategories, model.SkillCategory{
			Title:  sc.Title,
			Icon:   sc.Icon,
			Skills: nonNil(sc.Skills),
		})
	}

	if a := d.Highlights.Latest; a != nil {
		p.Highlights.Latest = &model.Achievement{Name: a.Name, Issuer: a.Issuer, Earned: a.Earned}
	}

	return p
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
