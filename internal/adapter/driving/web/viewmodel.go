package web

import (
	"strconv"

	vm "github.com/ericfisherdev/portfolio/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/portfolio/internal/application"
	"github.com/ericfisherdev/portfolio/internal/domain/model"
)

// statCardCopy is the static text of each stat card, keyed by stat key.
var statCardCopy = map[string]struct {
	title       string
	suffix      string
	description string
}{
	application.StatTotal:  {"Total Certifications", "+", "Active certifications across multiple cloud platforms"},
	application.StatIssuer: {"Microsoft Certified", "", "Azure and Microsoft 365 certifications"},
	application.StatYears:  {"Years Learning", "+", "Continuous professional development"},
	application.StatLevel:  {"Expert Level", "", "Advanced and expert-level certifications"},
}

var navItems = []vm.NavItemViewModel{
	{Label: "Home", Href: "#home"},
	{Label: "Experience", Href: "#experience"},
	{Label: "Skills", Href: "#skills"},
	{Label: "Certifications", Href: "#certifications"},
	{Label: "Contact", Href: "#contact"},
}

// pageOptions controls the parts of the page that differ between the live
// server and the static export.
type pageOptions struct {
	live      bool
	csrfToken string
}

func toPageViewModel(ov application.PortfolioOverview, opts pageOptions) vm.PageViewModel {
	profile := toProfileViewModel(ov.Profile)

	page := vm.PageViewModel{
		Title:                 profile.Name + " | " + profile.Headline,
		Profile:               profile,
		NavItems:              navItems,
		Experiences:           make([]vm.ExperienceViewModel, 0, len(ov.Experiences)),
		SkillCategories:       make([]vm.SkillCategoryViewModel, 0, len(ov.SkillCategories)),
		Stats:                 toStatCardViewModels(ov.Stats, opts.live),
		FeaturedBadges:        nonNil(ov.Highlights.FeaturedBadges),
		Latest:                toAchievementViewModel(ov.Highlights.Latest),
		ActiveCertifications:  toCertificationViewModels(ov.Certifications.Active, "active"),
		ExpiredCertifications: toCertificationViewModels(ov.Certifications.Expired, "expired"),
		ActiveCount:           strconv.Itoa(len(ov.Certifications.Active)),
		ExpiredCount:          strconv.Itoa(len(ov.Certifications.Expired)),
		Contact:               newContactFormViewModel(profile.MailtoURL, opts),
		Year:                  strconv.Itoa(ov.GeneratedAt.Year()),
	}

	for _, e := range ov.Experiences {
		page.Experiences = append(page.Experiences, toExperienceViewModel(e))
	}
	for _, c := range ov.SkillCategories {
		page.SkillCategories = append(page.SkillCategories, vm.SkillCategoryViewModel{
			Title:  c.Title,
			Icon:   c.Icon,
			Skills: nonNil(c.Skills),
		})
	}

	return page
}

func toProfileViewModel(p model.Profile) vm.ProfileViewModel {
	links := make([]vm.LinkViewModel, 0, len(p.Links))
	for _, l := range p.Links {
		links = append(links, vm.LinkViewModel{Label: l.Label, URL: l.URL, Icon: l.Icon})
	}

	mailto := ""
	if p.Email != "" {
		mailto = "mailto:" + p.Email
	}

	return vm.ProfileViewModel{
		Name:      p.Name,
		Initials:  p.Initials,
		Headline:  p.Headline,
		Tagline:   p.Tagline,
		Location:  p.Location,
		Email:     p.Email,
		MailtoURL: mailto,
		Links:     links,
	}
}

func toExperienceViewModel(e model.Experience) vm.ExperienceViewModel {
	responsibilities := make([]string, 0, len(e.Responsibilities))
	for _, r := range e.Responsibilities {
		responsibilities = append(responsibilities, RenderInlineMarkdown(r))
	}

	return vm.ExperienceViewModel{
		Title:            e.Title,
		Company:          e.Company,
		Location:         e.Location,
		Duration:         e.Duration,
		DescriptionHTML:  RenderMarkdown(e.Description),
		Responsibilities: responsibilities,
		CoreTechnologies: nonNil(e.CoreTechnologies),
	}
}

// toStatCardViewModels builds the stat cards in display order. Stream URLs
// are only set when the page is served live.
func toStatCardViewModels(s application.CertificationStats, live bool) []vm.StatCardViewModel {
	values := map[string]int{
		application.StatTotal:  s.Total,
		application.StatIssuer: s.IssuerMatched,
		application.StatYears:  s.YearsActive,
		application.StatLevel:  s.NameMatched,
	}

	cards := make([]vm.StatCardViewModel, 0, len(application.StatKeys))
	for _, key := range application.StatKeys {
		text := statCardCopy[key]
		card := vm.StatCardViewModel{
			Key:         key,
			Title:       text.title,
			Value:       strconv.Itoa(values[key]),
			Suffix:      text.suffix,
			Description: text.description,
		}
		if live {
			card.StreamURL = "/app/stats/" + key + "/stream"
		}
		cards = append(cards, card)
	}
	return cards
}

// toAchievementViewModel spells the earned month out ("February 2026") when
// it parses, and shows the raw text otherwise.
func toAchievementViewModel(a *model.Achievement) *vm.AchievementViewModel {
	if a == nil {
		return nil
	}

	earned := a.Earned
	if my, err := model.ParseMonthYear(a.Earned); err == nil {
		earned = my.Long()
	}

	return &vm.AchievementViewModel{
		Name:   a.Name,
		Issuer: a.Issuer,
		Earned: earned,
	}
}

func toCertificationViewModels(certs []model.Certification, status string) []vm.CertificationViewModel {
	label := "Active"
	if status == "expired" {
		label = "Expired"
	}

	out := make([]vm.CertificationViewModel, 0, len(certs))
	for _, c := range certs {
		expires := c.Expires
		if !c.HasExpiry() {
			expires = "Never"
		}
		out = append(out, vm.CertificationViewModel{
			Name:         c.Name,
			Issuer:       c.Issuer,
			Issued:       c.Issued,
			Expires:      expires,
			CredentialID: c.CredentialID,
			Skills:       nonNil(c.Skills),
			Logo:         c.Logo,
			Status:       status,
			StatusLabel:  label,
		})
	}
	return out
}

func newContactFormViewModel(mailto string, opts pageOptions) vm.ContactFormViewModel {
	form := vm.ContactFormViewModel{
		MailtoURL: mailto,
		Errors:    map[string]string{},
	}
	if opts.live {
		form.Action = "/contact"
		form.CSRFToken = opts.csrfToken
	}
	return form
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
