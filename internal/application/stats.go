package application

import (
	"strings"

	"github.com/ericfisherdev/portfolio/internal/domain/model"
)

// IssuerPredicate decides whether an issuer counts toward an issuer-matched total.
type IssuerPredicate func(issuer string) bool

// IssuerIn returns a predicate that matches any of the given issuers exactly.
func IssuerIn(issuers ...string) IssuerPredicate {
	set := make(map[string]struct{}, len(issuers))
	for _, issuer := range issuers {
		set[issuer] = struct{}{}
	}
	return func(issuer string) bool {
		_, ok := set[issuer]
		return ok
	}
}

// TotalCount returns the number of certifications.
func TotalCount(certs []model.Certification) int {
	return len(certs)
}

// IssuerMatchCount counts certifications whose issuer satisfies match.
// A nil predicate matches nothing.
func IssuerMatchCount(certs []model.Certification, match IssuerPredicate) int {
	if match == nil {
		return 0
	}

	n := 0
	for _, cert := range certs {
		if match(cert.Issuer) {
			n++
		}
	}
	return n
}

// NameContainsCount counts certifications whose name contains substr,
// ignoring case. An empty substr matches every certification.
func NameContainsCount(certs []model.Certification, substr string) int {
	needle := strings.ToLower(substr)

	n := 0
	for _, cert := range certs {
		if strings.Contains(strings.ToLower(cert.Name), needle) {
			n++
		}
	}
	return n
}

// StatsConfig parameterizes the certification stat cards.
type StatsConfig struct {
	// Issuers counted by the issuer card.
	Issuers []string
	// NameSubstring counted by the level card, case-insensitive.
	NameSubstring string
	// YearsActive is a manually maintained figure. It is configuration, not
	// something derived from certification dates.
	YearsActive int
}

// DefaultStatsConfig matches the cards shown on the portfolio page.
func DefaultStatsConfig(yearsActive int) StatsConfig {
	return StatsConfig{
		Issuers:       []string{"Microsoft", "Microsoft Applied Skills"},
		NameSubstring: "expert",
		YearsActive:   yearsActive,
	}
}

// CertificationStats holds the aggregate counters displayed as stat cards.
type CertificationStats struct {
	Total         int
	IssuerMatched int
	NameMatched   int
	YearsActive   int
}

// ComputeStats reduces the full certification list into stat counters.
// It never fails and keeps no state between calls.
func ComputeStats(certs []model.Certification, cfg StatsConfig) CertificationStats {
	return CertificationStats{
		Total:         TotalCount(certs),
		IssuerMatched: IssuerMatchCount(certs, IssuerIn(cfg.Issuers...)),
		NameMatched:   NameContainsCount(certs, cfg.NameSubstring),
		YearsActive:   cfg.YearsActive,
	}
}
