package application

import (
	"log/slog"
	"time"

	"github.com/ericfisherdev/portfolio/internal/domain/model"
)

// Clock returns the reference instant used to classify certifications.
type Clock func() time.Time

// Stat card keys, used in stream URLs and the JSON API.
const (
	StatTotal  = "total"
	StatIssuer = "issuer"
	StatLevel  = "level"
	StatYears  = "years"
)

// StatKeys lists the stat cards in display order.
var StatKeys = []string{StatTotal, StatIssuer, StatYears, StatLevel}

// PortfolioOverview is a display-ready snapshot of the portfolio computed
// for a single render.
type PortfolioOverview struct {
	Profile         model.Profile
	Experiences     []model.Experience
	Skills          []string
	SkillCategories []model.SkillCategory
	Highlights      model.Highlights
	Certifications  CertificationPartition
	// Rejected holds one error per certification excluded from the
	// partition because of a malformed date.
	Rejected    []error
	Stats       CertificationStats
	GeneratedAt time.Time
}

// PortfolioService derives display views from the static dataset. The
// dataset is never mutated, so the service is safe for concurrent use.
type PortfolioService struct {
	portfolio *model.Portfolio
	statsCfg  StatsConfig
	now       Clock
	logger    *slog.Logger
}

// NewPortfolioService creates a PortfolioService over an already loaded dataset.
func NewPortfolioService(portfolio *model.Portfolio, statsCfg StatsConfig, now Clock, logger *slog.Logger) *PortfolioService {
	return &PortfolioService{
		portfolio: portfolio,
		statsCfg:  statsCfg,
		now:       now,
		logger:    logger,
	}
}

// Overview computes a fresh snapshot at the current clock reading.
func (s *PortfolioService) Overview() PortfolioOverview {
	return s.OverviewAt(s.now())
}

// OverviewAt computes a snapshot relative to the given reference instant.
// Certifications with a malformed expiry date are left out of both lists
// and logged; the rest of the page still renders.
func (s *PortfolioService) OverviewAt(now time.Time) PortfolioOverview {
	certs := s.portfolio.Certifications

	partition, rejected := PartitionCertificationsLenient(certs, now)
	for _, err := range rejected {
		s.logger.Warn("certification excluded from display", "error", err)
	}

	return PortfolioOverview{
		Profile:         s.portfolio.Profile,
		Experiences:     s.portfolio.Experiences,
		Skills:          s.portfolio.Skills,
		SkillCategories: s.portfolio.SkillCategories,
		Highlights:      s.portfolio.Highlights,
		Certifications:  partition,
		Rejected:        rejected,
		Stats:           ComputeStats(certs, s.statsCfg),
		GeneratedAt:     now,
	}
}

// Certifications returns the full certification list in dataset order.
func (s *PortfolioService) Certifications() []model.Certification {
	return s.portfolio.Certifications
}

// Stats computes the stat counters over the full certification list.
func (s *PortfolioService) Stats() CertificationStats {
	return ComputeStats(s.portfolio.Certifications, s.statsCfg)
}

// Stat returns the value of a single stat card by key.
func (s *PortfolioService) Stat(key string) (int, bool) {
	stats := s.Stats()
	switch key {
	case StatTotal:
		return stats.Total, true
	case StatIssuer:
		return stats.IssuerMatched, true
	case StatLevel:
		return stats.NameMatched, true
	case StatYears:
		return stats.YearsActive, true
	default:
		return 0, false
	}
}

// Problems runs the data-quality check over the dataset.
func (s *PortfolioService) Problems() []error {
	return CheckCertifications(s.portfolio.Certifications)
}
