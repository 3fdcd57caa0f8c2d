package application

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ericfisherdev/portfolio/internal/domain/model"
)

func sampleCerts() []model.Certification {
	return []model.Certification{
		{Name: "Microsoft Certified: Azure Solutions Architect Expert", Issuer: "Microsoft"},
		{Name: "Microsoft Certified: Azure Administrator Associate", Issuer: "Microsoft"},
		{Name: "Migrate SQL Server workloads to Azure SQL Database", Issuer: "Microsoft Applied Skills"},
		{Name: "AWS Certified Cloud Practitioner", Issuer: "Amazon Web Services (AWS)"},
		{Name: "Microsoft 365 Certified: Administrator EXPERT", Issuer: "Microsoft"},
	}
}

func TestTotalCount(t *testing.T) {
	assert.Equal(t, 0, TotalCount(nil))
	assert.Equal(t, 0, TotalCount([]model.Certification{}))
	assert.Equal(t, 5, TotalCount(sampleCerts()))
}

func TestIssuerMatchCount(t *testing.T) {
	certs := sampleCerts()

	tests := []struct {
		name  string
		match IssuerPredicate
		want  int
	}{
		{name: "nothing", match: func(string) bool { return false }, want: 0},
		{name: "everything", match: func(string) bool { return true }, want: TotalCount(certs)},
		{name: "nil predicate", match: nil, want: 0},
		{name: "microsoft or applied skills", match: IssuerIn("Microsoft", "Microsoft Applied Skills"), want: 4},
		{name: "exact match only", match: IssuerIn("microsoft"), want: 0},
		{name: "empty set", match: IssuerIn(), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IssuerMatchCount(certs, tt.match))
		})
	}

	assert.Equal(t, 0, IssuerMatchCount(nil, IssuerIn("Microsoft")))
}

func TestNameContainsCount(t *testing.T) {
	certs := []model.Certification{
		{Name: "Azure Solutions Architect Expert"},
		{Name: "Azure Administrator Associate"},
	}
	assert.Equal(t, 1, NameContainsCount(certs, "expert"))
	assert.Equal(t, 1, NameContainsCount(certs, "EXPERT"))
	assert.Equal(t, 2, NameContainsCount(certs, "azure"))
	assert.Equal(t, 0, NameContainsCount(certs, "kubernetes"))
	assert.Equal(t, 2, NameContainsCount(certs, ""))
	assert.Equal(t, 0, NameContainsCount(nil, "expert"))
}

func TestComputeStats(t *testing.T) {
	stats := ComputeStats(sampleCerts(), DefaultStatsConfig(10))

	assert.Equal(t, CertificationStats{
		Total:         5,
		IssuerMatched: 4,
		NameMatched:   2,
		YearsActive:   10,
	}, stats)
}

func TestComputeStats_YearsActiveIsConfiguration(t *testing.T) {
	assert.Equal(t, 7, ComputeStats(nil, DefaultStatsConfig(7)).YearsActive)
	assert.Equal(t, 7, ComputeStats(sampleCerts(), DefaultStatsConfig(7)).YearsActive)
}
