package application

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/portfolio/internal/domain/model"
)

func monthStart(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

func TestPartitionCertifications_Scenario(t *testing.T) {
	certs := []model.Certification{
		{Name: "Architect", Issuer: "Microsoft", Issued: "Jan 2023", Expires: "Feb 2026"},
		{Name: "Fundamentals", Issuer: "Microsoft", Issued: "Jan 2020"},
		{Name: "Terraform", Issuer: "HashiCorp", Issued: "Jan 2022", Expires: "Jan 2024"},
	}

	p, err := PartitionCertifications(certs, monthStart(2025, time.March))
	require.NoError(t, err)

	assert.Equal(t, []model.Certification{certs[0], certs[1]}, p.Active)
	assert.Equal(t, []model.Certification{certs[2]}, p.Expired)
}

func TestPartitionCertifications_Empty(t *testing.T) {
	p, err := PartitionCertifications(nil, time.Now())
	require.NoError(t, err)

	assert.NotNil(t, p.Active)
	assert.NotNil(t, p.Expired)
	assert.Equal(t, 0, p.Len())
}

func TestPartitionCertifications_NoExpiryAlwaysActive(t *testing.T) {
	cert := model.Certification{Name: "Linux Essentials", Issuer: "LPI", Issued: "Sep 2023"}

	for _, now := range []time.Time{
		monthStart(1970, time.January),
		monthStart(2025, time.March),
		monthStart(2999, time.December),
	} {
		p, err := PartitionCertifications([]model.Certification{cert}, now)
		require.NoError(t, err)
		assert.Len(t, p.Active, 1, now.String())
		assert.Empty(t, p.Expired, now.String())
	}
}

func TestPartitionCertifications_ExpiryBoundary(t *testing.T) {
	cert := model.Certification{Name: "KCNA", Issuer: "The Linux Foundation", Issued: "Oct 2024", Expires: "Oct 2026"}
	expiry := monthStart(2026, time.October)

	tests := []struct {
		name        string
		now         time.Time
		wantExpired bool
	}{
		{name: "one nanosecond before expiry", now: expiry.Add(-time.Nanosecond), wantExpired: false},
		{name: "exactly at expiry", now: expiry, wantExpired: true},
		{name: "after expiry", now: expiry.Add(time.Hour), wantExpired: true},
		{name: "same instant in another zone", now: expiry.In(time.FixedZone("EST", -5*3600)), wantExpired: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := PartitionCertifications([]model.Certification{cert}, tt.now)
			require.NoError(t, err)
			if tt.wantExpired {
				assert.Len(t, p.Expired, 1)
				assert.Empty(t, p.Active)
			} else {
				assert.Len(t, p.Active, 1)
				assert.Empty(t, p.Expired)
			}
		})
	}
}

func TestPartitionCertifications_IsPartition(t *testing.T) {
	certs := []model.Certification{
		{Name: "a", Issuer: "x", Issued: "Jan 2020", Expires: "Jan 2021"},
		{Name: "b", Issuer: "x", Issued: "Jan 2020"},
		{Name: "c", Issuer: "x", Issued: "Jan 2020", Expires: "Jan 2030"},
		{Name: "d", Issuer: "x", Issued: "Jan 2020", Expires: "Mar 2025"},
		{Name: "e", Issuer: "x", Issued: "Jan 2020", Expires: "Apr 2025"},
		{Name: "f", Issuer: "x", Issued: "Jan 2020"},
	}
	now := monthStart(2025, time.March)

	p, err := PartitionCertifications(certs, now)
	require.NoError(t, err)
	require.Equal(t, len(certs), p.Len())

	// Merge back by original index: every record appears exactly once and in order.
	index := make(map[string]int, len(certs))
	for i, c := range certs {
		index[c.Name] = i
	}
	seen := make([]bool, len(certs))
	for _, group := range [][]model.Certification{p.Active, p.Expired} {
		last := -1
		for _, c := range group {
			i := index[c.Name]
			assert.Greater(t, i, last, "relative order preserved")
			last = i
			assert.False(t, seen[i], "record %q appears twice", c.Name)
			seen[i] = true
		}
	}
	for i, ok := range seen {
		assert.True(t, ok, "record %q missing", certs[i].Name)
	}

	assert.Equal(t, []string{"b", "c", "e", "f"}, names(p.Active))
	assert.Equal(t, []string{"a", "d"}, names(p.Expired))
}

func TestPartitionCertifications_Idempotent(t *testing.T) {
	certs := []model.Certification{
		{Name: "a", Issuer: "x", Issued: "Jan 2020", Expires: "Jan 2021"},
		{Name: "b", Issuer: "x", Issued: "Jan 2020"},
	}
	now := monthStart(2025, time.March)

	first, err := PartitionCertifications(certs, now)
	require.NoError(t, err)
	second, err := PartitionCertifications(certs, now)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPartitionCertifications_MalformedExpiry(t *testing.T) {
	certs := []model.Certification{
		{Name: "good", Issuer: "x", Issued: "Jan 2020"},
		{Name: "bad", Issuer: "x", Issued: "Jan 2020", Expires: "2026-02-01"},
	}

	_, err := PartitionCertifications(certs, time.Now())
	require.Error(t, err)

	var mde *model.MalformedDateError
	require.True(t, errors.As(err, &mde))
	assert.Equal(t, "bad", mde.Record)
	assert.Equal(t, "expires", mde.Field)
	assert.Equal(t, "2026-02-01", mde.Value)
}

func TestPartitionCertificationsLenient_ExcludesMalformed(t *testing.T) {
	certs := []model.Certification{
		{Name: "good", Issuer: "x", Issued: "Jan 2020"},
		{Name: "bad", Issuer: "x", Issued: "Jan 2020", Expires: "someday"},
		{Name: "old", Issuer: "x", Issued: "Jan 2020", Expires: "Jan 2021"},
	}

	p, rejected := PartitionCertificationsLenient(certs, monthStart(2025, time.March))

	assert.Equal(t, []string{"good"}, names(p.Active))
	assert.Equal(t, []string{"old"}, names(p.Expired))
	require.Len(t, rejected, 1)

	var mde *model.MalformedDateError
	require.True(t, errors.As(rejected[0], &mde))
	assert.Equal(t, "bad", mde.Record)
}

func TestCheckCertifications(t *testing.T) {
	tests := []struct {
		name    string
		cert    model.Certification
		wantErr any
	}{
		{
			name:    "expires before issued",
			cert:    model.Certification{Name: "n", Issuer: "i", Issued: "Jan 2024", Expires: "Dec 2023"},
			wantErr: &model.ChronologyError{},
		},
		{
			name:    "malformed issued",
			cert:    model.Certification{Name: "n", Issuer: "i", Issued: "January"},
			wantErr: &model.MalformedDateError{},
		},
		{
			name:    "missing issuer",
			cert:    model.Certification{Name: "n", Issued: "Jan 2024"},
			wantErr: &model.MissingFieldError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := CheckCertifications([]model.Certification{tt.cert})
			require.Len(t, problems, 1)
			assert.IsType(t, tt.wantErr, problems[0])
		})
	}
}

func TestCheckCertifications_SameMonthIsValid(t *testing.T) {
	certs := []model.Certification{
		{Name: "n", Issuer: "i", Issued: "Jan 2024", Expires: "Jan 2024"},
		{Name: "m", Issuer: "i", Issued: "Jan 2024"},
	}
	assert.Empty(t, CheckCertifications(certs))
	assert.NoError(t, CheckCertificationsErr(certs))
}

func names(certs []model.Certification) []string {
	out := make([]string, 0, len(certs))
	for _, c := range certs {
		out = append(out, c.Name)
	}
	return out
}
