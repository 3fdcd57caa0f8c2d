package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/portfolio/internal/application"
)

func TestEmbeddedSource_LoadsShippedDataset(t *testing.T) {
	p, err := NewEmbeddedSource().Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Skylar Matthews", p.Profile.Name)
	assert.Equal(t, "SM", p.Profile.Initials)
	assert.Len(t, p.Profile.Links, 3)
	require.Len(t, p.Experiences, 1)
	assert.Len(t, p.Experiences[0].Responsibilities, 5)
	assert.Len(t, p.Certifications, 21)
	assert.Len(t, p.Skills, 24)
	assert.Len(t, p.SkillCategories, 6)
	assert.Len(t, p.Highlights.FeaturedBadges, 8)
	require.NotNil(t, p.Highlights.Latest)
	assert.Equal(t, "Feb 2026", p.Highlights.Latest.Earned)

	first := p.Certifications[0]
	assert.Equal(t, "Migrate SQL Server workloads to Azure SQL Database", first.Name)
	assert.Equal(t, "A1641D392DABFD7", first.CredentialID)
	assert.Empty(t, first.Expires)
	assert.NotNil(t, first.Skills)
}

// The shipped dataset must be free of data-quality problems, including
// certifications that expire before they were issued.
func TestEmbeddedSource_ShippedDatasetIsWellFormed(t *testing.T) {
	p, err := NewEmbeddedSource().Load(context.Background())
	require.NoError(t, err)

	for _, problem := range application.CheckCertifications(p.Certifications) {
		t.Errorf("dataset problem: %v", problem)
	}
}

func TestParse_RejectsMissingRequiredField(t *testing.T) {
	doc := []byte(`
profile:
  name: A
  initials: A
  headline: Engineer
  email: a@example.com
experiences: []
certifications:
  - name: Cert
    issued: Jan 2024
skills: []
`)

	_, err := Parse(doc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSchema))
	assert.Contains(t, err.Error(), "issuer")
}

func TestParse_RejectsMalformedMonthYear(t *testing.T) {
	doc := []byte(`
profile:
  name: A
  initials: A
  headline: Engineer
  email: a@example.com
experiences: []
certifications:
  - name: Cert
    issuer: Someone
    issued: 2024-01
skills: []
`)

	_, err := Parse(doc)
	require.ErrorIs(t, err, ErrSchema)
}

func TestParse_RejectsUnknownField(t *testing.T) {
	doc := []byte(`
profile:
  name: A
  initials: A
  headline: Engineer
  email: a@example.com
experiences: []
certifications: []
skills: []
projects: []
`)

	_, err := Parse(doc)
	require.ErrorIs(t, err, ErrSchema)
}

func TestParse_RejectsEmptyDocument(t *testing.T) {
	_, err := Parse([]byte(""))
	require.ErrorIs(t, err, ErrSchema)
}

func TestParse_MinimalDocument(t *testing.T) {
	doc := []byte(`
profile:
  name: A
  initials: A
  headline: Engineer
  email: a@example.com
experiences: []
certifications:
  - name: Cert
    issuer: Someone
    issued: Jan 2024
    expires: Jan 2027
skills: [Go]
`)

	p, err := Parse(doc)
	require.NoError(t, err)
	require.Len(t, p.Certifications, 1)
	assert.Equal(t, "Jan 2027", p.Certifications[0].Expires)
	assert.Nil(t, p.Highlights.Latest)
	assert.NotNil(t, p.Highlights.FeaturedBadges)
	assert.Equal(t, []string{"Go"}, p.Skills)
}

func TestFileSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, embeddedPortfolio, 0o600))

	src := NewFileSource(path)
	assert.Equal(t, path, src.Origin())

	p, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, p.Certifications, 21)
}

func TestFileSource_MissingFile(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "nope.yaml")).Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSource_LoadCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewEmbeddedSource().Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
