package web_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/portfolio/internal/adapter/driving/web"
	"github.com/ericfisherdev/portfolio/internal/application"
	"github.com/ericfisherdev/portfolio/internal/domain/model"
	"github.com/ericfisherdev/portfolio/internal/metrics"
)

var fixedNow = time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

// mockDelivery records submissions and returns a canned result.
type mockDelivery struct {
	calls []model.ContactForm
	err   error
}

func (m *mockDelivery) Submit(_ context.Context, form model.ContactForm) (model.ContactReceipt, error) {
	m.calls = append(m.calls, form)
	if m.err != nil {
		return model.ContactReceipt{}, m.err
	}
	return model.ContactReceipt{ID: "receipt-123", AcceptedAt: fixedNow}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testPortfolio() *model.Portfolio {
	return &model.Portfolio{
		Profile: model.Profile{
			Name:     "Ada Example",
			Initials: "AE",
			Headline: "Cloud Engineer",
			Location: "Global",
			Email:    "ada@example.com",
			Links: []model.SocialLink{
				{Label: "GitHub", URL: "https://github.com/example", Icon: "github"},
			},
		},
		Experiences: []model.Experience{{
			Title:            "Cloud Engineer",
			Company:          "Example Corp",
			Duration:         "2024 - Present",
			Description:      "Lead cloud initiatives.",
			Responsibilities: []string{"**Cost Optimization:** cut spend by 25%"},
			CoreTechnologies: []string{"Terraform"},
		}},
		Certifications: []model.Certification{
			{Name: "Azure Solutions Architect Expert", Issuer: "Microsoft", Issued: "Feb 2023", Expires: "Feb 2026", CredentialID: "CCCV86"},
			{Name: "Azure Fundamentals", Issuer: "Microsoft", Issued: "Aug 2022"},
			{Name: "Terraform Associate", Issuer: "HashiCorp", Issued: "Oct 2022", Expires: "Jan 2024"},
		},
		SkillCategories: []model.SkillCategory{
			{Title: "Cloud Platforms", Icon: "cloud", Skills: []string{"Azure", "AWS"}},
		},
		Highlights: model.Highlights{
			FeaturedBadges: []string{"Terraform Associate"},
			Latest:         &model.Achievement{Name: "Copilot Fundamentals", Issuer: "Microsoft Certified", Earned: "Feb 2026"},
		},
	}
}

type testEnv struct {
	handler  http.Handler
	delivery *mockDelivery
	metrics  *metrics.Metrics
	svc      *application.PortfolioService
	counter  application.Counter
}

func setup(t *testing.T) *testEnv {
	t.Helper()

	logger := discardLogger()
	delivery := &mockDelivery{}
	m := metrics.New()
	svc := application.NewPortfolioService(
		testPortfolio(),
		application.DefaultStatsConfig(10),
		func() time.Time { return fixedNow },
		logger,
	)
	counter := application.Counter{Duration: 30 * time.Millisecond, FPS: 100}

	h := web.NewHandler(svc, application.NewContactService(delivery, logger), counter, m, false, logger)
	mux := http.NewServeMux()
	web.RegisterRoutes(mux, h)

	return &testEnv{handler: mux, delivery: delivery, metrics: m, svc: svc, counter: counter}
}

func postContact(t *testing.T, env *testEnv, fields url.Values, cookie string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(fields.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "csrf_token", Value: cookie})
	}

	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	return rec
}

func TestPortfolioPage(t *testing.T) {
	env := setup(t)

	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<!doctype html>"))
	assert.Contains(t, body, "<title>Ada Example | Cloud Engineer</title>")
	assert.Contains(t, body, "<strong>Cost Optimization:</strong> cut spend by 25%")
	assert.Contains(t, body, `data-stream="/app/stats/total/stream"`)
	assert.Contains(t, body, `data-target="3"`)
	assert.Contains(t, body, "Earned February 2026")
	assert.Contains(t, body, `action="/contact"`)
}

func TestPortfolioPage_SplitsActiveAndExpired(t *testing.T) {
	env := setup(t)

	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	body := rec.Body.String()

	activeAt := strings.Index(body, "Active <span")
	expiredAt := strings.Index(body, "Expired <span")
	require.Positive(t, activeAt)
	require.Greater(t, expiredAt, activeAt)

	assert.Greater(t, strings.Index(body[expiredAt:], "Terraform Associate</h4>"), 0)
	assert.Less(t, strings.Index(body[:expiredAt], "Terraform Associate</h4>"), 0)
	assert.Contains(t, body[activeAt:expiredAt], "Azure Fundamentals</h4>")
	assert.Contains(t, body, "<dd>Never</dd>")
}

func TestPortfolioPage_IssuesCSRFCookie(t *testing.T) {
	env := setup(t)

	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	var token string
	for _, c := range rec.Result().Cookies() {
		if c.Name == "csrf_token" {
			token = c.Value
		}
	}
	require.NotEmpty(t, token)
	assert.Contains(t, rec.Body.String(), `name="csrf_token" value="`+token+`"`)
}

func TestSubmitContact_MissingCSRF(t *testing.T) {
	env := setup(t)

	rec := postContact(t, env, url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "message": {"Hi"}}, "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, env.delivery.calls)
	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeRejected)))
}

func TestSubmitContact_MismatchedCSRF(t *testing.T) {
	env := setup(t)

	rec := postContact(t, env, url.Values{
		"csrf_token": {"other"},
		"name":       {"Ada"},
		"email":      {"ada@example.com"},
		"message":    {"Hi"},
	}, "tok")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, env.delivery.calls)
}

func TestSubmitContact_Success(t *testing.T) {
	env := setup(t)

	rec := postContact(t, env, url.Values{
		"csrf_token": {"tok"},
		"name":       {"  Ada  "},
		"email":      {"ada@example.com"},
		"message":    {"Let's talk about Azure."},
	}, "tok")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Message sent")
	assert.Contains(t, body, "Thanks, Ada.")
	assert.Contains(t, body, "receipt-123")

	require.Len(t, env.delivery.calls, 1)
	assert.Equal(t, "Ada", env.delivery.calls[0].Name)
	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeAccepted)))
}

func TestSubmitContact_ValidationErrors(t *testing.T) {
	env := setup(t)

	rec := postContact(t, env, url.Values{
		"csrf_token": {"tok"},
		"name":       {""},
		"email":      {"not-an-email"},
		"message":    {"Keep this text"},
	}, "tok")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Name is required")
	assert.Contains(t, body, "Email address is not valid")
	assert.Contains(t, body, `value="not-an-email"`)
	assert.Contains(t, body, ">Keep this text</textarea>")
	assert.Empty(t, env.delivery.calls)
	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeInvalid)))
}

func TestSubmitContact_DeliveryFailureKeepsInput(t *testing.T) {
	env := setup(t)
	env.delivery.err = errors.New("smtp unavailable")

	rec := postContact(t, env, url.Values{
		"csrf_token": {"tok"},
		"name":       {"Ada"},
		"email":      {"ada@example.com"},
		"message":    {"Hello <b>there</b>"},
	}, "tok")

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Please try again.")
	assert.Contains(t, body, ">Retry</button>")
	assert.Contains(t, body, "Hello &lt;b&gt;there&lt;/b&gt;</textarea>")
	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeFailed)))
}

func TestSubmitContact_PermanentDeliveryFailure(t *testing.T) {
	env := setup(t)
	env.delivery.err = &model.DeliveryError{Err: errors.New("rejected"), Retryable: false}

	rec := postContact(t, env, url.Values{
		"csrf_token": {"tok"},
		"name":       {"Ada"},
		"email":      {"ada@example.com"},
		"message":    {"Hello"},
	}, "tok")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Your message could not be sent.")
	assert.Contains(t, rec.Body.String(), ">Send Message</button>")
}

func TestStatStream(t *testing.T) {
	env := setup(t)

	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/app/stats/total/stream", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	var want strings.Builder
	for _, v := range application.CounterFrames(3, env.counter.Duration, env.counter.FPS) {
		want.WriteString("data: " + strconv.Itoa(v) + "\n\n")
	}
	want.WriteString("event: done\ndata: 3\n\n")

	assert.Equal(t, want.String(), rec.Body.String())
	assert.Equal(t, 0.0, testutil.ToFloat64(env.metrics.CounterStreams))
}

func TestStatStream_UnknownKey(t *testing.T) {
	env := setup(t)

	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/app/stats/bogus/stream", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStatStream_ClientDisconnect(t *testing.T) {
	env := setup(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/app/stats/years/stream", nil).WithContext(ctx)

	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	assert.NotContains(t, rec.Body.String(), "event: done")
	assert.Equal(t, 0.0, testutil.ToFloat64(env.metrics.CounterStreams))
}

func TestStaticAssets(t *testing.T) {
	env := setup(t)

	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/app.js", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "EventSource")
}

func TestExport(t *testing.T) {
	env := setup(t)
	dir := filepath.Join(t.TempDir(), "site")

	require.NoError(t, web.Export(context.Background(), env.svc, dir, discardLogger()))

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	page := string(index)
	assert.Contains(t, page, "Ada Example")
	assert.Contains(t, page, `data-stream=""`)
	assert.NotContains(t, page, `action="/contact"`)
	assert.Contains(t, page, `href="mailto:ada@example.com"`)

	for _, asset := range []string{"app.css", "app.js"} {
		_, err := os.Stat(filepath.Join(dir, "static", asset))
		assert.NoError(t, err, asset)
	}
}
