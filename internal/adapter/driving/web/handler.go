// Package web implements the HTML driving adapter using templ components.
package web

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/ericfisherdev/portfolio/internal/adapter/driving/web/templates"
	"github.com/ericfisherdev/portfolio/internal/adapter/driving/web/templates/components"
	"github.com/ericfisherdev/portfolio/internal/adapter/driving/web/templates/pages"
	vm "github.com/ericfisherdev/portfolio/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/portfolio/internal/application"
	"github.com/ericfisherdev/portfolio/internal/domain/model"
	"github.com/ericfisherdev/portfolio/internal/metrics"
)

// Handler is the web driving adapter that serves HTML via templ components.
type Handler struct {
	portfolioSvc  *application.PortfolioService
	contactSvc    *application.ContactService
	counter       application.Counter
	metrics       *metrics.Metrics
	secureCookies bool
	logger        *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(
	portfolioSvc *application.PortfolioService,
	contactSvc *application.ContactService,
	counter application.Counter,
	m *metrics.Metrics,
	secureCookies bool,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		portfolioSvc:  portfolioSvc,
		contactSvc:    contactSvc,
		counter:       counter,
		metrics:       m,
		secureCookies: secureCookies,
		logger:        logger,
	}
}

// Portfolio renders the full page with the HTML layout.
func (h *Handler) Portfolio(w http.ResponseWriter, r *http.Request) {
	token := csrfToken(w, r, h.secureCookies)
	page := toPageViewModel(h.portfolioSvc.Overview(), pageOptions{live: true, csrfToken: token})

	h.render(w, r, http.StatusOK, templates.Layout(page.Title, pages.Portfolio(page)))
}

// SubmitContact handles the contact form POST and responds with an HTML
// fragment that replaces the form: a confirmation on success, or the form
// again with the user's input and the errors to fix.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	if !validateCSRF(r) {
		h.metrics.ObserveContact(metrics.OutcomeRejected)
		h.logger.Warn("contact submission rejected", "reason", "csrf token mismatch")
		http.Error(w, "invalid or missing CSRF token", http.StatusForbidden)
		return
	}

	form := model.ContactForm{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Message: r.PostFormValue("message"),
	}

	view := vm.ContactFormViewModel{
		Action:    "/contact",
		CSRFToken: csrfToken(w, r, h.secureCookies),
		Name:      form.Name,
		Email:     form.Email,
		Message:   form.Message,
		Errors:    map[string]string{},
	}

	receipt, err := h.contactSvc.Submit(r.Context(), form)

	var (
		validationErr *model.ValidationError
		deliveryErr   *model.DeliveryError
	)
	switch {
	case err == nil:
		h.metrics.ObserveContact(metrics.OutcomeAccepted)
		h.render(w, r, http.StatusOK, components.ContactSuccess(vm.ContactSuccessViewModel{
			Name:      form.Normalize().Name,
			ReceiptID: receipt.ID,
		}))

	case errors.As(err, &validationErr):
		h.metrics.ObserveContact(metrics.OutcomeInvalid)
		view.Errors = validationErr.Fields
		h.render(w, r, http.StatusUnprocessableEntity, components.ContactForm(view))

	case errors.As(err, &deliveryErr):
		h.metrics.ObserveContact(metrics.OutcomeFailed)
		status := http.StatusBadGateway
		view.GeneralError = "Your message could not be sent."
		if deliveryErr.Retryable {
			status = http.StatusServiceUnavailable
			view.GeneralError = "Your message could not be sent. Please try again."
			view.Retry = true
		}
		h.render(w, r, status, components.ContactForm(view))

	default:
		h.metrics.ObserveContact(metrics.OutcomeFailed)
		h.logger.Error("contact submission failed", "error", err)
		view.GeneralError = "Something went wrong. Please try again."
		view.Retry = true
		h.render(w, r, http.StatusInternalServerError, components.ContactForm(view))
	}
}

// StatStream streams the count-up frames of one stat card as server-sent
// events. A final "done" event carries the target value. The stream stops
// when the client disconnects.
func (h *Handler) StatStream(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	target, ok := h.portfolioSvc.Stat(key)
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	rc := http.NewResponseController(w)

	h.metrics.CounterStreams.Inc()
	defer h.metrics.CounterStreams.Dec()

	err := h.counter.Run(r.Context(), target, func(v int) error {
		if _, err := fmt.Fprintf(w, "data: %d\n\n", v); err != nil {
			return err
		}
		return rc.Flush()
	})

	switch {
	case err == nil:
		if _, err := fmt.Fprintf(w, "event: done\ndata: %d\n\n", target); err == nil {
			_ = rc.Flush()
		}
	case errors.Is(err, context.Canceled):
		h.logger.Debug("stat stream closed by client", "key", key)
	default:
		h.logger.Warn("stat stream aborted", "key", key, "error", err)
	}
}

// render buffers the component so a render failure can still produce a 500
// instead of a truncated page.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		h.logger.Error("failed to render component", "path", r.URL.Path, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
