package httphandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ericfisherdev/portfolio/internal/application"
	"github.com/ericfisherdev/portfolio/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// CertificationResponse is the JSON representation of a certification.
type CertificationResponse struct {
	Name         string   `json:"name"`
	Issuer       string   `json:"issuer"`
	Issued       string   `json:"issued"`
	Expires      *string  `json:"expires"`
	CredentialID string   `json:"credential_id,omitempty"`
	Skills       []string `json:"skills"`
	Status       string   `json:"status"`
}

// CertificationListResponse groups certifications by lifecycle status.
type CertificationListResponse struct {
	AsOf     string                  `json:"as_of"`
	Active   []CertificationResponse `json:"active"`
	Expired  []CertificationResponse `json:"expired"`
	Excluded []string                `json:"excluded"`
}

// StatsResponse is the JSON representation of the certification stat cards.
type StatsResponse struct {
	Total         int `json:"total"`
	IssuerMatched int `json:"issuer_matched"`
	NameMatched   int `json:"name_matched"`
	YearsActive   int `json:"years_active"`
}

// HealthResponse is the JSON body of the health endpoint.
type HealthResponse struct {
	Status         string `json:"status"`
	Time           string `json:"time"`
	Certifications int    `json:"certifications"`
}

func toCertificationResponse(c model.Certification, status string) CertificationResponse {
	var expires *string
	if c.HasExpiry() {
		e := c.Expires
		expires = &e
	}

	skills := c.Skills
	if skills == nil {
		skills = []string{}
	}

	return CertificationResponse{
		Name:         c.Name,
		Issuer:       c.Issuer,
		Issued:       c.Issued,
		Expires:      expires,
		CredentialID: c.CredentialID,
		Skills:       skills,
		Status:       status,
	}
}

func toCertificationListResponse(ov application.PortfolioOverview) CertificationListResponse {
	resp := CertificationListResponse{
		AsOf:     ov.GeneratedAt.UTC().Format(time.RFC3339),
		Active:   make([]CertificationResponse, 0, len(ov.Certifications.Active)),
		Expired:  make([]CertificationResponse, 0, len(ov.Certifications.Expired)),
		Excluded: make([]string, 0, len(ov.Rejected)),
	}

	for _, c := range ov.Certifications.Active {
		resp.Active = append(resp.Active, toCertificationResponse(c, "active"))
	}
	for _, c := range ov.Certifications.Expired {
		resp.Expired = append(resp.Expired, toCertificationResponse(c, "expired"))
	}
	for _, err := range ov.Rejected {
		resp.Excluded = append(resp.Excluded, err.Error())
	}

	return resp
}

func toStatsResponse(s application.CertificationStats) StatsResponse {
	return StatsResponse{
		Total:         s.Total,
		IssuerMatched: s.IssuerMatched,
		NameMatched:   s.NameMatched,
		YearsActive:   s.YearsActive,
	}
}
