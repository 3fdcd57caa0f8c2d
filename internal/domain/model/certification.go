package model

// Certification is a single earned credential as listed in the portfolio dataset.
// Dates are kept as month-year text (see MonthYearLayout) and parsed by the
// derivation logic, so a malformed value is reported against the record name.
type Certification struct {
	Name         string
	Issuer       string
	Issued       string   // Month-year the credential was earned, e.g. "Dec 2024".
	Expires      string   // Empty when the credential never expires.
	CredentialID string   // Optional.
	Skills       []string // Display order only.
	Logo         string   // Issuer logo key, e.g. "microsoft".
}

// HasExpiry reports whether the certification carries an expiration date.
func (c Certification) HasExpiry() bool {
	return c.Expires != ""
}

// IssuedMonth parses the Issued field.
func (c Certification) IssuedMonth() (MonthYear, error) {
	m, err := ParseMonthYear(c.Issued)
	if err != nil {
		return MonthYear{}, &MalformedDateError{Record: c.Name, Field: "issued", Value: c.Issued, Err: err}
	}
	return m, nil
}

// ExpiresMonth parses the Expires field. The boolean is false when the
// certification never expires.
func (c Certification) ExpiresMonth() (MonthYear, bool, error) {
	if !c.HasExpiry() {
		return MonthYear{}, false, nil
	}
	m, err := ParseMonthYear(c.Expires)
	if err != nil {
		return MonthYear{}, false, &MalformedDateError{Record: c.Name, Field: "expires", Value: c.Expires, Err: err}
	}
	return m, true, nil
}
