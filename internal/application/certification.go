package application

import (
	"errors"
	"time"

	"github.com/ericfisherdev/portfolio/internal/domain/model"
)

// CertificationPartition splits a certification list into active and expired
// subsequences. Both keep the relative order of the input.
type CertificationPartition struct {
	Active  []model.Certification
	Expired []model.Certification
}

// Len returns the number of partitioned records.
func (p CertificationPartition) Len() int {
	return len(p.Active) + len(p.Expired)
}

// isExpired classifies a single certification against now. A certification
// whose expiry instant equals now is expired.
func isExpired(cert model.Certification, now time.Time) (bool, error) {
	expires, ok, err := cert.ExpiresMonth()
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	return !expires.Start().After(now), nil
}

// PartitionCertifications classifies every certification as active or expired
// relative to now. It fails with *model.MalformedDateError on the first record
// whose expiry date cannot be parsed.
func PartitionCertifications(certs []model.Certification, now time.Time) (CertificationPartition, error) {
	p := CertificationPartition{
		Active:  []model.Certification{},
		Expired: []model.Certification{},
	}

	for _, cert := range certs {
		expired, err := isExpired(cert, now)
		if err != nil {
			return CertificationPartition{}, err
		}
		if expired {
			p.Expired = append(p.Expired, cert)
		} else {
			p.Active = append(p.Active, cert)
		}
	}

	return p, nil
}

// PartitionCertificationsLenient applies the same rules as
// PartitionCertifications but excludes records with a malformed expiry date
// instead of failing. Each excluded record is reported in the returned slice.
func PartitionCertificationsLenient(certs []model.Certification, now time.Time) (CertificationPartition, []error) {
	p := CertificationPartition{
		Active:  []model.Certification{},
		Expired: []model.Certification{},
	}

	var rejected []error
	for _, cert := range certs {
		expired, err := isExpired(cert, now)
		if err != nil {
			rejected = append(rejected, err)
			continue
		}
		if expired {
			p.Expired = append(p.Expired, cert)
		} else {
			p.Active = append(p.Active, cert)
		}
	}

	return p, rejected
}

// CheckCertifications reports data-quality problems in a certification list:
// missing name or issuer, unparseable dates, and expiry before issue. An empty
// result means the list is well-formed.
func CheckCertifications(certs []model.Certification) []error {
	var problems []error

	for _, cert := range certs {
		if cert.Name == "" {
			problems = append(problems, &model.MissingFieldError{Field: "name"})
		}
		if cert.Issuer == "" {
			problems = append(problems, &model.MissingFieldError{Record: cert.Name, Field: "issuer"})
		}

		issued, issuedErr := cert.IssuedMonth()
		if issuedErr != nil {
			problems = append(problems, issuedErr)
		}

		expires, hasExpiry, expiresErr := cert.ExpiresMonth()
		if expiresErr != nil {
			problems = append(problems, expiresErr)
		}

		if issuedErr == nil && expiresErr == nil && hasExpiry && expires.Before(issued) {
			problems = append(problems, &model.ChronologyError{
				Record:  cert.Name,
				Issued:  cert.Issued,
				Expires: cert.Expires,
			})
		}
	}

	return problems
}

// CheckCertificationsErr is CheckCertifications joined into a single error,
// or nil when there are no problems.
func CheckCertificationsErr(certs []model.Certification) error {
	return errors.Join(CheckCertifications(certs)...)
}
