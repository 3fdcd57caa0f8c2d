package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonthYear(t *testing.T) {
	m, err := ParseMonthYear(" Dec 2024 ")
	require.NoError(t, err)
	assert.Equal(t, MonthYear{Year: 2024, Month: time.December}, m)
	assert.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), m.Start())
	assert.Equal(t, "Dec 2024", m.String())
	assert.Equal(t, "December 2024", m.Long())
}

func TestParseMonthYear_Invalid(t *testing.T) {
	for _, in := range []string{"", "2024-12", "December 2024", "Dec"} {
		_, err := ParseMonthYear(in)
		assert.Error(t, err, in)
	}
}

func TestMonthYear_Before(t *testing.T) {
	jan23 := MonthYear{Year: 2023, Month: time.January}
	dec22 := MonthYear{Year: 2022, Month: time.December}
	feb23 := MonthYear{Year: 2023, Month: time.February}

	assert.True(t, dec22.Before(jan23))
	assert.True(t, jan23.Before(feb23))
	assert.False(t, jan23.Before(jan23))
	assert.False(t, feb23.Before(dec22))
}

func TestCertification_ExpiresMonth(t *testing.T) {
	_, ok, err := Certification{Name: "Fundamentals"}.ExpiresMonth()
	require.NoError(t, err)
	assert.False(t, ok)

	m, ok, err := Certification{Name: "Architect", Expires: "Feb 2026"}.ExpiresMonth()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, time.February, m.Month)

	_, _, err = Certification{Name: "Broken", Expires: "soon"}.ExpiresMonth()
	var mde *MalformedDateError
	require.True(t, errors.As(err, &mde))
	assert.Equal(t, "Broken", mde.Record)
	assert.Equal(t, "expires", mde.Field)
	assert.Contains(t, err.Error(), `"Broken"`)
}

func TestValidationError_SortedMessage(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"name": "required", "email": "invalid"}}
	assert.Equal(t, "invalid input: email: invalid; name: required", err.Error())
}
