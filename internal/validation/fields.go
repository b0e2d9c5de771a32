package validation

import (
	"encoding/json"
	"math"
	"net/mail"
	"net/url"
	"strings"
	"unicode/utf8"
)

// requiredString returns the trimmed string at field, recording an error if
// it is missing, not a string, blank, or longer than max runes.
func (c *checker) requiredString(field string, max int) string {
	v, ok := c.p[field]
	if !ok || v == nil {
		c.fail(field, "%s is required", field)
		return ""
	}
	s, ok := v.(string)
	if !ok {
		c.fail(field, "%s must be a string", field)
		return ""
	}
	s = strings.TrimSpace(s)
	if s == "" {
		c.fail(field, "%s is required", field)
		return ""
	}
	if utf8.RuneCountInString(s) > max {
		c.fail(field, "%s must be at most %d characters", field, max)
		return ""
	}
	return s
}

// email is requiredString plus an address syntax check.
func (c *checker) email(field string, max int) string {
	s := c.requiredString(field, max)
	if s == "" {
		return ""
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		c.fail(field, "%s must be a valid email address", field)
		return ""
	}
	return s
}

// optionalURL returns nil when field is absent, null or blank. Otherwise the
// value must be an absolute http(s) URL no longer than max.
func (c *checker) optionalURL(field string, max int) *string {
	v, ok := c.p[field]
	if !ok || v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		c.fail(field, "%s must be a string", field)
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if len(s) > max {
		c.fail(field, "%s must be at most %d characters", field, max)
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		c.fail(field, "%s must be an http or https URL", field)
		return nil
	}
	return &s
}

// integer returns the integral number at field, recording an error if it is
// missing, not a JSON number, fractional, or outside [min, max].
func (c *checker) integer(field string, min, max int) int {
	v, ok := c.p[field]
	if !ok || v == nil {
		c.fail(field, "%s is required", field)
		return 0
	}
	num, ok := v.(json.Number)
	if !ok {
		c.fail(field, "%s must be an integer", field)
		return 0
	}
	f, err := num.Float64()
	if err != nil || math.IsInf(f, 0) || f != math.Trunc(f) {
		c.fail(field, "%s must be an integer", field)
		return 0
	}
	if f < float64(min) || f > float64(max) {
		c.fail(field, "%s must be between %d and %d", field, min, max)
		return 0
	}
	return int(f)
}
