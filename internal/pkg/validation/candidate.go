package validation

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/segfault/coursecatalog/internal/pkg/apperrors"
)

// Candidate is a decoded JSON object awaiting admission. Values keep their
// raw JSON types (json.Number for numerics, bool, string) so the type checks
// below can tell an integer 5 from the string "5" and a bool from "true".
type Candidate map[string]interface{}

// Decode reads a JSON object from r into a Candidate. Numbers are kept as
// json.Number rather than float64.
func Decode(r io.Reader) (Candidate, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var c Candidate
	if err := dec.Decode(&c); err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidFormat, "request body is not a JSON object")
	}
	return c, nil
}

// Require checks that every named field is present. The first absent field
// rejects the candidate with a missing-field error, before any type or store
// check runs.
func (c Candidate) Require(fields ...string) error {
	for _, f := range fields {
		if _, ok := c[f]; !ok {
			return apperrors.NewMissingFieldError(f)
		}
	}
	return nil
}

// Int extracts field as an integer. Non-numeric JSON values and fractional
// numbers reject with an invalid-type error.
func (c Candidate) Int(field string) (int64, error) {
	num, ok := c[field].(json.Number)
	if !ok {
		return 0, apperrors.NewInvalidTypeError(field)
	}
	n, err := num.Int64()
	if err != nil {
		return 0, apperrors.NewInvalidTypeError(field)
	}
	return n, nil
}

// Bool extracts field as a boolean. Truthy strings and numbers are not
// accepted; the value must be a JSON true or false.
func (c Candidate) Bool(field string) (bool, error) {
	b, ok := c[field].(bool)
	if !ok {
		return false, apperrors.NewInvalidTypeError(field)
	}
	return b, nil
}

// String extracts field as a string.
func (c Candidate) String(field string) (string, error) {
	s, ok := c[field].(string)
	if !ok {
		return "", apperrors.NewInvalidTypeError(field)
	}
	return s, nil
}

// Clock extracts field as a canonical HH:MM:SS time-of-day string. A string
// of the wrong shape rejects with an invalid-format error; a non-string
// rejects with an invalid-type error.
func (c Candidate) Clock(field string) (string, error) {
	s, err := c.String(field)
	if err != nil {
		return "", err
	}
	canonical, ok := parseClock(s)
	if !ok {
		return "", apperrors.NewInvalidFormatError(field, "HH:MM:SS")
	}
	return canonical, nil
}

// parseClock validates a time-of-day string and re-serializes it to the
// canonical zero-padded HH:MM:SS form.
func parseClock(s string) (string, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return "", false
	}
	var hms [3]int64
	for i, p := range parts {
		if len(p) == 0 || len(p) > 2 {
			return "", false
		}
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil || n < 0 {
			return "", false
		}
		hms[i] = n
	}
	if hms[0] > 23 || hms[1] > 59 || hms[2] > 59 {
		return "", false
	}
	return pad2(hms[0]) + ":" + pad2(hms[1]) + ":" + pad2(hms[2]), true
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}
