package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/segfault/coursecatalog/internal/pkg/apperrors"
)

func decodeOrFail(t *testing.T, body string) Candidate {
	t.Helper()
	c, err := Decode(strings.NewReader(body))
	if err != nil {
		t.Fatalf("Decode should accept %q: %v", body, err)
	}
	return c
}

func TestDecode_RejectsNonObject(t *testing.T) {
	if _, err := Decode(strings.NewReader("not json")); err == nil {
		t.Error("expected error for malformed body")
	}
}

func TestRequire_FirstAbsentFieldWins(t *testing.T) {
	c := decodeOrFail(t, `{"ccode": "CIS101"}`)

	err := c.Require("ccode", "starttime", "endtime", "cdays")
	if !errors.Is(err, apperrors.ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got: %v", err)
	}
	if got := apperrors.FieldOf(err); got != "starttime" {
		t.Errorf("expected starttime to be reported first, got %q", got)
	}
}

func TestRequire_AllPresent(t *testing.T) {
	c := decodeOrFail(t, `{"classid": 1, "reqid": 2, "prereq": true}`)

	if err := c.Require("classid", "reqid", "prereq"); err != nil {
		t.Errorf("expected nil, got: %v", err)
	}
}

func TestRequire_MissingOutranksBadType(t *testing.T) {
	// reqid is the wrong type, but prereq is absent; the presence pass runs
	// over every field before any type check.
	c := decodeOrFail(t, `{"classid": 1, "reqid": "two"}`)

	err := c.Require("classid", "reqid", "prereq")
	if !errors.Is(err, apperrors.ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got: %v", err)
	}
	if got := apperrors.FieldOf(err); got != "prereq" {
		t.Errorf("expected prereq, got %q", got)
	}
}

func TestInt_AcceptsIntegers(t *testing.T) {
	c := decodeOrFail(t, `{"classid": 42}`)

	n, err := c.Int("classid")
	if err != nil {
		t.Fatalf("expected 42 to parse: %v", err)
	}
	if n != 42 {
		t.Errorf("expected 42, got %d", n)
	}
}

func TestInt_RejectsNonIntegers(t *testing.T) {
	cases := map[string]string{
		"string": `{"classid": "42"}`,
		"float":  `{"classid": 4.2}`,
		"bool":   `{"classid": true}`,
		"null":   `{"classid": null}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			c := decodeOrFail(t, body)
			_, err := c.Int("classid")
			if !errors.Is(err, apperrors.ErrInvalidType) {
				t.Errorf("expected ErrInvalidType, got: %v", err)
			}
			if got := apperrors.FieldOf(err); got != "classid" {
				t.Errorf("expected classid, got %q", got)
			}
		})
	}
}

func TestBool_RejectsTruthyValues(t *testing.T) {
	cases := map[string]string{
		"string": `{"prereq": "true"}`,
		"number": `{"prereq": 1}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			c := decodeOrFail(t, body)
			_, err := c.Bool("prereq")
			if !errors.Is(err, apperrors.ErrInvalidType) {
				t.Errorf("expected ErrInvalidType, got: %v", err)
			}
		})
	}
}

func TestBool_AcceptsJSONBool(t *testing.T) {
	c := decodeOrFail(t, `{"prereq": false}`)

	b, err := c.Bool("prereq")
	if err != nil {
		t.Fatalf("expected false to parse: %v", err)
	}
	if b {
		t.Error("expected false")
	}
}

func TestString_RejectsNumbers(t *testing.T) {
	c := decodeOrFail(t, `{"ccode": 101}`)

	if _, err := c.String("ccode"); !errors.Is(err, apperrors.ErrInvalidType) {
		t.Errorf("expected ErrInvalidType, got: %v", err)
	}
}

func TestClock_Canonicalizes(t *testing.T) {
	cases := map[string]string{
		"09:00:00": "09:00:00",
		"9:0:0":    "09:00:00",
		"23:59:59": "23:59:59",
		"0:00:00":  "00:00:00",
	}
	for in, want := range cases {
		c := decodeOrFail(t, `{"starttime": "`+in+`"}`)
		got, err := c.Clock("starttime")
		if err != nil {
			t.Errorf("expected %q to parse: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("Clock(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestClock_RejectsBadShapes(t *testing.T) {
	bad := []string{"25:00:00", "09:60:00", "09:00:60", "09:00", "0900:00", "nine:00:00", "-1:00:00", ""}
	for _, in := range bad {
		c := decodeOrFail(t, `{"starttime": "`+in+`"}`)
		_, err := c.Clock("starttime")
		if !errors.Is(err, apperrors.ErrInvalidFormat) {
			t.Errorf("Clock(%q): expected ErrInvalidFormat, got: %v", in, err)
		}
	}
}

func TestClock_NonStringIsTypeError(t *testing.T) {
	c := decodeOrFail(t, `{"starttime": 900}`)

	_, err := c.Clock("starttime")
	if !errors.Is(err, apperrors.ErrInvalidType) {
		t.Errorf("expected ErrInvalidType for a numeric time, got: %v", err)
	}
}
