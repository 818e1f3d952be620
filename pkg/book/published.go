package book

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// ParsePublished accepts RFC 3339 timestamps (fractional seconds allowed)
// and bare ISO dates.
func ParsePublished(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, fmt.Errorf("book: invalid published date %q", v)
	}
	return t, nil
}

// Published wraps the publication time so it round-trips as a string.
type Published struct {
	time.Time
}

func (p Published) MarshalJSON() ([]byte, error) {
	if p.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", p.String())), nil
}

func (p *Published) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == "" {
		p.Time = time.Time{}
		return nil
	}
	var err error
	p.Time, err = ParsePublished(raw)
	return err
}

// MarshalYAML keeps YAML output consistent with JSON.
func (p Published) MarshalYAML() (interface{}, error) {
	if p.IsZero() {
		return "", nil
	}
	return p.String(), nil
}

func (p Published) String() string {
	return p.UTC().Format(time.RFC3339)
}
