package domain

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the form date inputs submit.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// Date is a calendar date from a request body. Plain dates become midnight UTC,
// full RFC 3339 timestamps are accepted as well.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: t}
}

func ParseDate(value string) (Date, error) {
	value = strings.TrimSpace(value)
	if t, err := time.ParseInLocation(DateLayout, value, time.UTC); err == nil {
		return Date{Time: t}, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return Date{Time: t.UTC()}, nil
	}
	return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("%w: %s", ErrInvalidDate, data)
	}
	if len(data) == 2 {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
