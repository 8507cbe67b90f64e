// Package dates holds the calendar-date types used on the wire. Every date
// and timestamp leaves the service as a fixed-width YYYY-MM-DD string.
package dates

import (
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"cloud.google.com/go/civil"
)

// Layout is the canonical textual form.
const Layout = "2006-01-02"

// Date is a calendar date. It decodes from YYYY-MM-DD or an RFC 3339
// timestamp and encodes as YYYY-MM-DD.
type Date struct {
	civil.Date
}

// Of returns the UTC calendar date of t, so a stored timestamp renders the
// same whatever zone the driver decoded it in.
func Of(t time.Time) Date {
	return Date{civil.DateOf(t.UTC())}
}

// OfPtr returns nil for a nil time.
func OfPtr(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	d := Of(*t)
	return &d
}

func Parse(s string) (Date, error) {
	if cd, err := civil.ParseDate(s); err == nil {
		return Date{cd}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	// a timestamp names the date as written in its own offset
	return Date{civil.DateOf(t)}, nil
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return d.In(time.UTC)
}

var (
	dateType     = reflect.TypeOf(Date{})
	dateTimeType = reflect.TypeOf(DateTime{})
)

// typeError lets the decoder attach the offending field's name.
func typeError(data []byte, t reflect.Type) error {
	return &json.UnmarshalTypeError{Value: string(data), Type: t}
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return typeError(data, dateType)
	}
	parsed, err := Parse(s)
	if err != nil {
		return typeError(data, dateType)
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// DateTime is a point in time accepted as RFC 3339 or as a bare date
// (midnight UTC). It is stored with its clock time and rendered as a Date.
type DateTime struct {
	time.Time
}

func (dt *DateTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return typeError(data, dateTimeType)
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		dt.Time = t.UTC()
		return nil
	}
	if cd, err := civil.ParseDate(s); err == nil {
		dt.Time = cd.In(time.UTC)
		return nil
	}
	return typeError(data, dateTimeType)
}

func (dt DateTime) MarshalJSON() ([]byte, error) {
	return Of(dt.Time).MarshalJSON()
}

// Describe names the accepted format of a date type, or returns "" for any
// other type.
func Describe(t reflect.Type) string {
	switch t {
	case dateType:
		return "a date in YYYY-MM-DD format"
	case dateTimeType:
		return "an RFC 3339 timestamp or a YYYY-MM-DD date"
	}
	return ""
}
