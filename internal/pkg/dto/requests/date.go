package requests

import (
	"time"

	"github.com/goccy/go-json"
)

// Date is a calendar day or an instant in a request body. A bare
// "2006-01-02" decodes to midnight UTC, anything else must be RFC3339.
type Date time.Time

func ParseDate(value string) (time.Time, error) {
	if parsed, err := time.Parse(time.DateOnly, value); err == nil {
		return parsed, nil
	}
	return time.Parse(time.RFC3339, value)
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*d = Date(parsed)
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time())
}

func (d Date) Time() time.Time {
	return time.Time(d)
}

func (d Date) IsZero() bool {
	return d.Time().IsZero()
}

func DateTimes(dates []Date) []time.Time {
	times := make([]time.Time, 0, len(dates))
	for _, date := range dates {
		times = append(times, date.Time())
	}
	return times
}
