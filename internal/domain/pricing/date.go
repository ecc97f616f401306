package pricing

import (
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = crerr.New("invalid date, expected YYYY-MM-DD")

// ParseDate parses a calendar date into midnight UTC.
func ParseDate(raw string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(raw), time.UTC)
	if err != nil {
		return time.Time{}, crerr.Wrapf(ErrInvalidDate, "parse %q", raw)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
