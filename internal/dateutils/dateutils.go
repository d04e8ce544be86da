// Package dateutils provides the date and time operations used when
// reading batch input and stamping generated documents.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Date format constants used throughout the application
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutEuropean = "02.01.2006"
	DateLayoutSlash    = "02/01/2006"

	// DateTimeLayoutISO is the CreDtTm layout: local time, seconds
	// precision, no zone designator.
	DateTimeLayoutISO = "2006-01-02T15:04:05"
)

// CommonFormats is the list of formats tried when parsing batch dates
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutEuropean,
	DateLayoutSlash,
	"02-01-2006",
	"2006/01/02",
}

// ParseDate attempts to parse a date string using each common format in
// turn and returns the first match.
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// FormatDate formats a time.Time value according to the specified layout.
// If no layout is provided, DateLayoutISO is used.
func FormatDate(date time.Time, layout string) string {
	if layout == "" {
		layout = DateLayoutISO
	}
	return date.Format(layout)
}
