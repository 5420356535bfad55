package timeutil

import (
	"time"
)

// EAT is the East Africa Time location (UTC+3)
var EAT *time.Location

func init() {
	var err error
	EAT, err = time.LoadLocation("Africa/Nairobi")
	if err != nil {
		// Fallback: create fixed zone if Africa/Nairobi not available
		EAT = time.FixedZone("EAT", 3*60*60) // UTC+3
	}
}

// Now returns the current time in EAT
func Now() time.Time {
	return time.Now().In(EAT)
}

// ToEAT converts any time to EAT
func ToEAT(t time.Time) time.Time {
	return t.In(EAT)
}

// ParseDate parses a YYYY-MM-DD date string in EAT
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, EAT)
}

// Common layouts
const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01" // for_month format on payments
)
