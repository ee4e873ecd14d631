package timezone

import (
	"os"
	"time"
)

const fallback = "UTC"

// Default resolves the shop timezone, overridable with SHOP_TIMEZONE.
func Default() *time.Location {
	return Location(os.Getenv("SHOP_TIMEZONE"))
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(fallback)
	return loc
}

func Now() time.Time {
	return time.Now().In(Default())
}

// ParseDate parses "2006-01-02" in the shop timezone.
func ParseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, Default())
}

// ParseDateTime parses a "2006-01-02" date plus "15:04" time in the shop
// timezone.
func ParseDateTime(dateStr, timeStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02 15:04",
		dateStr+" "+timeStr,
		Default(),
	)
}

// DayBounds returns [midnight, midnight+24h) around t.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.Add(24 * time.Hour)
}
