package utils

import "time"

// AddMonthsUnix returns ts shifted by the given number of calendar months, in UTC.
func AddMonthsUnix(ts int64, months int) int64 {
	return time.Unix(ts, 0).UTC().AddDate(0, months, 0).Unix()
}

// FromUnixSeconds converts a stored unix-seconds timestamp; zero stays zero.
func FromUnixSeconds(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).UTC()
}

func FormatRFC3339(t int64) string {
	if t <= 0 {
		return ""
	}
	return FromUnixSeconds(t).Format(time.RFC3339)
}

func FormatRFC3339Ptr(t *int64) *string {
	if t == nil {
		return nil
	}
	s := FormatRFC3339(*t)
	return &s
}
