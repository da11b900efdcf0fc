package domain

import "time"

// TimestampPrecision is the resolution entry timestamps are stored at. It
// matches PostgreSQL timestamptz, the coarsest backend.
const TimestampPrecision = time.Microsecond

// NormalizeTime converts t to UTC at TimestampPrecision.
func NormalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(TimestampPrecision)
}
