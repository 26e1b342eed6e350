package types

// Timestamp and date layouts used throughout the snapshot format.
// Timestamps are UTC with a literal Z suffix; dates are bare days.
// Both sort chronologically as strings, which the query helpers and
// the summary window rely on.
const (
	TimestampFormat = "2006-01-02T15:04:05Z"
	DateFormat      = "2006-01-02"
)
