package types

import "time"

// TimestampLayout: ISO-8601 фиксированной ширины в UTC.
// Строки сравниваются лексикографически так же, как время хронологически.
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

type BaseEntity struct {
	ID        string `json:"id" db:"id"`
	CreatedAt string `json:"created_at" db:"created_at"`
	UpdatedAt string `json:"updated_at" db:"updated_at"`
}

func (b *BaseEntity) Base() *BaseEntity { return b }

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(TimestampLayout, s)
}
