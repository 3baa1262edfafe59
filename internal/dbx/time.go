package dbx

import (
	"fmt"
	"time"
)

// timeLayouts are the text encodings a driver may hand back for a timestamp
// column. SQLite has no native time type and RETURNING columns carry no
// declared type, so modernc.org/sqlite can return the stored string as is.
var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999 -0700 MST",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
}

// Time is a sql.Scanner for timestamp columns that accepts time.Time as well
// as the textual forms produced by SQLite. Scanned values are normalized to UTC.
type Time struct {
	time.Time
}

// Scan implements sql.Scanner.
func (t *Time) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		t.Time = time.Time{}
		return nil
	case time.Time:
		t.Time = v.UTC()
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	case int64:
		t.Time = time.UnixMilli(v).UTC()
		return nil
	}
	return fmt.Errorf("dbx.Time: unsupported source type %T", src)
}

func (t *Time) parse(s string) error {
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("dbx.Time: cannot parse %q", s)
}
