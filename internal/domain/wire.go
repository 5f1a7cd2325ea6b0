package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Timestamp layouts accepted for start_time. The authority emits naive
// ISO-8601 values without a zone; those are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// ParseTimestamp parses an RFC 3339 or naive ISO-8601 timestamp
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unrecognized timestamp %q", ErrInvalidResponse, s)
}

type bedWire struct {
	ID        int      `json:"id"`
	Plant     *Plant   `json:"plant"`
	Progress  *float64 `json:"progress"`
	Locked    bool     `json:"is_locked"`
	StartTime *string  `json:"start_time"`
	GrowTime  *int     `json:"grow_time"`
}

// UnmarshalJSON accepts the authority's bed shape, where progress, start_time
// and grow_time may be null.
func (b *Bed) UnmarshalJSON(data []byte) error {
	var w bedWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	out := Bed{
		ID:     w.ID,
		Plant:  w.Plant,
		Locked: w.Locked,
	}
	if w.Progress != nil {
		out.Progress = *w.Progress
	}
	if w.GrowTime != nil {
		out.GrowTime = *w.GrowTime
	}
	if w.StartTime != nil && *w.StartTime != "" {
		t, err := ParseTimestamp(*w.StartTime)
		if err != nil {
			return err
		}
		out.StartTime = &t
	}

	*b = out
	return nil
}
