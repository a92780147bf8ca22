// Package plans holds generated house plans in per-session stores and exposes
// generation, regeneration, and confirmed deletion over HTTP.
package plans

import (
	"github.com/JaimeStill/floorplan/internal/prompt"
	"github.com/JaimeStill/floorplan/pkg/formatting"
)

// Plan is the API view of a stored record.
type Plan struct {
	ID          string   `json:"id"`
	Index       int      `json:"index"`
	Number      int      `json:"number"`
	Timestamp   string   `json:"timestamp"`
	Summary     Summary  `json:"summary"`
	Features    []string `json:"features"`
	Filename    string   `json:"filename"`
	ContentType string   `json:"content_type"`
	Size        string   `json:"size"`
}

func newPlan(index int, r Record) Plan {
	return Plan{
		ID:          r.ID,
		Index:       index,
		Number:      index + 1,
		Timestamp:   r.Timestamp.Format(TimestampLayout),
		Summary:     r.Summary,
		Features:    r.Features,
		Filename:    r.Filename(r.Extension()),
		ContentType: r.ContentType,
		Size:        formatting.FormatBytes(int64(len(r.Image)), 1),
	}
}

// Generation is the result of a generate or regenerate call.
type Generation struct {
	Plan   Plan          `json:"plan"`
	Prompt prompt.Prompt `json:"prompt"`
}

// Download is a record's image ready to be served as a file.
type Download struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Outcome reports a confirmed pending action.
type Outcome struct {
	Action    Action `json:"action"`
	Index     int    `json:"index"`
	Remaining int    `json:"remaining"`
}

// Export reports where a plan image was stored.
type Export struct {
	Key  string `json:"key"`
	Size string `json:"size"`
}
