package plans

import (
	"fmt"
	"mime"
	"strings"
	"time"

	"github.com/JaimeStill/floorplan/internal/housespec"
)

// TimestampLayout is the display format of a plan's creation time.
const TimestampLayout = "2006-01-02 15:04:05"

// Summary is the snapshot of key specification values shown with a plan.
type Summary struct {
	Dimensions  string `json:"dimensions"`
	Floors      int    `json:"floors"`
	Bedrooms    int    `json:"bedrooms"`
	Bathrooms   int    `json:"bathrooms"`
	Style       string `json:"style"`
	RenderStyle string `json:"render_style"`
}

// Summarize captures the summary for in.
func Summarize(in housespec.Input) Summary {
	return Summary{
		Dimensions:  fmt.Sprintf("%d' x %d'", in.Dimensions.Length, in.Dimensions.Width),
		Floors:      in.Floors,
		Bedrooms:    in.Bedrooms,
		Bathrooms:   in.Bathrooms,
		Style:       in.Style.Display(),
		RenderStyle: string(in.RenderStyle),
	}
}

// Record is one successfully generated plan. Records are never mutated.
type Record struct {
	ID          string
	Timestamp   time.Time
	Image       []byte
	ContentType string
	Summary     Summary
	Features    []string
	Spec        housespec.Input
}

// Filename derives the download name from the record timestamp,
// e.g. house_plan_2024-03-01_14-05-09.jpg.
func (r Record) Filename(ext string) string {
	stamp := r.Timestamp.Format(TimestampLayout)
	stamp = strings.ReplaceAll(stamp, ":", "-")
	stamp = strings.ReplaceAll(stamp, " ", "_")
	return fmt.Sprintf("house_plan_%s.%s", stamp, strings.TrimPrefix(ext, "."))
}

// Extension returns the file extension for the record's image content type.
// Parameters on the media type are ignored.
func (r Record) Extension() string {
	mediaType, _, err := mime.ParseMediaType(r.ContentType)
	if err != nil {
		return "jpg"
	}
	switch mediaType {
	case "image/png":
		return "png"
	case "image/webp":
		return "webp"
	case "image/gif":
		return "gif"
	}
	return "jpg"
}
