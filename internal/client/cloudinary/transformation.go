package cloudinary

import (
	"strconv"
	"strings"
)

// Transformation describes the clip a delivery URL should resolve to
type Transformation struct {
	StartOffset float64 // seconds
	EndOffset   float64 // seconds
	Width       int
	Height      int
	Crop        string
}

// DefaultClip is applied to every processed video
var DefaultClip = Transformation{
	StartOffset: 6.5,
	EndOffset:   10,
	Width:       640,
	Height:      360,
	Crop:        "fill",
}

// String renders the transformation as a URL path component,
// parameters in the provider's canonical alphabetical order.
func (t Transformation) String() string {
	parts := make([]string, 0, 5)
	if t.Crop != "" {
		parts = append(parts, "c_"+t.Crop)
	}
	if t.EndOffset > 0 {
		parts = append(parts, "eo_"+formatSeconds(t.EndOffset))
	}
	if t.Height > 0 {
		parts = append(parts, "h_"+strconv.Itoa(t.Height))
	}
	if t.StartOffset > 0 {
		parts = append(parts, "so_"+formatSeconds(t.StartOffset))
	}
	if t.Width > 0 {
		parts = append(parts, "w_"+strconv.Itoa(t.Width))
	}
	return strings.Join(parts, ",")
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
