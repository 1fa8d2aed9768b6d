package chunk

// Rect is a screen-space rectangle in pixels, ready for overlay placement.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Project maps a bbox from extraction-space units into screen pixels at the
// given render scale. Pure: the result depends only on (bbox, scale), so
// callers must re-project whenever the scale changes. The rendering surface's
// own page placement is the origin; no translation or rotation is applied.
func Project(b BBox, scale float64) Rect {
	return Rect{
		Left:   b[0] * scale,
		Top:    b[1] * scale,
		Width:  b.Width() * scale,
		Height: b.Height() * scale,
	}
}
