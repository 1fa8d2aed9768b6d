package chunk

import (
	"encoding/json"
	"fmt"
)

// BBox is an axis-aligned box [x1, y1, x2, y2] in extraction-space units
// (unscaled page coordinates, top-left origin). x2 >= x1 and y2 >= y1.
type BBox [4]float64

// UnmarshalJSON enforces the wire contract: a bbox is exactly four numbers.
// Plain array decoding would zero-fill a short array instead of failing.
func (b *BBox) UnmarshalJSON(data []byte) error {
	var vals []float64
	if err := json.Unmarshal(data, &vals); err != nil {
		return err
	}
	if len(vals) != 4 {
		return fmt.Errorf("bbox must have 4 numbers, got %d", len(vals))
	}
	copy(b[:], vals)
	return nil
}

// Width returns x2 - x1.
func (b BBox) Width() float64 { return b[2] - b[0] }

// Height returns y2 - y1.
func (b BBox) Height() float64 { return b[3] - b[1] }

// Valid reports whether the box is non-degenerate under the bbox convention.
func (b BBox) Valid() bool { return b[2] >= b[0] && b[3] >= b[1] }

// TextChunk is one unit of extracted text with its location and source page.
// Immutable once received from the backend.
type TextChunk struct {
	Text       string  `json:"text"`
	BBox       BBox    `json:"bbox"`
	Page       int     `json:"page"` // 1-based
	Confidence float64 `json:"confidence,omitempty"`
}

// Equal compares chunks by value (page, bbox, text). Selections hold chunks
// by value, so identity must not depend on slice position or pointers.
func (c TextChunk) Equal(o TextChunk) bool {
	return c.Page == o.Page && c.BBox == o.BBox && c.Text == o.Text
}

// OnPage reports whether the chunk belongs to the given 0-based render page
// index. Chunk pages are 1-based.
func (c TextChunk) OnPage(renderPage int) bool {
	return c.Page-1 == renderPage
}

// Window is a contiguous inclusive 1-based page range requested from the
// backend in one call.
type Window struct {
	Start int
	End   int
}

// Interior reports whether page lies strictly inside the window, exclusive
// of both boundary pages.
func (w Window) Interior(page int) bool {
	return page > w.Start && page < w.End
}

// IsZero reports whether the window is unset.
func (w Window) IsZero() bool { return w.Start == 0 && w.End == 0 }
