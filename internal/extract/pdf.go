package extract

import (
	"strings"

	"github.com/govardhan-06/pdf-upload-extract-system/internal/chunk"
	pdflib "github.com/ledongthuc/pdf"
)

// pageStats drives the sparse-text heuristic: pages that are mostly images
// carry little native text, and their chunks come from the bbox fallback
// instead.
type pageStats struct {
	textDensity float64
	wordCount   int
	imageCount  int
}

// nativeChunks extracts positioned text from one page using the embedded
// text layer. PDF coordinates are bottom-up with the baseline at Y; chunk
// bboxes are top-down extraction space, so Y is flipped against the page
// height and the font box is approximated from the font size.
func nativeChunks(page pdflib.Page, pageNum int) ([]chunk.TextChunk, pageStats) {
	width, height := pageBox(page)

	content := page.Content()
	runs := make([]run, 0, len(content.Text))
	var textArea float64
	var words int
	for _, t := range content.Text {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		ascent := t.FontSize * 0.8
		descent := t.FontSize * 0.2
		runs = append(runs, run{
			text: t.S,
			x1:   t.X,
			y1:   height - t.Y - ascent,
			x2:   t.X + t.W,
			y2:   height - t.Y + descent,
		})
		textArea += t.W * t.FontSize
		words += len(strings.Fields(t.S))
	}

	stats := pageStats{wordCount: words, imageCount: countImages(page)}
	if pageArea := width * height; pageArea > 0 {
		stats.textDensity = textArea / pageArea
	}
	return mergeLines(runs, pageNum), stats
}

// countImages counts image XObjects in the page resources, inherited
// resources included.
func countImages(p pdflib.Page) int {
	xobj := p.Resources().Key("XObject")
	if xobj.Kind() != pdflib.Dict {
		return 0
	}
	n := 0
	for _, name := range xobj.Keys() {
		if xobj.Key(name).Key("Subtype").Name() == "Image" {
			n++
		}
	}
	return n
}

// pageBox resolves the page MediaBox, walking up the page tree for inherited
// boxes. Falls back to US Letter when absent.
func pageBox(p pdflib.Page) (width, height float64) {
	v := p.V
	for !v.IsNull() {
		if mb := v.Key("MediaBox"); mb.Kind() == pdflib.Array && mb.Len() >= 4 {
			w := mb.Index(2).Float64() - mb.Index(0).Float64()
			h := mb.Index(3).Float64() - mb.Index(1).Float64()
			if w > 0 && h > 0 {
				return w, h
			}
		}
		v = v.Key("Parent")
	}
	return 612, 792
}
