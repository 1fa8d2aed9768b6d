package extract

import (
	"sort"
	"strings"

	"github.com/govardhan-06/pdf-upload-extract-system/internal/chunk"
)

// run is one positioned text fragment in extraction space (top-left origin),
// before line assembly. Both the native and the pdftotext paths reduce their
// output to runs so line merging stays in one place.
type run struct {
	text string
	x1   float64
	y1   float64
	x2   float64
	y2   float64
}

// Vertical tolerance when deciding two runs share a line, as a fraction of
// run height.
const lineTolerance = 0.5

// mergeLines assembles runs into line-level chunks for one page: runs whose
// vertical extents overlap (within tolerance) join left-to-right into a
// single chunk whose bbox is the union of its runs.
func mergeLines(runs []run, page int) []chunk.TextChunk {
	if len(runs) == 0 {
		return nil
	}

	sort.SliceStable(runs, func(i, j int) bool {
		if runs[i].y1 != runs[j].y1 {
			return runs[i].y1 < runs[j].y1
		}
		return runs[i].x1 < runs[j].x1
	})

	var chunks []chunk.TextChunk
	line := []run{runs[0]}
	for _, r := range runs[1:] {
		if sameLine(line[0], r) {
			line = append(line, r)
			continue
		}
		chunks = append(chunks, buildLine(line, page))
		line = []run{r}
	}
	chunks = append(chunks, buildLine(line, page))
	return chunks
}

func sameLine(a, b run) bool {
	tol := (a.y2 - a.y1) * lineTolerance
	if h := b.y2 - b.y1; h > a.y2-a.y1 {
		tol = h * lineTolerance
	}
	mid := (b.y1 + b.y2) / 2
	return mid >= a.y1-tol && mid <= a.y2+tol
}

func buildLine(line []run, page int) chunk.TextChunk {
	sort.SliceStable(line, func(i, j int) bool { return line[i].x1 < line[j].x1 })

	box := chunk.BBox{line[0].x1, line[0].y1, line[0].x2, line[0].y2}
	var b strings.Builder
	lastEnd := line[0].x1
	for i, r := range line {
		if r.x1 < box[0] {
			box[0] = r.x1
		}
		if r.y1 < box[1] {
			box[1] = r.y1
		}
		if r.x2 > box[2] {
			box[2] = r.x2
		}
		if r.y2 > box[3] {
			box[3] = r.y2
		}
		// Insert a space across visible horizontal gaps; glyph runs inside a
		// word arrive with no gap.
		if i > 0 && r.x1-lastEnd > 1.0 && !strings.HasSuffix(b.String(), " ") {
			b.WriteByte(' ')
		}
		b.WriteString(r.text)
		lastEnd = r.x2
	}

	return chunk.TextChunk{
		Text:       strings.TrimSpace(b.String()),
		BBox:       box,
		Page:       page,
		Confidence: 1.0,
	}
}
