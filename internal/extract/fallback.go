package extract

import (
	"bytes"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/govardhan-06/pdf-upload-extract-system/internal/chunk"
	"golang.org/x/net/html"
)

// fallbackChunks extracts positioned words for one page via pdftotext -bbox.
// Used for pages whose native text layer is too sparse (scanned or
// image-heavy pages run through upstream OCR). pdftotext reports word boxes
// with a top-left origin, which is already extraction space.
func fallbackChunks(path string, pageNum int) ([]chunk.TextChunk, error) {
	cmd := exec.Command("pdftotext", "-bbox",
		"-f", strconv.Itoa(pageNum),
		"-l", strconv.Itoa(pageNum),
		path, "-")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext: %w", err)
	}
	return parseBBoxWords(out, pageNum)
}

// parseBBoxWords walks the pdftotext bbox output and collects <word>
// elements. The output is HTML-shaped, so the lenient HTML parser handles it.
func parseBBoxWords(out []byte, pageNum int) ([]chunk.TextChunk, error) {
	doc, err := html.Parse(bytes.NewReader(out))
	if err != nil {
		return nil, fmt.Errorf("parse bbox output: %w", err)
	}

	var runs []run
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "word" {
			if r, ok := wordRun(n); ok {
				runs = append(runs, r)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return mergeLines(runs, pageNum), nil
}

func wordRun(n *html.Node) (run, bool) {
	r := run{text: strings.TrimSpace(textContent(n))}
	if r.text == "" {
		return run{}, false
	}
	seen := 0
	for _, a := range n.Attr {
		v, err := strconv.ParseFloat(a.Val, 64)
		if err != nil {
			continue
		}
		switch a.Key {
		case "xmin":
			r.x1 = v
			seen++
		case "ymin":
			r.y1 = v
			seen++
		case "xmax":
			r.x2 = v
			seen++
		case "ymax":
			r.y2 = v
			seen++
		}
	}
	if seen != 4 || r.x2 < r.x1 || r.y2 < r.y1 {
		return run{}, false
	}
	return r, true
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return b.String()
}
