package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/govardhan-06/pdf-upload-extract-system/internal/chunk"
	"github.com/govardhan-06/pdf-upload-extract-system/internal/extract"
	"github.com/govardhan-06/pdf-upload-extract-system/internal/render"
)

// renderedChunk is a chunk with its inline markup rendered for the text
// panel, selected by ?render=html or ?render=text.
type renderedChunk struct {
	chunk.TextChunk
	HTML  string `json:"html,omitempty"`
	Plain string `json:"plain,omitempty"`
}

// chunkPayload shapes the chunk list for the requested render mode: "html"
// adds inline markup per chunk, "text" adds the markup-stripped text, and
// anything else returns the chunks as-is.
func chunkPayload(chunks []chunk.TextChunk, mode string) any {
	switch mode {
	case "html":
		rendered := make([]renderedChunk, 0, len(chunks))
		for _, c := range chunks {
			rendered = append(rendered, renderedChunk{TextChunk: c, HTML: render.InlineHTML(c.Text)})
		}
		return rendered
	case "text":
		rendered := make([]renderedChunk, 0, len(chunks))
		for _, c := range chunks {
			rendered = append(rendered, renderedChunk{TextChunk: c, Plain: render.PlainText(c.Text)})
		}
		return rendered
	default:
		if chunks == nil {
			chunks = []chunk.TextChunk{}
		}
		return chunks
	}
}

// handleExtract extracts positioned text chunks from the PDF at pdf_url,
// optionally scoped to start_page/end_page (1-based, inclusive).
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	pdfURL := r.URL.Query().Get("pdf_url")
	if pdfURL == "" || !strings.HasPrefix(pdfURL, "http") {
		jsonError(w, "Invalid URL", http.StatusBadRequest)
		return
	}

	startPage, ok := pageParam(r, "start_page")
	if !ok {
		jsonError(w, "start_page must be a positive integer", http.StatusBadRequest)
		return
	}
	endPage, ok := pageParam(r, "end_page")
	if !ok {
		jsonError(w, "end_page must be a positive integer", http.StatusBadRequest)
		return
	}

	data, err := s.downloader.Fetch(r.Context(), pdfURL)
	if err != nil {
		s.log.Warn("pdf download failed", "pdf_url", pdfURL, "error", err)
		jsonError(w, "Failed to fetch PDF from the provided URL", http.StatusBadRequest)
		return
	}

	res, err := s.extractor.Process(r.Context(), data, startPage, endPage)
	if err != nil {
		if errors.Is(err, extract.ErrInvalidRange) {
			jsonError(w, "Invalid page range", http.StatusBadRequest)
			return
		}
		s.log.Error("extraction failed", "pdf_url", pdfURL, "error", err)
		jsonError(w, "Error processing PDF: "+err.Error(), http.StatusInternalServerError)
		return
	}

	body := map[string]any{
		"total_pages": res.TotalPages,
		"text_chunks": chunkPayload(res.Chunks, r.URL.Query().Get("render")),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(body)
}

// pageParam parses an optional positive page query parameter; 0 means unset.
func pageParam(r *http.Request, name string) (int, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, true
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
