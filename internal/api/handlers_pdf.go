package api

import (
	"net/http"
	"strings"
)

// handlePDF proxies the raw PDF bytes for the rendering surface, which
// cannot load cross-origin documents itself. Nothing here parses the PDF.
func (s *Server) handlePDF(w http.ResponseWriter, r *http.Request) {
	pdfURL := r.URL.Query().Get("pdf_url")
	if pdfURL == "" || !strings.HasPrefix(pdfURL, "http") {
		jsonError(w, "Invalid URL", http.StatusBadRequest)
		return
	}

	data, err := s.downloader.Fetch(r.Context(), pdfURL)
	if err != nil {
		s.log.Warn("pdf proxy failed", "pdf_url", pdfURL, "error", err)
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "inline")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(data)
}
