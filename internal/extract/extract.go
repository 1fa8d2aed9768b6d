package extract

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/govardhan-06/pdf-upload-extract-system/internal/chunk"
	pdflib "github.com/ledongthuc/pdf"
)

// ErrInvalidRange means the requested page range is inverted after clamping
// to the document length.
var ErrInvalidRange = errors.New("invalid page range")

// Config controls extraction behavior.
type Config struct {
	TextDensityThreshold float64       // below this, a page counts as sparse
	MinWordCount         int           // below this, a page counts as sparse
	PageWorkers          int           // concurrent page extractions
	FallbackPdftotext    bool          // use pdftotext -bbox for sparse pages
	CacheTTL             time.Duration // extraction result cache lifetime
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		TextDensityThreshold: 0.3,
		MinWordCount:         50,
		PageWorkers:          min(runtime.NumCPU(), 8),
		FallbackPdftotext:    true,
		CacheTTL:             time.Hour,
	}
}

// Result is the outcome of processing one document range.
type Result struct {
	Chunks     []chunk.TextChunk
	TotalPages int
}

// Service turns PDF bytes into positioned text chunks. Results are cached by
// content hash and page range for the configured TTL, so re-requesting the
// same window of the same document skips the parse entirely.
type Service struct {
	cfg   Config
	cache *resultCache
	stats *Stats
	log   *slog.Logger
}

func NewService(cfg Config, log *slog.Logger) *Service {
	if cfg.TextDensityThreshold <= 0 {
		cfg.TextDensityThreshold = 0.3
	}
	if cfg.MinWordCount <= 0 {
		cfg.MinWordCount = 50
	}
	if cfg.PageWorkers <= 0 {
		cfg.PageWorkers = min(runtime.NumCPU(), 8)
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = time.Hour
	}
	return &Service{
		cfg:   cfg,
		cache: newResultCache(cfg.CacheTTL),
		stats: NewStats(time.Hour),
		log:   log,
	}
}

// Stats exposes the rolling latency aggregate for the stats endpoint.
func (s *Service) Stats() *Stats { return s.stats }

// Process extracts chunks for pages [startPage, endPage] of the document.
// Pages are 1-based inclusive; zero values select the whole document, and
// out-of-range bounds clamp to the document length. Chunks come back in page
// order, top-to-bottom within each page.
func (s *Service) Process(ctx context.Context, pdfBytes []byte, startPage, endPage int) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	started := time.Now()

	key := resultKey{hash: contentHashHex(pdfBytes), start: startPage, end: endPage}
	if res, ok := s.cache.get(key); ok {
		return res, nil
	}

	// ledongthuc/pdf wants a file path, and so does the pdftotext fallback.
	tmpPath, err := writeTemp(pdfBytes)
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmpPath)

	f, reader, err := pdflib.Open(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	totalPages := reader.NumPage()
	if startPage < 1 {
		startPage = 1
	}
	if startPage > totalPages {
		startPage = totalPages
	}
	if endPage <= 0 || endPage > totalPages {
		endPage = totalPages
	}
	if startPage > endPage {
		return nil, ErrInvalidRange
	}

	type pageResult struct {
		page   int
		chunks []chunk.TextChunk
	}
	n := endPage - startPage + 1
	results := make(chan pageResult, n)
	sem := make(chan struct{}, s.cfg.PageWorkers)

	for pageNum := startPage; pageNum <= endPage; pageNum++ {
		sem <- struct{}{}
		go func(pn int) {
			defer func() { <-sem }()
			results <- pageResult{page: pn, chunks: s.processPage(reader, tmpPath, pn)}
		}(pageNum)
	}

	var all []chunk.TextChunk
	for i := 0; i < n; i++ {
		r := <-results
		all = append(all, r.chunks...)
	}

	// Deterministic output order regardless of worker completion order.
	var ordered []chunk.TextChunk
	for _, g := range chunk.GroupByPage(all) {
		ordered = append(ordered, g.Chunks...)
	}

	res := &Result{Chunks: ordered, TotalPages: totalPages}
	s.cache.put(key, res)
	s.stats.Record(time.Since(started).Milliseconds())
	s.log.Info("extracted document range",
		"start_page", startPage,
		"end_page", endPage,
		"total_pages", totalPages,
		"chunks", len(ordered),
		"duration_ms", time.Since(started).Milliseconds(),
	)
	return res, nil
}

// processPage extracts one page, preferring the native text layer and
// falling back to pdftotext for sparse pages. A failed page contributes no
// chunks rather than failing the whole range.
func (s *Service) processPage(reader *pdflib.Reader, tmpPath string, pageNum int) (out []chunk.TextChunk) {
	defer func() {
		// The pdf library panics on some malformed content streams.
		if r := recover(); r != nil {
			s.log.Error("page extraction panicked", "page", pageNum, "panic", r)
			out = nil
		}
	}()

	page := reader.Page(pageNum)
	if page.V.IsNull() {
		return nil
	}

	native, stats := nativeChunks(page, pageNum)
	if !sparsePage(stats, s.cfg) || !s.cfg.FallbackPdftotext {
		return native
	}

	s.log.Debug("sparse page, trying bbox fallback",
		"page", pageNum,
		"density", stats.textDensity,
		"words", stats.wordCount,
		"images", stats.imageCount,
	)
	fb, err := fallbackChunks(tmpPath, pageNum)
	if err != nil {
		s.log.Warn("bbox fallback failed, keeping native text", "page", pageNum, "error", err)
		return native
	}
	if len(fb) == 0 {
		return native
	}
	return fb
}

// sparsePage reports whether a page's native text layer is too thin to
// trust: either the page is image-heavy with low text density, or it has
// almost no words at all.
func sparsePage(st pageStats, cfg Config) bool {
	if st.imageCount > 2 && st.textDensity < cfg.TextDensityThreshold {
		return true
	}
	return st.wordCount < cfg.MinWordCount
}

func writeTemp(data []byte) (string, error) {
	tmp, err := os.CreateTemp("", "extract-pdf-*.pdf")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close temp file: %w", err)
	}
	return tmp.Name(), nil
}

// contentHashHex computes SHA-256 of content and returns the hex string.
func contentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
