package chunk

import "testing"

func TestGroupByPage_PagesAscending(t *testing.T) {
	chunks := []TextChunk{
		{Text: "c", Page: 2, BBox: BBox{0, 10, 50, 20}},
		{Text: "a", Page: 1, BBox: BBox{0, 40, 50, 50}},
		{Text: "b", Page: 1, BBox: BBox{0, 10, 50, 20}},
	}

	groups := GroupByPage(chunks)

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Page != 1 || groups[1].Page != 2 {
		t.Errorf("expected page order [1 2], got [%d %d]", groups[0].Page, groups[1].Page)
	}
}

func TestGroupByPage_ReadingOrderWithinPage(t *testing.T) {
	// The later-listed page-1 chunk sits higher on the page and must come first.
	chunks := []TextChunk{
		{Text: "on page 2", Page: 2, BBox: BBox{0, 5, 10, 15}},
		{Text: "lower", Page: 1, BBox: BBox{0, 300, 100, 320}},
		{Text: "upper", Page: 1, BBox: BBox{0, 100, 100, 120}},
	}

	groups := GroupByPage(chunks)

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	page1 := groups[0]
	if page1.Page != 1 {
		t.Fatalf("expected first group to be page 1, got %d", page1.Page)
	}
	if len(page1.Chunks) != 2 {
		t.Fatalf("expected 2 chunks on page 1, got %d", len(page1.Chunks))
	}
	if page1.Chunks[0].Text != "upper" || page1.Chunks[1].Text != "lower" {
		t.Errorf("expected [upper lower], got [%s %s]", page1.Chunks[0].Text, page1.Chunks[1].Text)
	}
}

func TestGroupByPage_StableForEqualY(t *testing.T) {
	chunks := []TextChunk{
		{Text: "first", Page: 1, BBox: BBox{0, 50, 10, 60}},
		{Text: "second", Page: 1, BBox: BBox{20, 50, 30, 60}},
	}

	groups := GroupByPage(chunks)

	if len(groups) != 1 || len(groups[0].Chunks) != 2 {
		t.Fatalf("unexpected grouping: %+v", groups)
	}
	if groups[0].Chunks[0].Text != "first" {
		t.Errorf("equal-y chunks reordered: got %q first", groups[0].Chunks[0].Text)
	}
}

func TestGroupByPage_Empty(t *testing.T) {
	if groups := GroupByPage(nil); groups != nil {
		t.Errorf("expected nil for empty input, got %+v", groups)
	}
}

func TestGroupByPage_DoesNotMutateInput(t *testing.T) {
	chunks := []TextChunk{
		{Text: "b", Page: 1, BBox: BBox{0, 200, 10, 210}},
		{Text: "a", Page: 1, BBox: BBox{0, 100, 10, 110}},
	}
	GroupByPage(chunks)

	if chunks[0].Text != "b" || chunks[1].Text != "a" {
		t.Errorf("input slice was reordered: [%s %s]", chunks[0].Text, chunks[1].Text)
	}
}
