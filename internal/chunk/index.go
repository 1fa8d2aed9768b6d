package chunk

import "sort"

// PageGroup is the chunks of a single page in reading order.
type PageGroup struct {
	Page   int
	Chunks []TextChunk
}

// GroupByPage organizes chunks for display: groups in ascending page order,
// chunks within a group sorted by top y-coordinate ascending. This
// approximates reading order for single-column layouts; multi-column pages
// come out interleaved and are not reordered here.
//
// The input is not modified.
func GroupByPage(chunks []TextChunk) []PageGroup {
	if len(chunks) == 0 {
		return nil
	}

	byPage := make(map[int][]TextChunk)
	pages := make([]int, 0, 8)
	for _, c := range chunks {
		if _, seen := byPage[c.Page]; !seen {
			pages = append(pages, c.Page)
		}
		byPage[c.Page] = append(byPage[c.Page], c)
	}
	sort.Ints(pages)

	groups := make([]PageGroup, 0, len(pages))
	for _, p := range pages {
		group := byPage[p]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].BBox[1] < group[j].BBox[1]
		})
		groups = append(groups, PageGroup{Page: p, Chunks: group})
	}
	return groups
}
