package content

import "sort"

// ShowcaseSize is how many projects the 3D showcase and the collapsed grid show.
const ShowcaseSize = 3

// SortFeaturedFirst returns a copy with featured projects first. Order among
// equally featured projects is the input order.
func SortFeaturedFirst(projects []Project) []Project {
	out := make([]Project, len(projects))
	copy(out, projects)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Featured && !out[j].Featured
	})
	return out
}

// Visible is the grid contents: everything when showAll, otherwise the first three.
func Visible(sorted []Project, showAll bool) []Project {
	if showAll {
		return sorted
	}
	return Showcase(sorted)
}

// Showcase is at most the first three projects.
func Showcase(sorted []Project) []Project {
	if len(sorted) > ShowcaseSize {
		return sorted[:ShowcaseSize]
	}
	return sorted
}

// HasMore reports whether a "view more" toggle is needed.
func HasMore(projects []Project) bool {
	return len(projects) > ShowcaseSize
}
