package listing

// maxPageLinks is the number of page numbers shown at most.
const maxPageLinks = 5

// TotalPages returns ceil(total/size), 0 for an empty result.
func TotalPages(total int64, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}

	return int((total + int64(size) - 1) / int64(size))
}

// PageWindow returns the page numbers to link to: every page when there are
// at most five, otherwise five pages around current kept inside [1, total].
func PageWindow(current, total int) []int {
	if total <= 0 {
		return []int{}
	}

	first := 1
	count := total

	if total > maxPageLinks {
		count = maxPageLinks

		switch {
		case current <= 3:
			first = 1
		case current >= total-2:
			first = total - 4
		default:
			first = current - 2
		}
	}

	pages := make([]int, count)
	for i := range pages {
		pages[i] = first + i
	}

	return pages
}
