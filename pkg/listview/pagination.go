package listview

// maxWindow is the width of the bounded page selector.
const maxWindow = 5

// PageWindow returns the page numbers the selector renders for the
// current state: every page when there are at most five, otherwise a
// five-wide window anchored to the start, the end, or centered on the
// current page.
func (e *Engine[T]) PageWindow() []int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return pageWindow(e.page, e.totalPagesLocked())
}

func pageWindow(current, total int) []int {
	if total <= maxWindow {
		pages := make([]int, total)
		for i := range pages {
			pages[i] = i + 1
		}
		return pages
	}

	var first int
	switch {
	case current <= 3:
		first = 1
	case current >= total-2:
		first = total - maxWindow + 1
	default:
		first = current - 2
	}

	pages := make([]int, maxWindow)
	for i := range pages {
		pages[i] = first + i
	}
	return pages
}
