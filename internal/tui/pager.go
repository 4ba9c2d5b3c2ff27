package tui

import "fmt"

// RenderPager renders the "Page X of Y" line with Previous/Next controls.
// Previous is disabled on the first page and Next on the last; disabled
// controls are dimmed and do not fire.
func RenderPager(page, pageCount int) string {
	prev := "[p] Previous"
	if page <= 1 {
		prev = DisabledStyle.Render(prev)
	} else {
		prev = PagerStyle.Render(prev)
	}

	next := "[n] Next"
	if page >= pageCount {
		next = DisabledStyle.Render(next)
	} else {
		next = PagerStyle.Render(next)
	}

	return fmt.Sprintf("%s  Page %d of %d  %s", prev, page, pageCount, next)
}
