package feed

import (
	"strconv"
	"strings"
)

// DefaultPageSize is the number of articles per page.
const DefaultPageSize = 50

// Pager tracks the current page over a list whose length may change.
type Pager struct {
	size    int
	total   int
	current int
}

// NewPager creates a pager on page 1. A non-positive size uses DefaultPageSize.
func NewPager(size int) *Pager {
	if size <= 0 {
		size = DefaultPageSize
	}
	return &Pager{size: size, current: 1}
}

// Size is the page size.
func (p *Pager) Size() int { return p.size }

// Current is the 1-based current page.
func (p *Pager) Current() int { return p.current }

// Total is the number of items being paged.
func (p *Pager) Total() int { return p.total }

// TotalPages is ceil(total/size), never less than 1.
func (p *Pager) TotalPages() int {
	pages := (p.total + p.size - 1) / p.size
	if pages < 1 {
		return 1
	}
	return pages
}

// SetTotal records a new list length and clamps the current page into range.
func (p *Pager) SetTotal(n int) {
	if n < 0 {
		n = 0
	}
	p.total = n
	p.clamp()
}

// Reset returns to page 1.
func (p *Pager) Reset() {
	p.current = 1
}

// Next advances one page; no-op on the last page.
func (p *Pager) Next() bool {
	if p.current >= p.TotalPages() {
		return false
	}
	p.current++
	return true
}

// Prev goes back one page; no-op on the first page.
func (p *Pager) Prev() bool {
	if p.current <= 1 {
		return false
	}
	p.current--
	return true
}

// Jump moves to the page named by input. Non-numeric or out-of-range input is
// ignored and false is returned.
func (p *Pager) Jump(input string) bool {
	page, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return false
	}
	return p.JumpTo(page)
}

// JumpTo moves to page if it is in range.
func (p *Pager) JumpTo(page int) bool {
	if page < 1 || page > p.TotalPages() {
		return false
	}
	p.current = page
	return true
}

// Bounds returns the zero-based half-open range of the current page.
func (p *Pager) Bounds() (start, end int) {
	start = (p.current - 1) * p.size
	if start > p.total {
		start = p.total
	}
	end = start + p.size
	if end > p.total {
		end = p.total
	}
	return start, end
}

func (p *Pager) clamp() {
	if p.current > p.TotalPages() {
		p.current = p.TotalPages()
	}
	if p.current < 1 {
		p.current = 1
	}
}
