package rotator

// Pager walks a list in fixed-size pages without wrapping. It backs the
// testimonial sliders, which stop at either end instead of cycling.
type Pager struct {
	Total   int
	PerPage int
	Page    int
}

// NewPager returns a pager positioned on page, clamped into range.
func NewPager(total, perPage, page int) Pager {
	if perPage < 1 {
		perPage = 1
	}
	if total < 0 {
		total = 0
	}
	p := Pager{Total: total, PerPage: perPage}
	p.Page = p.clamp(page)
	return p
}

// MaxPage is the index of the last page. An empty list has one empty page.
func (p Pager) MaxPage() int {
	if p.Total == 0 || p.PerPage < 1 {
		return 0
	}
	return (p.Total+p.PerPage-1)/p.PerPage - 1
}

func (p Pager) CanPrev() bool { return p.Page > 0 }
func (p Pager) CanNext() bool { return p.Page < p.MaxPage() }

// Next moves one page forward, stopping on the last page.
func (p Pager) Next() Pager {
	p.Page = p.clamp(p.Page + 1)
	return p
}

// Prev moves one page back, stopping on the first page.
func (p Pager) Prev() Pager {
	p.Page = p.clamp(p.Page - 1)
	return p
}

// Window returns the half-open item range [start,end) shown on the page.
func (p Pager) Window() (start, end int) {
	start = p.Page * p.PerPage
	end = start + p.PerPage
	if start > p.Total {
		start = p.Total
	}
	if end > p.Total {
		end = p.Total
	}
	return start, end
}

func (p Pager) clamp(page int) int {
	if page < 0 {
		return 0
	}
	if last := p.MaxPage(); page > last {
		return last
	}
	return page
}
