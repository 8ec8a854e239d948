package table

// Pagination is the page the table is showing.
type Pagination struct {
	Current  int `json:"current"`
	PageSize int `json:"pageSize"`
}

// EffectivePage returns the page actually displayed. While filtering, the row
// count may shrink under a previously set page, so the page is clamped to the
// last one.
func EffectivePage(total int, p Pagination, filtering bool) int {
	current := p.Current
	if filtering && p.PageSize > 0 {
		pageCount := (total + p.PageSize - 1) / p.PageSize
		if pageCount <= current {
			current = pageCount
		}
	}
	if current < 1 {
		current = 1
	}
	return current
}

func window(total int, p Pagination, filtering bool) (page, start, end int) {
	page = EffectivePage(total, p, filtering)
	start = p.PageSize * (page - 1)
	end = p.PageSize * page
	if end > total {
		end = total
	}
	if start > end {
		start = end
	}
	return page, start, end
}

// RowSpan counts the rows, from the absolute index onwards, that share the id
// of rows[index] contiguously within the displayed page. It is 0 when index is
// outside the page.
func RowSpan(rows []Row, index int, p Pagination, filtering bool) int {
	if p.PageSize <= 0 {
		return 0
	}
	_, start, end := window(len(rows), p, filtering)
	if index < start || index >= end {
		return 0
	}
	span := 1
	for i := index + 1; i < end && rows[i].ID == rows[index].ID; i++ {
		span++
	}
	return span
}

// Page is the slice of rows displayed for a pagination, with the span of each
// row. Continuation rows of a group have a span of 0.
type Page struct {
	Number    int   `json:"number"`
	PageCount int   `json:"pageCount"`
	Total     int   `json:"total"`
	Rows      []Row `json:"rows"`
	Spans     []int `json:"spans"`
}

// Paginate cuts the displayed page out of rows.
func Paginate(rows []Row, p Pagination, filtering bool) Page {
	if p.PageSize <= 0 {
		p.PageSize = len(rows)
		p.Current = 1
	}
	page := Page{Total: len(rows), Rows: []Row{}, Spans: []int{}}
	if p.PageSize == 0 {
		page.Number = 1
		return page
	}

	number, start, end := window(len(rows), p, filtering)
	page.Number = number
	page.PageCount = (len(rows) + p.PageSize - 1) / p.PageSize
	if end > start {
		page.Rows = rows[start:end]
	}
	for i := start; i < end; i++ {
		if i > start && rows[i-1].ID == rows[i].ID {
			page.Spans = append(page.Spans, 0)
			continue
		}
		page.Spans = append(page.Spans, RowSpan(rows, i, p, filtering))
	}
	return page
}
