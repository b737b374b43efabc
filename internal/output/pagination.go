package output

import (
	"strconv"
	"strings"
)

// DefaultPerPage is the page size used when none (or garbage) is given.
const DefaultPerPage = 10

// PlaceholderCell is rendered as the single row of an empty table.
const PlaceholderCell = "—"

// TableState is the pager position of a tabular view.
type TableState struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

// NewTableState starts on page 1 with the given page size.
func NewTableState(perPage int) TableState {
	s := TableState{Page: 1}
	s.SetPerPage(perPage)
	return s
}

// SetPerPage changes the page size (minimum 1) and resets to the first page.
func (s *TableState) SetPerPage(n int) {
	if n < 1 {
		n = 1
	}
	s.PerPage = n
	s.Page = 1
}

// Next moves one page forward. Paginate clamps overshoots.
func (s *TableState) Next() { s.Page++ }

// Prev moves one page back. Paginate clamps undershoots.
func (s *TableState) Prev() { s.Page-- }

// ParsePerPage reads a page-size selector value: garbage means DefaultPerPage,
// anything below 1 means 1.
func ParsePerPage(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return DefaultPerPage
	}
	if n < 1 {
		return 1
	}
	return n
}

// TotalPages returns max(1, ceil(totalRows/perPage)).
func TotalPages(totalRows, perPage int) int {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if totalRows <= 0 {
		return 1
	}
	return (totalRows + perPage - 1) / perPage
}

// Page is one slice of table rows together with pager state.
type Page struct {
	Rows       []TableRow `json:"rows"`
	Page       int        `json:"page"`
	PerPage    int        `json:"per_page"`
	TotalPages int        `json:"total_pages"`
	TotalRows  int        `json:"total_rows"`
	HasPrev    bool       `json:"has_prev"`
	HasNext    bool       `json:"has_next"`
}

// Empty reports whether the page has no rows; renderers show one placeholder row.
func (p Page) Empty() bool { return len(p.Rows) == 0 }

// Info renders the pager caption, e.g. "Página 2 de 3".
func (p Page) Info() string {
	return "Página " + intToString(p.Page) + " de " + intToString(p.TotalPages)
}

// Paginate cuts rows (months 1..N) into the page selected by state. The
// requested page is clamped into [1, TotalPages]; an empty row set yields a
// single empty page.
func Paginate(rows []TableRow, state TableState) Page {
	perPage := state.PerPage
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	total := len(rows)
	totalPages := TotalPages(total, perPage)

	page := state.Page
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	p := Page{
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
		TotalRows:  total,
	}
	if total == 0 {
		return p
	}

	start := (page - 1) * perPage
	end := start + perPage
	if end > total {
		end = total
	}
	p.Rows = rows[start:end]
	p.HasPrev = page > 1
	p.HasNext = page < totalPages
	return p
}
