// Package pager holds the pagination state machine behind paginated tables.
// Pagination runs in one of two modes. Controlled: the caller supplies the
// current page on every render and owns it; navigation only reports the
// target page through a callback. Uncontrolled: the component owns the page
// in a State handle that outlives individual renders. The mode is resolved
// once per render, never mid-algorithm.
package pager

// Mode identifies who owns the current page.
type Mode int

const (
	Disabled Mode = iota
	Controlled
	Uncontrolled
)

func (m Mode) String() string {
	switch m {
	case Controlled:
		return "controlled"
	case Uncontrolled:
		return "uncontrolled"
	}
	return "disabled"
}

// State is the page store for uncontrolled mode, owned by one component
// instance across renders. The zero value means "not yet mounted" and
// resolves to page 1.
type State struct {
	page int
}

// Page returns the stored page, or 1 before the first resolve.
func (s *State) Page() int {
	if s == nil || s.page < 1 {
		return 1
	}
	return s.page
}

// Config is the caller-facing pagination input for one render.
type Config struct {
	// Page, when > 0, is the caller-owned current page: controlled mode.
	Page int
	// PageSize is rows per page. Zero or negative disables pagination.
	PageSize int
	// State enables uncontrolled mode when Page is absent.
	State *State
	// OnChange observes navigation. In controlled mode it is the only
	// effect navigation has; in uncontrolled mode it fires after the
	// stored page moves.
	OnChange func(page int)
}

// Pager is the resolved pagination for one render.
type Pager struct {
	mode     Mode
	page     int
	size     int
	total    int
	rows     int
	state    *State
	onChange func(int)
}

// Resolve decides the mode and clamps the current page against the row
// count. Stale pages (rows shrank, page size changed between renders) are
// re-clamped here, on every render, so an out-of-range page never produces
// an empty window. In uncontrolled mode the stored page survives a page-size
// change and is only clamped to the new total, not reset to 1.
func Resolve(cfg Config, rows int) *Pager {
	p := &Pager{mode: Disabled, page: 1, total: 1, rows: rows}
	if cfg.PageSize <= 0 {
		return p
	}
	p.size = cfg.PageSize
	p.total = (rows + cfg.PageSize - 1) / cfg.PageSize
	if p.total < 1 {
		p.total = 1
	}

	switch {
	case cfg.Page > 0:
		p.mode = Controlled
		p.page = clamp(cfg.Page, p.total)
	case cfg.State != nil:
		p.mode = Uncontrolled
		p.state = cfg.State
		p.page = clamp(cfg.State.Page(), p.total)
		cfg.State.page = p.page
	default:
		return p
	}
	p.onChange = cfg.OnChange
	return p
}

func clamp(page, total int) int {
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}

func (p *Pager) Mode() Mode      { return p.mode }
func (p *Pager) Page() int       { return p.page }
func (p *Pager) TotalPages() int { return p.total }
func (p *Pager) PageSize() int   { return p.size }

// Enabled reports whether more than one page exists and navigation applies.
func (p *Pager) Enabled() bool { return p.mode != Disabled && p.total > 1 }

// Window returns the 1-indexed inclusive row range of the current page.
// With pagination disabled it spans all rows. An empty row set yields (1, 0).
func (p *Pager) Window() (start, end int) {
	if p.mode == Disabled || p.size <= 0 {
		return 1, p.rows
	}
	start = (p.page-1)*p.size + 1
	end = p.page * p.size
	if end > p.rows {
		end = p.rows
	}
	return start, end
}

// Move navigates by a relative delta (forward +1, backward -1).
func (p *Pager) Move(delta int) { p.Go(p.page + delta) }

// Go navigates to an absolute page, clamped to [1, total]. Requesting the
// current page is a no-op: nothing mutates and no callback fires. In
// controlled mode Go mutates nothing at all; it only reports the target page
// through the callback and relies on the caller to re-render with the new
// page. In uncontrolled mode the stored page moves and the callback, when
// registered, fires as well. Each call re-reads the live state so intents
// delivered out of order remain well defined.
func (p *Pager) Go(page int) {
	if p.mode == Disabled {
		return
	}
	current := p.page
	if p.mode == Uncontrolled {
		current = clamp(p.state.Page(), p.total)
	}
	target := clamp(page, p.total)
	if target == current {
		return
	}
	if p.mode == Uncontrolled {
		p.state.page = target
		p.page = target
	}
	if p.onChange != nil {
		p.onChange(target)
	}
}
