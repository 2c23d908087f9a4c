package pager

import "testing"

func TestDisabledWithoutPageSize(t *testing.T) {
	p := Resolve(Config{Page: 3}, 10)
	if p.Mode() != Disabled || p.Page() != 1 || p.TotalPages() != 1 {
		t.Fatalf("expected disabled single page, got %v page=%d total=%d", p.Mode(), p.Page(), p.TotalPages())
	}
	if p.Enabled() {
		t.Fatalf("disabled pager must not navigate")
	}
	if s, e := p.Window(); s != 1 || e != 10 {
		t.Fatalf("disabled window must span all rows, got %d-%d", s, e)
	}
}

func TestDisabledWithoutPageOrState(t *testing.T) {
	if p := Resolve(Config{PageSize: 2}, 10); p.Mode() != Disabled {
		t.Fatalf("page size alone without a state handle must disable, got %v", p.Mode())
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct{ rows, size, total int }{
		{0, 2, 1},
		{1, 2, 1},
		{4, 2, 2},
		{5, 2, 3},
		{10, 1, 10},
	}
	for _, c := range cases {
		p := Resolve(Config{Page: 1, PageSize: c.size}, c.rows)
		if p.TotalPages() != c.total {
			t.Fatalf("rows=%d size=%d: total=%d, want %d", c.rows, c.size, p.TotalPages(), c.total)
		}
	}
}

func TestNavigateClamps(t *testing.T) {
	for req := -10; req <= 10; req++ {
		var got int
		p := Resolve(Config{Page: 2, PageSize: 2, OnChange: func(n int) { got = n }}, 10)
		got = p.Page()
		p.Go(req)
		if got < 1 || got > p.TotalPages() {
			t.Fatalf("Go(%d) reported page %d outside [1,%d]", req, got, p.TotalPages())
		}
	}
}

func TestResolveClampsStalePage(t *testing.T) {
	p := Resolve(Config{Page: 9, PageSize: 2}, 5)
	if p.Page() != 3 {
		t.Fatalf("expected stale page clamped to 3, got %d", p.Page())
	}
	if s, e := p.Window(); s != 5 || e != 5 {
		t.Fatalf("expected window 5-5, got %d-%d", s, e)
	}
}

func TestControlledNavigationPure(t *testing.T) {
	calls := 0
	last := 0
	p := Resolve(Config{Page: 1, PageSize: 2, OnChange: func(n int) { calls++; last = n }}, 10)

	p.Move(1)
	if calls != 1 || last != 2 {
		t.Fatalf("expected exactly one callback with page 2, got calls=%d last=%d", calls, last)
	}
	if p.Page() != 1 {
		t.Fatalf("controlled pager must not mutate its page, got %d", p.Page())
	}
	// Repeated triggers each report; the caller owns deduplication via the
	// page prop.
	p.Move(1)
	if calls != 2 || last != 2 {
		t.Fatalf("expected second callback with page 2, got calls=%d last=%d", calls, last)
	}
}

func TestControlledNoOpNavigation(t *testing.T) {
	calls := 0
	p := Resolve(Config{Page: 2, PageSize: 2, OnChange: func(int) { calls++ }}, 10)
	p.Go(2)
	p.Move(0)
	if calls != 0 {
		t.Fatalf("same-page navigation must not fire the callback, got %d calls", calls)
	}
}

func TestUncontrolledFirstMount(t *testing.T) {
	var st State
	p := Resolve(Config{PageSize: 2, State: &st}, 10)
	if p.Mode() != Uncontrolled || p.Page() != 1 {
		t.Fatalf("expected uncontrolled page 1, got %v page=%d", p.Mode(), p.Page())
	}
}

func TestUncontrolledNavigationMutatesState(t *testing.T) {
	var st State
	last := 0
	p := Resolve(Config{PageSize: 2, State: &st, OnChange: func(n int) { last = n }}, 10)

	p.Move(1)
	if st.Page() != 2 {
		t.Fatalf("expected state page 2, got %d", st.Page())
	}
	if last != 2 {
		t.Fatalf("expected observer callback with 2, got %d", last)
	}

	// The stored page survives the render boundary.
	p = Resolve(Config{PageSize: 2, State: &st}, 10)
	if p.Page() != 2 {
		t.Fatalf("expected page 2 after re-resolve, got %d", p.Page())
	}
}

func TestUncontrolledNoOpKeepsState(t *testing.T) {
	var st State
	calls := 0
	p := Resolve(Config{PageSize: 2, State: &st, OnChange: func(int) { calls++ }}, 10)
	p.Go(1)
	if calls != 0 || st.Page() != 1 {
		t.Fatalf("no-op must leave state untouched, calls=%d page=%d", calls, st.Page())
	}
}

// A page-size change between renders keeps the stored page and re-clamps it
// against the new total instead of resetting to 1.
func TestUncontrolledPageSizeChangeReclamps(t *testing.T) {
	var st State
	p := Resolve(Config{PageSize: 1, State: &st}, 10)
	p.Go(7)
	if st.Page() != 7 {
		t.Fatalf("expected page 7, got %d", st.Page())
	}

	p = Resolve(Config{PageSize: 5, State: &st}, 10)
	if p.Page() != 2 || st.Page() != 2 {
		t.Fatalf("expected page re-clamped to 2, got pager=%d state=%d", p.Page(), st.Page())
	}
}

func TestWindowSlicing(t *testing.T) {
	p := Resolve(Config{Page: 3, PageSize: 2}, 5)
	if s, e := p.Window(); s != 5 || e != 5 {
		t.Fatalf("expected last page window 5-5, got %d-%d", s, e)
	}
	p = Resolve(Config{Page: 1, PageSize: 2}, 5)
	if s, e := p.Window(); s != 1 || e != 2 {
		t.Fatalf("expected first page window 1-2, got %d-%d", s, e)
	}
}
