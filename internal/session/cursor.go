package session

import "fmt"

// Cursor is an optional index into the current projection.
type Cursor struct {
	index int
	ok    bool
}

// None is the empty selection.
func None() Cursor { return Cursor{} }

// At selects row i. Negative indexes are treated as None.
func At(i int) Cursor {
	if i < 0 {
		return Cursor{}
	}
	return Cursor{index: i, ok: true}
}

// Index returns the selected row and whether there is one.
func (c Cursor) Index() (int, bool) { return c.index, c.ok }

func (c Cursor) IsNone() bool { return !c.ok }

func (c Cursor) String() string {
	if !c.ok {
		return "none"
	}
	return fmt.Sprintf("%d", c.index)
}

// Next advances with wraparound over n rows. From None it selects the first
// row; with no rows the cursor is returned unchanged.
func (c Cursor) Next(n int) Cursor {
	if n <= 0 {
		return c
	}
	if !c.ok || c.index >= n-1 {
		return At(0)
	}
	return At(c.index + 1)
}

// Prev moves back with wraparound over n rows. From None it selects the first
// row, matching Next.
func (c Cursor) Prev(n int) Cursor {
	if n <= 0 {
		return c
	}
	if !c.ok {
		return At(0)
	}
	if c.index == 0 || c.index > n-1 {
		return At(n - 1)
	}
	return At(c.index - 1)
}

// Clamp keeps the cursor inside n rows: None when n is zero, the last row
// when the index fell off the end, otherwise unchanged. None stays None.
func (c Cursor) Clamp(n int) Cursor {
	if !c.ok {
		return c
	}
	if n <= 0 {
		return None()
	}
	if c.index >= n {
		return At(n - 1)
	}
	return c
}
