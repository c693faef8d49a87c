package logic

// Grid handles navigation and viewport management over a grid of cards
type Grid struct {
	Columns     int // cards per row
	VisibleRows int // card rows that fit on screen
}

// ColumnsFor returns how many cards of cardWidth fit into width.
// A positive override wins.
func ColumnsFor(width, cardWidth, override int) int {
	if override > 0 {
		return override
	}
	if cardWidth <= 0 || width < cardWidth {
		return 1
	}
	return width / cardWidth
}

// RowsFor returns how many cards of cardHeight fit into height, at least one
func RowsFor(height, cardHeight int) int {
	if cardHeight <= 0 || height < cardHeight {
		return 1
	}
	return height / cardHeight
}

func (g Grid) columns() int {
	if g.Columns < 1 {
		return 1
	}
	return g.Columns
}

func (g Grid) rows() int {
	if g.VisibleRows < 1 {
		return 1
	}
	return g.VisibleRows
}

// Row returns the row of the card at index
func (g Grid) Row(index int) int {
	return index / g.columns()
}

// Move returns the index reached from index by moving in direction.
// Directions: up, down, left, right, pageup, pagedown, home, end.
func (g Grid) Move(index, total int, direction string) int {
	if total <= 0 {
		return 0
	}
	cols := g.columns()
	page := g.rows() * cols

	next := index
	switch direction {
	case "up":
		if index-cols >= 0 {
			next = index - cols
		}
	case "down":
		if index+cols < total {
			next = index + cols
		} else if g.Row(index) < g.Row(total-1) {
			// Partial last row: land on its last card
			next = total - 1
		}
	case "left":
		if index%cols > 0 {
			next = index - 1
		}
	case "right":
		if index%cols < cols-1 && index+1 < total {
			next = index + 1
		}
	case "pageup":
		next = index - page
	case "pagedown":
		next = index + page
	case "home":
		next = 0
	case "end":
		next = total - 1
	}

	return clamp(next, 0, total-1)
}

// Scroll returns the viewport row that keeps index visible, starting from offsetRow
func (g Grid) Scroll(index, offsetRow int) int {
	row := g.Row(index)
	if row < offsetRow {
		return row
	}
	if row >= offsetRow+g.rows() {
		return row - g.rows() + 1
	}
	return offsetRow
}

// Window returns the [start, end) card indices shown for offsetRow
func (g Grid) Window(offsetRow, total int) (int, int) {
	start := clamp(offsetRow*g.columns(), 0, total)
	end := clamp(start+g.rows()*g.columns(), 0, total)
	return start, end
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
