package render

import (
	"github.com/gdamore/tcell/v2"
)

// RenderBuffer is a compositor with dirty tracking and a per-cell depth buffer
// Scene renderers test depth; HUD writes ignore it
type RenderBuffer struct {
	cells   []Cell
	depth   []float64
	touched []bool
	width   int
	height  int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.depth = make([]float64, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.depth = b.depth[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: RgbHUDText, Bg: RgbBackground}
	b.depth[0] = farDepth
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
		copy(b.depth[filled:], b.depth[:filled])
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// Bounds returns the buffer dimensions
func (b *RenderBuffer) Bounds() (int, int) {
	return b.width, b.height
}

// inBounds returns true if in screen bounds
func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y); out of bounds yields a zero cell
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Depth returns the nearest depth written at (x, y)
func (b *RenderBuffer) Depth(x, y int) float64 {
	if !b.inBounds(x, y) {
		return farDepth
	}
	return b.depth[y*b.width+x]
}

// ===== COMPOSITOR API =====

// Set composites a cell with specified blend mode, ignoring depth
func (b *RenderBuffer) Set(x, y int, mainRune rune, fg, bg RGB, mode BlendMode, alpha float64, attrs tcell.AttrMask) {
	if !b.inBounds(x, y) {
		return
	}
	b.compose(y*b.width+x, mainRune, fg, bg, mode, alpha, attrs)
}

// SetDepth composites only if depth is not behind what the cell already holds
// Opaque writes (replace or full alpha background) claim the cell's depth
func (b *RenderBuffer) SetDepth(x, y int, depth float64, mainRune rune, fg, bg RGB, mode BlendMode, alpha float64, attrs tcell.AttrMask) bool {
	if !b.inBounds(x, y) {
		return false
	}
	idx := y*b.width + x
	if depth > b.depth[idx] {
		return false
	}
	b.compose(idx, mainRune, fg, bg, mode, alpha, attrs)
	if uint8(mode)&flagBg != 0 && (uint8(mode)&0x0F == opReplace || alpha >= 1.0) {
		b.depth[idx] = depth
	}
	return true
}

func (b *RenderBuffer) compose(idx int, mainRune rune, fg, bg RGB, mode BlendMode, alpha float64, attrs tcell.AttrMask) {
	dst := &b.cells[idx]
	flags := uint8(mode) & 0xF0

	if mainRune != 0 {
		dst.Rune = mainRune
		dst.Attrs = attrs
	}
	if flags&flagBg != 0 {
		dst.Bg = mode.apply(dst.Bg, bg, alpha)
		b.touched[idx] = true
	}
	if flags&flagFg != 0 {
		dst.Fg = mode.apply(dst.Fg, fg, alpha)
	}
}

// SetFgOnly writes rune, foreground, and attrs while preserving existing background
func (b *RenderBuffer) SetFgOnly(x, y int, r rune, fg RGB, attrs tcell.AttrMask) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
	dst.Attrs = attrs
}

// SetWithBg writes a cell with explicit fg and bg colors (opaque replace)
func (b *RenderBuffer) SetWithBg(x, y int, r rune, fg, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx] = Cell{Rune: r, Fg: fg, Bg: bg}
	b.touched[idx] = true
}

// FillRect paints an opaque rectangle, clipped to the buffer
func (b *RenderBuffer) FillRect(x, y, w, h int, bg RGB) {
	for row := max(y, 0); row < min(y+h, b.height); row++ {
		for col := max(x, 0); col < min(x+w, b.width); col++ {
			b.SetWithBg(col, row, ' ', RgbHUDText, bg)
		}
	}
}

// ===== OUTPUT =====

// finalize sets default background to untouched cells before Flush
func (b *RenderBuffer) finalize() {
	for i := range b.cells {
		if !b.touched[i] {
			b.cells[i].Bg = RgbBackground
		}
	}
}

// FlushToScreen writes the buffer to the screen; the caller calls Show
func (b *RenderBuffer) FlushToScreen(screen tcell.Screen) {
	b.finalize()
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x := range row {
			c := row[x]
			r := c.Rune
			if r == wideTail {
				continue
			}
			if r == 0 {
				r = ' '
			}
			screen.SetContent(x, y, r, nil, c.Style())
		}
	}
}
