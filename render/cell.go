package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// Cell is one composited terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs tcell.AttrMask
}

// wideTail occupies the second column of a double-width rune
const wideTail rune = -1

// farDepth marks a cell nothing in the scene has claimed
var farDepth = math.Inf(1)

// Style converts the cell colors to a tcell style
func (c Cell) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(c.Fg.Color()).Background(c.Bg.Color()).Attributes(c.Attrs)
}
