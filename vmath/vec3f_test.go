package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3FBasics(t *testing.T) {
	a := Vec3F{1, 2, 3}
	b := Vec3F{4, -5, 6}

	assert.Equal(t, Vec3F{5, -3, 9}, V3FAdd(a, b))
	assert.Equal(t, Vec3F{-3, 7, -3}, V3FSub(a, b))
	assert.Equal(t, Vec3F{2, 4, 6}, V3FScale(a, 2))
	assert.Equal(t, 12.0, V3FDot(a, b))
	assert.Equal(t, Vec3F{27, 6, -13}, V3FCross(a, b))
	assert.Equal(t, 14.0, V3FMagSq(a))
}

func TestVec3FNormalize(t *testing.T) {
	n := V3FNormalize(Vec3F{3, 0, 4})
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Z, 1e-12)
	assert.InDelta(t, 1.0, V3FMag(n), 1e-12)

	assert.Equal(t, Vec3F{}, V3FNormalize(Vec3F{}))
}

func TestVec3FDistXZ(t *testing.T) {
	a := Vec3F{1, 100, 1}
	b := Vec3F{4, -50, 5}
	assert.Equal(t, 5.0, V3FDistXZ(a, b))
	assert.Greater(t, V3FDist(a, b), 150.0)
}

func TestVec3FReflectXZ(t *testing.T) {
	// Head-on into a +X facing surface
	v := V3FReflectXZ(Vec3F{-2, 1, 0}, 1, 0)
	assert.Equal(t, Vec3F{2, 1, 0}, v)

	// Oblique against a diagonal normal keeps speed
	s := math.Sqrt2 / 2
	in := Vec3F{-1, 0, 0}
	out := V3FReflectXZ(in, s, s)
	assert.InDelta(t, V3FMag(in), V3FMag(out), 1e-12)
	assert.InDelta(t, 0, out.X, 1e-12)
	assert.InDelta(t, 1, out.Z, 1e-12)
}

func TestVec3FLerp(t *testing.T) {
	assert.Equal(t, Vec3F{5, 5, 5}, V3FLerp(Vec3F{}, Vec3F{10, 10, 10}, 0.5))
	assert.Equal(t, Vec3F{X: 1, Z: 2}, V3FHorizontal(Vec3F{1, 9, 2}))
}

func TestScalarHelpers(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(5, -1, 1))
	assert.Equal(t, -1.0, Clamp(-5, -1, 1))
	assert.Equal(t, 0.5, Clamp(0.5, -1, 1))
	assert.Equal(t, 100, ClampInt(120, 0, 100))
	assert.Equal(t, -1.0, Sign(-3))
	assert.Equal(t, 0.0, Sign(0))
	assert.Equal(t, 2.5, Lerp(0, 10, 0.25))
	assert.True(t, ApproxEqual(0.1+0.2, 0.3, Epsilon))
	assert.InDelta(t, math.Pi/2, DegToRad(90), 1e-12)
}

func TestTraverse(t *testing.T) {
	var cells [][2]int
	Traverse(0.5, 0.5, 3.5, 0.5, func(x, y int) bool {
		cells = append(cells, [2]int{x, y})
		return true
	})
	assert.Equal(t, [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, cells)

	// Diagonal supercover reaches the target without gaps
	cells = cells[:0]
	Traverse(0.2, 0.7, 2.8, 2.1, func(x, y int) bool {
		cells = append(cells, [2]int{x, y})
		return true
	})
	assert.Equal(t, [2]int{0, 0}, cells[0])
	assert.Equal(t, [2]int{2, 2}, cells[len(cells)-1])
	for i := 1; i < len(cells); i++ {
		dx := cells[i][0] - cells[i-1][0]
		dy := cells[i][1] - cells[i-1][1]
		assert.LessOrEqual(t, dx*dx+dy*dy, 2)
	}

	// Early stop
	n := 0
	Traverse(0, 0, 10, 0, func(x, y int) bool {
		n++
		return n < 3
	})
	assert.Equal(t, 3, n)
}
