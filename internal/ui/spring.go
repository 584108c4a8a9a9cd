package ui

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const settleEpsilon = 0.005

// springValue is a value eased toward target by a harmonica spring.
type springValue struct {
	pos    float64
	vel    float64
	target float64
}

func newSpringValue(value float64) springValue {
	return springValue{pos: value, target: value}
}

// step advances one frame. It returns false once the value has settled on its target.
func (v *springValue) step(spring harmonica.Spring) bool {
	v.pos, v.vel = spring.Update(v.pos, v.vel, v.target)
	if math.Abs(v.pos-v.target) < settleEpsilon && math.Abs(v.vel) < settleEpsilon {
		v.pos = v.target
		v.vel = 0

		return false
	}

	return true
}

// jump moves straight to value without easing.
func (v *springValue) jump(value float64) {
	v.pos = value
	v.target = value
	v.vel = 0
}

func (v *springValue) moving() bool {
	return v.pos != v.target || v.vel != 0
}

func newSpring(fps int, frequency float64, damping float64) harmonica.Spring {
	return harmonica.NewSpring(harmonica.FPS(max(fps, 1)), frequency, damping)
}
