package main

import (
	"github.com/chewxy/math32"

	"github.com/tinyrange/dxbridge/internal/dx"
)

const cameraRadius = 512

var cameraUp = dx.NewVector(0, 0, 1)

// orbit returns the eye position for a tick: one degree of yaw per tick
// while the pitch sweeps -45..45 degrees every 91 ticks.
func orbit(tick int, r float32) dx.Vector {
	yaw := float32(tick) * math32.Pi / 180
	pitch := float32(tick%91-45) * math32.Pi / 180
	rc := r * math32.Cos(pitch)
	rs := r * math32.Sin(pitch)
	return dx.NewVector(rc*math32.Cos(yaw), rc*math32.Sin(yaw), rs)
}
