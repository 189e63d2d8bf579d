package gocuda

import (
	"github.com/x448/float16"

	"github.com/gomlx/gocuda/cudart"
)

// Native fp16 arithmetic requires compute capability 5.3 or newer.
const (
	halfMinMajor = 5
	halfMinMinor = 3
)

func supportsHalf(prop *cudart.DeviceProp) bool {
	return prop.Major > halfMinMajor ||
		(prop.Major == halfMinMajor && prop.Minor >= halfMinMinor)
}

// SupportsHalf reports whether the given device has native fp16 arithmetic.
// On devices without it, fp16 data must be widened on the host before
// dispatch (see HalfToFloat32s). An out-of-range id is a fatal error, as in
// Properties.
func (m *Manager) SupportsHalf(device int) bool {
	return supportsHalf(m.Properties(device))
}

// HalfToFloat32s widens fp16 values to float32, for staging half-precision
// data onto devices without native fp16 support.
func HalfToFloat32s(src []float16.Float16) []float32 {
	dst := make([]float32, len(src))
	for i, h := range src {
		dst[i] = h.Float32()
	}
	return dst
}

// Float32sToHalf narrows float32 values to fp16, rounding to nearest even.
func Float32sToHalf(src []float32) []float16.Float16 {
	dst := make([]float16.Float16, len(src))
	for i, f := range src {
		dst[i] = float16.Fromfloat32(f)
	}
	return dst
}
