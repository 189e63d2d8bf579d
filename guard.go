package gocuda

// DeviceGuard is a scoped switch of the calling thread's current device: it
// records the device that was current at construction, switches to the
// target, and Restore puts the previous device back. Guards on the same
// thread must be released in strict LIFO order, and the goroutine must stay
// pinned to its OS thread (runtime.LockOSThread) for the guard's lifetime,
// since the CUDA runtime tracks the current device per OS thread.
//
// Usage:
//
//	defer m.PushDevice(device).Restore()
type DeviceGuard struct {
	m        *Manager
	previous int
	restored bool
}

// PushDevice records the current device and switches to target. When target
// is already current no runtime switch is issued. A runtime failure is
// fatal.
func (m *Manager) PushDevice(target int) *DeviceGuard {
	g := &DeviceGuard{m: m, previous: m.CurrentDevice()}
	if g.previous != target {
		m.SetCurrentDevice(target)
	}
	return g
}

// Restore switches back to the device that was current when the guard was
// constructed, whatever the guarded section set in the meantime -- even a
// guard whose construction was a no-op restores, since the guarded code may
// have switched devices itself. It must run on every exit path: call it
// deferred. A failure to restore is fatal; after it the ambient device is
// ambiguous and unsafe to continue with. Restore is idempotent.
func (g *DeviceGuard) Restore() {
	if g.restored {
		return
	}
	g.restored = true
	g.m.SetCurrentDevice(g.previous)
}

// WithDevice runs fn with target as the current device and restores the
// previous device afterwards, including when fn panics.
func (m *Manager) WithDevice(target int, fn func()) {
	guard := m.PushDevice(target)
	defer guard.Restore()
	fn()
}
