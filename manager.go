package gocuda

import (
	"sync"
	"sync/atomic"

	"github.com/gomlx/gocuda/cudart"
)

// MaxDevices is the maximum number of GPUs the layer recognizes. Device ids
// are always in [0, MaxDevices).
const MaxDevices = 8

// Manager answers device topology questions for one CUDA runtime: how many
// devices there are, their cached properties, the process default device and
// the thread-local current device.
//
// The default device follows a single-writer contract: it is set during
// single-threaded process setup and only read afterwards. The Manager does
// not lock around it.
type Manager struct {
	rt cudart.Runtime

	defaultDevice atomic.Int32

	// props caches one immutable snapshot per device, fetched on first use.
	propsMu sync.Mutex
	props   [MaxDevices]*cudart.DeviceProp

	clampWarning sync.Once
}

// New returns a Manager over the runtime the process was built with (see
// cudart.Default).
func New() *Manager {
	return NewWithRuntime(cudart.Default())
}

// NewWithRuntime returns a Manager over an explicit runtime binding. Tests
// use it to substitute a fake.
func NewWithRuntime(rt cudart.Runtime) *Manager {
	return &Manager{rt: rt}
}

var (
	defaultManager     *Manager
	defaultManagerOnce sync.Once
)

// Default returns the process-wide Manager, created lazily on first use and
// alive for the process lifetime.
func Default() *Manager {
	defaultManagerOnce.Do(func() {
		defaultManager = New()
	})
	return defaultManager
}

// SetDefaultDevice stores the process-wide fallback device id, used when an
// operation does not name a device explicitly. The id is not validated here;
// validation happens where it is used, so an id may be stored before the
// runtime reports the device as visible.
func (m *Manager) SetDefaultDevice(device int) {
	m.defaultDevice.Store(int32(device))
}

// DefaultDevice returns the stored fallback device id, 0 before the first
// SetDefaultDevice.
func (m *Manager) DefaultDevice() int {
	return int(m.defaultDevice.Load())
}
