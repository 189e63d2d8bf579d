package gocuda

// Shared test plumbing: a call-counting fake of cudart.Runtime and a hook to
// observe the fatal path without killing the test binary.

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/gomlx/gocuda/cudart"
)

// fakeRuntime implements cudart.Runtime in-process, counting calls so tests
// can assert on how the layer drives the runtime. The "current device" is a
// single value since tests are single-threaded.
type fakeRuntime struct {
	numDevices int
	current    int

	countCalls     int
	getDeviceCalls int
	setDeviceCalls int
	propCalls      map[int]int
	peerCalls      int

	// Non-success values below make the corresponding call fail.
	countStatus     cudart.Error
	setDeviceStatus cudart.Error
	peerStatus      cudart.Error

	peers    map[[2]int]bool
	pointers map[unsafe.Pointer]int
	props    map[int]*cudart.DeviceProp
}

var _ cudart.Runtime = (*fakeRuntime)(nil)

func newFakeRuntime(numDevices int) *fakeRuntime {
	return &fakeRuntime{
		numDevices: numDevices,
		propCalls:  make(map[int]int),
		peers:      make(map[[2]int]bool),
		pointers:   make(map[unsafe.Pointer]int),
		props:      make(map[int]*cudart.DeviceProp),
	}
}

func (f *fakeRuntime) GetDeviceCount() (int, cudart.Error) {
	f.countCalls++
	if f.countStatus != cudart.Success {
		return 0, f.countStatus
	}
	return f.numDevices, cudart.Success
}

func (f *fakeRuntime) GetDeviceProperties(device int) (*cudart.DeviceProp, cudart.Error) {
	f.propCalls[device]++
	if device < 0 || device >= f.numDevices {
		return nil, cudart.ErrorInvalidDevice
	}
	if prop, ok := f.props[device]; ok {
		clone := *prop
		return &clone, cudart.Success
	}
	// A fresh snapshot every call, so caching is observable upstream.
	return &cudart.DeviceProp{
		Name:                fmt.Sprintf("Fake GPU %d", device),
		Major:               7,
		Minor:               0,
		TotalGlobalMem:      16 << 30,
		TotalConstMem:       64 << 10,
		SharedMemPerBlock:   48 << 10,
		RegsPerBlock:        65536,
		WarpSize:            32,
		MaxThreadsPerBlock:  1024,
		MaxThreadsDim:       [3]int{1024, 1024, 64},
		MaxGridSize:         [3]int{2147483647, 65535, 65535},
		ClockRateKHz:        1380000,
		MemoryClockRateKHz:  877000,
		MemoryBusWidthBits:  4096,
		MultiProcessorCount: 80,
		UnifiedAddressing:   true,
	}, cudart.Success
}

func (f *fakeRuntime) GetDevice() (int, cudart.Error) {
	f.getDeviceCalls++
	return f.current, cudart.Success
}

func (f *fakeRuntime) SetDevice(device int) cudart.Error {
	f.setDeviceCalls++
	if f.setDeviceStatus != cudart.Success {
		return f.setDeviceStatus
	}
	if device < 0 || device >= f.numDevices {
		return cudart.ErrorInvalidDevice
	}
	f.current = device
	return cudart.Success
}

func (f *fakeRuntime) PointerDevice(ptr unsafe.Pointer) (int, cudart.Error) {
	device, ok := f.pointers[ptr]
	if !ok {
		return -1, cudart.ErrorInvalidDevicePointer
	}
	return device, cudart.Success
}

func (f *fakeRuntime) DeviceCanAccessPeer(device, peer int) (bool, cudart.Error) {
	f.peerCalls++
	if f.peerStatus != cudart.Success {
		return false, f.peerStatus
	}
	return f.peers[[2]int{device, peer}], cudart.Success
}

func (f *fakeRuntime) DeviceEnablePeerAccess(peer int) cudart.Error {
	if f.peers[[2]int{f.current, peer}] {
		return cudart.ErrorPeerAccessAlreadyEnabled
	}
	f.peers[[2]int{f.current, peer}] = true
	return cudart.Success
}

func (f *fakeRuntime) DriverVersion() (int, cudart.Error)  { return 12040, cudart.Success }
func (f *fakeRuntime) RuntimeVersion() (int, cudart.Error) { return 12040, cudart.Success }

// fatalCalled is the panic payload used by the test fatal sink, so tests can
// unwind out of the fatal path and inspect the message.
type fatalCalled struct{ msg string }

// interceptFatal redirects the fatal sink to panic(fatalCalled) for the
// duration of the test.
func interceptFatal(t *testing.T) {
	t.Helper()
	prev := fatalf
	fatalf = func(format string, args ...any) {
		panic(fatalCalled{msg: fmt.Sprintf(format, args...)})
	}
	t.Cleanup(func() { fatalf = prev })
}

// requireFatal runs fn and requires that it hits the fatal sink, returning
// the formatted message.
func requireFatal(t *testing.T, fn func()) string {
	t.Helper()
	interceptFatal(t)
	var msg string
	require.Panics(t, func() {
		defer func() {
			if r := recover(); r != nil {
				fc, ok := r.(fatalCalled)
				require.True(t, ok, "unexpected panic: %v", r)
				msg = fc.msg
				panic(r)
			}
		}()
		fn()
	})
	return msg
}
