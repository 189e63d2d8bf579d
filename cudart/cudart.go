// Package cudart is a thin binding to the slice of the CUDA runtime API that
// the device management layer consumes: device enumeration and properties,
// the thread-local current device, pointer attribution and peer access
// queries.
//
// The binding is expressed as the Runtime interface so that higher layers can
// be exercised against a fake in tests, and so that builds without the CUDA
// toolkit degrade to a stub that reports zero devices. The real cgo binding
// against libcudart is selected with the "cuda" build tag on linux; see
// Default.
//
// All calls return an Error status the way the C API does. Deciding whether a
// non-success status is fatal belongs to the caller -- this package never
// terminates the process.
package cudart

import "unsafe"

// DeviceProp is a snapshot of one device's static capabilities and limits,
// the subset of cudaDeviceProp the framework cares about. Devices do not
// change capability at runtime, so a DeviceProp fetched once stays valid for
// the process lifetime.
type DeviceProp struct {
	// Name identifies the device model, e.g. "NVIDIA A100-SXM4-40GB".
	Name string

	// Major and Minor are the CUDA compute capability.
	Major, Minor int

	TotalGlobalMem    uint64
	TotalConstMem     uint64
	SharedMemPerBlock uint64
	RegsPerBlock      int

	WarpSize           int
	MaxThreadsPerBlock int
	MaxThreadsDim      [3]int
	MaxGridSize        [3]int

	// ClockRateKHz and MemoryClockRateKHz are peak clock frequencies in kHz.
	ClockRateKHz       int
	MemoryClockRateKHz int
	MemoryBusWidthBits int

	MultiProcessorCount int

	KernelExecTimeoutEnabled bool
	UnifiedAddressing        bool
	ECCEnabled               bool
}

// Runtime is the CUDA runtime API surface used by the device management
// layer. The current device is per OS thread, as in the C API.
type Runtime interface {
	// GetDeviceCount returns the number of devices with compute capability
	// visible to the process.
	GetDeviceCount() (int, Error)

	// GetDeviceProperties fetches the static properties of the given device.
	GetDeviceProperties(device int) (*DeviceProp, Error)

	// GetDevice returns the calling thread's current device.
	GetDevice() (int, Error)

	// SetDevice makes device the calling thread's current device.
	SetDevice(device int) Error

	// PointerDevice resolves the device owning a device-memory address. Host
	// memory, freed memory and foreign allocations fail with a non-success
	// status.
	PointerDevice(ptr unsafe.Pointer) (int, Error)

	// DeviceCanAccessPeer reports whether device can directly address peer's
	// memory.
	DeviceCanAccessPeer(device, peer int) (bool, Error)

	// DeviceEnablePeerAccess enables direct access from the calling thread's
	// current device to peer's memory.
	DeviceEnablePeerAccess(peer int) Error

	// DriverVersion and RuntimeVersion return the installed CUDA driver and
	// runtime versions, encoded as major*1000 + minor*10.
	DriverVersion() (int, Error)
	RuntimeVersion() (int, Error)
}

// Default returns the Runtime the process was built with: the libcudart
// binding when built with the "cuda" tag on linux, otherwise a stub that
// reports no devices.
func Default() Runtime { return defaultRuntime }
