//go:build !cuda || !linux

package cudart

// Stub runtime for builds without the CUDA toolkit: it behaves like a machine
// with the runtime installed but no GPU, so callers see zero devices rather
// than a build failure.

import "unsafe"

type stubRuntime struct{}

var defaultRuntime Runtime = stubRuntime{}

func (stubRuntime) GetDeviceCount() (int, Error) { return 0, ErrorNoDevice }

func (stubRuntime) GetDeviceProperties(device int) (*DeviceProp, Error) {
	return nil, ErrorNoDevice
}

func (stubRuntime) GetDevice() (int, Error) { return -1, ErrorNoDevice }

func (stubRuntime) SetDevice(device int) Error { return ErrorNoDevice }

func (stubRuntime) PointerDevice(ptr unsafe.Pointer) (int, Error) {
	return -1, ErrorNoDevice
}

func (stubRuntime) DeviceCanAccessPeer(device, peer int) (bool, Error) {
	return false, ErrorNoDevice
}

func (stubRuntime) DeviceEnablePeerAccess(peer int) Error { return ErrorNoDevice }

func (stubRuntime) DriverVersion() (int, Error) { return 0, ErrorNoDevice }

func (stubRuntime) RuntimeVersion() (int, Error) { return 0, ErrorNoDevice }
