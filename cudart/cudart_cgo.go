//go:build cuda && linux

package cudart

// This file is the real binding against libcudart. It is only built with the
// "cuda" tag, so the rest of the module stays buildable on machines without
// the CUDA toolkit installed.

// #cgo LDFLAGS: -lcudart
/*
#include <cuda_runtime.h>
*/
import "C"
import "unsafe"

type cudaRuntime struct{}

var defaultRuntime Runtime = cudaRuntime{}

func (cudaRuntime) GetDeviceCount() (int, Error) {
	var n C.int
	status := Error(C.cudaGetDeviceCount(&n))
	return int(n), status
}

func (cudaRuntime) GetDeviceProperties(device int) (*DeviceProp, Error) {
	var cProp C.struct_cudaDeviceProp
	if status := Error(C.cudaGetDeviceProperties(&cProp, C.int(device))); status != Success {
		return nil, status
	}
	prop := &DeviceProp{
		Name:                     C.GoString(&cProp.name[0]),
		Major:                    int(cProp.major),
		Minor:                    int(cProp.minor),
		TotalGlobalMem:           uint64(cProp.totalGlobalMem),
		TotalConstMem:            uint64(cProp.totalConstMem),
		SharedMemPerBlock:        uint64(cProp.sharedMemPerBlock),
		RegsPerBlock:             int(cProp.regsPerBlock),
		WarpSize:                 int(cProp.warpSize),
		MaxThreadsPerBlock:       int(cProp.maxThreadsPerBlock),
		ClockRateKHz:             int(cProp.clockRate),
		MemoryClockRateKHz:       int(cProp.memoryClockRate),
		MemoryBusWidthBits:       int(cProp.memoryBusWidth),
		MultiProcessorCount:      int(cProp.multiProcessorCount),
		KernelExecTimeoutEnabled: cProp.kernelExecTimeoutEnabled != 0,
		UnifiedAddressing:        cProp.unifiedAddressing != 0,
		ECCEnabled:               cProp.ECCEnabled != 0,
	}
	for i := 0; i < 3; i++ {
		prop.MaxThreadsDim[i] = int(cProp.maxThreadsDim[i])
		prop.MaxGridSize[i] = int(cProp.maxGridSize[i])
	}
	return prop, Success
}

func (cudaRuntime) GetDevice() (int, Error) {
	var device C.int
	status := Error(C.cudaGetDevice(&device))
	return int(device), status
}

func (cudaRuntime) SetDevice(device int) Error {
	return Error(C.cudaSetDevice(C.int(device)))
}

func (cudaRuntime) PointerDevice(ptr unsafe.Pointer) (int, Error) {
	var attrs C.struct_cudaPointerAttributes
	if status := Error(C.cudaPointerGetAttributes(&attrs, ptr)); status != Success {
		return -1, status
	}
	// Host and unregistered pointers are attributable but belong to no device.
	if attrs._type != C.cudaMemoryTypeDevice {
		return -1, ErrorInvalidDevicePointer
	}
	return int(attrs.device), Success
}

func (cudaRuntime) DeviceCanAccessPeer(device, peer int) (bool, Error) {
	var canAccess C.int
	status := Error(C.cudaDeviceCanAccessPeer(&canAccess, C.int(device), C.int(peer)))
	return canAccess != 0, status
}

func (cudaRuntime) DeviceEnablePeerAccess(peer int) Error {
	return Error(C.cudaDeviceEnablePeerAccess(C.int(peer), 0))
}

func (cudaRuntime) DriverVersion() (int, Error) {
	var version C.int
	status := Error(C.cudaDriverGetVersion(&version))
	return int(version), status
}

func (cudaRuntime) RuntimeVersion() (int, Error) {
	var version C.int
	status := Error(C.cudaRuntimeGetVersion(&version))
	return int(version), status
}
