// Package gocuda is the accelerator device management layer used by the
// framework: it answers which device is current, which device owns a memory
// address, and which device pairs can exchange data directly, and it defines
// the fatal-on-error contract for calls into the CUDA runtime, cuBLAS and
// cuRAND.
//
// The entry point is the Manager: typically the process-wide one from
// Default(), built over the runtime binding in the cudart subpackage. Higher
// layers query DeviceCount/Properties at startup, pick a device with
// DefaultDevice/CurrentDevice, wrap device-affine sections in a DeviceGuard
// (or WithDevice), and size 1-D launches with GetBlocks.
//
// This layer does not allocate device memory, queue work or provide kernels.
package gocuda
