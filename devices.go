package gocuda

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
	"k8s.io/klog/v2"

	"github.com/gomlx/gocuda/cudart"
)

// DeviceCount returns the number of usable devices visible to the process.
// It queries the runtime on every call -- the count is cheap and device
// visibility can change if the runtime is reinitialized.
//
// "No device present" and "the query failed" both yield 0, so the framework
// can run CPU-only without a driver installed. Counts above MaxDevices are
// clamped, with a one-time warning.
func (m *Manager) DeviceCount() int {
	count, status := m.rt.GetDeviceCount()
	if status != cudart.Success {
		klog.V(1).Infof("cudaGetDeviceCount failed (%s), assuming no usable GPU", status)
		return 0
	}
	if count > MaxDevices {
		m.clampWarning.Do(func() {
			klog.Warningf("runtime reports %d devices but only ids below %d are supported; extra devices are ignored", count, MaxDevices)
		})
		count = MaxDevices
	}
	return count
}

// HasDevice reports whether at least one usable device is present.
func (m *Manager) HasDevice() bool {
	return m.DeviceCount() > 0
}

// Properties returns the static properties of the given device. The snapshot
// is fetched from the runtime on first access and cached for the process
// lifetime: every call returns the same value.
//
// An id outside [0, DeviceCount()) is a fatal error, never a zeroed result.
func (m *Manager) Properties(device int) *cudart.DeviceProp {
	count := m.DeviceCount()
	if device < 0 || device >= count {
		fatalf("device id %d out of range, %d device(s) visible", device, count)
		return nil
	}
	m.propsMu.Lock()
	defer m.propsMu.Unlock()
	if m.props[device] == nil {
		prop, status := m.rt.GetDeviceProperties(device)
		Check(status)
		m.props[device] = prop
	}
	return m.props[device]
}

// DeviceQuery logs a diagnostic report of the given device at info severity.
// Logging is its only side effect.
func (m *Manager) DeviceQuery(device int) {
	prop := m.Properties(device)
	var b strings.Builder
	fmt.Fprintf(&b, "device %d: %q\n", device, prop.Name)
	if version, status := m.rt.DriverVersion(); status == cudart.Success {
		fmt.Fprintf(&b, "  CUDA driver version: %d.%d\n", version/1000, version%100/10)
	}
	if version, status := m.rt.RuntimeVersion(); status == cudart.Success {
		fmt.Fprintf(&b, "  CUDA runtime version: %d.%d\n", version/1000, version%100/10)
	}
	fmt.Fprintf(&b, "  compute capability: %d.%d\n", prop.Major, prop.Minor)
	fmt.Fprintf(&b, "  native fp16 arithmetic: %v\n", supportsHalf(prop))
	fmt.Fprintf(&b, "  total global memory: %d bytes\n", prop.TotalGlobalMem)
	fmt.Fprintf(&b, "  total constant memory: %d bytes\n", prop.TotalConstMem)
	fmt.Fprintf(&b, "  shared memory per block: %d bytes\n", prop.SharedMemPerBlock)
	fmt.Fprintf(&b, "  registers per block: %d\n", prop.RegsPerBlock)
	fmt.Fprintf(&b, "  warp size: %d\n", prop.WarpSize)
	fmt.Fprintf(&b, "  multiprocessor count: %d\n", prop.MultiProcessorCount)
	fmt.Fprintf(&b, "  max threads per block: %d\n", prop.MaxThreadsPerBlock)
	fmt.Fprintf(&b, "  max block dims: %d x %d x %d\n",
		prop.MaxThreadsDim[0], prop.MaxThreadsDim[1], prop.MaxThreadsDim[2])
	fmt.Fprintf(&b, "  max grid dims: %d x %d x %d\n",
		prop.MaxGridSize[0], prop.MaxGridSize[1], prop.MaxGridSize[2])
	fmt.Fprintf(&b, "  clock rate: %d kHz\n", prop.ClockRateKHz)
	fmt.Fprintf(&b, "  memory clock rate: %d kHz\n", prop.MemoryClockRateKHz)
	fmt.Fprintf(&b, "  memory bus width: %d bits\n", prop.MemoryBusWidthBits)
	fmt.Fprintf(&b, "  peak memory bandwidth: %g GB/s\n", PeakMemoryBandwidthGBs(prop))
	fmt.Fprintf(&b, "  ECC enabled: %v\n", prop.ECCEnabled)
	fmt.Fprintf(&b, "  unified addressing: %v\n", prop.UnifiedAddressing)
	fmt.Fprintf(&b, "  kernel execution timeout: %v", prop.KernelExecTimeoutEnabled)
	klog.Info(b.String())
}

// PeakMemoryBandwidthGBs derives the theoretical peak memory bandwidth of a
// device from its memory clock and bus width, rounded to whole GB/s. DDR
// memory transfers twice per clock.
func PeakMemoryBandwidthGBs(prop *cudart.DeviceProp) float32 {
	bytesPerTransfer := float32(prop.MemoryBusWidthBits) / 8
	return math32.Round(2 * float32(prop.MemoryClockRateKHz) * bytesPerTransfer / 1e6)
}
