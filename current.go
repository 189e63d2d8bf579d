package gocuda

import (
	"unsafe"

	"k8s.io/klog/v2"

	"github.com/gomlx/gocuda/cudart"
)

// CurrentDevice returns the calling thread's current device. The current
// device is per OS thread in the CUDA runtime, so goroutines that care about
// it must be pinned with runtime.LockOSThread. A runtime failure is fatal.
func (m *Manager) CurrentDevice() int {
	device, status := m.rt.GetDevice()
	Check(status)
	return device
}

// SetCurrentDevice makes device the calling thread's current device. A
// runtime failure is fatal.
func (m *Manager) SetCurrentDevice(device int) {
	Check(m.rt.SetDevice(device))
}

// DeviceForPointer resolves which device's memory space ptr belongs to. The
// pointer must come from a device allocation: host memory, freed memory or a
// foreign allocation cannot be attributed and is a fatal error.
func (m *Manager) DeviceForPointer(ptr unsafe.Pointer) int {
	device, status := m.rt.PointerDevice(ptr)
	Check(status)
	return device
}

// EnablePeerAccess enables direct access from device from to device to's
// memory, switching the current device for the duration of the call. Peer
// access already being enabled is not an error; any other failure is fatal.
func (m *Manager) EnablePeerAccess(from, to int) {
	guard := m.PushDevice(from)
	defer guard.Restore()
	status := m.rt.DeviceEnablePeerAccess(to)
	if status == cudart.ErrorPeerAccessAlreadyEnabled {
		klog.V(2).Infof("peer access from device %d to %d already enabled", from, to)
		return
	}
	Check(status)
}
