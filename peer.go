package gocuda

import (
	"github.com/pkg/errors"

	"github.com/gomlx/gocuda/cudart"
)

// PeerAccessPattern computes the direct peer-access capability between every
// ordered pair of visible devices. The result is square with side
// DeviceCount(), rows and columns ordered by ascending device id, and entry
// [i][j] true iff device i can read and write device j's memory without
// staging through the host. The diagonal is always true.
//
// The matrix is computed fresh on each call and is advisory: unlike the rest
// of this layer a failing query is not fatal, it returns an error. Callers
// should then assume no peer access and fall back to staged copies -- a host
// without peer support must not crash the process over optimization data.
func (m *Manager) PeerAccessPattern() ([][]bool, error) {
	count := m.DeviceCount()
	pattern := make([][]bool, count)
	for i := range pattern {
		pattern[i] = make([]bool, count)
		pattern[i][i] = true
	}
	for i := 0; i < count; i++ {
		for j := 0; j < count; j++ {
			if i == j {
				continue
			}
			canAccess, status := m.rt.DeviceCanAccessPeer(i, j)
			if status != cudart.Success {
				return nil, errors.Errorf("peer access query from device %d to device %d failed: %s", i, j, status)
			}
			pattern[i][j] = canAccess
		}
	}
	return pattern, nil
}
