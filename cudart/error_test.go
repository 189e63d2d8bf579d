package cudart

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorStringTotal(t *testing.T) {
	known := []Error{
		Success, ErrorInvalidValue, ErrorMemoryAllocation,
		ErrorInitializationError, ErrorInvalidPitchValue,
		ErrorInvalidDevicePointer, ErrorInsufficientDriver, ErrorNoDevice,
		ErrorInvalidDevice, ErrorPeerAccessAlreadyEnabled,
		ErrorPeerAccessNotEnabled, ErrorNotSupported, ErrorUnknown,
	}
	for _, e := range known {
		require.NotEmpty(t, e.String())
	}

	// Codes outside the enumeration still translate.
	require.Equal(t, "unknown CUDA error (12345)", Error(12345).String())
}

func TestErrorErr(t *testing.T) {
	require.NoError(t, Success.Err())

	err := ErrorNoDevice.Err()
	require.Error(t, err)
	require.ErrorContains(t, err, "no CUDA-capable device is detected")
	require.ErrorContains(t, err, "code=100")
}
