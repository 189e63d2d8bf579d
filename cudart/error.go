package cudart

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error mirrors cudaError_t. The zero value is Success.
type Error int

// The runtime status codes this layer distinguishes. Values match the CUDA
// runtime enumeration.
const (
	Success                       Error = 0
	ErrorInvalidValue             Error = 1
	ErrorMemoryAllocation         Error = 2
	ErrorInitializationError      Error = 3
	ErrorInvalidPitchValue        Error = 12
	ErrorInvalidDevicePointer     Error = 17
	ErrorInsufficientDriver       Error = 35
	ErrorNoDevice                 Error = 100
	ErrorInvalidDevice            Error = 101
	ErrorPeerAccessAlreadyEnabled Error = 704
	ErrorPeerAccessNotEnabled     Error = 705
	ErrorNotSupported             Error = 801
	ErrorUnknown                  Error = 999
)

// String returns the runtime's human-readable description of the status. It
// is total: codes outside the enumeration format as "unknown CUDA error (N)".
func (e Error) String() string {
	switch e {
	case Success:
		return "no error"
	case ErrorInvalidValue:
		return "invalid argument"
	case ErrorMemoryAllocation:
		return "out of memory"
	case ErrorInitializationError:
		return "initialization error"
	case ErrorInvalidPitchValue:
		return "invalid pitch argument"
	case ErrorInvalidDevicePointer:
		return "invalid device pointer"
	case ErrorInsufficientDriver:
		return "CUDA driver version is insufficient for CUDA runtime version"
	case ErrorNoDevice:
		return "no CUDA-capable device is detected"
	case ErrorInvalidDevice:
		return "invalid device ordinal"
	case ErrorPeerAccessAlreadyEnabled:
		return "peer access is already enabled"
	case ErrorPeerAccessNotEnabled:
		return "peer access has not been enabled"
	case ErrorNotSupported:
		return "operation not supported"
	case ErrorUnknown:
		return "unknown error"
	default:
		return fmt.Sprintf("unknown CUDA error (%d)", int(e))
	}
}

// Err converts the status to a Go error with a stack trace, or nil on
// Success.
func (e Error) Err() error {
	if e == Success {
		return nil
	}
	return errors.Errorf("CUDA runtime error (code=%d): %s", int(e), e)
}
