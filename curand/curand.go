// Package curand holds the cuRAND status enumeration and its translation to
// human-readable strings, used by the fatal-check contract in gocuda.
package curand

import "fmt"

// Status mirrors curandStatus_t. Values match the C enumeration.
type Status int

const (
	StatusSuccess                 Status = 0
	StatusVersionMismatch         Status = 100
	StatusNotInitialized          Status = 101
	StatusAllocationFailed        Status = 102
	StatusTypeError               Status = 103
	StatusOutOfRange              Status = 104
	StatusLengthNotMultiple       Status = 105
	StatusDoublePrecisionRequired Status = 106
	StatusLaunchFailure           Status = 201
	StatusPreexistingFailure      Status = 202
	StatusInitializationFailed    Status = 203
	StatusArchMismatch            Status = 204
	StatusInternalError           Status = 999
)

// String returns the cuRAND name of the status. It is total over int: codes
// outside the enumeration come back as a non-empty unknown-status string.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "CURAND_STATUS_SUCCESS"
	case StatusVersionMismatch:
		return "CURAND_STATUS_VERSION_MISMATCH"
	case StatusNotInitialized:
		return "CURAND_STATUS_NOT_INITIALIZED"
	case StatusAllocationFailed:
		return "CURAND_STATUS_ALLOCATION_FAILED"
	case StatusTypeError:
		return "CURAND_STATUS_TYPE_ERROR"
	case StatusOutOfRange:
		return "CURAND_STATUS_OUT_OF_RANGE"
	case StatusLengthNotMultiple:
		return "CURAND_STATUS_LENGTH_NOT_MULTIPLE"
	case StatusDoublePrecisionRequired:
		return "CURAND_STATUS_DOUBLE_PRECISION_REQUIRED"
	case StatusLaunchFailure:
		return "CURAND_STATUS_LAUNCH_FAILURE"
	case StatusPreexistingFailure:
		return "CURAND_STATUS_PREEXISTING_FAILURE"
	case StatusInitializationFailed:
		return "CURAND_STATUS_INITIALIZATION_FAILED"
	case StatusArchMismatch:
		return "CURAND_STATUS_ARCH_MISMATCH"
	case StatusInternalError:
		return "CURAND_STATUS_INTERNAL_ERROR"
	default:
		return fmt.Sprintf("unknown curand status (%d)", int(s))
	}
}
