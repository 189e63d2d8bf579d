package gocuda

import (
	"k8s.io/klog/v2"

	"github.com/gomlx/gocuda/cublas"
	"github.com/gomlx/gocuda/cudart"
	"github.com/gomlx/gocuda/curand"
)

// A failing device-context operation usually means corrupted driver or
// process state, where continuing risks silently computing on the wrong
// device. The policy for those failures is uniform: translate the status,
// log it with the caller's source location and terminate the process. The
// one deliberate exception is Manager.PeerAccessPattern, which returns an
// error because peer-access information is optimization data.

// fatalf is the sink for unrecoverable failures. It is a variable so tests
// can observe the fatal path without terminating the test binary. Depth 1
// makes klog report the checking site rather than this closure.
var fatalf = func(format string, args ...any) {
	klog.FatalfDepth(1, format, args...)
}

// checkStatus is the single checking routine behind the per-subsystem Check
// functions: compare against the subsystem's success sentinel and route the
// translated status to the fatal sink.
func checkStatus[S comparable](status, success S, subsystem string, translate func(S) string) {
	if status == success {
		return
	}
	fatalf("%s error: %s", subsystem, translate(status))
}

// Check terminates the process when a CUDA runtime call did not succeed.
func Check(status cudart.Error) {
	checkStatus(status, cudart.Success, "CUDA runtime", cudart.Error.String)
}

// CheckBlas terminates the process when a cuBLAS call did not succeed.
func CheckBlas(status cublas.Status) {
	checkStatus(status, cublas.StatusSuccess, "cuBLAS", cublas.Status.String)
}

// CheckRand terminates the process when a cuRAND call did not succeed.
func CheckRand(status curand.Status) {
	checkStatus(status, curand.StatusSuccess, "cuRAND", curand.Status.String)
}
