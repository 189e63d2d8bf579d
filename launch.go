package gocuda

// Default 1-D launch sizing for kernels that are not individually tuned.
// Anything performance critical should pick its own block and grid sizes.
const (
	// NumThreads is the number of threads per block used by the default
	// launch configuration. 512 works across every supported compute
	// capability; with a warp size of 32, larger blocks rarely help an
	// untuned kernel.
	NumThreads = 512

	// MaxBlocks caps the grid size of the default launch configuration,
	// within the grid limits of every supported compute capability.
	MaxBlocks = 4096
)

// GetBlocks returns the number of blocks needed for n threads under the
// default launch configuration: ceil(n/NumThreads), capped at MaxBlocks.
// n of 0 yields 0 blocks; callers launch nothing for empty input.
func GetBlocks(n int) int {
	blocks := (n + NumThreads - 1) / NumThreads
	if blocks > MaxBlocks {
		blocks = MaxBlocks
	}
	return blocks
}
