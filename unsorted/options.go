package unsorted

import "github.com/CarterSmith318/CarterSmithLab2DataStructures/log"

const DefaultCapacity = 100

type (
	listConfig struct {
		capacity int
		logger   log.Logger
	}

	Option func(lc *listConfig)
)

// WithCapacity sets the maximum number of elements the list may hold.
// Values below 1 are ignored.
func WithCapacity(n int) Option {
	return func(lc *listConfig) {
		if n > 0 {
			lc.capacity = n
		}
	}
}

// WithLogger routes capacity warnings to l instead of the global logger.
func WithLogger(l log.Logger) Option {
	return func(lc *listConfig) {
		lc.logger = l
	}
}
