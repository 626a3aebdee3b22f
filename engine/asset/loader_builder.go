package asset

// LoaderBuilderOption is a functional option for configuring a Loader.
type LoaderBuilderOption func(*loader)

// WithWorkers sets the number of decode workers.
// Values <= 0 are ignored and the default (NumCPU - 1, minimum 1) is kept.
//
// Parameters:
//   - n: number of workers
//
// Returns:
//   - LoaderBuilderOption: option function to apply
func WithWorkers(n int) LoaderBuilderOption {
	return func(l *loader) {
		if n > 0 {
			l.workers = n
		}
	}
}
