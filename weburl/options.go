package weburl

// Options configures parser behavior.
type Options struct {
	// MaxInputBytes caps the accepted input length, for untrusted input.
	// Zero means no limit.
	MaxInputBytes int
}

// Option configures parser behavior using functional options.
type Option func(*Options)

func defaultOptions() Options {
	return Options{}
}

// OptMaxInputBytes sets the maximum input size limit. Inputs longer than
// maxBytes are rejected with ErrInputTooLong before any scanning.
func OptMaxInputBytes(maxBytes int) Option {
	return func(opts *Options) {
		opts.MaxInputBytes = maxBytes
	}
}
