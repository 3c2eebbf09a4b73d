package enc

// Options are the per-call settings of Encode, Decode and Validate. Every Encoding has its own
// defaults; the Option functions only override what they name.
type Options struct {
	// Padding appends pad characters up to the full block length on encode.
	Padding bool
	// PadChar is appended on encode and marks the end of data on decode.
	PadChar byte
	// Strict makes decoding fail on characters outside the alphabet. Lenient decoding skips them,
	// which can silently lose data.
	Strict bool
}

// Option modifies Options.
type Option func(*Options)

// WithPadding turns output padding on or off.
func WithPadding(padding bool) Option {
	return func(o *Options) {
		o.Padding = padding
	}
}

// WithPadChar changes the pad character. Choosing a character that is also an alphabet symbol
// makes that symbol act as end of data on decode.
func WithPadChar(c byte) Option {
	return func(o *Options) {
		o.PadChar = c
	}
}

// WithStrict selects strict (true) or lenient (false) decoding.
func WithStrict(strict bool) Option {
	return func(o *Options) {
		o.Strict = strict
	}
}

func (o Options) apply(opts []Option) Options {
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
