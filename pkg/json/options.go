package json

// DefaultMaxDepth is the deepest nesting of objects and arrays that Encode
// and Decode accept unless WithMaxDepth says otherwise.
const DefaultMaxDepth = 512

// Config holds the settings applied by Encode and Decode.
type Config struct {
	// MaxDepth is the maximum number of nested objects and arrays.
	MaxDepth int
}

// Option changes the Config used for a single Encode or Decode call.
type Option func(*Config)

// WithMaxDepth sets the maximum nesting depth. Values below one restore
// DefaultMaxDepth.
func WithMaxDepth(depth int) Option {
	return func(c *Config) {
		if depth < 1 {
			depth = DefaultMaxDepth
		}
		c.MaxDepth = depth
	}
}

func newConfig(opts []Option) Config {
	c := Config{MaxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
