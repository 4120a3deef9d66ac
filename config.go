package container

// Config holds the behavior switches shared by containers created from it
type Config struct {
	WherePreserveKeys bool   // Where keeps each match under its original key instead of appending
	MaxDepth          int    // Nesting limit when decoding or converting input
	MaxFileSize       int64  // Largest file FromFile will read
	JSONIndent        string // Indent used by pretty JSON output
	EscapeHTML        bool   // Escape <, > and & in JSON output
	ValidateFilePath  bool   // Reject traversal patterns in file paths
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		WherePreserveKeys: false,
		MaxDepth:          DefaultMaxDepth,
		MaxFileSize:       DefaultMaxFileSize,
		JSONIndent:        DefaultJSONIndent,
		EscapeHTML:        false,
		ValidateFilePath:  true,
	}
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	if c == nil {
		return DefaultConfig()
	}

	clone := *c
	return &clone
}

// Validate validates the configuration and applies corrections
func (c *Config) Validate() error {
	if c == nil {
		return newOperationError("validate_config", "config cannot be nil", ErrBadArgument)
	}

	switch {
	case c.MaxDepth <= 0:
		c.MaxDepth = DefaultMaxDepth
	case c.MaxDepth < MinMaxDepth:
		c.MaxDepth = MinMaxDepth
	case c.MaxDepth > MaxAllowedDepth:
		c.MaxDepth = MaxAllowedDepth
	}

	if c.MaxFileSize <= 0 {
		c.MaxFileSize = DefaultMaxFileSize
	}
	if c.JSONIndent == "" {
		c.JSONIndent = DefaultJSONIndent
	}

	return nil
}

// Option customizes the configuration of a new container
type Option func(*Config)

// WithConfig replaces the whole configuration
func WithConfig(cfg *Config) Option {
	return func(c *Config) {
		if cfg != nil {
			*c = *cfg
		}
	}
}

// WithPreserveKeys sets the default key policy of Where
func WithPreserveKeys(preserve bool) Option {
	return func(c *Config) { c.WherePreserveKeys = preserve }
}

// WithMaxDepth sets the nesting limit for decoding and conversion
func WithMaxDepth(depth int) Option {
	return func(c *Config) { c.MaxDepth = depth }
}

// WithMaxFileSize sets the largest file FromFile accepts
func WithMaxFileSize(size int64) Option {
	return func(c *Config) { c.MaxFileSize = size }
}

func buildConfig(opts []Option) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	_ = cfg.Validate()
	return cfg
}
