package container

const (
	// Limits
	DefaultMaxDepth    = 512
	MinMaxDepth        = 16
	MaxAllowedDepth    = 10000
	DefaultMaxFileSize = 100 * 1024 * 1024
	MaxPathLength      = 4096

	// Encoding
	DefaultJSONIndent = "  "

	// Store
	DefaultBucketName = "containers"
)

// CombineMode selects which side of Combine supplies the keys
type CombineMode string

const (
	// CombineKeys uses the argument as keys and the receiver as values
	CombineKeys CombineMode = "keys"
	// CombineValues uses the receiver as keys and the argument as values
	CombineValues CombineMode = "values"
)
