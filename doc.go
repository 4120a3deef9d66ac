// Package container provides an ordered associative tree addressed by dot
// paths, with query, reshaping and set-algebra operations in the style of
// dynamic-language arrays.
//
// The package uses an internal package for implementation details:
//
//   - internal: ordered map, key normalization, dot-path parsing and
//     caching, loose comparison rules
//
// Persistence lives in a separate package:
//
//   - store: named containers kept in a bbolt database
//
// # Basic Usage
//
// Construct from JSON, a serialized blob, Go values or another container:
//
//	c, err := container.New(`{"name":"John","wife":{"name":"Jane"}}`)
//	c.Get("wife.name", "")       // "Jane"
//	c.Set("wife.hobby", "music") // creates missing levels
//	c.Forget("wife.hobby")
//	c.Has("wife.hobby")          // false
//
// Get never fails and returns the default for missing paths. Subscript
// access through OffsetGet fails with ErrOffsetNotFound instead.
//
// # Keys
//
// Keys are integers or strings. A string in canonical integer form ("7",
// but not "07" or "+7") is the integer key 7, both in paths and in input
// documents. Appends use one past the highest integer key ever used, so
// forgetting a list element leaves a gap until Reindex.
//
// # Queries
//
// Where runs conditions as a pipeline: each condition searches every depth
// of the previous result.
//
//	admins := c.Where(container.Cond("role", "admin"), container.Cond("active", true))
//
// Values compare loosely: "1" equals 1, nil equals "" and false.
//
// # Encoding
//
// JSON, YAML and a MessagePack-based serialized form all keep key order.
// List-like levels (keys 0..n-1 in order) encode as arrays, every other
// level as an object or map.
//
// # Configuration
//
// Options tune a container and every container derived from it:
//
//	c, err := container.New(data, container.WithPreserveKeys(true), container.WithMaxDepth(64))
//
// # Errors
//
// Failures are *ContainerError values wrapping one of the sentinel errors;
// test them with errors.Is:
//
//	if _, err := c.Chunk(10, false); errors.Is(err, container.ErrBadLength) { ... }
//
// A Container is not safe for concurrent mutation.
package container
