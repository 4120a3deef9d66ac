package container

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/cybergodev/container/internal"
)

// FromFile creates a container from a file holding JSON, YAML (by .yaml or
// .yml extension) or a serialized blob.
func FromFile(filePath string, opts ...Option) (*Container, error) {
	cfg := buildConfig(opts)
	ctx := context.Background()

	if cfg.ValidateFilePath {
		if err := validateFilePath(filePath); err != nil {
			return nil, err
		}
	}

	info, err := os.Stat(filePath)
	if err != nil || !info.Mode().IsRegular() {
		return nil, newPathError("from_file", filePath, "path is not a readable file", ErrNotAFile)
	}
	if info.Size() > cfg.MaxFileSize {
		return nil, newPathError("from_file", filePath,
			fmt.Sprintf("file size %d exceeds limit %d", info.Size(), cfg.MaxFileSize), ErrBadLength)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, &ContainerError{
			Op:      "from_file",
			Path:    filePath,
			Message: "failed to read file",
			Err:     fmt.Errorf("%w: %v", ErrNotAFile, err),
		}
	}
	logDebug(ctx, "loaded container file", "from_file", filePath, slog.Int64("size", info.Size()))

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		c, err := FromYAML(data, WithConfig(cfg))
		if err != nil {
			return nil, newPathError("from_file", filePath, "file content is not a YAML array", ErrUnparsableContent)
		}
		return c, nil
	}

	if v, err := decodeJSON(data, cfg.MaxDepth); err == nil {
		if m, ok := v.(*internal.Map); ok {
			return newContainer(m, cfg), nil
		}
	}
	if IsSerialized(string(data)) {
		if v, err := decodeSerialized(data, cfg.MaxDepth); err == nil {
			if m, ok := v.(*internal.Map); ok {
				return newContainer(m, cfg), nil
			}
		}
	}

	return nil, newPathError("from_file", filePath, "file content is neither JSON nor serialized", ErrUnparsableContent)
}

// ToFile writes the tree as JSON to filePath. It reports false without an
// error when the target directory does not exist.
func (c *Container) ToFile(filePath string, opts ...EncodeOption) (bool, error) {
	ctx := context.Background()

	if c.config.ValidateFilePath {
		if err := validateFilePath(filePath); err != nil {
			return false, err
		}
	}

	dir := filepath.Dir(filePath)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		logDebug(ctx, "target directory does not exist", "to_file", filePath)
		return false, nil
	}

	raw, err := c.encodeJSON(c.encodeConfig(opts))
	if err != nil {
		return false, err
	}

	if err := os.WriteFile(filePath, raw, 0644); err != nil {
		werr := &ContainerError{
			Op:      "to_file",
			Path:    filePath,
			Message: "failed to write file",
			Err:     err,
		}
		logError(ctx, "to_file", filePath, werr)
		return false, werr
	}
	logDebug(ctx, "saved container file", "to_file", filePath, slog.Int("size", len(raw)))
	return true, nil
}

// validateFilePath rejects empty, oversized and traversing paths
func validateFilePath(filePath string) error {
	if filePath == "" {
		return newOperationError("validate_file_path", "file path cannot be empty", ErrBadArgument)
	}
	if strings.Contains(filePath, "\x00") {
		return newOperationError("validate_file_path", "null byte in path", ErrBadArgument)
	}
	if len(filePath) > MaxPathLength {
		return newOperationError("validate_file_path",
			fmt.Sprintf("path too long: %d > %d", len(filePath), MaxPathLength), ErrBadArgument)
	}
	if containsPathTraversal(filePath) {
		return newPathError("validate_file_path", filePath, "path traversal pattern detected", ErrBadArgument)
	}
	return nil
}

// containsPathTraversal checks for ".." segments after Unicode NFC
// normalization, including common encoded forms.
func containsPathTraversal(path string) bool {
	normalized := norm.NFC.String(path)

	for _, seg := range strings.FieldsFunc(normalized, func(r rune) bool { return r == '/' || r == '\\' }) {
		if seg == ".." {
			return true
		}
	}

	lowerPath := strings.ToLower(normalized)
	patterns := []string{
		"%2e%2e",     // URL encoded
		"%252e%252e", // Double URL encoded
		"..%2f",      // Mixed encoding
		"..%5c",      // Windows backslash encoded
		".%2e",       // Partial encoding
		"%2e.",       // Partial encoding variant
	}
	for _, pattern := range patterns {
		if strings.Contains(lowerPath, pattern) {
			return true
		}
	}
	return false
}
