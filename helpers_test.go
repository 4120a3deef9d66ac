package container

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// reporter is the part of *testing.T the helper uses. It has no FailNow, so
// a failed assertion inside a subtest never stops the parent test.
type reporter interface {
	Helper()
	Errorf(format string, args ...any)
}

// TestHelper provides utilities for testing container operations
type TestHelper struct {
	t reporter
}

// NewTestHelper creates a new test helper
func NewTestHelper(t *testing.T) *TestHelper {
	return &TestHelper{t: t}
}

// AssertEqual checks if two values are equal
func (h *TestHelper) AssertEqual(expected, actual any, msgAndArgs ...any) {
	h.t.Helper()
	assert.Equal(h.t, expected, actual, msgAndArgs...)
}

// AssertNoError checks that error is nil
func (h *TestHelper) AssertNoError(err error, msgAndArgs ...any) {
	h.t.Helper()
	assert.NoError(h.t, err, msgAndArgs...)
}

// AssertErrorIs checks that err wraps target
func (h *TestHelper) AssertErrorIs(err, target error, msgAndArgs ...any) {
	h.t.Helper()
	assert.ErrorIs(h.t, err, target, msgAndArgs...)
}

// AssertTrue checks that condition is true
func (h *TestHelper) AssertTrue(condition bool, msgAndArgs ...any) {
	h.t.Helper()
	assert.True(h.t, condition, msgAndArgs...)
}

// AssertFalse checks that condition is false
func (h *TestHelper) AssertFalse(condition bool, msgAndArgs ...any) {
	h.t.Helper()
	assert.False(h.t, condition, msgAndArgs...)
}

// AssertNil checks that value is nil
func (h *TestHelper) AssertNil(value any, msgAndArgs ...any) {
	h.t.Helper()
	assert.Nil(h.t, value, msgAndArgs...)
}

// AssertJSON checks the compact JSON form of c, key order included
func (h *TestHelper) AssertJSON(expected string, c *Container, msgAndArgs ...any) {
	h.t.Helper()
	if !assert.NotNil(h.t, c, msgAndArgs...) {
		return
	}
	actual, err := c.ToJSON()
	if !assert.NoError(h.t, err, msgAndArgs...) {
		return
	}
	assert.Equal(h.t, expected, actual, msgAndArgs...)
}

// MustContainer builds a container, reporting a failure and returning an
// empty container when input is rejected
func (h *TestHelper) MustContainer(input any, opts ...Option) *Container {
	h.t.Helper()
	c, err := New(input, opts...)
	if !assert.NoError(h.t, err, "input %v", input) {
		return MustNew(nil, opts...)
	}
	return c
}

type recordingReporter struct {
	failures []string
}

func (r *recordingReporter) Helper() {}

func (r *recordingReporter) Errorf(format string, args ...any) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func TestHelperFailuresDoNotStop(t *testing.T) {
	rec := &recordingReporter{}
	h := &TestHelper{t: rec}

	h.AssertJSON(`[]`, nil)
	if len(rec.failures) != 1 {
		t.Errorf("Expected 1 failure for a nil container, got %d", len(rec.failures))
	}

	c := h.MustContainer(42)
	if c == nil || !c.IsEmpty() {
		t.Errorf("Expected an empty container after a rejected input, got %v", c)
	}
	if len(rec.failures) != 2 {
		t.Errorf("Expected 2 failures, got %d", len(rec.failures))
	}
}
