package container

import (
	"errors"
	"strings"
	"testing"
)

func TestOffsetAccess(t *testing.T) {
	helper := NewTestHelper(t)

	t.Run("MissingOffsetFails", func(t *testing.T) {
		c := helper.MustContainer(`{"a":{"b":1},"list":[1,2]}`)

		_, err := c.OffsetGet("a.x")
		helper.AssertErrorIs(err, ErrOffsetNotFound)

		var cerr *ContainerError
		helper.AssertTrue(errors.As(err, &cerr))
		helper.AssertEqual("a.x", cerr.Path)
		helper.AssertTrue(strings.Contains(err.Error(), "offset_get"))

		_, err = c.OffsetGet(5)
		helper.AssertErrorIs(err, ErrOffsetNotFound)

		helper.AssertNil(c.Get("a.x", nil), "Get never fails")
	})

	t.Run("ScalarOffsets", func(t *testing.T) {
		c := helper.MustContainer(`["zero","one"]`)

		v, err := c.OffsetGet(1)
		helper.AssertNoError(err)
		helper.AssertEqual("one", v)

		v, err = c.OffsetGet(true)
		helper.AssertNoError(err)
		helper.AssertEqual("one", v, "true is key 1")

		v, err = c.OffsetGet(0.9)
		helper.AssertNoError(err)
		helper.AssertEqual("zero", v, "floats are truncated")

		_, err = c.OffsetGet([]int{0})
		helper.AssertErrorIs(err, ErrBadArgument)
	})

	t.Run("SetExistsUnset", func(t *testing.T) {
		c := helper.MustContainer(nil)

		helper.AssertNoError(c.OffsetSet(nil, "appended"))
		helper.AssertNoError(c.OffsetSet("user.name", "Ann"))
		helper.AssertNoError(c.OffsetSet(7, "seven"))
		helper.AssertJSON(`{"0":"appended","user":{"name":"Ann"},"7":"seven"}`, c)

		helper.AssertTrue(c.OffsetExists("user.name"))
		helper.AssertTrue(c.OffsetExists(7))
		helper.AssertFalse(c.OffsetExists("user.age"))

		c.OffsetUnset("user.name")
		c.OffsetUnset("nothing.here")
		helper.AssertJSON(`{"0":"appended","user":[],"7":"seven"}`, c)

		helper.AssertErrorIs(c.OffsetSet("", 1), ErrBadArgument)
	})
}
