package container

import (
	"fmt"
	"strings"
	"testing"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func TestSort(t *testing.T) {
	helper := NewTestHelper(t)

	t.Run("NaturalOrder", func(t *testing.T) {
		c := helper.MustContainer(`[10,"9",2.5,"apple","Banana"]`)

		c.Sort(nil, false)
		helper.AssertJSON(`[2.5,"9",10,"Banana","apple"]`, c)
	})

	t.Run("PreserveKeys", func(t *testing.T) {
		c := helper.MustContainer(`{"x":3,"0":1,"1":2}`)

		helper.AssertJSON(`{"0":1,"1":2,"x":3}`, c.Copy().Sort(nil, true))
		helper.AssertJSON(`{"0":1,"1":2,"x":3}`, c.Copy().Sort(nil, false))
	})

	t.Run("CustomComparator", func(t *testing.T) {
		c := helper.MustContainer(`["bb","a","ccc"]`)

		byLength := func(a, b any) int { return len(a.(string)) - len(b.(string)) }
		helper.AssertJSON(`["ccc","bb","a"]`, c.Sort(func(a, b any) int { return -byLength(a, b) }, false))
	})

	t.Run("Collated", func(t *testing.T) {
		c := helper.MustContainer(`["zebra","Äpfel","apple","Zoo"]`)

		c.Sort(Collated(language.German, collate.IgnoreCase), false)
		first, err := c.First()
		helper.AssertNoError(err)
		helper.AssertEqual("Äpfel", first, "umlauts sort with their base letter")

		last, err := c.Last()
		helper.AssertNoError(err)
		helper.AssertEqual("Zoo", last)
	})

	t.Run("SortKeys", func(t *testing.T) {
		c := helper.MustContainer(`{"b":1,"10":2,"a":3,"2":4}`)

		helper.AssertJSON(`{"2":4,"10":2,"a":3,"b":1}`, c.Copy().SortKeys(nil))

		reversed := c.Copy().SortKeys(func(a, b any) int {
			return strings.Compare(fmt.Sprint(b), fmt.Sprint(a))
		})
		helper.AssertJSON(`{"b":1,"a":3,"2":4,"10":2}`, reversed)
	})
}

func TestMinMax(t *testing.T) {
	helper := NewTestHelper(t)

	c := helper.MustContainer(`[3,"10",-1.5,"7"]`)

	lowest, err := c.Min()
	helper.AssertNoError(err)
	helper.AssertEqual(-1.5, lowest)

	highest, err := c.Max()
	helper.AssertNoError(err)
	helper.AssertEqual("10", highest)

	_, err = MustNew(nil).Max()
	helper.AssertErrorIs(err, ErrEmptyContainer)
}
