package container

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

func TestJSONEncoding(t *testing.T) {
	helper := NewTestHelper(t)

	t.Run("KeyOrderSurvives", func(t *testing.T) {
		input := `{"z":1,"a":{"y":2,"b":3},"m":[true,null,1.5,"s"]}`
		c := helper.MustContainer(input)

		helper.AssertJSON(input, c)
	})

	t.Run("NumbersKeepTheirKind", func(t *testing.T) {
		c := helper.MustContainer(`{"i":42,"f":42.0,"e":1e3,"big":123456789012345678901234567890}`)

		helper.AssertEqual(42, c.Get("i", nil))
		helper.AssertEqual(42.0, c.Get("f", nil))
		helper.AssertEqual(1000.0, c.Get("e", nil))
		_, isFloat := c.Get("big", nil).(float64)
		helper.AssertTrue(isFloat, "integers beyond int range decode as floats")
	})

	t.Run("Pretty", func(t *testing.T) {
		c := helper.MustContainer(`{"a":[1]}`)

		out, err := c.ToJSON(Pretty())
		helper.AssertNoError(err)
		helper.AssertEqual("{\n  \"a\": [\n    1\n  ]\n}", out)

		out, err = c.ToJSON(Indent("\t"))
		helper.AssertNoError(err)
		helper.AssertTrue(strings.Contains(out, "\n\t\"a\""))
	})

	t.Run("EscapeHTML", func(t *testing.T) {
		c := helper.MustContainer(`{"h":"<b>&"}`)

		plain, err := c.ToJSON()
		helper.AssertNoError(err)
		helper.AssertEqual(`{"h":"<b>&"}`, plain)

		escaped, err := c.ToJSON(EscapeHTML(true))
		helper.AssertNoError(err)
		helper.AssertEqual(`{"h":"\u003cb\u003e\u0026"}`, escaped)
	})

	t.Run("ForceObject", func(t *testing.T) {
		c := helper.MustContainer(`[1,[2]]`)

		out, err := c.ToJSON(ForceObject())
		helper.AssertNoError(err)
		helper.AssertEqual(`{"0":1,"1":{"0":2}}`, out)
	})

	t.Run("Marshaler", func(t *testing.T) {
		wrapper := struct {
			Data *Container `json:"data"`
		}{Data: helper.MustContainer(`{"b":1,"a":2}`)}

		raw, err := json.Marshal(wrapper)
		helper.AssertNoError(err)
		helper.AssertEqual(`{"data":{"b":1,"a":2}}`, string(raw))

		var decoded struct {
			Data *Container `json:"data"`
		}
		helper.AssertNoError(json.Unmarshal(raw, &decoded))
		helper.AssertEqual(2, decoded.Data.Get("a", nil))
	})

	t.Run("FromJSONErrors", func(t *testing.T) {
		for _, input := range []string{``, `{`, `5`, `{"a":1} trailing`} {
			_, err := FromJSON([]byte(input))
			helper.AssertTrue(err != nil, "input %q", input)
		}
	})
}

func TestYAMLEncoding(t *testing.T) {
	helper := NewTestHelper(t)

	t.Run("DecodeKeepsOrder", func(t *testing.T) {
		doc := "zeta: 1\nalpha:\n  - x\n  - y\nmid:\n  flag: true\n  none: null\n  ratio: 0.5\n"

		c, err := FromYAML([]byte(doc))
		helper.AssertNoError(err)
		helper.AssertJSON(`{"zeta":1,"alpha":["x","y"],"mid":{"flag":true,"none":null,"ratio":0.5}}`, c)
	})

	t.Run("Aliases", func(t *testing.T) {
		doc := "base: &b\n  k: v\ncopy: *b\n"

		c, err := FromYAML([]byte(doc))
		helper.AssertNoError(err)
		helper.AssertEqual("v", c.Get("copy.k", nil))
	})

	t.Run("ExcessiveAliasing", func(t *testing.T) {
		var sb strings.Builder
		sb.WriteString("l0: &l0 [x, x, x, x, x, x, x, x, x, x]\n")
		for i := 1; i < 7; i++ {
			ref := fmt.Sprintf("*l%d", i-1)
			fmt.Fprintf(&sb, "l%d: &l%d [%s]\n", i, i, strings.TrimSuffix(strings.Repeat(ref+", ", 10), ", "))
		}

		_, err := FromYAML([]byte(sb.String()))
		helper.AssertErrorIs(err, ErrBadArgument)

		path := filepath.Join(t.TempDir(), "laughs.yaml")
		helper.AssertNoError(os.WriteFile(path, []byte(sb.String()), 0644))
		_, err = FromFile(path)
		helper.AssertErrorIs(err, ErrUnparsableContent)
	})

	t.Run("ModerateAliasing", func(t *testing.T) {
		var sb strings.Builder
		sb.WriteString("base: &b {k: v}\nrefs:\n")
		for i := 0; i < 50; i++ {
			sb.WriteString("  - *b\n")
		}

		c, err := FromYAML([]byte(sb.String()))
		helper.AssertNoError(err)
		helper.AssertEqual(50, c.Get("refs", nil).(*Container).Len())
		helper.AssertEqual("v", c.Get("refs.49.k", nil))
	})

	t.Run("Encode", func(t *testing.T) {
		c := helper.MustContainer(`{"name":"n","list":[1,2.5],"empty":[],"7":false}`)

		out, err := c.ToYAML()
		helper.AssertNoError(err)
		helper.AssertEqual("name: n\nlist:\n  - 1\n  - 2.5\nempty: {}\n7: false\n", out)

		back, err := FromYAML([]byte(out))
		helper.AssertNoError(err)
		helper.AssertTrue(back.Equal(c))
	})

	t.Run("Marshaler", func(t *testing.T) {
		raw, err := yaml.Marshal(map[string]*Container{"c": helper.MustContainer(`{"k":[1]}`)})
		helper.AssertNoError(err)
		helper.AssertEqual("c:\n    k:\n        - 1\n", string(raw))
	})

	t.Run("ScalarDocument", func(t *testing.T) {
		_, err := FromYAML([]byte("just a string\n"))
		helper.AssertErrorIs(err, ErrInvalidArgument)
	})
}

func TestSerializedEncoding(t *testing.T) {
	helper := NewTestHelper(t)

	t.Run("RoundTripKeepsKeys", func(t *testing.T) {
		c := helper.MustContainer(`{"b":1,"5":[true,null],"a":{"x":1.5,"y":"s"}}`)

		blob, err := c.Serialize()
		helper.AssertNoError(err)
		helper.AssertTrue(IsSerialized(string(blob)))

		back, err := Unserialize(blob)
		helper.AssertNoError(err)
		helper.AssertJSON(`{"b":1,"5":[true,null],"a":{"x":1.5,"y":"s"}}`, back)
		_, isInt := back.KeyList()[1].Value().(int)
		helper.AssertTrue(isInt)
	})

	t.Run("IsSerialized", func(t *testing.T) {
		helper.AssertTrue(IsSerialized("\xc2"), "serialized false")
		helper.AssertFalse(IsSerialized(""))
		helper.AssertFalse(IsSerialized(`{"a":1}`))
		helper.AssertFalse(IsSerialized("\x92\x01"), "truncated array")
	})

	t.Run("UnserializeErrors", func(t *testing.T) {
		_, err := Unserialize([]byte("\xc2"))
		helper.AssertErrorIs(err, ErrInvalidArgument, "false is not an array")

		_, err = Unserialize([]byte("\x92\x01"))
		helper.AssertTrue(err != nil)
	})

	t.Run("OversizedHeaders", func(t *testing.T) {
		for _, blob := range []string{"\xdd\xff\xff\xff\xff", "\xdf\xff\xff\xff\xff", "\xdd\xff\xff\xff\xff\x01\x02"} {
			_, err := Unserialize([]byte(blob))
			helper.AssertTrue(err != nil, "blob %q", blob)
			helper.AssertFalse(IsSerialized(blob), "blob %q", blob)
		}
	})
}
