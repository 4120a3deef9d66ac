package container

import (
	"testing"
)

func TestConfig(t *testing.T) {
	helper := NewTestHelper(t)

	t.Run("Defaults", func(t *testing.T) {
		cfg := DefaultConfig()

		helper.AssertFalse(cfg.WherePreserveKeys)
		helper.AssertEqual(DefaultMaxDepth, cfg.MaxDepth)
		helper.AssertEqual(int64(DefaultMaxFileSize), cfg.MaxFileSize)
		helper.AssertEqual(DefaultJSONIndent, cfg.JSONIndent)
		helper.AssertFalse(cfg.EscapeHTML)
		helper.AssertTrue(cfg.ValidateFilePath)
	})

	t.Run("ValidateClamps", func(t *testing.T) {
		tests := []struct {
			name     string
			depth    int
			expected int
		}{
			{"Zero", 0, DefaultMaxDepth},
			{"Negative", -5, DefaultMaxDepth},
			{"TooSmall", 3, MinMaxDepth},
			{"TooLarge", MaxAllowedDepth + 1, MaxAllowedDepth},
			{"InRange", 100, 100},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				cfg := &Config{MaxDepth: tt.depth}
				helper.AssertNoError(cfg.Validate())
				helper.AssertEqual(tt.expected, cfg.MaxDepth)
				helper.AssertEqual(int64(DefaultMaxFileSize), cfg.MaxFileSize)
				helper.AssertEqual(DefaultJSONIndent, cfg.JSONIndent)
			})
		}

		var nilCfg *Config
		helper.AssertErrorIs(nilCfg.Validate(), ErrBadArgument)
	})

	t.Run("Clone", func(t *testing.T) {
		cfg := DefaultConfig()
		clone := cfg.Clone()
		clone.JSONIndent = "\t"

		helper.AssertEqual(DefaultJSONIndent, cfg.JSONIndent)

		var nilCfg *Config
		helper.AssertEqual(DefaultConfig(), nilCfg.Clone())
	})

	t.Run("Options", func(t *testing.T) {
		custom := DefaultConfig()
		custom.JSONIndent = "    "
		custom.EscapeHTML = true

		c := helper.MustContainer(`{"h":"<"}`, WithConfig(custom), WithPreserveKeys(true), WithMaxDepth(64))
		cfg := c.Config()

		helper.AssertTrue(cfg.WherePreserveKeys)
		helper.AssertEqual(64, cfg.MaxDepth)
		helper.AssertEqual("    ", cfg.JSONIndent)
		helper.AssertJSON(`{"h":"\u003c"}`, c)
	})

	t.Run("DerivedContainersShareConfig", func(t *testing.T) {
		c := helper.MustContainer(`[{"id":1}]`, WithPreserveKeys(true))

		derived := c.Copy().Where(Cond("id", 1))
		helper.AssertTrue(derived.Config().WherePreserveKeys)
	})
}
