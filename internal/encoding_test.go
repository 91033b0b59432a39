package internal

import (
	"encoding/json"
	"math"
	"testing"
)

func TestEncodeStrings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  EncodeOptions
		want  string
	}{
		{"Plain", "hello", EncodeOptions{}, `"hello"`},
		{"Quotes", `say "hi"\`, EncodeOptions{}, `"say \"hi\"\\"`},
		{"Controls", "a\nb\tc\x01", EncodeOptions{}, `"a\nb\tc\u0001"`},
		{"UnicodeRaw", "caf\u00e9", EncodeOptions{}, "\"caf\u00e9\""},
		{"UnicodeEscaped", "caf\u00e9", EncodeOptions{EscapeUnicode: true}, `"caf\u00e9"`},
		{"SurrogatePair", "\U0001F600", EncodeOptions{EscapeUnicode: true}, `"\ud83d\ude00"`},
		{"SlashRaw", "a/b", EncodeOptions{}, `"a/b"`},
		{"SlashEscaped", "a/b", EncodeOptions{EscapeSlash: true}, `"a\/b"`},
		{"HTMLRaw", "<a&b>", EncodeOptions{}, `"<a&b>"`},
		{"HTMLEscaped", "<a&b>", EncodeOptions{EscapeHTML: true}, `"\u003ca\u0026b\u003e"`},
		{"LineSeparator", "a\u2028b", EncodeOptions{}, `"a\u2028b"`},
		{"InvalidUTF8", "a\xffb", EncodeOptions{}, `"a\ufffdb"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.input, tt.opts)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Encode() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEncodeNumbers(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"Int", 42, "42"},
		{"NegativeInt64", int64(-7), "-7"},
		{"Uint8", uint8(200), "200"},
		{"WholeFloat", 30.0, "30"},
		{"Fraction", 1.5, "1.5"},
		{"Small", 1e-7, "1e-7"},
		{"Large", 1e21, "1e+21"},
		{"Float32", float32(0.1), "0.1"},
		{"Number", json.Number("12.50"), "12.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.input, EncodeOptions{})
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Encode() = %s, want %s", got, tt.want)
			}
		})
	}

	for _, bad := range []any{math.NaN(), math.Inf(1), json.Number("1x")} {
		if _, err := Encode(bad, EncodeOptions{}); err == nil {
			t.Errorf("Encode(%v) expected an error", bad)
		}
	}
}

func TestEncodeContainers(t *testing.T) {
	doc := mapOf("z", 1, "a", []any{true, nil}, "m", NewMap(0), "l", []any{})

	t.Run("CompactKeepsOrder", func(t *testing.T) {
		got, err := Encode(doc, EncodeOptions{})
		if err != nil {
			t.Fatalf("Encode() error = %v", err)
		}
		want := `{"z":1,"a":[true,null],"m":{},"l":[]}`
		if string(got) != want {
			t.Errorf("Encode() = %s, want %s", got, want)
		}
	})

	t.Run("Pretty", func(t *testing.T) {
		got, err := Encode(mapOf("a", 1, "b", []any{2}, "c", NewMap(0)), EncodeOptions{Pretty: true, Indent: "  "})
		if err != nil {
			t.Fatalf("Encode() error = %v", err)
		}
		want := "{\n  \"a\": 1,\n  \"b\": [\n    2\n  ],\n  \"c\": {}\n}"
		if string(got) != want {
			t.Errorf("Encode() =\n%s\nwant\n%s", got, want)
		}
	})

	t.Run("ReflectFallback", func(t *testing.T) {
		type point struct {
			X int `json:"x"`
			Y int `json:"y"`
		}
		got, err := Encode(mapOf("p", point{1, 2}), EncodeOptions{})
		if err != nil {
			t.Fatalf("Encode() error = %v", err)
		}
		if want := `{"p":{"x":1,"y":2}}`; string(got) != want {
			t.Errorf("Encode() = %s, want %s", got, want)
		}
	})

	t.Run("Unsupported", func(t *testing.T) {
		if _, err := Encode(mapOf("ch", make(chan int)), EncodeOptions{}); err == nil {
			t.Error("expected an error for a channel value")
		}
	})
}
