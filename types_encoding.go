package jsonmutator

import "github.com/cybergodev/jsonmutator/internal"

// EncodeConfig controls how a Document is written as JSON text.
// The zero value produces compact output with no optional escaping.
type EncodeConfig struct {
	EscapeUnicode bool   `json:"escape_unicode" yaml:"escape_unicode"` // non-ASCII as \uXXXX
	EscapeSlash   bool   `json:"escape_slash" yaml:"escape_slashes"`   // '/' as \/
	EscapeHTML    bool   `json:"escape_html" yaml:"escape_html"`
	Pretty        bool   `json:"pretty" yaml:"pretty"`
	Indent        string `json:"indent" yaml:"indent"`
	Prefix        string `json:"prefix" yaml:"prefix"`
}

// DefaultEncodeConfig leaves unicode and slashes unescaped
func DefaultEncodeConfig() *EncodeConfig {
	return &EncodeConfig{
		Indent: DefaultIndent,
	}
}

// NewPrettyConfig returns configuration for indented output
func NewPrettyConfig() *EncodeConfig {
	cfg := DefaultEncodeConfig()
	cfg.Pretty = true
	return cfg
}

// NewEscapedConfig escapes non-ASCII text and slashes, for consumers that expect pure ASCII output
func NewEscapedConfig() *EncodeConfig {
	cfg := DefaultEncodeConfig()
	cfg.EscapeUnicode = true
	cfg.EscapeSlash = true
	return cfg
}

// NewWebSafeConfig escapes HTML-significant characters and slashes so output can be embedded in a page
func NewWebSafeConfig() *EncodeConfig {
	cfg := DefaultEncodeConfig()
	cfg.EscapeHTML = true
	cfg.EscapeSlash = true
	return cfg
}

// Clone returns a copy of the configuration; nil clones the default
func (c *EncodeConfig) Clone() *EncodeConfig {
	if c == nil {
		return DefaultEncodeConfig()
	}
	clone := *c
	return &clone
}

func (c *EncodeConfig) options() internal.EncodeOptions {
	if c == nil {
		c = DefaultEncodeConfig()
	}
	indent := c.Indent
	if c.Pretty && indent == "" && c.Prefix == "" {
		indent = DefaultIndent
	}
	return internal.EncodeOptions{
		EscapeUnicode: c.EscapeUnicode,
		EscapeSlash:   c.EscapeSlash,
		EscapeHTML:    c.EscapeHTML,
		Pretty:        c.Pretty,
		Prefix:        c.Prefix,
		Indent:        indent,
	}
}
