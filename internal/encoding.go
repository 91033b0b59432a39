package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"sync"
	"unicode/utf16"
	"unicode/utf8"
)

// EncodeOptions controls the text produced by Encoder
type EncodeOptions struct {
	EscapeUnicode bool // write non-ASCII runes as \uXXXX
	EscapeSlash   bool // write '/' as \/
	EscapeHTML    bool // write <, > and & as \u003c, \u003e, \u0026
	Pretty        bool
	Prefix        string
	Indent        string
}

var encoderBufferPool = sync.Pool{
	New: func() any {
		buf := &bytes.Buffer{}
		buf.Grow(512)
		return buf
	},
}

func getEncoderBuffer() *bytes.Buffer {
	buf := encoderBufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putEncoderBuffer(buf *bytes.Buffer) {
	if buf != nil && buf.Cap() <= 64*1024 {
		encoderBufferPool.Put(buf)
	}
}

// Encoder writes internal values as JSON text, emitting *Map entries in insertion order
type Encoder struct {
	opts   EncodeOptions
	buffer *bytes.Buffer
	depth  int
}

// Encode serializes v with opts
func Encode(v any, opts EncodeOptions) ([]byte, error) {
	e := &Encoder{opts: opts, buffer: getEncoderBuffer()}
	defer putEncoderBuffer(e.buffer)

	if err := e.encodeValue(v); err != nil {
		return nil, err
	}
	return bytes.Clone(e.buffer.Bytes()), nil
}

func (e *Encoder) encodeValue(value any) error {
	if e.depth > MaxEncodeDepth {
		return fmt.Errorf("nesting exceeds %d levels", MaxEncodeDepth)
	}

	switch v := value.(type) {
	case nil:
		e.buffer.WriteString("null")
	case bool:
		e.buffer.WriteString(strconv.FormatBool(v))
	case string:
		e.encodeString(v)
	case int:
		e.buffer.WriteString(strconv.FormatInt(int64(v), 10))
	case int64:
		e.buffer.WriteString(strconv.FormatInt(v, 10))
	case float64:
		return e.encodeFloat(v, 64)
	case json.Number:
		return e.encodeNumber(v)
	case *Map:
		return e.encodeMap(v)
	case []any:
		return e.encodeList(v)
	default:
		return e.encodeReflect(value)
	}
	return nil
}

func (e *Encoder) encodeReflect(value any) error {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Bool:
		e.buffer.WriteString(strconv.FormatBool(rv.Bool()))
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		e.buffer.WriteString(strconv.FormatInt(rv.Int(), 10))
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		e.buffer.WriteString(strconv.FormatUint(rv.Uint(), 10))
		return nil
	case reflect.Float32, reflect.Float64:
		return e.encodeFloat(rv.Float(), rv.Type().Bits())
	case reflect.String:
		if _, isMarshaler := value.(json.Marshaler); !isMarshaler {
			e.encodeString(rv.String())
			return nil
		}
	}

	// Anything else goes through encoding/json and is re-encoded with our escaping rules
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	decoded, err := Decode(string(data), true)
	if err != nil {
		return err
	}
	return e.encodeValue(decoded)
}

func (e *Encoder) encodeMap(m *Map) error {
	e.buffer.WriteByte('{')
	e.depth++

	first := true
	for k, v := range m.All() {
		if !first {
			e.buffer.WriteByte(',')
		}
		first = false

		if e.opts.Pretty {
			e.writeIndent()
		}
		e.encodeString(k)
		e.buffer.WriteByte(':')
		if e.opts.Pretty {
			e.buffer.WriteByte(' ')
		}
		if err := e.encodeValue(v); err != nil {
			return err
		}
	}

	e.depth--
	if e.opts.Pretty && m.Len() > 0 {
		e.writeIndent()
	}
	e.buffer.WriteByte('}')
	return nil
}

func (e *Encoder) encodeList(list []any) error {
	e.buffer.WriteByte('[')
	e.depth++

	for i, v := range list {
		if i > 0 {
			e.buffer.WriteByte(',')
		}
		if e.opts.Pretty {
			e.writeIndent()
		}
		if err := e.encodeValue(v); err != nil {
			return err
		}
	}

	e.depth--
	if e.opts.Pretty && len(list) > 0 {
		e.writeIndent()
	}
	e.buffer.WriteByte(']')
	return nil
}

func (e *Encoder) encodeNumber(n json.Number) error {
	s := string(n)
	if s == "" {
		e.buffer.WriteByte('0')
		return nil
	}
	if !json.Valid([]byte(s)) {
		return fmt.Errorf("invalid number literal %q", s)
	}
	e.buffer.WriteString(s)
	return nil
}

// encodeFloat formats like encoding/json: shortest representation, exponent
// form only for very small or very large magnitudes.
func (e *Encoder) encodeFloat(f float64, bits int) error {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return fmt.Errorf("unsupported float value %v", f)
	}

	format := byte('f')
	if abs := math.Abs(f); abs != 0 {
		if bits == 64 && (abs < 1e-6 || abs >= 1e21) || bits == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) {
			format = 'e'
		}
	}

	b := strconv.AppendFloat(nil, f, format, -1, bits)
	if format == 'e' {
		// clean up e-09 to e-9
		if n := len(b); n >= 4 && b[n-4] == 'e' && b[n-3] == '-' && b[n-2] == '0' {
			b[n-2] = b[n-1]
			b = b[:n-1]
		}
	}
	e.buffer.Write(b)
	return nil
}

func (e *Encoder) encodeString(s string) {
	e.buffer.WriteByte('"')
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			e.buffer.WriteString(`\ufffd`)
			i++
			continue
		}
		e.escapeRune(r)
		i += size
	}
	e.buffer.WriteByte('"')
}

func (e *Encoder) escapeRune(r rune) {
	switch r {
	case '"':
		e.buffer.WriteString(`\"`)
	case '\\':
		e.buffer.WriteString(`\\`)
	case '\b':
		e.buffer.WriteString(`\b`)
	case '\f':
		e.buffer.WriteString(`\f`)
	case '\n':
		e.buffer.WriteString(`\n`)
	case '\r':
		e.buffer.WriteString(`\r`)
	case '\t':
		e.buffer.WriteString(`\t`)
	case '/':
		if e.opts.EscapeSlash {
			e.buffer.WriteString(`\/`)
		} else {
			e.buffer.WriteByte('/')
		}
	case '<', '>', '&':
		if e.opts.EscapeHTML {
			fmt.Fprintf(e.buffer, `\u%04x`, r)
		} else {
			e.buffer.WriteRune(r)
		}
	case '\u2028', '\u2029':
		// always escaped, as encoding/json does
		fmt.Fprintf(e.buffer, `\u%04x`, r)
	default:
		switch {
		case r < 0x20:
			fmt.Fprintf(e.buffer, `\u%04x`, r)
		case r > 0x7F && e.opts.EscapeUnicode:
			if r > 0xFFFF {
				r1, r2 := utf16.EncodeRune(r)
				fmt.Fprintf(e.buffer, `\u%04x\u%04x`, r1, r2)
			} else {
				fmt.Fprintf(e.buffer, `\u%04x`, r)
			}
		default:
			e.buffer.WriteRune(r)
		}
	}
}

func (e *Encoder) writeIndent() {
	e.buffer.WriteByte('\n')
	e.buffer.WriteString(e.opts.Prefix)
	for i := 0; i < e.depth; i++ {
		e.buffer.WriteString(e.opts.Indent)
	}
}
