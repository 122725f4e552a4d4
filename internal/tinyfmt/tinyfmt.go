// Package tinyfmt provides formatting primitives for constrained targets.
// It mirrors the semantics of the standard fmt interfaces without using
// reflection, so it stays usable where hosted services and the reflect
// runtime are unwelcome. All formatting is append-based; callers that
// bring their own scratch buffer do not allocate.
package tinyfmt

import "strconv"

// Stringer is the display-representation capability. Equivalent to
// fmt.Stringer.
type Stringer interface {
	String() string
}

// GoStringer is the debug-representation capability. Equivalent to
// fmt.GoStringer.
type GoStringer interface {
	GoString() string
}

// State is the handle passed to custom formatting implementations.
// Equivalent to fmt.State.
type State interface {
	// Write emits formatted output.
	Write(b []byte) (n int, err error)
	// Width returns the verb width and whether it was set.
	Width() (wid int, ok bool)
	// Precision returns the verb precision and whether it was set.
	Precision() (prec int, ok bool)
	// Flag reports whether the flag c ('-', '+', '#', ' ', '0') is set.
	Flag(c int) bool
}

// Result is the outcome of a formatting operation.
type Result = error

// Format renders format with the given positional args.
func Format(format string, args ...any) string {
	return string(AppendFormat(nil, format, args...))
}

// AppendFormat renders format with the given positional args, appending
// to dst. Supported verbs: %v %s %d %x %q %t %c and %% . %w is accepted
// and rendered like %v so error-wrapping formats pass through unchanged.
// Mismatched or missing operands render with the fmt-style %! notation
// rather than failing.
func AppendFormat(dst []byte, format string, args ...any) []byte {
	arg := 0
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			dst = append(dst, c)
			continue
		}
		i++
		if i >= len(format) {
			dst = append(dst, "%!(NOVERB)"...)
			break
		}
		verb := format[i]
		if verb == '%' {
			dst = append(dst, '%')
			continue
		}
		if arg >= len(args) {
			dst = append(dst, '%', '!', verb)
			dst = append(dst, "(MISSING)"...)
			continue
		}
		dst = appendArg(dst, verb, args[arg])
		arg++
	}
	for ; arg < len(args); arg++ {
		dst = append(dst, "%!(EXTRA "...)
		dst = appendArg(dst, 'v', args[arg])
		dst = append(dst, ')')
	}
	return dst
}

func appendArg(dst []byte, verb byte, v any) []byte {
	switch verb {
	case 'v', 's', 'w':
		return appendValue(dst, verb, v)
	case 'd':
		if n, neg, ok := asInt(v); ok {
			if neg {
				return strconv.AppendInt(dst, int64(n), 10)
			}
			return strconv.AppendUint(dst, n, 10)
		}
	case 'x':
		switch x := v.(type) {
		case string:
			return appendHexBytes(dst, []byte(x))
		case []byte:
			return appendHexBytes(dst, x)
		}
		if n, neg, ok := asInt(v); ok {
			if neg {
				return strconv.AppendInt(dst, int64(n), 16)
			}
			return strconv.AppendUint(dst, n, 16)
		}
	case 'q':
		switch x := v.(type) {
		case string:
			return strconv.AppendQuote(dst, x)
		case []byte:
			return strconv.AppendQuote(dst, string(x))
		}
	case 't':
		if b, ok := v.(bool); ok {
			return strconv.AppendBool(dst, b)
		}
	case 'c':
		switch x := v.(type) {
		case rune:
			return appendRune(dst, x)
		case int:
			return appendRune(dst, rune(x))
		case byte:
			return appendRune(dst, rune(x))
		}
	}
	return appendBadVerb(dst, verb, v)
}

// appendValue handles the catch-all verbs. The type switch covers the
// kinds a constrained target actually logs; anything else renders as a
// bad-verb note instead of reaching for reflection.
func appendValue(dst []byte, verb byte, v any) []byte {
	switch x := v.(type) {
	case nil:
		return append(dst, "<nil>"...)
	case string:
		return append(dst, x...)
	case []byte:
		return append(dst, x...)
	case bool:
		return strconv.AppendBool(dst, x)
	case error:
		return append(dst, x.Error()...)
	case Stringer:
		return append(dst, x.String()...)
	case GoStringer:
		return append(dst, x.GoString()...)
	}
	if n, neg, ok := asInt(v); ok {
		if neg {
			return strconv.AppendInt(dst, int64(n), 10)
		}
		return strconv.AppendUint(dst, n, 10)
	}
	return appendBadVerb(dst, verb, v)
}

// asInt normalizes the integer kinds. neg reports that n holds the bit
// pattern of a negative signed value and must be re-signed on output.
func asInt(v any) (n uint64, neg bool, ok bool) {
	switch x := v.(type) {
	case int:
		return uint64(x), x < 0, true
	case int8:
		return uint64(x), x < 0, true
	case int16:
		return uint64(x), x < 0, true
	case int32:
		return uint64(x), x < 0, true
	case int64:
		return uint64(x), x < 0, true
	case uint:
		return uint64(x), false, true
	case uint8:
		return uint64(x), false, true
	case uint16:
		return uint64(x), false, true
	case uint32:
		return uint64(x), false, true
	case uint64:
		return x, false, true
	case uintptr:
		return uint64(x), false, true
	}
	return 0, false, false
}

const hexdigits = "0123456789abcdef"

func appendHexBytes(dst, b []byte) []byte {
	for _, c := range b {
		dst = append(dst, hexdigits[c>>4], hexdigits[c&0xf])
	}
	return dst
}

func appendRune(dst []byte, r rune) []byte {
	var scratch [4]byte
	n := encodeRune(scratch[:], r)
	return append(dst, scratch[:n]...)
}

// encodeRune is utf8.EncodeRune without the table-driven error paths.
func encodeRune(p []byte, r rune) int {
	switch {
	case r < 0x80:
		p[0] = byte(r)
		return 1
	case r < 0x800:
		p[0] = 0xc0 | byte(r>>6)
		p[1] = 0x80 | byte(r)&0x3f
		return 2
	case r > 0x10ffff:
		// Replacement character for out-of-range runes.
		p[0], p[1], p[2] = 0xef, 0xbf, 0xbd
		return 3
	case r < 0x10000:
		p[0] = 0xe0 | byte(r>>12)
		p[1] = 0x80 | byte(r>>6)&0x3f
		p[2] = 0x80 | byte(r)&0x3f
		return 3
	default:
		p[0] = 0xf0 | byte(r>>18)
		p[1] = 0x80 | byte(r>>12)&0x3f
		p[2] = 0x80 | byte(r>>6)&0x3f
		p[3] = 0x80 | byte(r)&0x3f
		return 4
	}
}

func appendBadVerb(dst []byte, verb byte, v any) []byte {
	dst = append(dst, '%', '!', verb, '(')
	switch x := v.(type) {
	case string:
		dst = append(dst, x...)
	case error:
		dst = append(dst, x.Error()...)
	default:
		if n, neg, ok := asInt(v); ok {
			if neg {
				dst = strconv.AppendInt(dst, int64(n), 10)
			} else {
				dst = strconv.AppendUint(dst, n, 10)
			}
		} else {
			dst = append(dst, '?')
		}
	}
	return append(dst, ')')
}
