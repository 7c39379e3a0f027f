package ljson

import "strconv"

// hexDigits is used to render the last two hex digits of a \u00XX escape; the
// C source's stringify emits uppercase hex, which this mirrors.
const hexDigits = "0123456789ABCDEF"

// Stringify renders v as compact JSON text (no insignificant whitespace).
// Object members are emitted in their current storage order.
func (v *Value) Stringify() []byte {
	var s byteStack
	v.stringify(&s)
	return s.buf
}

func (v *Value) stringify(s *byteStack) {
	switch v.kind {
	case Null:
		s.pushBytes([]byte("null"))
	case False:
		s.pushBytes([]byte("false"))
	case True:
		s.pushBytes([]byte("true"))
	case Number:
		s.pushBytes(strconv.AppendFloat(nil, v.num, 'g', 17, 64))
	case String:
		stringifyString(s, v.str)
	case Array:
		s.pushByte('[')
		for i := range v.arr {
			if i > 0 {
				s.pushByte(',')
			}
			v.arr[i].stringify(s)
		}
		s.pushByte(']')
	case Object:
		s.pushByte('{')
		for i := range v.obj {
			if i > 0 {
				s.pushByte(',')
			}
			stringifyString(s, v.obj[i].Key)
			s.pushByte(':')
			v.obj[i].Value.stringify(s)
		}
		s.pushByte('}')
	}
}

// stringifyString writes raw as a quoted JSON string, escaping the
// characters the grammar requires (quote, backslash, and control bytes
// below 0x20) and passing everything else through byte-for-byte. Unlike
// many JSON encoders, '/' is never escaped — the C source doesn't escape
// it either, and nothing in the grammar requires it.
func stringifyString(s *byteStack, raw []byte) {
	s.pushByte('"')
	for _, b := range raw {
		switch {
		case b == '"':
			s.pushBytes([]byte(`\"`))
		case b == '\\':
			s.pushBytes([]byte(`\\`))
		case b == '\b':
			s.pushBytes([]byte(`\b`))
		case b == '\f':
			s.pushBytes([]byte(`\f`))
		case b == '\n':
			s.pushBytes([]byte(`\n`))
		case b == '\r':
			s.pushBytes([]byte(`\r`))
		case b == '\t':
			s.pushBytes([]byte(`\t`))
		case b < 0x20:
			buf := s.push(6)
			buf[0] = '\\'
			buf[1] = 'u'
			buf[2] = '0'
			buf[3] = '0'
			buf[4] = hexDigits[b>>4]
			buf[5] = hexDigits[b&0xF]
		default:
			s.pushByte(b)
		}
	}
	s.pushByte('"')
}
