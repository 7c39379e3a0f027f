// Package ljson is a self-contained JSON codec: it parses UTF-8 JSON text
// into an in-memory document tree, renders a tree back into compact JSON
// text, and provides mutation, inspection, and structural-equality
// operations over the tree. It has no runtime dependencies.
package ljson

import "fmt"

// Kind identifies which of the seven JSON value shapes a Value holds.
type Kind int8

const (
	Null Kind = iota
	False
	True
	Number
	String
	Array
	Object

	numKinds
)

var kindStrings = [numKinds]string{
	Null:   "null",
	False:  "false",
	True:   "true",
	Number: "number",
	String: "string",
	Array:  "array",
	Object: "object",
}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "<unknown kind>"
	}
	return kindStrings[k]
}

// Member is a single (key, value) pair inside an Object, in insertion order.
type Member struct {
	Key   []byte
	Value Value
}

// Value is a JSON value: exactly one of Null, False, True, Number, String,
// Array, or Object. The zero Value is Null.
//
// A Value owns its payload: String owns its byte buffer, Array owns its
// elements transitively, Object owns its members (each member owning its
// key buffer and value). There are no shared-ownership edges and, because
// JSON is a tree, no cycles.
type Value struct {
	kind Kind
	num  float64
	str  []byte
	arr  []Value
	obj  []Member
}

// NotFound is returned by FindIndex when no member matches the given key.
// (The C original reports this as SIZE_MAX; Go's signed int indices make
// -1 the idiomatic not-found sentinel, as in strings.Index.)
const NotFound = -1

// Kind reports which of the seven JSON shapes v currently holds.
func (v *Value) Kind() Kind { return v.kind }

// Reset releases v's payload and returns it to the Null state. Releasing
// an already-Null value is a no-op. Go's garbage collector reclaims the
// dropped slices; Reset exists to give the same observable "document
// becomes Null" contract the C source gets from its recursive free.
func (v *Value) Reset() { *v = Value{} }

func typeErrorf(have, want Kind) error {
	return fmt.Errorf("%w: value has kind %s, want %s", ErrType, have, want)
}

// Boolean returns the boolean stored in v. It requires v.Kind() be True or
// False.
func (v *Value) Boolean() (bool, error) {
	switch v.kind {
	case True:
		return true, nil
	case False:
		return false, nil
	default:
		return false, typeErrorf(v.kind, True)
	}
}

// SetBoolean releases v and stores b as True or False.
func (v *Value) SetBoolean(b bool) {
	v.Reset()
	if b {
		v.kind = True
	} else {
		v.kind = False
	}
}

// SetNull releases v, returning it to the Null state.
func (v *Value) SetNull() { v.Reset() }

// NumberValue returns the float64 stored in v. It requires v.Kind() ==
// Number.
func (v *Value) NumberValue() (float64, error) {
	if v.kind != Number {
		return 0, typeErrorf(v.kind, Number)
	}
	return v.num, nil
}

// SetNumber releases v and stores n under kind Number. n must be finite
// (not NaN, not ±Inf); callers that parse untrusted input should validate
// before calling SetNumber, as Parse itself does.
func (v *Value) SetNumber(n float64) {
	v.Reset()
	v.kind = Number
	v.num = n
}

// StringValue returns the raw bytes stored in v. The returned slice is
// owned by v; callers must not mutate it. It requires v.Kind() == String.
func (v *Value) StringValue() ([]byte, error) {
	if v.kind != String {
		return nil, typeErrorf(v.kind, String)
	}
	return v.str, nil
}

// SetString releases v and stores a copy of s under kind String. s may
// contain embedded zero bytes; the stored length is authoritative. s may
// be nil only when len(s) == 0.
func (v *Value) SetString(s []byte) {
	v.Reset()
	v.kind = String
	if len(s) == 0 {
		v.str = []byte{}
		return
	}
	v.str = append([]byte(nil), s...)
}

// Equal reports whether v and other are structurally equal: same Kind,
// and for Number float64 values equal under == (so 0 and -0 are equal),
// for String equal length and bytes, for Array equal elements in order,
// and for Object equal size with every member of v having an equal value
// in the first member of other with the same key. Member order does not
// matter; with duplicate keys, only the first match in other is compared.
func (v *Value) Equal(other *Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case Number:
		return v.num == other.num
	case String:
		return string(v.str) == string(other.str)
	case Array:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(&other.arr[i]) {
				return false
			}
		}
		return true
	case Object:
		if len(v.obj) != len(other.obj) {
			return false
		}
		for i := range v.obj {
			idx := other.FindIndex(v.obj[i].Key)
			if idx == NotFound {
				return false
			}
			if !v.obj[i].Value.Equal(&other.obj[idx].Value) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// Clone returns a deep copy of v: the result shares no owned storage with
// v, so mutating one afterwards never affects the other.
func (v *Value) Clone() Value {
	var dst Value
	switch v.kind {
	case String:
		dst.SetString(v.str)
	case Array:
		dst.SetArray(cap(v.arr))
		for i := range v.arr {
			dst.PushBack(&v.arr[i])
		}
	case Object:
		dst.SetObject(cap(v.obj))
		dst.obj = dst.obj[:len(v.obj)]
		for i := range v.obj {
			dst.obj[i] = Member{
				Key:   append([]byte(nil), v.obj[i].Key...),
				Value: v.obj[i].Value.Clone(),
			}
		}
	default:
		dst = *v
	}
	return dst
}

// Move releases dst, transfers src's payload to dst, and resets src to
// Null. Move panics if dst and src alias the same Value.
func Move(dst, src *Value) {
	if dst == src {
		panic("ljson: Move called with dst == src")
	}
	dst.Reset()
	*dst = *src
	*src = Value{}
}

// Swap exchanges the payloads of a and b. Swapping a Value with itself is
// a no-op.
func Swap(a, b *Value) {
	if a == b {
		return
	}
	*a, *b = *b, *a
}
