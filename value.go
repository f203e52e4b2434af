package lwm2mtlv

import (
	"encoding/binary"
	"math"
	"unicode/utf8"
)

// ResourceKind enumerates the six value kinds a LwM2M Resource can declare:
// none, boolean, integer, float, string, opaque. None of these are
// transmitted on the wire themselves (the wire format only carries the
// frame kind and byte width); a Schema uses them to tell the decoder how to
// interpret a Resource's payload.
type ResourceKind uint8

const (
	KindResourceNone ResourceKind = iota
	KindResourceBoolean
	KindResourceInteger
	KindResourceFloat
	KindResourceString
	KindResourceOpaque
)

func (k ResourceKind) String() string {
	switch k {
	case KindResourceNone:
		return "NONE"
	case KindResourceBoolean:
		return "BOOLEAN"
	case KindResourceInteger:
		return "INTEGER"
	case KindResourceFloat:
		return "FLOAT"
	case KindResourceString:
		return "STRING"
	case KindResourceOpaque:
		return "OPAQUE"
	default:
		return "UNKNOWN"
	}
}

func (k ResourceKind) valid() bool {
	return k <= KindResourceOpaque
}

// ScalarValue is one decoded or to-be-encoded Resource value: a kind tag
// plus the native Go value that kind carries. It holds a single value; the
// ordered-sequence case for multi-instance Resources lives in ResourceValue
// (resource.go).
//
// Value holds: nil for NONE, bool for BOOLEAN, int32 for INTEGER, float64
// for FLOAT, string for STRING, []byte for OPAQUE. The typed accessors below
// are the ergonomic surface; Value itself is exported for callers that
// already know the kind and want the raw value without an accessor call,
// grounded on cybergarage-go-matter's tlv.Element (value, ok) accessor shape.
type ScalarValue struct {
	Kind  ResourceKind
	Value any
}

// NewNoneValue constructs the absent-value NONE scalar.
func NewNoneValue() ScalarValue { return ScalarValue{Kind: KindResourceNone} }

// NewBoolValue constructs a BOOLEAN scalar.
func NewBoolValue(v bool) ScalarValue { return ScalarValue{Kind: KindResourceBoolean, Value: v} }

// NewIntValue constructs an INTEGER scalar. v must fit in a signed 32-bit
// integer; encoding narrower values happens automatically at wire time.
func NewIntValue(v int32) ScalarValue { return ScalarValue{Kind: KindResourceInteger, Value: v} }

// NewFloatValue constructs a FLOAT scalar.
func NewFloatValue(v float64) ScalarValue { return ScalarValue{Kind: KindResourceFloat, Value: v} }

// NewStringValue constructs a STRING scalar.
func NewStringValue(v string) ScalarValue { return ScalarValue{Kind: KindResourceString, Value: v} }

// NewOpaqueValue constructs an OPAQUE scalar. The byte slice is stored as
// given; callers must not mutate it afterwards.
func NewOpaqueValue(v []byte) ScalarValue { return ScalarValue{Kind: KindResourceOpaque, Value: v} }

// Bool returns the boolean value and true if this scalar is BOOLEAN.
func (s ScalarValue) Bool() (bool, bool) {
	v, ok := s.Value.(bool)
	return v, ok && s.Kind == KindResourceBoolean
}

// Int returns the integer value and true if this scalar is INTEGER.
func (s ScalarValue) Int() (int32, bool) {
	v, ok := s.Value.(int32)
	return v, ok && s.Kind == KindResourceInteger
}

// Float returns the floating point value and true if this scalar is FLOAT.
func (s ScalarValue) Float() (float64, bool) {
	v, ok := s.Value.(float64)
	return v, ok && s.Kind == KindResourceFloat
}

// UTF8 returns the string value and true if this scalar is STRING.
func (s ScalarValue) UTF8() (string, bool) {
	v, ok := s.Value.(string)
	return v, ok && s.Kind == KindResourceString
}

// Opaque returns the byte-slice value and true if this scalar is OPAQUE.
func (s ScalarValue) Opaque() ([]byte, bool) {
	v, ok := s.Value.([]byte)
	return v, ok && s.Kind == KindResourceOpaque
}

// EncodeResourceValue encodes one Resource value according to its declared
// kind. value's accepted native type depends on kind:
//
//	NONE:    ignored
//	BOOLEAN: bool
//	INTEGER: int, int8, int16, int32, or int64, within +/-2^31
//	FLOAT:   float32, float64, or any integer type above
//	STRING:  string
//	OPAQUE:  []byte
func EncodeResourceValue(kind ResourceKind, value any) ([]byte, error) {
	const op = "encode_resource_value"
	switch kind {
	case KindResourceNone:
		return []byte{}, nil

	case KindResourceBoolean:
		b, ok := value.(bool)
		if !ok {
			return nil, newErr(op, KindTypeMismatch)
		}
		if b {
			return []byte{0x01}, nil
		}
		return []byte{0x00}, nil

	case KindResourceInteger:
		iv, ok := asInt64(value)
		if !ok {
			return nil, newErr(op, KindTypeMismatch)
		}
		return encodeMinimalInt(iv, op)

	case KindResourceFloat:
		fv, ok := asFloat64(value)
		if !ok {
			return nil, newErr(op, KindTypeMismatch)
		}
		b := make([]byte, 4)
		binary.BigEndian.PutUint32(b, math.Float32bits(float32(fv)))
		return b, nil

	case KindResourceString:
		s, ok := value.(string)
		if !ok {
			return nil, newErr(op, KindTypeMismatch)
		}
		return []byte(s), nil

	case KindResourceOpaque:
		b, ok := value.([]byte)
		if !ok {
			return nil, newErr(op, KindTypeMismatch)
		}
		out := make([]byte, len(b))
		copy(out, b)
		return out, nil

	default:
		return nil, newErr(op, KindUnrecognizedKind)
	}
}

// DecodeResourceValue decodes one Resource value given its declared kind and
// raw payload bytes. The returned value's native Go type matches the table
// documented on EncodeResourceValue, except INTEGER always decodes to int32
// and FLOAT always decodes to float64 (a single-precision wire value is
// promoted to double precision on decode).
func DecodeResourceValue(kind ResourceKind, data []byte) (any, error) {
	const op = "decode_resource_value"
	switch kind {
	case KindResourceNone:
		return nil, nil

	case KindResourceBoolean:
		if len(data) == 0 {
			return false, nil
		}
		for _, b := range data {
			if b != 0 {
				return true, nil
			}
		}
		return false, nil

	case KindResourceInteger:
		switch len(data) {
		case 0:
			return int32(0), nil
		case 1:
			return int32(int8(data[0])), nil
		case 2:
			return int32(int16(parseBigEndianUint16(data))), nil
		case 4:
			return int32(binary.BigEndian.Uint32(data)), nil
		default:
			return nil, newErr(op, KindInvalidLength)
		}

	case KindResourceFloat:
		switch len(data) {
		case 4:
			return float64(math.Float32frombits(binary.BigEndian.Uint32(data))), nil
		case 8:
			return math.Float64frombits(binary.BigEndian.Uint64(data)), nil
		default:
			return nil, newErr(op, KindInvalidLength)
		}

	case KindResourceString:
		if !utf8.Valid(data) {
			return nil, newErr(op, KindTypeMismatch)
		}
		return string(data), nil

	case KindResourceOpaque:
		out := make([]byte, len(data))
		copy(out, data)
		return out, nil

	default:
		return nil, newErr(op, KindUnrecognizedKind)
	}
}

// encodeMinimalInt packs iv into the narrowest 1/2/4-byte two's complement
// big-endian form that can hold it: 1 byte for values in -128..127, 2 bytes
// for -32768..32767, 4 bytes for the full signed 32-bit range. Each range
// test is inclusive and evaluated before packing.
func encodeMinimalInt(iv int64, op string) ([]byte, error) {
	switch {
	case iv >= math.MinInt8 && iv <= math.MaxInt8:
		return []byte{byte(int8(iv))}, nil
	case iv >= math.MinInt16 && iv <= math.MaxInt16:
		b := make([]byte, 2)
		binary.BigEndian.PutUint16(b, uint16(int16(iv)))
		return b, nil
	case iv >= math.MinInt32 && iv <= math.MaxInt32:
		b := make([]byte, 4)
		binary.BigEndian.PutUint32(b, uint32(int32(iv)))
		return b, nil
	default:
		return nil, newErr(op, KindValueTooLarge)
	}
}

// asInt64 normalizes any Go integer type to int64, reporting false for
// anything else (including floats -- INTEGER resources reject float input).
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	default:
		return 0, false
	}
}

// asFloat64 normalizes any Go numeric type to float64 for FLOAT resources,
// which (per original_source/tlv.py's numbers.Integral/float duck typing)
// accept integers as well as floating point input.
func asFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
