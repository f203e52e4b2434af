package lwm2mtlv

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncodeResource(t *testing.T) {
	t.Run("scalar boolean", func(t *testing.T) {
		r := Resource{ID: 5850, Value: NewScalarResourceValue(NewBoolValue(true))}
		got, err := EncodeResource(r)
		if err != nil {
			t.Fatalf("EncodeResource() error = %v", err)
		}
		want := []byte{0xE1, 0x16, 0xDA, 0x01}
		if !bytes.Equal(got, want) {
			t.Errorf("EncodeResource() = % X, want % X", got, want)
		}
	})

	t.Run("multiple instances", func(t *testing.T) {
		r := Resource{
			ID: 5850,
			Value: NewInstancesResourceValueWithIDs(KindResourceBoolean, []ResourceInstance{
				{ID: 0, Value: NewBoolValue(true)},
				{ID: 1, Value: NewBoolValue(false)},
			}),
		}
		got, err := EncodeResource(r)
		if err != nil {
			t.Fatalf("EncodeResource() error = %v", err)
		}
		want := []byte{0xA6, 0x16, 0xDA, 0x41, 0x00, 0x01, 0x41, 0x01, 0x00}
		if !bytes.Equal(got, want) {
			t.Errorf("EncodeResource() = % X, want % X", got, want)
		}
	})
}

func TestDecodeResource(t *testing.T) {
	schema := ResourceSchema{ID: 5850, Kind: KindResourceBoolean}

	t.Run("scalar boolean", func(t *testing.T) {
		got, err := DecodeResource([]byte{0xE1, 0x16, 0xDA, 0x01}, schema)
		if err != nil {
			t.Fatalf("DecodeResource() error = %v", err)
		}
		v, ok := got.Resource.Value.Scalar.Bool()
		if got.Resource.ID != 5850 || got.Resource.Value.Shape != ShapeScalar || !ok || !v {
			t.Errorf("DecodeResource() = %+v", got.Resource)
		}
		if got.Size != 4 {
			t.Errorf("DecodeResource() Size = %d, want 4", got.Size)
		}
	})

	t.Run("multiple instances preserve identifiers", func(t *testing.T) {
		buf := []byte{0xA6, 0x16, 0xDA, 0x41, 0x00, 0x01, 0x41, 0x01, 0x00}
		got, err := DecodeResource(buf, schema)
		if err != nil {
			t.Fatalf("DecodeResource() error = %v", err)
		}
		instances := got.Resource.Value.Instances
		if len(instances) != 2 || instances[0].ID != 0 || instances[1].ID != 1 {
			t.Errorf("DecodeResource() instances = %+v", instances)
		}
		v0, _ := instances[0].Value.Bool()
		v1, _ := instances[1].Value.Bool()
		if !v0 || v1 {
			t.Errorf("DecodeResource() values = %v, %v", v0, v1)
		}
	})

	t.Run("identifier mismatch rejected", func(t *testing.T) {
		_, err := DecodeResource([]byte{0xE1, 0x16, 0xDB, 0x01}, schema)
		var e *Error
		if !errors.As(err, &e) || e.Kind != KindIdentifierMismatch {
			t.Errorf("DecodeResource() error = %v, want KindIdentifierMismatch", err)
		}
	})

	t.Run("unexpected frame kind rejected", func(t *testing.T) {
		_, err := DecodeResource([]byte{0x21, 0x16, 0xDA, 0x01}, schema)
		var e *Error
		if !errors.As(err, &e) || e.Kind != KindUnexpectedFrameKind {
			t.Errorf("DecodeResource() error = %v, want KindUnexpectedFrameKind", err)
		}
	})
}

func TestEncodeDecodeResourceRoundTrip(t *testing.T) {
	schema := ResourceSchema{ID: 1, Kind: KindResourceFloat}
	r := Resource{ID: 1, Value: NewScalarResourceValue(NewFloatValue(27.2))}

	encoded, err := EncodeResource(r)
	if err != nil {
		t.Fatalf("EncodeResource() error = %v", err)
	}
	decoded, err := DecodeResource(encoded, schema)
	if err != nil {
		t.Fatalf("DecodeResource() error = %v", err)
	}
	got, _ := decoded.Resource.Value.Scalar.Float()
	if float32(got) != float32(27.2) {
		t.Errorf("round trip float = %v, want 27.2", got)
	}
}
