package lwm2mtlv

// ResourceValueShape tags whether a ResourceValue carries a single scalar or
// an ordered sequence of resource instances.
type ResourceValueShape int

const (
	// ShapeScalar means the Resource carries exactly one value.
	ShapeScalar ResourceValueShape = iota
	// ShapeInstances means the Resource carries an ordered sequence of
	// same-kind values, each identified by a resource-instance ID.
	ShapeInstances
)

// ResourceInstance is one element of a multi-instance Resource: its wire
// identifier (preserved verbatim across decode/re-encode, rather than
// renumbered from 0) and its value.
type ResourceInstance struct {
	ID    int
	Value ScalarValue
}

// ResourceValue is a Resource's value, which is always exactly one of: a
// single scalar, or an ordered sequence of resource instances of the same
// kind. Do not construct this struct directly; use NewScalarResourceValue
// or NewInstancesResourceValue.
type ResourceValue struct {
	Shape     ResourceValueShape
	Kind      ResourceKind
	Scalar    ScalarValue
	Instances []ResourceInstance
}

// NewScalarResourceValue builds a single-valued ResourceValue.
func NewScalarResourceValue(v ScalarValue) ResourceValue {
	return ResourceValue{Shape: ShapeScalar, Kind: v.Kind, Scalar: v}
}

// NewInstancesResourceValue builds a multi-instance ResourceValue from
// values in encounter order. The resource-instance IDs are assigned
// 0..len(values)-1; use NewInstancesResourceValueWithIDs to preserve
// non-contiguous wire identifiers across a decode/re-encode round trip.
func NewInstancesResourceValue(kind ResourceKind, values []ScalarValue) ResourceValue {
	instances := make([]ResourceInstance, len(values))
	for i, v := range values {
		instances[i] = ResourceInstance{ID: i, Value: v}
	}
	return ResourceValue{Shape: ShapeInstances, Kind: kind, Instances: instances}
}

// NewInstancesResourceValueWithIDs builds a multi-instance ResourceValue
// from explicit (ID, value) pairs, in the order given.
func NewInstancesResourceValueWithIDs(kind ResourceKind, instances []ResourceInstance) ResourceValue {
	cp := make([]ResourceInstance, len(instances))
	copy(cp, instances)
	return ResourceValue{Shape: ShapeInstances, Kind: kind, Instances: cp}
}

// Resource is one identified, typed value ready for encoding, or produced by
// decoding.
type Resource struct {
	ID    int
	Value ResourceValue
}

// ResourceSchema is the decoder-side description of one expected Resource:
// its identifier and declared kind. The decoder uses it to interpret an
// otherwise untyped byte payload.
type ResourceSchema struct {
	ID   int
	Kind ResourceKind
}

// EncodeResource encodes a Resource to its frame(s): a single Resource frame
// for a scalar value, or a MultipleResource frame wrapping one
// ResourceInstance frame per element for a multi-instance value.
func EncodeResource(r Resource) ([]byte, error) {
	const op = "encode_resource"
	switch r.Value.Shape {
	case ShapeScalar:
		payload, err := EncodeResourceValue(r.Value.Kind, r.Value.Scalar.Value)
		if err != nil {
			return nil, err
		}
		frame, err := EncodeFrame(FrameResource, r.ID, payload)
		if err != nil {
			return nil, err
		}
		_lg.Debugf("encode_resource: id=%d kind=%s shape=scalar", r.ID, r.Value.Kind)
		return frame, nil

	case ShapeInstances:
		inner := make([]byte, 0, len(r.Value.Instances)*4)
		for _, instance := range r.Value.Instances {
			payload, err := EncodeResourceValue(r.Value.Kind, instance.Value.Value)
			if err != nil {
				return nil, err
			}
			instanceFrame, err := EncodeFrame(FrameResourceInstance, instance.ID, payload)
			if err != nil {
				return nil, err
			}
			inner = append(inner, instanceFrame...)
		}
		frame, err := EncodeFrame(FrameMultipleResource, r.ID, inner)
		if err != nil {
			return nil, err
		}
		_lg.Debugf("encode_resource: id=%d kind=%s shape=instances count=%d", r.ID, r.Value.Kind, len(r.Value.Instances))
		return frame, nil

	default:
		return nil, newErr(op, KindUnrecognizedKind)
	}
}

// DecodedResource is the result of decoding one Resource: its value plus
// the number of input bytes consumed, so a container decoder can advance
// past it.
type DecodedResource struct {
	Resource Resource
	Size     int
}

// DecodeResource decodes one Resource frame from the front of buf against
// schema, which names the expected identifier and kind.
func DecodeResource(buf []byte, schema ResourceSchema) (DecodedResource, error) {
	const op = "decode_resource"
	frame, err := DecodeFrame(buf)
	if err != nil {
		return DecodedResource{}, err
	}
	if frame.Identifier != schema.ID {
		return DecodedResource{}, newErr(op, KindIdentifierMismatch)
	}

	switch frame.Kind {
	case FrameResource:
		v, err := DecodeResourceValue(schema.Kind, frame.Value)
		if err != nil {
			return DecodedResource{}, err
		}
		scalar := ScalarValue{Kind: schema.Kind, Value: v}
		res := Resource{ID: frame.Identifier, Value: NewScalarResourceValue(scalar)}
		_lg.Debugf("decode_resource: id=%d kind=%s shape=scalar size=%d", frame.Identifier, schema.Kind, frame.Size)
		return DecodedResource{Resource: res, Size: frame.Size}, nil

	case FrameMultipleResource:
		instances, err := decodeResourceInstances(frame.Value, schema.Kind)
		if err != nil {
			return DecodedResource{}, err
		}
		res := Resource{ID: frame.Identifier, Value: NewInstancesResourceValueWithIDs(schema.Kind, instances)}
		_lg.Debugf("decode_resource: id=%d kind=%s shape=instances count=%d size=%d", frame.Identifier, schema.Kind, len(instances), frame.Size)
		return DecodedResource{Resource: res, Size: frame.Size}, nil

	default:
		return DecodedResource{}, newErr(op, KindUnexpectedFrameKind)
	}
}

// decodeResourceInstances walks a MultipleResource payload, decoding
// ResourceInstance sub-frames in encounter order and collecting their
// values, preserving each sub-frame's wire identifier.
func decodeResourceInstances(payload []byte, kind ResourceKind) ([]ResourceInstance, error) {
	const op = "decode_resource_instance"
	var instances []ResourceInstance
	pos := 0
	for pos < len(payload) {
		frame, err := DecodeFrame(payload[pos:])
		if err != nil {
			return nil, err
		}
		if frame.Kind != FrameResourceInstance {
			return nil, newErr(op, KindUnexpectedFrameKind)
		}
		v, err := DecodeResourceValue(kind, frame.Value)
		if err != nil {
			return nil, err
		}
		instances = append(instances, ResourceInstance{
			ID:    frame.Identifier,
			Value: ScalarValue{Kind: kind, Value: v},
		})
		pos += frame.Size
	}
	return instances, nil
}
