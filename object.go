package lwm2mtlv

// ObjectInstance is one decoded or to-be-encoded Object Instance: its
// identifier and the Resources it carries, in wire order.
type ObjectInstance struct {
	ID        int
	Resources []Resource
}

// LwM2MObject is a full Object: its model identifier and every Instance
// present in this container. Most read/write/observe operations work on a
// single ObjectInstance, but composite and bootstrap flows need a whole
// Object's instances together.
type LwM2MObject struct {
	ID        int
	Instances []ObjectInstance
}

// EncodeObjectInstance encodes an Object Instance's Resources, each as its
// own frame, concatenated and wrapped in one ObjectInstance frame.
func EncodeObjectInstance(inst ObjectInstance) ([]byte, error) {
	payload, err := encodeResources(inst.Resources)
	if err != nil {
		return nil, err
	}
	frame, err := EncodeFrame(FrameObjectInstance, inst.ID, payload)
	if err != nil {
		return nil, err
	}
	_lg.Debugf("encode_object_instance: id=%d resources=%d", inst.ID, len(inst.Resources))
	return frame, nil
}

func encodeResources(resources []Resource) ([]byte, error) {
	out := make([]byte, 0, len(resources)*4)
	for _, r := range resources {
		b, err := EncodeResource(r)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

// DecodeObjectInstance decodes one ObjectInstance frame from the front of
// buf, dispatching each child Resource frame against schema by peeking its
// identifier before decoding. A child identifier absent from schema yields
// KindUnknownIdentifier.
func DecodeObjectInstance(buf []byte, schema ObjectInstanceSchema) (ObjectInstance, int, error) {
	const op = "decode_object_instance"
	frame, err := DecodeFrame(buf)
	if err != nil {
		return ObjectInstance{}, 0, err
	}
	if frame.Kind != FrameObjectInstance {
		return ObjectInstance{}, 0, newErr(op, KindUnexpectedFrameKind)
	}

	resources, err := decodeResourcesAgainstSchema(frame.Value, schema)
	if err != nil {
		return ObjectInstance{}, 0, err
	}

	inst := ObjectInstance{ID: frame.Identifier, Resources: resources}
	_lg.Debugf("decode_object_instance: id=%d resources=%d size=%d", frame.Identifier, len(resources), frame.Size)
	return inst, frame.Size, nil
}

// decodeResourcesAgainstSchema walks a byte slice containing consecutive
// Resource/MultipleResource frames, peeking each one's identifier to find
// its ResourceSchema before decoding it in full.
func decodeResourcesAgainstSchema(buf []byte, schema ObjectInstanceSchema) ([]Resource, error) {
	const op = "decode_resource"
	var resources []Resource
	pos := 0
	for pos < len(buf) {
		peeked, err := DecodeFrame(buf[pos:])
		if err != nil {
			return nil, err
		}
		resSchema, ok := schema.Lookup(peeked.Identifier)
		if !ok {
			return nil, newErr(op, KindUnknownIdentifier)
		}
		decoded, err := DecodeResource(buf[pos:], resSchema)
		if err != nil {
			return nil, err
		}
		resources = append(resources, decoded.Resource)
		pos += decoded.Size
	}
	return resources, nil
}

// EncodeObject encodes a full Object as consecutive ObjectInstance frames,
// one per Instance, in the order given.
func EncodeObject(obj LwM2MObject) ([]byte, error) {
	out := make([]byte, 0, len(obj.Instances)*8)
	for _, inst := range obj.Instances {
		b, err := EncodeObjectInstance(inst)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

// DecodeObject decodes a full Object: every ObjectInstance frame present in
// buf, each checked against the same Resource schema, since every instance
// of a given LwM2M Object shares one Resource layout.
func DecodeObject(buf []byte, schema ObjectSchema) (LwM2MObject, error) {
	var instances []ObjectInstance
	pos := 0
	for pos < len(buf) {
		inst, size, err := DecodeObjectInstance(buf[pos:], schema.Instance)
		if err != nil {
			return LwM2MObject{}, err
		}
		instances = append(instances, inst)
		pos += size
	}
	_lg.Debugf("decode_object: id=%d instances=%d", schema.ID, len(instances))
	return LwM2MObject{ID: schema.ID, Instances: instances}, nil
}
