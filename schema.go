package lwm2mtlv

// ObjectInstanceSchema describes the set of Resources one Object Instance
// may carry: an identifier-keyed lookup over ResourceSchema entries.
type ObjectInstanceSchema struct {
	resources map[int]ResourceSchema
	order     []int // declaration order, as returned by Resources
}

// NewObjectInstanceSchema builds an ObjectInstanceSchema from resource
// schemas in declaration order. Duplicate identifiers overwrite earlier
// entries but keep the first-seen position in iteration order.
func NewObjectInstanceSchema(resources []ResourceSchema) ObjectInstanceSchema {
	s := ObjectInstanceSchema{resources: make(map[int]ResourceSchema, len(resources))}
	for _, r := range resources {
		if _, seen := s.resources[r.ID]; !seen {
			s.order = append(s.order, r.ID)
		}
		s.resources[r.ID] = r
	}
	return s
}

// Lookup returns the ResourceSchema for id, and whether it exists.
func (s ObjectInstanceSchema) Lookup(id int) (ResourceSchema, bool) {
	r, ok := s.resources[id]
	return r, ok
}

// Resources returns the schema's resource entries in declaration order.
func (s ObjectInstanceSchema) Resources() []ResourceSchema {
	out := make([]ResourceSchema, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.resources[id])
	}
	return out
}

// ObjectSchema names one LwM2M Object model: its identifier and the single
// shared ResourceSchema set every instance of the object conforms to. LwM2M
// Object models declare one Resource layout per Object (not per Instance),
// so all instances of an Object share one ObjectInstanceSchema.
type ObjectSchema struct {
	ID       int
	Instance ObjectInstanceSchema
}
