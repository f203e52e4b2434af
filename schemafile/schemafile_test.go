package schemafile

import (
	"testing"

	"github.com/punica-io/lwm2m-tlv"
)

const deviceObjectYAML = `
object:
  id: 3
  name: Device
  resources:
    - id: 0
      name: Manufacturer
      kind: string
    - id: 1
      name: Model Number
      kind: string
    - id: 9
      name: Battery Level
      kind: integer
`

func TestParse(t *testing.T) {
	schema, err := Parse([]byte(deviceObjectYAML))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if schema.ID != 3 {
		t.Errorf("schema.ID = %d, want 3", schema.ID)
	}
	res, ok := schema.Instance.Lookup(9)
	if !ok || res.Kind != lwm2mtlv.KindResourceInteger {
		t.Errorf("Lookup(9) = %+v, %v", res, ok)
	}
	if len(schema.Instance.Resources()) != 3 {
		t.Errorf("Resources() len = %d, want 3", len(schema.Instance.Resources()))
	}
}

func TestParseUnrecognizedKind(t *testing.T) {
	const bad = `
object:
  id: 3
  resources:
    - id: 0
      kind: wat
`
	_, err := Parse([]byte(bad))
	if err == nil {
		t.Errorf("Parse() error = nil, want error for unrecognized kind")
	}
}
