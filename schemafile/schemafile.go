// Package schemafile loads LwM2M Object model descriptions from YAML files
// into lwm2mtlv.ObjectSchema values, so a schema can be authored and
// versioned outside of Go source.
package schemafile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/punica-io/lwm2m-tlv"
)

// document is the on-disk shape of one Object model file.
type document struct {
	Object struct {
		ID        int              `yaml:"id"`
		Name      string           `yaml:"name"`
		Resources []resourceRecord `yaml:"resources"`
	} `yaml:"object"`
}

type resourceRecord struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
}

var kindNames = map[string]lwm2mtlv.ResourceKind{
	"none":    lwm2mtlv.KindResourceNone,
	"boolean": lwm2mtlv.KindResourceBoolean,
	"integer": lwm2mtlv.KindResourceInteger,
	"float":   lwm2mtlv.KindResourceFloat,
	"string":  lwm2mtlv.KindResourceString,
	"opaque":  lwm2mtlv.KindResourceOpaque,
}

// Load reads one Object model YAML file from path and returns its
// ObjectSchema.
func Load(path string) (lwm2mtlv.ObjectSchema, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return lwm2mtlv.ObjectSchema{}, fmt.Errorf("schemafile: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes a single Object model document from YAML bytes.
func Parse(raw []byte) (lwm2mtlv.ObjectSchema, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return lwm2mtlv.ObjectSchema{}, fmt.Errorf("schemafile: parse: %w", err)
	}

	resources := make([]lwm2mtlv.ResourceSchema, 0, len(doc.Object.Resources))
	for _, r := range doc.Object.Resources {
		kind, ok := kindNames[r.Kind]
		if !ok {
			return lwm2mtlv.ObjectSchema{}, fmt.Errorf("schemafile: object %d resource %d: unrecognized kind %q", doc.Object.ID, r.ID, r.Kind)
		}
		resources = append(resources, lwm2mtlv.ResourceSchema{ID: r.ID, Kind: kind})
	}

	return lwm2mtlv.ObjectSchema{
		ID:       doc.Object.ID,
		Instance: lwm2mtlv.NewObjectInstanceSchema(resources),
	}, nil
}

// LoadDir reads every *.yaml/*.yml file directly under dir as an Object
// model and returns them keyed by Object ID.
func LoadDir(dir string) (map[int]lwm2mtlv.ObjectSchema, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("schemafile: read dir %s: %w", dir, err)
	}

	out := make(map[int]lwm2mtlv.ObjectSchema)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !hasYAMLSuffix(name) {
			continue
		}
		schema, err := Load(dir + "/" + name)
		if err != nil {
			return nil, err
		}
		out[schema.ID] = schema
	}
	return out, nil
}

func hasYAMLSuffix(name string) bool {
	for _, suffix := range []string{".yaml", ".yml"} {
		if len(name) > len(suffix) && name[len(name)-len(suffix):] == suffix {
			return true
		}
	}
	return false
}
