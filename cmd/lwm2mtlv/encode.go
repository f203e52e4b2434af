package main

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	lwm2mtlv "github.com/punica-io/lwm2m-tlv"
	"github.com/punica-io/lwm2m-tlv/schemafile"
)

const InstanceParamStr = "instance"

func init() {
	encodeCmd.Flags().Int(InstanceParamStr, 0, "Object Instance identifier")
	viper.BindPFlag(InstanceParamStr, encodeCmd.Flags().Lookup(InstanceParamStr))
	rootCmd.AddCommand(encodeCmd)
}

// resourceInput is the JSON shape accepted on stdin: one entry per scalar
// Resource to encode, keyed by its identifier.
type resourceInput struct {
	ID    int `json:"id"`
	Value any `json:"value"`
}

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode a JSON array of {id,value} Resources read from stdin as an Object Instance",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetBool(VerboseParamStr) {
			enableVerboseLogging()
		}

		schemaPath := viper.GetString(SchemaParamStr)
		if schemaPath == "" {
			return fmt.Errorf("encode: --%s is required", SchemaParamStr)
		}
		schema, err := schemafile.Load(schemaPath)
		if err != nil {
			return err
		}

		var inputs []resourceInput
		if err := json.NewDecoder(os.Stdin).Decode(&inputs); err != nil {
			return fmt.Errorf("encode: decode stdin: %w", err)
		}

		resources := make([]lwm2mtlv.Resource, 0, len(inputs))
		for _, in := range inputs {
			resSchema, ok := schema.Instance.Lookup(in.ID)
			if !ok {
				return fmt.Errorf("encode: resource %d has no schema entry", in.ID)
			}
			value, err := coerceJSONValue(resSchema.Kind, in.Value)
			if err != nil {
				return fmt.Errorf("encode: resource %d: %w", in.ID, err)
			}
			resources = append(resources, lwm2mtlv.Resource{
				ID:    in.ID,
				Value: lwm2mtlv.NewScalarResourceValue(lwm2mtlv.ScalarValue{Kind: resSchema.Kind, Value: value}),
			})
		}

		inst := lwm2mtlv.ObjectInstance{ID: viper.GetInt(InstanceParamStr), Resources: resources}
		encoded, err := lwm2mtlv.EncodeObjectInstance(inst)
		if err != nil {
			return fmt.Errorf("encode: %w", err)
		}

		fmt.Println(hex.EncodeToString(encoded))
		return nil
	},
}

// coerceJSONValue converts a JSON-decoded value (bool, float64, string) to
// the native type EncodeResourceValue expects for kind.
func coerceJSONValue(kind lwm2mtlv.ResourceKind, v any) (any, error) {
	switch kind {
	case lwm2mtlv.KindResourceNone:
		return nil, nil
	case lwm2mtlv.KindResourceBoolean:
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("expected bool, got %T", v)
		}
		return b, nil
	case lwm2mtlv.KindResourceInteger:
		f, ok := v.(float64)
		if !ok {
			return nil, fmt.Errorf("expected number, got %T", v)
		}
		return int32(f), nil
	case lwm2mtlv.KindResourceFloat:
		f, ok := v.(float64)
		if !ok {
			return nil, fmt.Errorf("expected number, got %T", v)
		}
		return f, nil
	case lwm2mtlv.KindResourceString:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", v)
		}
		return s, nil
	case lwm2mtlv.KindResourceOpaque:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected base64 string, got %T", v)
		}
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("expected base64 string: %w", err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("unrecognized kind %s", kind)
	}
}
