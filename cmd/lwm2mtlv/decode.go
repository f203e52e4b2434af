package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	lwm2mtlv "github.com/punica-io/lwm2m-tlv"
	"github.com/punica-io/lwm2m-tlv/schemafile"
)

func init() {
	rootCmd.AddCommand(decodeCmd)
}

var decodeCmd = &cobra.Command{
	Use:   "decode <hex-payload>",
	Short: "Decode a TLV-encoded Object Instance against a schema file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetBool(VerboseParamStr) {
			enableVerboseLogging()
		}

		schemaPath := viper.GetString(SchemaParamStr)
		if schemaPath == "" {
			return fmt.Errorf("decode: --%s is required", SchemaParamStr)
		}
		schema, err := schemafile.Load(schemaPath)
		if err != nil {
			return err
		}

		payload, err := hex.DecodeString(args[0])
		if err != nil {
			return fmt.Errorf("decode: invalid hex payload: %w", err)
		}

		inst, _, err := lwm2mtlv.DecodeObjectInstance(payload, schema.Instance)
		if err != nil {
			return fmt.Errorf("decode: %w", err)
		}

		format, err := NewFormatFromString(viper.GetString(FormatParamStr))
		if err != nil {
			return err
		}
		return format.Render(os.Stdout, inst.Resources)
	},
}
