package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	lwm2mtlv "github.com/punica-io/lwm2m-tlv"
)

const (
	VerboseParamStr = "verbose"
	SchemaParamStr  = "schema"
)

var rootCmd = &cobra.Command{
	Use:   "lwm2mtlv",
	Short: "Inspect and generate OMA LwM2M TLV payloads",
	Long:  "lwm2mtlv encodes and decodes OMA LwM2M TLV frames against YAML-described Object schemas.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String(FormatParamStr, FormatTableStr, fmt.Sprintf("output format: %s", strings.Join(allSupportedFormats(), "|")))
	rootCmd.PersistentFlags().String(SchemaParamStr, "", "path to an Object model YAML file")
	rootCmd.PersistentFlags().Bool(VerboseParamStr, false, "enable trace logging")

	viper.BindPFlag(FormatParamStr, rootCmd.PersistentFlags().Lookup(FormatParamStr))
	viper.BindPFlag(SchemaParamStr, rootCmd.PersistentFlags().Lookup(SchemaParamStr))
	viper.BindPFlag(VerboseParamStr, rootCmd.PersistentFlags().Lookup(VerboseParamStr))

	viper.SetEnvPrefix("lwm2mtlv")
	viper.BindEnv(FormatParamStr)
	viper.BindEnv(SchemaParamStr)
	viper.BindEnv(VerboseParamStr)
}

func enableVerboseLogging() {
	lg := logrus.New()
	lg.SetLevel(logrus.TraceLevel)
	lwm2mtlv.SetLogger(lg)
}
