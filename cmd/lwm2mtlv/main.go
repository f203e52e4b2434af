// Command lwm2mtlv decodes and encodes OMA LwM2M TLV payloads from the
// command line against YAML-described Object schemas.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
