package main

import (
	"encoding/base64"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	lwm2mtlv "github.com/punica-io/lwm2m-tlv"
)

// Format selects how decoded Resources are rendered to an io.Writer.
type Format int

const (
	FormatTable Format = iota
	FormatJSON
	FormatCSV
)

var (
	FormatParamStr = "format"
	FormatTableStr = "table"
	FormatJSONStr  = "json"
	FormatCSVStr   = "csv"
)

func allSupportedFormats() []string {
	return []string{FormatTableStr, FormatJSONStr, FormatCSVStr}
}

var formatMap = map[string]Format{
	FormatTableStr: FormatTable,
	FormatJSONStr:  FormatJSON,
	FormatCSVStr:   FormatCSV,
}

// NewFormatFromString parses the --format flag value.
func NewFormatFromString(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if format, ok := formatMap[s]; ok {
		return format, nil
	}
	return FormatTable, fmt.Errorf("invalid format: %s", s)
}

func (f Format) String() string {
	for k, v := range formatMap {
		if v == f {
			return k
		}
	}
	return "unknown"
}

// resourceRow is one flattened Resource (or, for a multi-instance Resource,
// one of its instances) ready for rendering.
type resourceRow struct {
	ID    int    `json:"id"`
	Shape string `json:"shape"`
	Value string `json:"value"`
}

func resourceRows(resources []lwm2mtlv.Resource) []resourceRow {
	rows := make([]resourceRow, 0, len(resources))
	for _, r := range resources {
		if r.Value.Shape == lwm2mtlv.ShapeScalar {
			rows = append(rows, resourceRow{ID: r.ID, Shape: "scalar", Value: formatScalar(r.Value.Scalar)})
			continue
		}
		for _, instance := range r.Value.Instances {
			rows = append(rows, resourceRow{
				ID:    r.ID,
				Shape: "instance[" + strconv.Itoa(instance.ID) + "]",
				Value: formatScalar(instance.Value),
			})
		}
	}
	return rows
}

func formatScalar(v lwm2mtlv.ScalarValue) string {
	if b, ok := v.Value.([]byte); ok {
		return base64.StdEncoding.EncodeToString(b)
	}
	return fmt.Sprintf("%v", v.Value)
}

// Render writes resources to w in the chosen Format.
func (f Format) Render(w io.Writer, resources []lwm2mtlv.Resource) error {
	switch f {
	case FormatJSON:
		return renderJSON(w, resources)
	case FormatCSV:
		return renderCSV(w, resources)
	default:
		return renderTable(w, resources)
	}
}

func renderTable(w io.Writer, resources []lwm2mtlv.Resource) error {
	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSHAPE\tVALUE")
	for _, row := range resourceRows(resources) {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", row.ID, row.Shape, row.Value)
	}
	return tw.Flush()
}

func renderJSON(w io.Writer, resources []lwm2mtlv.Resource) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resourceRows(resources))
}

func renderCSV(w io.Writer, resources []lwm2mtlv.Resource) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()
	if err := cw.Write([]string{"id", "shape", "value"}); err != nil {
		return err
	}
	for _, row := range resourceRows(resources) {
		if err := cw.Write([]string{strconv.Itoa(row.ID), row.Shape, row.Value}); err != nil {
			return err
		}
	}
	return nil
}
