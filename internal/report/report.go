// Package report renders the two hill-climbing answers for the command line.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hillclimb/climb"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("report: unknown output format")

// Format selects how a Report is written.
type Format string

const (
	// Plain writes the two answers, one integer per line.
	Plain Format = "plain"
	// Table writes a two-column table with labels.
	Table Format = "table"
	// YAML writes a yaml document.
	YAML Format = "yaml"
)

// unreachableText stands in for climb.Unreachable in rendered output.
const unreachableText = "unreachable"

// Report carries the answers of one run.
type Report struct {
	Input     string `yaml:"input"`
	Rows      int    `yaml:"rows"`
	Cols      int    `yaml:"cols"`
	FromStart int    `yaml:"-"`
	BestPath  int    `yaml:"-"`
}

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case Plain, Table, YAML:
		return f, nil
	case "":
		return Plain, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Render writes r to w in the requested format.
func Render(w io.Writer, format Format, r Report) error {
	switch format {
	case Plain, "":
		_, err := fmt.Fprintf(w, "%s\n%s\n", steps(r.FromStart), steps(r.BestPath))
		return err
	case Table:
		_, err := io.WriteString(w, renderTable(r))
		return err
	case YAML:
		return renderYAML(w, r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

func renderTable(r Report) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Route", "Steps"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	table.Append([]string{"From start", steps(r.FromStart)})
	table.Append([]string{"Best trailhead", steps(r.BestPath)})
	table.SetFooter([]string{
		fmt.Sprintf("Grid %dx%d", r.Rows, r.Cols),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

// yamlReport is the serialized shape; unreachable answers become null.
type yamlReport struct {
	Report    `yaml:",inline"`
	FromStart *int `yaml:"from_start"`
	BestPath  *int `yaml:"best_path"`
}

func renderYAML(w io.Writer, r Report) error {
	out := yamlReport{Report: r, FromStart: reachable(r.FromStart), BestPath: reachable(r.BestPath)}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}
	return enc.Close()
}

func reachable(n int) *int {
	if n == climb.Unreachable {
		return nil
	}
	return &n
}

func steps(n int) string {
	if n == climb.Unreachable {
		return unreachableText
	}
	return strconv.Itoa(n)
}
