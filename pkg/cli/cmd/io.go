package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/itchyny/gojq"
	"github.com/rzbill/armkit/pkg/catalog"
	"github.com/rzbill/armkit/pkg/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// input is one decoded payload.
type input struct {
	path  string
	data  []byte
	entry catalog.Entry
	value any
}

// decodeInput reads path ("-" is stdin), converts YAML to JSON and decodes
// it with the entry named typeName, or the detected one when typeName is
// empty. On failure the returned input still carries the raw data.
func (a *app) decodeInput(cmd *cobra.Command, path, typeName string) (*input, error) {
	in := &input{path: path}

	raw, err := readInput(cmd, path)
	if err != nil {
		return in, err
	}
	in.data, err = normalizeInput(raw)
	if err != nil {
		in.data = raw
		return in, err
	}

	if typeName != "" {
		in.entry, err = a.resolveEntry(typeName)
	} else {
		in.entry, err = a.catalog.Detect(in.data)
	}
	if err != nil {
		return in, err
	}

	in.value, err = in.entry.Decode(in.data)
	if err != nil {
		return in, err
	}

	a.logger.Debug("Decoded payload",
		log.Str("file", path),
		log.Str("entry", in.entry.Name))
	return in, nil
}

// resolveEntry accepts a full catalog name or, when unambiguous, the part
// after the provider: "alertRule" for "securityinsights/alertRule".
func (a *app) resolveEntry(name string) (catalog.Entry, error) {
	if e, ok := a.catalog.Lookup(name); ok {
		return e, nil
	}

	var matches []string
	for _, e := range a.catalog.Entries() {
		if strings.HasSuffix(e.Name, "/"+name) {
			matches = append(matches, e.Name)
		}
	}
	switch len(matches) {
	case 1:
		e, _ := a.catalog.Lookup(matches[0])
		return e, nil
	case 0:
		return catalog.Entry{}, fmt.Errorf("unknown type %q, run 'armkit types' to list them", name)
	default:
		return catalog.Entry{}, fmt.Errorf("type %q is ambiguous: %s", name, strings.Join(matches, ", "))
	}
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}

// normalizeInput passes JSON through and converts anything else from YAML.
func normalizeInput(data []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] == '{' || trimmed[0] == '[' {
		return data, nil
	}

	var v interface{}
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	out, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to convert YAML to JSON: %w", err)
	}
	return out, nil
}

// printValue writes v to stdout in the configured output format, or the
// results of the jq expression over it when expr is set.
func (a *app) printValue(cmd *cobra.Command, v any, expr string) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal to JSON: %w", err)
	}
	if expr == "" {
		return a.printJSON(cmd, data)
	}

	results, err := runQuery(expr, data)
	if err != nil {
		return err
	}
	for _, r := range results {
		out, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to marshal query result: %w", err)
		}
		if err := a.printJSON(cmd, out); err != nil {
			return err
		}
	}
	return nil
}

// runQuery evaluates a jq expression over a JSON document.
func runQuery(expr string, data []byte) ([]any, error) {
	query, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid jq expression: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse query input: %w", err)
	}

	var results []any
	iter := query.Run(doc)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			return nil, fmt.Errorf("jq: %w", err)
		}
		results = append(results, v)
	}
	return results, nil
}

// printJSON writes an already encoded JSON document, re-encoding it as YAML
// when that is the configured format.
func (a *app) printJSON(cmd *cobra.Command, data []byte) error {
	out := cmd.OutOrStdout()
	switch a.cfg.Output {
	case "yaml":
		y, err := jsonToYAML(data)
		if err != nil {
			return err
		}
		_, err = out.Write(y)
		return err
	default:
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return fmt.Errorf("failed to indent JSON: %w", err)
		}
		buf.WriteByte('\n')
		_, err := out.Write(buf.Bytes())
		return err
	}
}

// jsonToYAML re-encodes a JSON document as block-style YAML, keeping the
// member order of the JSON.
func jsonToYAML(data []byte) ([]byte, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to marshal to YAML: %w", err)
	}
	clearStyle(&node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, fmt.Errorf("failed to marshal to YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func clearStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		clearStyle(c)
	}
}

// formatAge formats a time as a short age, e.g. "5m" or "3d".
func formatAge(t time.Time) string {
	if t.IsZero() {
		return "Unknown"
	}

	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "Just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	case d < 365*24*time.Hour:
		return fmt.Sprintf("%dmo", int(d.Hours()/24/30))
	}
	return fmt.Sprintf("%dy", int(d.Hours()/24/365))
}
