package format

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rzbill/armkit/pkg/arm"
	"github.com/rzbill/armkit/pkg/openenum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withoutColor(t *testing.T) {
	t.Helper()
	prev := IsColorEnabled()
	EnableColor(false)
	t.Cleanup(func() { EnableColor(prev) })
}

func TestFromError_DecodeError(t *testing.T) {
	err := arm.WrapDecodeError(arm.NewMissingFieldError("IncidentProperties", "title"), "properties")
	d := FromError("incident.json", nil, err)

	assert.Equal(t, ErrorType, d.Severity)
	assert.Equal(t, "MissingField", d.Kind)
	assert.Equal(t, "properties.title", d.Path)
	assert.Equal(t, `Add the required field "properties.title".`, d.Hint)
	assert.Zero(t, d.Line)
}

func TestFromError_SyntaxLine(t *testing.T) {
	data := []byte("{\n  \"name\": \"a\",\n  oops\n}")
	var v map[string]any
	err := arm.Unmarshal(data, &v)
	require.Error(t, err)

	d := FromError("bad.json", data, err)
	assert.Equal(t, 3, d.Line)
	assert.Equal(t, "Malformed", d.Kind)
}

func TestFromError_PlainError(t *testing.T) {
	d := FromError("x.json", nil, errors.New("boom"))
	assert.Equal(t, "boom", d.Message)
	assert.Empty(t, d.Kind)
	assert.Empty(t, d.Hint)
}

func TestLineOf(t *testing.T) {
	data := []byte("a\nb\nc")
	assert.Equal(t, 1, LineOf(data, 0))
	assert.Equal(t, 2, LineOf(data, 2))
	assert.Equal(t, 3, LineOf(data, 100))
	assert.Equal(t, 1, LineOf(data, -1))
}

func TestReporter_Text(t *testing.T) {
	withoutColor(t)
	var buf bytes.Buffer
	r := NewReporter(&buf, "text")

	r.Report(FromUnknown("incident.json", openenum.Unknown{Path: "properties.severity", Type: "IncidentSeverity", Value: "Critical"}))
	r.Report(FromError("rule.json", nil, &arm.DecodeError{Kind: arm.UnknownDiscriminator, Type: "AlertRule", Path: "kind", Value: "Nrt"}))
	require.NoError(t, r.Flush(2))

	out := buf.String()
	assert.Contains(t, out, `warning: incident.json properties.severity: IncidentSeverity "Critical" is not a known value`)
	assert.Contains(t, out, `error: rule.json kind: decode AlertRule: unknown kind "Nrt"`)
	assert.Contains(t, out, "hint: Run 'armkit kinds'")
	assert.Contains(t, out, "✗ 2 files, 1 errors, 1 warnings")
	assert.Equal(t, 1, r.Errors())
	assert.Equal(t, 1, r.Warnings())
}

func TestReporter_QuietWhenClean(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf, "text").Flush(3))
	assert.Empty(t, buf.String())
}

func TestReporter_JSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, "json")
	r.Report(FromUnknown("a.json", openenum.Unknown{Path: "kind", Type: "DataConnectorKind", Value: "Future"}))
	assert.Empty(t, buf.String(), "json diagnostics wait for Flush")
	require.NoError(t, r.Flush(1))

	var report struct {
		Files       int          `json:"files"`
		Warnings    int          `json:"warnings"`
		Diagnostics []Diagnostic `json:"diagnostics"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	assert.Equal(t, 1, report.Files)
	assert.Equal(t, 1, report.Warnings)
	require.Len(t, report.Diagnostics, 1)
	assert.Equal(t, "UnknownEnumValue", report.Diagnostics[0].Kind)
}

func TestTable(t *testing.T) {
	withoutColor(t)
	out, err := Table([]string{"NAME", "VALUES"}, [][]string{{"SourceType", "Local file, Remote storage"}})
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Local file, Remote storage")

	out, err = Table([]string{"NAME"}, nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestShouldColor(t *testing.T) {
	assert.False(t, ShouldColor(false, nil))

	t.Setenv("ARMKIT_FORCE_COLOR", "1")
	assert.True(t, ShouldColor(true, nil))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ShouldColor(true, nil))
}
