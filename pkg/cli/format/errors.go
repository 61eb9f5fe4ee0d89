package format

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/rzbill/armkit/pkg/arm"
	"github.com/rzbill/armkit/pkg/openenum"
	"golang.org/x/term"
)

// Severities
const (
	ErrorType   = "error"
	WarningType = "warning"
)

var (
	fileColor = color.New(color.FgCyan)
	lineColor = color.New(color.FgHiGreen)
	hintColor = color.New(color.FgYellow, color.Italic)
)

var hints = map[arm.DecodeErrorKind]string{
	arm.MissingField:          "Add the required field %q.",
	arm.TypeMismatch:          "Check the JSON type of %q against the resource schema.",
	arm.MissingDiscriminator:  "Polymorphic objects must carry their %q field.",
	arm.UnknownDiscriminator:  "Run 'armkit kinds' to list the variants of each union.",
	arm.DiscriminatorMismatch: "The payload belongs to another variant; decode it through its union.",
}

// Diagnostic is one problem found in an input file.
type Diagnostic struct {
	File     string `json:"file"`
	Line     int    `json:"line,omitempty"`
	Severity string `json:"severity"`
	Kind     string `json:"kind,omitempty"`
	Path     string `json:"path,omitempty"`
	Message  string `json:"message"`
	Hint     string `json:"hint,omitempty"`
}

// FromError builds an error diagnostic. Decode errors contribute their kind
// and field path, syntax errors their line in data.
func FromError(file string, data []byte, err error) Diagnostic {
	d := Diagnostic{File: file, Severity: ErrorType, Message: err.Error()}

	var de *arm.DecodeError
	if errors.As(err, &de) {
		d.Kind = string(de.Kind)
		d.Path = de.Path
		if h, ok := hints[de.Kind]; ok {
			if strings.Contains(h, "%q") {
				h = fmt.Sprintf(h, de.Path)
			}
			d.Hint = h
		}
	}

	var se *json.SyntaxError
	if errors.As(err, &se) {
		d.Line = LineOf(data, se.Offset)
	}
	return d
}

// FromUnknown builds the warning for an unrecognized open enum value.
func FromUnknown(file string, u openenum.Unknown) Diagnostic {
	return Diagnostic{
		File:     file,
		Severity: WarningType,
		Kind:     "UnknownEnumValue",
		Path:     u.Path,
		Message:  fmt.Sprintf("%s %q is not a known value; it is kept as is", u.Type, u.Value),
	}
}

// LineOf returns the 1-based line holding byte offset in data.
func LineOf(data []byte, offset int64) int {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	if offset < 0 {
		offset = 0
	}
	return bytes.Count(data[:offset], []byte("\n")) + 1
}

// Reporter prints diagnostics as text or collects them for JSON output.
type Reporter struct {
	w            io.Writer
	outputFormat string
	width        int

	diagnostics []Diagnostic
	errorCount  int
	warnCount   int
}

// NewReporter creates a reporter writing to w. outputFormat is "text" or
// "json"; JSON diagnostics are only written by Flush.
func NewReporter(w io.Writer, outputFormat string) *Reporter {
	width := 100
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			width = tw
		}
	}
	return &Reporter{w: w, outputFormat: outputFormat, width: width}
}

// Report records d and prints it in text mode.
func (r *Reporter) Report(d Diagnostic) {
	r.diagnostics = append(r.diagnostics, d)
	if d.Severity == ErrorType {
		r.errorCount++
	} else {
		r.warnCount++
	}
	if r.outputFormat == "json" {
		return
	}

	label := Warning("warning")
	if d.Severity == ErrorType {
		label = Error("error")
	}

	where := fileColor.Sprint(d.File)
	if d.Line > 0 {
		where += ":" + lineColor.Sprint(d.Line)
	}
	if d.Path != "" {
		where += " " + Dim("%s", d.Path)
	}

	fmt.Fprintf(r.w, "%s: %s: %s\n", label, where, r.truncate(d.Message))
	if d.Hint != "" {
		fmt.Fprintf(r.w, "  %s\n", hintColor.Sprintf("hint: %s", d.Hint))
	}
}

func (r *Reporter) truncate(msg string) string {
	limit := r.width - 20
	if limit < 40 || len(msg) <= limit {
		return msg
	}
	return msg[:limit-3] + "..."
}

// Errors returns the number of error diagnostics reported.
func (r *Reporter) Errors() int { return r.errorCount }

// Warnings returns the number of warnings reported.
func (r *Reporter) Warnings() int { return r.warnCount }

// Diagnostics returns everything reported so far.
func (r *Reporter) Diagnostics() []Diagnostic {
	return append([]Diagnostic(nil), r.diagnostics...)
}

// Flush writes the JSON report, or in text mode a one-line summary when
// anything was reported.
func (r *Reporter) Flush(files int) error {
	if r.outputFormat == "json" {
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]interface{}{
			"files":       files,
			"errors":      r.errorCount,
			"warnings":    r.warnCount,
			"diagnostics": r.Diagnostics(),
		})
	}
	if r.errorCount == 0 && r.warnCount == 0 {
		return nil
	}
	_, err := fmt.Fprintf(r.w, "%s %d files, %d errors, %d warnings\n",
		StatusSymbol(r.errorCount == 0), files, r.errorCount, r.warnCount)
	return err
}
