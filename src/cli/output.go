package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"ratio/src/numeric/rational"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Check failed (values not equal)
	ExitCommandError = 2 // Bad input, bad flags, unreadable config
)

// Error codes reported in CLI output.
const (
	ErrCodeGeneric         = "E000"
	ErrCodeMalformed       = "E001"
	ErrCodeNonNumeric      = "E002"
	ErrCodeZeroDenominator = "E003"
)

// ExitError is a failure that has already been reported on stdout or stderr.
// Execute turns it into the process status and prints nothing further.
type ExitError struct {
	Code    int    // ExitFailure for unequal values, ExitCommandError for bad input
	Message string // summary kept for the debug log and errors.As callers
	Err     error  // rational error behind bad input, if any
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// valuesDiffer is returned by equal after the comparison has been printed.
func valuesDiffer() *ExitError {
	return &ExitError{Code: ExitFailure, Message: "values differ"}
}

// invalidInput is returned once a rational error has gone through
// OutputFormatter.Error.
func invalidInput(err error) *ExitError {
	return &ExitError{Code: ExitCommandError, Message: "invalid rational", Err: err}
}

// GetExitCode maps a command error to the process status. Anything that is
// not an ExitError was rejected by cobra or the config loader before a
// rational was read, which is a usage problem: ExitCommandError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

// errorCode classifies rational errors for output.
func errorCode(err error) string {
	switch {
	case errors.Is(err, rational.ErrMalformed):
		return ErrCodeMalformed
	case errors.Is(err, rational.ErrNonNumeric):
		return ErrCodeNonNumeric
	case errors.Is(err, rational.ErrZeroDenominator):
		return ErrCodeZeroDenominator
	default:
		return ErrCodeGeneric
	}
}

// OutputFormatter writes results as text, JSON or YAML.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // text mode errors go here (defaults to Writer)
}

// CLIResponse is the envelope for JSON and YAML output.
type CLIResponse struct {
	Status string    `json:"status" yaml:"status"`                   // "ok" or "error"
	Data   any       `json:"data,omitempty" yaml:"data,omitempty"`   // success payload
	Error  *CLIError `json:"error,omitempty" yaml:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
	Details any    `json:"details,omitempty" yaml:"details,omitempty"`
}

// texter is implemented by payloads with a line-oriented text form.
type texter interface {
	Lines() []string
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(data any) error {
	switch f.Format {
	case "json":
		return json.NewEncoder(f.Writer).Encode(CLIResponse{Status: "ok", Data: data})
	case "yaml":
		return f.writeYAML(CLIResponse{Status: "ok", Data: data})
	}

	if t, ok := data.(texter); ok {
		for _, line := range t.Lines() {
			if _, err := fmt.Fprintln(f.Writer, line); err != nil {
				return err
			}
		}
		return nil
	}
	_, err := fmt.Fprintln(f.Writer, data)
	return err
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details any) error {
	resp := CLIResponse{
		Status: "error",
		Error:  &CLIError{Code: code, Message: message, Details: details},
	}
	switch f.Format {
	case "json":
		return json.NewEncoder(f.Writer).Encode(resp)
	case "yaml":
		return f.writeYAML(resp)
	}

	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	_, err := fmt.Fprintf(w, "Error [%s]: %s\n", code, message)
	return err
}

func (f *OutputFormatter) writeYAML(v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	// Separate consecutive documents, as in the REPL.
	if _, err := io.WriteString(f.Writer, "---\n"); err != nil {
		return err
	}
	_, err = f.Writer.Write(data)
	return err
}

// Record describes one rational as read and, optionally, normalized.
type Record struct {
	Input      string             `json:"input" yaml:"input"`
	Value      *rational.Rational `json:"value" yaml:"value"`
	Normalized *rational.Rational `json:"normalized,omitempty" yaml:"normalized,omitempty"`
	Whole      bool               `json:"whole" yaml:"whole"`
}

// newRecord describes r. With normalize set, a normalized copy is recorded
// alongside the stored value and classification follows the copy.
func newRecord(input string, r *rational.Rational, normalize bool) Record {
	rec := Record{Input: input, Value: r}
	shown := r
	if normalize {
		n := *r
		rec.Normalized = n.Normalize()
		shown = rec.Normalized
	}
	rec.Whole = shown.IsWhole()
	return rec
}

func (r Record) String() string {
	shown := r.Value
	if r.Normalized != nil {
		shown = r.Normalized
	}
	kind := "decimal"
	if r.Whole {
		kind = "whole"
	}
	return fmt.Sprintf("%s -> %s (%s)", r.Input, shown, kind)
}

// Records is a list of Record with one text line each.
type Records []Record

func (rs Records) Lines() []string {
	lines := make([]string, len(rs))
	for i, r := range rs {
		lines[i] = r.String()
	}
	return lines
}

// Comparison is the result of the equal command.
type Comparison struct {
	Left  *rational.Rational `json:"left" yaml:"left"`
	Right *rational.Rational `json:"right" yaml:"right"`
	Equal bool               `json:"equal" yaml:"equal"`
}

func (c Comparison) String() string {
	op := "!="
	if c.Equal {
		op = "=="
	}
	return strings.Join([]string{c.Left.String(), op, c.Right.String()}, " ")
}
