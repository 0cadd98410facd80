package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/lukaszgryglicki/exactnum"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Arithmetic failure (division by zero, irrational root, etc.)
	ExitCommandError = 2 // Command error (bad flags, unreadable config, etc.)
)

// Error codes reported in CLIError.Code.
const (
	ErrCodeGeneric            = "E000"
	ErrCodeInvalidArgument    = "E001"
	ErrCodeDivisionByZero     = "E002"
	ErrCodeIrrationalResult   = "E003"
	ErrCodeUnsupportedOperand = "E004"
	ErrCodeConfig             = "E005"
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format  string
	Writer  io.Writer
	Verbose bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`              // "E001", "E002", etc.
	Message string `json:"message"`           // human-readable message
	Details any    `json:"details,omitempty"` // additional context
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	fmt.Fprintln(f.Writer, data)
	return nil
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// ErrorCode maps an exactnum error kind to its CLI code.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, exactnum.ErrInvalidArgument):
		return ErrCodeInvalidArgument
	case errors.Is(err, exactnum.ErrDivisionByZero):
		return ErrCodeDivisionByZero
	case errors.Is(err, exactnum.ErrIrrationalResult):
		return ErrCodeIrrationalResult
	case errors.Is(err, exactnum.ErrUnsupportedOperand):
		return ErrCodeUnsupportedOperand
	default:
		return ErrCodeGeneric
	}
}

// ConfigError wraps a --config file that could not be loaded.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string { return e.Err.Error() }

func (e *ConfigError) Unwrap() error { return e.Err }

// report writes err through f and returns the ExitError the command should
// fail with. Config failures print E005 and flag misuse E001, both exiting
// with ExitCommandError; library errors exit with ExitFailure.
func report(f *OutputFormatter, err error) error {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		code := ErrCodeInvalidArgument
		var cfgErr *ConfigError
		if errors.As(err, &cfgErr) {
			code = ErrCodeConfig
		}
		_ = f.Error(code, exitErr.Error(), nil)
		return exitErr
	}
	code := ErrorCode(err)
	_ = f.Error(code, err.Error(), nil)
	return WrapExitError(ExitFailure, code, err)
}

// usageError is a command-level failure (exit 2).
func usageError(format string, args ...any) *ExitError {
	return NewExitError(ExitCommandError, fmt.Sprintf(format, args...))
}

// OpResult is the payload of an arithmetic command. Text output prints only
// Result.
type OpResult struct {
	Op       string   `json:"op"`
	Operands []string `json:"operands"`
	Result   string   `json:"result"`
}

func (r OpResult) String() string { return r.Result }
