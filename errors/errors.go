// The errors package provides the error primitives used by the DAT codecs.
//
// Decoders in this module return two errors: a fatal error, and a warning
// that collects every recoverable degradation (an instruction series kept as
// raw bytes, a chunk that could not be decrypted, and so on). Warnings are
// gathered into an Errors list with Union.
package errors

import (
	"context"
	"log/slog"
	"strings"
)

// Errors is a list of errors.
type Errors []error

// Error formats the list with one message per line. Lines within messages
// are indented with a tab.
func (errs Errors) Error() string {
	switch len(errs) {
	case 0:
		return "no errors"
	case 1:
		return errs[0].Error()
	default:
		var buf strings.Builder
		buf.WriteString("multiple errors:")
		for _, err := range errs {
			buf.WriteString("\n\t")
			buf.WriteString(strings.ReplaceAll(err.Error(), "\n", "\n\t"))
		}
		return buf.String()
	}
}

// Unwrap allows errors.Is and errors.As to match any error in the list.
func (errs Errors) Unwrap() []error {
	return errs
}

// Append returns errs with each non-nil err appended to it.
func (errs Errors) Append(err ...error) Errors {
	for _, err := range err {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// Return returns nil if errs is empty, and errs otherwise.
func (errs Errors) Return() error {
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Log writes each error in errs to logger as a separate warning record with
// the given message. A nil logger discards the records.
func (errs Errors) Log(logger *slog.Logger, msg string, args ...any) {
	if logger == nil {
		return
	}
	ctx := context.Background()
	if !logger.Enabled(ctx, slog.LevelWarn) {
		return
	}
	for _, err := range errs {
		logger.Warn(msg, append(args, slog.String("cause", err.Error()))...)
	}
}

// Union combines errs into one Errors. Any errs that are themselves Errors
// are flattened. Returns nil if every err is nil or empty.
func Union(errs ...error) error {
	var e Errors
	for _, err := range errs {
		switch err := err.(type) {
		case nil:
			continue
		case Errors:
			e = e.Append(err...)
		default:
			e = append(e, err)
		}
	}
	return e.Return()
}

// List returns err as a list. Errors are returned as is, nil becomes an
// empty list, and any other error becomes a list of one.
func List(err error) Errors {
	switch err := err.(type) {
	case nil:
		return nil
	case Errors:
		return err
	default:
		return Errors{err}
	}
}
