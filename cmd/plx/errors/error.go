// Package errors builds errors to be shown to users of plx.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

type Verbose interface {
	Verbose() string
}

// CUIError is an error with a short summary for users.
//
// Error() returns the summary (and detail, if any).
// Verbose() also tells its cause chain.
type CUIError interface {
	error
	Verbose
	Summary() string
}

type cuierror struct {
	summary     string
	verbose     string
	printDetail func(summary string) (string, error)
	base        error
}

func (ce *cuierror) Unwrap() error {
	return ce.base
}

func (ce *cuierror) Summary() string {
	return ce.summary
}

func (ce *cuierror) Error() string {
	if ce.printDetail == nil {
		return ce.summary
	}
	message, err := ce.printDetail(ce.summary)
	if err != nil {
		message = fmt.Sprintf(
			"%s\n(building detailed message causes error: %s)",
			ce.summary, err.Error(),
		)
	}
	return message
}

func (ce *cuierror) Verbose() string {
	message := []string{ce.Error()}
	if ce.verbose != "" {
		message = append(message, " ("+ce.verbose+") ")
	}

	switch base := ce.base.(type) {
	case nil:
	case Verbose:
		message = append(message, "caused by: ", base.Verbose())
	default:
		message = append(message, "caused by: ", base.Error())
	}
	return strings.Join(message, "\n")
}

type CuiErrorOption func(cerr *cuierror) *cuierror

func NewCuiError(summary string, options ...CuiErrorOption) CUIError {
	err := &cuierror{summary: summary}
	for _, o := range options {
		err = o(err)
	}
	return err
}

// Wrap makes err a CUIError with summary.
//
// A nil err is kept nil.
func Wrap(summary string, err error, options ...CuiErrorOption) error {
	if err == nil {
		return nil
	}
	return NewCuiError(summary, append([]CuiErrorOption{WithCause(err)}, options...)...)
}

// Describe tells err for users.
//
// When err is (or wraps) a CUIError, its Verbose() is used if verbose is true.
func Describe(err error, verbose bool) string {
	var ce CUIError
	if !errors.As(err, &ce) {
		return err.Error()
	}
	if verbose {
		return ce.Verbose()
	}
	return ce.Error()
}

func WithVerbose(verbose string) CuiErrorOption {
	return func(cerr *cuierror) *cuierror {
		cerr.verbose = verbose
		return cerr
	}
}

func WithDetail(printer func(summary string) (string, error)) CuiErrorOption {
	return func(cerr *cuierror) *cuierror {
		cerr.printDetail = printer
		return cerr
	}
}

// WithDetailText appends a fixed text after the summary.
func WithDetailText(detail string) CuiErrorOption {
	return WithDetail(func(summary string) (string, error) {
		return summary + "\n" + detail, nil
	})
}

func WithCause(err error) CuiErrorOption {
	return func(cerr *cuierror) *cuierror {
		cerr.base = err
		return cerr
	}
}
