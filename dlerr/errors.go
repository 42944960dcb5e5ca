package dlerr

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// Errors collects the DLErrors of a batch. A nil *Errors is empty.
type Errors struct {
	errs []DLError
}

func (r *Errors) With(err ...DLError) *Errors {
	if r == nil {
		return &Errors{errs: err}
	}
	r.errs = append(r.errs, err...)
	return r
}

func (r *Errors) Merge(err *Errors) *Errors {
	if r == nil {
		return err
	}
	if err == nil {
		return r
	}
	if len(err.errs) == 0 {
		return r
	}
	return r.With(err.errs...)
}

func (r *Errors) Errors() []DLError {
	if r == nil {
		return nil
	}
	return r.errs
}

func (r *Errors) HasError() bool {
	if r == nil {
		return false
	}
	return len(r.errs) > 0
}

// WithCode returns the collected errors of the given code, in order.
func (r *Errors) WithCode(code ErrCode) []DLError {
	var found []DLError
	for _, e := range r.Errors() {
		if e.Code() == code {
			found = append(found, e)
		}
	}
	return found
}

// SortByLine orders the errors by source line, keeping the order of errors on the same line.
func (r *Errors) SortByLine() {
	if r == nil {
		return
	}
	slices.SortStableFunc(r.errs, func(a, b DLError) int {
		return a.Line() - b.Line()
	})
}

// String renders one error per line, see FormatWithCode.
func (r *Errors) String() string {
	sb := &strings.Builder{}
	for i, e := range r.Errors() {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(FormatWithCode(e))
	}
	return sb.String()
}

func (r *Errors) LogValue() slog.Value {
	var vals []slog.Attr
	for i, v := range r.Errors() {
		vals = append(vals, slog.Attr{
			Key: fmt.Sprint("e", i),
			Value: slog.GroupValue(
				slog.Attr{
					Key:   "msg",
					Value: slog.StringValue(FormatWithCode(v)),
				},
			),
		})
	}
	return slog.GroupValue(vals...)
}
