package app

import "github.com/llehouerou/rove/internal/errmsg"

// opError ties a handler failure to the user-facing operation it broke.
type opError struct {
	op      errmsg.Op
	subject string
	err     error
}

func (e *opError) Error() string {
	return errmsg.FormatWith(e.op, e.subject, e.err)
}

func (e *opError) Unwrap() error {
	return e.err
}

// fail wraps err for op, or returns nil when err is nil.
func fail(op errmsg.Op, subject string, err error) error {
	if err == nil {
		return nil
	}
	return &opError{op: op, subject: subject, err: err}
}
