package infra

import (
	"github.com/chateudechevrole/tutor-app-yp/internal/pkg/errs"
)

// RepositoryError marks an error as originating in the storage layer.
type RepositoryError struct {
	msg string
	err error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func WrapRepoErr(msg string, err error) error {
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return RepositoryError{msg: msg, err: err}
}
