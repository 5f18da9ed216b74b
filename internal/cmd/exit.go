package cmd

import (
	"errors"
	"fmt"
	"io"

	oerrors "github.com/opmodel/stackgen/internal/errors"
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case oerrors.ExitSuccess:
		return "Success"
	case oerrors.ExitGeneralError:
		return "General Error"
	case oerrors.ExitValidationError:
		return "Validation Error"
	case oerrors.ExitProcessError:
		return "Process Error"
	case oerrors.ExitAlreadyExists:
		return "Already Exists"
	case oerrors.ExitNotFound:
		return "Not Found"
	default:
		return "Unknown"
	}
}

// AsExitError attaches the exit code for err unless err already carries one.
func AsExitError(err error) *oerrors.ExitError {
	if err == nil {
		return nil
	}
	var e *oerrors.ExitError
	if errors.As(err, &e) {
		return e
	}
	return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err}
}

func writeLine(w io.Writer, s string) {
	fmt.Fprintln(w, s)
}
