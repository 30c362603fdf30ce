package cli

import (
	stderrors "errors"
	"fmt"

	"github.com/arthur-debert/helpex/pkg/editor"
	"github.com/arthur-debert/helpex/pkg/errors"
	"github.com/arthur-debert/helpex/pkg/paths"
)

// ErrorMessage returns the line printed on stderr for err. It is empty when
// the failure was already reported, as with an editor exiting non-zero.
func ErrorMessage(err error) string {
	switch errors.GetErrorCode(err) {
	case errors.ErrCommandNotFound:
		return fmt.Sprintf(MsgErrUnknownCommand, errors.DetailString(err, "command"))
	case errors.ErrMissingField:
		return fmt.Sprintf(MsgErrMissingKey, errors.DetailString(err, "command"), errors.DetailString(err, "field"))
	case errors.ErrInvalidField:
		return fmt.Sprintf(MsgErrInvalidKey, errors.DetailString(err, "command"), errors.DetailString(err, "field"))
	case errors.ErrRecordDecode:
		return fmt.Sprintf(MsgErrDecode, errors.DetailString(err, "path"), rootCause(err))
	case errors.ErrEditorNotSet:
		return fmt.Sprintf(MsgErrEditorNotSet, paths.New().ConfigFilePath())
	case errors.ErrEditorNotFound:
		return fmt.Sprintf(MsgErrEditorNotFound, errors.DetailString(err, "editor"))
	case errors.ErrEditorFailed:
		return ""
	}
	return fmt.Sprintf(MsgErrGeneric, err)
}

// ExitCode returns the process exit status for err.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.IsErrorCode(err, errors.ErrEditorFailed) {
		return editor.ExitCode(err)
	}
	return 1
}

// rootCause returns the innermost error that is not a HelpexError.
func rootCause(err error) error {
	for {
		var he *errors.HelpexError
		if !stderrors.As(err, &he) || he.Wrapped == nil {
			return err
		}
		err = he.Wrapped
	}
}
