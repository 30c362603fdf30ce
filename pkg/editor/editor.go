// Package editor opens help records in the user's editor.
//
// The editor comes from the configuration, then $VISUAL, then $EDITOR. Extra
// arguments come from the configuration or $VISUAL_ARGS and are split with
// shell quoting rules.
package editor

import (
	stderrors "errors"
	"io"
	"os"
	"os/exec"

	"github.com/arthur-debert/helpex/pkg/errors"
	"github.com/arthur-debert/helpex/pkg/logging"
	"github.com/mattn/go-shellwords"
)

// Environment variables consulted when no editor is configured.
const (
	EnvVisual     = "VISUAL"
	EnvVisualArgs = "VISUAL_ARGS"
	EnvEditor     = "EDITOR"
)

// Editor launches an external program on a file.
type Editor struct {
	Command string
	Args    []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	lookPath func(string) (string, error)
	run      func(*exec.Cmd) error
}

// Resolve builds an Editor from the configured command and args, falling
// back to the environment for whichever is empty.
func Resolve(command, args string) (*Editor, error) {
	return resolve(command, args, os.Getenv)
}

func resolve(command, args string, getenv func(string) string) (*Editor, error) {
	if command == "" {
		command = getenv(EnvVisual)
	}
	if command == "" {
		command = getenv(EnvEditor)
	}
	if command == "" {
		return nil, errors.Newf(errors.ErrEditorNotSet, "no editor set, export $%s", EnvVisual)
	}

	words, err := shellwords.Parse(command)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrEditorNotFound, "cannot parse editor %q", command).
			WithDetail("editor", command)
	}
	if len(words) == 0 {
		return nil, errors.Newf(errors.ErrEditorNotSet, "no editor set, export $%s", EnvVisual)
	}

	if args == "" {
		args = getenv(EnvVisualArgs)
	}
	extra, err := shellwords.Parse(args)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot parse editor arguments %q", args).
			WithDetail("args", args)
	}

	return &Editor{
		Command: words[0],
		Args:    append(words[1:], extra...),
	}, nil
}

// Open runs the editor on path and waits for it to exit.
func (e *Editor) Open(path string) error {
	logger := logging.GetLogger("editor")

	lookPath := e.lookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	program, err := lookPath(e.Command)
	if err != nil {
		return errors.Wrapf(err, errors.ErrEditorNotFound, "editor %q not found", e.Command).
			WithDetail("editor", e.Command)
	}

	args := append(append([]string{}, e.Args...), path)
	cmd := exec.Command(program, args...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	if e.Stdin != nil {
		cmd.Stdin = e.Stdin
	}
	if e.Stdout != nil {
		cmd.Stdout = e.Stdout
	}
	if e.Stderr != nil {
		cmd.Stderr = e.Stderr
	}

	logging.LogCommand(program, args)
	logger.Info().Str("path", path).Msg("Opening editor")

	run := e.run
	if run == nil {
		run = (*exec.Cmd).Run
	}
	if err := run(cmd); err != nil {
		code := 1
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
			code = exitErr.ExitCode()
		}
		return errors.Wrapf(err, errors.ErrEditorFailed, "editor %q failed", e.Command).
			WithDetail("editor", e.Command).
			WithDetail("exitCode", code)
	}
	return nil
}

// ExitCode returns the status an editor failure should exit with, or 1 for
// any other error.
func ExitCode(err error) int {
	if code, ok := errors.GetErrorDetails(err)["exitCode"].(int); ok {
		return code
	}
	return 1
}
