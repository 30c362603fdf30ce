package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Show the help of a command"
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"
	MsgCompletionShort = "Generate shell completion script"

	// Listing
	MsgCommandsHeader = "Commands:"
	MsgCommandItem    = "    %s\n"

	// Version output
	MsgVersionFormat = "helpex version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Error messages
	MsgErrUnknownCommand = "helpex: Unknown command: '%s'"
	MsgErrMissingKey     = "helpex internal: Invalid help specification for command '%s'. Missing key: '%s'."
	MsgErrInvalidKey     = "helpex internal: Invalid help specification for command '%s'. Invalid key: '%s'."
	MsgErrDecode         = "helpex: Unable to decode '%s': %v"
	MsgErrEditorNotSet   = "helpex: No editor set. Export $VISUAL or set editor.command in %s"
	MsgErrEditorNotFound = "helpex: '%s' does not exist in PATH."
	MsgErrGeneric        = "helpex: %v"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagEdit    = "Edit COMMAND's record with $VISUAL (or $EDITOR)"
	MsgFlagPath    = "Print the path to COMMAND's record"
	MsgFlagWidth   = "Render for a terminal of N columns instead of the detected width"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
