package cli

import (
	"fmt"
	"io"

	"github.com/arthur-debert/helpex/internal/version"
	"github.com/arthur-debert/helpex/pkg/config"
	"github.com/arthur-debert/helpex/pkg/editor"
	"github.com/arthur-debert/helpex/pkg/errors"
	"github.com/arthur-debert/helpex/pkg/helpdoc"
	"github.com/arthur-debert/helpex/pkg/logging"
	"github.com/arthur-debert/helpex/pkg/paths"
	"github.com/arthur-debert/helpex/pkg/store"
	"github.com/arthur-debert/helpex/pkg/terminal"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	verbosity int
	edit      bool
	path      bool
	width     int
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var opts rootOptions

	rootCmd := &cobra.Command{
		Use:     "helpex [flags] [COMMAND]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLoggerWithWriter(opts.verbosity, paths.New().LogFilePath(), cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, opts)
		},
		ValidArgsFunction: commandNamesCompletion,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.Flags().BoolVarP(&opts.edit, "edit", "e", false, MsgFlagEdit)
	rootCmd.Flags().BoolVarP(&opts.path, "path", "p", false, MsgFlagPath)
	rootCmd.Flags().IntVarP(&opts.width, "width", "w", 0, MsgFlagWidth)
	rootCmd.MarkFlagsMutuallyExclusive("edit", "path")

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// environment is what every invocation of the root command needs.
type environment struct {
	paths  *paths.Paths
	config *config.Config
	store  *store.Store
}

func loadEnvironment() (*environment, error) {
	p := paths.New()

	cfg, err := config.Load(p.ConfigFilePath())
	if err != nil {
		return nil, err
	}

	created, err := p.EnsureDataDir()
	if err != nil {
		return nil, err
	}
	if created {
		log.Info().Str("path", p.DataDir()).Msg("Created data directory")
	}
	log.Debug().Str("path", p.DataDir()).Msg("Data directory set")

	return &environment{
		paths:  p,
		config: cfg,
		store:  store.New(p.DataDir(), cfg.Store.Extensions),
	}, nil
}

func runRoot(cmd *cobra.Command, args []string, opts rootOptions) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return listCommands(cmd.OutOrStdout(), env.store)
	}
	name := args[0]

	switch {
	case opts.edit:
		return editCommand(env, name)
	case opts.path:
		path, err := env.store.Path(name)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
		return err
	}

	return showCommand(cmd.OutOrStdout(), env, name, opts.width)
}

func listCommands(out io.Writer, s *store.Store) error {
	names, err := s.List()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, MsgCommandsHeader)
	for _, name := range names {
		fmt.Fprintf(out, MsgCommandItem, name)
	}
	return nil
}

func editCommand(env *environment, name string) error {
	path, err := env.store.Path(name)
	if err != nil {
		return err
	}

	ed, err := editor.Resolve(env.config.Editor.Command, env.config.Editor.Args)
	if err != nil {
		return err
	}
	return ed.Open(path)
}

func showCommand(out io.Writer, env *environment, name string, columns int) error {
	logger := logging.GetLogger("cli.show")
	done := logging.LogOperationStart(logger, "render")
	defer done()

	record, path, err := env.store.Load(name)
	if err != nil {
		return err
	}

	if columns <= 0 {
		columns = terminal.GetSize(terminal.Size{
			Columns: env.config.Terminal.FallbackColumns,
			Lines:   env.config.Terminal.FallbackLines,
		}).Columns
	}
	width := terminal.RenderWidth(columns, env.config.Render.RightMargin)
	logger.Debug().Str("path", path).Int("columns", columns).Int("width", width).Msg("Rendering record")

	doc, err := helpdoc.New(record, helpdoc.Options{
		Width:  width,
		Indent: env.config.Render.IndentString(),
		Bullet: env.config.Render.Bullet,
	})
	if err != nil {
		return errors.Wrapf(err, errors.GetErrorCode(err), "invalid record for %s", name).
			WithDetail("command", name).
			WithDetail("field", errors.DetailString(err, "field")).
			WithDetail("path", path)
	}

	for _, w := range doc.Warnings() {
		logger.Warn().
			Str("command", name).
			Str("kind", string(w.Kind)).
			Interface("value", w.Value).
			Msg("Rendering problem")
	}

	_, err = fmt.Fprintln(out, doc.String())
	return err
}

// commandNamesCompletion provides shell completion for record names
func commandNamesCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	cfg, err := config.Load(paths.New().ConfigFilePath())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	names, err := store.New(paths.New().DataDir(), cfg.Store.Extensions).List()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
