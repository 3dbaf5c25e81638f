// Package cli provides the command-line interface for sqlprompt.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/enunezf/sqlprompt/internal/adapters/mysql"
	"github.com/enunezf/sqlprompt/internal/adapters/terminal"
	"github.com/enunezf/sqlprompt/internal/config"
	"github.com/enunezf/sqlprompt/internal/core/domain"
	"github.com/enunezf/sqlprompt/internal/core/ports"
	"github.com/enunezf/sqlprompt/internal/core/services"
	"github.com/enunezf/sqlprompt/internal/security"
)

const usageText = `Usage: %s [OPTIONS] [database]
  --help Display this help and exit.
  -e     Execute command and quit.
  -h     Connect to host.
  -p     Password to use when connecting to server. If password is
         not given it's asked from the tty.
  -P     Port number to use for connection. Default is 3306.
  -u     User for login.
`

// OpenFunc opens a session from resolved connection parameters
type OpenFunc func(ctx context.Context, params domain.ConnectionParameters) (ports.SessionPort, error)

// App carries the process's standard streams and collaborators
type App struct {
	Program string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Config  *config.Config
	Logger  *slog.Logger
	Open    OpenFunc

	input *bufio.Reader
}

// options holds the raw flag values of one invocation
type options struct {
	host     string
	user     string
	password string
	execute  string
	port     int
	help     bool
}

// Execute runs the program on the process's arguments and returns its
// exit code.
func Execute() int {
	return NewApp().Execute(context.Background(), os.Args[1:])
}

// NewApp creates an App wired to the process's standard streams, the
// user's configuration file and the MySQL adapter
func NewApp() *App {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		cfg = &config.Config{}
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Preferences.Level(),
	}))

	return &App{
		Program: filepath.Base(os.Args[0]),
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Config:  cfg,
		Logger:  logger,
		Open:    openMySQL,
	}
}

func openMySQL(ctx context.Context, params domain.ConnectionParameters) (ports.SessionPort, error) {
	session, err := mysql.Open(ctx, params)
	if err != nil {
		return nil, err
	}
	return session, nil
}

// Execute parses args, runs the command and returns the exit code
func (a *App) Execute(ctx context.Context, args []string) int {
	if a.Config == nil {
		a.Config = &config.Config{}
	}
	if a.Logger == nil {
		a.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	cmd := a.NewRootCommand()
	cmd.SetArgs(normalizeArgs(args))

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	// Connection failures were already reported on standard output
	var connErr *domain.ConnectionError
	if !errors.As(err, &connErr) {
		fmt.Fprintf(a.Stderr, "%s: %v\n", a.Program, err)
	}
	return 1
}

// NewRootCommand builds the root command for one invocation
func (a *App) NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   a.Program + " [OPTIONS] [database]",
		Short: "Minimal interactive MySQL client",
		Long: `sqlprompt connects to a MySQL server and runs SQL statements,
either one statement given with -e or interactively until "quit".

Results are printed as a fixed-width ASCII table.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.host, "host", "h", "", "Connect to host")
	flags.StringVarP(&opts.user, "user", "u", "", "User for login")
	flags.StringVar(&opts.password, "password", "", "Password to use when connecting to server")
	flags.StringVarP(&opts.execute, "execute", "e", "", "Execute command and quit")
	flags.IntVarP(&opts.port, "port", "P", domain.DefaultPort, "Port number to use for connection")
	// Declaring help ourselves keeps cobra from claiming -h
	flags.BoolVar(&opts.help, "help", false, "Display this help and exit")

	cmd.SetIn(a.Stdin)
	cmd.SetOut(a.Stdout)
	cmd.SetErr(a.Stderr)
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		fmt.Fprintf(c.OutOrStdout(), usageText, a.Program)
	})

	return cmd
}

func (a *App) run(cmd *cobra.Command, opts *options, args []string) error {
	ctx := cmd.Context()

	resolver := NewArgumentResolver(a.prompter(), a.Config.Client)
	params, err := resolver.Resolve(parseInvocation(cmd.Flags(), opts, args))
	if err != nil {
		return err
	}

	session, err := a.connect(ctx, params)
	if err != nil {
		return err
	}
	defer session.Close()

	executor := services.NewQueryExecutor(session, a.Stdout, a.Logger)

	if cmd.Flags().Changed("execute") {
		executor.Execute(ctx, opts.execute)
		return nil
	}

	reader, closeReader := a.lineReader()
	defer closeReader()

	return services.NewInteractiveLoop(reader, executor).Run(ctx)
}

// stdinReader returns the buffered standard input shared by credential
// prompts and the statement loop
func (a *App) stdinReader() *bufio.Reader {
	if a.input == nil {
		a.input = bufio.NewReader(a.Stdin)
	}
	return a.input
}

// terminalFD returns standard input's descriptor if it is a terminal, or -1
func (a *App) terminalFD() int {
	if f, ok := a.Stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return int(f.Fd())
	}
	return -1
}

func (a *App) prompter() ports.CredentialPrompter {
	return security.NewTerminalPrompter(a.stdinReader(), a.Stdout, a.terminalFD())
}

// lineReader picks readline for terminals and plain buffered reads otherwise
func (a *App) lineReader() (ports.LineReader, func()) {
	if a.terminalFD() >= 0 && a.stdinReader().Buffered() == 0 {
		rl, err := terminal.NewReadlineReader(a.Config.Preferences.HistoryFile)
		if err == nil {
			return rl, func() { rl.Close() }
		}
		a.Logger.Warn("line editing unavailable", "error", err)
	}
	return terminal.NewBufferedReader(a.stdinReader(), a.Stdout), func() {}
}
