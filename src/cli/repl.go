package cli

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

// NewReplCommand creates the repl command.
func NewReplCommand(rootOpts *RootOptions) *cobra.Command {
	var normalize bool

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Read rationals line by line",
		Long: `Read one rational per line and report it as the parse command does.

On a terminal the prompt supports line editing and history (see the
[repl] section of the config file). Otherwise lines are read from stdin
until EOF and the exit status is 2 if any line failed to parse.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(rootOpts, rootOpts.normalizeFlag(cmd, normalize), cmd)
		},
	}

	cmd.Flags().BoolVarP(&normalize, "normalize", "n", false, "normalize each value")

	return cmd
}

// session evaluates lines and remembers whether any of them failed.
type session struct {
	opts      *RootOptions
	formatter *OutputFormatter
	normalize bool
	failed    int
}

func (s *session) eval(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	records, err := parseAll(s.opts, s.formatter, []string{line}, s.normalize)
	if err != nil {
		var exitErr *ExitError
		if !errors.As(err, &exitErr) {
			return err
		}
		s.failed++
		return nil
	}
	return s.formatter.Success(records)
}

func runRepl(opts *RootOptions, normalize bool, cmd *cobra.Command) error {
	s := &session{opts: opts, formatter: opts.formatter(cmd), normalize: normalize}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return s.interactive()
	}

	if err := s.lines(in); err != nil {
		return err
	}
	opts.Logger.Debug("input finished", "failed", s.failed)
	if s.failed > 0 {
		return &ExitError{Code: ExitCommandError, Message: "some lines failed to parse"}
	}
	return nil
}

func (s *session) lines(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := s.eval(scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// prompter is the part of *liner.State the prompt loop drives.
type prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// historyStore is the part of *liner.State that reads and writes history.
type historyStore interface {
	ReadHistory(r io.Reader) (int, error)
	WriteHistory(w io.Writer) (int, error)
}

func (s *session) interactive() error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	path := s.opts.Config.Repl.History
	if err := loadHistory(cli, path); err != nil {
		s.opts.Logger.Debug("no history loaded", "path", path, "error", err)
	}

	if err := s.prompt(cli); err != nil {
		return err
	}

	if err := saveHistory(cli, path); err != nil {
		s.opts.Logger.Warn("cannot save history", "path", path, "error", err)
	}
	return nil
}

// prompt reads lines until EOF. Ctrl-C discards the current line.
func (s *session) prompt(p prompter) error {
	for {
		line, err := p.Prompt(s.opts.Config.Repl.Prompt)
		switch {
		case err == nil:
			p.AppendHistory(line)
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			return nil
		default:
			return err
		}

		if err := s.eval(line); err != nil {
			return err
		}
	}
}

// loadHistory reads history from path. An empty path loads nothing.
func loadHistory(h historyStore, path string) error {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = h.ReadHistory(f)
	return err
}

// saveHistory replaces the file at path with the current history. An empty
// path saves nothing.
func saveHistory(h historyStore, path string) error {
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := h.WriteHistory(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
