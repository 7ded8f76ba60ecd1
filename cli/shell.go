package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"

	"github.com/katalvlaran/socialnet/metrics"
	"github.com/katalvlaran/socialnet/network"
)

const (
	banner = "Social Network Simulator - type 'help'"
	prompt = "> "

	defaultActivityLimit = 10
	defaultFeedLimit     = 20
	defaultSeedPrefix    = "u"
)

// Ingester fetches news for a topic and posts it into the network.
type Ingester interface {
	Ingest(ctx context.Context, topic string) ([]network.Post, error)
}

// Shell reads commands line by line and runs them against a network.
type Shell struct {
	net     *network.Network
	out     io.Writer
	news    Ingester
	metrics *metrics.Collector
	log     *zap.Logger
	now     func() time.Time

	activityLimit int
	feedLimit     int
	seedPrefix    string
	quiet         bool

	commands map[string]command
}

// ShellOption configures a Shell.
type ShellOption func(*Shell)

// WithNews enables the news command.
func WithNews(in Ingester) ShellOption {
	return func(s *Shell) { s.news = in }
}

// WithMetrics enables the stats command.
func WithMetrics(c *metrics.Collector) ShellOption {
	return func(s *Shell) { s.metrics = c }
}

// WithLogger sets the logger for failed commands.
func WithLogger(l *zap.Logger) ShellOption {
	return func(s *Shell) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock sets the reference time used to print post ages.
func WithClock(now func() time.Time) ShellOption {
	return func(s *Shell) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLimits sets the default sizes of "rank active" and "feed".
// Non-positive values keep the defaults.
func WithLimits(activity, feed int) ShellOption {
	return func(s *Shell) {
		if activity > 0 {
			s.activityLimit = activity
		}
		if feed > 0 {
			s.feedLimit = feed
		}
	}
}

// WithSeedPrefix sets the ID prefix of users created by "seed".
func WithSeedPrefix(prefix string) ShellOption {
	return func(s *Shell) {
		if prefix != "" {
			s.seedPrefix = prefix
		}
	}
}

// WithQuiet suppresses the banner and the prompt.
func WithQuiet(quiet bool) ShellOption {
	return func(s *Shell) { s.quiet = quiet }
}

// NewShell creates a shell that prints to out.
func NewShell(net *network.Network, out io.Writer, opts ...ShellOption) *Shell {
	s := &Shell{
		net:           net,
		out:           out,
		log:           zap.NewNop(),
		now:           time.Now,
		activityLimit: defaultActivityLimit,
		feedLimit:     defaultFeedLimit,
		seedPrefix:    defaultSeedPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.commands = s.commandTable()

	return s
}

// Run executes commands from in until quit, end of input or ctx is done.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	if !s.quiet {
		fmt.Fprintln(s.out, banner)
	}

	sc := bufio.NewScanner(in)
	for {
		if !s.quiet {
			fmt.Fprint(s.out, "\n"+prompt)
		}
		if !sc.Scan() {
			break
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if quit := s.Execute(ctx, sc.Text()); quit {
			return nil
		}
	}

	if err := sc.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}

	return nil
}

// Execute runs one command line and reports whether the shell should stop.
// Blank lines and lines starting with '#' are ignored.
func (s *Shell) Execute(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false
	}

	fields := strings.Fields(line)
	name := strings.ToLower(fields[0])
	switch name {
	case "quit", "exit":
		fmt.Fprintln(s.out, "Goodbye!")
		return true
	}

	cmd, ok := s.commands[name]
	if !ok {
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help')\n", fields[0])
		return false
	}
	if len(fields)-1 < cmd.minArgs {
		fmt.Fprintf(s.out, "Usage: %s\n", cmd.usage)
		return false
	}
	if err := cmd.run(ctx, line, fields[1:]); err != nil {
		s.log.Debug("command failed", zap.String("command", name), zap.Error(err))
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}

	return false
}

// rest returns line with its first n fields removed, trimmed.
func rest(line string, n int) string {
	line = strings.TrimSpace(line)
	for i := 0; i < n; i++ {
		j := strings.IndexFunc(line, unicode.IsSpace)
		if j < 0 {
			return ""
		}
		line = strings.TrimLeftFunc(line[j:], unicode.IsSpace)
	}

	return line
}
