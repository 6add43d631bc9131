package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	cliflag "k8s.io/component-base/cli/flag"
	"k8s.io/component-base/cli/globalflag"
	"k8s.io/component-base/logs"
	"k8s.io/component-base/term"

	"cola.io/learnmcp/cmd/app/options"
	"cola.io/learnmcp/pkg/catalog"
	"cola.io/learnmcp/pkg/server"
	"cola.io/learnmcp/pkg/signals"
	"cola.io/learnmcp/pkg/version"
)

// NewCommand returns a new learnmcp command.
func NewCommand() *cobra.Command {
	opts := options.NewOptions()
	cmd := &cobra.Command{
		Use:   version.Get().Module,
		Short: "An MCP learning resource server",
		Long:  "A Model Context Protocol server answering learn_mcp tool calls with a learning resource about MCP. It runs over stdio, sse or as an AWS Lambda handler.",
		RunE: func(cmd *cobra.Command, args []string) error {
			setDefaultSlog(opts.Verbose)
			opts.PrintAndExitIfRequested()
			if err := opts.Validate(); err != nil {
				return err
			}
			return runCommand(signals.SetupSignalHandler(), opts)
		},
		Args: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				if len(arg) > 0 {
					return fmt.Errorf("%q does not take any arguments, got %q", cmd.CommandPath(), args)
				}
			}
			return nil
		},
	}

	fs := cmd.Flags()
	namedFlagSets := opts.AddFlags()
	globalflag.AddGlobalFlags(namedFlagSets.FlagSet("global"), cmd.Name(), logs.SkipLoggingConfigurationFlags())
	for _, f := range namedFlagSets.FlagSets {
		fs.AddFlagSet(f)
	}

	cols, _, _ := term.TerminalSize(cmd.OutOrStdout())
	cliflag.SetUsageAndHelpFunc(cmd, namedFlagSets, cols)
	return cmd
}

func runCommand(ctx context.Context, opts *options.Options) error {
	logger := slog.Default().With("transport", opts.Transport)
	svr := newServer(opts, logger)
	return svr.Start(ctx)
}

// newServer builds the server for every transport around one shared
// selector, so stdio, sse and lambda all pick from the same catalog.
func newServer(opts *options.Options, logger *slog.Logger) *server.Server {
	selector := catalog.NewSelector()
	logger.Debug("Serving learning resources", "resources", catalog.Len(), "topics", len(catalog.Topics()))
	return server.NewServer(
		server.WithTransport(opts.Transport),
		server.WithPort(opts.Port),
		server.WithSelector(selector),
		server.WithLogger(logger),
	)
}

func setDefaultSlog(level int) {
	slog.SetDefault(slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			AddSource:   true,
			Level:       slog.Level(-level * 4),
			ReplaceAttr: makeReplaceAttrFunc(),
		}),
	))
}

func makeReplaceAttrFunc() func(groups []string, a slog.Attr) slog.Attr {
	return func(_ []string, attr slog.Attr) slog.Attr {
		switch attr.Key {
		case slog.TimeKey:
			attr.Value = slog.StringValue(attr.Value.Any().(time.Time).Format("2006-01-02T15:04:05.999"))
		case slog.SourceKey:
			src := attr.Value.Any().(*slog.Source)
			attr.Value = slog.StringValue(strings.Join([]string{
				filepath.Base(src.File),
				fmt.Sprintf("%d", src.Line),
			}, ":"))
		}
		return attr
	}
}
