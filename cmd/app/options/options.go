package options

import (
	"errors"
	"fmt"
	"os"

	"github.com/joeshaw/envdecode"
	cliflag "k8s.io/component-base/cli/flag"

	"cola.io/learnmcp/pkg/server"
	"cola.io/learnmcp/pkg/version"
)

// Options defines all options for the learnmcp server.
type Options struct {
	Transport string `env:"LEARNMCP_TRANSPORT"`
	Port      int    `env:"LEARNMCP_PORT"`
	Verbose   int    `env:"LEARNMCP_VERBOSE"`
	Version   bool

	envErr error
}

// NewOptions returns a new Options object. Environment variables override
// the built-in defaults and are in turn overridden by flags.
func NewOptions() *Options {
	o := &Options{
		Transport: server.StdioTransport,
		Verbose:   0,
		Port:      8888,
	}
	o.envErr = o.loadEnv()
	return o
}

func (o *Options) loadEnv() error {
	// Lambda runtimes pass no flags; AWS_LAMBDA_RUNTIME_API is always set there.
	if _, ok := os.LookupEnv("AWS_LAMBDA_RUNTIME_API"); ok {
		o.Transport = server.LambdaTransport
	}
	if err := envdecode.Decode(o); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return fmt.Errorf("failed to load options from environment: %w", err)
	}
	return nil
}

func (o *Options) AddFlags() (fss cliflag.NamedFlagSets) {
	fs := fss.FlagSet("learnmcp")
	fs.StringVarP(&o.Transport, "transport", "t", o.Transport, "Transport protocol to use (stdio, sse, lambda). Env: LEARNMCP_TRANSPORT")
	fs.IntVarP(&o.Port, "port", "p", o.Port, "Port to use for communicating with server, required when using --transport=sse and must be between 1 and 65535. Env: LEARNMCP_PORT")
	fs.IntVarP(&o.Verbose, "v", "v", o.Verbose, "Log verbosity, 0 logs at info level and 1 or more enables debug logs. Env: LEARNMCP_VERBOSE")
	fs.BoolVarP(&o.Version, "version", "V", o.Version, "Print version information and quits")
	return
}

func (o *Options) Validate() error {
	if o.envErr != nil {
		return o.envErr
	}

	switch o.Transport {
	case server.StdioTransport, server.SSETransport, server.LambdaTransport:
	default:
		return errors.New("--transport must be one of (stdio, sse, lambda)")
	}

	if o.Transport == server.SSETransport && (o.Port < 1 || o.Port > 65535) {
		return errors.New("--port is required when using --transport=sse and must be between 1 and 65535")
	}
	return nil
}

func (o *Options) PrintAndExitIfRequested() {
	if o.Version {
		_, _ = fmt.Fprintf(os.Stdout, "%s\n", version.Get().Pretty())
		os.Exit(0)
	}
}
