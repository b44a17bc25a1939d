package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rcrowley/go-metrics"
	"github.com/rs/zerolog"

	"mirnaexplorer/mirna"
)

const version = "0.1.0"

const usage = `Usage: mirnactl [flags] <command> <name>...

Commands:
  mirna <name>...          look up miRNA entries by name
  predictions <name>...    look up gene-target predictions for a miRNA
  pathways <gene>...       look up pathways affected by a gene
  schema <mirna|prediction|pathway>
                           print the JSON Schema of a record type

Flags:
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("mirnactl", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprint(stderr, usage)
		flags.PrintDefaults()
	}

	configPath := flags.String("config", "", "path to a YAML configuration file")
	baseURL := flags.String("base-url", "", "miRNA API base URL (default "+mirna.DefaultBaseURL+")")
	apiKey := flags.String("key", "", "bearer token; defaults to $MIRNA_API_KEY")
	raw := flags.Bool("raw", false, "print response bodies verbatim")
	debug := flags.Bool("debug", false, "enable debug logging and print request metrics")

	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	logger := NewLogger(*debug, stderr, isTerminal(stderr))

	rest := flags.Args()
	if len(rest) < 2 {
		flags.Usage()
		return 2
	}
	commandName, names := rest[0], rest[1:]

	if commandName == "schema" {
		out, err := MarshalSchema(names[0])
		if err != nil {
			logger.Error("%v", err)
			return 1
		}
		fmt.Fprintln(stdout, string(out))
		return 0
	}

	cmd, ok := commands[commandName]
	if !ok {
		logger.Error("unknown command %q", commandName)
		flags.Usage()
		return 2
	}

	config, err := ReadConfig(*configPath)
	if err != nil {
		logger.Error("%v", err)
		return 1
	}
	if *baseURL != "" {
		config.Client.BaseURL = *baseURL
	}

	zlog := newZerolog(config, *debug, stderr)
	ctx = zlog.WithContext(ctx)

	registry := metrics.NewRegistry()
	client, closeClient, err := NewClient(config.Client, registry, zlog)
	if err != nil {
		logger.Error("%v", err)
		return 1
	}
	defer closeClient()

	credential := resolveCredential(*apiKey, logger)
	logger.Debug("Querying %s%s for %d name(s)", client.BaseURL(), cmd.endpoint.Path, len(names))

	var status int
	if *raw {
		status = runRaw(ctx, client, cmd.endpoint, names, credential, stdout, logger)
	} else {
		status = runLookup(ctx, client, cmd, names, credential, config.Client.Concurrency, stdout, logger)
	}

	if *debug {
		metrics.WriteOnce(registry, stderr)
	}
	return status
}

func runLookup(ctx context.Context, client *mirna.Client, cmd command, names []string, credential string, concurrency int, stdout io.Writer, logger *Logger) int {
	done := logger.Wait(fmt.Sprintf("Fetching %s...", cmd.endpoint.Name))
	results := lookupAll(ctx, names, concurrency, func(ctx context.Context, name string) (printer, error) {
		return cmd.lookup(ctx, client, name, credential)
	})
	done()

	status := 0
	for _, r := range results {
		if r.err != nil {
			logger.Error("%s: %v", r.name, r.err)
			status = 1
			continue
		}
		r.print(stdout)
	}
	return status
}

func runRaw(ctx context.Context, client *mirna.Client, ep mirna.Endpoint, names []string, credential string, stdout io.Writer, logger *Logger) int {
	status := 0
	for _, name := range names {
		resp, err := client.Fetch(ctx, ep, name, credential)
		if err != nil {
			logger.Error("%s: %v", name, err)
			status = 1
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			logger.Error("%s: %s", name, resp.Status)
			status = 1
		}
		if _, err := io.Copy(stdout, resp.Body); err != nil {
			logger.Error("%s: failed to read response: %v", name, err)
			status = 1
		}
		resp.Body.Close()
		fmt.Fprintln(stdout)
	}
	return status
}

// resolveCredential prefers the flag, then MIRNA_API_KEY from the
// environment or a .env file in the working directory.
func resolveCredential(flagValue string, logger *Logger) string {
	if flagValue != "" {
		return flagValue
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Debug(".env file found, but failed to load: %v", err)
	}

	key := os.Getenv("MIRNA_API_KEY")
	if key == "" {
		logger.Debug("No MIRNA_API_KEY set; sending requests without a credential")
	}
	return key
}

func newZerolog(c *Config, debug bool, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(c.Logging.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}
	if debug {
		level = zerolog.DebugLevel
	}

	if c.Logging.Pretty {
		out = zerolog.ConsoleWriter{Out: out}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
