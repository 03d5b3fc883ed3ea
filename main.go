package main

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/OpenPeeDeeP/xdg"
	"github.com/alexcesaro/log"
	"github.com/alexcesaro/log/golog"
	flags "github.com/jessevdk/go-flags"

	"github.com/jrpctcp/jrpctcp/client"
)

// Version of the binary, assigned during build.
var Version string = "dev"

// Options contains the flag options
type Options struct {
	Verbose []bool  `short:"v" long:"verbose" description:"Show verbose logging."`
	Version bool    `long:"version" description:"Print version and exit."`
	Timeout float64 `long:"timeout" description:"Seconds before abandoning a connect or read." default:"5"`
	Buffer  int     `long:"buffer" description:"Bytes per read call." default:"1024"`

	Call struct {
		Args struct {
			Address string   `positional-arg-name:"address" description:"host:port of the JSONRPC server."`
			Method  string   `positional-arg-name:"method" description:"Dotted method path."`
			Params  []string `positional-arg-name:"param" description:"Params; key=value becomes a named param, values parse as JSON when possible."`
		} `positional-args:"yes"`
	} `command:"call" description:"Invoke a single method and print the result."`

	Notify struct {
		Args struct {
			Address string   `positional-arg-name:"address" description:"host:port of the JSONRPC server."`
			Method  string   `positional-arg-name:"method" description:"Dotted method path."`
			Params  []string `positional-arg-name:"param" description:"Params; key=value becomes a named param."`
		} `positional-args:"yes"`
	} `command:"notify" description:"Send a notification; no response is read."`

	Batch struct {
		Args struct {
			Address string `positional-arg-name:"address" description:"host:port of the JSONRPC server."`
		} `positional-args:"yes"`
	} `command:"batch" description:"Read one call per stdin line and send them as a single round trip."`

	Selftest struct {
		Args struct {
			Address string `positional-arg-name:"address" description:"host:port of an echo server (see the serve command)."`
		} `positional-args:"yes"`
	} `command:"selftest" description:"Run the demonstration call sequence against an echo server."`

	Serve struct {
		Bind string `long:"bind" description:"Address and port to listen on." default:"127.0.0.1:8001"`
	} `command:"serve" description:"Start a demo echo responder."`
}

const batchUsage = `Each stdin line is one request: "method [param...]". Prefix the method
with "-" to mark it as a notification:

  tree.echo message=First!
  -echo Skip!
  tree.echo Last!
`

var logLevels = []log.Level{
	log.Warning,
	log.Info,
	log.Debug,
}

func clientConfig(options Options) client.Config {
	return client.Config{
		Timeout: time.Duration(options.Timeout * float64(time.Second)),
		Buffer:  options.Buffer,
	}
}

// loadDefaults applies flag defaults from an ini file in the xdg config
// home, when one exists.
func loadDefaults(parser *flags.Parser) {
	path := filepath.Join(xdg.New("jrpctcp", "").ConfigHome(), "config.ini")
	if _, err := os.Stat(path); err != nil {
		return
	}
	ini := flags.NewIniParser(parser)
	if err := ini.ParseFile(path); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load defaults from %s: %s\n", path, err)
	}
}

func subcommand(cmd string, options Options) error {
	switch cmd {
	case "call":
		return runCall(options, options.Call.Args.Address, options.Call.Args.Method, options.Call.Args.Params, false)
	case "notify":
		return runCall(options, options.Notify.Args.Address, options.Notify.Args.Method, options.Notify.Args.Params, true)
	case "batch":
		return runBatch(options)
	case "selftest":
		return runSelftest(options)
	case "serve":
		return runServe(options)
	}
	return fmt.Errorf("unknown command: %s", cmd)
}

func main() {
	options := Options{}
	parser := flags.NewParser(&options, flags.Default)
	loadDefaults(parser)
	p, err := parser.Parse()
	if err != nil {
		if p == nil {
			fmt.Println(err)
		}
		if flagErr, ok := err.(*flags.Error); ok && flagErr.Type == flags.ErrHelp && parser.Active != nil {
			// Print additional usage help when run with --help
			switch parser.Active.Name {
			case "batch":
				exit(0, batchUsage)
			}
		}
		return
	}

	if options.Version {
		fmt.Println(Version)
		os.Exit(0)
	}

	// Figure out the log level
	numVerbose := len(options.Verbose)
	if numVerbose >= len(logLevels) {
		numVerbose = len(logLevels) - 1
	}

	logLevel := logLevels[numVerbose]
	logWriter := os.Stderr

	SetLogger(golog.New(logWriter, logLevel))
	if logLevel == log.Debug {
		// Enable logging from subpackages
		client.SetLogger(logWriter)
	}

	if parser.Active == nil {
		parser.WriteHelp(os.Stderr)
		os.Exit(1)
	}
	cmd := parser.Active.Name
	err = subcommand(cmd, options)
	if err == nil {
		return
	}

	switch typedErr := err.(type) {
	case net.Error:
		err = ErrExplain{err, `Could not reach the server. Could be a connectivity issue or the server is down. Try again?`}
	case interface{ ErrorCode() int }:
		err = ErrExplain{err, fmt.Sprintf(`The server declared an RPC error (code %d).`, typedErr.ErrorCode())}
	case ErrExplain:
		// All good.
	default:
		// Usage and validation errors explain themselves.
	}

	exit(2, "%s failed: %s\n", cmd, err)
}

func exit(code int, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(code)
}

// ErrExplain annotates an error with an explanation.
type ErrExplain struct {
	Cause       error
	Explanation string
}

func (err ErrExplain) Error() string {
	return fmt.Sprintf("%s\n -> %s", err.Cause, err.Explanation)
}
