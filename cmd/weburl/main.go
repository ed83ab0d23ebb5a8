// Command weburl parses URLs with the weburl grammar and prints them in
// canonical form, as field records, or as JSON.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/geoknoesis/weburl-go/weburl"
	"github.com/goccy/go-json"
	"github.com/spf13/pflag"
)

var version = "HEAD"

type WeburlCommand struct {
	OutStream io.Writer
	ErrStream io.Writer

	AsJSON      bool
	ShowParent  bool
	MaxBytes    int
	ShowVersion bool
	ShowHelp    bool

	Targets []string

	flags *pflag.FlagSet
}

// urlRecord is the JSON shape emitted with --json.
type urlRecord struct {
	Scheme   string            `json:"scheme"`
	Host     string            `json:"host"`
	Port     *uint16           `json:"port,omitempty"`
	Path     string            `json:"path"`
	Query    map[string]string `json:"query,omitempty"`
	Fragment string            `json:"fragment,omitempty"`
}

func (cmd *WeburlCommand) ParseArgs(args []string) (exitCode int) {
	cmd.flags = pflag.NewFlagSet("weburl", pflag.ContinueOnError)
	cmd.flags.SetOutput(cmd.ErrStream)

	cmd.flags.BoolVarP(&cmd.AsJSON, "json", "j", false, "Print parsed URLs as JSON records")
	cmd.flags.BoolVarP(&cmd.ShowParent, "parent", "p", false, "Print the parent URL instead of the URL itself")
	cmd.flags.IntVar(&cmd.MaxBytes, "max-bytes", 0, "Reject inputs longer than this many bytes (0 means no limit)")
	cmd.flags.BoolVarP(&cmd.ShowVersion, "version", "v", false, "Show version and exit")
	cmd.flags.BoolVarP(&cmd.ShowHelp, "help", "h", false, "Show help message and exit")

	if err := cmd.flags.Parse(args[1:]); err != nil {
		fmt.Fprintln(cmd.ErrStream, err)
		fmt.Fprintf(cmd.ErrStream, "\nPlease see `%s -h` for more information.\n", args[0])
		return 2
	}

	cmd.Targets = cmd.flags.Args()
	return 0
}

func (cmd *WeburlCommand) PrintUsage() {
	fmt.Fprintln(cmd.ErrStream, "Usage: weburl [options] URL [URL...]")
	fmt.Fprintln(cmd.ErrStream, "")
	fmt.Fprintln(cmd.ErrStream, "Parse each URL and print it in canonical form.")
	fmt.Fprintln(cmd.ErrStream, "")
	fmt.Fprintln(cmd.ErrStream, "Options:")
	fmt.Fprint(cmd.ErrStream, cmd.flags.FlagUsages())
}

// Run parses every target and reports it. Returns 0 when all targets
// parsed, 1 otherwise.
func (cmd *WeburlCommand) Run() (exitCode int) {
	var opts []weburl.Option
	if cmd.MaxBytes > 0 {
		opts = append(opts, weburl.OptMaxInputBytes(cmd.MaxBytes))
	}

	encoder := json.NewEncoder(cmd.OutStream)

	for _, target := range cmd.Targets {
		u, err := weburl.ParseWithOptions(target, opts...)
		if err != nil {
			fmt.Fprintf(cmd.ErrStream, "%s: [%s] %s\n", target, weburl.Code(err), err)
			exitCode = 1
			continue
		}
		if cmd.ShowParent {
			u = u.Parent()
		}

		if cmd.AsJSON {
			record := urlRecord{
				Scheme:   u.Scheme.String(),
				Host:     u.Host.String(),
				Port:     u.Port,
				Path:     u.Path,
				Query:    u.Query,
				Fragment: u.Fragment,
			}
			if err := encoder.Encode(record); err != nil {
				fmt.Fprintf(cmd.ErrStream, "%s: %s\n", target, err)
				exitCode = 1
			}
		} else {
			fmt.Fprintln(cmd.OutStream, u)
		}
	}
	return exitCode
}

func (cmd *WeburlCommand) Main(args []string) (exitCode int) {
	if code := cmd.ParseArgs(args); code != 0 {
		return code
	}
	if cmd.ShowVersion {
		fmt.Fprintf(cmd.OutStream, "weburl version %s\n", version)
		return 0
	}
	if cmd.ShowHelp {
		cmd.PrintUsage()
		return 0
	}
	if len(cmd.Targets) == 0 {
		cmd.PrintUsage()
		return 2
	}
	return cmd.Run()
}

func main() {
	cmd := &WeburlCommand{
		OutStream: os.Stdout,
		ErrStream: os.Stderr,
	}
	os.Exit(cmd.Main(os.Args))
}
