// Package cmd implements the circletimer CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (run, render, style).
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-drift/circletimer/cmd/circletimer/internal/config"
	"github.com/go-drift/circletimer/pkg/circletimer/styles"
	"github.com/go-drift/circletimer/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "circletimer",
	Short: "circletimer - a circular countdown timer",
	Long: `circletimer renders a circular countdown timer in software.

Type a number of seconds to start the timer. The fill disappears
clockwise from the top until the time is up.

Use "circletimer <command> --help" for more information about a command.`,
	Usage: "circletimer <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// globalOptions are the flags accepted before or after any command.
type globalOptions struct {
	configPath string
	stylePath  string
	verbose    bool
}

var globals globalOptions

// Execute runs the CLI with the given arguments.
func Execute() error {
	args := os.Args[1:]

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	var filteredArgs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Printf("circletimer version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--verbose":
			globals.verbose = true
		default:
			if v, n, ok, err := takeValue(args, i, "--config"); ok {
				if err != nil {
					return err
				}
				globals.configPath = v
				i += n - 1
				continue
			}
			if v, n, ok, err := takeValue(args, i, "--style"); ok {
				if err != nil {
					return err
				}
				globals.stylePath = v
				i += n - 1
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

// loadConfig resolves the host config from --config or the working
// directory, swaps in the --style file if one was given and installs the
// error handler the config asks for.
func loadConfig() (*config.Resolved, error) {
	var (
		cfg *config.Resolved
		err error
	)
	if globals.configPath != "" {
		cfg, err = config.ResolveFile(globals.configPath)
	} else {
		var dir string
		dir, err = os.Getwd()
		if err != nil {
			return nil, err
		}
		cfg, err = config.Resolve(dir)
	}
	if err != nil {
		return nil, err
	}
	if globals.verbose {
		cfg.Verbose = true
	}
	if globals.stylePath != "" {
		style, err := styles.Load(globals.stylePath)
		if err != nil {
			return nil, err
		}
		cfg.Style = style
	}
	errors.SetHandler(&errors.LogHandler{Verbose: cfg.Verbose})
	return cfg, nil
}

// takeValue returns the value of a "--name value" or "--name=value" flag
// at args[i] and how many arguments it consumed, or ok=false if args[i] is
// not that flag.
func takeValue(args []string, i int, name string) (value string, consumed int, ok bool, err error) {
	arg := args[i]
	if arg == name {
		if i+1 >= len(args) {
			return "", 0, true, fmt.Errorf("%s requires a value", name)
		}
		return args[i+1], 2, true, nil
	}
	if strings.HasPrefix(arg, name+"=") {
		return strings.TrimPrefix(arg, name+"="), 1, true, nil
	}
	return "", 0, false, nil
}

func printHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
	fmt.Println()
	fmt.Println("Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Printf("  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -h, --help           Show help for a command")
	fmt.Println("  -v, --version        Show version information")
	fmt.Println("  --config FILE        Read host settings from FILE (.yaml, .yml or .toml)")
	fmt.Println("  --style FILE         Use the style in FILE instead of the config's style section")
	fmt.Println("  --verbose            Echo input and report rejected values")
	fmt.Println()
	fmt.Println("Config:")
	fmt.Printf("  Without --config, the first of %s\n", strings.Join(config.FileNames, ", "))
	fmt.Println("  found in the working directory is used.")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  circletimer run                     Start timers from typed seconds")
	fmt.Println("  circletimer render --duration 10 --at 2.5 --out t.png")
	fmt.Println("  circletimer style --toml            Print the resolved style")
	fmt.Println("  circletimer render --style red.yaml --filled --out red.png")
}

func printCommandHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
}
