package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/cmdkit/core/config"
	"github.com/msto63/cmdkit/core/log"
	"github.com/msto63/cmdkit/interp"
	"github.com/msto63/cmdkit/interp/handler"
)

const (
	envPrefix         = "CMDSH"
	defaultConfigFile = "cmdsh.toml"
)

var (
	cfgFile string
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "cmdsh",
	Short: "Interactive line-oriented command shell",
	Long: `cmdsh is an interactive command shell built on the cmdkit
interpreter toolkit. It reads one command per line, dispatches it to a
registered handler and prints the handler's output.

Built-in commands:
  help     - show the available commands
  greet    - greet by name, or generically without arguments
  echo     - print the arguments back
  touch    - create an empty file
  quit     - leave the shell`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShell()
	},
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError("shell terminated", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./cmdsh.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress the startup banner")
}

// loadConfig resolves the configuration from the --config flag, a
// cmdsh.toml in the working directory, or built-in defaults. Environment
// variables with the CMDSH_ prefix override file values either way.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadWithOptions(cfgFile, config.LoadOptions{EnvPrefix: envPrefix})
	}
	if _, err := os.Stat(defaultConfigFile); err == nil {
		return config.LoadWithOptions(defaultConfigFile, config.LoadOptions{EnvPrefix: envPrefix})
	}
	return config.NewEmpty(envPrefix), nil
}

// buildLogger derives the shell logger from configuration and flags. The
// logger writes to stderr so that interpreter output on stdout stays a
// clean transcript.
func buildLogger(cfg *config.Config) *log.Logger {
	level, err := log.ParseLevel(cfg.GetString("log.level", "warn"))
	if err != nil {
		level = log.LevelWarn
	}
	if verbose {
		level = log.LevelDebug
	}

	format, err := log.ParseFormat(cfg.GetString("log.format", "console"))
	if err != nil {
		format = log.FormatConsole
	}

	return log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
		Name:   "cmdsh",
	})
}

func runShell() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := buildLogger(cfg)
	log.SetDefault(logger)

	if !quiet && !cfg.GetBool("shell.quiet", false) {
		printBanner(os.Stdout)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	it, err := interp.New(os.Stdin, out, interp.Options{
		Logger:        logger,
		Prompt:        cfg.GetString("shell.prompt", interp.DefaultPrompt),
		MaxLineLength: cfg.GetInt("shell.max_line_length", interp.DefaultMaxLineLength),
	})
	if err != nil {
		return err
	}

	if err := registerBuiltins(it); err != nil {
		return err
	}

	logger.Info("shell ready", log.Fields{
		"session":  it.SessionID(),
		"commands": it.Registry().Len(),
	})

	return it.Run()
}

// registerBuiltins wires the stock command set into the interpreter.
func registerBuiltins(it *interp.Interp) error {
	if err := it.AddCommand("quit", handler.Quit{}); err != nil {
		return err
	}
	if err := it.AddCommand("greet", handler.Greet{}); err != nil {
		return err
	}
	if err := it.AddCommand("touch", handler.Touch{}); err != nil {
		return err
	}
	if err := it.AddCommandFunc("echo", echoHandler); err != nil {
		return err
	}

	// Rendered lazily so the listing covers every registered command,
	// including help itself and anything added later.
	return it.AddCommandFunc("help", func(out io.Writer, _ []string) (handler.Signal, error) {
		_, err := fmt.Fprintln(out, helpText(it))
		return handler.Continue, err
	})
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
