package cmd

import (
	"fmt"
	"os"

	"github.com/go-drift/circletimer/pkg/circletimer/styles"
)

func init() {
	RegisterCommand(&Command{
		Name:  "style",
		Short: "Print the resolved timer style",
		Long: `Print the style the timer would use, after applying the config file
to the defaults. The output can be saved and edited as the "style"
section of a config file.

Flags:
  --toml    Print TOML instead of YAML`,
		Usage: "circletimer style [--toml]",
		Run:   runStyle,
	})
}

func runStyle(args []string) error {
	format := styles.FormatYAML
	for _, arg := range args {
		switch arg {
		case "--toml":
			format = styles.FormatTOML
		case "--yaml":
			format = styles.FormatYAML
		default:
			return fmt.Errorf("unexpected argument %q", arg)
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := styles.Marshal(cfg.Style, format)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
