package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/mcpreg/internal/config"
	"github.com/thoreinstein/mcpreg/internal/errors"
	"github.com/thoreinstein/mcpreg/internal/paths"
	"github.com/thoreinstein/mcpreg/pkg/fileutil"
)

var initForce bool

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing configuration")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write a configuration file with default values.

The file is created at $XDG_CONFIG_HOME/mcpreg/config.yaml, or in the
directory named by MCPREG_CONFIG_DIR. Existing files are kept unless
--force is given.`,
	Example: `  # Create the config file
  mcpreg init

  # Reset it to defaults
  mcpreg init --force

  See Also: mcpreg settings`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

// configFile is the on-disk config layout written by init. Durations are
// strings so the file stays readable.
type configFile struct {
	Version int `yaml:"version"`
	Server  struct {
		Addr            string `yaml:"addr"`
		ReadTimeout     string `yaml:"read_timeout"`
		ShutdownTimeout string `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	DefaultClient string `yaml:"default_client"`
	CatalogFile   string `yaml:"catalog_file"`
	Slug          struct {
		SanitizeAuthor bool `yaml:"sanitize_author"`
	} `yaml:"slug"`
}

func newConfigFile(cfg *config.Config) configFile {
	var f configFile
	f.Version = cfg.Version
	f.Server.Addr = cfg.Server.Addr
	f.Server.ReadTimeout = cfg.Server.ReadTimeout.String()
	f.Server.ShutdownTimeout = cfg.Server.ShutdownTimeout.String()
	f.DefaultClient = cfg.DefaultClient
	f.CatalogFile = cfg.CatalogFile
	f.Slug.SanitizeAuthor = cfg.Slug.SanitizeAuthor
	return f
}

func runInit(c *cobra.Command, _ []string) error {
	w := c.OutOrStdout()
	path := paths.ConfigFile()

	if _, err := os.Stat(path); err == nil && !initForce {
		fmt.Fprintf(w, "Configuration already exists at %s\n", path)
		fmt.Fprintln(w, "Use --force to overwrite")
		return nil
	}

	if err := paths.EnsureDir(filepath.Dir(path), paths.DefaultDirPerm); err != nil {
		return errors.NewSystemError(errors.Wrap(err, "creating config directory"), "Set "+paths.ConfigDirEnv+" to a writable directory")
	}

	f := newConfigFile(config.Default())
	f.DefaultClient = defaultState().Client
	if err := fileutil.AtomicWriteYAML(path, f, 0o600); err != nil {
		return errors.NewSystemError(errors.Wrap(err, "writing config file"), "")
	}

	fmt.Fprintf(w, "Created %s\n", path)
	return nil
}
