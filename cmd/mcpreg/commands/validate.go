package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/mcpreg/internal/catalog"
	"github.com/thoreinstein/mcpreg/internal/errors"
	"github.com/thoreinstein/mcpreg/internal/validator"
)

var validateJSON bool

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a catalog file",
	Long: `Check a catalog file (YAML, TOML or JSON) before pointing catalog_file
at it. Without an argument, checks the configured catalog, or the built-in
table when none is configured.

Errors prevent the catalog from loading; warnings point at records that
load but render poorly.`,
	Example: `  # Check a file
  mcpreg validate ./catalog.yaml

  # Machine-readable report
  mcpreg validate ./catalog.toml --json

  See Also: mcpreg settings`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(c *cobra.Command, args []string) error {
	path := currentConfig().CatalogFile
	if len(args) == 1 {
		path = args[0]
	}

	var records []catalog.Integration
	if path == "" {
		records = catalog.Default().All()
	} else {
		var err error
		records, err = catalog.ReadRecords(path)
		if err != nil {
			return errors.NewUserError(err, "Catalog files need a top-level integrations list")
		}
	}

	format := validator.FormatText
	if validateJSON {
		format = validator.FormatJSON
	}
	result := validator.CheckIntegrations(records)
	if err := validator.NewReporter(c.OutOrStdout(), format).Report(result); err != nil {
		return err
	}

	if result.HasErrors() {
		return errors.NewUserError(
			errors.Mark(errors.Newf("%d error(s) in catalog", len(result.Errors())), errors.ErrInvalidCatalog),
			fmt.Sprintf("Fix the errors above, then run: mcpreg validate %s", path),
		)
	}
	return nil
}
