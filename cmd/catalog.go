package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/khadija-altaf/folio/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the portfolio content",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a catalog file",
	Long:  `Checks a YAML catalog for missing required fields, invalid values and duplicate ids. Without an argument the configured catalog is checked.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := catalogPath(args)
		if err != nil {
			return err
		}
		c, err := catalog.LoadOrDefault(path)
		if err != nil {
			return err
		}
		if err := c.Validate(); err != nil {
			return err
		}
		if path == "" {
			path = "built-in catalog"
		}
		fmt.Printf("%s is valid: %d projects, %d certifications, %d experience entries\n",
			path, len(c.Projects), len(c.Certifications), len(c.Experience))
		return nil
	},
}

var catalogDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the catalog as YAML",
	Long:  `Prints the configured catalog as YAML. Use --output to write a starting point for a custom catalog file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := catalogPath(nil)
		if err != nil {
			return err
		}
		c, err := catalog.LoadOrDefault(path)
		if err != nil {
			return err
		}

		if out, _ := cmd.Flags().GetString("output"); out != "" {
			if err := c.Save(out); err != nil {
				return err
			}
			fmt.Printf("Catalog written to %s\n", out)
			return nil
		}

		data, err := c.Marshal()
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

// catalogPath returns the catalog named in args, or the configured one.
func catalogPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	cfg, err := loadConfig()
	if err != nil {
		return "", err
	}
	return cfg.CatalogFile, nil
}

func init() {
	catalogDumpCmd.Flags().String("output", "", "write the catalog to this file instead of stdout")
	catalogCmd.AddCommand(catalogValidateCmd, catalogDumpCmd)
	rootCmd.AddCommand(catalogCmd)
}
