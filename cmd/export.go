package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/khadija-altaf/folio/internal/assets"
	"github.com/khadija-altaf/folio/internal/export"
	"github.com/khadija-altaf/folio/internal/progress"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the portfolio as a static website",
	Long:  `Renders all eight pages, a 404 page, the stylesheet and the allowed asset files into a directory that any static file host can serve.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().String("output", "", "output directory (defaults to {dataDir}/site)")
	exportCmd.Flags().Bool("dark", false, "render the pages in dark mode")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	content, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = filepath.Join(cfg.DataDir, "site")
	}
	dark, _ := cmd.Flags().GetBool("dark")

	g := export.NewGenerator(outputDir, content, assets.New(cfg.AssetsDir, cfg.AssetPatterns))
	g.Dark = dark
	g.Reporter = progress.NewReporter()
	g.Log = log

	res, err := g.Generate(cmd.Context())
	if err != nil {
		return fmt.Errorf("exporting site: %w", err)
	}

	fmt.Printf("Static site exported: %s (%d pages, %d assets)\n", outputDir, res.Pages, res.Assets)
	return nil
}
