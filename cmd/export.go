package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppmconsultants/ppmsite/internal/content"
	"github.com/ppmconsultants/ppmsite/internal/progress"
	"github.com/ppmconsultants/ppmsite/internal/site"
	"github.com/ppmconsultants/ppmsite/internal/web"
)

var (
	exportOut     string
	exportImages  string
	exportWorkers int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the site to static HTML",
	Long: `Renders every page, the 404 page and the stylesheet and scripts into an
output directory that any static file host can serve. The hero in an
exported site shows the first slide; rotation needs the live server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()

		store, err := content.NewStore(cfg.ContentFile)
		if err != nil {
			return fmt.Errorf("loading content: %w", err)
		}

		heroInterval := cfg.Rotator.Interval()
		pages := web.New(web.Options{
			Content:      store,
			Subjects:     cfg.Contact.Subjects,
			HeroInterval: &heroInterval,
			Logger:       logger.Named("web"),
		})

		gen := site.NewGenerator(pages, exportOut)
		gen.ImagesDir = imagesDir(exportImages)
		gen.Workers = exportWorkers
		gen.Reporter = progress.NewReporter()
		gen.Logger = logger.Named("export")

		n, err := gen.Generate(cmd.Context())
		if err != nil {
			return fmt.Errorf("exporting site: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d files to %s\n", n, exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "dist", "output directory")
	exportCmd.Flags().StringVar(&exportImages, "images", "images", "image directory copied to <out>/images when it exists")
	exportCmd.Flags().IntVar(&exportWorkers, "workers", 4, "pages rendered in parallel")
	rootCmd.AddCommand(exportCmd)
}
