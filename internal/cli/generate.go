package cli

import (
	"github.com/spf13/cobra"

	"foliopress/pkg/core/document"
	"foliopress/pkg/core/layout"
	catio "foliopress/pkg/io"
	"foliopress/pkg/product"
	"foliopress/pkg/templates"
)

// newGenerateCmd creates the generate command: products plus a template in,
// catalog file out.
func newGenerateCmd() *cobra.Command {
	var (
		productsPath string
		templateName string
		templateDir  string
		name         string
		output       string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a catalog from a product list and a template",
		Long: `Generate lays the products from a TOML product file out with the named
grid template, paginating overflow into additional pages, and writes the
resulting catalog as JSON.`,
		Example: `  foliopress generate -p products.toml -t grid-2x2 -o catalog.json
  foliopress generate -p products.toml -t hero --name "Spring 2026" -o spring.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			coll, err := product.LoadTOML(productsPath)
			if err != nil {
				return err
			}
			logger.Debug("products loaded", "count", coll.Len())

			tpls, err := templates.Load(templateDir)
			if err != nil {
				return err
			}
			tpl, err := tpls.Get(templateName)
			if err != nil {
				return err
			}

			c := document.New(name)
			added, err := layout.Apply(c, 0, tpl.Grid, tpl.Theme, coll.List())
			if err != nil {
				return err
			}

			if err := catio.ExportJSON(c, output); err != nil {
				return err
			}

			prog.done(catalogSummary(c))
			printSuccess("Generated %d page(s) from %d product(s), %d added by pagination", c.PageCount(), coll.Len(), added)
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&productsPath, "products", "p", "products.toml", "product TOML file")
	cmd.Flags().StringVarP(&templateName, "template", "t", "grid-2x2", "template name")
	cmd.Flags().StringVar(&templateDir, "template-dir", "", "directory with extra TOML templates")
	cmd.Flags().StringVar(&name, "name", "Untitled catalog", "catalog name")
	cmd.Flags().StringVarP(&output, "output", "o", "catalog.json", "output catalog file")
	return cmd
}
