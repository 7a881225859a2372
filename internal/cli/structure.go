package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	catio "foliopress/pkg/io"
	"foliopress/pkg/render"
)

// newStructureCmd creates the structure command: a DOT or SVG diagram of a
// catalog's page/element/group composition.
func newStructureCmd() *cobra.Command {
	var (
		output   string
		detailed bool
		page     int
	)

	cmd := &cobra.Command{
		Use:   "structure <catalog.json>",
		Short: "Emit a structure diagram of a catalog",
		Long: `Structure renders the catalog's composition as a diagram: pages as
clusters, elements as nodes in stacking order, group membership and
product bindings as edges. The output format follows the file extension
(.dot or .svg); no output file prints DOT to stdout.`,
		Args: cobra.ExactArgs(1),
		Example: `  foliopress structure catalog.json
  foliopress structure catalog.json -o catalog.svg --detailed
  foliopress structure catalog.json -o page2.dot --page 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			c, err := catio.ImportJSON(args[0])
			if err != nil {
				return err
			}
			dot := render.ToDOT(c, render.Options{Detailed: detailed, Page: page})

			if output == "" {
				fmt.Print(dot)
				return nil
			}

			data := []byte(dot)
			if strings.HasSuffix(output, ".svg") {
				prog := newProgress(logger)
				data, err = render.ToSVG(dot)
				if err != nil {
					return err
				}
				prog.done("Rendered structure diagram")
			}

			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.dot or .svg); stdout when empty")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include geometry and flags in node labels")
	cmd.Flags().IntVar(&page, "page", -1, "restrict to one page index")
	return cmd
}
