package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"foliopress/pkg/core/document"
	catio "foliopress/pkg/io"
)

// newInspectCmd creates the inspect command for summarizing a catalog file.
func newInspectCmd() *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "inspect <catalog.json>",
		Short: "Summarize a catalog's pages, layers, and bindings",
		Args:  cobra.ExactArgs(1),
		Example: `  foliopress inspect catalog.json
  foliopress inspect catalog.json --page 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catio.ImportJSON(args[0])
			if err != nil {
				return err
			}

			printKeyValue("Catalog", c.Name)
			printKeyValue("Pages", fmt.Sprintf("%d", c.PageCount()))
			printKeyValue("Elements", fmt.Sprintf("%d", countElements(c)))
			printKeyValue("Updated", c.UpdatedAt.Format("2006-01-02 15:04"))
			fmt.Println()

			if page >= 0 {
				p := c.Page(page)
				if p == nil {
					printError("no page %d", page)
					return nil
				}
				printLayers(p)
				return nil
			}

			printPageTable(c)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", -1, "show the layer stack of one page")
	return cmd
}

func printPageTable(c *document.Catalog) {
	rows := [][]string{}
	for _, p := range c.Pages {
		bound, locked, groups := pageStats(p)
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.Number),
			string(p.Type),
			fmt.Sprintf("%d", len(p.Elements)),
			fmt.Sprintf("%d", bound),
			fmt.Sprintf("%d", locked),
			fmt.Sprintf("%d", groups),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Page", "Type", "Elements", "Bound", "Locked", "Groups").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return styleNormal
		})
	fmt.Println(t.Render())
}

// printLayers prints one page's stack front-to-back, the way a layers
// panel shows it.
func printLayers(p *document.Page) {
	fmt.Println(StyleTitle.Render(fmt.Sprintf("Page %d (%s)", p.Number, p.Type)))
	for _, id := range p.LayerOrder() {
		el := p.Element(id)
		if el == nil {
			continue
		}
		line := fmt.Sprintf("  %-13s %-10s %4.0f,%-4.0f %4.0fx%-4.0f", el.Type, shortID(el.ID), el.X, el.Y, el.Width, el.Height)
		if el.GroupID != "" {
			line += " " + StyleDim.Render("group:"+shortID(el.GroupID))
		}
		if el.Bound() {
			line += " " + StyleSuccess.Render("◆ "+string(el.Role))
		}
		if el.Locked {
			line += " " + styleLocked.Render(iconLock)
		}
		fmt.Println(line)
	}
}

func pageStats(p document.Page) (bound, locked, groups int) {
	seen := map[string]bool{}
	for _, el := range p.Elements {
		if el.Bound() {
			bound++
		}
		if el.Locked {
			locked++
		}
		if el.GroupID != "" && !seen[el.GroupID] {
			seen[el.GroupID] = true
			groups++
		}
	}
	return bound, locked, len(seen)
}

func countElements(c *document.Catalog) int {
	n := 0
	for _, p := range c.Pages {
		n += len(p.Elements)
	}
	return n
}

func catalogSummary(c *document.Catalog) string {
	return fmt.Sprintf("Built %q: %d page(s), %d element(s)", c.Name, c.PageCount(), countElements(c))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
