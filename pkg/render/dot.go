package render

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strings"

	"foliopress/pkg/core/document"
)

// Options configures structure diagram rendering.
type Options struct {
	// Detailed includes geometry and style details in element labels.
	// When false, only type and id prefix are shown.
	Detailed bool

	// Page restricts the diagram to a single page index. Negative renders
	// every page.
	Page int
}

// ToDOT converts a catalog to Graphviz DOT format. Pages become clusters
// holding one node per element in back-to-front order; shared group tags
// become dashed undirected chains and product bindings become labeled
// edges to product nodes. The resulting DOT string can be rendered with
// [ToSVG].
func ToDOT(c *document.Catalog, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph catalog {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12, margin=\"0.15,0.08\"];\n")
	fmt.Fprintf(&buf, "  label=%q;\n", c.Name)
	buf.WriteString("\n")

	products := map[string]bool{}
	for i := range c.Pages {
		if opts.Page >= 0 && opts.Page != i {
			continue
		}
		p := &c.Pages[i]
		writePage(&buf, p, opts)
		for _, el := range p.Elements {
			if el.Bound() {
				products[el.ProductID] = true
			}
		}
	}

	// Product nodes sit outside the page clusters so bindings across
	// pages converge on one node per product.
	for _, id := range slices.Sorted(maps.Keys(products)) {
		fmt.Fprintf(&buf, "  %q [shape=ellipse, fillcolor=\"#fde2e4\", label=%q];\n",
			"product:"+id, "product\n"+shortID(id))
	}
	buf.WriteString("\n")

	for i := range c.Pages {
		if opts.Page >= 0 && opts.Page != i {
			continue
		}
		writeEdges(&buf, &c.Pages[i])
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writePage(buf *bytes.Buffer, p *document.Page, opts Options) {
	fmt.Fprintf(buf, "  subgraph \"cluster_page_%d\" {\n", p.Number)
	fmt.Fprintf(buf, "    label=\"page %d (%s)\";\n", p.Number, p.Type)
	buf.WriteString("    style=rounded;\n")
	buf.WriteString("    color=\"#9a9a9a\";\n")

	for i, el := range p.Elements {
		label := fmtLabel(el, i, opts.Detailed)
		attrs := fmtAttrs(el, label)
		fmt.Fprintf(buf, "    %q [%s];\n", el.ID, strings.Join(attrs, ", "))
	}
	buf.WriteString("  }\n\n")
}

func writeEdges(buf *bytes.Buffer, p *document.Page) {
	// Chain group members in array order rather than emitting a clique.
	last := map[string]string{}
	for _, el := range p.Elements {
		if el.GroupID != "" {
			if prev, ok := last[el.GroupID]; ok {
				fmt.Fprintf(buf, "  %q -- %q [style=dashed, color=\"#5b8def\"];\n", prev, el.ID)
			}
			last[el.GroupID] = el.ID
		}
		if el.Bound() {
			fmt.Fprintf(buf, "  %q -- %q [color=\"#e94560\", label=%q, fontsize=10];\n",
				el.ID, "product:"+el.ProductID, string(el.Role))
		}
	}
}

func fmtLabel(el document.Element, index int, detailed bool) string {
	head := fmt.Sprintf("%s %s", el.Type, shortID(el.ID))
	if !detailed {
		return head
	}

	parts := []string{fmt.Sprintf("z: %d", index)}
	parts = append(parts, fmt.Sprintf("at: %.0f,%.0f %.0fx%.0f", el.X, el.Y, el.Width, el.Height))
	if el.Slot != 0 {
		parts = append(parts, fmt.Sprintf("slot: %d", el.Slot))
	}
	if el.Locked {
		parts = append(parts, "locked")
	}
	if !el.Visible {
		parts = append(parts, "hidden")
	}
	return head + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(el document.Element, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch {
	case el.Locked:
		attrs = append(attrs, "fillcolor=\"#e8e8e8\"", "style=\"rounded,filled,dashed\"")
	case el.Type == document.TypeProductBlock:
		attrs = append(attrs, "fillcolor=\"#fff3e0\"")
	case el.GroupID != "":
		attrs = append(attrs, "fillcolor=\"#e7efff\"")
	}
	return attrs
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
