package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"foliopress/pkg/core/document"
	"foliopress/pkg/core/editor"
	catio "foliopress/pkg/io"
)

// editModel is the bubbletea model for the layers editor. The cursor walks
// the current page's layer stack front-to-back, the way the list is drawn.
type editModel struct {
	editor *editor.Editor
	path   string

	cursor int
	status string
	dirty  bool
	height int
}

func newEditModel(ed *editor.Editor, path string) editModel {
	return editModel{editor: ed, path: path, height: 20}
}

func (m editModel) Init() tea.Cmd {
	return nil
}

// cursorID returns the element id under the cursor, or "".
func (m editModel) cursorID() string {
	p := m.editor.Page()
	if p == nil {
		return ""
	}
	layers := p.LayerOrder()
	if m.cursor < 0 || m.cursor >= len(layers) {
		return ""
	}
	return layers[m.cursor]
}

func (m *editModel) clampCursor() {
	p := m.editor.Page()
	n := 0
	if p != nil {
		n = len(p.Elements)
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height - 8
		if m.height < 5 {
			m.height = 5
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m editModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ed := m.editor
	id := m.cursorID()

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		p := ed.Page()
		if p != nil && m.cursor < len(p.Elements)-1 {
			m.cursor++
		}

	case "left":
		if ed.CurrentPage > 0 {
			ed.CurrentPage--
			ed.Selection().Clear()
			m.cursor = 0
		}
	case "right":
		if ed.CurrentPage < ed.Catalog().PageCount()-1 {
			ed.CurrentPage++
			ed.Selection().Clear()
			m.cursor = 0
		}

	case "enter":
		ed.Selection().Click(ed.Page(), id)
		m.status = fmt.Sprintf("selected %d", len(ed.Selection().IDs()))
	case "x":
		ed.Selection().ShiftClick(ed.Page(), id)
		m.status = fmt.Sprintf("selected %d", len(ed.Selection().IDs()))

	case "g":
		if gid := ed.GroupSelection(); gid != "" {
			m.markDirty("grouped %d elements", len(ed.Selection().IDs()))
		}
	case "u":
		if ed.UngroupSelection() {
			m.markDirty("ungrouped")
		}
	case "l":
		if ed.ToggleLock(id) {
			m.markDirty("lock toggled")
		}
	case "d":
		if ed.DuplicateElement(id) {
			m.markDirty("duplicated")
		}
	case "backspace", "delete":
		if ed.RemoveElement(id) {
			m.markDirty("removed")
			m.clampCursor()
		}

	case "f":
		if ed.ReorderElement(id, document.ToFront) {
			m.markDirty("to front")
			m.cursor = 0
		}
	case "b":
		if ed.ReorderElement(id, document.ToBack) {
			m.markDirty("to back")
		}
	case "]":
		if ed.ReorderElement(id, document.Forward) && m.cursor > 0 {
			m.markDirty("forward")
			m.cursor--
		}
	case "[":
		if ed.ReorderElement(id, document.Backward) {
			m.markDirty("backward")
			p := ed.Page()
			if p != nil && m.cursor < len(p.Elements)-1 {
				m.cursor++
			}
		}

	case "shift+up":
		if ed.NudgeSelection(0, -1) {
			m.markDirty("nudged")
		}
	case "shift+down":
		if ed.NudgeSelection(0, 1) {
			m.markDirty("nudged")
		}
	case "shift+left":
		if ed.NudgeSelection(-1, 0) {
			m.markDirty("nudged")
		}
	case "shift+right":
		if ed.NudgeSelection(1, 0) {
			m.markDirty("nudged")
		}

	case "z":
		if ed.Undo() {
			m.markDirty("undo")
			m.clampCursor()
		} else {
			m.status = "nothing to undo"
		}
	case "y":
		if ed.Redo() {
			m.markDirty("redo")
			m.clampCursor()
		} else {
			m.status = "nothing to redo"
		}

	case "n":
		if ed.AddPage(document.PageInterior) {
			m.markDirty("page added")
			m.cursor = 0
		}

	case "s":
		if err := catio.ExportJSON(ed.Catalog(), m.path); err != nil {
			m.status = "save failed: " + err.Error()
		} else {
			m.status = "saved"
			m.dirty = false
		}
	}

	return m, nil
}

func (m *editModel) markDirty(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.dirty = true
}

func (m editModel) View() string {
	var b strings.Builder
	ed := m.editor
	c := ed.Catalog()
	p := ed.Page()

	title := fmt.Sprintf("%s  ·  page %d/%d", c.Name, ed.CurrentPage+1, c.PageCount())
	if m.dirty {
		title += "  " + StyleWarning.Render("*")
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ move  ←/→ page  ⏎ select  x multi-select  shift+arrows nudge"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("g group  u ungroup  l lock  d dup  del remove  f/b/]/[ order  z/y undo  n page  s save  q quit"))
	b.WriteString("\n\n")

	if p == nil || len(p.Elements) == 0 {
		b.WriteString(StyleDim.Render("  (empty page)"))
	} else {
		b.WriteString(m.viewLayers(p))
	}

	b.WriteString("\n\n")
	if m.status != "" {
		b.WriteString(StyleDim.Render("  " + m.status))
	}
	return b.String()
}

// viewLayers renders the layer stack front-to-back.
func (m editModel) viewLayers(p *document.Page) string {
	var b strings.Builder
	layers := p.LayerOrder()

	for i, id := range layers {
		if i >= m.height {
			b.WriteString(StyleDim.Render(fmt.Sprintf("  … %d more", len(layers)-i)))
			b.WriteString("\n")
			break
		}
		el := p.Element(id)
		if el == nil {
			continue
		}

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		line := fmt.Sprintf("%s%-13s %-10s %4.0f,%-4.0f", cursor, el.Type, shortID(el.ID), el.X, el.Y)
		if el.GroupID != "" {
			line += "  " + StyleDim.Render("⧉ "+shortID(el.GroupID))
		}
		if el.Bound() {
			line += "  " + StyleSuccess.Render("◆")
		}
		if el.Locked {
			line += "  " + styleLocked.Render(iconLock)
		}

		switch {
		case i == m.cursor:
			b.WriteString(styleSelected.Render(line))
		case m.editor.Selection().Contains(id):
			b.WriteString(StyleSuccess.Render(line))
		case el.Locked:
			b.WriteString(StyleDim.Render(line))
		default:
			b.WriteString(styleNormal.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
