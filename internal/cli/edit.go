package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"foliopress/pkg/core/editor"
	catio "foliopress/pkg/io"
)

// newEditCmd creates the edit command: the interactive layers editor.
func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <catalog.json>",
		Short: "Edit a catalog interactively",
		Long: `Edit opens the catalog in an interactive layers editor: navigate pages
and stacking order, select, group, lock, reorder, nudge, and undo/redo,
then save back to the file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			c, err := catio.ImportJSON(args[0])
			if err != nil {
				return err
			}

			ed := editor.New(c, logger)
			m := newEditModel(ed, args[0])
			final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
			if err != nil {
				return err
			}

			if fm, ok := final.(editModel); ok && fm.dirty {
				printInfo("unsaved changes were discarded")
			}
			return nil
		},
	}
	return cmd
}
