package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"wallpaper-aligner/internal/store"
)

func layoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Work with display layout files",
	}
	cmd.AddCommand(layoutExportCmd())
	return cmd
}

// layout export [file]: write the detected layout, to stdout without a file.
func layoutExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write the detected display layout as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detected, err := appCtx.Displays.Configuration(cmd.Context())
			if err != nil {
				return err
			}
			if len(args) == 0 {
				b, err := store.MarshalLayout(detected)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(b)
				return err
			}
			if err := appCtx.Layouts.SaveLayout(args[0], detected); err != nil {
				return fmt.Errorf("unable to save layout: %w", err)
			}
			appCtx.Printer.Success(fmt.Sprintf("Layout written to %s", args[0]))
			return nil
		},
	}
}
