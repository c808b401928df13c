package commands

import (
	"github.com/spf13/cobra"

	"github.com/vowsmith/planner/internal/share"
)

// NewShareCmd creates the share command
func NewShareCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "share",
		Short: "Print a shareable snapshot token for a preferences file",
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := loadPreferences(file)
			if err != nil {
				return err
			}

			code, err := share.Encode(prefs)
			if err != nil {
				return err
			}
			cmd.Println(code)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML preferences file (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
