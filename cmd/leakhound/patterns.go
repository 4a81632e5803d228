package leakhound

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leakhound/leakhound/internal/extract"
)

func init() {
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "List the credential kinds in the pattern catalog",
		Run: func(_ *cobra.Command, _ []string) {
			for _, e := range extract.Catalog() {
				fmt.Printf("%-16s %s\n", e.Kind, e.Pattern.String())
			}
		},
	}
	rootCmd.AddCommand(cmd)
}
