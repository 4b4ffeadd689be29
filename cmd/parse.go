package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mediasort/mediasort/pkg/parse"
	"github.com/spf13/cobra"
)

// parseCmd classifies filenames without touching the store, useful for
// checking what a scan would make of a name
var parseCmd = &cobra.Command{
	Use:   "parse <filename>...",
	Short: "parse media filenames",
	Long:  `parse media filenames and print the detected classification`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, arg := range args {
			result := parse.Parse(arg, "")
			b, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			fmt.Println(string(b))
		}
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
