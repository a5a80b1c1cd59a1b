package cmd

import (
	"fmt"

	"github.com/sjzsdu/dbproj/lang"
	"github.com/sjzsdu/dbproj/share"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: lang.T("Print version information"),
	Long:  lang.T("Print detailed version information of dbproj"),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s: %s\n", lang.T("dbproj version"), share.VERSION)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
