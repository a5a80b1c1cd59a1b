package project

import (
	"github.com/sjzsdu/dbproj/lang"
	"github.com/spf13/cobra"
)

// DspCmd 修改项目的目标平台
var DspCmd = &cobra.Command{
	Use:   "dsp <version>",
	Short: lang.T("Change the target platform of the project"),
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		proj := requireProject()
		if err := proj.ChangeDSP(args[0]); err != nil {
			fatal(err)
		}
	},
}
