package project

import (
	"github.com/sjzsdu/dbproj/lang"
	"github.com/spf13/cobra"
)

// VariableCmd 添加SQLCMD变量
var VariableCmd = &cobra.Command{
	Use:   "variable <name> <default-value>",
	Short: lang.T("Add a SQLCMD variable"),
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		proj := requireProject()
		if err := proj.AddSqlCmdVariable(args[0], args[1]); err != nil {
			fatal(err)
		}
	},
}
