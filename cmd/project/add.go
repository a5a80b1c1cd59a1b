package project

import (
	"fmt"
	"path/filepath"

	"github.com/sjzsdu/dbproj/lang"
	"github.com/spf13/cobra"
)

var scriptContent string

// AddScriptCmd 向项目添加单个SQL脚本
var AddScriptCmd = &cobra.Command{
	Use:   "add-script <relative-path>",
	Short: lang.T("Add a SQL script to the project"),
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		proj := requireProject()

		var contents []byte
		if cmd.Flags().Changed("content") {
			contents = []byte(scriptContent)
		}

		entry, err := proj.AddScriptItem(args[0], contents)
		if err != nil {
			fatal(err)
		}
		fmt.Println(entry.RelativePath)
	},
}

// AddFolderCmd 向项目添加文件夹
var AddFolderCmd = &cobra.Command{
	Use:   "add-folder <relative-path>",
	Short: lang.T("Add a folder to the project"),
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		proj := requireProject()

		entry, err := proj.AddFolderItem(args[0])
		if err != nil {
			fatal(err)
		}
		fmt.Println(entry.RelativePath)
	},
}

// AddCmd 批量添加文件和文件夹
var AddCmd = &cobra.Command{
	Use:   "add <paths...>",
	Short: lang.T("Add files and folders to the project"),
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		proj := requireProject()

		paths := make([]string, 0, len(args))
		for _, arg := range args {
			abs, err := filepath.Abs(arg)
			if err != nil {
				fatal(err)
			}
			paths = append(paths, abs)
		}

		if err := proj.AddToProject(paths); err != nil {
			fatal(err)
		}
	},
}

func init() {
	AddScriptCmd.Flags().StringVarP(&scriptContent, "content", "c", "", lang.T("Script content to write"))
}
