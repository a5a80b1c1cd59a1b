package cmd

import (
	"fmt"
	"os"

	"github.com/sjzsdu/dbproj/config"
	"github.com/sjzsdu/dbproj/lang"
	"github.com/sjzsdu/dbproj/platform"
	"github.com/spf13/cobra"
)

var newTargetVersion string

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: lang.T("Create a new SQL database project"),
	Long: lang.T("Create a new SQL database project") + `

示例：
  dbproj new MyDatabase                 # 在当前目录创建项目
  dbproj new MyDatabase -t 160          # 指定目标平台版本`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		version := newTargetVersion
		if version == "" {
			version = config.GetConfigWithDefault("default-dsp", string(platform.Sql150))
		}

		proj, err := createNewProject(args[0], platform.TargetPlatform(version))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(proj.ProjectFilePath)
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVarP(&newTargetVersion, "target", "t", "", lang.T("Target platform version"))
}
