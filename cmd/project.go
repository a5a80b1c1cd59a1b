package cmd

import (
	"fmt"
	"os"

	projectSubcommand "github.com/sjzsdu/dbproj/cmd/project"
	"github.com/sjzsdu/dbproj/lang"
	"github.com/spf13/cobra"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: lang.T("Manage a SQL database project"),
	Long: `project 命令提供了一系列数据库项目管理功能。

可用的子命令：
  info       显示项目信息
  add-script 向项目添加 SQL 脚本
  add-folder 向项目添加文件夹
  add        批量添加文件和文件夹
  reference  添加数据库引用
  variable   添加 SQLCMD 变量
  dsp        修改目标平台
  migrate    升级项目以支持双向构建

示例：
  dbproj project info                       # 显示当前目录项目的信息
  dbproj project add-script dbo/Users.sql   # 添加一个脚本文件`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// 在执行任何子命令之前，先加载项目实例
		proj, err := GetProject()
		if err != nil {
			fmt.Fprintf(os.Stderr, "加载项目失败: %v\n", err)
			os.Exit(1)
		}
		// 将项目实例设置到子命令的 project 包中
		projectSubcommand.SetSharedProject(proj)
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.AddCommand(projectCmd)

	// 添加子命令
	projectCmd.AddCommand(projectSubcommand.InfoCmd)
	projectCmd.AddCommand(projectSubcommand.AddScriptCmd)
	projectCmd.AddCommand(projectSubcommand.AddFolderCmd)
	projectCmd.AddCommand(projectSubcommand.AddCmd)
	projectCmd.AddCommand(projectSubcommand.ReferenceCmd)
	projectCmd.AddCommand(projectSubcommand.VariableCmd)
	projectCmd.AddCommand(projectSubcommand.DspCmd)
	projectCmd.AddCommand(projectSubcommand.MigrateCmd)
}
