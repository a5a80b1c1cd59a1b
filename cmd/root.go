package cmd

import (
	"fmt"
	"os"

	"github.com/sjzsdu/dbproj/lang"
	"github.com/sjzsdu/dbproj/share"
	"github.com/spf13/cobra"
)

var (
	workDir     string
	projectFile string
	repoURL     string
	debugMode   bool
)

var rootCmd = &cobra.Command{
	Use:   share.BUILDNAME,
	Short: lang.T("Dbproj command line tool"),
	Long:  lang.T("A command line tool for SQL database projects"),
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	Run: func(cmd *cobra.Command, args []string) {
		// 如果没有参数，显示帮助信息
		if len(args) == 0 {
			cmd.Help()
			return
		}
		fmt.Fprintln(os.Stderr, lang.T("Invalid arguments")+": ", args)
		os.Exit(1)
	},
}

// Execute 运行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&workDir, "directory", "d", ".", lang.T("Work directory path"))
	rootCmd.PersistentFlags().StringVarP(&projectFile, "project", "p", "", lang.T("Project file path"))
	rootCmd.PersistentFlags().StringVarP(&repoURL, "repository", "r", "", lang.T("Git repository URL to clone and open"))
	rootCmd.PersistentFlags().BoolVarP(&debugMode, "debug", "v", false, lang.T("Debug mode"))
	// 设置全局 debug 模式
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		share.SetDebug(debugMode)
	}
}
