package cmd

import (
	"fmt"
	"os"

	"github.com/sjzsdu/dbproj/config"
	"github.com/sjzsdu/dbproj/lang"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: lang.T("Manage dbproj configuration"),
	Long:  lang.T("Manage dbproj configuration") + `

示例：
  dbproj config                  # 列出全部配置
  dbproj config lang             # 查看单个配置
  dbproj config lang zh-CN       # 设置配置
  dbproj config lang ""          # 删除配置`,
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		switch len(args) {
		case 0:
			for _, key := range config.Keys() {
				fmt.Printf("%s=%s\n", key, config.GetConfig(key))
			}
		case 1:
			fmt.Println(config.GetConfig(args[0]))
		case 2:
			config.SetConfig(args[0], args[1])
			if err := config.SaveConfig(); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
