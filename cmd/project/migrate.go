package project

import (
	"fmt"

	"github.com/sjzsdu/dbproj/lang"
	"github.com/sjzsdu/dbproj/share"
	"github.com/spf13/cobra"
)

// MigrateCmd 将传统SSDT项目升级为支持NetCore构建的双向项目
var MigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: lang.T("Update the project for round-trip builds"),
	Long: lang.T("Update the project for round-trip builds") + `

迁移前会在项目文件旁生成 ` + share.BACKUP_SUFFIX + ` 备份。
迁移只应执行一次，重复执行会产生重复的包引用。`,
	Run: func(cmd *cobra.Command, args []string) {
		proj := requireProject()
		if err := proj.UpdateForRoundTrip(); err != nil {
			fatal(err)
		}
		fmt.Printf("已完成迁移，备份文件: %s%s\n", proj.ProjectFilePath, share.BACKUP_SUFFIX)
	},
}
