package project

import (
	"fmt"

	"github.com/sjzsdu/dbproj/lang"
	"github.com/sjzsdu/dbproj/project"
	"github.com/spf13/cobra"
)

var (
	referenceLocation string
	referenceName     string
)

// ReferenceCmd 添加数据库引用
var ReferenceCmd = &cobra.Command{
	Use:   "reference [uri]",
	Short: lang.T("Add a database reference"),
	Long: lang.T("Add a database reference") + `

示例：
  dbproj project reference master                        # 添加master系统引用
  dbproj project reference ../Other/Other.dacpac         # 同库引用
  dbproj project reference Other.dacpac -l different -n OtherDb`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		proj := requireProject()

		// master 是固定的系统引用，路径由目标平台决定
		if args[0] == project.MasterDatabaseName {
			entry, err := proj.AddMasterDatabaseReference()
			if err != nil {
				fatal(err)
			}
			fmt.Println(entry.FsURI)
			return
		}

		location := project.SameDatabase
		if referenceLocation == "different" {
			location = project.DifferentDatabaseSameServer
			if referenceName == "" {
				fatal(fmt.Errorf("引用其他数据库时必须通过 -n 指定数据库变量名"))
			}
		}

		entry, err := proj.AddDatabaseReference(location, args[0], referenceName)
		if err != nil {
			fatal(err)
		}
		fmt.Println(entry.FsURI)
	},
}

func init() {
	ReferenceCmd.Flags().StringVarP(&referenceLocation, "location", "l", "same", lang.T("Reference location"))
	ReferenceCmd.Flags().StringVarP(&referenceName, "name", "n", "", lang.T("Database variable name"))
}
