package project

import (
	"fmt"

	"github.com/sjzsdu/dbproj/lang"
	"github.com/sjzsdu/dbproj/project"
	"github.com/spf13/cobra"
)

// InfoCmd 显示项目信息
var InfoCmd = &cobra.Command{
	Use:   "info",
	Short: lang.T("Show project information"),
	Run: func(cmd *cobra.Command, args []string) {
		proj := requireProject()

		fmt.Printf("%s: %s\n", lang.T("Project file path"), proj.ProjectFilePath)
		if target, err := proj.TargetPlatform(); err == nil {
			fmt.Printf("%s: %s\n", lang.T("Target platform"), target)
		}

		fmt.Printf("%s (%d):\n", lang.T("Files"), len(proj.Files))
		for _, entry := range proj.Files {
			kind := "file"
			if entry.Type == project.EntryFolder {
				kind = "folder"
			}
			fmt.Printf("  [%s] %s\n", kind, entry.RelativePath)
		}

		fmt.Printf("%s (%d):\n", lang.T("Imported targets"), len(proj.ImportedTargets))
		for _, target := range proj.ImportedTargets {
			fmt.Printf("  %s\n", target)
		}

		fmt.Printf("%s (%d):\n", lang.T("SQLCMD variables"), len(proj.SqlCmdVariables))
		for name, value := range proj.SqlCmdVariables {
			fmt.Printf("  %s=%s\n", name, value)
		}

		if len(proj.DatabaseReferences) > 0 {
			fmt.Printf("%s (%d):\n", lang.T("Database references"), len(proj.DatabaseReferences))
			for _, ref := range proj.DatabaseReferences {
				fmt.Printf("  %s\n", ref.FsURI)
			}
		}
	},
}
