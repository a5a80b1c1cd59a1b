package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sjzsdu/dbproj/helper"
	"github.com/sjzsdu/dbproj/platform"
	"github.com/sjzsdu/dbproj/project"
	"github.com/sjzsdu/dbproj/share"
)

// resolveWorkDir 解析工作目录，指定了仓库地址时先克隆
func resolveWorkDir() (string, error) {
	if repoURL != "" {
		return helper.CloneProject(repoURL)
	}
	return filepath.Abs(workDir)
}

// findProjectFile 在目录下查找唯一的项目描述文件
func findProjectFile(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+share.PROJECT_EXT))
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("目录下没有%s文件: %s", share.PROJECT_EXT, dir)
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("目录下存在多个项目文件: %s", strings.Join(matches, ", "))
	}
	return matches[0], nil
}

// GetProject 根据命令行参数解析并加载项目实例
func GetProject() (*project.Project, error) {
	path := projectFile
	if path == "" {
		dir, err := resolveWorkDir()
		if err != nil {
			return nil, err
		}
		path, err = findProjectFile(dir)
		if err != nil {
			return nil, err
		}
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	proj := project.NewProject(absPath)
	if err := proj.Load(); err != nil {
		return nil, err
	}
	return proj, nil
}

// createNewProject 在工作目录下创建新项目
func createNewProject(name string, target platform.TargetPlatform) (*project.Project, error) {
	dir, err := resolveWorkDir()
	if err != nil {
		return nil, err
	}
	return project.CreateNewProject(dir, name, target)
}
