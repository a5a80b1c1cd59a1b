package project

import (
	"fmt"
	"os"

	"github.com/sjzsdu/dbproj/project"
)

// sharedProject 由父命令解析后注入的项目实例
var sharedProject *project.Project

// SetSharedProject 设置共享的项目实例
func SetSharedProject(p *project.Project) {
	sharedProject = p
}

// requireProject 获取共享项目实例，未注入时直接退出
func requireProject() *project.Project {
	if sharedProject == nil {
		fmt.Fprintln(os.Stderr, "项目实例未初始化")
		os.Exit(1)
	}
	return sharedProject
}

// fatal 打印错误并退出
func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
