package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sjzsdu/dbproj/helper"
	"github.com/sjzsdu/dbproj/platform"
	"github.com/sjzsdu/dbproj/share"
)

// newProjectTemplate 新项目的基准描述文件
const newProjectTemplate = `<?xml version="1.0" encoding="utf-8"?>
<Project DefaultTargets="Build" ToolsVersion="4.0" xmlns="http://schemas.microsoft.com/developer/msbuild/2003">
  <PropertyGroup>
    <Name>%s</Name>
    <ProjectGuid>{%s}</ProjectGuid>
    <DSP>%s</DSP>
    <OutputType>Database</OutputType>
    <ModelCollation>1033, CI</ModelCollation>
  </PropertyGroup>
  <PropertyGroup Condition="'$(Configuration)' == 'Release'">
    <OutputPath>bin\Release\</OutputPath>
  </PropertyGroup>
  <PropertyGroup Condition="'$(Configuration)' == 'Debug'">
    <OutputPath>bin\Debug\</OutputPath>
  </PropertyGroup>
  <PropertyGroup>
    <VisualStudioVersion Condition="'$(VisualStudioVersion)' == ''">11.0</VisualStudioVersion>
    <SSDTExists Condition="Exists('$(MSBuildExtensionsPath)\Microsoft\VisualStudio\v$(VisualStudioVersion)\SSDT\Microsoft.Data.Tools.Schema.SqlTasks.targets')">True</SSDTExists>
    <VisualStudioVersion Condition="'$(SSDTExists)' == ''">11.0</VisualStudioVersion>
  </PropertyGroup>
  <Import Condition="'$(SQLDBExtensionsRefPath)' != ''" Project="$(SQLDBExtensionsRefPath)\SSDT\Microsoft.Data.Tools.Schema.SqlTasks.targets" />
  <Import Condition="'$(SQLDBExtensionsRefPath)' == ''" Project="$(MSBuildExtensionsPath)\Microsoft\VisualStudio\v$(VisualStudioVersion)\SSDT\Microsoft.Data.Tools.Schema.SqlTasks.targets" />
</Project>
`

// CreateNewProject 在指定目录下按基准模板创建新项目并返回已加载的实例
// 目标文件已存在时返回错误
func CreateNewProject(dir string, name string, target platform.TargetPlatform) (*Project, error) {
	if !target.IsKnown() {
		return nil, fmt.Errorf("%w: %q", platform.ErrInvalidSchemaProvider, target)
	}

	if err := helper.EnsureDir(dir); err != nil {
		return nil, err
	}

	projectFilePath := filepath.Join(dir, name+share.PROJECT_EXT)
	if helper.FileExists(projectFilePath) {
		return nil, fmt.Errorf("项目文件已存在: %s", projectFilePath)
	}

	content := fmt.Sprintf(newProjectTemplate, name, uuid.New().String(), target.DSP())
	if err := os.WriteFile(projectFilePath, []byte(content), 0644); err != nil {
		return nil, fmt.Errorf("写入项目文件失败: %w", err)
	}

	p := NewProject(projectFilePath)
	if err := p.Load(); err != nil {
		return nil, err
	}
	return p, nil
}
