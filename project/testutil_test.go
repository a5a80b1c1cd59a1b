package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// testProjectContent 测试用的项目描述文件
const testProjectContent = `<?xml version="1.0" encoding="utf-8"?>
<Project DefaultTargets="Build" ToolsVersion="4.0" xmlns="http://schemas.microsoft.com/developer/msbuild/2003">
  <PropertyGroup>
    <Name>TestDb</Name>
    <DSP>Microsoft.Data.Tools.Schema.Sql.Sql130DatabaseSchemaProvider</DSP>
  </PropertyGroup>
  <ItemGroup>
    <Build Include="Tables/Users.sql" />
    <Build Include="Tables/Orders.sql" />
  </ItemGroup>
  <ItemGroup>
    <Folder Include="Tables" />
  </ItemGroup>
  <ItemGroup>
    <SqlCmdVariable Include="Env">
      <DefaultValue>dev</DefaultValue>
    </SqlCmdVariable>
  </ItemGroup>
  <Import Condition="'$(SQLDBExtensionsRefPath)' != ''" Project="$(SQLDBExtensionsRefPath)\SSDT\Microsoft.Data.Tools.Schema.SqlTasks.targets" />
  <Import Condition="'$(SQLDBExtensionsRefPath)' == ''" Project="$(MSBuildExtensionsPath)\Microsoft\VisualStudio\v$(VisualStudioVersion)\SSDT\Microsoft.Data.Tools.Schema.SqlTasks.targets" />
</Project>
`

// newTestProject 在临时目录中写入测试项目并加载
func newTestProject(t *testing.T) *Project {
	t.Helper()
	return newTestProjectWithContent(t, testProjectContent)
}

func newTestProjectWithContent(t *testing.T, content string) *Project {
	t.Helper()

	tempDir := t.TempDir()
	projectFilePath := filepath.Join(tempDir, "TestDb.sqlproj")
	err := os.WriteFile(projectFilePath, []byte(content), 0644)
	assert.NoError(t, err)

	proj := NewProject(projectFilePath)
	err = proj.Load()
	assert.NoError(t, err)
	return proj
}

// reloadProject 重新从磁盘加载项目，用于验证落盘后的状态
func reloadProject(t *testing.T, proj *Project) *Project {
	t.Helper()

	reloaded := NewProject(proj.ProjectFilePath)
	err := reloaded.Load()
	assert.NoError(t, err)
	return reloaded
}
