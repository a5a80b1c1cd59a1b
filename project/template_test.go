package project

import (
	"path/filepath"
	"testing"

	"github.com/sjzsdu/dbproj/platform"
	"github.com/stretchr/testify/assert"
)

func TestCreateNewProject(t *testing.T) {
	tempDir := t.TempDir()

	proj, err := CreateNewProject(tempDir, "NewDb", platform.Sql160)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(tempDir, "NewDb.sqlproj"), proj.ProjectFilePath)

	// 模板中的DSP与传统Import
	target, err := proj.TargetPlatform()
	assert.NoError(t, err)
	assert.Equal(t, platform.Sql160, target)
	assert.Len(t, proj.ImportedTargets, 2)

	// 新项目可以直接追加条目
	_, err = proj.AddScriptItem("Tables/T.sql", []byte("CREATE TABLE t (id INT);"))
	assert.NoError(t, err)

	// 目标文件已存在时失败
	_, err = CreateNewProject(tempDir, "NewDb", platform.Sql160)
	assert.Error(t, err)

	// 未知平台失败
	_, err = CreateNewProject(tempDir, "OtherDb", platform.TargetPlatform("999"))
	assert.ErrorIs(t, err, platform.ErrInvalidSchemaProvider)
}
