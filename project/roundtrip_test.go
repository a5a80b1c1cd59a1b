package project

import (
	"os"
	"testing"

	"github.com/sjzsdu/dbproj/share"
	"github.com/stretchr/testify/assert"
)

func TestUpdateForRoundTrip(t *testing.T) {
	proj := newTestProject(t)
	original, err := os.ReadFile(proj.ProjectFilePath)
	assert.NoError(t, err)

	assert.NoError(t, proj.UpdateForRoundTrip())

	// 备份文件内容与迁移前完全一致
	backup, err := os.ReadFile(proj.ProjectFilePath + share.BACKUP_SUFFIX)
	assert.NoError(t, err)
	assert.Equal(t, original, backup)

	// 新增的NetCore目标记入导入集合
	assert.Contains(t, proj.ImportedTargets, netCoreTargets)

	// 落盘结果：两个原有Import被原位改写，追加一个NetCore Import
	reloaded := reloadProject(t, proj)
	imports := reloaded.doc.FindAll(tagImport)
	assert.Len(t, imports, 3)

	condition, _ := imports[0].Attr(attrCondition)
	target, _ := imports[0].Attr(attrProject)
	assert.Equal(t, roundTripPresentCondition, condition)
	assert.Equal(t, ssdtTargets, target)

	condition, _ = imports[1].Attr(attrCondition)
	target, _ = imports[1].Attr(attrProject)
	assert.Equal(t, roundTripAbsentCondition, condition)
	assert.Equal(t, msbuildTargets, target)

	condition, _ = imports[2].Attr(attrCondition)
	target, _ = imports[2].Attr(attrProject)
	assert.Equal(t, netCoreCondition, condition)
	assert.Equal(t, netCoreTargets, target)

	// 恰好注入一个包引用
	refs := reloaded.doc.FindAll(tagPackageReference)
	assert.Len(t, refs, 1)

	include, _ := refs[0].Attr(attrInclude)
	version, _ := refs[0].Attr(attrVersion)
	private, _ := refs[0].Attr(attrPrivateAssets)
	condition, _ = refs[0].Attr(attrCondition)
	assert.Equal(t, netFrameworkAssembly, include)
	assert.Equal(t, netFrameworkVersion, version)
	assert.Equal(t, privateAssetsAll, private)
	assert.Equal(t, netCoreCondition, condition)
}

func TestUpdateForRoundTripLeavesUnknownImports(t *testing.T) {
	content := `<?xml version="1.0" encoding="utf-8"?>
<Project>
  <PropertyGroup>
    <DSP>Microsoft.Data.Tools.Schema.Sql.Sql130DatabaseSchemaProvider</DSP>
  </PropertyGroup>
  <Import Condition="'$(Custom)' == 'true'" Project="custom.targets" />
</Project>
`
	proj := newTestProjectWithContent(t, content)
	assert.NoError(t, proj.UpdateForRoundTrip())

	// 不匹配传统模式的Import保持原样
	reloaded := reloadProject(t, proj)
	imports := reloaded.doc.FindAll(tagImport)
	assert.Len(t, imports, 2)

	condition, _ := imports[0].Attr(attrCondition)
	target, _ := imports[0].Attr(attrProject)
	assert.Equal(t, "'$(Custom)' == 'true'", condition)
	assert.Equal(t, "custom.targets", target)
}

func TestUpdateForRoundTripTwice(t *testing.T) {
	proj := newTestProject(t)

	assert.NoError(t, proj.UpdateForRoundTrip())
	assert.NoError(t, proj.UpdateForRoundTrip())

	reloaded := reloadProject(t, proj)

	// 已改写的Import条件不再匹配传统模式，第二次执行只会再追加
	// 一个NetCore Import和一个包引用；包引用重复是已知的设计取舍
	imports := reloaded.doc.FindAll(tagImport)
	assert.Len(t, imports, 4)
	refs := reloaded.doc.FindAll(tagPackageReference)
	assert.Len(t, refs, 2)
}
