package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddDatabaseReferenceSameDatabase(t *testing.T) {
	proj := newTestProject(t)

	entry, err := proj.AddDatabaseReference(SameDatabase, "../Other/Other.dacpac", "")
	assert.NoError(t, err)
	assert.Equal(t, EntryDatabaseReference, entry.Type)
	assert.Len(t, proj.DatabaseReferences, 1)

	refs := proj.doc.FindAll(tagArtifactReference)
	assert.Len(t, refs, 1)

	include, _ := refs[0].Attr(attrInclude)
	assert.Equal(t, "../Other/Other.dacpac", include)

	// 始终携带抑制缺失依赖错误的子元素
	suppress := refs[0].FindAll(tagSuppressMissing)
	assert.Len(t, suppress, 1)
	assert.Equal(t, "False", suppress[0].Text())

	// 同库引用没有数据库名字面量子元素
	assert.Empty(t, refs[0].FindAll(tagDatabaseLiteral))
}

func TestAddDatabaseReferenceDifferentDatabase(t *testing.T) {
	proj := newTestProject(t)

	_, err := proj.AddDatabaseReference(DifferentDatabaseSameServer, "Other.dacpac", "master")
	assert.NoError(t, err)

	refs := proj.doc.FindAll(tagArtifactReference)
	assert.Len(t, refs, 1)

	// 跨库引用携带数据库名字面量
	literal := refs[0].FindAll(tagDatabaseLiteral)
	assert.Len(t, literal, 1)
	assert.Equal(t, "master", literal[0].Text())
}

func TestAddMasterDatabaseReference(t *testing.T) {
	proj := newTestProject(t)

	entry, err := proj.AddMasterDatabaseReference()
	assert.NoError(t, err)

	// 路径由当前DSP决定
	assert.Equal(t, "$(NETCoreTargetsPath)/SystemDacpacs/130/master.dacpac", entry.FsURI)
	assert.Equal(t, DifferentDatabaseSameServer, entry.Location)
	assert.Equal(t, "master", entry.DatabaseName)

	// 落盘后引用元素存在
	reloaded := reloadProject(t, proj)
	refs := reloaded.doc.FindAll(tagArtifactReference)
	assert.Len(t, refs, 1)
}

func TestAddMasterDatabaseReferenceNoDSP(t *testing.T) {
	content := `<?xml version="1.0" encoding="utf-8"?>
<Project>
  <ItemGroup>
    <Build Include="a.sql" />
  </ItemGroup>
</Project>
`
	proj := newTestProjectWithContent(t, content)

	_, err := proj.AddMasterDatabaseReference()
	assert.Error(t, err)
	assert.Empty(t, proj.DatabaseReferences)
}

func TestAddSqlCmdVariable(t *testing.T) {
	proj := newTestProject(t)

	assert.NoError(t, proj.AddSqlCmdVariable("Region", "east"))
	assert.Equal(t, "east", proj.SqlCmdVariables["Region"])

	// 重名变量报错
	assert.Error(t, proj.AddSqlCmdVariable("Region", "west"))

	// 落盘后可以重新加载
	reloaded := reloadProject(t, proj)
	assert.Equal(t, map[string]string{"Env": "dev", "Region": "east"}, reloaded.SqlCmdVariables)
}
