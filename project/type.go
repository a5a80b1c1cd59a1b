package project

import (
	"github.com/sjzsdu/dbproj/xmldoc"
)

// EntryType 项目条目的类型
type EntryType int

const (
	EntryFile EntryType = iota
	EntryFolder
	EntryDatabaseReference
)

// ReferenceLocation 数据库引用的位置
type ReferenceLocation int

const (
	// SameDatabase 引用同一数据库
	SameDatabase ReferenceLocation = iota
	// DifferentDatabaseSameServer 引用同一服务器上的其他数据库，需要命名的服务器级变量
	DifferentDatabaseSameServer
)

// Entry 项目跟踪的单个条目
// File/Folder类型的RelativePath始终相对项目目录，使用正斜杠且非空；
// DatabaseReference类型不使用RelativePath，DatabaseName在
// DifferentDatabaseSameServer位置下必填
type Entry struct {
	FsURI        string
	RelativePath string
	Type         EntryType
	Location     ReferenceLocation
	DatabaseName string
}

// Project 数据库项目的聚合根
// 独占持有解析后的描述文档，所有修改操作先同步内存集合与文档树，
// 再整体写回磁盘
type Project struct {
	ProjectFilePath   string
	ProjectFileName   string
	ProjectFolderPath string

	Files              []Entry
	DatabaseReferences []Entry
	ImportedTargets    []string
	SqlCmdVariables    map[string]string

	doc *xmldoc.Document
}

// 项目描述文件的元素与属性词汇
const (
	tagItemGroup         = "ItemGroup"
	tagBuild             = "Build"
	tagFolder            = "Folder"
	tagImport            = "Import"
	tagSqlCmdVariable    = "SqlCmdVariable"
	tagDefaultValue      = "DefaultValue"
	tagDSP               = "DSP"
	tagArtifactReference = "ArtifactReference"
	tagSuppressMissing   = "SuppressMissingDependenciesErrors"
	tagDatabaseLiteral   = "DatabaseVariableLiteralValue"
	tagPackageReference  = "PackageReference"

	attrInclude       = "Include"
	attrCondition     = "Condition"
	attrProject       = "Project"
	attrVersion       = "Version"
	attrPrivateAssets = "PrivateAssets"
)
