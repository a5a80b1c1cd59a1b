package project

import (
	"github.com/sjzsdu/dbproj/platform"
)

// MasterDatabaseName master系统数据库的引用名
const MasterDatabaseName = "master"

// AddDatabaseReference 添加数据库引用
// 引用元素始终携带SuppressMissingDependenciesErrors=False子元素；
// location为DifferentDatabaseSameServer时额外携带数据库名字面量子元素
func (p *Project) AddDatabaseReference(location ReferenceLocation, uri string, name string) (*Entry, error) {
	if p.doc == nil {
		return nil, ErrNotLoaded
	}

	entry := Entry{
		FsURI:        uri,
		Type:         EntryDatabaseReference,
		Location:     location,
		DatabaseName: name,
	}
	p.DatabaseReferences = append(p.DatabaseReferences, entry)

	ref := p.doc.CreateElement(tagArtifactReference)
	ref.SetAttr(attrInclude, uri)

	suppress := p.doc.CreateElement(tagSuppressMissing)
	suppress.SetText("False")
	ref.AppendChild(suppress)

	if location == DifferentDatabaseSameServer {
		literal := p.doc.CreateElement(tagDatabaseLiteral)
		literal.SetText(name)
		ref.AppendChild(literal)
	}

	p.findOrCreateItemGroup(tagArtifactReference).AppendChild(ref)

	if err := p.save(); err != nil {
		return nil, err
	}
	return &entry, nil
}

// AddMasterDatabaseReference 添加对master系统数据库的引用
// 目标平台从当前DSP元素解析，引用路径指向对应版本的系统dacpac
func (p *Project) AddMasterDatabaseReference() (*Entry, error) {
	target, err := p.TargetPlatform()
	if err != nil {
		return nil, err
	}

	uri := platform.SystemDacpacPath(target, MasterDatabaseName)
	return p.AddDatabaseReference(DifferentDatabaseSameServer, uri, MasterDatabaseName)
}
