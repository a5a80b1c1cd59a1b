package project

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sjzsdu/dbproj/helper"
	"github.com/sjzsdu/dbproj/share"
)

// AddFolderItem 向项目添加文件夹条目
// 磁盘上的目录不存在时会连同缺失的上级目录一并创建
func (p *Project) AddFolderItem(relativePath string) (*Entry, error) {
	if p.doc == nil {
		return nil, ErrNotLoaded
	}

	entry := p.newFsEntry(relativePath, EntryFolder)
	if err := helper.EnsureDir(entry.FsURI); err != nil {
		return nil, err
	}

	p.Files = append(p.Files, entry)

	folder := p.doc.CreateElement(tagFolder)
	folder.SetAttr(attrInclude, entry.RelativePath)
	p.findOrCreateItemGroup(tagFolder).AppendChild(folder)

	if err := p.save(); err != nil {
		return nil, err
	}
	return &entry, nil
}

// AddScriptItem 向项目添加SQL脚本条目
// contents非nil时先创建缺失的父目录并写入（覆盖）目标文件；
// 随后校验文件确实存在，不存在时返回ErrFileNotFound且不修改项目
func (p *Project) AddScriptItem(relativePath string, contents []byte) (*Entry, error) {
	if p.doc == nil {
		return nil, ErrNotLoaded
	}

	entry := p.newFsEntry(relativePath, EntryFile)

	if contents != nil {
		if err := helper.EnsureDir(filepath.Dir(entry.FsURI)); err != nil {
			return nil, err
		}
		if err := os.WriteFile(entry.FsURI, contents, 0644); err != nil {
			return nil, err
		}
	}

	// 未提供内容时文件必须已经存在
	if !helper.FileExists(entry.FsURI) {
		return nil, ErrFileNotFound
	}

	p.Files = append(p.Files, entry)

	build := p.doc.CreateElement(tagBuild)
	build.SetAttr(attrInclude, entry.RelativePath)
	p.findOrCreateItemGroup(tagBuild).AppendChild(build)

	if err := p.save(); err != nil {
		return nil, err
	}
	return &entry, nil
}

// AddToProject 批量添加路径
// 相对项目根目录为空的路径跳过；.sql文件走AddScriptItem，目录走
// AddFolderItem，其余类型静默忽略
func (p *Project) AddToProject(paths []string) error {
	for _, path := range paths {
		relativePath := helper.RelativeToRoot(p.ProjectFolderPath, path)
		if relativePath == "" {
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		switch {
		case info.Mode().IsRegular() && strings.HasSuffix(info.Name(), share.SCRIPT_EXT):
			if _, err := p.AddScriptItem(relativePath, nil); err != nil {
				return err
			}
		case info.IsDir():
			if _, err := p.AddFolderItem(relativePath); err != nil {
				return err
			}
		}
	}
	return nil
}
