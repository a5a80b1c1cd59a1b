package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sjzsdu/dbproj/platform"
	"github.com/sjzsdu/dbproj/xmldoc"
)

// NewProject 用项目文件路径创建项目实例，不做任何IO
func NewProject(projectFilePath string) *Project {
	fileName := filepath.Base(projectFilePath)
	fileName = strings.TrimSuffix(fileName, filepath.Ext(fileName))

	return &Project{
		ProjectFilePath:   projectFilePath,
		ProjectFileName:   fileName,
		ProjectFolderPath: filepath.Dir(projectFilePath),
		SqlCmdVariables:   make(map[string]string),
	}
}

// Load 读取并解析项目文件，填充文件、导入目标和变量集合
// 只做追加，每个项目实例只应调用一次
func (p *Project) Load() error {
	data, err := os.ReadFile(p.ProjectFilePath)
	if err != nil {
		return fmt.Errorf("读取项目文件失败: %w", err)
	}

	doc, err := xmldoc.Parse(data)
	if err != nil {
		return err
	}
	p.doc = doc

	// 扫描每个ItemGroup下的构建项和文件夹项
	for _, group := range doc.FindAll(tagItemGroup) {
		for _, build := range group.FindAll(tagBuild) {
			if include, ok := build.Attr(attrInclude); ok {
				p.Files = append(p.Files, p.newFsEntry(include, EntryFile))
			}
		}
		for _, folder := range group.FindAll(tagFolder) {
			if include, ok := folder.Attr(attrInclude); ok {
				p.Files = append(p.Files, p.newFsEntry(include, EntryFolder))
			}
		}
	}

	// 顶层的Import元素
	for _, imp := range doc.FindAll(tagImport) {
		if target, ok := imp.Attr(attrProject); ok {
			p.ImportedTargets = append(p.ImportedTargets, target)
		}
	}

	// SQLCMD变量声明
	for _, v := range doc.FindAll(tagSqlCmdVariable) {
		name, ok := v.Attr(attrInclude)
		if !ok {
			continue
		}
		defaults := v.FindAll(tagDefaultValue)
		if len(defaults) == 0 {
			return fmt.Errorf("%w: %s", ErrMissingDefaultValue, name)
		}
		p.SqlCmdVariables[name] = defaults[0].Text()
	}

	return nil
}

// newFsEntry 用相对路径构造File/Folder条目
func (p *Project) newFsEntry(relativePath string, entryType EntryType) Entry {
	relativePath = strings.Trim(strings.ReplaceAll(relativePath, "\\", "/"), "/")
	return Entry{
		FsURI:        filepath.Join(p.ProjectFolderPath, filepath.FromSlash(relativePath)),
		RelativePath: relativePath,
		Type:         entryType,
	}
}

// TargetPlatform 从DSP元素按需解析当前目标平台
// DSP元素缺失、重复或值不可解析时返回ErrInvalidSchemaProvider
func (p *Project) TargetPlatform() (platform.TargetPlatform, error) {
	if p.doc == nil {
		return "", ErrNotLoaded
	}

	elements := p.doc.FindAll(tagDSP)
	if len(elements) != 1 {
		return "", fmt.Errorf("%w: found %d DSP elements", platform.ErrInvalidSchemaProvider, len(elements))
	}

	dsp := strings.TrimSpace(elements[0].Text())
	if dsp == "" {
		return "", fmt.Errorf("%w: empty DSP element", platform.ErrInvalidSchemaProvider)
	}

	return platform.ParseDSP(dsp)
}

// ChangeDSP 直接改写DSP元素的文本内容，不校验版本是否在已知集合内
// 主要供测试与初始化场景使用
func (p *Project) ChangeDSP(version string) error {
	if p.doc == nil {
		return ErrNotLoaded
	}

	elements := p.doc.FindAll(tagDSP)
	if len(elements) != 1 {
		return fmt.Errorf("%w: found %d DSP elements", platform.ErrInvalidSchemaProvider, len(elements))
	}

	elements[0].SetText(platform.TargetPlatform(version).DSP())
	return p.save()
}

// findOrCreateItemGroup 按文档顺序返回第一个已包含目标类型子元素的
// ItemGroup，都不满足时在文档末尾追加一个新的空ItemGroup
func (p *Project) findOrCreateItemGroup(childTag string) *xmldoc.Element {
	for _, group := range p.doc.FindAll(tagItemGroup) {
		if len(group.FindAll(childTag)) > 0 {
			return group
		}
	}

	group := p.doc.CreateElement(tagItemGroup)
	p.doc.Root().AppendChild(group)
	return group
}

// save 将文档整体序列化并覆盖写回项目文件
func (p *Project) save() error {
	data, err := p.doc.Serialize()
	if err != nil {
		return err
	}
	if err := os.WriteFile(p.ProjectFilePath, data, 0644); err != nil {
		return fmt.Errorf("写入项目文件失败: %w", err)
	}
	return nil
}
