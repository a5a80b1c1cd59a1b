package project

import (
	"fmt"

	"github.com/sjzsdu/dbproj/helper"
	"github.com/sjzsdu/dbproj/share"
)

// 双向构建迁移涉及的条件与路径常量
const (
	sqldbPresentCondition = "'$(SQLDBExtensionsRefPath)' != ''"
	sqldbAbsentCondition  = "'$(SQLDBExtensionsRefPath)' == ''"

	ssdtTargets    = `$(SQLDBExtensionsRefPath)\SSDT\Microsoft.Data.Tools.Schema.SqlTasks.targets`
	msbuildTargets = `$(MSBuildExtensionsPath)\Microsoft\VisualStudio\v$(VisualStudioVersion)\SSDT\Microsoft.Data.Tools.Schema.SqlTasks.targets`

	roundTripPresentCondition = "'$(NetCoreBuild)' != 'true' AND '$(SQLDBExtensionsRefPath)' != ''"
	roundTripAbsentCondition  = "'$(NetCoreBuild)' != 'true' AND '$(SQLDBExtensionsRefPath)' == ''"

	netCoreCondition = "'$(NetCoreBuild)' == 'true'"
	netCoreTargets   = `$(NETCoreTargetsPath)\Microsoft.Data.Tools.Schema.SqlTasks.targets`

	netFrameworkAssembly = "Microsoft.NETFramework.ReferenceAssemblies"
	netFrameworkVersion  = "1.0.0"
	privateAssetsAll     = "All"
)

// UpdateForRoundTrip 将传统SSDT项目升级为同时支持NetCore构建的双向项目
// 三步顺序执行：备份、改写Import、注入PackageReference，每步单独落盘，
// 后续步骤失败不回滚，唯一的安全网是第一步的备份文件
// 重复执行会再次追加PackageReference，调用方需自行避免
func (p *Project) UpdateForRoundTrip() error {
	if p.doc == nil {
		return ErrNotLoaded
	}

	// 备份失败必须中止，原文件绝不能在没有备份的情况下被改写
	backupPath := p.ProjectFilePath + share.BACKUP_SUFFIX
	if err := helper.CopyFile(p.ProjectFilePath, backupPath); err != nil {
		return fmt.Errorf("备份项目文件失败: %w", err)
	}

	if err := p.updateImportsForRoundTrip(); err != nil {
		return err
	}

	return p.addNetCorePackageReference()
}

// updateImportsForRoundTrip 改写传统条件的Import并追加NetCore的Import
func (p *Project) updateImportsForRoundTrip() error {
	for _, imp := range p.doc.FindAll(tagImport) {
		condition, _ := imp.Attr(attrCondition)
		target, _ := imp.Attr(attrProject)

		var newCondition string
		switch {
		case condition == sqldbPresentCondition && target == ssdtTargets:
			newCondition = roundTripPresentCondition
		case condition == sqldbAbsentCondition && target == msbuildTargets:
			newCondition = roundTripAbsentCondition
		default:
			// 不匹配任何传统模式的Import保持原样
			continue
		}

		replacement := p.doc.CreateElement(tagImport)
		replacement.SetAttr(attrCondition, newCondition)
		replacement.SetAttr(attrProject, target)
		imp.Parent().ReplaceChild(imp, replacement)
	}

	netCore := p.doc.CreateElement(tagImport)
	netCore.SetAttr(attrCondition, netCoreCondition)
	netCore.SetAttr(attrProject, netCoreTargets)
	p.doc.Root().AppendChild(netCore)
	p.ImportedTargets = append(p.ImportedTargets, netCoreTargets)

	return p.save()
}

// addNetCorePackageReference 注入NetCore兼容程序集的包引用
// 资产标记为私有，不会传播给依赖方
func (p *Project) addNetCorePackageReference() error {
	ref := p.doc.CreateElement(tagPackageReference)
	ref.SetAttr(attrCondition, netCoreCondition)
	ref.SetAttr(attrInclude, netFrameworkAssembly)
	ref.SetAttr(attrVersion, netFrameworkVersion)
	ref.SetAttr(attrPrivateAssets, privateAssetsAll)

	p.findOrCreateItemGroup(tagPackageReference).AppendChild(ref)

	return p.save()
}
