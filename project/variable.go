package project

import (
	"fmt"
)

// AddSqlCmdVariable 添加SQLCMD变量声明
// 变量名在项目内唯一，重复添加视为错误
func (p *Project) AddSqlCmdVariable(name string, defaultValue string) error {
	if p.doc == nil {
		return ErrNotLoaded
	}

	if _, exists := p.SqlCmdVariables[name]; exists {
		return fmt.Errorf("变量已存在: %s", name)
	}

	p.SqlCmdVariables[name] = defaultValue

	variable := p.doc.CreateElement(tagSqlCmdVariable)
	variable.SetAttr(attrInclude, name)

	value := p.doc.CreateElement(tagDefaultValue)
	value.SetText(defaultValue)
	variable.AppendChild(value)

	p.findOrCreateItemGroup(tagSqlCmdVariable).AppendChild(variable)

	return p.save()
}
