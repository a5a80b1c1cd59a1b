package project

import "errors"

var (
	// ErrMissingDefaultValue SqlCmdVariable元素缺少DefaultValue子元素
	ErrMissingDefaultValue = errors.New("sqlcmd variable missing default value")

	// ErrFileNotFound 期望存在的脚本文件在磁盘上不存在
	ErrFileNotFound = errors.New("script file not found")

	// ErrNotLoaded 在Load之前调用了需要文档的操作
	ErrNotLoaded = errors.New("project not loaded")
)
