package helper

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sjzsdu/dbproj/share"
)

// StandardizePath 标准化路径
func StandardizePath(path string) string {
	// 处理 Windows 路径分隔符
	cleanPath := strings.ReplaceAll(path, "\\", "/")

	// 处理多余的 /
	// 使用更安全的方式替换连续的 /，避免可能的死循环
	prevPath := ""
	for prevPath != cleanPath {
		prevPath = cleanPath
		cleanPath = strings.ReplaceAll(cleanPath, "//", "/")
	}

	return cleanPath
}

// RelativeToRoot 计算path相对于root的路径，统一使用正斜杠并去除首尾分隔符
// path不在root之下或与root相同时返回空字符串
func RelativeToRoot(root string, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return ""
	}

	rel = StandardizePath(rel)
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return ""
	}

	return strings.Trim(rel, "/")
}

// GetPath 返回用户目录下工具配置路径中的指定文件
func GetPath(name string) string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	if name == "" {
		return filepath.Join(homeDir, share.PATH)
	}
	return filepath.Join(homeDir, share.PATH, name)
}
