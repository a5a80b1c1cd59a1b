package helper

import (
	"fmt"
	"io"
	"os"
)

// FileExists 检查路径是否存在且为普通文件
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// DirExists 检查路径是否存在且为目录
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDir 创建目录及缺失的上级目录，目录已存在时不做任何事
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// CopyFile 按字节复制文件
func CopyFile(src string, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("打开源文件失败: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("创建目标文件失败: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("复制文件内容失败: %w", err)
	}
	return out.Sync()
}
