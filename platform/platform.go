// Package platform 解析项目的数据库架构提供者（DSP）字符串，
// 并负责解析系统数据库dacpac的规范路径。
package platform

import (
	"errors"
	"fmt"
	"strings"
)

// TargetPlatform 目标平台的版本标识
type TargetPlatform string

// 已知的目标平台集合
const (
	Sql90       TargetPlatform = "90"
	Sql100      TargetPlatform = "100"
	Sql110      TargetPlatform = "110"
	Sql120      TargetPlatform = "120"
	Sql130      TargetPlatform = "130"
	Sql140      TargetPlatform = "140"
	Sql150      TargetPlatform = "150"
	Sql160      TargetPlatform = "160"
	SqlAzureV12 TargetPlatform = "AzureV12"
)

const (
	dspPrefix = "Microsoft.Data.Tools.Schema.Sql.Sql"
	dspSuffix = "DatabaseSchemaProvider"

	// 系统dacpac所在的构建变量占位路径
	systemDacpacRoot    = "$(NETCoreTargetsPath)"
	systemDacpacSegment = "SystemDacpacs"
)

// ErrInvalidSchemaProvider 表示DSP字符串缺失、格式错误或版本未知
var ErrInvalidSchemaProvider = errors.New("invalid database schema provider")

var knownPlatforms = map[TargetPlatform]struct{}{
	Sql90:       {},
	Sql100:      {},
	Sql110:      {},
	Sql120:      {},
	Sql130:      {},
	Sql140:      {},
	Sql150:      {},
	Sql160:      {},
	SqlAzureV12: {},
}

// ParseDSP 将DSP字符串解析为已知的目标平台
// 不做部分匹配，前后缀必须完全一致且版本必须在已知集合内
func ParseDSP(dsp string) (TargetPlatform, error) {
	if !strings.HasPrefix(dsp, dspPrefix) || !strings.HasSuffix(dsp, dspSuffix) {
		return "", fmt.Errorf("%w: %q", ErrInvalidSchemaProvider, dsp)
	}

	version := strings.TrimSuffix(strings.TrimPrefix(dsp, dspPrefix), dspSuffix)
	p := TargetPlatform(version)
	if _, ok := knownPlatforms[p]; !ok {
		return "", fmt.Errorf("%w: unknown version %q", ErrInvalidSchemaProvider, version)
	}

	return p, nil
}

// DSP 返回平台对应的DSP字符串
func (p TargetPlatform) DSP() string {
	return dspPrefix + string(p) + dspSuffix
}

// IsKnown 检查平台是否在已知集合内
func (p TargetPlatform) IsKnown() bool {
	_, ok := knownPlatforms[p]
	return ok
}

// SystemDacpacPath 返回指定系统引用在该平台下的规范路径
// 形如 $(NETCoreTargetsPath)/SystemDacpacs/130/master.dacpac
func SystemDacpacPath(p TargetPlatform, referenceName string) string {
	return strings.Join([]string{
		systemDacpacRoot,
		systemDacpacSegment,
		string(p),
		referenceName + ".dacpac",
	}, "/")
}
