package share

var debugMode bool

// SetDebug 设置全局调试模式
func SetDebug(debug bool) {
	debugMode = debug
}

// GetDebug 返回当前调试模式
func GetDebug() bool {
	return debugMode
}
