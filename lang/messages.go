package lang

// zhCN 简体中文翻译表，键为英文原文
var zhCN = map[string]string{
	"Dbproj command line tool":                      "Dbproj 命令行工具",
	"A command line tool for SQL database projects": "SQL 数据库项目的命令行管理工具",
	"Print version information":                     "打印版本信息",
	"Print detailed version information of dbproj":  "打印 dbproj 的详细版本信息",
	"dbproj version":                                "dbproj 版本",
	"Work directory path":                           "工作目录路径",
	"Project file path":                             "项目文件路径",
	"Git repository URL to clone and open":          "要克隆并打开的 Git 仓库地址",
	"Debug mode":                                    "调试模式",
	"Invalid arguments":                             "无效的参数",
	"Manage dbproj configuration":                   "管理 dbproj 配置",
	"Create a new SQL database project":             "创建新的 SQL 数据库项目",
	"Target platform version":                       "目标平台版本",
	"Manage a SQL database project":                 "管理 SQL 数据库项目",
	"Show project information":                      "显示项目信息",
	"Add a SQL script to the project":               "向项目添加 SQL 脚本",
	"Script content to write":                       "要写入的脚本内容",
	"Add a folder to the project":                   "向项目添加文件夹",
	"Add files and folders to the project":          "向项目批量添加文件和文件夹",
	"Add a database reference":                      "添加数据库引用",
	"Add a system reference to master":              "添加对 master 的系统引用",
	"Reference location":                            "引用位置",
	"Database variable name":                        "数据库变量名",
	"Add a SQLCMD variable":                         "添加 SQLCMD 变量",
	"Change the target platform of the project":     "修改项目的目标平台",
	"Update the project for round-trip builds":      "升级项目以支持双向构建",
	"Files":                                         "文件",
	"Imported targets":                              "导入的构建目标",
	"SQLCMD variables":                              "SQLCMD 变量",
	"Database references":                           "数据库引用",
	"Target platform":                               "目标平台",
}
