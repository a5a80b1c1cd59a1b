package share

// VERSION 版本号
const VERSION = "0.3.0"

// BUILDNAME 制品名称
const BUILDNAME = "dbproj"

const PREFIX = "DBPROJ_"

const PATH = ".dbproj"

// PROJECT_EXT 项目描述文件扩展名
const PROJECT_EXT = ".sqlproj"

// SCRIPT_EXT SQL 脚本文件扩展名
const SCRIPT_EXT = ".sql"

// BACKUP_SUFFIX 迁移前备份文件的后缀
const BACKUP_SUFFIX = "_backup"
