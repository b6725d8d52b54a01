package core

// User-facing texts.
const (
	msgInitializing = "正在初始化..."
	msgChecking     = "检查目标文件是否存在..."
	msgLaunching    = "正在启动目标程序..."
	msgLaunched     = "启动成功！"

	msgTargetMissing = "目标程序不存在:\n%s"
	msgLaunchFailed  = "无法启动程序: %s\n错误代码: %d"
	msgUnexpected    = "发生异常: %v"
)

// InitialMessage is the status text shown before the first update arrives.
const InitialMessage = msgInitializing
