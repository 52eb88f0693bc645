// 家具分销管理系统服务入口
// 负责初始化应用程序并启动HTTP服务器
package main

import (
	"furniture_distribution/config"
)

func main() {
	// 初始化应用程序（日志、数据库、基础数据、分销树管理器）
	config.InitApp()

	// 创建并配置Fiber应用
	app := config.SetupApp()

	// 启动服务器并等待终止信号
	config.StartServer(app)
}
