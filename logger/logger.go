// Package logger 提供应用程序日志初始化功能
// 基于logrus输出结构化日志，按环境变量控制级别和输出位置，
// 文件输出通过lumberjack自动轮转
package logger

import (
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Init 初始化全局日志
// 环境变量：
//   - LOG_LEVEL: trace/debug/info/warn/error，默认info
//   - LOG_FORMAT: json/text，默认text
//   - LOG_OUTPUT: stdout/file/both，默认stdout
//   - LOG_PATH: 日志目录，默认./logs
func Init() {
	// 日志级别
	level, err := log.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	// 日志格式
	if os.Getenv("LOG_FORMAT") == "json" {
		log.SetFormatter(&log.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	} else {
		log.SetFormatter(&log.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	// 输出位置
	output := os.Getenv("LOG_OUTPUT")
	if output == "file" || output == "both" {
		logPath := os.Getenv("LOG_PATH")
		if logPath == "" {
			logPath = "./logs"
		}

		// 文件输出走lumberjack轮转，避免单文件无限增长
		fileWriter := &lumberjack.Logger{
			Filename:   filepath.Join(logPath, "app.log"),
			MaxSize:    100, // MB
			MaxBackups: 7,
			MaxAge:     7, // 天
			Compress:   true,
		}

		if output == "both" {
			log.SetOutput(io.MultiWriter(os.Stdout, fileWriter))
		} else {
			log.SetOutput(fileWriter)
		}
	} else {
		log.SetOutput(os.Stdout)
	}
}
