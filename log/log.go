package log

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Plugin = zapcore.Core

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func NewLogger(plugin zapcore.Core, options ...zap.Option) *zap.Logger {
	return zap.New(plugin, append(DefaultOption(), options...)...)
}

func NewPlugin(writer zapcore.WriteSyncer, enabler zapcore.LevelEnabler) Plugin {
	return zapcore.NewCore(DefaultEncoder(), writer, enabler)
}

// NewFormatPlugin 与 NewPlugin 相同，但可以指定编码格式
func NewFormatPlugin(format string, writer zapcore.WriteSyncer, enabler zapcore.LevelEnabler) Plugin {
	return zapcore.NewCore(NewEncoder(format), writer, enabler)
}

func NewStdoutPlugin(enabler zapcore.LevelEnabler) Plugin {
	return NewPlugin(zapcore.Lock(zapcore.AddSync(os.Stdout)), enabler)
}

// 任务列表会写到 stdout，日志默认走 stderr
func NewStderrPlugin(format string, enabler zapcore.LevelEnabler) Plugin {
	return NewFormatPlugin(format, zapcore.Lock(zapcore.AddSync(os.Stderr)), enabler)
}

// Lumberjack 没有暴露 sync，额外返回 closer，进程退出前需要 close 保证刷盘
func NewFilePlugin(
	filePath string, enabler zapcore.LevelEnabler) (Plugin, io.Closer) {
	var writer = DefaultLumberjackLogger()
	writer.Filename = filePath

	return NewPlugin(zapcore.AddSync(writer), enabler), writer
}

// New 按级别文本创建 logger，filePath 不为空时同时写入滚动文件
func New(levelText, format, filePath string) (*zap.Logger, io.Closer, error) {
	level, err := zapcore.ParseLevel(levelText)
	if err != nil {
		return nil, nil, err
	}

	plugins := []Plugin{NewStderrPlugin(format, level)}
	var closer io.Closer = nopCloser{}
	if filePath != "" {
		p, c := NewFilePlugin(filePath, level)
		plugins = append(plugins, p)
		closer = c
	}

	return NewLogger(zapcore.NewTee(plugins...)), closer, nil
}
