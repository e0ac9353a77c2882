package setup

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/dreamerjackson/htstask/catalog"
	"github.com/dreamerjackson/htstask/config"
	"github.com/dreamerjackson/htstask/log"
	"github.com/dreamerjackson/htstask/task"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// DefaultConfigFile 未指定 --config 时读取，不存在则只用默认值
const DefaultConfigFile = "config.toml"

// Flags 各子命令共用的参数，显式指定时覆盖配置文件
type Flags struct {
	ConfigFile string
	BasePath   string
	LogLevel   string
	First      int
	Last       int
}

func AddFlags(c *cobra.Command, f *Flags) {
	c.Flags().StringVar(
		&f.ConfigFile, "config", DefaultConfigFile, "set toml config file")

	c.Flags().StringVar(
		&f.BasePath, "base-path", "", "set download root directory")

	c.Flags().StringVar(
		&f.LogLevel, "log-level", "", "set log level")

	c.Flags().IntVar(
		&f.First, "first", 0, "set first chapter")

	c.Flags().IntVar(
		&f.Last, "last", 0, "set last chapter")
}

// Setup 读取配置并合并命令行参数，返回的 closer 需要在退出前关闭
func Setup(c *cobra.Command, f *Flags) (*config.Config, *zap.Logger, io.Closer, error) {
	path := f.ConfigFile
	if !c.Flags().Changed("config") {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			path = ""
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, nil, err
	}

	if c.Flags().Changed("base-path") {
		cfg.BasePath = f.BasePath
	}
	if c.Flags().Changed("log-level") {
		cfg.LogLevel = f.LogLevel
	}
	if c.Flags().Changed("first") {
		cfg.First = f.First
	}
	if c.Flags().Changed("last") {
		cfg.Last = f.Last
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, err
	}

	logger, closer, err := log.New(cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	if err != nil {
		return nil, nil, nil, err
	}
	logger.Debug("config loaded", zap.Any("config", cfg))

	return cfg, logger, closer, nil
}

// NewGenerator 先校验大类区间表，再按配置构建生成器
func NewGenerator(cfg *config.Config, logger *zap.Logger) (*task.Generator, error) {
	if err := catalog.Validate(cfg.First, cfg.Last); err != nil {
		logger.Error("section table check failed", zap.Error(err))
		return nil, err
	}

	srcs, err := cfg.DocSources()
	if err != nil {
		return nil, err
	}

	return task.NewGenerator(
		task.WithLogger(logger.Named("task")),
		task.WithBasePath(cfg.BasePath),
		task.WithSources(srcs...),
		task.WithChapters(cfg.First, cfg.Last),
	), nil
}
