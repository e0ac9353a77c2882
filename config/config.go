package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dreamerjackson/htstask/source"
	"github.com/go-micro/plugins/v4/config/encoder/toml"
	"go-micro.dev/v4/config"
	"go-micro.dev/v4/config/reader"
	"go-micro.dev/v4/config/reader/json"
	msource "go-micro.dev/v4/config/source"
	"go-micro.dev/v4/config/source/file"
)

// 章节编号上限
const MaxChapter = 97

var ErrChapterRange = errors.New("invalid chapter range")

type Config struct {
	LogLevel  string
	LogFormat string // json 或 console
	LogFile   string // 为空时只输出到 stderr
	BasePath  string
	First     int
	Last      int
	Sources   []SourceConfig
}

// SourceConfig 配置文件里的一个来源，Name 与内置来源同名时未填写的字段沿用内置值
type SourceConfig struct {
	Name    string `json:"name"`
	Rule    string `json:"rule"`
	BaseURL string `json:"baseURL"`
	Ext     string `json:"ext"`
}

func Default() *Config {
	return &Config{
		LogLevel:  "INFO",
		LogFormat: "console",
		BasePath:  "HTS",
		First:     6,
		Last:      MaxChapter,
	}
}

// Load 读取 toml 配置，path 为空时只使用默认值
func Load(path string) (*Config, error) {
	enc := toml.NewEncoder()
	cfg, err := config.NewConfig(config.WithReader(json.NewReader(reader.WithEncoder(enc))))
	if err != nil {
		return nil, err
	}
	defer cfg.Close()

	if path != "" {
		err = cfg.Load(file.NewSource(
			file.WithPath(path),
			msource.WithEncoder(enc),
		))
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	d := Default()
	c := &Config{
		LogLevel:  cfg.Get("logLevel").String(d.LogLevel),
		LogFormat: cfg.Get("logFormat").String(d.LogFormat),
		LogFile:   cfg.Get("logFile").String(d.LogFile),
		BasePath:  cfg.Get("basePath").String(d.BasePath),
		First:     cfg.Get("chapters", "first").Int(d.First),
		Last:      cfg.Get("chapters", "last").Int(d.Last),
	}

	if err := cfg.Get("sources").Scan(&c.Sources); err != nil {
		return nil, fmt.Errorf("scan sources: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) Validate() error {
	if c.First < 1 || c.Last > MaxChapter || c.First > c.Last {
		return fmt.Errorf("%w: %d-%d", ErrChapterRange, c.First, c.Last)
	}

	if strings.TrimSpace(c.BasePath) == "" {
		return errors.New("base path can not be empty")
	}

	_, err := c.DocSources()

	return err
}

// DocSources 解析配置中的来源，未配置时返回内置的三个来源
func (c *Config) DocSources() ([]source.Source, error) {
	if len(c.Sources) == 0 {
		return source.Defaults(), nil
	}

	builtin := make(map[string]source.Source)
	for _, s := range source.Defaults() {
		builtin[s.Name] = s
	}

	seen := make(map[string]struct{})
	out := make([]source.Source, 0, len(c.Sources))
	for i, sc := range c.Sources {
		if sc.Name == "" {
			return nil, fmt.Errorf("source %d: name can not be empty", i)
		}
		if _, ok := seen[sc.Name]; ok {
			return nil, fmt.Errorf("source %s: duplicate name", sc.Name)
		}
		seen[sc.Name] = struct{}{}

		s := builtin[sc.Name]
		s.Name = sc.Name

		if sc.Rule != "" {
			r, err := source.RuleByName(sc.Rule)
			if err != nil {
				return nil, fmt.Errorf("source %s: %w", sc.Name, err)
			}
			s.Rule = r
		}
		if sc.BaseURL != "" {
			s.BaseURL = sc.BaseURL
		}
		if sc.Ext != "" {
			s.Ext = sc.Ext
		}

		if s.Rule == nil {
			return nil, fmt.Errorf("source %s: %w: rule not set", sc.Name, source.ErrUnknownRule)
		}
		if s.BaseURL == "" {
			return nil, fmt.Errorf("source %s: baseURL can not be empty", sc.Name)
		}

		out = append(out, s)
	}

	return out, nil
}
