package task

import (
	"fmt"
	"path/filepath"

	"github.com/dreamerjackson/htstask/catalog"
	"github.com/dreamerjackson/htstask/source"
	"go.uber.org/zap"
)

// DownloadTask 交给外部下载器的一条任务，生成后不再修改
type DownloadTask struct {
	URL        string `json:"url"`
	TargetPath string `json:"targetPath"`
	Chapter    int    `json:"chapter"`
	Source     string `json:"source"`
}

func (t DownloadTask) Dir() string {
	return filepath.Dir(t.TargetPath)
}

func (t DownloadTask) String() string {
	return fmt.Sprintf("- %s Ch%d: %s", t.Source, t.Chapter, t.URL)
}

type Generator struct {
	options
}

func NewGenerator(opts ...Option) *Generator {
	options := defaultOptions
	for _, opt := range opts {
		opt(&options)
	}

	if len(options.sources) == 0 {
		options.sources = source.Defaults()
	}

	g := &Generator{}
	g.options = options

	return g
}

func (g *Generator) Sources() []source.Source {
	out := make([]source.Source, len(g.sources))
	copy(out, g.sources)

	return out
}

// BuildTask 只做计算，不碰文件系统。
// 查表落空时退化为合成名称并记录日志，不返回错误
func (g *Generator) BuildTask(chapter int, src source.Source) DownloadTask {
	section, ok := catalog.SectionFolder(chapter)
	if !ok {
		g.logger.Error("chapter not covered by section table",
			zap.Int("chapter", chapter),
			zap.String("folder", section),
		)
	}

	folder, ok := catalog.ChapterFolder(chapter)
	if !ok {
		g.logger.Warn("chapter folder fallback",
			zap.Int("chapter", chapter),
			zap.String("folder", folder),
		)
	}

	name := src.Filename(chapter)
	if name.Fallback {
		g.logger.Warn("filename fallback",
			zap.Int("chapter", chapter),
			zap.String("source", src.Name),
			zap.String("filename", name.Remote),
		)
	}

	return DownloadTask{
		URL:        src.BaseURL + name.Remote,
		TargetPath: filepath.Join(g.basePath, section, folder, name.Local),
		Chapter:    chapter,
		Source:     src.Name,
	}
}

// Generate 外层按章节升序，内层按来源声明顺序，调用方依赖这个顺序
func (g *Generator) Generate() []DownloadTask {
	if g.last < g.first {
		return nil
	}

	tasks := make([]DownloadTask, 0, (g.last-g.first+1)*len(g.sources))
	for ch := g.first; ch <= g.last; ch++ {
		for _, src := range g.sources {
			tasks = append(tasks, g.BuildTask(ch, src))
		}
	}

	g.logger.Debug("generate tasks",
		zap.Int("first", g.first),
		zap.Int("last", g.last),
		zap.Int("count", len(tasks)),
	)

	return tasks
}

// Preview returns the first n tasks as log lines.
func Preview(tasks []DownloadTask, n int) []string {
	if n > len(tasks) {
		n = len(tasks)
	}
	if n < 0 {
		n = 0
	}

	lines := make([]string, 0, n)
	for _, t := range tasks[:n] {
		lines = append(lines, t.String())
	}

	return lines
}
