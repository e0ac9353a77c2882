package audit

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dreamerjackson/htstask/task"
	"go.uber.org/zap"
)

// Counts 单个来源的统计
type Counts struct {
	Source  string
	Present int
	Missing int
}

type Report struct {
	Present  []task.DownloadTask
	Missing  []task.DownloadTask
	BySource []Counts // 按来源首次出现的顺序
}

func (r *Report) Total() int {
	return len(r.Present) + len(r.Missing)
}

// Missing 检查每个任务的目标文件是否已经在磁盘上
func Missing(tasks []task.DownloadTask, logger *zap.Logger) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Report{}
	index := make(map[string]int)
	for _, t := range tasks {
		i, ok := index[t.Source]
		if !ok {
			i = len(r.BySource)
			index[t.Source] = i
			r.BySource = append(r.BySource, Counts{Source: t.Source})
		}

		fi, err := os.Stat(t.TargetPath)
		switch {
		case err == nil && fi.Size() > 0:
			r.Present = append(r.Present, t)
			r.BySource[i].Present++
		case err == nil || errors.Is(err, fs.ErrNotExist):
			// 空文件按缺失处理
			r.Missing = append(r.Missing, t)
			r.BySource[i].Missing++
			logger.Debug("missing file", zap.String("path", t.TargetPath))
		default:
			return nil, fmt.Errorf("audit %s chapter %d: %w", t.Source, t.Chapter, err)
		}
	}

	return r, nil
}
