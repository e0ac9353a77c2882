package task

import (
	"fmt"
	"os"
)

// Prepare 为任务去重后的目录逐个 MkdirAll，首个失败即返回。
// 返回已确保存在的目录数
func Prepare(tasks []DownloadTask) (int, error) {
	seen := make(map[string]struct{})
	count := 0
	for _, t := range tasks {
		dir := t.Dir()
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}

		if err := os.MkdirAll(dir, 0755); err != nil {
			return count, fmt.Errorf("prepare destination %s: %w", dir, err)
		}
		count++
	}

	return count, nil
}
