package task

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/dreamerjackson/htstask/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGenerator_Generate(t *testing.T) {
	g := NewGenerator(WithBasePath("/data/HTS"))
	tasks := g.Generate()
	require.Len(t, tasks, 276)

	type key struct {
		chapter int
		source  string
	}
	seen := make(map[key]bool)
	for _, task := range tasks {
		k := key{task.Chapter, task.Source}
		assert.False(t, seen[k], "duplicate %v", k)
		seen[k] = true
	}
	for ch := 6; ch <= 97; ch++ {
		for _, s := range []string{source.WCO, source.CENSUS, source.USITC} {
			assert.True(t, seen[key{ch, s}], "missing %d %s", ch, s)
		}
	}
}

func TestGenerator_Order(t *testing.T) {
	tasks := NewGenerator().Generate()
	require.True(t, len(tasks) > 3)

	for i, s := range []string{source.WCO, source.CENSUS, source.USITC} {
		assert.Equal(t, 6, tasks[i].Chapter)
		assert.Equal(t, s, tasks[i].Source)
	}
	assert.Equal(t, 7, tasks[3].Chapter)
	assert.Equal(t, source.WCO, tasks[3].Source)
	assert.Equal(t, 97, tasks[len(tasks)-1].Chapter)
	assert.Equal(t, source.USITC, tasks[len(tasks)-1].Source)
}

func TestGenerator_Idempotent(t *testing.T) {
	g := NewGenerator(WithBasePath("/data/HTS"))
	first, err := json.Marshal(g.Generate())
	require.NoError(t, err)
	second, err := json.Marshal(g.Generate())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerator_BuildTask(t *testing.T) {
	base := filepath.Join("data", "HTS")
	g := NewGenerator(WithBasePath(base))
	d := source.Defaults()

	tests := []struct {
		name    string
		chapter int
		src     source.Source
		want    DownloadTask
	}{
		{
			name:    "wco",
			chapter: 6,
			src:     d[0],
			want: DownloadTask{
				URL:        d[0].BaseURL + "0206_2022e.pdf",
				TargetPath: filepath.Join(base, "Section_II_Vegetable_Products", "Chapter_06_Live_Plants_Cut_Flowers", "0206_2022e.pdf"),
				Chapter:    6,
				Source:     source.WCO,
			},
		},
		{
			name:    "census",
			chapter: 15,
			src:     d[1],
			want: DownloadTask{
				URL:        "https://www.census.gov/foreign-trade/schedules/b/2025/c15.pdf",
				TargetPath: filepath.Join(base, "Section_III_Fats_Oils_Cleavage_Products", "Chapter_15_Fats_Oils_Cleavage_Products", "c15.pdf"),
				Chapter:    15,
				Source:     source.CENSUS,
			},
		},
		{
			name:    "usitc keeps encoded url and literal local name",
			chapter: 77,
			src:     d[2],
			want: DownloadTask{
				URL:        "https://hts.usitc.gov/reststop/file?release=currentRelease&filename=Chapter%2077",
				TargetPath: filepath.Join(base, "Section_XV_Base_Metals_Articles", "Chapter_77_Reserved", "Chapter 77_2025HTSRev19.pdf"),
				Chapter:    77,
				Source:     source.USITC,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.BuildTask(tt.chapter, tt.src))
		})
	}
}

func TestGenerator_FallbackLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	g := NewGenerator(WithLogger(zap.New(core)), WithChapters(97, 98))

	tasks := g.Generate()
	require.Len(t, tasks, 6)
	assert.Equal(t, "0098_2022e.pdf", filepath.Base(tasks[3].TargetPath))
	assert.Contains(t, tasks[3].TargetPath, "Unknown_Section")
	assert.Contains(t, tasks[3].TargetPath, "Chapter_98")

	assert.Equal(t, 1, logs.FilterMessage("filename fallback").Len())
	assert.Equal(t, 3, logs.FilterMessage("chapter folder fallback").Len())
	sectionLogs := logs.FilterMessage("chapter not covered by section table")
	assert.Equal(t, 3, sectionLogs.Len())
	assert.Equal(t, zapcore.ErrorLevel, sectionLogs.All()[0].Level)
}

func TestGenerator_NoFallbackInDefaultRange(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	NewGenerator(WithLogger(zap.New(core))).Generate()
	assert.Equal(t, 0, logs.Len())
}

func TestGenerator_CustomSources(t *testing.T) {
	census := source.Source{Name: "MIRROR", BaseURL: "http://mirror/", Ext: ".pdf", Rule: source.CensusRule}
	g := NewGenerator(WithSources(census), WithChapters(10, 12))
	tasks := g.Generate()
	require.Len(t, tasks, 3)
	assert.Equal(t, "http://mirror/c10.pdf", tasks[0].URL)
	assert.Equal(t, "MIRROR", tasks[2].Source)

	assert.Empty(t, NewGenerator(WithChapters(10, 9)).Generate())
}

func TestPreview(t *testing.T) {
	tasks := NewGenerator().Generate()
	lines := Preview(tasks, 6)
	require.Len(t, lines, 6)
	assert.Equal(t, "- CENSUS Ch6: https://www.census.gov/foreign-trade/schedules/b/2025/c06.pdf", lines[1])
	assert.Len(t, Preview(tasks[:2], 6), 2)
	assert.Empty(t, Preview(tasks, -1))
}
