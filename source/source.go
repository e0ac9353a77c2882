package source

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dreamerjackson/htstask/catalog"
)

var (
	ErrUnknownSource = errors.New("unknown source")
	ErrUnknownRule   = errors.New("unknown filename rule")
)

// Filename 远端路径片段与本地保存文件名。
// 两者可以不同，例如 USITC 远端需要 %20，本地保留空格
type Filename struct {
	Remote   string
	Local    string
	Fallback bool // 没有命中查表，按规则合成
}

// Rule builds the filename of a chapter from the source's file extension.
type Rule func(chapter int, ext string) Filename

// Source 一个文档来源
type Source struct {
	Name    string
	BaseURL string
	Ext     string
	Rule    Rule
}

func (s Source) Filename(chapter int) Filename {
	return s.Rule(chapter, s.Ext)
}

func (s Source) URL(chapter int) string {
	return s.BaseURL + s.Filename(chapter).Remote
}

// WCORule 查 WCO 编号表；表外章节按四位补零合成，不保证 WCO 站点上真实存在
func WCORule(chapter int, ext string) Filename {
	if code, ok := catalog.WCOCode(chapter); ok {
		name := code + ext
		return Filename{Remote: name, Local: name}
	}

	name := fmt.Sprintf("%04d%s", chapter, ext)

	return Filename{Remote: name, Local: name, Fallback: true}
}

func CensusRule(chapter int, ext string) Filename {
	name := fmt.Sprintf("c%02d%s", chapter, ext)
	return Filename{Remote: name, Local: name}
}

// USITCRule 远端是查询参数，不带扩展名
func USITCRule(chapter int, ext string) Filename {
	return Filename{
		Remote: fmt.Sprintf("Chapter%%20%d", chapter),
		Local:  fmt.Sprintf("Chapter %d%s", chapter, ext),
	}
}

var rules = map[string]Rule{
	"wco":    WCORule,
	"census": CensusRule,
	"usitc":  USITCRule,
}

func RuleByName(name string) (Rule, error) {
	r, ok := rules[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}

	return r, nil
}

const (
	WCO    = "WCO"
	CENSUS = "CENSUS"
	USITC  = "USITC"
)

// Defaults returns the built-in sources in declaration order.
func Defaults() []Source {
	return []Source{
		{
			Name:    WCO,
			BaseURL: "https://www.wcoomd.org/-/media/wco/public/global/pdf/topics/nomenclature/instruments-and-tools/hs-nomenclature-2022/2022/",
			Ext:     "_2022e.pdf",
			Rule:    WCORule,
		},
		{
			Name:    CENSUS,
			BaseURL: "https://www.census.gov/foreign-trade/schedules/b/2025/",
			Ext:     ".pdf",
			Rule:    CensusRule,
		},
		{
			Name:    USITC,
			BaseURL: "https://hts.usitc.gov/reststop/file?release=currentRelease&filename=",
			Ext:     "_2025HTSRev19.pdf",
			Rule:    USITCRule,
		},
	}
}

// FilenameFor applies the rule of a built-in source.
func FilenameFor(name string, chapter int) (Filename, error) {
	for _, s := range Defaults() {
		if s.Name == name {
			return s.Filename(chapter), nil
		}
	}

	return Filename{}, fmt.Errorf("%w: %q", ErrUnknownSource, name)
}
