package catalog

import (
	"fmt"
	"strings"
)

const UnknownSection = "Unknown_Section"

// Section 一个税则大类，覆盖连续的章节区间
type Section struct {
	First  int
	Last   int
	Folder string
}

func (s Section) Contains(chapter int) bool {
	return chapter >= s.First && chapter <= s.Last
}

var sections = []Section{
	{1, 5, "Section_I_Live_Animals_Animal_Products"},
	{6, 14, "Section_II_Vegetable_Products"},
	{15, 15, "Section_III_Fats_Oils_Cleavage_Products"},
	{16, 24, "Section_IV_Prepared_Foodstuffs_Beverages"},
	{25, 27, "Section_V_Mineral_Products"},
	{28, 38, "Section_VI_Chemical_Products"},
	{39, 40, "Section_VII_Plastics_Rubber"},
	{41, 43, "Section_VIII_Hides_Skins_Leather_Fur"},
	{44, 46, "Section_IX_Wood_Cork_Plaiting_Materials"},
	{47, 49, "Section_X_Pulp_Paper_Paperboard"},
	{50, 63, "Section_XI_Textiles_Textile_Articles"},
	{64, 67, "Section_XII_Footwear_Headgear_Accessories"},
	{68, 70, "Section_XIII_Stone_Ceramic_Glass"},
	{71, 71, "Section_XIV_Pearls_Precious_Stones_Metals"},
	{72, 83, "Section_XV_Base_Metals_Articles"},
	{84, 85, "Section_XVI_Machinery_Electrical_Equipment"},
	{86, 89, "Section_XVII_Transport_Equipment"},
	{90, 92, "Section_XVIII_Precision_Instruments_Apparatus"},
	{93, 93, "Section_XIX_Arms_Ammunition"},
	{94, 96, "Section_XX_Miscellaneous_Manufactured_Articles"},
	{97, 97, "Section_XXI_Works_of_Art_Antiques"},
}

// SectionFolder 返回章节所属大类的目录名，找不到时返回 UnknownSection 且 ok 为 false
func SectionFolder(chapter int) (string, bool) {
	for _, s := range sections {
		if s.Contains(chapter) {
			return s.Folder, true
		}
	}

	return UnknownSection, false
}

// Sections returns a copy of the ordered range table.
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections)

	return out
}

// Validate 检查 [first, last] 内的每一章都能落到某个大类，
// 落空说明区间表有缺口，属于数据错误
func Validate(first, last int) error {
	var gaps []string
	for ch := first; ch <= last; ch++ {
		if _, ok := SectionFolder(ch); !ok {
			gaps = append(gaps, fmt.Sprint(ch))
		}
	}

	if len(gaps) > 0 {
		return fmt.Errorf("section table has no range for chapters %s", strings.Join(gaps, ","))
	}

	return nil
}
