package catalog

import "fmt"

var chapterFolders = map[int]string{
	6:  "Chapter_06_Live_Plants_Cut_Flowers",
	7:  "Chapter_07_Edible_Vegetables",
	8:  "Chapter_08_Edible_Fruit_Nuts",
	9:  "Chapter_09_Coffee_Tea_Spices",
	10: "Chapter_10_Cereals",
	11: "Chapter_11_Milling_Products_Starches",
	12: "Chapter_12_Oil_Seeds_Industrial_Plants",
	13: "Chapter_13_Lac_Gums_Plant_Extracts",
	14: "Chapter_14_Vegetable_Plaiting_Materials",
	15: "Chapter_15_Fats_Oils_Cleavage_Products",
	16: "Chapter_16_Prepared_Meat_Fish",
	17: "Chapter_17_Sugars_Confectionery",
	18: "Chapter_18_Cocoa_Preparations",
	19: "Chapter_19_Cereal_Preparations",
	20: "Chapter_20_Prepared_Vegetables_Fruit",
	21: "Chapter_21_Miscellaneous_Edible_Preparations",
	22: "Chapter_22_Beverages_Spirits",
	23: "Chapter_23_Food_Industry_Residues_Fodder",
	24: "Chapter_24_Tobacco_Substitutes",
	25: "Chapter_25_Salt_Sulphur_Stone",
	26: "Chapter_26_Ores_Slag_Ash",
	27: "Chapter_27_Mineral_Fuels_Oils",
	28: "Chapter_28_Inorganic_Chemicals",
	29: "Chapter_29_Organic_Chemicals",
	30: "Chapter_30_Pharmaceutical_Products",
	31: "Chapter_31_Fertilisers",
	32: "Chapter_32_Tanning_Extracts_Dyes",
	33: "Chapter_33_Essential_Oils_Cosmetics",
	34: "Chapter_34_Soap_Cleaning_Preparations",
	35: "Chapter_35_Proteins_Starches_Enzymes",
	36: "Chapter_36_Explosives_Pyrotechnics",
	37: "Chapter_37_Photographic_Goods",
	38: "Chapter_38_Miscellaneous_Chemical_Products",
	39: "Chapter_39_Plastics_Plastic_Articles",
	40: "Chapter_40_Rubber_Rubber_Articles",
	41: "Chapter_41_Raw_Hides_Leather",
	42: "Chapter_42_Leather_Articles",
	43: "Chapter_43_Furskins_Artificial_Fur",
	44: "Chapter_44_Wood_Wood_Articles",
	45: "Chapter_45_Cork_Cork_Articles",
	46: "Chapter_46_Straw_Plaiting_Materials",
	47: "Chapter_47_Pulp_Recovered_Paper",
	48: "Chapter_48_Paper_Paperboard",
	49: "Chapter_49_Printed_Books_Materials",
	50: "Chapter_50_Silk",
	51: "Chapter_51_Wool_Animal_Hair",
	52: "Chapter_52_Cotton",
	53: "Chapter_53_Other_Vegetable_Textile_Fibers",
	54: "Chapter_54_Man_Made_Filaments",
	55: "Chapter_55_Man_Made_Staple_Fibers",
	56: "Chapter_56_Wadding_Felt_Nonwovens",
	57: "Chapter_57_Carpets_Textile_Floor_Coverings",
	58: "Chapter_58_Special_Woven_Fabrics",
	59: "Chapter_59_Impregnated_Coated_Textile_Fabrics",
	60: "Chapter_60_Knitted_Crocheted_Fabrics",
	61: "Chapter_61_Knitted_Crocheted_Apparel",
	62: "Chapter_62_Woven_Apparel_Clothing",
	63: "Chapter_63_Other_Made_Up_Textile_Articles",
	64: "Chapter_64_Footwear",
	65: "Chapter_65_Headgear",
	66: "Chapter_66_Umbrellas_Walking_Sticks",
	67: "Chapter_67_Prepared_Feathers_Artificial_Flowers",
	68: "Chapter_68_Stone_Articles",
	69: "Chapter_69_Ceramic_Products",
	70: "Chapter_70_Glass_Glassware",
	71: "Chapter_71_Pearls_Precious_Stones_Metals",
	72: "Chapter_72_Iron_Steel",
	73: "Chapter_73_Iron_Steel_Articles",
	74: "Chapter_74_Copper_Articles",
	75: "Chapter_75_Nickel_Articles",
	76: "Chapter_76_Aluminum_Articles",
	77: "Chapter_77_Reserved",
	78: "Chapter_78_Lead_Articles",
	79: "Chapter_79_Zinc_Articles",
	80: "Chapter_80_Tin_Articles",
	81: "Chapter_81_Other_Base_Metals",
	82: "Chapter_82_Tools_Cutlery",
	83: "Chapter_83_Miscellaneous_Base_Metal_Articles",
	84: "Chapter_84_Nuclear_Reactors_Machinery",
	85: "Chapter_85_Electrical_Machinery",
	86: "Chapter_86_Railway_Locomotives",
	87: "Chapter_87_Motor_Vehicles",
	88: "Chapter_88_Aircraft_Spacecraft",
	89: "Chapter_89_Ships_Boats",
	90: "Chapter_90_Optical_Measuring_Instruments",
	91: "Chapter_91_Clocks_Watches",
	92: "Chapter_92_Musical_Instruments",
	93: "Chapter_93_Arms_Ammunition",
	94: "Chapter_94_Furniture_Bedding",
	95: "Chapter_95_Toys_Games_Sports_Equipment",
	96: "Chapter_96_Miscellaneous_Manufactured_Articles",
	97: "Chapter_97_Works_of_Art_Antiques",
}

// ChapterFolder 返回章节目录名，未收录的章节退化为 Chapter_NN
func ChapterFolder(chapter int) (string, bool) {
	if name, ok := chapterFolders[chapter]; ok {
		return name, true
	}

	return fmt.Sprintf("Chapter_%02d", chapter), false
}
