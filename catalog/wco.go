package catalog

// WCO 2022 版 HS 注释文档编号，前两位是大类号，后两位是章节号。
// 编号不规则，只能查表
var wcoCodes = map[int]string{
	1:  "0101",
	2:  "0102",
	3:  "0103",
	4:  "0104",
	5:  "0105",
	6:  "0206",
	7:  "0207",
	8:  "0208",
	9:  "0209",
	10: "0210",
	11: "0211",
	12: "0212",
	13: "0213",
	14: "0214",
	15: "0315",
	16: "0416",
	17: "0417",
	18: "0418",
	19: "0419",
	20: "0420",
	21: "0421",
	22: "0422",
	23: "0423",
	24: "0424",
	25: "0525",
	26: "0526",
	27: "0527",
	28: "0628",
	29: "0629",
	30: "0630",
	31: "0631",
	32: "0632",
	33: "0633",
	34: "0634",
	35: "0635",
	36: "0636",
	37: "0637",
	38: "0638",
	39: "0739",
	40: "0740",
	41: "0841",
	42: "0842",
	43: "0843",
	44: "0844",
	45: "0845",
	46: "0846",
	47: "0847",
	48: "0848",
	49: "0849",
	50: "1150",
	51: "1151",
	52: "1152",
	53: "1153",
	54: "1154",
	55: "1155",
	56: "1156",
	57: "1157",
	58: "1158",
	59: "1159",
	60: "1160",
	61: "1161",
	62: "1162",
	63: "1163",
	64: "1264",
	65: "1265",
	66: "1266",
	67: "1267",
	68: "1368",
	69: "1369",
	70: "1370",
	71: "1471",
	72: "1572",
	73: "1573",
	74: "1574",
	75: "1575",
	76: "1576",
	77: "1577",
	78: "1578",
	79: "1579",
	80: "1580",
	81: "1581",
	82: "1582",
	83: "1583",
	84: "1684",
	85: "1685",
	86: "1786",
	87: "1787",
	88: "1788",
	89: "1789",
	90: "1890",
	91: "1891",
	92: "1892",
	93: "1993",
	94: "2094",
	95: "2095",
	96: "2096",
	97: "2197",
}

// WCOCode returns the four digit WCO document code of a chapter.
func WCOCode(chapter int) (string, bool) {
	code, ok := wcoCodes[chapter]
	return code, ok
}
