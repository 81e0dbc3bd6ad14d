package model

// CodeType is one of the coding fields carried on every claim, with the pool
// of plausible values the generator samples from.
type CodeType struct {
	Name   string   // e.g. "CPT"
	Header string   // CSV header, e.g. "CPT_Code"
	Column string   // parquet/staging column name, e.g. "cpt_code"
	Pool   []string // candidate values
}

// ICD10Codes are diagnosis codes grouped by chapter.
var ICD10Codes = []string{
	// Endocrine & metabolic
	"E11.9", "E11.65", "E10.9", "E78.5", "E03.9", "E66.9", "E55.9", "E53.8", "E16.2", "E04.2",
	// Circulatory
	"I10", "I11.9", "I25.10", "I20.9", "I21.9", "I48.91", "I50.9", "I63.9", "I65.29", "I73.9",
	// Respiratory
	"J06.9", "J18.9", "J20.9", "J30.9", "J44.9", "J45.909", "J45.40", "J96.00", "J98.4", "J22",
	// Digestive
	"K21.9", "K29.70", "K35.80", "K40.20", "K52.9", "K57.30", "K59.00", "K70.30", "K80.20", "K92.2",
	// Musculoskeletal
	"M17.9", "M19.90", "M25.50", "M25.561", "M25.562", "M54.2", "M54.5", "M81.0", "M79.1", "M51.26",
	// Nervous system
	"G40.909", "G43.909", "G47.00", "G56.00", "G89.29", "G20", "G35", "G62.9", "G81.90", "G93.40",
	// Injury & poisoning
	"S72.001A", "S72.002A", "S52.501A", "S52.502A", "S82.001A", "S82.002A", "T81.4XXA", "T14.90XA", "T78.40XA", "T50.905A",
	// Symptoms & signs
	"R07.9", "R51.9", "R42", "R10.9", "R11.0", "R19.7", "R50.9", "R55", "R60.9", "R73.9",
	// Factors influencing health
	"Z00.00", "Z00.01", "Z01.10", "Z12.11", "Z12.31", "Z23", "Z51.11", "Z79.01", "Z79.899", "Z98.890",
}

// CPTCodes are procedure codes.
var CPTCodes = []string{
	// E/M
	"99212", "99213", "99214", "99215", "99203", "99204", "99205", "99283", "99284", "99285",
	// Preventive
	"99395", "99396", "99397", "99385", "99386", "99387", "99406", "99407", "99408", "99409",
	// Diagnostics
	"93000", "93005", "93010", "71045", "71046", "71047", "71048", "74018", "74019", "74021",
	// Therapy & injections
	"97110", "97112", "97530", "97535", "97542", "20550", "20551", "20610", "20611", "36415",
	// Endoscopy
	"43235", "43239", "45378", "45380", "45385", "31575", "31576", "31577", "31578", "31579",
	// Surgery
	"27130", "27447", "29880", "29881", "29882", "29883", "29888", "29889", "29891", "29892",
	// Lab
	"80050", "80053", "80061", "81001", "81002", "81003", "81005", "82043", "82270", "82272",
	// Imaging
	"70450", "70460", "70470", "70551", "70552", "70553", "72125", "72126", "72127", "72128",
}

// HCPCSCodes are Level II supply, drug and service codes.
var HCPCSCodes = []string{
	"J3420", "G0008", "L1830", "A4550", "S0028", "E0114", "Q3014", "E0100", "V2020", "G0438",
	// Drugs & biologics
	"J1885", "J1100", "J1170", "J1200", "J1756", "J1815", "J2405", "J2550", "J2785", "J3301",
	// DME
	"E0110", "E0111", "E0112", "E0113", "E0116", "E0117", "E0118", "E0119", "E0140", "E0141",
	// Supplies
	"A4206", "A4207", "A4208", "A4209", "A4210", "A4211", "A4212", "A4213", "A4215", "A4216",
	// Services
	"G0439", "G0442", "G0444", "G0446", "G0447", "G0448", "G0459", "G0463", "G0475", "G0476",
	// Vision/hearing
	"V2100", "V2101", "V2102", "V2103", "V2104", "V2105", "V2106", "V2107", "V2108", "V2109",
	// Misc
	"S0020", "S0021", "S0022", "S0023", "S0024", "S0025", "S0026", "S0027", "S0029", "S0030",
}

// Modifiers are CPT Level I and HCPCS Level II procedure modifiers.
var Modifiers = []string{
	// CPT Level I
	"25", "26", "50", "51", "52", "53", "54", "55", "56", "57",
	"58", "59", "62", "63", "66", "76", "77", "78", "79", "80",
	"81", "82", "90", "91", "92", "95", "96", "97", "99",
	// HCPCS Level II
	"E1", "E2", "E3", "E4", "FA", "F1", "F2", "F3", "F4", "F5",
	"F6", "F7", "F8", "F9", "LC", "LD", "LE", "LT", "RT", "QK",
	"QX", "QY", "QZ", "XE", "XP", "XS", "XU", "ZA", "ZB", "ZC",
	// Anesthesia physical status
	"P1", "P2", "P3", "P4", "P5", "P6",
	// Informational
	"GA", "GC", "GE", "GG", "GH", "GJ", "GM", "GN", "GO", "GP",
	"GQ", "GR", "GS", "GT", "GU", "GV", "GW", "GX", "GY", "GZ",
}

// DRGCodes are MS-DRG grouping codes.
var DRGCodes = []string{
	"064", "065", "066", "067", "068", "069", "070", "071", "072", "073",
	"074", "075", "076", "077", "078", "079", "080", "081", "082", "083",
	"084", "085", "086", "087", "088", "089", "090", "091", "092", "093",
	"094", "095", "096", "097", "098", "099", "100", "101", "102", "103",
	"121", "122", "123", "124", "125", "146", "147", "148", "149", "150",
	"151", "152", "153", "154", "155", "156", "157", "158", "159", "173",
	"175", "176", "177", "178", "179", "180", "181", "182", "183", "184",
	"185", "186", "187", "188", "189", "190", "191", "192", "193", "194",
	"195", "196", "197", "198", "199", "200", "201", "202", "203", "204",
}

// AllCodeTypes lists the coding fields in the order they are sampled and serialized.
var AllCodeTypes = []CodeType{
	{Name: "ICD10", Header: "ICD10_Code", Column: "icd10_code", Pool: ICD10Codes},
	{Name: "CPT", Header: "CPT_Code", Column: "cpt_code", Pool: CPTCodes},
	{Name: "HCPCS", Header: "HCPCS_Code", Column: "hcpcs_code", Pool: HCPCSCodes},
	{Name: "Modifier", Header: "Modifier", Column: "modifier", Pool: Modifiers},
	{Name: "DRG", Header: "DRG_Code", Column: "drg_code", Pool: DRGCodes},
}

// CodeTypeByName returns the CodeType for the given name, or ok=false.
func CodeTypeByName(name string) (CodeType, bool) {
	for _, ct := range AllCodeTypes {
		if ct.Name == name {
			return ct, true
		}
	}
	return CodeType{}, false
}

// InPool reports whether v is one of the code type's candidate values.
func (ct CodeType) InPool(v string) bool {
	for _, p := range ct.Pool {
		if p == v {
			return true
		}
	}
	return false
}
