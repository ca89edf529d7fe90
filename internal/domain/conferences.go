package domain

import "strings"

// NormalizeConferenceName upper-cases and collapses whitespace so config
// entries and feed values compare consistently.
func NormalizeConferenceName(value string) string {
	return strings.Join(strings.Fields(strings.ToUpper(strings.TrimSpace(value))), " ")
}

// ncaaConferences maps normalized conference names to the scoreboard feed's
// group ids, per NCAA kind. The ids differ between football and basketball.
var ncaaConferences = map[NCAAKind]map[string]int{
	NCAAFootball: {
		"ACC":                   1,
		"AMERICAN ATHLETIC":     151,
		"BIG 12":                4,
		"BIG TEN":               5,
		"C-USA":                 12,
		"INDEPENDENTS":          18,
		"MAC":                   15,
		"MOUNTAIN WEST":         17,
		"PAC-12":                9,
		"SEC":                   8,
		"SUN BELT":              37,
		"FCS INDEPENDENTS":      40,
		"ASUN-WAC":              48,
		"BIG SKY":               20,
		"BIG SOUTH-OVC":         73,
		"CAA":                   68,
		"FCS (IA) INDEPENDENTS": 40,
		"IVY":                   22,
		"MEAC":                  16,
		"MISSOURI VALLEY":       21,
		"NORTHEAST":             24,
		"PATRIOT":               25,
		"PIONEER":               81,
		"SOCON":                 27,
		"SOUTHLAND":             26,
		"SWAC":                  28,
		"UAC":                   98,
	},
	NCAABasketball: {
		"ACC":               2,
		"AMERICA EAST":      1,
		"AMERICAN ATHLETIC": 62,
		"ATLANTIC 10":       3,
		"ATLANTIC SUN":      17,
		"BIG 12":            8,
		"BIG EAST":          4,
		"BIG SKY":           5,
		"BIG SOUTH":         6,
		"BIG TEN":           7,
		"BIG WEST":          9,
		"C-USA":             12,
		"CAA":               10,
		"HORIZON LEAGUE":    45,
		"IVY":               13,
		"MAAC":              14,
		"MAC":               15,
		"MEAC":              16,
		"MISSOURI VALLEY":   18,
		"MOUNTAIN WEST":     19,
		"NORTHEAST":         20,
		"OHIO VALLEY":       23,
		"PATRIOT":           24,
		"SEC":               23,
		"SOCON":             26,
		"SOUTHLAND":         27,
		"SUMMIT LEAGUE":     25,
		"SUN BELT":          37,
		"SWAC":              28,
		"WAC":               29,
		"WEST COAST":        30,
	},
}

// ConferenceIDs resolves configured conference names into feed group ids for
// the given kind. Names that do not resolve are dropped; they still
// participate in case-insensitive name matching at filter time.
func ConferenceIDs(kind NCAAKind, names []string) map[int]struct{} {
	lookup := ncaaConferences[kind]
	ids := make(map[int]struct{})
	for _, name := range names {
		if id, ok := lookup[NormalizeConferenceName(name)]; ok {
			ids[id] = struct{}{}
		}
	}
	return ids
}
