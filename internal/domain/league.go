package domain

// SportFamily groups leagues by how their in-game clock behaves. It is the
// only axis on which card formatting differs between leagues.
type SportFamily string

const (
	SportFootball   SportFamily = "football"
	SportBasketball SportFamily = "basketball"
	SportHockey     SportFamily = "hockey"
	SportBaseball   SportFamily = "baseball"
	SportSoccer     SportFamily = "soccer"
)

// RemapsOvertime reports whether a period index past regulation should render
// as "OT". Minute-based sports (soccer) carry stoppage/extra time in the
// minute string itself and are never remapped; baseball renders extra innings
// by their ordinal.
func (f SportFamily) RemapsOvertime() bool {
	switch f {
	case SportFootball, SportBasketball, SportHockey:
		return true
	default:
		return false
	}
}

// NCAAKind selects which NCAA filter lists and conference table apply.
type NCAAKind string

const (
	NCAAFootball   NCAAKind = "football"
	NCAABasketball NCAAKind = "basketball"
)

// League describes one supported league. The set of leagues is a closed
// table; behavior differences are carried as data, not subtypes.
type League struct {
	Key        string
	Name       string
	Family     SportFamily
	SportPath  string
	LeaguePath string

	// Regulation is the number of periods before overtime for families
	// where RemapsOvertime applies, and innings for baseball.
	Regulation int

	NCAA         bool
	Kind         NCAAKind
	DefaultGroup string
}

// Leagues is the fixed league table, in default ticker order.
var Leagues = []League{
	{Key: "nfl", Name: "NFL", Family: SportFootball, SportPath: "football", LeaguePath: "nfl", Regulation: 4},
	{Key: "nba", Name: "NBA", Family: SportBasketball, SportPath: "basketball", LeaguePath: "nba", Regulation: 4},
	{Key: "nhl", Name: "NHL", Family: SportHockey, SportPath: "hockey", LeaguePath: "nhl", Regulation: 3},
	{Key: "mlb", Name: "MLB", Family: SportBaseball, SportPath: "baseball", LeaguePath: "mlb", Regulation: 9},
	{Key: "ncaam", Name: "NCAA MBB", Family: SportBasketball, SportPath: "basketball", LeaguePath: "mens-college-basketball", Regulation: 2, NCAA: true, Kind: NCAABasketball, DefaultGroup: "50"},
	{Key: "ncaaf", Name: "NCAA FB", Family: SportFootball, SportPath: "football", LeaguePath: "college-football", Regulation: 4, NCAA: true, Kind: NCAAFootball, DefaultGroup: "80"},
	{Key: "mls", Name: "MLS", Family: SportSoccer, SportPath: "soccer", LeaguePath: "usa.1"},
}

// LeagueByKey looks up a league in the table.
func LeagueByKey(key string) (League, bool) {
	for _, lg := range Leagues {
		if lg.Key == key {
			return lg, true
		}
	}
	return League{}, false
}
