package espn

// ProviderName identifies this provider in logs and metrics.
const ProviderName = "espn"

type scoreboardResponse struct {
	Leagues []leaguePayload `json:"leagues"`
	Events  []eventPayload  `json:"events"`
}

type leaguePayload struct {
	Logos []logoPayload `json:"logos"`
}

type logoPayload struct {
	Href string `json:"href"`
}

type eventPayload struct {
	ID           string               `json:"id"`
	Date         string               `json:"date"`
	Status       statusPayload        `json:"status"`
	Competitions []competitionPayload `json:"competitions"`
}

type competitionPayload struct {
	Competitors []competitorPayload `json:"competitors"`
	Odds        []oddsPayload       `json:"odds"`
}

type competitorPayload struct {
	HomeAway    string             `json:"homeAway"`
	Score       string             `json:"score"`
	CuratedRank curatedRankPayload `json:"curatedRank"`
	Team        teamPayload        `json:"team"`
}

type curatedRankPayload struct {
	Current int `json:"current"`
}

type teamPayload struct {
	Abbreviation     string             `json:"abbreviation"`
	ShortDisplayName string             `json:"shortDisplayName"`
	DisplayName      string             `json:"displayName"`
	Name             string             `json:"name"`
	ConferenceID     string             `json:"conferenceId"`
	Conference       *conferencePayload `json:"conference"`
	Logos            []logoPayload      `json:"logos"`
	Logo             string             `json:"logo"`
}

type conferencePayload struct {
	ID           string `json:"id"`
	ShortName    string `json:"shortName"`
	Abbreviation string `json:"abbreviation"`
	Name         string `json:"name"`
}

type statusPayload struct {
	Period       int               `json:"period"`
	DisplayClock string            `json:"displayClock"`
	Type         statusTypePayload `json:"type"`
}

type statusTypePayload struct {
	State       string `json:"state"`
	ShortDetail string `json:"shortDetail"`
	Detail      string `json:"detail"`
}

type oddsPayload struct {
	Details string   `json:"details"`
	Spread  *float64 `json:"spread"`
}
