package standingsservice

// StandingRow is one standings line as the API returns it. ParticipantID is the
// signed wire id.
type StandingRow struct {
	Rank          int    `json:"rank"`
	ParticipantID int64  `json:"participant_id"`
	Name          string `json:"name"`
	IsBot         bool   `json:"is_bot"`
	Wins          int    `json:"wins"`
	MatchesPlayed int    `json:"matches_played"`
	Draws         int    `json:"draws"`
	Losses        int    `json:"losses"`
	PointsScored  int    `json:"points_scored"`
}

// StandingsView is the standings table of one competition.
type StandingsView struct {
	CompetitionID    int64         `json:"competition_id"`
	CompetitionTitle string        `json:"competition_title"`
	CompletedMatches int           `json:"completed_matches"`
	Rows             []StandingRow `json:"rows"`
}

// ChartPalette holds the colors of the standings chart as hex strings.
type ChartPalette struct {
	Background string
	Bar        string
	Accent     string
	Text       string
}

// DefaultPalette is used when the caller does not pick one.
var DefaultPalette = ChartPalette{
	Background: "1b2a22",
	Bar:        "3f7d5a",
	Accent:     "d4af37",
	Text:       "e8eee9",
}
