package competitionservice

import "time"

// CreateCompetitionRequest carries the input of CreateCompetition.
type CreateCompetitionRequest struct {
	Title          string  `json:"title"`
	Icon           string  `json:"icon"`
	ParticipantIDs []int64 `json:"participant_ids"`
}

// Member is a human participant of a competition.
type Member struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// CompetitionInfo is a competition with its members.
type CompetitionInfo struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Icon         string    `json:"icon"`
	Creator      Member    `json:"creator"`
	Participants []Member  `json:"participants"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SelectableParticipant is a human or bot that can be put into a match. ID uses the
// signed wire encoding: bots are negative.
type SelectableParticipant struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	IsBot    bool   `json:"is_bot"`
}
