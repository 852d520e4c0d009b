package botservice

import "time"

// BotInfo is a bot as the API returns it. ID is the signed wire id.
type BotInfo struct {
	ID        int64     `json:"id"`
	BotID     int64     `json:"bot_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// RegenerateRequest replaces a roster. When Count is positive only the first Count
// usernames are used.
type RegenerateRequest struct {
	Usernames []string `json:"usernames"`
	Count     int      `json:"count"`
}
