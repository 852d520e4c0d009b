package botservice

import "context"

// Service defines the bot roster operations of a competition.
type Service interface {
	ListBots(ctx context.Context, competitionID int64) ([]BotInfo, error)
	RegenerateBots(ctx context.Context, competitionID int64, actor string, req RegenerateRequest) ([]BotInfo, error)
	DeleteBots(ctx context.Context, competitionID int64, actor string) error
}
