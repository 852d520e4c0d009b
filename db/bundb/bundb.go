package bundb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	botdb "github.com/Black-And-White-Club/matchday/app/modules/bot/infrastructure/repositories"
	competitiondb "github.com/Black-And-White-Club/matchday/app/modules/competition/infrastructure/repositories"
	matchdb "github.com/Black-And-White-Club/matchday/app/modules/match/infrastructure/repositories"
	notificationdb "github.com/Black-And-White-Club/matchday/app/modules/notification/infrastructure/repositories"
	scoredb "github.com/Black-And-White-Club/matchday/app/modules/score/infrastructure/repositories"
	userdb "github.com/Black-And-White-Club/matchday/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/matchday/app/shared/observability/attr"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// DBService bundles the repositories of every module over one connection pool.
type DBService struct {
	UserDB         userdb.Repository
	CompetitionDB  competitiondb.Repository
	BotDB          botdb.Repository
	MatchDB        matchdb.Repository
	ScoreDB        scoredb.Repository
	NotificationDB notificationdb.Repository
	db             *bun.DB
}

// GetDB returns the underlying database connection pool.
func (dbService *DBService) GetDB() *bun.DB {
	return dbService.db
}

// Close closes the connection pool.
func (dbService *DBService) Close() error {
	return dbService.db.Close()
}

// NewBunDBService connects to Postgres and builds the repositories.
func NewBunDBService(ctx context.Context, dsn string, logger *slog.Logger) (*DBService, error) {
	sqldb, err := pgConn(ctx, dsn)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to connect to PostgreSQL", attr.Error(err))
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	dbService := NewDBService(bunDB(sqldb))
	logger.InfoContext(ctx, "Database service initialized")
	return dbService, nil
}

// NewDBService builds the repositories over an existing bun.DB.
func NewDBService(db *bun.DB) *DBService {
	db.RegisterModel(
		(*competitiondb.Participant)(nil),
		(*matchdb.MatchParticipant)(nil),
	)

	return &DBService{
		UserDB:         userdb.NewRepository(db),
		CompetitionDB:  competitiondb.NewRepository(db),
		BotDB:          botdb.NewRepository(db),
		MatchDB:        matchdb.NewRepository(db),
		ScoreDB:        scoredb.NewRepository(db),
		NotificationDB: notificationdb.NewRepository(db),
		db:             db,
	}
}

// bunDB returns a new bun.DB for given sql.DB connection pool.
func bunDB(sqldb *sql.DB) *bun.DB {
	return bun.NewDB(sqldb, pgdialect.New())
}

func pgConn(ctx context.Context, dsn string) (*sql.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithDSN(dsn),
		pgdriver.WithTimeout(5*time.Second),
	))

	if err := sqldb.PingContext(ctx); err != nil {
		_ = sqldb.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return sqldb, nil
}
