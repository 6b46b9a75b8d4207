package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
)

type LeaderboardEntry struct {
	GameSessionId int64   `json:"game_session_id"`
	Username      *string `json:"username"`
	Puzzle        string  `json:"puzzle"`
	PlaytimeMs    float64 `json:"playtime_ms"`
}

type LeaderboardFilter struct {
	Username *string
	Puzzle   *string
}

func (f LeaderboardFilter) WhereClause() (string, pgx.NamedArgs) {
	clauses := []string{"won", "ended_at IS NOT NULL"}
	args := pgx.NamedArgs{}
	if f.Username != nil {
		clauses = append(clauses, "username = @username")
		args["username"] = *f.Username
	}
	if f.Puzzle != nil {
		clauses = append(clauses, "puzzle = @puzzle")
		args["puzzle"] = *f.Puzzle
	}
	return strings.Join(clauses, " AND "), args
}

// GetLeaderboard lists won sessions fastest first, optionally filtered by
// player or puzzle.
func (q Queries) GetLeaderboard(
	ctx context.Context, filter LeaderboardFilter,
) ([]LeaderboardEntry, error) {
	where, args := filter.WhereClause()
	query := `
	SELECT
		s.game_session_id,
		p.username,
		s.puzzle,
		extract(epoch FROM (s.ended_at - s.started_at)) * 1000 AS playtime_ms
	FROM game_session s
	LEFT JOIN player p USING (player_id)
	WHERE ` + where + `
	ORDER BY playtime_ms ASC
	LIMIT 100;`

	rows, _ := q.db.Query(ctx, query, args)
	return pgx.CollectRows(rows, pgx.RowToStructByName[LeaderboardEntry])
}
