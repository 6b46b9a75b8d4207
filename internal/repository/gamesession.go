package repository

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/vancomm/sudoku-server/internal/sudoku"
)

type GameSession struct {
	GameSessionId int64
	PlayerId      *int64
	Puzzle        string
	Won           bool
	State         []byte
	StartedAt     pgtype.Timestamptz
	EndedAt       pgtype.Timestamptz
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

// Board decodes the stored board state.
func (s GameSession) Board() (*sudoku.Board, error) {
	return sudoku.Decode(s.State)
}

type CreateGameSessionParams struct {
	PlayerId *int64
}

func (q Queries) CreateGameSession(
	ctx context.Context, board *sudoku.Board, params CreateGameSessionParams,
) (*GameSession, error) {
	state, err := board.Bytes()
	if err != nil {
		return nil, err
	}

	args := pgx.NamedArgs{
		"puzzle": board.Givens(),
		"won":    board.Won(),
		"state":  state,
	}
	if params.PlayerId != nil {
		args["player_id"] = *params.PlayerId
	}

	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO game_session (player_id, puzzle, won, state)
		VALUES (@player_id, @puzzle, @won, @state)
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(
		rows, pgx.RowToAddrOfStructByName[GameSession],
	)
}

func (q Queries) FetchGameSession(ctx context.Context, gameSessionId int64) (*GameSession, error) {
	rows, _ := q.db.Query(
		ctx,
		"SELECT * FROM game_session WHERE game_session_id = $1",
		gameSessionId,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}

type UpdateGameSessionParams struct {
	Won          *bool
	EndedAt      *time.Time
	ClearEndedAt bool
	State        *[]byte
}

func (p UpdateGameSessionParams) SetClause() (string, pgx.NamedArgs) {
	parts := []string{"updated_at = now()"}
	args := pgx.NamedArgs{}

	if p.Won != nil {
		parts = append(parts, "won = @won")
		args["won"] = *p.Won
	}
	if p.ClearEndedAt {
		parts = append(parts, "ended_at = NULL")
	} else if p.EndedAt != nil {
		parts = append(parts, "ended_at = @ended_at")
		args["ended_at"] = *p.EndedAt
	}
	if p.State != nil {
		parts = append(parts, "state = @state")
		args["state"] = *p.State
	}

	return strings.Join(parts, ", "), args
}

func (q Queries) UpdateGameSession(
	ctx context.Context, gameSessionId int64, params UpdateGameSessionParams,
) (*GameSession, error) {
	setClause, args := params.SetClause()
	args["game_session_id"] = gameSessionId
	rows, _ := q.db.Query(
		ctx,
		"UPDATE game_session SET "+setClause+
			" WHERE game_session_id = @game_session_id RETURNING *",
		args,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}
