package handlers

import (
	"strconv"

	"github.com/gorilla/schema"

	"github.com/vancomm/sudoku-server/internal/repository"
	"github.com/vancomm/sudoku-server/internal/sudoku"
)

type NewGameDTO struct {
	Puzzle string `schema:"puzzle"`
}

func ParseNewGameDTO(src map[string][]string) (NewGameDTO, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	var dto NewGameDTO
	err := dec.Decode(&dto, src)
	return dto, err
}

type MoveDTO struct {
	Row   int `schema:"row,required"`
	Col   int `schema:"col,required"`
	Value int `schema:"value,required"`
}

func ParseMoveDTO(src map[string][]string) (MoveDTO, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	var dto MoveDTO
	err := dec.Decode(&dto, src)
	return dto, err
}

// InBounds reports whether the move addresses a cell on the grid. Value
// range is the board's own concern.
func (dto MoveDTO) InBounds() bool {
	return 1 <= dto.Row && dto.Row <= sudoku.Size &&
		1 <= dto.Col && dto.Col <= sudoku.Size
}

type GameSessionDTO struct {
	GameSessionId string        `json:"game_session_id"`
	Puzzle        string        `json:"puzzle"`
	Board         string        `json:"board"`
	Conflicts     []sudoku.Cell `json:"conflicts"`
	Won           bool          `json:"won"`
	Accepted      *bool         `json:"accepted,omitempty"`
	StartedAt     int64         `json:"started_at"`
	EndedAt       *int64        `json:"ended_at,omitempty"`
}

func NewGameSessionDTO(session *repository.GameSession, board *sudoku.Board) GameSessionDTO {
	dto := GameSessionDTO{
		GameSessionId: strconv.FormatInt(session.GameSessionId, 10),
		Puzzle:        board.Givens(),
		Board:         board.Definition(),
		Conflicts:     board.Conflicts(),
		Won:           board.Won(),
		StartedAt:     session.StartedAt.Time.UnixMilli(),
	}
	if session.EndedAt.Valid {
		e := session.EndedAt.Time.UnixMilli()
		dto.EndedAt = &e
	}
	return dto
}

func (dto GameSessionDTO) withAccepted(accepted bool) GameSessionDTO {
	dto.Accepted = &accepted
	return dto
}
