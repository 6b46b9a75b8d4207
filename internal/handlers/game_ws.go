package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/vancomm/sudoku-server/internal/sudoku"
)

// WS protocol: newline-separated text commands, a state DTO JSON reply per
// message.
//
//	g                      fetch current state
//	s <row> <col> <value>  write a value (0 erases)
//	r                      restart the puzzle
var commandNargs = map[string]int{
	"g": 0,
	"s": 3,
	"r": 0,
}

func runCommand(board *sudoku.Board, line string) error {
	parts := strings.Split(line, " ")

	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return fmt.Errorf("unknown command")
	}
	if nargs != len(parts)-1 {
		return fmt.Errorf("invalid number of arguments")
	}

	switch parts[0] {
	case "g":
		return nil
	case "s":
		args := make([]int, 3)
		for i, s := range parts[1:] {
			n, err := strconv.Atoi(s)
			if err != nil {
				return fmt.Errorf("argument %d must be an int", i+1)
			}
			args[i] = n
		}
		row, col, value := args[0], args[1], args[2]
		if row < 1 || row > sudoku.Size || col < 1 || col > sudoku.Size {
			return fmt.Errorf("invalid cell position")
		}
		// a rejected write is a state to report, not a protocol error
		board.SetCell(row, col, value)
		return nil
	case "r":
		board.Restart()
		return nil
	}
	return fmt.Errorf("invalid command")
}

func (g GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	session, board, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	c, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Error("unable to upgrade", slog.Any("error", err))
		return
	}
	defer c.Close()

	g.logger.Debug("established WS connection",
		slog.Int64("game_session_id", session.GameSessionId))

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				g.logger.Warn("abnormal ws break", slog.Any("error", err))
			}
			return
		}
		if mt != websocket.TextMessage {
			return
		}

		text := strings.TrimSpace(string(message))
		for _, line := range strings.Split(text, "\n") {
			if err := runCommand(board, strings.TrimSpace(line)); err != nil {
				g.logger.Error("unable to process command", slog.Any("error", err))
				return
			}
		}

		session, err = g.persist(r, session, board)
		if err != nil {
			g.logger.Error("unable to update session in db", slog.Any("error", err))
			return
		}

		if err := c.WriteJSON(NewGameSessionDTO(session, board)); err != nil {
			g.logger.Error("unable to write json", slog.Any("error", err))
			return
		}
	}
}
