package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
)

type StatusResponse struct {
	Settings    GameSettingsDTO `json:"settings"`
	Config      Config          `json:"config"`
	GameID      string          `json:"game_id"`
	NextPlayer  int             `json:"next_player"`
	Winner      int             `json:"winner"`
	BoardSize   int             `json:"board_size"`
	Status      string          `json:"status"`
	Board       [][]int         `json:"board"`
	LastMove    *Move           `json:"last_move,omitempty"`
	Message     string          `json:"message,omitempty"`
	WinningLine []Move          `json:"winning_line"`
	EmptyCount  int             `json:"empty_count"`
	Hash        string          `json:"hash"`
}

type GameSettingsDTO struct {
	Mode        string `json:"mode"`
	HumanPlayer int    `json:"human_player"`
	BoardSize   int    `json:"board_size"`
	WinLength   int    `json:"win_length"`
	BlackStarts *bool  `json:"black_starts,omitempty"`
}

type apiMove struct {
	Row    int `json:"row"`
	Col    int `json:"col"`
	Player int `json:"player"`
}

type resetPayload struct {
	GameID     string  `json:"game_id"`
	NextPlayer int     `json:"next_player"`
	Winner     int     `json:"winner"`
	Status     string  `json:"status"`
	BoardSize  int     `json:"board_size"`
	Board      [][]int `json:"board"`
}

type settingsPayload struct {
	Settings GameSettingsDTO `json:"settings"`
	Config   Config          `json:"config"`
}

type legalResponse struct {
	Legal  bool   `json:"legal"`
	Reason string `json:"reason,omitempty"`
}

type emptyPointsResponse struct {
	Empty []Move `json:"empty"`
	Count int    `json:"count"`
}

type groupResponse struct {
	Group      []Move `json:"group"`
	HasLiberty bool   `json:"has_liberty"`
}

type captureResponse struct {
	Captured []Move `json:"captured"`
	Count    int    `json:"count"`
	Single   bool   `json:"single"`
}

type eyeResponse struct {
	Eye bool `json:"eye"`
}

func main() {
	LoadConfigFromEnv()
	controller := NewGameController(DefaultGameSettings())
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go hub.Run(ctx.Done())
	go func() {
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if controller.Tick() {
					hub.broadcastStatus <- controllerStatus(controller)
				}
			}
		}
	}()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Get("/api/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Post("/api/start", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Settings GameSettingsDTO `json:"settings"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		settings := settingsFromDTO(payload.Settings, DefaultGameSettings())
		controller.StartGame(settings)
		writeJSON(w, http.StatusOK, controllerStatus(controller))
		hub.broadcastReset <- resetFromController(controller)
	})

	r.Post("/api/stop", func(w http.ResponseWriter, r *http.Request) {
		controller.StopGame()
		writeJSON(w, http.StatusOK, controllerStatus(controller))
		hub.broadcastStatus <- controllerStatus(controller)
	})

	r.Post("/api/settings", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Settings *GameSettingsDTO `json:"settings"`
			Config   *Config          `json:"config"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		if payload.Config != nil {
			configStore.Update(*payload.Config)
		}
		if payload.Settings != nil {
			settings := settingsFromDTO(*payload.Settings, controller.Settings())
			controller.UpdateSettings(settings, false)
		}
		hub.broadcastSettings <- settingsPayload{
			Settings: controllerSettingsDTO(controller.Settings()),
			Config:   GetConfig(),
		}
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Post("/api/move", func(w http.ResponseWriter, r *http.Request) {
		var payload apiMove
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		applied, errMsg := controller.ApplyHumanMove(Move{Row: payload.Row, Col: payload.Col})
		if !applied {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": errMsg})
			return
		}
		hub.broadcastStatus <- controllerStatus(controller)
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Get("/api/legal", func(w http.ResponseWriter, r *http.Request) {
		move, player, err := moveFromQuery(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		legal, reason := controller.ProbeLegal(move, player)
		writeJSON(w, http.StatusOK, legalResponse{Legal: legal, Reason: reason})
	})

	r.Get("/api/empty", func(w http.ResponseWriter, r *http.Request) {
		empty := controller.EmptyPoints()
		writeJSON(w, http.StatusOK, emptyPointsResponse{Empty: empty, Count: len(empty)})
	})

	r.Get("/api/group", func(w http.ResponseWriter, r *http.Request) {
		move, _, err := moveFromQuery(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		group, alive, err := controller.GroupAt(move)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, groupResponse{Group: group, HasLiberty: alive})
	})

	r.Post("/api/capture", func(w http.ResponseWriter, r *http.Request) {
		var payload apiMove
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		captured, single, err := controller.CaptureAt(Move{Row: payload.Row, Col: payload.Col})
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		if len(captured) > 0 {
			hub.broadcastStatus <- controllerStatus(controller)
		}
		writeJSON(w, http.StatusOK, captureResponse{Captured: captured, Count: len(captured), Single: single})
	})

	r.Get("/api/eye", func(w http.ResponseWriter, r *http.Request) {
		move, player, err := moveFromQuery(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		eye, err := controller.EyeAt(move, player)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, eyeResponse{Eye: eye})
	})

	r.Get("/ws/", func(w http.ResponseWriter, r *http.Request) {
		serveWS(hub, controller, w, r)
	})

	addr := ":" + strconv.Itoa(getenvInt("PORT", 8080))
	server := &http.Server{
		Addr:    addr,
		Handler: r,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	log.Printf("[backend] listening on %s", addr)
	var runErr error
	select {
	case <-sigCtx.Done():
		log.Printf("[backend] shutdown signal received: %v", sigCtx.Err())
	case err, ok := <-serverErrCh:
		if ok {
			runErr = err
			log.Printf("[backend] server error: %v", err)
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("[backend] graceful shutdown failed: %v", err)
		if closeErr := server.Close(); closeErr != nil && !errors.Is(closeErr, http.ErrServerClosed) {
			log.Printf("[backend] forced close failed: %v", closeErr)
		}
	}

	cancel()
	if runErr != nil {
		log.Printf("[backend] exiting after server error: %v", runErr)
	}
}

func serveWS(hub *Hub, controller *GameController, w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	client := NewClient(hub)
	hub.Register(client)

	status := controllerStatus(controller)
	client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(status)})

	go func() {
		defer conn.Close()
		if err := client.writePump(conn); err != nil {
			return
		}
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			hub.Unregister(client)
			return
		}
		var msg wsMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			continue
		}
		switch msg.Type {
		case "request_status":
			status := controllerStatus(controller)
			client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(status)})
		}
	}
}

func controllerStatus(controller *GameController) StatusResponse {
	state := controller.State()
	settings := controller.Settings()
	response := StatusResponse{
		Settings:    controllerSettingsDTO(settings),
		Config:      GetConfig(),
		GameID:      state.GameID,
		NextPlayer:  playerToInt(state.ToMove),
		Winner:      winnerFromStatus(state.Status),
		BoardSize:   state.Board.Size(),
		Status:      statusToString(state.Status),
		Board:       boardToSlice(state.Board),
		Message:     state.LastMessage,
		WinningLine: append([]Move(nil), state.WinningLine...),
		EmptyCount:  state.Board.CountEmpty(),
		Hash:        fmt.Sprintf("0x%016x", state.Hash),
	}
	if state.HasLastMove {
		move := state.LastMove
		response.LastMove = &move
	}
	return response
}

func settingsFromDTO(dto GameSettingsDTO, base GameSettings) GameSettings {
	settings := base
	switch dto.Mode {
	case "bot_vs_bot":
		settings.BlackType = PlayerBot
		settings.WhiteType = PlayerBot
	case "human_vs_human":
		settings.BlackType = PlayerHuman
		settings.WhiteType = PlayerHuman
	case "bot_vs_human":
		if dto.HumanPlayer == 2 {
			settings.BlackType = PlayerBot
			settings.WhiteType = PlayerHuman
		} else {
			settings.BlackType = PlayerHuman
			settings.WhiteType = PlayerBot
		}
	}
	if dto.BoardSize > 0 {
		settings.BoardSize = dto.BoardSize
	}
	if dto.WinLength > 0 {
		settings.WinLength = dto.WinLength
	}
	if dto.BlackStarts != nil {
		settings.BlackStarts = *dto.BlackStarts
	}
	return settings.Normalize()
}

func controllerSettingsDTO(settings GameSettings) GameSettingsDTO {
	mode := "bot_vs_human"
	if settings.BlackType == PlayerBot && settings.WhiteType == PlayerBot {
		mode = "bot_vs_bot"
	} else if settings.BlackType == PlayerHuman && settings.WhiteType == PlayerHuman {
		mode = "human_vs_human"
	}
	humanPlayer := 0
	if settings.BlackType == PlayerHuman {
		humanPlayer = 1
	} else if settings.WhiteType == PlayerHuman {
		humanPlayer = 2
	}
	blackStarts := settings.BlackStarts
	return GameSettingsDTO{
		Mode:        mode,
		HumanPlayer: humanPlayer,
		BoardSize:   settings.BoardSize,
		WinLength:   settings.WinLength,
		BlackStarts: &blackStarts,
	}
}

func boardToSlice(board Board) [][]int {
	size := board.Size()
	rows := make([][]int, size)
	for row := 1; row <= size; row++ {
		cols := make([]int, size)
		for col := 1; col <= size; col++ {
			cols[col-1] = cellToInt(board.Color(board.Pt(row, col)))
		}
		rows[row-1] = cols
	}
	return rows
}

func cellToInt(cell Cell) int {
	switch cell {
	case CellBlack:
		return 1
	case CellWhite:
		return 2
	default:
		return 0
	}
}

func playerToInt(player PlayerColor) int {
	if player == PlayerBlack {
		return 1
	}
	return 2
}

func intToPlayer(value int) PlayerColor {
	if value == 2 {
		return PlayerWhite
	}
	return PlayerBlack
}

func winnerFromStatus(status GameStatus) int {
	switch status {
	case StatusBlackWon:
		return 1
	case StatusWhiteWon:
		return 2
	default:
		return 0
	}
}

func statusToString(status GameStatus) string {
	switch status {
	case StatusNotStarted:
		return "not_started"
	case StatusBlackWon:
		return "black_won"
	case StatusWhiteWon:
		return "white_won"
	case StatusDraw:
		return "draw"
	default:
		return "running"
	}
}

func moveFromQuery(r *http.Request) (Move, PlayerColor, error) {
	row, err := strconv.Atoi(r.URL.Query().Get("row"))
	if err != nil {
		return Move{}, PlayerBlack, errors.New("invalid row")
	}
	col, err := strconv.Atoi(r.URL.Query().Get("col"))
	if err != nil {
		return Move{}, PlayerBlack, errors.New("invalid col")
	}
	player := PlayerBlack
	if raw := r.URL.Query().Get("player"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || (value != 1 && value != 2) {
			return Move{}, PlayerBlack, errors.New("invalid player")
		}
		player = intToPlayer(value)
	}
	return Move{Row: row, Col: col}, player, nil
}

func resetFromController(controller *GameController) resetPayload {
	state := controller.State()
	return resetPayload{
		GameID:     state.GameID,
		NextPlayer: playerToInt(state.ToMove),
		Winner:     winnerFromStatus(state.Status),
		Status:     statusToString(state.Status),
		BoardSize:  state.Board.Size(),
		Board:      boardToSlice(state.Board),
	}
}

func mustMarshal(v any) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
