package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type apiClient struct {
	client  *http.Client
	baseURL string
}

type settingsDTO struct {
	Mode        string `json:"mode"`
	HumanPlayer int    `json:"human_player"`
	BoardSize   int    `json:"board_size"`
	WinLength   int    `json:"win_length"`
	BlackStarts *bool  `json:"black_starts,omitempty"`
}

type moveDTO struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type statusResponse struct {
	Settings    settingsDTO `json:"settings"`
	GameID      string      `json:"game_id"`
	NextPlayer  int         `json:"next_player"`
	Winner      int         `json:"winner"`
	BoardSize   int         `json:"board_size"`
	Status      string      `json:"status"`
	Board       [][]int     `json:"board"`
	Message     string      `json:"message"`
	WinningLine []moveDTO   `json:"winning_line"`
	EmptyCount  int         `json:"empty_count"`
	Hash        string      `json:"hash"`
}

type legalResponse struct {
	Legal  bool   `json:"legal"`
	Reason string `json:"reason"`
}

type groupResponse struct {
	Group      []moveDTO `json:"group"`
	HasLiberty bool      `json:"has_liberty"`
}

type captureResponse struct {
	Captured []moveDTO `json:"captured"`
	Count    int       `json:"count"`
	Single   bool      `json:"single"`
}

type eyeResponse struct {
	Eye bool `json:"eye"`
}

func newAPIClient(baseURL string) *apiClient {
	return &apiClient{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (c *apiClient) getJSON(path string, out any) error {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("GET %s -> %d: %s", path, resp.StatusCode, apiErrorText(body))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *apiClient) postJSON(path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("POST %s -> %d: %s", path, resp.StatusCode, apiErrorText(respBody))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// apiErrorText pulls the error field out of a JSON error body when present.
func apiErrorText(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return string(body)
}

func (c *apiClient) status() (statusResponse, error) {
	var status statusResponse
	err := c.getJSON("/api/status", &status)
	return status, err
}

func (c *apiClient) startGame(settings settingsDTO) error {
	payload := struct {
		Settings settingsDTO `json:"settings"`
	}{Settings: settings}
	return c.postJSON("/api/start", payload, nil)
}

func (c *apiClient) stopGame() error {
	return c.postJSON("/api/stop", struct{}{}, nil)
}

func (c *apiClient) playMove(row, col int) error {
	return c.postJSON("/api/move", moveDTO{Row: row, Col: col}, nil)
}

func (c *apiClient) probeLegal(row, col, player int) (legalResponse, error) {
	var result legalResponse
	err := c.getJSON(fmt.Sprintf("/api/legal?row=%d&col=%d&player=%d", row, col, player), &result)
	return result, err
}

func (c *apiClient) groupAt(row, col int) (groupResponse, error) {
	var result groupResponse
	err := c.getJSON(fmt.Sprintf("/api/group?row=%d&col=%d", row, col), &result)
	return result, err
}

func (c *apiClient) captureAt(row, col int) (captureResponse, error) {
	var result captureResponse
	err := c.postJSON("/api/capture", moveDTO{Row: row, Col: col}, &result)
	return result, err
}

func (c *apiClient) eyeAt(row, col, player int) (eyeResponse, error) {
	var result eyeResponse
	err := c.getJSON(fmt.Sprintf("/api/eye?row=%d&col=%d&player=%d", row, col, player), &result)
	return result, err
}

func main() {
	baseURL := getenv("BACKEND_URL", "http://localhost:8080")
	api := newAPIClient(baseURL)
	app := tview.NewApplication()

	boardSizeOption := 9
	winLengthOption := 5
	modeOption := "bot_vs_human"
	humanPlayerOption := 1
	blackStarts := true

	var showStartScreen func()
	var startGame func()
	refresh := make(chan struct{}, 1)

	boardTable := tview.NewTable()
	boardTable.SetSelectable(true, true)
	boardTable.SetBorder(true)
	boardTable.SetTitleAlign(tview.AlignLeft)
	boardTable.SetBorderColor(tcell.ColorGreen)
	boardTable.SetBorders(true)

	sideBox := tview.NewTextView()
	sideBox.SetBorder(true)
	sideBox.SetTitle("Game")
	sideBox.SetDynamicColors(true)

	helpBox := tview.NewTextView()
	helpBox.SetBorder(true)
	helpBox.SetTitle("Keys")
	helpBox.SetText("enter  play move\nl      check legality\ng      show group\nc      try capture\ne      check eye\nn      new game\nq      quit")

	flex := tview.NewFlex().
		AddItem(boardTable, 0, 2, true).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(sideBox, 0, 1, false).
			AddItem(helpBox, 9, 0, false), 40, 1, false)

	sideText := ""

	renderStatus := func(status statusResponse) {
		size := status.BoardSize
		winning := make(map[moveDTO]bool, len(status.WinningLine))
		for _, m := range status.WinningLine {
			winning[m] = true
		}
		for row := 1; row <= size; row++ {
			for col := 1; col <= size; col++ {
				value := 0
				if row-1 < len(status.Board) && col-1 < len(status.Board[row-1]) {
					value = status.Board[row-1][col-1]
				}
				cell := tview.NewTableCell(stoneSymbol(value))
				cell.SetAlign(tview.AlignCenter)
				if winning[moveDTO{Row: row, Col: col}] {
					cell.SetBackgroundColor(tcell.ColorDarkGreen)
				}
				boardTable.SetCell(row-1, col-1, cell)
			}
		}
		boardTable.SetTitle(fmt.Sprintf(" %s - %s to move ", strings.ReplaceAll(status.Status, "_", " "), playerName(status.NextPlayer)))
		lines := []string{
			fmt.Sprintf("game    %s", shortID(status.GameID)),
			fmt.Sprintf("status  %s", status.Status),
			fmt.Sprintf("to move %s", playerName(status.NextPlayer)),
			fmt.Sprintf("empty   %d", status.EmptyCount),
			fmt.Sprintf("win len %d", status.Settings.WinLength),
		}
		if status.Winner != 0 {
			lines = append(lines, fmt.Sprintf("[green]winner  %s[-]", playerName(status.Winner)))
		}
		if status.Message != "" {
			lines = append(lines, "", status.Message)
		}
		sideText = strings.Join(lines, "\n")
		sideBox.SetText(sideText)
	}

	showNote := func(format string, args ...any) {
		sideBox.SetText(sideText + "\n\n" + fmt.Sprintf(format, args...))
	}

	selectedMove := func() (int, int) {
		row, col := boardTable.GetSelection()
		return row + 1, col + 1
	}

	boardTable.SetSelectedFunc(func(row, col int) {
		if err := api.playMove(row+1, col+1); err != nil {
			showNote("move rejected: %v", err)
		}
	})

	boardTable.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Rune() {
		case 'l':
			row, col := selectedMove()
			status, err := api.status()
			if err != nil {
				showNote("status failed: %v", err)
				return nil
			}
			result, err := api.probeLegal(row, col, status.NextPlayer)
			if err != nil {
				showNote("legal probe failed: %v", err)
				return nil
			}
			if result.Legal {
				showNote("(%d,%d) is legal for %s", row, col, playerName(status.NextPlayer))
			} else {
				showNote("(%d,%d) is illegal: %s", row, col, result.Reason)
			}
			return nil
		case 'g':
			row, col := selectedMove()
			result, err := api.groupAt(row, col)
			if err != nil {
				showNote("group probe failed: %v", err)
				return nil
			}
			liberty := "no liberty"
			if result.HasLiberty {
				liberty = "has liberty"
			}
			showNote("group of %d stones, %s", len(result.Group), liberty)
			return nil
		case 'c':
			row, col := selectedMove()
			result, err := api.captureAt(row, col)
			if err != nil {
				showNote("capture failed: %v", err)
				return nil
			}
			if result.Count == 0 {
				showNote("no capture at (%d,%d)", row, col)
			} else {
				showNote("captured %d stones (single=%v)", result.Count, result.Single)
			}
			return nil
		case 'e':
			row, col := selectedMove()
			status, err := api.status()
			if err != nil {
				showNote("status failed: %v", err)
				return nil
			}
			result, err := api.eyeAt(row, col, status.NextPlayer)
			if err != nil {
				showNote("eye probe failed: %v", err)
				return nil
			}
			showNote("(%d,%d) simple eye for %s: %v", row, col, playerName(status.NextPlayer), result.Eye)
			return nil
		case 'n':
			if err := api.stopGame(); err != nil {
				log.Printf("[tui] stop failed: %v", err)
			}
			showStartScreen()
			return nil
		case 'q':
			app.Stop()
			return nil
		}
		return event
	})

	showStartScreen = func() {
		form := tview.NewForm()
		form.
			AddDropDown("Mode", []string{"Play the bot", "Watch bots", "Two humans"}, 0, func(option string, index int) {
				switch index {
				case 1:
					modeOption = "bot_vs_bot"
				case 2:
					modeOption = "human_vs_human"
				default:
					modeOption = "bot_vs_human"
				}
			}).
			AddDropDown("Your color", []string{"Black", "White"}, 0, func(option string, index int) {
				humanPlayerOption = index + 1
			}).
			AddDropDown("Board size", []string{"5", "7", "9", "13", "19"}, 2, func(option string, index int) {
				boardSizeOption, _ = strconv.Atoi(option)
			}).
			AddDropDown("Stones to win", []string{"3", "4", "5", "6"}, 2, func(option string, index int) {
				winLengthOption, _ = strconv.Atoi(option)
			}).
			AddCheckbox("Black starts", true, func(checked bool) {
				blackStarts = checked
			}).
			AddButton("Start Game", func() {
				startGame()
			}).
			AddButton("Quit", func() {
				app.Stop()
			})
		form.SetBorder(true).SetTitle("Gomoku496").SetTitleAlign(tview.AlignCenter)
		app.SetRoot(form, true).SetFocus(form)
	}

	startGame = func() {
		starts := blackStarts
		settings := settingsDTO{
			Mode:        modeOption,
			HumanPlayer: humanPlayerOption,
			BoardSize:   boardSizeOption,
			WinLength:   winLengthOption,
			BlackStarts: &starts,
		}
		if err := api.startGame(settings); err != nil {
			log.Printf("[tui] start failed: %v", err)
			return
		}
		boardTable.Clear()
		boardTable.Select(0, 0)
		app.SetRoot(flex, true).SetFocus(boardTable)
		select {
		case refresh <- struct{}{}:
		default:
		}
	}

	go func() {
		ticker := time.NewTicker(250 * time.Millisecond)
		defer ticker.Stop()
		lastHash := ""
		lastStatus := ""
		for {
			select {
			case <-refresh:
				lastHash, lastStatus = "", ""
			case <-ticker.C:
			}
			status, err := api.status()
			if err != nil {
				continue
			}
			if status.Hash == lastHash && status.Status == lastStatus {
				continue
			}
			lastHash = status.Hash
			lastStatus = status.Status
			app.QueueUpdateDraw(func() {
				renderStatus(status)
			})
		}
	}()

	showStartScreen()

	if err := app.Run(); err != nil {
		log.Fatalf("[tui] terminal ui failed: %v", err)
	}
}

func stoneSymbol(value int) string {
	switch value {
	case 1:
		return " ⚫ "
	case 2:
		return " ⚪ "
	default:
		return "    "
	}
}

func playerName(value int) string {
	switch value {
	case 1:
		return "Black"
	case 2:
		return "White"
	default:
		return "nobody"
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
