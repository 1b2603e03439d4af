package main

// Wire messages, one JSON object per websocket text frame. The method
// field discriminates; shapes match what the browser client expects.

type joinMessage struct {
	Method string `json:"method"`
	Symbol string `json:"symbol"`
	Turn   string `json:"turn"`
}

type moveMessage struct {
	Method string `json:"method"`
	Symbol string `json:"symbol"`
	Field  Board  `json:"field"`
}

type updateMessage struct {
	Method string `json:"method"`
	Turn   string `json:"turn"`
	Field  Board  `json:"field"`
}

type resultMessage struct {
	Method  string `json:"method"`
	Message string `json:"message"`
	Field   Board  `json:"field"`
}

type leftMessage struct {
	Method  string `json:"method"`
	Message string `json:"message"`
}

type leaderboardMessage struct {
	Method      string           `json:"method"`
	Leaderboard []LeaderboardRow `json:"leaderboard"`
}
