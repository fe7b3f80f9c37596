package commands

// Command is a client request routed by name
type Command interface {
	Name() string
}

type CreateGame struct {
	PlayerName string `json:"playerName"`
}

func (c CreateGame) Name() string { return "CREATE_GAME" }

type JoinGame struct {
	GameID     string `json:"gameId"`
	PlayerName string `json:"playerName"`
	Seat       int    `json:"seat"`
}

func (j JoinGame) Name() string { return "JOIN_GAME" }

type PlayCard struct {
	GameID    string `json:"gameId"`
	Seat      int    `json:"seat"`
	CardIndex int    `json:"cardIndex"`
	Fold      bool   `json:"fold"`
}

func (p PlayCard) Name() string { return "PLAY_CARD" }

type RaiseWager struct {
	GameID string `json:"gameId"`
	Seat   int    `json:"seat"`
}

func (r RaiseWager) Name() string { return "RAISE_WAGER" }

type AcceptWager struct {
	GameID string `json:"gameId"`
	Seat   int    `json:"seat"`
}

func (a AcceptWager) Name() string { return "ACCEPT_WAGER" }

type SurrenderHand struct {
	GameID string `json:"gameId"`
	Seat   int    `json:"seat"`
}

func (s SurrenderHand) Name() string { return "SURRENDER_HAND" }

type StartNewHand struct {
	GameID string `json:"gameId"`
	Seat   int    `json:"seat"`
}

func (s StartNewHand) Name() string { return "START_NEW_HAND" }

type GetGameState struct {
	GameID string `json:"gameId"`
	Seat   int    `json:"seat"`
}

func (g GetGameState) Name() string { return "GET_GAME_STATE" }
