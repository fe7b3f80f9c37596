package handlers

import (
	"encoding/json"
	"errors"
	"fmt"

	"trucosrv/domain"
	"trucosrv/domain/commands"
	"trucosrv/game"
	"trucosrv/server/connection"
)

// CommandRouter routes incoming commands to the appropriate handler
type CommandRouter struct {
	engine  *game.Engine
	connMgr *connection.Manager
}

// NewCommandRouter creates a new command router
func NewCommandRouter(engine *game.Engine, connMgr *connection.Manager) *CommandRouter {
	return &CommandRouter{
		engine:  engine,
		connMgr: connMgr,
	}
}

// responseEnvelope is the shape of every message the router sends back
type responseEnvelope struct {
	Name    string      `json:"name"`
	Payload interface{} `json:"payload"`
}

// rejection tells the client which command failed and why
type rejection struct {
	Command string `json:"command"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// HandleCommand processes an incoming command message
func (r *CommandRouter) HandleCommand(client *connection.Client, message []byte) error {
	// First determine command type
	var baseCmd struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(message, &baseCmd); err != nil {
		return err
	}

	var err error
	switch baseCmd.Name {
	case commands.CreateGame{}.Name():
		var cmd commands.CreateGame
		if err = json.Unmarshal(message, &cmd); err == nil {
			err = r.handleCreateGame(client, cmd)
		}

	case commands.JoinGame{}.Name():
		var cmd commands.JoinGame
		if err = json.Unmarshal(message, &cmd); err == nil {
			err = r.handleJoinGame(client, cmd)
		}

	case commands.PlayCard{}.Name():
		var cmd commands.PlayCard
		if err = json.Unmarshal(message, &cmd); err == nil {
			err = r.handlePlayCard(client, cmd)
		}

	case commands.RaiseWager{}.Name():
		var cmd commands.RaiseWager
		if err = json.Unmarshal(message, &cmd); err == nil {
			err = r.engine.RaiseWager(cmd.GameID, cmd.Seat)
		}

	case commands.AcceptWager{}.Name():
		var cmd commands.AcceptWager
		if err = json.Unmarshal(message, &cmd); err == nil {
			err = r.engine.AcceptWager(cmd.GameID, cmd.Seat)
		}

	case commands.SurrenderHand{}.Name():
		var cmd commands.SurrenderHand
		if err = json.Unmarshal(message, &cmd); err == nil {
			err = r.engine.SurrenderHand(cmd.GameID, cmd.Seat)
		}

	case commands.StartNewHand{}.Name():
		var cmd commands.StartNewHand
		if err = json.Unmarshal(message, &cmd); err == nil {
			err = r.engine.StartNewHand(cmd.GameID)
		}

	case commands.GetGameState{}.Name():
		var cmd commands.GetGameState
		if err = json.Unmarshal(message, &cmd); err == nil {
			err = r.handleGetGameState(client, cmd)
		}

	default:
		fmt.Println("unknown command type", baseCmd.Name)
		return errors.New("unknown command type")
	}

	// Rule failures go back to the offending client; everything else
	// bubbles up to the read pump.
	var ruleErr *domain.RuleError
	if errors.As(err, &ruleErr) {
		r.sendRejection(client, baseCmd.Name, ruleErr)
		return nil
	}
	return err
}

func (r *CommandRouter) handleCreateGame(client *connection.Client, cmd commands.CreateGame) error {
	name := cmd.PlayerName
	if name == "" {
		name = "Player"
	}

	view, err := r.engine.CreateGame(name)
	if err != nil {
		return err
	}

	client.PlayerName = name
	r.connMgr.BindGame(client.ID, view.GameID, 0)
	return r.sendView(client, view)
}

func (r *CommandRouter) handleJoinGame(client *connection.Client, cmd commands.JoinGame) error {
	seat := cmd.Seat
	if seat < 0 || seat >= domain.NumSeats {
		seat = connection.SeatNone
	}

	view, err := r.engine.View(cmd.GameID, seat)
	if err != nil {
		return err
	}

	if cmd.PlayerName != "" {
		client.PlayerName = cmd.PlayerName
	}
	r.connMgr.BindGame(client.ID, cmd.GameID, seat)
	return r.sendView(client, view)
}

func (r *CommandRouter) handlePlayCard(client *connection.Client, cmd commands.PlayCard) error {
	view, err := r.engine.PlayCard(cmd.GameID, cmd.Seat, cmd.CardIndex, cmd.Fold)
	if err != nil {
		return err
	}
	return r.sendView(client, view)
}

func (r *CommandRouter) handleGetGameState(client *connection.Client, cmd commands.GetGameState) error {
	view, err := r.engine.View(cmd.GameID, cmd.Seat)
	if err != nil {
		return err
	}
	return r.sendView(client, view)
}

func (r *CommandRouter) sendView(client *connection.Client, view domain.GameView) error {
	data, err := json.Marshal(responseEnvelope{Name: "GAME_STATE", Payload: view})
	if err != nil {
		return err
	}
	r.connMgr.SendToClient(client.ID, data)
	return nil
}

func (r *CommandRouter) sendRejection(client *connection.Client, command string, ruleErr *domain.RuleError) {
	data, err := json.Marshal(responseEnvelope{
		Name: "COMMAND_REJECTED",
		Payload: rejection{
			Command: command,
			Kind:    string(ruleErr.Kind),
			Message: ruleErr.Message,
		},
	})
	if err != nil {
		return
	}
	r.connMgr.SendToClient(client.ID, data)
}
