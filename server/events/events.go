package events

import (
	"encoding/json"
	"log"

	devents "trucosrv/domain/events"
	"trucosrv/events"
	"trucosrv/game"
	"trucosrv/server/connection"
)

// Client pushes run after the engine's own flow and bot handlers
const priorityClient = 30

// clientEventNames lists every event forwarded to connected players
var clientEventNames = []string{
	"GAME_STARTED",
	"GAME_ENDED",
	"HAND_STARTED",
	"HAND_COMPLETED",
	"ROUND_STARTED",
	"ROUND_COMPLETED",
	"CARD_PLAYED",
	"PLAYER_TURN_STARTED",
	"WAGER_RAISED",
	"WAGER_ACCEPTED",
	"HAND_FOLDED",
}

// EventEnvelope wraps an event with its name for client consumption
type EventEnvelope struct {
	Name    string          `json:"name"`
	Payload json.RawMessage `json:"payload"`
}

// Dispatcher pushes committed game events to the connections bound to each
// game. Events carry only public information; concealed hands travel in
// per-seat views.
type Dispatcher struct {
	connMgr *connection.Manager
	engine  *game.Engine
}

// NewDispatcher creates a new event dispatcher
func NewDispatcher(connMgr *connection.Manager, engine *game.Engine) *Dispatcher {
	return &Dispatcher{
		connMgr: connMgr,
		engine:  engine,
	}
}

// Register subscribes the dispatcher to every client-facing event
func (d *Dispatcher) Register(broker *events.Broker) {
	for _, name := range clientEventNames {
		broker.Subscribe(name, priorityClient, d.HandleEvent)
	}
}

// HandleEvent forwards a domain event to every connection at its game
func (d *Dispatcher) HandleEvent(event devents.Event) {
	gameID := devents.ExtractGameID(event)
	if gameID == "" {
		return
	}

	eventPayload, err := json.Marshal(event)
	if err != nil {
		log.Println("Failed to marshal event payload:", err)
		return
	}

	envelopeData, err := json.Marshal(EventEnvelope{
		Name:    event.Name(),
		Payload: eventPayload,
	})
	if err != nil {
		log.Println("Failed to marshal event envelope:", err)
		return
	}

	d.connMgr.SendToGame(gameID, envelopeData)

	// A fresh deal only exists inside per-seat views, so each connection
	// gets its own snapshot after the broadcast.
	if _, ok := event.(devents.HandStarted); ok {
		d.pushViews(gameID)
	}
}

func (d *Dispatcher) pushViews(gameID string) {
	for _, seated := range d.connMgr.AtGame(gameID) {
		view, err := d.engine.View(gameID, seated.Seat)
		if err != nil {
			log.Printf("failed to build view of game %s for seat %d: %v", gameID, seated.Seat, err)
			continue
		}

		data, err := json.Marshal(struct {
			Name    string      `json:"name"`
			Payload interface{} `json:"payload"`
		}{Name: "GAME_STATE", Payload: view})
		if err != nil {
			log.Println("Failed to marshal game state:", err)
			continue
		}
		d.connMgr.SendToClient(seated.ClientID, data)
	}
}
