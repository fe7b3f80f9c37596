package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"trucosrv/bot"
	"trucosrv/cards"
	"trucosrv/domain"
	"trucosrv/events"
	"trucosrv/game"
	"trucosrv/server/connection"
	serverevents "trucosrv/server/events"
	"trucosrv/server/handlers"
	"trucosrv/store"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // In production, implement proper origin checks
	},
}

// Server represents the WebSocket server
type Server struct {
	engine     *game.Engine
	connMgr    *connection.Manager
	cmdRouter  *handlers.CommandRouter
	dispatcher *serverevents.Dispatcher
}

// GameResponse represents a game in API responses
type GameResponse struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	HandNumber int    `json:"handNumber"`
	ScoreTeam0 int    `json:"scoreTeam0"`
	ScoreTeam1 int    `json:"scoreTeam1"`
}

// CreateGameRequest represents the request to create a new game
type CreateGameRequest struct {
	PlayerName string `json:"playerName"`
}

// corsMiddleware adds CORS headers to all responses
func corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

// NewServer creates a new truco WebSocket server with the default rules and
// the standard bot brain behind every computer seat.
func NewServer() *Server {
	connMgr := connection.NewManager()
	broker := events.NewBroker()

	engine := game.NewEngine(
		store.NewInMemoryGameStore(),
		broker,
		events.NewInMemoryEventLog(),
		bot.NewStandardBrain(),
		domain.DefaultRules(),
		cards.DefaultStrengthTable(),
	)

	dispatcher := serverevents.NewDispatcher(connMgr, engine)
	dispatcher.Register(broker)

	cmdRouter := handlers.NewCommandRouter(engine, connMgr)

	return &Server{
		engine:     engine,
		connMgr:    connMgr,
		cmdRouter:  cmdRouter,
		dispatcher: dispatcher,
	}
}

// Start begins the server on the specified port
func (s *Server) Start(port string) error {
	// Start connection manager in its own goroutine
	go s.connMgr.Start()

	http.HandleFunc("/ws", s.handleWebSocket)
	http.HandleFunc("/api/games", corsMiddleware(s.handleGetGames))
	http.HandleFunc("/api/games/create", corsMiddleware(s.handleCreateGame))

	log.Printf("Starting server on port %s", port)
	return http.ListenAndServe("0.0.0.0:"+port, nil)
}

// handleWebSocket handles incoming WebSocket connections
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Error upgrading to WebSocket: %v", err)
		return
	}

	clientID := uuid.NewString()
	log.Printf("New client connected: %s with ID: %s", r.RemoteAddr, clientID)

	client := &connection.Client{
		ID:   clientID,
		Conn: conn,
		Send: make(chan []byte, 256),
		Seat: connection.SeatNone,
	}

	// Register with connection manager
	s.connMgr.Register <- client

	go s.readPump(client)
	go s.writePump(client)
	go s.keepAlive(client)
}

// readPump reads messages from the WebSocket connection
func (s *Server) readPump(client *connection.Client) {
	defer func() {
		s.connMgr.Unregister <- client
		client.Conn.Close()
	}()

	for {
		_, message, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("Error: %v", err)
			}
			break
		}

		if err := s.cmdRouter.HandleCommand(client, message); err != nil {
			log.Printf("Error handling command: %v", err)
		}
	}
}

// writePump sends messages to the WebSocket connection
func (s *Server) writePump(client *connection.Client) {
	defer func() {
		client.Conn.Close()
	}()

	for {
		message, ok := <-client.Send
		if !ok {
			client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		err := client.Conn.WriteMessage(websocket.TextMessage, message)
		if err != nil {
			log.Printf("Error writing message: %v", err)
			return
		}
	}
}

func (s *Server) keepAlive(client *connection.Client) {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		if err := client.Conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second)); err != nil {
			return // Exit if we can't write to the client
		}
	}
}

// handleGetGames returns a list of all games
func (s *Server) handleGetGames(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	summaries := s.engine.ListGames()
	gameResponses := make([]GameResponse, 0, len(summaries))
	for _, summary := range summaries {
		gameResponses = append(gameResponses, GameResponse{
			ID:         summary.ID,
			Status:     string(summary.Status),
			HandNumber: summary.HandNumber,
			ScoreTeam0: summary.Scores[0],
			ScoreTeam1: summary.Scores[1],
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(gameResponses)
}

// handleCreateGame creates a new game against three bots
func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var createReq CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if createReq.PlayerName == "" {
		http.Error(w, "Player name is required", http.StatusBadRequest)
		return
	}

	view, err := s.engine.CreateGame(createReq.PlayerName)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(view)
}
