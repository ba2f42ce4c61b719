package network

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/opd-ai/go-empire/pkg/config"
	"github.com/opd-ai/go-empire/pkg/engine"
	"github.com/opd-ai/go-empire/pkg/entity"
	"github.com/opd-ai/go-empire/pkg/event"
	"github.com/opd-ai/go-empire/pkg/logging"
	"github.com/opd-ai/go-empire/pkg/rules"
	"github.com/opd-ai/go-empire/pkg/validation"
	"github.com/opd-ai/go-empire/pkg/world"
)

// Client is one websocket connection.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
	id   string
}

// inbound pairs a raw message with the client that sent it.
type inbound struct {
	client *Client
	data   []byte
}

// Hub owns all connections and serializes every intent onto one goroutine,
// preserving the engine's single-writer discipline.
type Hub struct {
	game      *engine.Game
	cfg       config.BridgeConfig
	logger    *logging.Logger
	validator *validation.MessageValidator
	upgrader  websocket.Upgrader

	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	intents    chan inbound
	done       chan struct{}
}

// NewHub creates a hub serving the given game.
func NewHub(game *engine.Game, cfg config.BridgeConfig, logger *logging.Logger) *Hub {
	h := &Hub{
		game:       game,
		cfg:        cfg,
		logger:     logger,
		validator:  validation.NewMessageValidator(),
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 256),
		intents:    make(chan inbound, 64),
		done:       make(chan struct{}),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		// The bridge serves a local UI; origin checks are the deployment's
		// reverse proxy's job.
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	game.EventBus().SubscribeAll(h.forwardEvent)
	return h
}

// Run processes registrations and intents until the context is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			// Closing done releases any read loop blocked on a channel send;
			// nothing drains register, unregister, or intents after this.
			close(h.done)
			h.validator.Close()
			for c := range h.clients {
				close(c.send)
				c.conn.Close()
			}
			return
		case c := <-h.register:
			h.clients[c] = true
			c.send <- mustMarshal(MsgState, h.game.GameState())
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
		case msg := <-h.broadcast:
			h.fanOut(msg)
		case in := <-h.intents:
			h.handleIntent(ctx, in)
		}
	}
}

func (h *Hub) fanOut(msg []byte) {
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			// Slow consumer; drop it.
			delete(h.clients, c)
			close(c.send)
		}
	}
}

// forwardEvent pushes a domain event to all clients. Events fire from inside
// intent handling, so this never blocks: a full broadcast buffer drops the
// event rather than deadlocking the run loop.
func (h *Hub) forwardEvent(e event.Event) {
	msg := mustMarshal(MsgEvent, EventMessage{Event: string(e.GetType()), Detail: e})
	select {
	case h.broadcast <- msg:
	default:
	}
}

// ServeWS upgrades an HTTP request to a websocket client.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error(r.Context(), "websocket upgrade failed", err)
		return
	}
	c := &Client{hub: h, conn: conn, send: make(chan []byte, 64), id: conn.RemoteAddr().String()}
	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	}
	go c.writeLoop()
	go c.readLoop()
}

func (c *Client) readLoop() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()
	c.conn.SetReadLimit(c.hub.cfg.MaxMessageBytes)
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		select {
		case c.hub.intents <- inbound{client: c, data: data}:
		case <-c.hub.done:
			return
		}
	}
}

func (c *Client) writeLoop() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

// handleIntent validates, decodes, and applies one intent, then answers the
// sender with the result and broadcasts a fresh snapshot on acceptance.
func (h *Hub) handleIntent(ctx context.Context, in inbound) {
	if err := h.validator.ValidateMessage(in.data, in.client.id); err != nil {
		h.reply(in.client, mustMarshal(MsgError, ErrorMessage{Reason: err.Error()}))
		return
	}
	var env Envelope
	if err := json.Unmarshal(in.data, &env); err != nil {
		h.reply(in.client, mustMarshal(MsgError, ErrorMessage{Reason: "malformed envelope"}))
		return
	}

	if env.Type == MsgGetState {
		h.reply(in.client, mustMarshal(MsgState, h.game.GameState()))
		return
	}

	accepted, ok := h.apply(ctx, env)
	if !ok {
		h.reply(in.client, mustMarshal(MsgError, ErrorMessage{Reason: "unknown intent " + env.Type}))
		return
	}
	h.reply(in.client, mustMarshal(MsgEvent, ResultMessage{Intent: env.Type, Accepted: accepted}))
	if accepted {
		h.fanOut(mustMarshal(MsgState, h.game.GameState()))
	}
}

// apply dispatches an intent to the engine. The second return is false for
// unknown or malformed intent types; the first mirrors the engine's
// accept/reject boolean.
func (h *Hub) apply(ctx context.Context, env Envelope) (accepted, ok bool) {
	// Human input is dropped while an AI player is active.
	if h.game.IsCurrentPlayerAI() && env.Type != MsgEndTurn {
		return false, true
	}
	switch env.Type {
	case MsgMoveUnit:
		var p MoveUnitIntent
		if json.Unmarshal(env.Payload, &p) != nil || validation.ValidateEntityID(p.UnitID) != nil {
			return false, false
		}
		return h.game.MoveUnit(entity.ID(p.UnitID), world.Position{X: p.X, Y: p.Y}), true
	case MsgAttackUnit:
		var p AttackIntent
		if json.Unmarshal(env.Payload, &p) != nil {
			return false, false
		}
		return h.game.AttackUnit(entity.ID(p.AttackerID), entity.ID(p.DefenderID)) != nil, true
	case MsgFoundCity:
		var p FoundCityIntent
		if json.Unmarshal(env.Payload, &p) != nil {
			return false, false
		}
		name, err := validation.ValidateCityName(p.Name)
		if err != nil {
			return false, false
		}
		return h.game.FoundCity(entity.ID(p.UnitID), name) != nil, true
	case MsgFortifyUnit:
		var p UnitIntent
		if json.Unmarshal(env.Payload, &p) != nil {
			return false, false
		}
		return h.game.FortifyUnit(entity.ID(p.UnitID)), true
	case MsgSleepUnit:
		var p UnitIntent
		if json.Unmarshal(env.Payload, &p) != nil {
			return false, false
		}
		return h.game.SleepUnit(entity.ID(p.UnitID)), true
	case MsgWakeUnit:
		var p UnitIntent
		if json.Unmarshal(env.Payload, &p) != nil {
			return false, false
		}
		return h.game.WakeUnit(entity.ID(p.UnitID)), true
	case MsgBuildImprovement:
		var p BuildImprovementIntent
		if json.Unmarshal(env.Payload, &p) != nil {
			return false, false
		}
		id := entity.ID(p.UnitID)
		switch p.Improvement {
		case "road":
			return h.game.BuildRoad(id), true
		case "irrigation":
			return h.game.BuildIrrigation(id), true
		case "mine":
			return h.game.BuildMine(id), true
		case "fortress":
			return h.game.BuildFortress(id), true
		}
		return false, false
	case MsgSetProduction:
		var p SetProductionIntent
		if json.Unmarshal(env.Payload, &p) != nil {
			return false, false
		}
		prod := entity.Production{}
		switch p.Kind {
		case "unit":
			prod.Kind = entity.ProduceUnit
			prod.Unit = rules.UnitType(p.Unit)
		case "building":
			prod.Kind = entity.ProduceBuilding
			prod.Building = rules.BuildingType(p.Building)
		case "wonder":
			prod.Kind = entity.ProduceWonder
			prod.Building = rules.BuildingType(p.Building)
		default:
			return false, false
		}
		return h.game.ChangeCityProduction(entity.ID(p.CityID), prod), true
	case MsgSetResearch:
		var p SetResearchIntent
		if json.Unmarshal(env.Payload, &p) != nil {
			return false, false
		}
		return h.game.SetCurrentResearch(p.PlayerID, rules.TechType(p.Tech)), true
	case MsgStartRevolution:
		var p PlayerIntent
		if json.Unmarshal(env.Payload, &p) != nil {
			return false, false
		}
		return h.game.StartRevolution(p.PlayerID), true
	case MsgChangeGovernment:
		var p GovernmentIntent
		if json.Unmarshal(env.Payload, &p) != nil {
			return false, false
		}
		return h.game.ChangeGovernment(p.PlayerID, rules.GovernmentType(p.Government)), true
	case MsgSelectNext:
		h.game.SelectNextUnit()
		return true, true
	case MsgSelectPrevious:
		h.game.SelectPreviousUnit()
		return true, true
	case MsgSkipUnit:
		h.game.SkipUnit()
		return true, true
	case MsgEndTurn:
		h.game.EndTurn(ctx)
		return true, true
	}
	return false, false
}

func (h *Hub) reply(c *Client, msg []byte) {
	select {
	case c.send <- msg:
	default:
	}
}
