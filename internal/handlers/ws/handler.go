// Package ws exposes the game service over a websocket JSON protocol.
// Clients send envelopes of the form {"type": ..., "payload": ...} and
// receive one response envelope per request.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/matryer/way"

	"github.com/manorgames/manor-api/internal/entities"
	"github.com/manorgames/manor-api/internal/errors"
	game "github.com/manorgames/manor-api/internal/orchestrators/game"
)

// Request types
const (
	TypeStartGame         = "start_game"
	TypeRequestMove       = "request_move"
	TypeRequestSuggestion = "request_suggestion"
	TypeRequestAccusation = "request_accusation"
	TypeEndTurn           = "end_turn"
	TypeGetState          = "get_state"
	TypeHand              = "hand"
	TypeHover             = "hover"
	TypeTileKind          = "tile_kind"
	TypeError             = "error"
)

// Envelope is the wire frame for every message in both directions
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Config holds the dependencies for the websocket handler
type Config struct {
	GameService game.Service
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.GameService == nil {
		return errors.InvalidArgument("game service is required")
	}
	return nil
}

// Handler serves the websocket protocol and a liveness probe
type Handler struct {
	service  game.Service
	upgrader websocket.Upgrader
}

// NewHandler creates a new websocket handler
func NewHandler(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Handler{
		service:  cfg.GameService,
		upgrader: websocket.Upgrader{},
	}, nil
}

// Routes registers the handler's endpoints on the router
func (h *Handler) Routes(router *way.Router) {
	router.HandleFunc("GET", "/play", h.handlePlay)
	router.HandleFunc("GET", "/games/:id", h.handleGetGame)
	router.HandleFunc("GET", "/healthz", h.handleHealth)
}

// handleGetGame serves the public game state over plain HTTP, for
// spectators and probes that do not hold a socket.
func (h *Handler) handleGetGame(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.GetGame(r.Context(), &game.GetGameInput{
		GameID: way.Param(r.Context(), "id"),
	})
	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		code := errors.GetCode(err)
		w.WriteHeader(code.HTTPStatus())
		_ = json.NewEncoder(w).Encode(ErrorPayload{
			Code:    code,
			Message: errors.GetMessage(err),
		})
		return
	}
	_ = json.NewEncoder(w).Encode(StateResponse{Game: gameView(out.Game)})
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handlePlay upgrades the connection and serves request envelopes until
// the client disconnects. Requests on one connection are handled in
// order.
func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("Websocket upgrade failed", "error", err)
		return
	}
	defer func() { _ = conn.Close() }()

	slog.Info("Client connected", "remote", conn.RemoteAddr())

	for {
		var req Envelope
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("Client read failed", "error", err)
			}
			return
		}

		resp := h.dispatch(r.Context(), &req)
		if err := conn.WriteJSON(resp); err != nil {
			slog.Warn("Client write failed", "error", err)
			return
		}
	}
}

func (h *Handler) dispatch(ctx context.Context, req *Envelope) *Envelope {
	var (
		payload interface{}
		err     error
	)

	switch req.Type {
	case TypeStartGame:
		payload, err = h.startGame(ctx, req.Payload)
	case TypeRequestMove:
		payload, err = h.requestMove(ctx, req.Payload)
	case TypeRequestSuggestion:
		payload, err = h.requestSuggestion(ctx, req.Payload)
	case TypeRequestAccusation:
		payload, err = h.requestAccusation(ctx, req.Payload)
	case TypeEndTurn:
		payload, err = h.endTurn(ctx, req.Payload)
	case TypeGetState:
		payload, err = h.getState(ctx, req.Payload)
	case TypeHand:
		payload, err = h.hand(ctx, req.Payload)
	case TypeHover:
		payload, err = h.hover(ctx, req.Payload)
	case TypeTileKind:
		payload, err = h.tileKind(ctx, req.Payload)
	default:
		err = errors.InvalidArgumentf("unknown request type %q", req.Type)
	}

	if err != nil {
		return errorEnvelope(req.Type, err)
	}
	return envelope(req.Type, payload)
}

// ErrorPayload reports a failed request back to the client
type ErrorPayload struct {
	RequestType string      `json:"request_type,omitempty"`
	Code        errors.Code `json:"code"`
	Message     string      `json:"message"`
}

func errorEnvelope(requestType string, err error) *Envelope {
	code := errors.GetCode(err)
	if code == errors.CodeInternal {
		slog.Error("Request failed", "type", requestType, "error", err)
	}
	return envelope(TypeError, ErrorPayload{
		RequestType: requestType,
		Code:        code,
		Message:     errors.GetMessage(err),
	})
}

func envelope(envType string, payload interface{}) *Envelope {
	data, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal response", "type", envType, "error", err)
		return &Envelope{Type: TypeError}
	}
	return &Envelope{Type: envType, Payload: data}
}

// StartGamePayload lists the players joining a new game
type StartGamePayload struct {
	Players []PlayerSetupPayload `json:"players"`
	Seed    *int64               `json:"seed,omitempty"`
}

// PlayerSetupPayload pairs a player name with a character slot
type PlayerSetupPayload struct {
	Name          string `json:"name"`
	CharacterSlot int    `json:"character_slot"`
}

// StartGameResponse carries the freshly created game
type StartGameResponse struct {
	Game GameView `json:"game"`
}

func (h *Handler) startGame(ctx context.Context, raw json.RawMessage) (interface{}, error) {
	var p StartGamePayload
	if err := decode(raw, &p); err != nil {
		return nil, err
	}

	players := make([]game.PlayerSetup, 0, len(p.Players))
	for _, ps := range p.Players {
		players = append(players, game.PlayerSetup{
			Name:          ps.Name,
			CharacterSlot: ps.CharacterSlot,
		})
	}

	out, err := h.service.StartGame(ctx, &game.StartGameInput{
		Players: players,
		Seed:    p.Seed,
	})
	if err != nil {
		return nil, err
	}
	return StartGameResponse{Game: gameView(out.Game)}, nil
}

// MovePayload asks to move the active token
type MovePayload struct {
	GameID      string            `json:"game_id"`
	TokenSlot   int               `json:"token_slot"`
	Destination entities.Position `json:"destination"`
}

// MoveResponse reports the outcome of a move request
type MoveResponse struct {
	Rejected       bool              `json:"rejected"`
	Reason         string            `json:"reason,omitempty"`
	StepsUsed      int               `json:"steps_used"`
	MovesRemaining int               `json:"moves_remaining"`
	Position       entities.Position `json:"position"`
}

func (h *Handler) requestMove(ctx context.Context, raw json.RawMessage) (interface{}, error) {
	var p MovePayload
	if err := decode(raw, &p); err != nil {
		return nil, err
	}

	out, err := h.service.RequestMove(ctx, &game.RequestMoveInput{
		GameID:      p.GameID,
		TokenSlot:   p.TokenSlot,
		Destination: p.Destination,
	})
	if err != nil {
		return nil, err
	}
	return MoveResponse{
		Rejected:       out.Rejected,
		Reason:         out.Reason,
		StepsUsed:      out.StepsUsed,
		MovesRemaining: out.MovesRemaining,
		Position:       out.Position,
	}, nil
}

// ClaimPayload names the three cards of a suggestion or accusation
type ClaimPayload struct {
	GameID    string `json:"game_id"`
	TokenSlot int    `json:"token_slot"`
	Room      string `json:"room"`
	Character string `json:"character"`
	Weapon    string `json:"weapon"`
}

func (p *ClaimPayload) cards() (room, character, weapon entities.Card, err error) {
	if room, err = entities.ParseCard(entities.CardKindRoom, p.Room); err != nil {
		return room, character, weapon, errors.InvalidArgument(err.Error())
	}
	if character, err = entities.ParseCard(entities.CardKindCharacter, p.Character); err != nil {
		return room, character, weapon, errors.InvalidArgument(err.Error())
	}
	if weapon, err = entities.ParseCard(entities.CardKindWeapon, p.Weapon); err != nil {
		return room, character, weapon, errors.InvalidArgument(err.Error())
	}
	return room, character, weapon, nil
}

// SuggestionResponse reports the poll result; match is null when nobody
// could refute
type SuggestionResponse struct {
	Match *MatchView `json:"match"`
}

func (h *Handler) requestSuggestion(ctx context.Context, raw json.RawMessage) (interface{}, error) {
	var p ClaimPayload
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	room, character, weapon, err := p.cards()
	if err != nil {
		return nil, err
	}

	out, err := h.service.RequestSuggestion(ctx, &game.RequestSuggestionInput{
		GameID:    p.GameID,
		TokenSlot: p.TokenSlot,
		Room:      room,
		Character: character,
		Weapon:    weapon,
	})
	if err != nil {
		return nil, err
	}
	return SuggestionResponse{Match: matchView(out.Match)}, nil
}

// AccusationResponse reports the verdict
type AccusationResponse struct {
	Won        bool        `json:"won"`
	Checks     []CheckView `json:"checks"`
	Eliminated bool        `json:"eliminated"`
	Game       GameView    `json:"game"`
}

func (h *Handler) requestAccusation(ctx context.Context, raw json.RawMessage) (interface{}, error) {
	var p ClaimPayload
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	room, character, weapon, err := p.cards()
	if err != nil {
		return nil, err
	}

	out, err := h.service.RequestAccusation(ctx, &game.RequestAccusationInput{
		GameID:    p.GameID,
		TokenSlot: p.TokenSlot,
		Room:      room,
		Character: character,
		Weapon:    weapon,
	})
	if err != nil {
		return nil, err
	}
	return AccusationResponse{
		Won:        out.Won,
		Checks:     checkViews(out.Checks),
		Eliminated: out.Eliminated,
		Game:       gameView(out.Game),
	}, nil
}

// TurnPayload identifies the game and acting token
type TurnPayload struct {
	GameID    string `json:"game_id"`
	TokenSlot int    `json:"token_slot"`
}

// StateResponse carries the public game state
type StateResponse struct {
	Game GameView `json:"game"`
}

func (h *Handler) endTurn(ctx context.Context, raw json.RawMessage) (interface{}, error) {
	var p TurnPayload
	if err := decode(raw, &p); err != nil {
		return nil, err
	}

	out, err := h.service.EndTurn(ctx, &game.EndTurnInput{
		GameID:    p.GameID,
		TokenSlot: p.TokenSlot,
	})
	if err != nil {
		return nil, err
	}
	return StateResponse{Game: gameView(out.Game)}, nil
}

// StatePayload identifies a game to fetch
type StatePayload struct {
	GameID string `json:"game_id"`
}

func (h *Handler) getState(ctx context.Context, raw json.RawMessage) (interface{}, error) {
	var p StatePayload
	if err := decode(raw, &p); err != nil {
		return nil, err
	}

	out, err := h.service.GetGame(ctx, &game.GetGameInput{GameID: p.GameID})
	if err != nil {
		return nil, err
	}
	return StateResponse{Game: gameView(out.Game)}, nil
}

// HandResponse lists one token's cards in deal order
type HandResponse struct {
	Cards []CardView `json:"cards"`
}

func (h *Handler) hand(ctx context.Context, raw json.RawMessage) (interface{}, error) {
	var p TurnPayload
	if err := decode(raw, &p); err != nil {
		return nil, err
	}

	out, err := h.service.HandOf(ctx, &game.HandOfInput{
		GameID:    p.GameID,
		TokenSlot: p.TokenSlot,
	})
	if err != nil {
		return nil, err
	}
	return HandResponse{Cards: cardViews(out.Cards)}, nil
}

// HoverPayload asks for the hover text at a position
type HoverPayload struct {
	GameID   string            `json:"game_id"`
	Position entities.Position `json:"position"`
}

// HoverResponse carries the hover text
type HoverResponse struct {
	Description string `json:"description"`
}

func (h *Handler) hover(ctx context.Context, raw json.RawMessage) (interface{}, error) {
	var p HoverPayload
	if err := decode(raw, &p); err != nil {
		return nil, err
	}

	out, err := h.service.Hover(ctx, &game.HoverInput{
		GameID:   p.GameID,
		Position: p.Position,
	})
	if err != nil {
		return nil, err
	}
	return HoverResponse{Description: out.Description}, nil
}

// TileKindPayload asks for the static tile kind at a position
type TileKindPayload struct {
	Position entities.Position `json:"position"`
}

// TileKindResponse names the tile kind
type TileKindResponse struct {
	Kind string `json:"kind"`
}

func (h *Handler) tileKind(ctx context.Context, raw json.RawMessage) (interface{}, error) {
	var p TileKindPayload
	if err := decode(raw, &p); err != nil {
		return nil, err
	}

	out, err := h.service.TileKindAt(ctx, &game.TileKindAtInput{Position: p.Position})
	if err != nil {
		return nil, err
	}
	return TileKindResponse{Kind: out.Kind.String()}, nil
}

func decode(raw json.RawMessage, dst interface{}) error {
	if len(raw) == 0 {
		return errors.InvalidArgument("payload is required")
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return errors.InvalidArgument("malformed payload: " + err.Error())
	}
	return nil
}
