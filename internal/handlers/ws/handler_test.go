package ws_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/manorgames/manor-api/internal/entities"
	"github.com/manorgames/manor-api/internal/errors"
	"github.com/manorgames/manor-api/internal/handlers/ws"
	game "github.com/manorgames/manor-api/internal/orchestrators/game"
	gamesvcmock "github.com/manorgames/manor-api/internal/orchestrators/game/mock"
)

const testGameID = "game_1"

type HandlerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	mockSvc *gamesvcmock.MockService
	server  *httptest.Server
	conn    *websocket.Conn
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSvc = gamesvcmock.NewMockService(s.ctrl)

	handler, err := ws.NewHandler(&ws.Config{GameService: s.mockSvc})
	s.Require().NoError(err)

	router := way.NewRouter()
	handler.Routes(router)
	s.server = httptest.NewServer(router)

	wsURL := "ws" + strings.TrimPrefix(s.server.URL, "http") + "/play"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	s.Require().NoError(err)
	s.conn = conn
}

func (s *HandlerTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Close()
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) roundTrip(envType string, payload interface{}) ws.Envelope {
	data, err := json.Marshal(payload)
	s.Require().NoError(err)
	s.Require().NoError(s.conn.WriteJSON(ws.Envelope{Type: envType, Payload: data}))

	var resp ws.Envelope
	s.Require().NoError(s.conn.ReadJSON(&resp))
	return resp
}

func (s *HandlerTestSuite) inProgressGame() *entities.GameState {
	g := &entities.GameState{
		ID:     testGameID,
		Status: entities.GameStatusInProgress,
	}
	for slot := 0; slot < entities.NumCharacters; slot++ {
		g.Tokens[slot] = entities.NewPlayerToken(slot)
	}
	g.Tokens[0] = entities.NewPlayingToken(0, "alice")
	g.Tokens[0].Hand = []entities.Card{entities.WeaponCard(2)}
	g.Solution = entities.Solution{
		Character: entities.CharacterCard(1),
		Weapon:    entities.WeaponCard(2),
		Room:      entities.RoomCard(3),
	}
	g.DieValue = 5
	g.MovesRemaining = 5
	return g
}

func (s *HandlerTestSuite) TestGetGameOverHTTP() {
	s.mockSvc.EXPECT().
		GetGame(gomock.Any(), &game.GetGameInput{GameID: testGameID}).
		Return(&game.GetGameOutput{Game: s.inProgressGame()}, nil)

	resp, err := http.Get(s.server.URL + "/games/" + testGameID)
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()
	s.Equal(http.StatusOK, resp.StatusCode)

	var state ws.StateResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&state))
	s.Equal(testGameID, state.Game.ID)
	s.Empty(state.Game.Solution)
}

func (s *HandlerTestSuite) TestGetGameOverHTTPNotFound() {
	s.mockSvc.EXPECT().
		GetGame(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("game not found"))

	resp, err := http.Get(s.server.URL + "/games/game_nope")
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()
	s.Equal(http.StatusNotFound, resp.StatusCode)

	var errPayload ws.ErrorPayload
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&errPayload))
	s.Equal(errors.CodeNotFound, errPayload.Code)
}

func (s *HandlerTestSuite) TestHealthz() {
	resp, err := http.Get(s.server.URL + "/healthz")
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *HandlerTestSuite) TestGetStateRedactsSolution() {
	s.mockSvc.EXPECT().
		GetGame(gomock.Any(), &game.GetGameInput{GameID: testGameID}).
		Return(&game.GetGameOutput{Game: s.inProgressGame()}, nil)

	resp := s.roundTrip(ws.TypeGetState, ws.StatePayload{GameID: testGameID})
	s.Equal(ws.TypeGetState, resp.Type)

	var state ws.StateResponse
	s.Require().NoError(json.Unmarshal(resp.Payload, &state))
	s.Equal(testGameID, state.Game.ID)
	s.Equal("in_progress", state.Game.Status)
	s.Len(state.Game.Tokens, entities.NumCharacters)
	s.Equal("alice", state.Game.Tokens[0].PlayerName)
	s.Equal(5, state.Game.DieValue)
	s.Empty(state.Game.Solution, "solution must stay hidden while in progress")
}

func (s *HandlerTestSuite) TestGetStateRevealsSolutionWhenComplete() {
	g := s.inProgressGame()
	g.Status = entities.GameStatusComplete
	winner := 0
	g.Winner = &winner

	s.mockSvc.EXPECT().
		GetGame(gomock.Any(), gomock.Any()).
		Return(&game.GetGameOutput{Game: g}, nil)

	resp := s.roundTrip(ws.TypeGetState, ws.StatePayload{GameID: testGameID})

	var state ws.StateResponse
	s.Require().NoError(json.Unmarshal(resp.Payload, &state))
	s.Require().Len(state.Game.Solution, 3)
	s.Equal("Mustard", state.Game.Solution[0].Name)
	s.Equal("Pipe", state.Game.Solution[1].Name)
	s.Equal("Hall", state.Game.Solution[2].Name)
}

func (s *HandlerTestSuite) TestRequestMove() {
	s.mockSvc.EXPECT().
		RequestMove(gomock.Any(), &game.RequestMoveInput{
			GameID:      testGameID,
			TokenSlot:   0,
			Destination: entities.Position{X: 2, Y: 7},
		}).
		Return(&game.RequestMoveOutput{
			StepsUsed:      2,
			MovesRemaining: 3,
			Position:       entities.Position{X: 2, Y: 7},
		}, nil)

	resp := s.roundTrip(ws.TypeRequestMove, ws.MovePayload{
		GameID:      testGameID,
		TokenSlot:   0,
		Destination: entities.Position{X: 2, Y: 7},
	})
	s.Equal(ws.TypeRequestMove, resp.Type)

	var move ws.MoveResponse
	s.Require().NoError(json.Unmarshal(resp.Payload, &move))
	s.False(move.Rejected)
	s.Equal(2, move.StepsUsed)
	s.Equal(3, move.MovesRemaining)
}

func (s *HandlerTestSuite) TestRequestSuggestionParsesCardNames() {
	s.mockSvc.EXPECT().
		RequestSuggestion(gomock.Any(), &game.RequestSuggestionInput{
			GameID:    testGameID,
			TokenSlot: 0,
			Room:      entities.RoomCard(4),
			Character: entities.CharacterCard(5),
			Weapon:    entities.WeaponCard(4),
		}).
		Return(&game.RequestSuggestionOutput{
			Match: &game.SuggestionMatch{
				Slot:       2,
				PlayerName: "bob",
				Card:       entities.CharacterCard(5),
			},
		}, nil)

	resp := s.roundTrip(ws.TypeRequestSuggestion, ws.ClaimPayload{
		GameID:    testGameID,
		TokenSlot: 0,
		Room:      "study",
		Character: "plum",
		Weapon:    "rope",
	})
	s.Equal(ws.TypeRequestSuggestion, resp.Type)

	var suggestion ws.SuggestionResponse
	s.Require().NoError(json.Unmarshal(resp.Payload, &suggestion))
	s.Require().NotNil(suggestion.Match)
	s.Equal(2, suggestion.Match.Slot)
	s.Equal("Plum", suggestion.Match.Card.Name)
}

func (s *HandlerTestSuite) TestRequestSuggestionUnknownCardName() {
	resp := s.roundTrip(ws.TypeRequestSuggestion, ws.ClaimPayload{
		GameID:    testGameID,
		TokenSlot: 0,
		Room:      "attic",
		Character: "plum",
		Weapon:    "rope",
	})
	s.Equal(ws.TypeError, resp.Type)

	var errPayload ws.ErrorPayload
	s.Require().NoError(json.Unmarshal(resp.Payload, &errPayload))
	s.Equal(errors.CodeInvalidArgument, errPayload.Code)
}

func (s *HandlerTestSuite) TestServiceErrorsMapToCodes() {
	s.mockSvc.EXPECT().
		GetGame(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("game not found"))

	resp := s.roundTrip(ws.TypeGetState, ws.StatePayload{GameID: "game_nope"})
	s.Equal(ws.TypeError, resp.Type)

	var errPayload ws.ErrorPayload
	s.Require().NoError(json.Unmarshal(resp.Payload, &errPayload))
	s.Equal(ws.TypeGetState, errPayload.RequestType)
	s.Equal(errors.CodeNotFound, errPayload.Code)
	s.Equal("game not found", errPayload.Message)
}

func (s *HandlerTestSuite) TestUnknownRequestType() {
	resp := s.roundTrip("teleport", struct{}{})
	s.Equal(ws.TypeError, resp.Type)

	var errPayload ws.ErrorPayload
	s.Require().NoError(json.Unmarshal(resp.Payload, &errPayload))
	s.Equal(errors.CodeInvalidArgument, errPayload.Code)
}

func (s *HandlerTestSuite) TestMalformedPayload() {
	s.Require().NoError(s.conn.WriteJSON(ws.Envelope{
		Type:    ws.TypeRequestMove,
		Payload: json.RawMessage(`"not an object"`),
	}))

	var resp ws.Envelope
	s.Require().NoError(s.conn.ReadJSON(&resp))
	s.Equal(ws.TypeError, resp.Type)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
