package ws

import (
	"github.com/manorgames/manor-api/internal/entities"
	game "github.com/manorgames/manor-api/internal/orchestrators/game"
)

// CardView names a card on the wire
type CardView struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
}

// TokenView is the public shape of a player token. Hands never cross the
// wire here; players fetch their own hand with a hand request.
type TokenView struct {
	Slot       int               `json:"slot"`
	Character  string            `json:"character"`
	PlayerName string            `json:"player_name,omitempty"`
	Playing    bool              `json:"playing"`
	Eliminated bool              `json:"eliminated"`
	Position   entities.Position `json:"position"`
}

// WeaponView is the public shape of a weapon token
type WeaponView struct {
	Name     string            `json:"name"`
	Position entities.Position `json:"position"`
}

// GameView is the public shape of a game. The solution envelope stays
// server-side until the game completes.
type GameView struct {
	ID             string       `json:"id"`
	Status         string       `json:"status"`
	Turn           int          `json:"turn"`
	DieValue       int          `json:"die_value"`
	MovesRemaining int          `json:"moves_remaining"`
	Winner         *int         `json:"winner,omitempty"`
	Tokens         []TokenView  `json:"tokens"`
	Weapons        []WeaponView `json:"weapons"`
	Solution       []CardView   `json:"solution,omitempty"`
}

func cardView(c entities.Card) CardView {
	return CardView{Kind: string(c.Kind), Name: c.Name()}
}

func cardViews(cards []entities.Card) []CardView {
	views := make([]CardView, 0, len(cards))
	for _, c := range cards {
		views = append(views, cardView(c))
	}
	return views
}

func gameView(g *entities.GameState) GameView {
	view := GameView{
		ID:             g.ID,
		Status:         string(g.Status),
		Turn:           g.Turn,
		DieValue:       g.DieValue,
		MovesRemaining: g.MovesRemaining,
		Winner:         g.Winner,
	}
	for _, t := range g.Tokens {
		view.Tokens = append(view.Tokens, TokenView{
			Slot:       t.Slot,
			Character:  t.CharacterName(),
			PlayerName: t.PlayerName,
			Playing:    t.Playing,
			Eliminated: t.Eliminated,
			Position:   t.Position,
		})
	}
	for _, w := range g.Weapons {
		view.Weapons = append(view.Weapons, WeaponView{
			Name:     w.Name(),
			Position: w.Position,
		})
	}
	if g.Status == entities.GameStatusComplete {
		view.Solution = []CardView{
			cardView(g.Solution.Character),
			cardView(g.Solution.Weapon),
			cardView(g.Solution.Room),
		}
	}
	return view
}

// MatchView names the refuting seat and card of a suggestion
type MatchView struct {
	Slot       int      `json:"slot"`
	PlayerName string   `json:"player_name"`
	Card       CardView `json:"card"`
}

func matchView(m *game.SuggestionMatch) *MatchView {
	if m == nil {
		return nil
	}
	return &MatchView{
		Slot:       m.Slot,
		PlayerName: m.PlayerName,
		Card:       cardView(m.Card),
	}
}

// CheckView reports one compared accusation card
type CheckView struct {
	Card    CardView `json:"card"`
	Correct bool     `json:"correct"`
}

func checkViews(checks []game.AccusationCheck) []CheckView {
	views := make([]CheckView, 0, len(checks))
	for _, c := range checks {
		views = append(views, CheckView{Card: cardView(c.Card), Correct: c.Correct})
	}
	return views
}
