package main

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"allin-analytics/server/engine"
	"allin-analytics/server/game"
)

type cardJSON struct {
	Rank string `json:"rank"`
	Suit string `json:"suit"`
}

type communityStateJSON struct {
	FlopCard0     cardJSON  `json:"flop_card_0"`
	FlopCard1     cardJSON  `json:"flop_card_1"`
	FlopCard2     cardJSON  `json:"flop_card_2"`
	TurnCard      *cardJSON `json:"turn_card"`
	RiverCard     *cardJSON `json:"river_card"`
	GameState     string    `json:"game_state"`
	ActivePlayers []string  `json:"active_players"`
}

type communityRequest struct {
	CommunityState communityStateJSON `json:"community_state"`
}

type communityResponse struct {
	Status          string               `json:"status"`
	Message         string               `json:"message"`
	GameDate        string               `json:"game_date"`
	HandNumber      int                  `json:"hand_number"`
	CommunityStates []communityStateJSON `json:"community_states"`
	ActivePlayers   map[string][]string  `json:"active_players,omitempty"`
}

type gameRequest struct {
	GameDate string   `json:"game_date"`
	Players  []string `json:"players"`
}

type gameResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	GameDate string `json:"game_date"`
	GameUUID string `json:"game_uuid"`
}

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Kind    string `json:"kind,omitempty"`
}

func Router(svc *game.Service) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"message": "Welcome to the All In Analytics Core Backend!"})
	})

	r.Get("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	r.Post("/game", func(w http.ResponseWriter, req *http.Request) {
		var body gameRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Status: "FAILURE", Message: "malformed request body"})
			return
		}
		id, err := svc.CreateGame(req.Context(), body.GameDate, body.Players)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, gameResponse{
			Status:   "SUCCESS",
			Message:  "New Game Created",
			GameDate: body.GameDate,
			GameUUID: id,
		})
	})

	r.Post("/game/community/{gameDate}/{handNumber}", func(w http.ResponseWriter, req *http.Request) {
		gameDate, handNumber, ok := handParams(w, req)
		if !ok {
			return
		}
		var body communityRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Status: "FAILURE", Message: "malformed request body"})
			return
		}
		cc := engine.CommunityCards{
			Flop: [3]engine.Card{
				toCard(body.CommunityState.FlopCard0),
				toCard(body.CommunityState.FlopCard1),
				toCard(body.CommunityState.FlopCard2),
			},
			Turn:  toOptionalCard(body.CommunityState.TurnCard),
			River: toOptionalCard(body.CommunityState.RiverCard),
		}
		views, err := svc.SubmitCommunity(req.Context(), gameDate, handNumber, cc, body.CommunityState.ActivePlayers)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, handView("Community Cards Pushed", gameDate, handNumber, views))
	})

	r.Get("/game/community/{gameDate}/{handNumber}", func(w http.ResponseWriter, req *http.Request) {
		gameDate, handNumber, ok := handParams(w, req)
		if !ok {
			return
		}
		views, err := svc.HandHistory(req.Context(), gameDate, handNumber)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, handView("Community Cards Found", gameDate, handNumber, views))
	})

	return r
}

func handParams(w http.ResponseWriter, req *http.Request) (string, int, bool) {
	gameDate := chi.URLParam(req, "gameDate")
	handNumber, err := strconv.Atoi(chi.URLParam(req, "handNumber"))
	if err != nil || handNumber < 1 {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Status: "FAILURE", Message: "hand_number must be a positive integer"})
		return "", 0, false
	}
	return gameDate, handNumber, true
}

func handView(message, gameDate string, handNumber int, views []engine.StreetView) communityResponse {
	states := make([]communityStateJSON, 0, len(views))
	for _, v := range views {
		states = append(states, communityStateJSON{
			FlopCard0:     fromCard(v.Flop[0]),
			FlopCard1:     fromCard(v.Flop[1]),
			FlopCard2:     fromCard(v.Flop[2]),
			TurnCard:      fromOptionalCard(v.Turn),
			RiverCard:     fromOptionalCard(v.River),
			GameState:     string(v.Street),
			ActivePlayers: v.ActivePlayers,
		})
	}
	players := map[string][]string{}
	for street, list := range engine.PlayersByStreet(views) {
		players[string(street)] = list
	}
	return communityResponse{
		Status:          "SUCCESS",
		Message:         message,
		GameDate:        gameDate,
		HandNumber:      handNumber,
		CommunityStates: states,
		ActivePlayers:   players,
	}
}

func toCard(c cardJSON) engine.Card {
	return engine.Card{Rank: engine.Rank(c.Rank), Suit: engine.Suit(c.Suit)}
}

func toOptionalCard(c *cardJSON) *engine.Card {
	if c == nil {
		return nil
	}
	v := toCard(*c)
	return &v
}

func fromCard(c engine.Card) cardJSON {
	return cardJSON{Rank: string(c.Rank), Suit: string(c.Suit)}
}

func fromOptionalCard(c *engine.Card) *cardJSON {
	if c == nil {
		return nil
	}
	v := fromCard(*c)
	return &v
}

func writeError(w http.ResponseWriter, err error) {
	kind := engine.KindOf(err)
	if kind == engine.KindBrokenStreetSequence {
		// Corrupt street log; points at a write-path bug, not a bad request.
		log.Printf("street sequence corruption: %v", err)
	}
	writeJSON(w, statusForKind(kind), errorResponse{
		Status:  "FAILURE",
		Message: engine.MessageOf(err),
		Kind:    string(kind),
	})
}

func statusForKind(kind engine.Kind) int {
	switch kind {
	case engine.KindGameNotFound:
		return http.StatusNotFound
	case engine.KindDuplicateGame, engine.KindDuplicateStreet:
		return http.StatusConflict
	case engine.KindInvalidGameDate, engine.KindInvalidGameState,
		engine.KindInvalidCardEncoding, engine.KindInvalidPlayerList:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
