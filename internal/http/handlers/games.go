package handlers

import (
	"net/http"

	"mastermind_reach/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

// StartGameRequest selects the difficulty for a new game. Empty means
// easy.
type StartGameRequest struct {
	Difficulty string `json:"difficulty"`
}

// GuessRequest carries one guess in wire form, one ASCII digit per
// position ("0123").
type GuessRequest struct {
	Guess string `json:"guess" binding:"required"`
}

// FeedbackView is the per-turn score as exposed to clients.
type FeedbackView struct {
	Exact   int    `json:"exact"`
	Partial int    `json:"partial"`
	Summary string `json:"summary"`
}

// GameResponse is the client view of a game. The secret stays redacted
// until the game is over.
type GameResponse struct {
	ID         string            `json:"id"`
	PlayerID   string            `json:"player_id"`
	Difficulty domain.Difficulty `json:"difficulty"`
	Board      [][]string        `json:"board"`
	Guesses    []string          `json:"guesses"`
	Feedbacks  []*FeedbackView   `json:"feedbacks"`
	Turn       int               `json:"turn"`
	Won        bool              `json:"won"`
	GameOver   bool              `json:"game_over"`
	SecretCode string            `json:"secret_code,omitempty"`
}

func gameView(g *domain.Game) GameResponse {
	resp := GameResponse{
		ID:         g.ID,
		PlayerID:   g.PlayerID,
		Difficulty: g.Difficulty,
		Board:      g.Board,
		Guesses:    g.Guesses,
		Turn:       g.Turn,
		Won:        g.Won,
		GameOver:   g.GameOver,
		Feedbacks: lo.Map(g.Feedbacks, func(f *domain.Feedback, _ int) *FeedbackView {
			if f == nil {
				return nil
			}
			return &FeedbackView{Exact: f.Exact, Partial: f.Partial, Summary: f.Summary()}
		}),
	}
	if g.GameOver {
		resp.SecretCode = g.SecretCode
	}
	return resp
}

// StartGame handles POST /games.
func (h *Handler) StartGame(c *gin.Context) {
	pid, ok := playerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req StartGameRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	g, err := h.Games.StartGame(c.Request.Context(), req.Difficulty, pid)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gameView(g))
}

// GetGame handles GET /games/:id.
func (h *Handler) GetGame(c *gin.Context) {
	g, err := h.Games.GetGame(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gameView(g))
}

// SubmitGuess handles POST /games/:id/guess.
func (h *Handler) SubmitGuess(c *gin.Context) {
	if _, ok := playerID(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req GuessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	g, err := h.Games.SubmitGuess(c.Request.Context(), c.Param("id"), req.Guess)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gameView(g))
}

// MyGames handles GET /me/games.
func (h *Handler) MyGames(c *gin.Context) {
	pid, ok := playerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	games, err := h.Games.ListGamesByPlayer(c.Request.Context(), pid)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"games": lo.Map(games, func(g *domain.Game, _ int) GameResponse {
			return gameView(g)
		}),
	})
}
