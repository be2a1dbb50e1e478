package handlers

import (
	"net/http"

	"mastermind_reach/internal/domain"

	"github.com/gin-gonic/gin"
)

// CreateMultiplayerRequest declares how many seats to open.
type CreateMultiplayerRequest struct {
	Players    int    `json:"players" binding:"required,min=1"`
	Difficulty string `json:"difficulty"`
}

// MultiplayerResponse is the client view of a multiplayer session.
type MultiplayerResponse struct {
	ID            string   `json:"id"`
	PlayerCount   int      `json:"player_count"`
	GameIDs       []string `json:"game_ids"`
	CurrentPlayer int      `json:"current_player"`
	GameOver      bool     `json:"game_over"`
}

func multiplayerView(m *domain.Multiplayer) MultiplayerResponse {
	return MultiplayerResponse{
		ID:            m.ID,
		PlayerCount:   m.PlayerCount,
		GameIDs:       m.GameIDs,
		CurrentPlayer: m.CurrentPlayer,
		GameOver:      m.GameOver,
	}
}

// CreateMultiplayer handles POST /multiplayer.
func (h *Handler) CreateMultiplayer(c *gin.Context) {
	pid, ok := playerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req CreateMultiplayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	m, err := h.Multiplayer.InitializeMultiplayerGame(c.Request.Context(), req.Players, req.Difficulty, pid)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, multiplayerView(m))
}

// GetMultiplayer handles GET /multiplayer/:id.
func (h *Handler) GetMultiplayer(c *gin.Context) {
	m, err := h.Multiplayer.GetMultiplayer(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, multiplayerView(m))
}

// SendMultiplayerGuess handles POST /multiplayer/:id/guess.
func (h *Handler) SendMultiplayerGuess(c *gin.Context) {
	if _, ok := playerID(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req GuessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	m, err := h.Multiplayer.SendGuess(c.Request.Context(), c.Param("id"), req.Guess)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, multiplayerView(m))
}
