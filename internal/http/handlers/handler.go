package handlers

import (
	"errors"
	"net/http"

	"mastermind_reach/internal/domain"
	"mastermind_reach/internal/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Games       *service.GameService
	Multiplayer *service.MultiplayerService
}

func NewHandler(games *service.GameService, multiplayer *service.MultiplayerService) *Handler {
	return &Handler{
		Games:       games,
		Multiplayer: multiplayer,
	}
}

// playerID extracts the authenticated player from the gin context.
func playerID(c *gin.Context) (string, bool) {
	id := c.GetString("player_id")
	return id, id != ""
}

// writeError maps the domain error taxonomy onto HTTP statuses.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
