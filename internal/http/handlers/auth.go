package handlers

import (
	"net/http"

	"mastermind_reach/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GuestAuthResponse carries the minted identity.
type GuestAuthResponse struct {
	Token    string `json:"token"`
	PlayerID string `json:"player_id"`
}

// GuestAuth issues a fresh player identity and a token for it. The API
// has no accounts; a player is whoever holds the token.
func (h *Handler) GuestAuth(c *gin.Context) {
	id := uuid.New().String()

	token, err := service.GenerateJWT(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, GuestAuthResponse{Token: token, PlayerID: id})
}
