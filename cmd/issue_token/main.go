package main

import (
	"flag"
	"fmt"
	"log"

	"mastermind_reach/internal/service"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Mints a player token for local testing without going through
// /auth/guest.
func main() {
	_ = godotenv.Load()

	playerID := flag.String("player", "", "player id (random when empty)")
	flag.Parse()

	id := *playerID
	if id == "" {
		id = uuid.New().String()
	}

	service.InitJWT()
	token, err := service.GenerateJWT(id)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println("player_id:", id)
	fmt.Println("token:", token)
}
