package pkg

import (
	"encoding/hex"

	"lukechampine.com/frand"
)

const (
	gameIDBytes   = 8
	playerIDBytes = 16
)

// GenerateGameID - generates a unique identifier for a game session.
func GenerateGameID() string {
	return hex.EncodeToString(frand.Bytes(gameIDBytes))
}

// GeneratePlayerID - generates a unique identifier for a player.
func GeneratePlayerID() string {
	return hex.EncodeToString(frand.Bytes(playerIDBytes))
}
