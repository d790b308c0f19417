package entities

import "time"

// Board is the set of next reset instants rendered in the timer post.
type Board struct {
	Loot           time.Time
	TownSecurement time.Time
	Combined       time.Time
	HalMove        time.Time // moves with the weekly vendor reset
	NextPhase      time.Time
	HalLocation    string
	Embed          Embed
	GeneratedAt    time.Time
}
