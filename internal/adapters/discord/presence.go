package discord

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// statusUpdater is the part of *discordgo.Session used to set the activity.
type statusUpdater interface {
	UpdateGameStatus(idle int, name string) error
}

// presenceKeeper remembers the activity last applied on the current gateway
// connection. The gateway does not echo the bot's own presence without the
// presence intent, so this is the only record of what is shown.
type presenceKeeper struct {
	client   statusUpdater
	activity string

	mu      sync.Mutex
	applied string
}

func newPresenceKeeper(client statusUpdater, activity string) *presenceKeeper {
	return &presenceKeeper{client: client, activity: activity}
}

func (p *presenceKeeper) apply() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.client.UpdateGameStatus(0, p.activity); err != nil {
		log.Error().Err(err).Msg("❌ Activity update failed")
		return
	}
	p.applied = p.activity
	log.Info().Str("activity", p.activity).Msg("✅ Activity set")
}

// ensure re-applies the activity when it is not known to be shown.
func (p *presenceKeeper) ensure() {
	p.mu.Lock()
	current := p.applied
	p.mu.Unlock()

	if current == p.activity {
		return
	}
	log.Info().Msg("Activity changed, resetting")
	p.apply()
}

// forget drops the record; a new gateway session starts without an activity.
func (p *presenceKeeper) forget() {
	p.mu.Lock()
	p.applied = ""
	p.mu.Unlock()
}
