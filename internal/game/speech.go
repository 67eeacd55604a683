package game

import "math"

// Transient NPC speech. Bubbles are pure local flavor: nothing here is
// synchronized, and expiry is lazy so there is no timer to manage.

type bubble struct {
	Text string
	At   float64
}

// SpeechBoard holds live bubbles and per-agent chatter phase offsets.
type SpeechBoard struct {
	r       *Rand
	bubbles map[string]bubble
	offsets map[string]float64
}

func NewSpeechBoard(seed uint64) *SpeechBoard {
	return &SpeechBoard{
		r:       NewRand(seed ^ 0x5BEEC4),
		bubbles: make(map[string]bubble),
		offsets: make(map[string]float64),
	}
}

// Say puts a bubble over the agent, replacing any live one.
func (b *SpeechBoard) Say(id, text string, now float64) {
	b.bubbles[id] = bubble{Text: text, At: now}
}

// SayRandom picks a line from the agent's profession pool.
func (b *SpeechBoard) SayRandom(id string, now float64) {
	pool := speechPool(professionOf(id))
	b.Say(id, pool[b.r.Intn(len(pool))], now)
}

// Active returns the agent's live bubble, expiring it in the same
// breath once the TTL has run out.
func (b *SpeechBoard) Active(id string, now float64) (string, bool) {
	bb, ok := b.bubbles[id]
	if !ok {
		return "", false
	}
	if now-bb.At >= SpeechTTL {
		delete(b.bubbles, id)
		return "", false
	}
	return bb.Text, true
}

// UpdateChatter runs the idle-speech trials for the stall keepers.
// Each keeper gets a one-time phase offset; only inside its staggered
// window does it roll for a new line, and never over a live bubble.
func (b *SpeechBoard) UpdateChatter(stalls []Stall, now float64) {
	for _, st := range stalls {
		if st.Keeper == "" {
			continue
		}
		off, ok := b.offsets[st.Keeper]
		if !ok {
			off = b.r.Float64() * ChatterInterval
			b.offsets[st.Keeper] = off
		}
		staggered := math.Mod(now+off, ChatterInterval*2)
		if staggered >= ChatterWindow {
			continue
		}
		if _, live := b.Active(st.Keeper, now); live {
			continue
		}
		if b.r.Float64() < ChatterChance {
			b.SayRandom(st.Keeper, now)
		}
	}
}

// Reset drops all bubbles and phase offsets (map switch).
func (b *SpeechBoard) Reset() {
	b.bubbles = make(map[string]bubble)
	b.offsets = make(map[string]float64)
}

var speechPools = map[string][]string{
	"villager": {
		"Lovely day on the plaza.",
		"Have you seen the fountain coins?",
		"The centurions never come down, you know.",
		"Fresh bread by the east gate, I heard.",
		"Mind the bunting, it just went up.",
		"I lost a button by the shrine.",
	},
	"centurion": {
		"All quiet on the wall.",
		"Keep clear of the battlements.",
		"I can see the whole forest from here.",
		"No incidents to report.",
	},
	"dealer": {
		"Finest wares this side of the aisle!",
		"Two for the price of two!",
		"Everything on the counter is for sale.",
		"You break it, you buy it.",
		"Fresh stock in this morning.",
	},
	"keeper": {
		"Trinkets! Charms! Plaza souvenirs!",
		"A shrine charm for your travels?",
		"The fountain water is free. This isn't.",
		"Hand-carved, mostly.",
	},
	"barista": {
		"One espresso, coming up.",
		"We're out of oat milk. Again.",
		"Careful, the cup is hot.",
		"Try the honey bun.",
	},
	"default": {
		"Hello there.",
		"Nice weather, is it not?",
		"Hm? Oh, don't mind me.",
	},
}

// speechPool resolves a profession to its line pool, falling back to
// the default pool for unknown professions.
func speechPool(profession string) []string {
	if p, ok := speechPools[profession]; ok {
		return p
	}
	return speechPools["default"]
}
