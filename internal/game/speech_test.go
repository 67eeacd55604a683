package game

import (
	"math"
	"testing"
)

func TestSpeechLifetime(t *testing.T) {
	b := NewSpeechBoard(1)
	b.Say("villager_0", "hello", 1000)

	if got, ok := b.Active("villager_0", 1000); !ok || got != "hello" {
		t.Fatalf("fresh bubble: %q ok=%v", got, ok)
	}
	if got, ok := b.Active("villager_0", 1000+SpeechTTL-1); !ok || got != "hello" {
		t.Fatalf("bubble one tick before expiry: %q ok=%v", got, ok)
	}
	if _, ok := b.Active("villager_0", 1000+SpeechTTL); ok {
		t.Fatal("bubble survived its TTL")
	}
	// Expiry is destructive; asking again at an earlier time finds nothing.
	if _, ok := b.Active("villager_0", 1000); ok {
		t.Fatal("expired bubble resurrected")
	}
}

func TestSayReplacesLiveBubble(t *testing.T) {
	b := NewSpeechBoard(1)
	b.Say("dealer_0", "first", 0)
	b.Say("dealer_0", "second", 100)
	if got, _ := b.Active("dealer_0", 200); got != "second" {
		t.Fatalf("got %q, want the replacement", got)
	}
}

func TestSayRandomUsesProfessionPool(t *testing.T) {
	b := NewSpeechBoard(2)
	inPool := func(text string, pool []string) bool {
		for _, l := range pool {
			if l == text {
				return true
			}
		}
		return false
	}
	for i := 0; i < 20; i++ {
		now := float64(i) * 10000
		b.SayRandom("centurion_1", now)
		got, ok := b.Active("centurion_1", now)
		if !ok || !inPool(got, speechPools["centurion"]) {
			t.Fatalf("centurion line %q not from its pool", got)
		}
		b.SayRandom("gremlin_9", now)
		got, ok = b.Active("gremlin_9", now)
		if !ok || !inPool(got, speechPools["default"]) {
			t.Fatalf("unknown profession line %q not from default pool", got)
		}
	}
}

// Keeper chatter may only appear inside each keeper's staggered window.
func TestChatterRespectsWindow(t *testing.T) {
	b := NewSpeechBoard(42)
	stalls := []Stall{{Keeper: "keeper_0"}, {Keeper: "keeper_1"}}

	appearances := 0
	for now := 0.0; now < ChatterInterval*16; now += 16 {
		live := make(map[string]bool)
		for _, st := range stalls {
			_, ok := b.Active(st.Keeper, now)
			live[st.Keeper] = ok
		}
		b.UpdateChatter(stalls, now)
		for _, st := range stalls {
			if live[st.Keeper] {
				continue
			}
			if _, ok := b.Active(st.Keeper, now); ok {
				appearances++
				staggered := math.Mod(now+b.offsets[st.Keeper], ChatterInterval*2)
				if staggered >= ChatterWindow {
					t.Fatalf("now=%v keeper=%s: bubble outside window (staggered=%v)", now, st.Keeper, staggered)
				}
			}
		}
	}
	if appearances == 0 {
		t.Fatal("no chatter over sixteen intervals")
	}
}

func TestChatterNeverOverwritesLiveBubble(t *testing.T) {
	b := NewSpeechBoard(42)
	stalls := []Stall{{Keeper: "keeper_0"}}
	b.offsets["keeper_0"] = 0 // window opens at now=0
	b.Say("keeper_0", "pinned", 0)
	for now := 0.0; now < ChatterWindow; now += 16 {
		b.UpdateChatter(stalls, now)
		if got, _ := b.Active("keeper_0", now); got != "pinned" {
			t.Fatalf("now=%v: chatter replaced a live bubble with %q", now, got)
		}
	}
}

func TestSpeechReset(t *testing.T) {
	b := NewSpeechBoard(3)
	b.Say("villager_0", "hi", 0)
	b.UpdateChatter([]Stall{{Keeper: "keeper_0"}}, 0)
	b.Reset()
	if _, ok := b.Active("villager_0", 1); ok {
		t.Fatal("bubble survived reset")
	}
	if len(b.offsets) != 0 {
		t.Fatal("offsets survived reset")
	}
}
