package game

import (
	"math"
	"sort"
)

// Cosmetic catalog: equippable items, their rarity tier and the
// particle effect each one drives. Unknown ids resolve to a harmless
// default so a stale inventory never breaks rendering.

type ParticleKind uint8

const (
	PKSparkle ParticleKind = iota
	PKGlint
	PKStar
	PKHeart
	PKNote
	PKConfetti
	PKPetal
	PKLeaf
	PKFirefly
	PKBubble
	PKRaindrop
	PKFrost
	PKFlame
	PKEmber
	PKAsh
	PKSmoke
	PKVoid
	PKWisp
	PKRune
	PKHalo
	PKOrbit
	PKMote
	PKBeam
	PKWingBeam
	PKFloorSpan
)

type ItemSlot uint8

const (
	SlotHat ItemSlot = iota
	SlotCape
	SlotAura
	SlotBoots
	SlotHeld
	SlotTrinket
)

type Rarity uint8

const (
	RarityCommon Rarity = iota
	RarityRare
	RarityEpic
	RarityLegendary
	RarityGodlike
)

func (r Rarity) String() string {
	switch r {
	case RarityRare:
		return "rare"
	case RarityEpic:
		return "epic"
	case RarityLegendary:
		return "legendary"
	case RarityGodlike:
		return "godlike"
	default:
		return "common"
	}
}

// TopTier marks the rarities that grow particle pools and can trigger
// the floor-span ring.
func (r Rarity) TopTier() bool {
	return r >= RarityLegendary
}

// Effect is one particle emitter description.
type Effect struct {
	Kind  ParticleKind
	Rate  float64 // Bernoulli chance per frame
	Count int     // particles per successful roll
	Life  float64 // ms
	Size  float64
	Speed float64 // outward speed, px per 16 ms
	Color RGB
	Glow  bool
	Beam  bool
}

// Item is a shop cosmetic.
type Item struct {
	ID     string
	Name   string
	Slot   ItemSlot
	Rarity Rarity
	Effect Effect
}

var itemCatalog = map[string]Item{
	"straw_hat": {ID: "straw_hat", Name: "Straw Hat", Slot: SlotHat, Rarity: RarityCommon,
		Effect: Effect{Kind: PKSparkle, Rate: 0.04, Count: 1, Life: 600, Size: 3, Speed: 0.3, Color: RGB{250, 240, 180}}},
	"halo_crown": {ID: "halo_crown", Name: "Halo Crown", Slot: SlotHat, Rarity: RarityEpic,
		Effect: Effect{Kind: PKHalo, Rate: 0.10, Count: 1, Life: 900, Size: 5, Speed: 0.1, Color: RGB{255, 232, 150}, Glow: true}},
	"frost_helm": {ID: "frost_helm", Name: "Frost Helm", Slot: SlotHat, Rarity: RarityRare,
		Effect: Effect{Kind: PKFrost, Rate: 0.12, Count: 1, Life: 800, Size: 3, Speed: 0.4, Color: RGB{190, 226, 248}}},
	"ember_hood": {ID: "ember_hood", Name: "Ember Hood", Slot: SlotHat, Rarity: RarityRare,
		Effect: Effect{Kind: PKEmber, Rate: 0.14, Count: 1, Life: 700, Size: 3, Speed: 0.5, Color: RGB{252, 150, 58}, Glow: true}},

	"void_cloak": {ID: "void_cloak", Name: "Void Cloak", Slot: SlotCape, Rarity: RarityLegendary,
		Effect: Effect{Kind: PKVoid, Rate: 0.20, Count: 2, Life: 900, Size: 5, Speed: 0.35, Color: RGB{84, 40, 130}, Glow: true}},
	"smoke_mantle": {ID: "smoke_mantle", Name: "Smoke Mantle", Slot: SlotCape, Rarity: RarityRare,
		Effect: Effect{Kind: PKSmoke, Rate: 0.10, Count: 1, Life: 1400, Size: 6, Speed: 0.25, Color: RGB{120, 118, 122}}},
	"petal_cape": {ID: "petal_cape", Name: "Petal Cape", Slot: SlotCape, Rarity: RarityRare,
		Effect: Effect{Kind: PKPetal, Rate: 0.10, Count: 1, Life: 1200, Size: 4, Speed: 0.4, Color: RGB{244, 162, 190}}},
	"autumn_shawl": {ID: "autumn_shawl", Name: "Autumn Shawl", Slot: SlotCape, Rarity: RarityCommon,
		Effect: Effect{Kind: PKLeaf, Rate: 0.07, Count: 1, Life: 1300, Size: 4, Speed: 0.35, Color: RGB{196, 128, 54}}},
	"seraph_wings": {ID: "seraph_wings", Name: "Seraph Wings", Slot: SlotCape, Rarity: RarityGodlike,
		Effect: Effect{Kind: PKWingBeam, Rate: 0.05, Count: 2, Life: 2600, Size: 9, Speed: 0, Color: RGB{255, 244, 200}, Glow: true, Beam: true}},

	"star_aura": {ID: "star_aura", Name: "Star Aura", Slot: SlotAura, Rarity: RarityEpic,
		Effect: Effect{Kind: PKStar, Rate: 0.16, Count: 1, Life: 1000, Size: 4, Speed: 0.2, Color: RGB{255, 240, 160}, Glow: true}},
	"orbit_stones": {ID: "orbit_stones", Name: "Orbit Stones", Slot: SlotAura, Rarity: RarityEpic,
		Effect: Effect{Kind: PKOrbit, Rate: 0.06, Count: 1, Life: 2400, Size: 5, Speed: 0, Color: RGB{180, 190, 210}}},
	"storm_ring": {ID: "storm_ring", Name: "Storm Ring", Slot: SlotAura, Rarity: RarityRare,
		Effect: Effect{Kind: PKRaindrop, Rate: 0.18, Count: 2, Life: 700, Size: 3, Speed: 0.6, Color: RGB{140, 180, 230}}},
	"ascendant_sigil": {ID: "ascendant_sigil", Name: "Ascendant Sigil", Slot: SlotAura, Rarity: RarityGodlike,
		Effect: Effect{Kind: PKBeam, Rate: 0.04, Count: 1, Life: 3000, Size: 12, Speed: 0, Color: RGB{255, 250, 210}, Glow: true, Beam: true}},

	"ash_striders": {ID: "ash_striders", Name: "Ash Striders", Slot: SlotBoots, Rarity: RarityRare,
		Effect: Effect{Kind: PKAsh, Rate: 0.12, Count: 1, Life: 900, Size: 3, Speed: 0.2, Color: RGB{110, 104, 100}}},
	"bubble_greaves": {ID: "bubble_greaves", Name: "Bubble Greaves", Slot: SlotBoots, Rarity: RarityCommon,
		Effect: Effect{Kind: PKBubble, Rate: 0.09, Count: 1, Life: 1100, Size: 4, Speed: 0.3, Color: RGB{190, 225, 245}}},
	"mote_treads": {ID: "mote_treads", Name: "Mote Treads", Slot: SlotBoots, Rarity: RarityEpic,
		Effect: Effect{Kind: PKMote, Rate: 0.15, Count: 2, Life: 750, Size: 2, Speed: 0.25, Color: RGB{220, 255, 220}, Glow: true}},

	"firefly_lantern": {ID: "firefly_lantern", Name: "Firefly Lantern", Slot: SlotHeld, Rarity: RarityRare,
		Effect: Effect{Kind: PKFirefly, Rate: 0.08, Count: 1, Life: 2000, Size: 3, Speed: 0.2, Color: RGB{220, 255, 140}, Glow: true}},
	"rune_blade": {ID: "rune_blade", Name: "Rune Blade", Slot: SlotHeld, Rarity: RarityEpic,
		Effect: Effect{Kind: PKRune, Rate: 0.10, Count: 1, Life: 1100, Size: 5, Speed: 0.15, Color: RGB{120, 230, 230}, Glow: true}},
	"torch_stick": {ID: "torch_stick", Name: "Torch", Slot: SlotHeld, Rarity: RarityCommon,
		Effect: Effect{Kind: PKFlame, Rate: 0.22, Count: 1, Life: 600, Size: 4, Speed: 0.35, Color: RGB{255, 170, 60}, Glow: true}},

	"music_charm": {ID: "music_charm", Name: "Music Charm", Slot: SlotTrinket, Rarity: RarityCommon,
		Effect: Effect{Kind: PKNote, Rate: 0.05, Count: 1, Life: 1300, Size: 4, Speed: 0.25, Color: RGB{240, 240, 250}}},
	"heart_locket": {ID: "heart_locket", Name: "Heart Locket", Slot: SlotTrinket, Rarity: RarityRare,
		Effect: Effect{Kind: PKHeart, Rate: 0.05, Count: 1, Life: 1200, Size: 4, Speed: 0.3, Color: RGB{245, 120, 150}}},
	"confetti_popper": {ID: "confetti_popper", Name: "Confetti Popper", Slot: SlotTrinket, Rarity: RarityCommon,
		Effect: Effect{Kind: PKConfetti, Rate: 0.10, Count: 3, Life: 800, Size: 3, Speed: 0.8, Color: RGB{240, 120, 200}}},
	"wisp_idol": {ID: "wisp_idol", Name: "Wisp Idol", Slot: SlotTrinket, Rarity: RarityLegendary,
		Effect: Effect{Kind: PKWisp, Rate: 0.12, Count: 1, Life: 1600, Size: 5, Speed: 0.15, Color: RGB{170, 220, 255}, Glow: true}},
	"mirror_shard": {ID: "mirror_shard", Name: "Mirror Shard", Slot: SlotTrinket, Rarity: RarityRare,
		Effect: Effect{Kind: PKGlint, Rate: 0.07, Count: 1, Life: 500, Size: 3, Speed: 0.1, Color: RGB{255, 255, 255}, Glow: true}},
}

// defaultItem covers ids missing from the catalog: no glow, no beam,
// barely-there sparkle.
var defaultItem = Item{
	ID:     "unknown",
	Name:   "Curio",
	Slot:   SlotTrinket,
	Rarity: RarityCommon,
	Effect: Effect{Kind: PKSparkle, Rate: 0.02, Count: 1, Life: 500, Size: 2, Speed: 0.2, Color: RGB{220, 220, 220}},
}

// ItemByID resolves a catalog entry, falling back to defaultItem.
func ItemByID(id string) Item {
	if it, ok := itemCatalog[id]; ok {
		return it
	}
	return defaultItem
}

var catalogIDs = func() []string {
	ids := make([]string, 0, len(itemCatalog))
	for id := range itemCatalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}()

// CatalogIDs returns every shop item id in stable order.
func CatalogIDs() []string { return catalogIDs }

// TopTierCount counts equipped items whose rarity scales the pool.
func TopTierCount(equipped []string) int {
	n := 0
	for _, id := range equipped {
		if ItemByID(id).Rarity.TopTier() {
			n++
		}
	}
	return n
}

// slotOffset returns the spawn offset for an item slot, jittered so
// repeated spawns do not stack on one pixel.
func slotOffset(slot ItemSlot, r *Rand) (float64, float64) {
	switch slot {
	case SlotHat:
		return r.RangeF(-7, 7), -PlayerH/2 - 4
	case SlotCape:
		return r.RangeF(-11, 11), r.RangeF(-12, 2)
	case SlotAura:
		// Encircling ring around the torso.
		a := r.RangeF(0, 2*math.Pi)
		return math.Cos(a) * 26, math.Sin(a) * 16
	case SlotBoots:
		return r.RangeF(-8, 8), PlayerH/2 - 4
	case SlotHeld:
		side := 14.0
		if r.Intn(2) == 0 {
			side = -14
		}
		return side, r.RangeF(-4, 6)
	default:
		return r.RangeF(-10, 10), r.RangeF(-8, 4)
	}
}
