package game

// Fixed world configuration shared with the session layer.
// These are protocol constants, not tunables.
const (
	TileSize = 32
	Scale    = 2

	PlayerW = 48.0
	PlayerH = 64.0
)

// Window defaults.
const (
	WindowWidth  = 1280
	WindowHeight = 800
	DefaultZoom  = 1.0
	MinZoom      = 0.5
	MaxZoom      = 3.0
)

// Map extents (world pixels).
const (
	CafeWidth    = 1280
	CafeHeight   = 960
	MarketWidth  = 1920
	MarketHeight = 1280
	ForestWidth  = 3200
	ForestHeight = 2400
)

// Plaza geometry (forest map). The plaza is a walled circle around the
// fountain; villagers wander the annulus between fountain apron and wall.
const (
	PlazaCX = 1600.0
	PlazaCY = 1200.0

	PlazaWallRadius    = 420.0
	PlazaWallThickness = 26.0
	PlazaWanderMin     = 120.0
	PlazaWanderMax     = 360.0

	FountainRadius = 90.0

	BattlementCount = 64
)

// Centurion tower platforms sit on the wall ring. Integration past
// PlatformRadius*CenturionLeash converts the move into a retarget.
const (
	CenturionPlatformRadius = 35.0
	CenturionLeash          = 0.7
)

// Agent movement. Speeds are px per 16 ms reference frame.
const (
	VillagerCount  = 14
	CenturionCount = 4
	DealerCount    = 6

	VillagerSpeed  = 0.5
	CenturionSpeed = 0.2

	RetargetInterval = 4000.0
	RetargetStagger  = 350.0
	ArrivalEpsilon   = 2.0
)

// Speech.
const (
	SpeechTTL       = 5000.0
	ChatterInterval = 12000.0
	ChatterWindow   = 400.0
	ChatterChance   = 0.35
)

// Cosmetic particle pools. Per-owner capacity grows with equipped
// top-tier items; beams are never evicted while non-beams remain.
const (
	ParticleBase    = 80
	ParticlePerTier = 40
	FloorSpanChance = 0.02
)

// Simulation culling. Agents outside the camera but within
// CullNearFactor viewports re-evaluate at most every OffscreenSimMs;
// beyond CullFarFactor viewports they are skipped outright.
const (
	CullNearFactor = 1.5
	CullFarFactor  = 2.5
	OffscreenSimMs = 500.0
)

// Forest trees.
const (
	TreeTarget     = 120
	TreeMinSpacing = 90.0
	TreeMargin     = 60.0
)

// Spatial index.
const (
	QuadCapacity = 16
	QuadMaxDepth = 8
)

// Baked font atlas layout (96 printable ASCII glyphs, 32 cols x 3 rows).
const (
	FontCellW  = 12
	FontCellH  = 16
	FontCols   = 32
	FontRows   = 3
	FontAtlasW = FontCellW * FontCols // 384
	FontAtlasH = FontCellH * FontRows // 48
)
