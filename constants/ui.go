package constants

// Cell glyphs
const (
	SnakeGlyph = 's'
	FoodGlyph  = 'f'
)

// Palette index used for snake foreground and background (256-color mode)
const SnakePaletteIndex = 0xa2

// Status and end-screen text
const (
	// StatusFormat takes score, quit key, movement keys, stop key
	StatusFormat = "Score: %d | '%s' quit | '%s' move | '%s' stop"

	// GameOverFormat takes final score, restart key, quit key
	GameOverFormat = "Game Over | Final Score: %d | '%s' new game | '%s' quit"

	// DebugFormat takes head x, head y, scene width, scene height, direction, boundary
	DebugFormat = "| Debug Info: | Head: %d,%d | Scene: %d, %d | Direction: %s | Boundary: %s"
)
