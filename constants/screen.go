package constants

// Display Constants
const (
	// ScreenWidth is the horizontal resolution of the monochrome display
	ScreenWidth = 128

	// ScreenHeight is the vertical resolution of the monochrome display
	ScreenHeight = 64

	// CenterY is the row the lattice is anchored on; row 0 triangles are centered here
	CenterY = 31
)

// Terminal Presentation Constants
const (
	// TerminalRows is the number of character rows used to show the display (two pixels per cell)
	TerminalRows = ScreenHeight / 2

	// TerminalColumns is the number of character columns used to show the display
	TerminalColumns = ScreenWidth
)

// Window Presentation Constants
const (
	// WindowScale is the integer zoom of the desktop window
	WindowScale = 6

	// WindowTitle is the desktop window caption
	WindowTitle = "Karl Eido"
)

// Panel Colors as 0xRRGGBB
const (
	// PixelOnColor is a lit (black) display pixel
	PixelOnColor = 0x000000

	// PixelOffColor is the backlit panel background
	PixelOffColor = 0xFF8200
)

// HalfBlock is drawn with the upper pixel as foreground and the lower pixel as background
const HalfBlock = '▀'
