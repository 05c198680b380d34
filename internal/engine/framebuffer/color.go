package framebuffer

// Color is a packed 32-bit ARGB pixel (0xAARRGGBB).
type Color uint32

// Predefined colors.
const (
	Black  Color = 0xFF000000
	White  Color = 0xFFFFFFFF
	Red    Color = 0xFFFF0000
	Green  Color = 0xFF00FF00
	Yellow Color = 0xFFFFFF00
	Orange Color = 0xFFFFA500
	Amber  Color = 0xFFFFEA00
	Blush  Color = 0xFFE4C1AD
)

// RGB creates an opaque color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return 0xFF000000 | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }
