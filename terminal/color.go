package terminal

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// RGBBlack is the zero value black color
var RGBBlack = RGB{0, 0, 0}

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// Color cube values for 6x6x6 palette (indices 16-231)
// Levels: 0, 95, 135, 175, 215, 255
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// cubeIndex maps 0-255 to nearest cube index 0-5, pre-computed at init
var cubeIndex [256]uint8

func init() {
	for i := 0; i < 256; i++ {
		best := 0
		bestDist := absInt(i - int(cubeValues[0]))
		for j := 1; j < 6; j++ {
			d := absInt(i - int(cubeValues[j]))
			if d < bestDist {
				bestDist = d
				best = j
			}
		}
		cubeIndex[i] = uint8(best)
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// RGBTo256 converts RGB to the nearest 256-color palette index
// Grayscale ramp (232-255) is preferred when r ≈ g ≈ b and it is closer
// than the color cube match
func RGBTo256(c RGB) uint8 {
	gray := (int(c.R) + int(c.G) + int(c.B)) / 3
	maxDiff := absInt(int(c.R) - gray)
	if d := absInt(int(c.G) - gray); d > maxDiff {
		maxDiff = d
	}
	if d := absInt(int(c.B) - gray); d > maxDiff {
		maxDiff = d
	}

	if maxDiff < 10 {
		// Close to grayscale; ramp: 232-255 maps to luminance 8, 18, ..., 238
		if gray < 4 {
			return 16 // Cube black
		}
		if gray > 243 {
			return 231 // Cube white
		}
		grayIdx := uint8(232 + (gray-8)/10)

		grayLevel := 8 + int(grayIdx-232)*10
		grayDist := absInt(int(c.R)-grayLevel) + absInt(int(c.G)-grayLevel) + absInt(int(c.B)-grayLevel)

		cr, cg, cb := cubeIndex[c.R], cubeIndex[c.G], cubeIndex[c.B]
		cubeDist := absInt(int(c.R)-int(cubeValues[cr])) +
			absInt(int(c.G)-int(cubeValues[cg])) +
			absInt(int(c.B)-int(cubeValues[cb]))

		if grayDist < cubeDist {
			return grayIdx
		}
	}

	return 16 + 36*cubeIndex[c.R] + 6*cubeIndex[c.G] + cubeIndex[c.B]
}
