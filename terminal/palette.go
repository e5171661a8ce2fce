package terminal

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color cube values for the 6x6x6 palette (indices 16-231)
// Levels: 0, 95, 135, 175, 215, 255
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// cubeIndex maps 0-255 to nearest cube index 0-5, computed at init
var cubeIndex [256]uint8

// grayscaleStart is the first grayscale index (232-255 = 24 shades)
const grayscaleStart = 232

// ansi16 holds xterm default values for the 16-color palette
var ansi16 = [16]RGB{
	{0, 0, 0},       // black
	{205, 0, 0},     // red
	{0, 205, 0},     // green
	{205, 205, 0},   // yellow
	{0, 0, 238},     // blue
	{205, 0, 205},   // magenta
	{0, 205, 205},   // cyan
	{229, 229, 229}, // white
	{127, 127, 127}, // bright black
	{255, 0, 0},     // bright red
	{0, 255, 0},     // bright green
	{255, 255, 0},   // bright yellow
	{92, 92, 255},   // bright blue
	{255, 0, 255},   // bright magenta
	{0, 255, 255},   // bright cyan
	{255, 255, 255}, // bright white
}

// ansi16Lab caches the Lab representation of the 16-color palette
var ansi16Lab [16]colorful.Color

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

	for i, c := range ansi16 {
		ansi16Lab[i] = toColorful(c)
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// RGBTo256 finds the nearest 256-color palette index for an RGB value
func RGBTo256(c RGB) uint8 {
	r, g, b := c.R, c.G, c.B

	// Check if the grayscale ramp is a better match (when r ≈ g ≈ b)
	// Ramp: 232-255 maps to luminance 8, 18, 28, ..., 238
	// Channels widen before the sum, which overflows uint8
	gray := (int(r) + int(g) + int(b)) / 3
	maxDiff := max(
		absInt(int(r)-gray),
		absInt(int(g)-gray),
		absInt(int(b)-gray),
	)

	if maxDiff < 10 {
		if gray < 4 {
			// Pure black lives in the cube at index 16
			return 16
		}
		if gray > 243 {
			// Pure white lives in the cube at index 231
			return 231
		}
		grayIdx := uint8(grayscaleStart + (gray-8)/10)

		// Compare grayscale match vs color cube match
		grayLevel := 8 + int(grayIdx-grayscaleStart)*10
		grayDist := absInt(int(r)-grayLevel) + absInt(int(g)-grayLevel) + absInt(int(b)-grayLevel)

		cubeR := cubeIndex[r]
		cubeG := cubeIndex[g]
		cubeB := cubeIndex[b]
		cubeDist := absInt(int(r)-int(cubeValues[cubeR])) +
			absInt(int(g)-int(cubeValues[cubeG])) +
			absInt(int(b)-int(cubeValues[cubeB]))

		if grayDist < cubeDist {
			return grayIdx
		}
	}

	return 16 + 36*cubeIndex[r] + 6*cubeIndex[g] + cubeIndex[b]
}

// RGBTo16 finds the perceptually nearest ANSI 16-color index for an RGB value
func RGBTo16(c RGB) uint8 {
	target := toColorful(c)
	best := 0
	bestDist := target.DistanceLab(ansi16Lab[0])
	for i := 1; i < 16; i++ {
		d := target.DistanceLab(ansi16Lab[i])
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return uint8(best)
}
