package extractor

import (
	"math/rand"
	"testing"

	"github.com/brackishlabs/palettecore/pkg/colorspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidImage(hex string, width, height int) ImageData {
	rgb, err := colorspace.ParseHex(hex)
	if err != nil {
		panic(err)
	}
	data := make([]byte, width*height*4)
	for i := 0; i < width*height; i++ {
		off := i * 4
		data[off] = rgb.R
		data[off+1] = rgb.G
		data[off+2] = rgb.B
		data[off+3] = byte(rgb.A * 255)
	}
	return ImageData{Data: data, Width: width, Height: height}
}

func TestExtractFailsOnEmptyImage(t *testing.T) {
	_, err := Extract(ImageData{}, DefaultOptions(), nil, nil, nil)
	assert.Error(t, err)
}

func TestExtractSolidRedImage(t *testing.T) {
	img := solidImage("#FF0000FF", 4, 4)
	opts := DefaultOptions()
	opts.MaxColors = 3

	swatches, err := Extract(img, opts, rand.New(rand.NewSource(1)), nil, nil)
	require.NoError(t, err)
	require.Len(t, swatches, 1)
	assert.Equal(t, 16, swatches[0].Population)
	assert.Equal(t, "#FF0000", colorspace.ToHex(colorspace.LabToRGB(swatches[0].Color)))
}

func TestExtractHalfRedHalfBlue(t *testing.T) {
	redRGB, _ := colorspace.ParseHex("#FF0000FF")
	blueRGB, _ := colorspace.ParseHex("#0000FFFF")
	data := []byte{
		redRGB.R, redRGB.G, redRGB.B, 255,
		blueRGB.R, blueRGB.G, blueRGB.B, 255,
	}
	img := ImageData{Data: data, Width: 2, Height: 1}

	opts := DefaultOptions()
	opts.MaxColors = 2

	swatches, err := Extract(img, opts, rand.New(rand.NewSource(1)), nil, nil)
	require.NoError(t, err)
	require.Len(t, swatches, 2)

	totalPop := 0
	for _, s := range swatches {
		assert.Equal(t, 1, s.Population)
		totalPop += s.Population
	}
	assert.Equal(t, 2, totalPop)
}

func TestExtractDropsFullyTransparentPixels(t *testing.T) {
	redRGB, _ := colorspace.ParseHex("#FF0000FF")
	data := []byte{
		redRGB.R, redRGB.G, redRGB.B, 255,
		0, 255, 0, 0, // fully transparent green
	}
	img := ImageData{Data: data, Width: 2, Height: 1}

	opts := DefaultOptions()
	opts.MaxColors = 2

	swatches, err := Extract(img, opts, rand.New(rand.NewSource(1)), nil, nil)
	require.NoError(t, err)
	require.Len(t, swatches, 1)
	assert.Equal(t, 1, swatches[0].Population)
	assert.Equal(t, "#FF0000", colorspace.ToHex(colorspace.LabToRGB(swatches[0].Color)))
}

func TestExtractReturnsEmptyWhenEverythingIsFiltered(t *testing.T) {
	data := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	img := ImageData{Data: data, Width: 2, Height: 1}

	swatches, err := Extract(img, DefaultOptions(), rand.New(rand.NewSource(1)), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, swatches)
}

func TestExtractHonorsCancellation(t *testing.T) {
	img := solidImage("#FF0000FF", 4, 4)
	cancel := func() bool { return true }
	_, err := Extract(img, DefaultOptions(), rand.New(rand.NewSource(1)), cancel, nil)
	assert.Error(t, err)
}

func TestExtractWithDBSCAN(t *testing.T) {
	redRGB, _ := colorspace.ParseHex("#FF0000FF")
	blueRGB, _ := colorspace.ParseHex("#0000FFFF")
	data := make([]byte, 0, 8*4)
	for i := 0; i < 4; i++ {
		data = append(data, redRGB.R, redRGB.G, redRGB.B, 255)
	}
	for i := 0; i < 4; i++ {
		data = append(data, blueRGB.R, blueRGB.G, blueRGB.B, 255)
	}
	img := ImageData{Data: data, Width: 8, Height: 1}

	opts := DefaultOptions()
	opts.Algorithm = AlgorithmDBSCAN
	opts.DBSCAN = DBSCANParams{MinPoints: 2, Radius: 0.2}

	swatches, err := Extract(img, opts, rand.New(rand.NewSource(1)), nil, nil)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(swatches), 1)
}
