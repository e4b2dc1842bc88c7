package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	all := All()

	require.Len(t, all, 3)
	assert.Equal(t, "Inter", all[0].Name)
	assert.Equal(t, "Lusitana", all[1].Name)
	assert.Equal(t, "FontAwesome", all[2].Name)
}

func TestFonts(t *testing.T) {
	assert.Equal(t, []string{"latin"}, Inter().Subsets)
	assert.Empty(t, Inter().Weights)

	assert.Equal(t, SourceGoogle, Lusitana().Source)
	assert.Equal(t, []string{"400", "700"}, Lusitana().Weights)

	awesome := FontAwesome()
	assert.Equal(t, SourceLocal, awesome.Source)
	assert.Equal(t, "public/fontawesome-webfont.ttf", awesome.Src)
	assert.Equal(t, "swap", awesome.Display)
}

func TestAll_ReturnsIndependentSlices(t *testing.T) {
	first := All()
	first[1].Weights[0] = "100"

	assert.Equal(t, "400", All()[1].Weights[0])
}
