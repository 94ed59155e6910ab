package walk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubewalk/compass"
	"github.com/katalvlaran/cubewalk/walk"
)

func TestParsePath(t *testing.T) {
	got, err := walk.ParsePath(" 10R5L0\n")
	require.NoError(t, err)
	assert.Equal(t, []walk.Instruction{
		{Kind: walk.Move, Steps: 10},
		{Kind: walk.Rotate, Turn: compass.Clockwise},
		{Kind: walk.Move, Steps: 5},
		{Kind: walk.Rotate, Turn: compass.Anticlockwise},
		{Kind: walk.Move, Steps: 0},
	}, got)

	got, err = walk.ParsePath("10R5L5R10L4R5L5")
	require.NoError(t, err)
	assert.Len(t, got, 13)
	assert.Equal(t, "L", got[3].String())
	assert.Equal(t, "5", got[4].String())
	assert.Equal(t, "R", got[5].String())
	assert.Equal(t, "10", got[6].String())
	assert.Equal(t, "5", got[12].String())
}

func TestParsePath_Errors(t *testing.T) {
	for _, in := range []string{"", "   ", "R5", "10R", "10RR5", "10X5", "-1", "10 R5", "99999999999999999999"} {
		_, err := walk.ParsePath(in)
		assert.ErrorIs(t, err, walk.ErrInvalidPath, "%q", in)
	}
}
