package cubewalk_test

import (
	"os"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubewalk"
	"github.com/katalvlaran/cubewalk/compass"
	"github.com/katalvlaran/cubewalk/cubenet"
	"github.com/katalvlaran/cubewalk/notes"
	"github.com/katalvlaran/cubewalk/topology"
	"github.com/katalvlaran/cubewalk/walk"
)

// catalogue lists nets with known passwords for both variants.
type catalogue struct {
	Cases []struct {
		Name         string `toml:"name"`
		FaceSize     int    `toml:"face_size"`
		CubePassword int    `toml:"cube_password"`
		FlatPassword int    `toml:"flat_password"`
		Notes        string `toml:"notes"`
	} `toml:"case"`
}

func loadCatalogue(t *testing.T) catalogue {
	t.Helper()
	f, err := os.Open("testdata/catalogue.toml")
	require.NoError(t, err)
	defer f.Close()

	var c catalogue
	_, err = toml.NewDecoder(f).Decode(&c)
	require.NoError(t, err)
	require.NotEmpty(t, c.Cases)

	return c
}

func TestSolve_Catalogue(t *testing.T) {
	for _, tc := range loadCatalogue(t).Cases {
		n, err := notes.Parse(strings.NewReader(tc.Notes))
		require.NoError(t, err, tc.Name)

		for _, v := range []struct {
			variant  cubewalk.Variant
			password int
		}{{cubewalk.Cube, tc.CubePassword}, {cubewalk.Flat, tc.FlatPassword}} {
			t.Run(tc.Name+"/"+v.variant.String(), func(t *testing.T) {
				res, err := cubewalk.Solve(n, cubewalk.WithFaceSize(tc.FaceSize), cubewalk.WithVariant(v.variant))
				require.NoError(t, err)
				assert.Equal(t, v.password, res.Password())

				// Inferring the face size gives the same answer.
				inferred, err := cubewalk.Solve(n, cubewalk.WithVariant(v.variant))
				require.NoError(t, err)
				assert.Equal(t, res.Final, inferred.Final)
				assert.Equal(t, tc.FaceSize, inferred.Net.Size())
			})
		}
	}
}

func TestSolve_Result(t *testing.T) {
	n, err := notes.Load("notes/testdata/example.txt")
	require.NoError(t, err)

	logger, hook := logtest.NewNullLogger()
	res, err := cubewalk.Solve(n, cubewalk.WithLogger(logger))
	require.NoError(t, err)

	assert.Equal(t, walk.State{Pos: cubenet.Coord{X: 6, Y: 4}, Facing: compass.Up}, res.Final)
	require.NotNil(t, res.Topology)
	assert.Len(t, res.Topology.Entries(), 24)
	assert.Equal(t, "        >>v#    ", strings.Split(res.Render(), "\n")[0])

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, logrus.InfoLevel, last.Level)
	assert.Equal(t, 5031, last.Data["password"])
}

// TestSolve_FlatNeedsNoFold walks a 2×3 block rectangle, which wraps flat
// but cannot fold into a cube.
func TestSolve_FlatNeedsNoFold(t *testing.T) {
	n := &notes.Notes{Rows: []string{"...", "..."}, Path: "5R1"}

	res, err := cubewalk.Solve(n, cubewalk.WithVariant(cubewalk.Flat))
	require.NoError(t, err)
	assert.Nil(t, res.Topology)
	assert.Equal(t, walk.State{Pos: cubenet.Coord{X: 2, Y: 1}, Facing: compass.Down}, res.Final)
	assert.Equal(t, 2013, res.Password())

	_, err = cubewalk.Solve(n)
	assert.ErrorIs(t, err, topology.ErrInvalidTopologyCount)
}

func TestSolve_Errors(t *testing.T) {
	blank := &notes.Notes{Rows: []string{""}, Path: "1"}

	_, err := cubewalk.Solve(blank, cubewalk.WithFaceSize(0))
	assert.ErrorIs(t, err, cubewalk.ErrOptionViolation)
	_, err = cubewalk.Solve(blank, cubewalk.WithVariant(cubewalk.Variant(7)))
	assert.ErrorIs(t, err, cubewalk.ErrOptionViolation)
	_, err = cubewalk.Solve(blank, cubewalk.WithLogger(nil))
	assert.ErrorIs(t, err, cubewalk.ErrOptionViolation)
	_, err = cubewalk.Solve(nil)
	assert.ErrorIs(t, err, notes.ErrEmptyNet)

	_, err = cubewalk.Solve(blank)
	assert.ErrorIs(t, err, cubenet.ErrMalformedNet)

	n, err := notes.Load("notes/testdata/example.txt")
	require.NoError(t, err)
	n.Path = "10X"
	_, err = cubewalk.Solve(n)
	assert.ErrorIs(t, err, walk.ErrInvalidPath)
}
