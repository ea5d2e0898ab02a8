package main

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vpdetect/internal/config"
	"vpdetect/internal/scene"
	"vpdetect/internal/synth"
	"vpdetect/internal/vanishing"
)

func TestBuildRoundTrip(t *testing.T) {
	con := &config.Default().Synth

	for _, split := range []bool{false, true} {
		s, err := build("box", con, synth.DefaultAnchors, 30, 15, 5, split)
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "box.vpscene")
		require.NoError(t, s.Save(path))
		loaded, err := scene.Load(path)
		require.NoError(t, err)

		segments, principal, err := loaded.Working()
		require.NoError(t, err)
		assert.Equal(t, 320.0, principal.X)
		assert.Equal(t, 240.0, principal.Y)

		estimates := vanishing.EstimateAllCasesFromSegments(segments, principal)
		want := 0
		if split {
			want = 3
		}
		e := estimates[want]
		require.True(t, e.HasFocal(), "split %v", split)
		require.NotNil(t, loaded.Truth)

		// A split scene may admit a second, smaller focal length; the true
		// one is then among the solutions rather than necessarily first.
		var focals []float64
		if split {
			for _, sol := range vanishing.SolveSplit(vanishing.LinesFromSegments(segments), principal, e.Grouping.Order) {
				focals = append(focals, sol.Focal)
			}
		} else {
			focals = []float64{e.Focal}
		}
		found := false
		for _, f := range focals {
			if f > 0 && math.Abs(f-loaded.Truth.Focal) < 1e-6*loaded.Truth.Focal {
				found = true
			}
		}
		assert.True(t, found, "split %v: focals %v", split, focals)
	}
}

func TestBuildRejectsFocal(t *testing.T) {
	con := config.Default().Synth
	con.Focal = -3
	_, err := build("bad", &con, synth.DefaultAnchors, 0, 0, 0, false)
	assert.Error(t, err)
}
