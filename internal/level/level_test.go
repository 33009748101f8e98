package level

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"duckslayer/internal/defs"
	"duckslayer/pkg/geom"
)

func sample() Level {
	return Level{
		Name: "sample",
		Cards: []Placement{
			{Kind: defs.CardNest, Position: geom.V(345, 120)},
			{Kind: defs.CardQuakka, Position: geom.V(615, 560)},
		},
		StartingDeck: []defs.CardKind{defs.CardWaterball, defs.CardFarmer},
		Win:          Condition{Kind: defs.CardQuakka, CountDead: 1},
		Lose:         Condition{Kind: defs.CardNest, CountDead: 1},
	}
}

func TestDecodeJSON(t *testing.T) {
	src := `{
		"cards": [{"card": "nest", "x": 100, "y": 100}],
		"starting_deckbar": ["Quakka"],
		"win_condition": {"card": "Quakka", "count_dead": 3},
		"lose_condition": {"card": "Nest", "count_dead": 1}
	}`
	lvl, err := Decode(strings.NewReader(src), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, []Placement{{Kind: defs.CardNest, Position: geom.V(100, 100)}}, lvl.Cards)
	assert.Equal(t, []defs.CardKind{defs.CardQuakka}, lvl.StartingDeck)
	assert.Equal(t, Condition{Kind: defs.CardQuakka, CountDead: 3}, lvl.Win)
}

func TestEncodeDecodeBothFormats(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatMsgpack} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, sample(), format))
			got, err := Decode(&buf, format)
			require.NoError(t, err)
			assert.Equal(t, sample(), got)
		})
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Level)
	}{
		{"zero win count", func(l *Level) { l.Win.CountDead = 0 }},
		{"no lose card", func(l *Level) { l.Lose.Kind = defs.CardNone }},
		{"card in river", func(l *Level) { l.Cards[0].Position = geom.V(100, 380) }},
		{"card off map", func(l *Level) { l.Cards[0].Position = geom.V(-10, 100) }},
		{"bad deck slot", func(l *Level) { l.StartingDeck[0] = defs.CardKind(42) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl := sample().Clone()
			tt.mutate(&lvl)
			assert.ErrorIs(t, lvl.Validate(), ErrInvalidLevel)
		})
	}
	valid := sample()
	assert.NoError(t, valid.Validate())
}

func TestDecodeUnknownCard(t *testing.T) {
	src := `{"cards": [{"card": "Goose", "x": 1, "y": 1}],
		"win_condition": {"card": "Quakka", "count_dead": 1},
		"lose_condition": {"card": "Nest", "count_dead": 1}}`
	_, err := Decode(strings.NewReader(src), FormatJSON)
	assert.ErrorIs(t, err, ErrInvalidLevel)
	assert.ErrorIs(t, err, defs.ErrUnknownCard)
}

func TestSaveLoadByExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"one.level.json", "two.level.msgpack"} {
		path := filepath.Join(dir, name)
		lvl := sample()
		lvl.Name = ""
		require.NoError(t, Save(path, lvl))

		got, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, strings.SplitN(name, ".", 2)[0], got.Name)
		assert.Equal(t, lvl.Cards, got.Cards)
	}

	_, err := Load(filepath.Join(dir, "level.yaml"))
	assert.Error(t, err)
}

func TestShippedLevelsAreValid(t *testing.T) {
	paths, err := filepath.Glob("../../assets/levels/*.level.json")
	require.NoError(t, err)
	require.NotEmpty(t, paths)
	for _, path := range paths {
		_, err := Load(path)
		assert.NoError(t, err, path)
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	lvl := sample()
	c := lvl.Clone()
	c.Cards[0].Kind = defs.CardFarmer
	assert.Equal(t, defs.CardNest, lvl.Cards[0].Kind)
}

func TestLoadDirSortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	a, b := sample(), sample()
	a.Name, b.Name = "", ""
	require.NoError(t, Save(filepath.Join(dir, "b.level.msgpack"), b))
	require.NoError(t, Save(filepath.Join(dir, "a.level.json"), a))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	levels, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, levels, 2)
	assert.Equal(t, "a", levels[0].Name)
	assert.Equal(t, "b", levels[1].Name)
}
