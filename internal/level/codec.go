// internal/level/codec.go
package level

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"duckslayer/internal/defs"
	"duckslayer/pkg/geom"
)

// Format is an on-disk level encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

// FormatFromPath picks the format by file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".msgpack", ".mpk":
		return FormatMsgpack, nil
	default:
		return "", fmt.Errorf("unsupported level file extension %q", filepath.Ext(path))
	}
}

// файловое представление: карты хранятся строками
type levelFile struct {
	Name            string          `json:"name,omitempty" msgpack:"name,omitempty"`
	Cards           []placementFile `json:"cards" msgpack:"cards"`
	StartingDeckbar []string        `json:"starting_deckbar" msgpack:"starting_deckbar"`
	WinCondition    conditionFile   `json:"win_condition" msgpack:"win_condition"`
	LoseCondition   conditionFile   `json:"lose_condition" msgpack:"lose_condition"`
}

type placementFile struct {
	Card string  `json:"card" msgpack:"card"`
	X    float64 `json:"x" msgpack:"x"`
	Y    float64 `json:"y" msgpack:"y"`
}

type conditionFile struct {
	Card      string `json:"card" msgpack:"card"`
	CountDead uint32 `json:"count_dead" msgpack:"count_dead"`
}

// Load reads and validates a level file.
func Load(path string) (Level, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Level{}, err
	}
	file, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("failed to read level file: %w", err)
	}
	lvl, err := Decode(bytes.NewReader(file), format)
	if err != nil {
		return Level{}, fmt.Errorf("%s: %w", path, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		lvl.Name = strings.TrimSuffix(lvl.Name, ".level")
	}
	return lvl, nil
}

// Save validates lvl and writes it in the format implied by path.
func Save(path string, lvl Level) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, lvl, format); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write level file: %w", err)
	}
	return nil
}

// Decode parses and validates a level.
func Decode(r io.Reader, format Format) (Level, error) {
	var file levelFile
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&file); err != nil {
			return Level{}, fmt.Errorf("failed to unmarshal level: %w", err)
		}
	case FormatMsgpack:
		if err := msgpack.NewDecoder(r).Decode(&file); err != nil {
			return Level{}, fmt.Errorf("failed to unmarshal level: %w", err)
		}
	default:
		return Level{}, fmt.Errorf("unknown level format %q", format)
	}

	lvl, err := file.toLevel()
	if err != nil {
		return Level{}, err
	}
	if err := lvl.Validate(); err != nil {
		return Level{}, err
	}
	return lvl, nil
}

// Encode validates and writes a level.
func Encode(w io.Writer, lvl Level, format Format) error {
	if err := lvl.Validate(); err != nil {
		return err
	}
	file := fromLevel(lvl)
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(file)
	case FormatMsgpack:
		return msgpack.NewEncoder(w).Encode(file)
	default:
		return fmt.Errorf("unknown level format %q", format)
	}
}

func (f levelFile) toLevel() (Level, error) {
	lvl := Level{Name: f.Name}
	for _, p := range f.Cards {
		kind, err := defs.ParseCardKind(p.Card)
		if err != nil {
			return Level{}, fmt.Errorf("%w: %w", ErrInvalidLevel, err)
		}
		lvl.Cards = append(lvl.Cards, Placement{Kind: kind, Position: geom.V(p.X, p.Y)})
	}
	for _, name := range f.StartingDeckbar {
		kind, err := defs.ParseCardKind(name)
		if err != nil {
			return Level{}, fmt.Errorf("%w: %w", ErrInvalidLevel, err)
		}
		lvl.StartingDeck = append(lvl.StartingDeck, kind)
	}
	var err error
	if lvl.Win, err = f.WinCondition.toCondition(); err != nil {
		return Level{}, err
	}
	if lvl.Lose, err = f.LoseCondition.toCondition(); err != nil {
		return Level{}, err
	}
	return lvl, nil
}

func (c conditionFile) toCondition() (Condition, error) {
	kind, err := defs.ParseCardKind(c.Card)
	if err != nil {
		return Condition{}, fmt.Errorf("%w: %w", ErrInvalidLevel, err)
	}
	return Condition{Kind: kind, CountDead: c.CountDead}, nil
}

func fromLevel(lvl Level) levelFile {
	file := levelFile{
		Name:            lvl.Name,
		Cards:           make([]placementFile, 0, len(lvl.Cards)),
		StartingDeckbar: make([]string, 0, len(lvl.StartingDeck)),
		WinCondition:    conditionFile{Card: lvl.Win.Kind.String(), CountDead: lvl.Win.CountDead},
		LoseCondition:   conditionFile{Card: lvl.Lose.Kind.String(), CountDead: lvl.Lose.CountDead},
	}
	for _, p := range lvl.Cards {
		file.Cards = append(file.Cards, placementFile{Card: p.Kind.String(), X: p.Position.X, Y: p.Position.Y})
	}
	for _, k := range lvl.StartingDeck {
		file.StartingDeckbar = append(file.StartingDeckbar, k.String())
	}
	return file
}

// LoadDir loads every level file in dir, sorted by file name.
func LoadDir(dir string) ([]Level, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read level directory: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, err := FormatFromPath(e.Name()); err == nil {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	levels := make([]Level, 0, len(names))
	for _, name := range names {
		lvl, err := Load(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}
