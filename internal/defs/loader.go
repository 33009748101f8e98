// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadCardConsts reads a card tuning file. Cards missing from the file keep
// their built-in defaults; cards present replace the default entry entirely.
func LoadCardConsts(path string) (CardConsts, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read card definitions file: %w", err)
	}
	return ParseCardConsts(file)
}

// ParseCardConsts decodes card tuning from JSON bytes.
func ParseCardConsts(data []byte) (CardConsts, error) {
	var overrides map[CardKind]CardDefinition
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to unmarshal card definitions: %w", err)
	}

	consts := DefaultCardConsts()
	for kind, def := range overrides {
		if err := def.validate(kind); err != nil {
			return nil, err
		}
		consts[kind] = def
	}
	return consts, nil
}

func (d CardDefinition) validate(kind CardKind) error {
	if d.Health < 0 || d.Damage < 0 || d.Range < 0 || d.Speed < 0 || d.Radius < 0 {
		return fmt.Errorf("card %s: negative stat", kind)
	}
	if d.Damage > 0 && d.Radius == 0 && d.Cooldown <= 0 {
		return fmt.Errorf("card %s: attacker needs a positive cooldown", kind)
	}
	if d.Radius > 0 && d.Delay <= 0 {
		return fmt.Errorf("card %s: explosion needs a positive delay", kind)
	}
	return nil
}
