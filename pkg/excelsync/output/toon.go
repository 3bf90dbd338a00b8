package output

import (
	"encoding/json"
	"fmt"

	toon "github.com/mateuszkardas/toon-go"
)

// ToTOON renders v in TOON, a compact text form meant for reading rather
// than round-tripping. Values go through their JSON form first, so custom
// JSON encodings such as integer column keys are respected.
func ToTOON(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode: %w", err)
	}
	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return "", fmt.Errorf("encode: %w", err)
	}
	return toon.Marshal(generic, nil)
}
