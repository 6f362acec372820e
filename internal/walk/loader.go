package walk

import (
	"embed"
	"encoding/json"
	"fmt"
)

// arenaFS embeds the bundled arena definitions at build time.
//
//go:embed arenas/*.json
var arenaFS embed.FS

// load reads and unmarshals a JSON file from the embedded filesystem.
func load[T any](filename string) (T, error) {
	var result T

	content, err := arenaFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}
