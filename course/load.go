package course

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/a-bouts/nav-bot/latlon"
)

// Load reads a course file, yaml or json depending on its extension, and
// appends the closing checkpoint at start.
func Load(path string, start latlon.LatLon) (*Course, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading course file '%s': %w", path, err)
	}

	var c Course
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &c)
	case ".json":
		err = json.Unmarshal(content, &c)
	default:
		return nil, fmt.Errorf("unknown course file format '%s'", path)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing course file '%s': %w", path, err)
	}

	if c.Name == "" {
		c.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	if len(c.Checkpoints) == 0 {
		return nil, fmt.Errorf("invalid course file '%s': %w", path, ErrEmptyCourse)
	}
	for i := range c.Checkpoints {
		c.Checkpoints[i].Reached = false
	}

	res := New(c.Name, c.Checkpoints, start)
	if err := res.Validate(); err != nil {
		return nil, fmt.Errorf("invalid course file '%s': %w", path, err)
	}
	return res, nil
}
