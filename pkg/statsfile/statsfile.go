// Package statsfile loads per-user statistics from YAML or JSON files.
// The data is trusted input: records are decoded as-is and shape validation
// happens at render time.
package statsfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/leetboard/pkg/fsutil"
	"github.com/yaklabco/leetboard/pkg/leaderboard"
)

// ErrUnsupportedFormat indicates a stats file with an unrecognized extension.
var ErrUnsupportedFormat = errors.New("unsupported stats file format")

// Load reads and decodes a stats file. The decoder is selected by file
// extension: .yaml/.yml or .json.
func Load(ctx context.Context, path string) ([]leaderboard.UserStat, error) {
	content, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load stats: %w", err)
	}

	var stats []leaderboard.UserStat

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &stats); err != nil {
			return nil, fmt.Errorf("parse yaml %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(content, &stats); err != nil {
			return nil, fmt.Errorf("parse json %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s (expected .yaml, .yml, or .json)", ErrUnsupportedFormat, path)
	}

	return stats, nil
}
