// Package levels resolves level files by name: a file in the level directory
// on disk wins over the copy embedded in the binary.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.yaml *.tengo scripts/*.tengo
var LevelsFS embed.FS

// DefaultDir is checked for level overrides when no directory is configured.
const DefaultDir = "levels"

var ErrUnknownFormat = errors.New("levels: unknown level format")

// Read returns the raw level source, preferring dir on disk.
func Read(dir, name string) ([]byte, error) {
	clean := cleanLevelPath(name)
	if clean == "" {
		return nil, fmt.Errorf("levels: read: empty name")
	}
	if dir != "" {
		if data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(clean))); err == nil {
			return data, nil
		}
	}
	data, err := LevelsFS.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	return data, nil
}

// Names lists the embedded levels. Helper scripts under scripts/ are not
// levels on their own.
func Names() []string {
	var out []string
	_ = fs.WalkDir(LevelsFS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		if IsLevelFile(p) && !strings.HasPrefix(p, "scripts/") {
			out = append(out, p)
		}
		return nil
	})
	sort.Strings(out)
	return out
}

// IsLevelFile reports whether the extension is a level format.
func IsLevelFile(name string) bool {
	switch strings.ToLower(path.Ext(filepath.ToSlash(name))) {
	case ".yaml", ".yml", ".tengo":
		return true
	}
	return false
}

func cleanLevelPath(name string) string {
	if name == "" {
		return ""
	}
	s := filepath.ToSlash(name)
	if after, ok := strings.CutPrefix(s, DefaultDir+"/"); ok {
		s = after
	}
	return s
}
