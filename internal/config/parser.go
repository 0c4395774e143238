package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	atomkiterrors "github.com/atomkit/atomkit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseThemeFile loads a theme file from disk, validates it, and returns
// the parsed model.
func ParseThemeFile(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, atomkiterrors.NewParseError(path, 0, err)
	}

	var file ThemeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, atomkiterrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateThemeFile(&file); err != nil {
		return nil, err
	}

	return &file, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
