package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Mvgnu/BioLabs-sub002/config"
	"github.com/Mvgnu/BioLabs-sub002/internal/imports"
	"github.com/Mvgnu/BioLabs-sub002/internal/toolkit"
)

// readInput reads one input file, bounding its size before any parser
// sees it. Binary-format parsing is only as safe as its input size.
func readInput(path string, c *config.Config) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input %s: %w", path, err)
	}
	if info.Size() > c.Import.MaxBytes {
		return nil, fmt.Errorf("input %s is %d bytes, over the %d byte limit", path, info.Size(), c.Import.MaxBytes)
	}
	return os.ReadFile(path)
}

// importFile reads and parses one input file into an ImportResult.
func importFile(path string, c *config.Config) (*imports.ImportResult, error) {
	content, err := readInput(path, c)
	if err != nil {
		return nil, err
	}
	return imports.Parse(content, path)
}

// loadTemplates imports every input file and flattens the results into
// a named template batch for the toolkit.
func loadTemplates(paths []string, c *config.Config) ([]toolkit.Template, error) {
	templates := make([]toolkit.Template, 0, len(paths))
	for _, path := range paths {
		result, err := importFile(path, c)
		if err != nil {
			return nil, err
		}
		templates = append(templates, toolkit.Template{Name: result.Name, Seq: result.Sequence})
	}
	return templates, nil
}

// writeJSON writes a result to the output path, or stdout for "".
func writeJSON(out string, v interface{}) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	if out == "" {
		fmt.Println(string(encoded))
		return nil
	}
	return os.WriteFile(out, append(encoded, '\n'), 0644)
}
