package stagw

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// manifStack is kept for two reasons:
//   - detect circular references (not an error, but they must be skipped)
//   - stop infinite recursion (allow up to MaxManifestRecursionDepth levels)
//
// Returns ErrManifestEmpty if and only if the first manifest in the stack is
// empty, otherwise it is not an error.
func recursiveUnmarshalResource(path string, manifStack []string) (data topLevelWorldData, err error) {
	path = filepath.Clean(path)

	fileData, loadErr := os.ReadFile(path)
	if loadErr != nil {
		return topLevelWorldData{}, fmt.Errorf("%q: reading from disk: %w", path, loadErr)
	}

	fileInfo, err := ScanFileInfo(fileData)
	if err != nil {
		return topLevelWorldData{}, fmt.Errorf("%q: detecting file type: %w", path, err)
	}

	if strings.ToUpper(fileInfo.Format) != FormatName {
		return topLevelWorldData{}, fmt.Errorf("%q: file does not have a 'format = %q' entry", path, FormatName)
	}

	switch strings.ToUpper(fileInfo.Type) {
	case "DATA":
		unmarshaled, err := unmarshalWorldData(fileData)
		if err != nil {
			return unmarshaled, fmt.Errorf("world data file %q: %w", path, err)
		}
		return unmarshaled, nil
	case "MANIFEST":
		if len(manifStack) >= MaxManifestRecursionDepth {
			return topLevelWorldData{}, fmt.Errorf("manifest file %q: %w", path, ErrManifestStackOverflow)
		}
		for i := range manifStack {
			if manifStack[i] == path {
				return topLevelWorldData{}, fmt.Errorf("manifest file %q: %w", path, ErrManifestCircularRef)
			}
		}

		unmarshaledManif, err := unmarshalManifest(fileData)
		if err != nil {
			return topLevelWorldData{}, fmt.Errorf("manifest file %q: %w", path, err)
		}
		manif, err := parseManifest(unmarshaledManif)
		if err != nil {
			return topLevelWorldData{}, fmt.Errorf("manifest file %q: %w", path, err)
		}

		// an empty manifest is only a problem for the very first one
		if len(manif.Files) < 1 && len(manifStack) == 0 {
			return topLevelWorldData{}, fmt.Errorf("manifest file %q: %w", path, ErrManifestEmpty)
		}

		var combined topLevelWorldData

		manifSubStack := make([]string, len(manifStack)+1)
		copy(manifSubStack, manifStack)
		manifSubStack[len(manifSubStack)-1] = path

		manifDir := filepath.Dir(path)

		processedFiles := 0

		for _, manifRelPath := range manif.Files {
			includedFilePath := filepath.Join(manifDir, manifRelPath)

			included, err := recursiveUnmarshalResource(includedFilePath, manifSubStack)
			if err != nil {
				if errors.Is(err, ErrManifestCircularRef) {
					continue
				}

				return topLevelWorldData{}, fmt.Errorf("in file referred to by manifest file:\n    %q\n%w", path, err)
			}

			if included.World.Start != "" {
				if combined.World.Start != "" {
					return combined, fmt.Errorf("world data file %q: duplicate start; start has already been defined as %q", includedFilePath, combined.World.Start)
				}
				combined.World.Start = included.World.Start
			}
			combined.Locations = append(combined.Locations, included.Locations...)
			combined.Paths = append(combined.Paths, included.Paths...)
			combined.Actions = append(combined.Actions, included.Actions...)
			processedFiles++
		}

		if len(manifStack) == 0 && processedFiles == 0 {
			// the first file was a manifest and gave no valid definitions
			return combined, fmt.Errorf("manifest file %q: %w", path, ErrManifestEmpty)
		}
		return combined, nil

	default:
		return topLevelWorldData{}, fmt.Errorf("%q: file does not have 'type = ' entry set to either \"DATA\" or \"MANIFEST\"", path)
	}
}

// unmarshalWorldData unmarshals world data from the given bytes. It does not
// parse or check world data.
func unmarshalWorldData(tomlData []byte) (topLevelWorldData, error) {
	var sw topLevelWorldData
	if tomlErr := toml.Unmarshal(tomlData, &sw); tomlErr != nil {
		return sw, tomlErr
	}

	if strings.ToUpper(sw.Format) != FormatName {
		return sw, fmt.Errorf("in header: 'format' key must exist and be set to %q", FormatName)
	}
	if strings.ToUpper(sw.Type) != "DATA" {
		return sw, fmt.Errorf("in header: 'type' must exist and be set to 'DATA'")
	}

	return sw, nil
}

// unmarshalManifest unmarshals a STAG manifest from the given bytes.
func unmarshalManifest(tomlData []byte) (topLevelManifest, error) {
	var sw topLevelManifest
	if tomlErr := toml.Unmarshal(tomlData, &sw); tomlErr != nil {
		return sw, tomlErr
	}

	if strings.ToUpper(sw.Format) != FormatName {
		return sw, fmt.Errorf("in header: 'format' key must exist and be set to %q", FormatName)
	}
	if strings.ToUpper(sw.Type) != "MANIFEST" {
		return sw, fmt.Errorf("in header: 'type' must exist and be set to 'MANIFEST'")
	}

	return sw, nil
}
