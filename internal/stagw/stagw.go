// Package stagw has functions for loading game data using the STAG world
// format, a TOML-based format that defines the locations, paths, and action
// rules of a game world.
package stagw

import (
	"errors"
	"os"
	"unicode"

	"github.com/BurntSushi/toml"
	"github.com/dekarrin/stag/internal/game"
)

// FormatName is the value every STAG world file must give for its 'format'
// key.
const FormatName = "STAG"

const MaxManifestRecursionDepth = 32

var (
	// ErrManifestEmpty is the error returned when a manifest file is read
	// successfully but specifies no additional files to load.
	ErrManifestEmpty = errors.New("does not list any valid files to include")

	// ErrManifestStackOverflow is the error returned when the recusion level of
	// MaxManifestRecursionDepth is reached and an additional manifest is then
	// specified, which would cause recursion to go deeper.
	ErrManifestStackOverflow = errors.New("too many manifests deep")

	// ErrManifestCircularRef is the error returned when a manifest specifies any
	// series of files that with their own manifests refer back to the original
	// manifest, and therefore cannot be followed.
	ErrManifestCircularRef = errors.New("manifest inclusion chain refers back to itself")
)

// Manifest contains data loaded from one or more STAG manifest files.
type Manifest struct {
	Files []string
}

// WorldData contains data loaded from one or more STAG world data files.
type WorldData struct {
	// World has every location, pre-loaded with its entities and paths and
	// ready for immediate use.
	World *game.World

	// Rules has one action per trigger phrase of every action defined.
	Rules *game.RuleTable

	// Start is the location new players start in.
	Start string
}

// FileInfo contains the essential information all STAG format files must
// contain. It can be obtained from a file by calling ScanFileInfo on its bytes.
type FileInfo struct {
	Format string `toml:"format"`
	Type   string `toml:"type"`
}

// LoadResourceBundle loads a world up from the given STAG file. The file's
// type is auto-detected; it can be either "DATA" or "MANIFEST". If it is a
// manifest, the files listed in it relative to it are loaded as well,
// recursively. All included files are combined into one set of data before
// being checked.
func LoadResourceBundle(path string) (WorldData, error) {
	unmarshaled, err := recursiveUnmarshalResource(path, nil)
	if err != nil {
		return WorldData{}, err
	}

	return parseWorldData(unmarshaled)
}

// LoadWorldData loads a world from the bytes of a single world data file.
func LoadWorldData(data []byte) (WorldData, error) {
	unmarshaled, err := unmarshalWorldData(data)
	if err != nil {
		return WorldData{}, err
	}

	return parseWorldData(unmarshaled)
}

// LoadManifestFile loads manifest data from a STAG file.
func LoadManifestFile(path string) (manif Manifest, err error) {
	manifestData, loadErr := os.ReadFile(path)
	if loadErr != nil {
		return manif, loadErr
	}

	unmarshaled, err := unmarshalManifest(manifestData)
	if err != nil {
		return manif, err
	}
	return parseManifest(unmarshaled)
}

// ScanFileInfo reads the common header info of a STAG file from its bytes.
// Only the bytes up to the first table header are parsed.
func ScanFileInfo(data []byte) (FileInfo, error) {
	// only run the toml parser up to the end of the top-level table
	var topLevelEnd int = -1
	var onNewLine = true
	for b := range data {
		if onNewLine {
			if data[b] == '[' {
				topLevelEnd = b
				break
			}
		}

		if data[b] == '\n' {
			onNewLine = true
		} else if !unicode.IsSpace(rune(data[b])) {
			onNewLine = false
		}
	}

	scanData := data
	if topLevelEnd != -1 {
		scanData = data[:topLevelEnd]
	}

	var info FileInfo
	err := toml.Unmarshal(scanData, &info)
	return info, err
}
