package discover

import (
	"errors"
	"io/ioutil"
	"os"

	"github.com/pelletier/go-toml"
)

// tomlToolchainFile represents the toolchain description file as it is
// encoded in TOML.
type tomlToolchainFile struct {
	Toolchain *tomlToolchain `toml:"toolchain"`
}

// tomlToolchain describes an installed Kush toolchain.
type tomlToolchain struct {
	Sysroot     string   `toml:"sysroot"`
	ResourceDir string   `toml:"resource-dir"`
	ProgramDirs []string `toml:"program-dirs,omitempty"`
	Linker      string   `toml:"linker,omitempty"`
}

// loadToolchainFile loads and unmarshals a toolchain description file.
func loadToolchainFile(path string) (*tomlToolchain, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buff, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}

	ttf := &tomlToolchainFile{}
	if err := toml.Unmarshal(buff, ttf); err != nil {
		return nil, err
	}

	if ttf.Toolchain == nil {
		return nil, errors.New("toolchain file missing [toolchain] table")
	}

	return ttf.Toolchain, nil
}
