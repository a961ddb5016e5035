package pipeline

import (
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/linechart/pkg/errors"
)

// DecodeOptions reads chart options from TOML. Keys that do not map to an
// option are rejected so typos do not go unnoticed.
//
//	dataset = [3, 1, 4, 1, 5]
//	labels  = ["a", "b", "c", "d", "e"]
//	formats = ["svg", "png"]
//
//	[colors]
//	graphLineColor = "blue"
//
//	[titles]
//	x = "Day"
func DecodeOptions(r io.Reader) (Options, error) {
	var opts Options
	md, err := toml.NewDecoder(r).Decode(&opts)
	if err != nil {
		return Options{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, err, "decode chart file")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Options{}, errors.New(errors.ErrCodeInvalidConfiguration,
			"unknown keys in chart file: %s", strings.Join(keys, ", "))
	}
	return opts, nil
}

// LoadOptions reads chart options from a TOML file.
func LoadOptions(path string) (Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return Options{}, err
	}
	defer f.Close()
	return DecodeOptions(f)
}
