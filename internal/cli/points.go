package cli

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/planegraph/pkg/errors"
	"github.com/matzehuels/planegraph/pkg/geom"
)

// pointsFile is the TOML layout of a point set:
//
//	[[points]]
//	x = 0.0
//	y = 0.0
type pointsFile struct {
	Points []struct {
		X float64 `toml:"x"`
		Y float64 `toml:"y"`
	} `toml:"points"`
}

// readPoints loads a point set from path. A path of "-" reads stdin.
func readPoints(path string) ([]geom.Point, error) {
	if path == "-" {
		return decodePoints(os.Stdin, "stdin")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "open points file")
	}
	defer f.Close()
	return decodePoints(f, path)
}

// decodePoints parses a TOML point set. Unknown keys and non-finite
// coordinates are rejected; an empty set is allowed.
func decodePoints(r io.Reader, name string) ([]geom.Point, error) {
	var pf pointsFile
	md, err := toml.NewDecoder(r).Decode(&pf)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "decode %s", name)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errs.New(errs.ErrCodeInvalidInput, "%s: unknown key %q", name, undecoded[0].String())
	}

	points := make([]geom.Point, len(pf.Points))
	for i, p := range pf.Points {
		if err := errs.ValidateCoordinate(i, p.X, p.Y); err != nil {
			return nil, err
		}
		points[i] = geom.Pt(p.X, p.Y)
	}
	return points, nil
}
