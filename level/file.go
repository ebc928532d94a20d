package level

import (
	"encoding/json"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/sirupsen/logrus"

	"wolfcore/logger"
)

// File is the JSON level format: the two map planes as flat row-major arrays.
type File struct {
	Name   string   `json:"name" jsonschema:"title=Name,description=Level title shown by the host,minLength=1"`
	Width  int      `json:"width" jsonschema:"title=Width,description=Cells per row,minimum=1,required"`
	Height int      `json:"height" jsonschema:"title=Height,description=Number of rows,minimum=1,required"`
	Plane0 []uint16 `json:"plane0" jsonschema:"title=Plane 0,description=Wall door and floor codes,required"`
	Plane1 []uint16 `json:"plane1" jsonschema:"title=Plane 1,description=Start and turning point markers,required"`
}

// Decode reads a JSON level file.
func Decode(r io.Reader) (Level, error) {
	var f File
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return Level{}, fmt.Errorf("decode level: %w", err)
	}
	lvl, err := Build(Planes{Width: f.Width, Height: f.Height, Plane0: f.Plane0, Plane1: f.Plane1})
	if err != nil {
		return Level{}, err
	}
	lvl.Name = f.Name
	return lvl, nil
}

// LoadFile reads a .json level file or a .png colour map.
func LoadFile(path string) (Level, error) {
	fh, err := os.Open(path)
	if err != nil {
		return Level{}, err
	}
	defer fh.Close()

	var lvl Level
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		lvl, err = Decode(fh)
	case ".png":
		var img image.Image
		if img, _, err = image.Decode(fh); err != nil {
			return Level{}, fmt.Errorf("decode %s: %w", path, err)
		}
		lvl, err = FromImage(img)
	default:
		return Level{}, fmt.Errorf("unsupported level format %q", ext)
	}
	if err != nil {
		return Level{}, fmt.Errorf("%s: %w", path, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	logger.Log.WithFields(logrus.Fields{
		"level":   lvl.Name,
		"doors":   len(lvl.Doors),
		"objects": len(lvl.GameObjects),
	}).Info("level loaded")
	return lvl, nil
}

// Schema returns the JSON schema of File, indented.
func Schema() ([]byte, error) {
	reflector := jsonschema.Reflector{}
	schema := reflector.Reflect(new(File))
	schema.Title = "Level"
	schema.Description = "Map planes for a single level."
	return json.MarshalIndent(schema, "", "  ")
}
