package level

import (
	"bytes"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wolfcore/model"
)

func TestParseLayout(t *testing.T) {
	lvl, err := ParseLayout([]string{
		"#3E#",
		"#^o#",
		"#pg#",
		"####",
	})
	if err != nil {
		t.Fatal(err)
	}
	if lvl.Width != 4 || lvl.Height != 4 {
		t.Fatalf("size %dx%d", lvl.Width, lvl.Height)
	}
	if w := lvl.Map[0][1].(model.Wall); w.NorthSouthTextureIndex != 5 || w.EastWestTextureIndex != 4 {
		t.Errorf("textured wall = %+v", w)
	}
	if w := lvl.Map[0][2].(model.Wall); !w.IsExit() {
		t.Errorf("exit wall = %+v", w)
	}
	if lvl.StartingPose.Direction != model.Vec(0, -1) {
		t.Errorf("start faces %v", lvl.StartingPose.Direction)
	}
	if len(lvl.GameObjects) != 3 {
		t.Fatalf("objects = %d", len(lvl.GameObjects))
	}
	if !lvl.GameObjects[0].Common().Blocking {
		t.Error("prop does not block")
	}
	if !lvl.GameObjects[1].Common().Pickupable {
		t.Error("pickup is not pickupable")
	}
	guard, ok := lvl.GameObjects[2].(model.EnemyGameObject)
	if !ok {
		t.Fatalf("third object = %T", lvl.GameObjects[2])
	}
	if guard.Common().Position != model.Vec(2.5, 2.5) || !guard.IsAlive() {
		t.Errorf("guard = %+v", guard)
	}
}

func TestParseLayoutErrors(t *testing.T) {
	if _, err := ParseLayout([]string{"#>#", "##"}); !errors.Is(err, ErrBadDimensions) {
		t.Errorf("ragged rows: %v", err)
	}
	if _, err := ParseLayout([]string{"#>x"}); !errors.Is(err, ErrUnknownTile) {
		t.Errorf("unknown rune: %v", err)
	}
	if _, err := ParseLayout(nil); !errors.Is(err, ErrBadDimensions) {
		t.Errorf("no rows: %v", err)
	}
	if _, err := ParseLayout([]string{"#.#"}); !errors.Is(err, ErrMissingPlayerStart) {
		t.Errorf("no start: %v", err)
	}
}

func paint(rows ...string) *image.RGBA {
	colours := map[rune]color.RGBA{
		'.': ColorEmpty,
		'#': ColorWall,
		'g': ColorEnemy,
		'E': ColorExit,
		'>': ColorPlayer,
		'D': ColorDoor,
	}
	img := image.NewRGBA(image.Rect(0, 0, len(rows[0]), len(rows)))
	for y, row := range rows {
		for x, ch := range row {
			img.SetRGBA(x, y, colours[ch])
		}
	}
	return img
}

func TestFromImage(t *testing.T) {
	lvl, err := FromImage(paint(
		"#####",
		"#>.g#",
		"#####",
		"#.D.E",
		"#####",
	))
	if err != nil {
		t.Fatal(err)
	}
	if lvl.StartingPose.Position != model.Vec(1.5, 1.5) {
		t.Errorf("start = %v", lvl.StartingPose.Position)
	}
	if len(lvl.Doors) != 1 || lvl.Doors[0].Direction != model.DoorNorthSouth {
		t.Fatalf("doors = %+v", lvl.Doors)
	}
	if len(lvl.GameObjects) != 1 {
		t.Fatalf("objects = %d", len(lvl.GameObjects))
	}
	if w := lvl.Map[3][4].(model.Wall); !w.IsExit() {
		t.Errorf("exit = %+v", w)
	}
}

func TestFromImageDoorBetweenRooms(t *testing.T) {
	lvl, err := FromImage(paint(
		"#.#",
		"#D#",
		"#>#",
	))
	if err != nil {
		t.Fatal(err)
	}
	if lvl.Doors[0].Direction != model.DoorEastWest {
		t.Fatalf("door direction = %v", lvl.Doors[0].Direction)
	}
}

func TestFromImageUnknownColour(t *testing.T) {
	img := paint("#>#")
	img.SetRGBA(0, 0, color.RGBA{1, 2, 3, 255})
	if _, err := FromImage(img); !errors.Is(err, ErrUnknownTile) {
		t.Fatalf("err = %v", err)
	}
}

func TestLoadFileJSON(t *testing.T) {
	f := File{
		Name:   "E1M1",
		Width:  3,
		Height: 1,
		Plane0: []uint16{1, 106, 1},
		Plane1: []uint16{0, startWest, 0},
	}
	data, err := json.Marshal(f)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "level.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	lvl, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if lvl.Name != "E1M1" || lvl.StartingPose.Direction != model.Vec(-1, 0) {
		t.Fatalf("level = %q facing %v", lvl.Name, lvl.StartingPose.Direction)
	}
}

func TestLoadFilePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, paint("#>#")); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "corridor.png")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	lvl, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if lvl.Name != "corridor" || lvl.Width != 3 {
		t.Fatalf("level = %q width %d", lvl.Name, lvl.Width)
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadFile(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"width":1,"height":1,"plane0":[0],"plane1":[19]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(bad); !errors.Is(err, ErrUnknownTile) {
		t.Errorf("bad tile: %v", err)
	}

	txt := filepath.Join(dir, "level.txt")
	if err := os.WriteFile(txt, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(txt); err == nil {
		t.Error("unsupported extension accepted")
	}
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	for _, want := range []string{`"Level"`, `"plane0"`, `"plane1"`, `"width"`} {
		if !strings.Contains(s, want) {
			t.Errorf("schema is missing %s", want)
		}
	}
	if !json.Valid(data) {
		t.Error("schema is not valid JSON")
	}
}
