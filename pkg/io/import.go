package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/matzehuels/hallway/pkg/errors"
	"github.com/matzehuels/hallway/pkg/floor"
)

// Supported floor-plan formats.
const (
	FormatJSON = "json"
	FormatTOML = "toml"
	FormatHCL  = "hcl"
)

// FormatFromPath picks the floor-plan format from the file extension.
func FormatFromPath(path string) (string, error) {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case FormatJSON, FormatTOML, FormatHCL:
		return ext, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported floor plan extension %q (want .json, .toml or .hcl)", filepath.Ext(path))
	}
}

// ReadFile loads the building described by the file at path. The format is
// chosen by extension. A file describing a single floor yields a building
// with one floor.
func ReadFile(path string) (*floor.Building, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	b, err := Decode(data, format, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if b.Name == "" {
		b.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return b, nil
}

// Decode parses floor-plan data in the given format. filename is only used
// in HCL diagnostics.
func Decode(data []byte, format, filename string) (*floor.Building, error) {
	switch format {
	case FormatJSON:
		return ReadJSON(bytes.NewReader(data))
	case FormatTOML:
		return ReadTOML(bytes.NewReader(data))
	case FormatHCL:
		return DecodeHCL(data, filename)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported floor plan format %q", format)
	}
}

// ReadJSON decodes a JSON floor plan:
//
//	{
//	  "name": "ground",
//	  "start": "0",
//	  "waypoints": ["2"],
//	  "halls": [
//	    {"id": "0", "x": 0, "y": 0, "neighbors": ["1"]},
//	    ...
//	  ]
//	}
//
// Several floors go in a "floors" array of objects with the same shape.
func ReadJSON(r io.Reader) (*floor.Building, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return doc.building(), nil
}

// ReadTOML decodes a TOML floor plan. Halls are [[hall]] tables; several
// floors are [[floor]] tables with nested [[floor.hall]] tables.
func ReadTOML(r io.Reader) (*floor.Building, error) {
	var doc document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return doc.building(), nil
}

// hclHall mirrors [Hall] with the hall ID as block label.
type hclHall struct {
	ID        string   `hcl:"id,label"`
	Name      string   `hcl:"name,optional"`
	X         *float64 `hcl:"x,optional"`
	Y         *float64 `hcl:"y,optional"`
	Neighbors []string `hcl:"neighbors,optional"`
}

type hclFloor struct {
	Name      string    `hcl:"name,label"`
	Start     string    `hcl:"start,optional"`
	Waypoints []string  `hcl:"waypoints,optional"`
	Halls     []hclHall `hcl:"hall,block"`
}

type hclFile struct {
	Name      string     `hcl:"name,optional"`
	Start     string     `hcl:"start,optional"`
	Waypoints []string   `hcl:"waypoints,optional"`
	Halls     []hclHall  `hcl:"hall,block"`
	Floors    []hclFloor `hcl:"floor,block"`
}

// DecodeHCL decodes an HCL floor plan:
//
//	name  = "ground"
//	start = "0"
//
//	hall "0" {
//	  x         = 0
//	  y         = 0
//	  neighbors = ["1"]
//	}
//
// Several floors are written as floor "name" { hall ... } blocks.
func DecodeHCL(src []byte, filename string) (*floor.Building, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse: %w", diags)
	}
	var f hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &f); diags.HasErrors() {
		return nil, fmt.Errorf("decode: %w", diags)
	}

	doc := document{Floor: Floor{
		Name:      f.Name,
		Start:     f.Start,
		Waypoints: f.Waypoints,
		Halls:     fromHCLHalls(f.Halls),
	}}
	for _, fl := range f.Floors {
		doc.Floors = append(doc.Floors, Floor{
			Name:      fl.Name,
			Start:     fl.Start,
			Waypoints: fl.Waypoints,
			Halls:     fromHCLHalls(fl.Halls),
		})
	}
	return doc.building(), nil
}

func fromHCLHalls(hs []hclHall) []Hall {
	out := make([]Hall, len(hs))
	for i, h := range hs {
		out[i] = Hall{ID: h.ID, Name: h.Name, X: h.X, Y: h.Y, Neighbors: h.Neighbors}
	}
	return out
}
