package export

import (
	"bufio"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"aravoxel/internal/meshing"
	"aravoxel/internal/world"

	"github.com/klauspost/compress/zstd"
)

// Format identifies mesh bundle files.
const (
	Format  = "aravoxel-mesh"
	Version = 1
)

// Header is written as a JSON line ahead of the gob payload so tools can
// identify a bundle without decoding it.
type Header struct {
	Format  string `json:"format"`
	Version int    `json:"version"`
	Chunks  int    `json:"chunks"`
}

// Record is the pair of render surfaces of one chunk. Liquid is nil when the
// chunk has no liquid geometry.
type Record struct {
	Coord  world.ChunkCoord
	Opaque *meshing.Mesh
	Liquid *meshing.Mesh
}

type bundle struct {
	Header  Header
	Records []Record
}

// Records converts built meshes into bundle records, dropping empty liquid
// surfaces.
func Records(meshes []meshing.ChunkMesh) []Record {
	out := make([]Record, 0, len(meshes))
	for _, m := range meshes {
		r := Record{Coord: m.Coord, Opaque: m.Opaque, Liquid: m.Liquid}
		if r.Liquid != nil && r.Liquid.Empty() {
			r.Liquid = nil
		}
		out = append(out, r)
	}
	return out
}

// WriteBundle writes every chunk's surfaces to a zstd-compressed file.
func WriteBundle(path string, meshes []meshing.ChunkMesh) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := Encode(f, meshes); err != nil {
		return err
	}
	return f.Close()
}

// Encode writes a bundle to w. The zstd stream is always closed, even when
// encoding fails part way.
func Encode(w io.Writer, meshes []meshing.ChunkMesh) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	defer enc.Close()

	bw := bufio.NewWriterSize(enc, 256*1024)

	b := bundle{
		Header:  Header{Format: Format, Version: Version, Chunks: len(meshes)},
		Records: Records(meshes),
	}
	hb, err := json.Marshal(b.Header)
	if err != nil {
		return err
	}
	if _, err := bw.Write(hb); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	if err := gob.NewEncoder(bw).Encode(&b); err != nil {
		return fmt.Errorf("gob encode: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return enc.Close()
}

// ReadBundle loads a bundle written by WriteBundle.
func ReadBundle(path string) (Header, []Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a bundle produced by Encode.
func Decode(r io.Reader) (Header, []Record, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return Header{}, nil, err
	}
	defer dec.Close()

	br := bufio.NewReaderSize(dec, 256*1024)

	line, err := br.ReadBytes('\n')
	if err != nil {
		return Header{}, nil, fmt.Errorf("read header: %w", err)
	}
	var h Header
	if err := json.Unmarshal(line, &h); err != nil {
		return Header{}, nil, fmt.Errorf("decode header: %w", err)
	}
	if h.Format != Format {
		return h, nil, fmt.Errorf("not a mesh bundle: format %q", h.Format)
	}
	if h.Version != Version {
		return h, nil, fmt.Errorf("unsupported bundle version %d", h.Version)
	}

	var b bundle
	if err := gob.NewDecoder(br).Decode(&b); err != nil {
		return h, nil, fmt.Errorf("gob decode: %w", err)
	}
	return h, b.Records, nil
}
