// voxelmesh generates a demo voxel chunk, runs one meshing pass over it and
// exports the result as glTF.
package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/memmaker/voxelmesh/export"
	"github.com/memmaker/voxelmesh/voxel"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	output := flag.String("out", "", "output path, overrides the config file")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "voxelmesh",
	})

	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = loadConfig(*configPath)
		if err != nil {
			logger.Fatal("loading config", "err", err)
		}
	}
	if *output != "" {
		cfg.Output = *output
	}
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal("meshing failed", "err", err)
	}
}

func run(cfg Config, logger *log.Logger) error {
	chunk, err := buildChunk(cfg)
	if err != nil {
		return err
	}

	tables := voxel.DefaultTables()
	if err := tables.Validate(); err != nil {
		return errors.Wrap(err, "lookup tables")
	}

	buf := voxel.NewWorstCaseMeshBuffer()
	buf.Reset()

	start := time.Now()
	chunk.BuildMeshWorkers(tables, buf, cfg.Workers)
	elapsed := time.Since(start)

	vertexCount, indexCount, err := buf.Finalize()
	if err != nil {
		return errors.Wrap(err, "finalize pass")
	}
	logger.Info("pass complete",
		"generator", cfg.Generator,
		"vertices", vertexCount,
		"indices", indexCount,
		"triangles", buf.TriangleCount(),
		"elapsed", elapsed,
	)

	if err := export.SaveGLTF(cfg.Output, buf); err != nil {
		return err
	}
	logger.Info("mesh written", "path", cfg.Output)
	return nil
}

func buildChunk(cfg Config) (*voxel.Chunk, error) {
	chunk := voxel.NewChunk()
	center := float32(voxel.ChunkSize) / 2
	switch cfg.Generator {
	case "sphere":
		chunk.GenerateSphere(mgl32.Vec3{center, center, center}, cfg.Radius)
	case "random":
		chunk.GenerateRandom(rand.New(rand.NewSource(cfg.Seed)))
	case "solid":
		// A solid block with one voxel of empty margin, meshed by the
		// blocky extractor.
		chunk.FillRegion(
			voxel.Int3{X: 1, Y: 1, Z: 1},
			voxel.Int3{X: voxel.ChunkSize - 1, Y: voxel.ChunkSize - 1, Z: voxel.ChunkSize - 1},
			voxel.Voxel{Flags: 1, Density: 1},
		)
	default:
		return nil, errors.Errorf("unknown generator %q", cfg.Generator)
	}
	return chunk, nil
}
