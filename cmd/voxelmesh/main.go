package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	get "github.com/hashicorp/go-getter"

	"voxelmesh/internal/chunk"
	"voxelmesh/internal/config"
	"voxelmesh/internal/export"
	"voxelmesh/internal/meshing"
	"voxelmesh/internal/physics"
	"voxelmesh/internal/profiling"
	"voxelmesh/internal/texture"
	"voxelmesh/pkg/blockmodel"
)

func main() {
	var (
		configPath   = flag.String("config", "", "YAML config file (defaults apply when empty)")
		registryPath = flag.String("registry", "", "block registry JSON; a local path or any go-getter URL")
		texturesDir  = flag.String("textures", "", "directory of <texture>.png tiles for the atlas")
		atlasPath    = flag.String("atlas", "", "write a texture atlas PNG to this path")
		algo         = flag.String("algo", "", "override mesher algorithm (culled|greedy)")
		out          = flag.String("o", "", "override output OBJ path")
		pick         = flag.String("pick", "", "raymarch a ray, formatted ox,oy,oz:dx,dy,dz")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *algo != "" {
		cfg.Mesher.Algorithm = *algo
	}
	if *out != "" {
		cfg.Export.OutPath = *out
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	registry, err := loadRegistry(*registryPath)
	if err != nil {
		log.Fatalf("load registry: %v", err)
	}
	log.Printf("registry: %d block types, %d textures", registry.Len(), len(registry.Textures()))

	ch := generateDemoChunk(registry)
	logVisibility(ch)

	if *pick != "" {
		runPick(ch, *pick)
	}

	pool := meshing.NewWorkerPool(cfg.Mesher.Workers, cfg.Mesher.QueueSize)
	defer pool.Shutdown()

	results := make(chan meshing.Result, 1)
	queued := pool.SubmitBlocking(meshing.Job{
		Pos: ch.Position(),
		Input: meshing.Input{
			Blocks:   ch.Storage().Snapshot(),
			Registry: registry,
		},
		Algorithm: meshing.Algorithm(cfg.Mesher.Algorithm),
		Result:    results,
	})
	if !queued {
		log.Fatal("mesh pool rejected the job")
	}

	result := <-results
	if result.Err != nil {
		log.Fatalf("mesh chunk %v: %v", result.Pos, result.Err)
	}
	mesh := result.Mesh
	log.Printf("meshed chunk %v with %s: %d vertices, %d triangles",
		result.Pos, cfg.Mesher.Algorithm, len(mesh.Vertices), len(mesh.Indices)/3)

	atlasName := ""
	if *atlasPath != "" {
		atlas, err := texture.BuildAtlas(*texturesDir, registry.Textures(), cfg.Export.AtlasTileSize)
		if err != nil {
			log.Fatalf("build atlas: %v", err)
		}
		if err := texture.WriteAtlas(*atlasPath, atlas); err != nil {
			log.Fatalf("write atlas: %v", err)
		}
		atlasName = filepath.Base(*atlasPath)
		log.Printf("wrote atlas %s", *atlasPath)
	}

	if err := export.WriteOBJFile(cfg.Export.OutPath, mesh, registry.Textures(), atlasName); err != nil {
		log.Fatalf("write obj: %v", err)
	}
	log.Printf("wrote %s", cfg.Export.OutPath)
	log.Printf("timings: %s", profiling.Top(5))
}

// loadRegistry loads the block registry from a local file or, failing
// that, fetches it with go-getter (which understands http, git, s3 and
// friends). With no source at all, a small built-in registry is used.
func loadRegistry(src string) (*blockmodel.Registry, error) {
	if src == "" {
		return builtinRegistry(), nil
	}
	if _, err := os.Stat(src); err == nil {
		return blockmodel.LoadRegistry(src)
	}

	tmp, err := os.MkdirTemp("", "voxelmesh-registry")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmp)

	dst := filepath.Join(tmp, "registry.json")
	if err := get.GetFile(dst, src); err != nil {
		return nil, fmt.Errorf("fetch registry: %w", err)
	}
	return blockmodel.LoadRegistry(dst)
}

// builtinRegistry mirrors the default registry.json shipped with the tool.
func builtinRegistry() *blockmodel.Registry {
	stone := blockmodel.SolidModel(0)
	dirt := blockmodel.SolidModel(1)
	grass := blockmodel.SolidModel(1)
	grass.Faces[blockmodel.FacePosY] = &blockmodel.BlockFace{TextureIndex: 2}

	return blockmodel.NewRegistry(
		[]blockmodel.Model{{}, stone, dirt, grass},
		[]string{"air", "stone", "dirt", "grass"},
		[]string{"stone", "dirt", "grass_top"},
	)
}

// generateDemoChunk fills one chunk with a rolling stone/dirt/grass
// heightfield so every mesher code path has something to chew on.
func generateDemoChunk(registry *blockmodel.Registry) *chunk.Chunk {
	const (
		blockStone = blockmodel.BlockID(1)
		blockDirt  = blockmodel.BlockID(2)
		blockGrass = blockmodel.BlockID(3)
	)

	blocks := make([]blockmodel.BlockID, chunk.SizeCubed)
	for z := 0; z < chunk.Size; z++ {
		for x := 0; x < chunk.Size; x++ {
			h := 12 +
				int(5*math.Sin(float64(x)/5.0)) +
				int(4*math.Cos(float64(z)/7.0))
			if h < 1 {
				h = 1
			}
			for y := 0; y < h && y < chunk.Size; y++ {
				id := blockStone
				switch {
				case y == h-1:
					id = blockGrass
				case y >= h-4:
					id = blockDirt
				}
				blocks[chunk.LocalPos{X: x, Y: y, Z: z}.Index()] = id
			}
		}
	}

	return chunk.New(chunk.Pos{}, blocks, registry)
}

func logVisibility(ch *chunk.Chunk) {
	vis := ch.Visibility()
	for _, d := range blockmodel.Directions {
		log.Printf("boundary %s opaque: %v", d, vis.Opaque(d))
	}
}

// runPick raymarches through the chunk and reports what the ray struck.
func runPick(ch *chunk.Chunk, arg string) {
	var origin, dir mgl32.Vec3
	_, err := fmt.Sscanf(arg, "%f,%f,%f:%f,%f,%f",
		&origin[0], &origin[1], &origin[2], &dir[0], &dir[1], &dir[2])
	if err != nil {
		log.Fatalf("bad -pick %q: %v", arg, err)
	}

	hit, ok := physics.Raymarch(ch, origin, dir.Normalize(), nil, 128)
	if !ok {
		log.Printf("pick %s: no hit", arg)
		return
	}
	name := ch.Registry().Name(ch.Block(hit.Pos))
	if hit.HasNormal {
		log.Printf("pick %s: hit %s at (%d,%d,%d), normal %v", arg, name, hit.Pos.X, hit.Pos.Y, hit.Pos.Z, hit.Normal)
	} else {
		log.Printf("pick %s: hit %s at (%d,%d,%d)", arg, name, hit.Pos.X, hit.Pos.Y, hit.Pos.Z)
	}
}
