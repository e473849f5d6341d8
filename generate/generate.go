// SPDX-License-Identifier: MIT
// Package: polyomino/generate
//
// generate.go: level-by-level polyomino enumeration.
//
// Algorithm:
//  1. level ← {(0,0)}.
//  2. For size = 2..n:
//     for every parent p in level, every cell (dx, dy) of p and every
//     candidate cell q (per GrowthMode) with q ∉ p:
//     grown = p ∪ {q}; drop it if its bounding box exceeds size×size;
//     otherwise insert canonical(grown) into the next level's Set.
//  3. Return level sorted by canonical cells.

package generate

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/polyomino/shape"
)

// Generate returns every distinct shape of exactly n cells, one canonical
// representative per rotation class, sorted by cell sequence.
// Returns ErrInvalidSize if n < 1.
func Generate(n int, opts ...Option) ([]*shape.Shape, error) {
	set, err := GenerateSet(n, opts...)
	if err != nil {
		return nil, err
	}
	return set.Shapes(), nil
}

// Count returns the number of distinct shapes of n cells.
func Count(n int, opts ...Option) (int, error) {
	set, err := GenerateSet(n, opts...)
	if err != nil {
		return 0, err
	}
	return set.Len(), nil
}

// GenerateSet is like Generate but returns the deduplicated set itself.
func GenerateSet(n int, opts ...Option) (*shape.Set, error) {
	if n < 1 {
		return nil, fmt.Errorf("Generate(%d): %w", n, ErrInvalidSize)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	level := shape.NewSet()
	if _, err := level.Insert([]shape.Coord{{X: 0, Y: 0}}); err != nil {
		return nil, err
	}
	for size := 2; size <= n; size++ {
		parents := level.Shapes()
		next, err := grow(parents, size, cfg)
		if err != nil {
			return nil, fmt.Errorf("Generate(%d): level %d: %w", n, size, err)
		}
		cfg.logger.Debug("level built",
			zap.Int("size", size),
			zap.Int("parents", len(parents)),
			zap.Int("shapes", next.Len()),
			zap.Stringer("growth", cfg.growth),
			zap.Int("workers", cfg.workers),
		)
		level = next
	}
	return level, nil
}

// grow expands parents into the next level, fanning out across cfg.workers
// goroutines when there is more than one parent to share.
func grow(parents []*shape.Shape, size int, cfg config) (*shape.Set, error) {
	w := min(cfg.workers, len(parents))
	if w <= 1 {
		return expand(parents, size, cfg.growth)
	}

	parts := make([]*shape.Set, w)
	chunk := (len(parents) + w - 1) / w
	var g errgroup.Group
	for i := 0; i < w; i++ {
		lo := i * chunk
		hi := min(lo+chunk, len(parents))
		if lo >= hi {
			parts[i] = shape.NewSet()
			continue
		}
		g.Go(func() error {
			set, err := expand(parents[lo:hi], size, cfg.growth)
			parts[i] = set
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := shape.NewSet()
	for _, p := range parts {
		out.Merge(p)
	}
	return out, nil
}

// expand grows every parent by one cell. Each worker owns its result set.
func expand(parents []*shape.Shape, size int, mode GrowthMode) (*shape.Set, error) {
	out := shape.NewSet()
	for _, p := range parents {
		cells := p.Coordinates()
		occupied := make(map[shape.Coord]struct{}, len(cells))
		for _, c := range cells {
			occupied[c] = struct{}{}
		}
		grown := make([]shape.Coord, len(cells)+1)
		copy(grown, cells)

		for _, c := range cells {
			for _, q := range candidates(c, size, mode) {
				if _, dup := occupied[q]; dup {
					continue
				}
				grown[len(cells)] = q
				if !fits(grown, size) {
					continue
				}
				if _, err := out.Insert(grown); err != nil {
					return nil, err
				}
			}
		}
	}
	return out, nil
}

// candidates lists the cells tried next to c at the given level size.
func candidates(c shape.Coord, size int, mode GrowthMode) []shape.Coord {
	if mode == GrowAdjacent {
		n := shape.Neighbors(c)
		return n[:]
	}
	out := make([]shape.Coord, 0, (size+1)*(size+1))
	for x := 0; x <= size; x++ {
		for y := 0; y <= size; y++ {
			if x+c.X >= size || y+c.Y >= size {
				continue
			}
			out = append(out, shape.Coord{X: x + c.X, Y: y + c.Y})
		}
	}
	return out
}

// fits reports whether cells span at most size columns and size rows.
func fits(cells []shape.Coord, size int) bool {
	minX, minY := cells[0].X, cells[0].Y
	maxX, maxY := minX, minY
	for _, c := range cells[1:] {
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
	}
	return maxX-minX < size && maxY-minY < size
}
