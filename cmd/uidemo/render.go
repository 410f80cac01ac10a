package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lichnak/rg3d/pkg/draw"
)

// whitePixel is the 1x1 source for untextured triangles, taken from the
// center of a 3x3 image so sampling never bleeds past the edge.
var whitePixel *ebiten.Image

func init() {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// renderCommands replays the drawing command list onto the screen.
// Geometry commands draw their triangle range; Clip commands narrow the
// destination to the clip rect for everything that follows, which is
// exactly the state the command list encodes since each node's clip is
// re-committed when its subtree ends.
func renderCommands(screen *ebiten.Image, ctx *draw.Context) {
	vertices := ctx.Vertices()
	dst := make([]ebiten.Vertex, len(vertices))
	for i, v := range vertices {
		r, g, b, a := v.Color.RGBAF()
		dst[i] = ebiten.Vertex{
			DstX: v.Pos.X, DstY: v.Pos.Y,
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		}
	}

	indices := ctx.Indices()
	target := screen
	for _, cmd := range ctx.Commands() {
		start := cmd.StartTriangle * 3
		end := start + cmd.TriangleCount*3
		if start < 0 || end > len(indices) {
			continue
		}

		if cmd.Kind == draw.Clip {
			clip := commandBounds(dst, indices[start:end]).Intersect(screen.Bounds())
			if clip.Empty() {
				target = nil
			} else {
				target = screen.SubImage(clip).(*ebiten.Image)
			}
			continue
		}
		if target == nil {
			continue
		}

		tri := make([]uint16, end-start)
		for i, index := range indices[start:end] {
			tri[i] = uint16(index)
		}
		target.DrawTriangles(dst, tri, whitePixel, nil)
	}
}

// commandBounds returns the integer bounding box of the triangles'
// destination vertices.
func commandBounds(vertices []ebiten.Vertex, indices []uint32) image.Rectangle {
	minX, minY := float32(math.Inf(1)), float32(math.Inf(1))
	maxX, maxY := float32(math.Inf(-1)), float32(math.Inf(-1))
	for _, index := range indices {
		v := vertices[index]
		minX = min(minX, v.DstX)
		minY = min(minY, v.DstY)
		maxX = max(maxX, v.DstX)
		maxY = max(maxY, v.DstY)
	}
	if minX > maxX {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(float64(minX))), int(math.Floor(float64(minY))),
		int(math.Ceil(float64(maxX))), int(math.Ceil(float64(maxY))),
	)
}
