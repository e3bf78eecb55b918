package goban

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ImageTexture wraps an ebiten image as a Texture for the asset layer.
type ImageTexture struct {
	Image *ebiten.Image
}

// Size returns the image dimensions in pixels.
func (t ImageTexture) Size() (w, h int) {
	b := t.Image.Bounds()
	return b.Dx(), b.Dy()
}

// nrgba converts a Color to the straight-alpha form the vector package and
// ColorScale expect.
func (c Color) nrgba() color.NRGBA {
	return color.NRGBA{
		R: uint8(clampFloat(c.R, 0, 1)*255 + 0.5),
		G: uint8(clampFloat(c.G, 0, 1)*255 + 0.5),
		B: uint8(clampFloat(c.B, 0, 1)*255 + 0.5),
		A: uint8(clampFloat(c.A, 0, 1)*255 + 0.5),
	}
}

var whitePixelImage *ebiten.Image

// getWhitePixel returns the shared 1x1 white image used to draw untextured
// triangles, creating it on first use.
func getWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// EbitenCanvas rasterizes Canvas primitives onto an ebiten image using the
// vector package for shapes, a shared white pixel for polygons, and text/v2
// for labels. Zero FaceSource disables text rendering.
type EbitenCanvas struct {
	Target     *ebiten.Image
	FaceSource *text.GoTextFaceSource
	AntiAlias  bool
}

// NewEbitenCanvas creates an antialiased canvas over the target image.
func NewEbitenCanvas(target *ebiten.Image) *EbitenCanvas {
	return &EbitenCanvas{Target: target, AntiAlias: true}
}

func (e *EbitenCanvas) FillRect(r Rect, c Color) {
	if c.A == 0 {
		return
	}
	vector.DrawFilledRect(e.Target, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c.nrgba(), e.AntiAlias)
}

func (e *EbitenCanvas) StrokeRect(r Rect, width float64, c Color) {
	if c.A == 0 {
		return
	}
	vector.StrokeRect(e.Target, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), float32(width), c.nrgba(), e.AntiAlias)
}

func (e *EbitenCanvas) FillCircle(center Vec2, radius float64, c Color) {
	if c.A == 0 {
		return
	}
	vector.DrawFilledCircle(e.Target, float32(center.X), float32(center.Y), float32(radius), c.nrgba(), e.AntiAlias)
}

func (e *EbitenCanvas) StrokeCircle(center Vec2, radius, width float64, c Color) {
	if c.A == 0 {
		return
	}
	vector.StrokeCircle(e.Target, float32(center.X), float32(center.Y), float32(radius), float32(width), c.nrgba(), e.AntiAlias)
}

func (e *EbitenCanvas) StrokeLine(from, to Vec2, width float64, c Color) {
	if c.A == 0 {
		return
	}
	vector.StrokeLine(e.Target, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), float32(width), c.nrgba(), e.AntiAlias)
}

// FillPolygon draws a convex polygon as a triangle fan through the shared
// white pixel.
func (e *EbitenCanvas) FillPolygon(points []Vec2, c Color) {
	if len(points) < 3 || c.A == 0 {
		return
	}
	a := float32(c.A)
	cr := float32(c.R) * a
	cg := float32(c.G) * a
	cb := float32(c.B) * a
	verts := make([]ebiten.Vertex, len(points))
	for i, p := range points {
		verts[i] = ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: a,
		}
	}
	inds := make([]uint16, 0, (len(points)-2)*3)
	for i := 2; i < len(points); i++ {
		inds = append(inds, 0, uint16(i-1), uint16(i))
	}
	var op ebiten.DrawTrianglesOptions
	op.AntiAlias = e.AntiAlias
	e.Target.DrawTriangles(verts, inds, getWhitePixel(), &op)
}

func (e *EbitenCanvas) DrawText(s string, center Vec2, size float64, c Color) {
	if e.FaceSource == nil || s == "" || c.A == 0 {
		return
	}
	face := &text.GoTextFace{Source: e.FaceSource, Size: size}
	w, h := text.Measure(s, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(center.X-w/2, center.Y-h/2)
	op.ColorScale.ScaleWithColor(c.nrgba())
	text.Draw(e.Target, s, face, op)
}

func (e *EbitenCanvas) DrawImage(tex Texture, dst Rect) {
	it, ok := tex.(ImageTexture)
	if !ok || it.Image == nil {
		return
	}
	w, h := it.Size()
	if w == 0 || h == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.Width/float64(w), dst.Height/float64(h))
	op.GeoM.Translate(dst.X, dst.Y)
	op.Filter = ebiten.FilterLinear
	e.Target.DrawImage(it.Image, op)
}

// DrawImageRegion blits a source sub-rectangle of the texture into dst.
func (e *EbitenCanvas) DrawImageRegion(tex Texture, src, dst Rect) {
	it, ok := tex.(ImageTexture)
	if !ok || it.Image == nil || src.Width <= 0 || src.Height <= 0 {
		return
	}
	bounds := it.Image.Bounds()
	region := image.Rect(
		bounds.Min.X+int(src.X),
		bounds.Min.Y+int(src.Y),
		bounds.Min.X+int(src.X+src.Width+0.5),
		bounds.Min.Y+int(src.Y+src.Height+0.5),
	).Intersect(bounds)
	if region.Dx() == 0 || region.Dy() == 0 {
		return
	}
	sub := it.Image.SubImage(region).(*ebiten.Image)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.Width/float64(region.Dx()), dst.Height/float64(region.Dy()))
	op.GeoM.Translate(dst.X, dst.Y)
	op.Filter = ebiten.FilterLinear
	e.Target.DrawImage(sub, op)
}
