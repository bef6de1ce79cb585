package graphic

import (
	"image"
	"image/draw"
	"math"
	"strings"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Paint renders root into a w×h cell braille canvas. Root space is the
// micro-pixel grid: 2 pixels per cell horizontally, 4 vertically.
func Paint(root *Group, w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	br := newBrailleBuf(w, h)
	for _, p := range root.Polygons() {
		paintPolygon(br, p)
	}
	return strings.Join(br.toLines(), "\n")
}

// MicroSize is the root-space size of a w×h cell canvas.
func MicroSize(w, h int) vec.Vec2 {
	return vec.Vec2{X: float64(w * 2), Y: float64(h * 4)}
}

func paintPolygon(br *brailleBuf, p *Polygon) {
	if len(p.Points) < 3 {
		return
	}
	outline := p.Path().Transform(p.parent.GlobalTransform())
	st := p.CurrentStyle()
	if st.Fill != "" {
		fillPath(br, outline, st.Fill)
	}
	if st.Stroke != "" && st.LineWidth > 0 {
		strokePath(br, outline, st.Stroke)
	}
}

// fillPath rasterises a flattened outline with x/image/vector over its
// bounding box, clipped to the canvas, and sets micro-pixels at least half
// covered.
func fillPath(br *brailleBuf, outline path.Path, color string) {
	bb := outline.BBox()
	x0 := max(0, int(math.Floor(bb.LLx)))
	y0 := max(0, int(math.Floor(bb.LLy)))
	x1 := min(br.w*2, int(math.Ceil(bb.URx)))
	y1 := min(br.h*4, int(math.Ceil(bb.URy)))
	if x1 <= x0 || y1 <= y0 {
		return
	}
	r := vector.NewRasterizer(x1-x0, y1-y0)
	r.DrawOp = draw.Src
	ox, oy := float32(x0), float32(y0)
	for cmd, pts := range outline {
		switch cmd {
		case path.CmdMoveTo:
			r.MoveTo(float32(pts[0].X)-ox, float32(pts[0].Y)-oy)
		case path.CmdLineTo:
			r.LineTo(float32(pts[0].X)-ox, float32(pts[0].Y)-oy)
		case path.CmdClose:
			r.ClosePath()
		}
	}
	mask := image.NewAlpha(image.Rect(0, 0, x1-x0, y1-y0))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	for y := 0; y < y1-y0; y++ {
		row := mask.Pix[y*mask.Stride:]
		for x := 0; x < x1-x0; x++ {
			if row[x] >= 0x80 {
				br.setPixel(x0+x, y0+y, color)
			}
		}
	}
}

// strokePath draws each straight segment of outline with Bresenham lines.
func strokePath(br *brailleBuf, outline path.Path, color string) {
	var start, cur vec.Vec2
	line := func(a, b vec.Vec2) {
		br.drawLine(int(a.X), int(a.Y), int(b.X), int(b.Y), color)
	}
	for cmd, pts := range outline {
		switch cmd {
		case path.CmdMoveTo:
			start, cur = pts[0], pts[0]
		case path.CmdLineTo:
			line(cur, pts[0])
			cur = pts[0]
		case path.CmdClose:
			line(cur, start)
			cur = start
		}
	}
}
