package graphic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func unitSquare() []vec.Vec2 {
	return []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

func scene() (root, region *Group, poly *Polygon) {
	root = NewGroup()
	root.Position = vec.Vec2{X: 10, Y: 20}
	root.Scale = vec.Vec2{X: 4, Y: 4}
	region = NewGroup()
	region.Name = "A"
	poly = NewPolygon(unitSquare())
	poly.SetStyle(Style{Fill: "#336699", Stroke: "#000000", LineWidth: 1})
	region.Add(poly)
	root.Add(region)
	return root, region, poly
}

func TestStyleMerge(t *testing.T) {
	base := Style{Fill: "#111111", Stroke: "#222222", LineWidth: 2}
	got := base.Merge(Style{Fill: "#ffffff"})
	assert.Equal(t, Style{Fill: "#ffffff", Stroke: "#222222", LineWidth: 2}, got)
	assert.Equal(t, "#111111", base.Fill)
}

func TestParseColorShorthand(t *testing.T) {
	c, ok := ParseColor("#fff")
	require.True(t, ok)
	assert.Equal(t, "#ffffff", c.Hex())
	_, ok = ParseColor("red")
	assert.False(t, ok)
	assert.Equal(t, "red", Lift("red"))
	assert.NotEqual(t, "#336699", Lift("#336699"))
}

func TestListenersCallOrderAndHandled(t *testing.T) {
	var ls Listeners
	var order []int
	ls.Add(Click, func(*Event) { order = append(order, 1) })
	ls.Add(Click, func(e *Event) { order = append(order, 2); e.SetHandled() })
	ls.Call(&Event{Type: Click})
	assert.Equal(t, []int{2}, order)
	assert.Equal(t, 2, ls.Count(Click))
	ls.Remove(Click)
	assert.Equal(t, 0, ls.Count(Click))
}

func TestOnOff(t *testing.T) {
	g := NewGroup()
	g.On(Click, func(*Event) {})
	g.On(Click, func(*Event) {})
	assert.Equal(t, 2, g.ListenerCount(Click))
	g.Off(Click)
	assert.Equal(t, 0, g.ListenerCount(Click))
}

func TestHitTestUsesTransform(t *testing.T) {
	root, _, poly := scene()
	assert.Same(t, poly, root.HitTest(vec.Vec2{X: 12, Y: 22}))
	assert.Nil(t, root.HitTest(vec.Vec2{X: 0.5, Y: 0.5}))
	assert.Nil(t, root.HitTest(vec.Vec2{X: 15, Y: 22}))
}

func TestDispatchBubbles(t *testing.T) {
	root, region, poly := scene()
	var got []string
	region.On(Click, func(e *Event) { got = append(got, "region") })
	root.On(Click, func(e *Event) {
		got = append(got, "root")
		assert.Same(t, poly, e.Target)
	})
	assert.Same(t, poly, root.DispatchAt(Click, vec.Vec2{X: 12, Y: 22}))
	assert.Equal(t, []string{"region", "root"}, got)

	assert.Nil(t, root.DispatchAt(Click, vec.Vec2{X: 100, Y: 100}))
	assert.Len(t, got, 2)
}

func TestHoverStyleAndEmphasisLock(t *testing.T) {
	root, region, poly := scene()
	SetHoverStyle(region, Style{Fill: "#ff0000"})

	root.PointerMove(vec.Vec2{X: 12, Y: 22})
	assert.True(t, region.InEmphasis())
	assert.Equal(t, "#ff0000", poly.CurrentStyle().Fill)
	assert.Equal(t, "#000000", poly.CurrentStyle().Stroke)

	root.PointerMove(vec.Vec2{X: 100, Y: 100})
	assert.False(t, region.InEmphasis())
	assert.Equal(t, "#336699", poly.CurrentStyle().Fill)

	region.Trigger(Emphasis)
	root.PointerMove(vec.Vec2{X: 12, Y: 22})
	root.PointerMove(vec.Vec2{X: 100, Y: 100})
	assert.True(t, region.InEmphasis(), "triggered emphasis survives mouse out")

	region.Trigger(Normal)
	assert.False(t, region.InEmphasis())
}

func TestSetHoverStyleIsIdempotent(t *testing.T) {
	_, region, _ := scene()
	SetHoverStyle(region, Style{})
	SetHoverStyle(region, Style{})
	for _, typ := range []EventType{MouseOver, MouseOut, Emphasis, Normal} {
		assert.Equal(t, 1, region.ListenerCount(typ), typ.String())
	}
}

func TestEmphasisWithoutHoverFillLifts(t *testing.T) {
	_, region, poly := scene()
	SetHoverStyle(region, Style{})
	region.Trigger(Emphasis)
	assert.Equal(t, Lift("#336699"), poly.CurrentStyle().Fill)
}

func TestSetDataIndexRecursive(t *testing.T) {
	_, region, poly := scene()
	region.SetDataIndex(3)
	assert.Equal(t, 3, region.DataIndex)
	assert.Equal(t, 3, poly.DataIndex)
}

func TestRemoveAllDetaches(t *testing.T) {
	root, region, _ := scene()
	root.PointerMove(vec.Vec2{X: 12, Y: 22})
	require.NotNil(t, root.Hovered())
	root.RemoveAll()
	assert.Empty(t, root.Children())
	assert.Nil(t, region.Parent())
	assert.Nil(t, root.Hovered())
}

func TestContainsEvenOdd(t *testing.T) {
	p := NewPolygon(unitSquare())
	assert.True(t, p.Contains(vec.Vec2{X: 0.5, Y: 0.5}))
	assert.False(t, p.Contains(vec.Vec2{X: 1.5, Y: 0.5}))
	b := p.Bounds()
	assert.Equal(t, 1.0, b.URx)
	assert.Equal(t, 0.0, b.LLy)
}

func TestPathIsClosed(t *testing.T) {
	var cmds []path.Command
	var pts []vec.Vec2
	for cmd, p := range NewPolygon(unitSquare()).Path() {
		cmds = append(cmds, cmd)
		pts = append(pts, p...)
	}
	assert.Equal(t, []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose}, cmds)
	assert.Equal(t, unitSquare(), pts)
}

func TestPathFollowsGroupTransform(t *testing.T) {
	root := NewGroup()
	root.Position = vec.Vec2{X: 10, Y: 20}
	root.Scale = vec.Vec2{X: 2, Y: 3}
	region := NewGroup()
	poly := NewPolygon(unitSquare())
	region.Add(poly)
	root.Add(region)

	bb := poly.Path().Transform(region.GlobalTransform()).BBox()
	assert.Equal(t, 10.0, bb.LLx)
	assert.Equal(t, 20.0, bb.LLy)
	assert.Equal(t, 12.0, bb.URx)
	assert.Equal(t, 23.0, bb.URy)
}

func TestPaintStrokeOnly(t *testing.T) {
	root := NewGroup()
	region := NewGroup()
	poly := NewPolygon([]vec.Vec2{{X: 0, Y: 0}, {X: 7, Y: 0}, {X: 7, Y: 7}, {X: 0, Y: 7}})
	poly.SetStyle(Style{Stroke: "#ffffff", LineWidth: 1})
	region.Add(poly)
	root.Add(region)

	out := Paint(root, 4, 2)
	top := strings.Split(out, "\n")[0]
	// top edge only in the inner cells, no fill
	assert.Contains(t, top, "⠉")
	assert.NotContains(t, out, "⣿")
}

func TestPaintDrawsBraille(t *testing.T) {
	root := NewGroup()
	region := NewGroup()
	poly := NewPolygon([]vec.Vec2{{X: 0, Y: 0}, {X: 8, Y: 0}, {X: 8, Y: 8}, {X: 0, Y: 8}})
	poly.SetStyle(Style{Fill: "#00ff00"})
	region.Add(poly)
	root.Add(region)

	out := Paint(root, 10, 4)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, out, "⣿")
	assert.Empty(t, Paint(root, 0, 4))
}
