// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/prim/base/tolassert"
	"cogentcore.org/prim/math64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangleNormals(ms *MeshBase) []math64.Vector3 {
	nt := ms.NumTriangles()
	norms := make([]math64.Vector3, nt)
	for i := range nt {
		a, b, c := ms.Triangle(i)
		norms[i] = math64.Normal(a, b, c)
	}
	return norms
}

func TestBox(t *testing.T) {
	bx := NewBox("box", math64.Vec3(2, 4, 6))
	assert.Equal(t, 24, bx.NumVertex())
	assert.Equal(t, 12, bx.NumTriangles())
	tolassert.EqualVector3(t, math64.Vec3(-1, -2, -3), bx.BBox.Min)
	tolassert.EqualVector3(t, math64.Vec3(1, 2, 3), bx.BBox.Max)
	for i, n := range triangleNormals(&bx.MeshBase) {
		a, _, _ := bx.Triangle(i)
		// outward: the face normal points the same way as the face center
		assert.Greater(t, n.Dot(a), 0.0)
	}
}

func TestSphere(t *testing.T) {
	sp := NewSphere("sphere", 5, 24, 12)
	assert.Equal(t, 24*(2*12-2), sp.NumTriangles())
	tolassert.EqualVector3(t, math64.Vec3(-5, -5, -5), sp.BBox.Min)
	tolassert.EqualVector3(t, math64.Vec3(5, 5, 5), sp.BBox.Max)
	for i := range sp.NumVertex() {
		tolassert.Equal(t, 5, sp.Vertex.Vector3(i).Length())
	}
	sm := NewSphere("small", 1, 1, 1)
	assert.Equal(t, 3, sm.WidthSegs)
	assert.Equal(t, 2, sm.HeightSegs)
}

func TestCylinder(t *testing.T) {
	cy := NewCylinder("column", 4, 1, 8)
	assert.Equal(t, 8*2+8+8, cy.NumTriangles())
	tolassert.Equal(t, -2, cy.BBox.Min.Z)
	tolassert.Equal(t, 2, cy.BBox.Max.Z)
	tolassert.Equal(t, 1, cy.BBox.Max.X)

	norms := triangleNormals(&cy.MeshBase)
	for i := range 16 {
		a, b, c := cy.Triangle(i)
		mid := a.Add(b).Add(c).DivScalar(3)
		mid.Z = 0
		assert.Greater(t, norms[i].Dot(mid), 0.0, "lateral triangle %d faces in", i)
	}

	cone := NewCylinderSector("cone", 2, 0, 1, 8, 1, 0, 2*math.Pi, true, true)
	assert.Equal(t, 8+8, cone.NumTriangles())

	half := NewCylinderSector("half", 2, 1, 1, 8, 1, 0, math.Pi, false, false)
	assert.Equal(t, 16, half.NumTriangles())
	tolassert.Equal(t, 0, half.BBox.Min.Y)
}

func TestRing(t *testing.T) {
	up := NewRingSector("top", 1, 2, 8, 0, 2*math.Pi, false)
	assert.Equal(t, 16, up.NumTriangles())
	for _, n := range triangleNormals(&up.MeshBase) {
		tolassert.Equal(t, 1, n.Z)
	}
	down := NewRingSector("bottom", 1, 2, 8, 0, 2*math.Pi, true)
	for _, n := range triangleNormals(&down.MeshBase) {
		tolassert.Equal(t, -1, n.Z)
	}
	disk := NewRingSector("disk", 0, 2, 8, 0, 2*math.Pi, false)
	assert.Equal(t, 8, disk.NumTriangles())
}

func TestTorus(t *testing.T) {
	tr := NewTorusSector("torus", 3, 1, 12, 24, 0, 2*math.Pi)
	assert.Equal(t, 2*12*24, tr.NumTriangles())
	tolassert.Equal(t, 4, tr.BBox.Max.X)
	tolassert.Equal(t, -4, tr.BBox.Min.X)
	tolassert.Equal(t, 1, tr.BBox.Max.Z)
	tolassert.Equal(t, -1, tr.BBox.Min.Z)
}

func TestDiskAndPlane(t *testing.T) {
	dk := NewDisk("disk", 2, 32)
	assert.Equal(t, 32, dk.NumTriangles())
	for _, n := range triangleNormals(&dk.MeshBase) {
		tolassert.Equal(t, 1, n.Z)
	}
	pl := NewPlane("plane", 2, 4)
	assert.Equal(t, 2, pl.NumTriangles())
	tolassert.EqualVector3(t, math64.Vec3(-1, -2, 0), pl.BBox.Min)
	tolassert.EqualVector3(t, math64.Vec3(1, 2, 0), pl.BBox.Max)
}

func TestGenMesh(t *testing.T) {
	var vtx math64.ArrayF64
	vtx.AppendVector3(math64.Vec3(0, 0, 0), math64.Vec3(1, 0, 0), math64.Vec3(0, 1, 0))
	ms := NewGenMesh("poly", vtx, math64.ArrayU32{0, 1, 2})
	assert.Equal(t, 1, ms.NumTriangles())
	for i := range 3 {
		tolassert.EqualVector3(t, math64.Vec3(0, 0, 1), ms.Normal.Vector3(i))
	}
	tolassert.EqualVector3(t, math64.Vec3(1, 1, 0), ms.BBox.Max)
}

func TestPoseBasis(t *testing.T) {
	ps := Pose{}
	ps.Defaults()
	basis := math64.Matrix3FromBasis(math64.Vec3(0, 1, 0), math64.Vec3(-1, 0, 0), math64.Vec3(0, 0, 1))
	ps.SetBasis(&basis)
	ps.Pos.Set(0, 0, 10)
	tolassert.EqualVector3(t, math64.Vec3(0, 1, 10), ps.Transform(math64.Vec3(1, 0, 0)))

	// local rotation about Y happens before the basis
	ps.RotateOnAxis(math64.Vec3(0, 1, 0), math.Pi/2)
	tolassert.EqualVector3(t, math64.Vec3(0, 0, 9), ps.Transform(math64.Vec3(1, 0, 0)))
}

func TestWorldBBox(t *testing.T) {
	sld := NewSolid("box", NewBox("box", math64.Vec3(2, 4, 6)), NewMaterial(White, 1, false))
	sld.SetPos(math64.Vec3(0, 0, 10))
	bb := WorldBBox(sld)
	tolassert.EqualVector3(t, math64.Vec3(-1, -2, 7), bb.Min)
	tolassert.EqualVector3(t, math64.Vec3(1, 2, 13), bb.Max)

	gp := NewGroup("group")
	gp.Add(sld)
	gp.SetPos(math64.Vec3(5, 0, 0))
	bb = WorldBBox(gp)
	tolassert.EqualVector3(t, math64.Vec3(4, -2, 7), bb.Min)

	empty := NewGroup("empty")
	assert.True(t, WorldBBox(empty).IsEmpty())
}

func TestColor(t *testing.T) {
	gray := ColorFromHex(0x505050)
	tolassert.Equal(t, 80.0/255, gray.R)
	c := Color{2, -1, 0.5}
	assert.Equal(t, "#ff0080", c.Hex())
	assert.Equal(t, "rgb(255,0,128)", c.Style())
	assert.Equal(t, 2.0, c.R)
}

func TestMaterial(t *testing.T) {
	mt := NewMaterial(Color{1, 0, 0}, 0.8, true)
	assert.Equal(t, 0.1, mt.Metalness)
	assert.Equal(t, 0.6, mt.Roughness)
	assert.True(t, mt.Transparent)
	assert.True(t, mt.DepthWrite)
	assert.True(t, mt.IsTransparent())
	assert.Equal(t, "back", BackSide.String())
}

func TestMarkers(t *testing.T) {
	sq := NewFlatMarker("square", SquareMarker, 3, NewMaterial(White, 1, false))
	assert.Equal(t, DoubleSide, sq.Material.Side)
	tolassert.EqualVector3(t, math64.Vec3(3, 3, 0), sq.LocalBBox().Max)
	disc := NewFlatMarker("disc", DiscMarker, 2, NewMaterial(White, 1, false))
	assert.Equal(t, 32, disc.Mesh.AsMeshBase().NumTriangles())

	tex := NewTexture("disc", image.NewRGBA(image.Rect(0, 0, 6, 6)))
	bb := NewBillboardMarker("disc", DiscMarker, 2, tex, NewMaterial(White, 1, false))
	tolassert.EqualVector3(t, math64.Vec3(4, 4, 1), bb.Pose.Scale)
	tolassert.EqualVector3(t, math64.Vec3(2, 2, 0), WorldBBox(bb).Max)

	lb := NewLabel("label", "hi", "Times-Roman", 12, NewTexture("hi", image.NewRGBA(image.Rect(0, 0, 100, 40))), NewMaterial(White, 1, false))
	tolassert.EqualVector3(t, math64.Vec3(10, 4, 1), lb.Pose.Scale)
}

func TestScene(t *testing.T) {
	sc := NewScene("test")
	assert.Equal(t, Black, sc.Background)
	require.Len(t, sc.Lights, 2)
	amb := sc.LightByName("ambient")
	require.NotNil(t, amb)
	assert.Equal(t, ColorFromHex(0x505050), amb.AsLightBase().Color)
	dl := sc.LightByName("directional").(*DirLight)
	tolassert.EqualVector3(t, math64.Vec3(10, 10, 10), dl.Pos)
	assert.Equal(t, 1.0, dl.Lumens)

	gp := NewGroup("tubs")
	gp.Add(NewSolid("outer", NewCylinder("outer", 2, 1, 8), NewMaterial(White, 1, false)))
	sc.Add(gp, NewLines("line", []math64.Vector3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 1}}, NewMaterial(White, 1, false)))
	sc.AddText(OverlayText{X: 1, Y: 2, Size: 12, Text: "hello"})

	st := sc.Stats()
	assert.Equal(t, 1, st.Nodes[GroupNode])
	assert.Equal(t, 1, st.Nodes[SolidNode])
	assert.Equal(t, 1, st.Nodes[LinesNode])
	assert.Equal(t, 32, st.Triangles)
	assert.Equal(t, 2, st.Points)
	assert.Equal(t, 1, st.Texts)

	bb := sc.BBox()
	tolassert.EqualVector3(t, math64.Vec3(-1, -1, -1), bb.Min)
	tolassert.EqualVector3(t, math64.Vec3(1, 1, 1), bb.Max)

	doc := sc.Export()
	require.Len(t, doc.Nodes, 2)
	assert.Equal(t, GroupNode, doc.Nodes[0].Type)
	require.Len(t, doc.Nodes[0].Children, 1)
	assert.Equal(t, 32, doc.Nodes[0].Children[0].Triangles)
	assert.Equal(t, [][3]float64{{0, 0, 0}, {1, 1, 1}}, doc.Nodes[1].Points)
	assert.Equal(t, "directional", doc.Lights[1].Type)
	assert.Len(t, doc.Texts, 1)
}

type lineDecoder struct {
	lines []string
}

func (ld *lineDecoder) New() Decoder        { return &lineDecoder{} }
func (ld *lineDecoder) Desc() string        { return "test lines" }
func (ld *lineDecoder) SetFile(fname string) {}

func (ld *lineDecoder) Decode(r io.Reader) error {
	b, err := io.ReadAll(r)
	ld.lines = strings.Fields(string(b))
	return err
}

func (ld *lineDecoder) SetScene(sc *Scene) {
	for _, l := range ld.lines {
		sc.AddText(OverlayText{Text: l})
	}
}

func TestDecodeFile(t *testing.T) {
	RegisterDecoder(".LNS", &lineDecoder{})
	defer delete(Decoders, ".lns")
	assert.Contains(t, DecoderExts(), ".lns")

	fn := filepath.Join(t.TempDir(), "words.lns")
	require.NoError(t, os.WriteFile(fn, []byte("one two\nthree"), 0666))
	sc, err := DecodeFile(fn)
	require.NoError(t, err)
	assert.Equal(t, "words.lns", sc.Name)
	assert.Len(t, sc.Texts, 3)

	_, err = DecodeFile("scene.unknown")
	assert.Error(t, err)
	_, err = DecodeFile(filepath.Join(t.TempDir(), "missing.lns"))
	assert.Error(t, err)
}

func TestEnumText(t *testing.T) {
	var nt NodeTypes
	require.NoError(t, nt.UnmarshalText([]byte("label")))
	assert.Equal(t, LabelNode, nt)
	assert.Error(t, nt.UnmarshalText([]byte("mesh")))

	var sd Sides
	require.NoError(t, sd.UnmarshalText([]byte("back")))
	assert.Equal(t, BackSide, sd)
	b, err := DoubleSide.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "double", string(b))
	assert.Error(t, sd.UnmarshalText([]byte("left")))
}
