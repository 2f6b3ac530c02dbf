package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/tshimizu/CoilDisorderAnalyzer/src/report"
	"github.com/tshimizu/CoilDisorderAnalyzer/src/series"
)

func testFrame(t *testing.T, n int) *series.AlignedFrame {
	t.Helper()
	dense := make([]report.DisorderRow, n)
	for i := range dense {
		dense[i] = report.DisorderRow{Position: i + 1, Residue: "A", Score: float64(10 + i*7%90)}
	}
	sparse := []report.ResidueProb{
		{Position: 2, Residue: 'A', Prob: 92.5, Heptad: 'a'},
		{Position: 3, Residue: 'A', Prob: 88.0, Heptad: 'b'},
	}
	frame, err := series.Align("TEST_SEQ", dense, sparse)
	if err != nil {
		t.Fatalf("Align: %v", err)
	}
	if err := frame.Smooth(3); err != nil {
		t.Fatalf("Smooth: %v", err)
	}
	return frame
}

func TestProjectGeometry(t *testing.T) {
	top := panelTopNorm.project(1600, 1000, yAxisMin, yAxisMax)
	bot := panelBottomNorm.project(1600, 1000, yAxisMin, yAxisMax)

	for _, box := range []AxisBox{top, bot} {
		if box.Degenerate() {
			t.Fatalf("projected box degenerate: %+v", box)
		}
		if box.Left < 0 || box.Right > 1600 || box.Top < 0 || box.Bottom > 1000 {
			t.Fatalf("box outside canvas: %+v", box)
		}
		if box.YMin != yAxisMin || box.YMax != yAxisMax {
			t.Fatalf("box lost data limits: %+v", box)
		}
	}
	if top.Bottom >= bot.Top {
		t.Fatalf("top panel (bottom %d) overlaps bottom panel (top %d)", top.Bottom, bot.Top)
	}
	if top.Left != bot.Left || top.Right != bot.Right {
		t.Fatal("panels should share the x extent")
	}
}

func TestAxisBoxDegenerate(t *testing.T) {
	ok := AxisBox{YMin: -5, YMax: 105, Left: 10, Right: 90, Top: 10, Bottom: 90}
	if ok.Degenerate() {
		t.Fatal("well-formed box reported degenerate")
	}
	cases := []AxisBox{
		{YMin: -5, YMax: 105, Left: 50, Right: 50, Top: 10, Bottom: 90},
		{YMin: -5, YMax: 105, Left: 10, Right: 90, Top: 50, Bottom: 50},
		{YMin: 7, YMax: 7, Left: 10, Right: 90, Top: 10, Bottom: 90},
	}
	for i, box := range cases {
		if !box.Degenerate() {
			t.Fatalf("case %d: expected degenerate: %+v", i, box)
		}
	}
}

func TestRenderOverlay(t *testing.T) {
	frame := testFrame(t, 40)
	tm := []report.Span{{Start: 5, End: 12}}
	cfg := Config{Width: 640, Height: 480, Theme: Light, SeqName: "TEST_SEQ", XTickStep: 10}

	raster, err := RenderOverlay(frame, tm, cfg)
	if err != nil {
		t.Fatalf("RenderOverlay: %v", err)
	}
	b := raster.Img.Bounds()
	if b.Dx() != 640 || b.Dy() != 480 {
		t.Fatalf("raster size = %dx%d", b.Dx(), b.Dy())
	}
	for _, box := range []AxisBox{raster.TopDisorder, raster.TopCC, raster.BottomDisorder, raster.BottomCC} {
		if box.Degenerate() {
			t.Fatalf("retained axis box degenerate: %+v", box)
		}
		if box.YMin != yAxisMin || box.YMax != yAxisMax {
			t.Fatalf("retained axis box limits = [%v,%v]", box.YMin, box.YMax)
		}
	}
	if raster.TopDisorder != raster.TopCC || raster.BottomDisorder != raster.BottomCC {
		t.Fatal("panel axes should share one pixel box")
	}
	if raster.TopDisorder.Bottom >= raster.BottomDisorder.Top {
		t.Fatal("panels overlap")
	}

	// An interior corner pixel is plain background.
	if got := raster.Img.RGBAAt(3, 3); got != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("light background pixel = %+v", got)
	}
}

func TestRenderOverlayDarkBackground(t *testing.T) {
	frame := testFrame(t, 20)
	raster, err := RenderOverlay(frame, nil, Config{Width: 400, Height: 300, Theme: Dark, SeqName: "TEST_SEQ"})
	if err != nil {
		t.Fatalf("RenderOverlay: %v", err)
	}
	if got := raster.Img.RGBAAt(3, 3); got != (color.RGBA{0, 0, 0, 255}) {
		t.Fatalf("dark background pixel = %+v", got)
	}
}

func TestRenderOverlayEmptyFrame(t *testing.T) {
	frame := &series.AlignedFrame{Name: "EMPTY"}
	if _, err := RenderOverlay(frame, nil, Config{SeqName: "EMPTY"}); err == nil {
		t.Fatal("expected error for empty frame")
	}
}

func TestRenderOverlayStatBox(t *testing.T) {
	frame := testFrame(t, 20)
	cfg := Config{Width: 400, Height: 300, SeqName: "TEST_SEQ"}
	plain, err := RenderOverlay(frame, nil, cfg)
	if err != nil {
		t.Fatalf("RenderOverlay: %v", err)
	}
	cfg.StatLines = []string{"Mean: 42.00", "Min: 10.00", "Max: 93.00"}
	boxed, err := RenderOverlay(frame, nil, cfg)
	if err != nil {
		t.Fatalf("RenderOverlay with stat lines: %v", err)
	}
	if bytes.Equal(plain.Img.Pix, boxed.Img.Pix) {
		t.Fatal("stat box left the raster unchanged")
	}
}

func TestRasterEncodePNG(t *testing.T) {
	r := &Raster{Img: image.NewRGBA(image.Rect(0, 0, 8, 8))}
	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 8 {
		t.Fatalf("decoded width = %d", img.Bounds().Dx())
	}
}

func TestRenderDisorderChart(t *testing.T) {
	frame := testFrame(t, 30)
	img, err := RenderDisorderChart(frame, Config{Width: 800, Height: 1000, SeqName: "TEST_SEQ"})
	if err != nil {
		t.Fatalf("RenderDisorderChart: %v", err)
	}
	if img.Bounds().Dx() != 800 {
		t.Fatalf("chart width = %d", img.Bounds().Dx())
	}
	if got := img.Bounds().Dy(); got != 400 {
		t.Fatalf("chart height = %d, want 2/5 of the overlay height", got)
	}
}
