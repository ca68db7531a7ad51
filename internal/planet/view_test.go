package planet

import "testing"

func testViewConfig() Config {
	cfg := testConfig()
	cfg.ViewW = 20
	cfg.ViewH = 12
	return cfg
}

func TestViewDisplayMatchesTiles(t *testing.T) {
	v := NewView(testViewConfig())
	cells := v.Cells()
	for y := 0; y < 12; y++ {
		for x := 0; x < 20; x++ {
			if cells[y*20+x] != uint8(v.TileAt(x, y).Biome) {
				t.Fatalf("display cell (%d,%d) out of sync with tile", x, y)
			}
		}
	}
}

func TestPanMovesCameraAndRerenders(t *testing.T) {
	v := NewView(testViewConfig())

	v.Pan(5, -3)
	if cx, cy := v.Camera(); cx != 5 || cy != -3 {
		t.Fatalf("camera at (%d,%d), want (5,-3)", cx, cy)
	}

	cells := v.Cells()
	for y := 0; y < 12; y++ {
		for x := 0; x < 20; x++ {
			want := uint8(v.gen.TileAt(5+x, -3+y).Biome)
			if cells[y*20+x] != want {
				t.Fatalf("panned display cell (%d,%d) = %d, want %d", x, y, cells[y*20+x], want)
			}
		}
	}
}

func TestPanZeroIsNoop(t *testing.T) {
	v := NewView(testViewConfig())
	before := v.gen.CachedChunks()
	v.Pan(0, 0)
	if v.gen.CachedChunks() != before {
		t.Fatal("zero pan generated chunks")
	}
}

func TestViewResetReturnsToOrigin(t *testing.T) {
	v := NewView(testViewConfig())
	v.Pan(40, 40)
	v.Reset(0)
	if cx, cy := v.Camera(); cx != 0 || cy != 0 {
		t.Fatalf("camera at (%d,%d) after reset, want origin", cx, cy)
	}
	if v.Clock().Elapsed() != 0 {
		t.Fatal("clock not restarted by reset")
	}
}

func TestViewResetSeedChangesTerrain(t *testing.T) {
	cfg := testViewConfig()
	cfg.ViewW = 48
	cfg.ViewH = 32
	v := NewView(cfg)

	before := make([]uint8, len(v.Cells()))
	copy(before, v.Cells())

	v.Reset(v.cfg.Seed + 1000)

	same := true
	for i, c := range v.Cells() {
		if c != before[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seed produced an identical viewport")
	}
}

func TestViewStepAdvancesLightClock(t *testing.T) {
	v := NewView(testViewConfig())
	v.Step()
	if v.Clock().Elapsed() != v.cfg.Params.TickSeconds {
		t.Fatalf("elapsed = %v after one step", v.Clock().Elapsed())
	}
	if l := v.LightLevel(); l < 0 || l > 1 {
		t.Fatalf("light level %v outside [0,1]", l)
	}
}

func TestViewStepKeepsTerrainStatic(t *testing.T) {
	v := NewView(testViewConfig())
	before := make([]uint8, len(v.Cells()))
	copy(before, v.Cells())

	for i := 0; i < 20; i++ {
		v.Step()
	}

	for i, c := range v.Cells() {
		if c != before[i] {
			t.Fatalf("cell %d changed over time; chunked terrain is static", i)
		}
	}
}
