package capture

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"ar-catcher/internal/config"
)

func TestPrepareFrameResizesAndMirrors(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 2))
	// Левая половина красная, правая синяя
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			c := color.RGBA{255, 0, 0, 255}
			if x >= 2 {
				c = color.RGBA{0, 0, 255, 255}
			}
			src.SetRGBA(x, y, c)
		}
	}

	out := PrepareFrame(src, 8, 4)
	if out.Bounds().Dx() != 8 || out.Bounds().Dy() != 4 {
		t.Fatalf("size = %v", out.Bounds())
	}
	left := out.RGBAAt(0, 1)
	right := out.RGBAAt(7, 1)
	if left.B != 255 || left.R != 0 {
		t.Errorf("left pixel = %v, want blue after mirroring", left)
	}
	if right.R != 255 || right.B != 0 {
		t.Errorf("right pixel = %v, want red after mirroring", right)
	}
}

func TestMirrorInPlaceOddWidth(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	img.SetRGBA(0, 0, color.RGBA{1, 0, 0, 255})
	img.SetRGBA(1, 0, color.RGBA{2, 0, 0, 255})
	img.SetRGBA(2, 0, color.RGBA{3, 0, 0, 255})
	MirrorInPlace(img)
	for x, want := range []uint8{3, 2, 1} {
		if got := img.RGBAAt(x, 0).R; got != want {
			t.Errorf("pixel %d = %d, want %d", x, got, want)
		}
	}
}

func writePNG(t *testing.T, path string, c color.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := 0; i < 4; i++ {
		img.SetRGBA(i%2, i/2, c)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestSequenceCameraCyclesFrames(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "b.png"), color.RGBA{0, 255, 0, 255})
	writePNG(t, filepath.Join(dir, "a.png"), color.RGBA{255, 0, 0, 255})
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0o644); err != nil {
		t.Fatal(err)
	}

	cam, err := OpenSequenceCamera(dir)
	if err != nil {
		t.Fatalf("OpenSequenceCamera() error = %v", err)
	}
	defer cam.Close()
	if cam.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", cam.Len())
	}

	wantRed := []bool{true, false, true}
	for i, red := range wantRed {
		img, err := cam.Read()
		if err != nil {
			t.Fatalf("Read() #%d error = %v", i, err)
		}
		r, g, _, _ := img.At(0, 0).RGBA()
		if (r > g) != red {
			t.Errorf("frame %d: red=%v, want %v", i, r > g, red)
		}
	}
}

func TestSequenceCameraFailures(t *testing.T) {
	if _, err := OpenSequenceCamera(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing directory")
	}
	if _, err := OpenSequenceCamera(t.TempDir()); err == nil {
		t.Error("expected error for empty directory")
	}

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.png"), []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	cam, err := OpenSequenceCamera(dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cam.Read(); err == nil {
		t.Error("expected decode error")
	}
	cam.Close()
	if _, err := cam.Read(); !errors.Is(err, ErrCameraClosed) {
		t.Errorf("Read() after Close = %v, want ErrCameraClosed", err)
	}
}

func TestSyntheticCamera(t *testing.T) {
	cam := NewSyntheticCamera(64, 32)
	img, err := cam.Read()
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 32 {
		t.Errorf("bounds = %v", img.Bounds())
	}
	cam.Close()
	if _, err := cam.Read(); !errors.Is(err, ErrCameraClosed) {
		t.Errorf("Read() after Close = %v", err)
	}
}

func TestCursorsFromHands(t *testing.T) {
	hands := []Hand{SyntheticHand(0.25, 0.5), SyntheticHand(0.75, 0.1), SyntheticHand(0.5, 0.5)}
	cursors := CursorsFromHands(hands, 1280, 720)
	if len(cursors) != config.MaxPlayers {
		t.Fatalf("cursors = %d, want %d", len(cursors), config.MaxPlayers)
	}
	if c := cursors[0]; c.X != 320 || c.Y != 360 || c.Player != 0 {
		t.Errorf("cursor 0 = %+v", c)
	}
	if c := cursors[1]; c.X != 960 || c.Y != 72 || c.Player != 1 {
		t.Errorf("cursor 1 = %+v", c)
	}
	if len(CursorsFromHands(nil, 1280, 720)) != 0 {
		t.Error("no hands should give no cursors")
	}
}

func TestSkeletonsFromHands(t *testing.T) {
	hands := []Hand{SyntheticHand(0.5, 0.5)}
	sk := SkeletonsFromHands(hands, 100, 100)
	if len(sk) != 1 || len(sk[0]) != config.HandLandmarks {
		t.Fatalf("skeleton shape = %d", len(sk))
	}
	tip := sk[0][config.IndexFingerTip]
	if tip.X != 50 || tip.Y != 50 {
		t.Errorf("tip = %+v", tip)
	}
	for _, e := range HandConnections {
		if e[0] >= config.HandLandmarks || e[1] >= config.HandLandmarks {
			t.Fatalf("bad connection %v", e)
		}
	}
}
