package assets

import "testing"

func TestLoadEmbeddedImages(t *testing.T) {
	tests := []struct {
		path string
		w, h int
	}{
		{TerrainTiles, 256, 128},
		{"assets/" + TerrainTiles, 256, 128},
		{MarkerSheet, 96, 24},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			img, err := LoadImage(tc.path)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			b := img.Bounds()
			if b.Dx() != tc.w || b.Dy() != tc.h {
				t.Fatalf("expected %dx%d, got %dx%d", tc.w, tc.h, b.Dx(), b.Dy())
			}
		})
	}
}

func TestCleanAssetPath(t *testing.T) {
	tests := map[string]string{
		"":                       "",
		"assets/a.png":           "a.png",
		"a.png":                  "a.png",
		"/home/x/assets/b/c.png": "b/c.png",
		"/tmp/d.png":             "d.png",
	}
	for in, want := range tests {
		if got := cleanAssetPath(in); got != want {
			t.Fatalf("cleanAssetPath(%q): expected %q, got %q", in, want, got)
		}
	}
	if _, err := LoadImage("missing.png"); err == nil {
		t.Fatalf("expected error for missing asset")
	}
}
