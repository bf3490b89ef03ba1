package color

import "testing"

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGBA
		wantErr bool
	}{
		{"#ff0000", RGBA{255, 0, 0, 255}, false},
		{"00ff00", RGBA{0, 255, 0, 255}, false},
		{"#11223344", RGBA{0x11, 0x22, 0x33, 0x44}, false},
		{" #ffffff ", RGBA{255, 255, 255, 255}, false},
		{"#fff", RGBA{}, true},
		{"#zzzzzz", RGBA{}, true},
		{"", RGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	c := RGBA{R: 0xab, G: 0xcd, B: 0xef, A: 0x12}
	got, err := ParseHex(c.Hex())
	if err != nil {
		t.Fatalf("ParseHex(%q): %v", c.Hex(), err)
	}
	if got != c {
		t.Errorf("round trip %v -> %q -> %v", c, c.Hex(), got)
	}
}

func TestColorUnion(t *testing.T) {
	c := FromHSV(370, 1.5, 0.5, 200)
	hsv := c.HSV()
	if hsv.H != 10 || hsv.S != 1 || hsv.V != 0.5 {
		t.Errorf("FromHSV clamping: got %+v", hsv)
	}
	if c.AlphaValue() != 200 {
		t.Errorf("alpha = %d, want 200", c.AlphaValue())
	}
	if c.Space() != SpaceHSV {
		t.Errorf("space = %v, want hsv", c.Space())
	}

	rgb := FromRGBA(RGBA{R: 255, A: 255})
	if got := rgb.HSV(); got.H != 0 || got.S != 1 || got.V != 1 {
		t.Errorf("red as hsv: %+v", got)
	}
}

func TestParseChannel(t *testing.T) {
	if ch, err := ParseChannel(SpaceHSV, "v"); err != nil || ch != Value {
		t.Errorf("ParseChannel(hsv, v) = %v, %v", ch, err)
	}
	if ch, err := ParseChannel(SpaceHSL, "l"); err != nil || ch != Lightness {
		t.Errorf("ParseChannel(hsl, l) = %v, %v", ch, err)
	}
	if _, err := ParseChannel(SpaceRGB, "x"); err == nil {
		t.Error("ParseChannel(rgb, x) should fail")
	}
}
