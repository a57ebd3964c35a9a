package mixer

import (
	"errors"
	"testing"
)

func TestParseSpec_Names(t *testing.T) {
	tests := []struct {
		name  string
		spec  string
		shade string
		want  Color
	}{
		{"bare yellow", "yellow", "", Yellow},
		{"bare blue", "blue", "", Blue},
		{"explicit standard", "yellow", "standard", Yellow},
		{"light shade", "yellow", "light", LightYellow},
		{"dark shade", "blue", "dark", DarkBlue},
		{"fused light", "light-yellow", "", LightYellow},
		{"fused dark", "dark-blue", "", DarkBlue},
		{"fused underscore", "light_blue", "", LightBlue},
		{"uppercase name", "YELLOW", "", Yellow},
		{"mixed case with shade", "Blue", "Light", LightBlue},
		{"surrounding whitespace", "  blue  ", "", Blue},
		{"fused wins over shade", "dark-yellow", "light", DarkYellow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSpec(tt.spec, tt.shade)
			if err != nil {
				t.Fatalf("ParseSpec(%q, %q) failed: %v", tt.spec, tt.shade, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("got %s, want %s", got.Hex(), tt.want.Hex())
			}
		})
	}
}

func TestParseSpec_Hex(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want Color
	}{
		{"yellow uppercase", "#FFED00", Yellow},
		{"yellow lowercase", "#ffed00", Yellow},
		{"blue mixed case", "#0047aB", Blue},
		{"light yellow", "#FFF67F", LightYellow},
		{"dark yellow", "#7F7600", DarkYellow},
		{"light blue", "#7FA3D5", LightBlue},
		{"dark blue", "#002355", DarkBlue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSpec(tt.spec, "")
			if err != nil {
				t.Fatalf("ParseSpec(%q) failed: %v", tt.spec, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("got %s, want %s", got.Hex(), tt.want.Hex())
			}
		})
	}
}

// Names and hex codes must resolve to the same constants.
func TestParseSpec_NameHexAgreement(t *testing.T) {
	for _, c := range []Color{Yellow, LightYellow, DarkYellow, Blue, LightBlue, DarkBlue} {
		byName, err := ParseSpec(c.Name, "")
		if err != nil {
			t.Fatalf("ParseSpec(%q) failed: %v", c.Name, err)
		}
		byHex, err := ParseSpec(c.Hex(), "")
		if err != nil {
			t.Fatalf("ParseSpec(%q) failed: %v", c.Hex(), err)
		}
		if !byName.Equal(byHex) {
			t.Errorf("%s: name resolved to %s, hex to %s", c.Name, byName.Hex(), byHex.Hex())
		}
	}
}

func TestParseSpec_Errors(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		shade   string
		wantErr error
	}{
		{"empty spec", "", "", ErrInvalidColorFormat},
		{"whitespace spec", "   ", "", ErrInvalidColorFormat},
		{"unknown name", "green", "", ErrUnsupportedColor},
		{"unknown fused", "light-green", "", ErrUnsupportedColor},
		{"unknown shade", "yellow", "pale", ErrInvalidColorFormat},
		{"short hex", "#FFF", "", ErrInvalidColorFormat},
		{"long hex", "#FFED0000", "", ErrInvalidColorFormat},
		{"bad hex digits", "#GGED00", "", ErrInvalidColorFormat},
		{"unrecognized hex", "#FF0000", "", ErrUnsupportedColor},
		{"near miss hex", "#FFED01", "", ErrUnsupportedColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSpec(tt.spec, tt.shade)
			if err == nil {
				t.Fatalf("ParseSpec(%q, %q) succeeded, want %v", tt.spec, tt.shade, tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got error %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestColor_Hex(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{"yellow", Yellow, "#FFED00"},
		{"blue", Blue, "#0047AB"},
		{"zero value", Color{}, "#000000"},
		{"single digit channels", Color{R: 1, G: 2, B: 3}, "#010203"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.Hex(); got != tt.want {
				t.Errorf("Hex: got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestColor_Equal_IgnoresTags(t *testing.T) {
	bare := Color{R: 255, G: 237, B: 0}
	if !bare.Equal(Yellow) {
		t.Error("colors with equal RGB but different tags should be equal")
	}
	if Yellow.Equal(Blue) {
		t.Error("yellow and blue should not be equal")
	}
}
