package styles

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-drift/circletimer/pkg/circletimer"
	timererrors "github.com/go-drift/circletimer/pkg/errors"
	"github.com/go-drift/circletimer/pkg/graphics"
)

func TestParse_PartialOverridesKeepDefaults(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		data   string
	}{
		{
			name:   "yaml",
			format: FormatYAML,
			data: `use_mask: false
fill_color: "#FF3366CC"
fill_diameter_ratio: 0.7
`,
		},
		{
			name:   "toml",
			format: FormatTOML,
			data: `use_mask = false
fill_color = "#FF3366CC"
fill_diameter_ratio = 0.7
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.data), tt.format)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			want := circletimer.DefaultStyle()
			want.UseMask = false
			want.FillColor = graphics.Color(0xFF3366CC)
			want.FillDiameterRatio = 0.7
			if got != want {
				t.Errorf("got %+v\nwant %+v", got, want)
			}
		})
	}
}

func TestParse_NamedAndShortColors(t *testing.T) {
	got, err := Parse([]byte("border_color: red\nbackground_color: \"#0F0\"\n"), FormatYAML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.BorderColor != graphics.ColorRed {
		t.Errorf("border = %v, want red", got.BorderColor)
	}
	if got.BackgroundColor != graphics.Color(0xFF00FF00) {
		t.Errorf("background = %v, want #FF00FF00", got.BackgroundColor)
	}
}

func TestParse_EmptyDocumentIsDefault(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatTOML} {
		got, err := Parse(nil, format)
		if err != nil {
			t.Fatalf("%v: Parse: %v", format, err)
		}
		if got != circletimer.DefaultStyle() {
			t.Errorf("%v: got %+v, want defaults", format, got)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		data   string
	}{
		{"unknown yaml key", FormatYAML, "fill_colour: red\n"},
		{"bad yaml color", FormatYAML, "fill_color: \"#12345\"\n"},
		{"unknown toml key", FormatTOML, "diameter = 3\n"},
		{"bad toml syntax", FormatTOML, "use_mask = \n"},
		{"unknown format", Format(9), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.data), tt.format)
			if err == nil {
				t.Fatal("expected error")
			}
			var te *timererrors.TimerError
			if !stderrors.As(err, &te) || te.Kind != timererrors.KindConfig {
				t.Errorf("error = %v, want config TimerError", err)
			}
			if got != circletimer.DefaultStyle() {
				t.Errorf("failed parse should return defaults, got %+v", got)
			}
		})
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	style := circletimer.DefaultStyle()
	style.UseMask = false
	style.BorderColor = graphics.Color(0x80102030)
	style.ShadowOpacity = 0.5

	for _, format := range []Format{FormatYAML, FormatTOML} {
		data, err := Marshal(style, format)
		if err != nil {
			t.Fatalf("%v: Marshal: %v", format, err)
		}
		got, err := Parse(data, format)
		if err != nil {
			t.Fatalf("%v: Parse(%s): %v", format, data, err)
		}
		if got != style {
			t.Errorf("%v: round trip = %+v, want %+v", format, got, style)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "timer.yml")
	if err := os.WriteFile(yamlPath, []byte("shadow_opacity: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tomlPath := filepath.Join(dir, "timer.toml")
	if err := os.WriteFile(tomlPath, []byte("border_width_ratio = 0.1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(yamlPath)
	if err != nil {
		t.Fatalf("Load yaml: %v", err)
	}
	if got.ShadowOpacity != 0 {
		t.Errorf("shadow opacity = %v, want 0", got.ShadowOpacity)
	}

	got, err = Load(tomlPath)
	if err != nil {
		t.Fatalf("Load toml: %v", err)
	}
	if got.BorderWidthRatio != 0.1 {
		t.Errorf("border width ratio = %v, want 0.1", got.BorderWidthRatio)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	for _, path := range []string{
		filepath.Join(dir, "missing.yaml"),
		filepath.Join(dir, "style.json"),
	} {
		_, err := Load(path)
		var te *timererrors.TimerError
		if !stderrors.As(err, &te) {
			t.Fatalf("Load(%s) error = %v, want TimerError", path, err)
		}
		if te.Source != path {
			t.Errorf("source = %q, want %q", te.Source, path)
		}
	}
}

func TestFormatForPath(t *testing.T) {
	tests := map[string]Format{
		"a.yaml": FormatYAML,
		"a.YML":  FormatYAML,
		"a.toml": FormatTOML,
	}
	for path, want := range tests {
		got, err := FormatForPath(path)
		if err != nil || got != want {
			t.Errorf("FormatForPath(%q) = %v, %v; want %v", path, got, err, want)
		}
	}
	if _, err := FormatForPath("a.ini"); err == nil {
		t.Error("expected error for .ini")
	}
}
