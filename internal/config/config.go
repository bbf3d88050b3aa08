// Package config loads the dxdemo settings from YAML or TOML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/tinyrange/dxbridge/internal/dx"
	"github.com/tinyrange/dxbridge/internal/dx/native"
	"github.com/tinyrange/dxbridge/internal/tdx"
)

// DefaultTitle is "テスト"; the native backend sends it as CP932.
const DefaultTitle = "テスト"

var ErrUnknownFormat = errors.New("unknown config format")

type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

func (f Format) String() string {
	if f == FormatTOML {
		return "toml"
	}
	return "yaml"
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

type Config struct {
	Window Window `yaml:"window" toml:"window"`

	// AppLog enables DxLib's Log.txt.
	AppLog bool `yaml:"appLog" toml:"appLog"`

	// Encoding of strings handed to the native library: cp932 or utf-8.
	Encoding string `yaml:"encoding" toml:"encoding"`

	// Direct3D is "", "9", "9ex" or "11".
	Direct3D string `yaml:"direct3d,omitempty" toml:"direct3d,omitempty"`

	// DLL overrides the native library path.
	DLL string `yaml:"dll,omitempty" toml:"dll,omitempty"`

	AssetDir string `yaml:"assetDir" toml:"assetDir"`
	Assets   Assets `yaml:"assets" toml:"assets"`

	// Frames bounds the animated scenes. Zero runs until the window closes.
	Frames int `yaml:"frames" toml:"frames"`
}

type Window struct {
	Fullscreen    bool   `yaml:"fullscreen" toml:"fullscreen"`
	Width         int32  `yaml:"width" toml:"width"`
	Height        int32  `yaml:"height" toml:"height"`
	ColorBitDepth int32  `yaml:"colorBitDepth" toml:"colorBitDepth"`
	RefreshRate   int32  `yaml:"refreshRate" toml:"refreshRate"`
	Title         string `yaml:"title" toml:"title"`
}

// Assets names the demo resources relative to AssetDir.
type Assets struct {
	Music          string `yaml:"music" toml:"music"`
	AltMusic       string `yaml:"altMusic" toml:"altMusic"`
	LongSound      string `yaml:"longSound" toml:"longSound"`
	ShortSound     string `yaml:"shortSound" toml:"shortSound"`
	Image          string `yaml:"image" toml:"image"`
	Texture        string `yaml:"texture" toml:"texture"`
	VertexShader   string `yaml:"vertexShader" toml:"vertexShader"`
	PixelShader    string `yaml:"pixelShader" toml:"pixelShader"`
	GeometryShader string `yaml:"geometryShader,omitempty" toml:"geometryShader,omitempty"`
	Font           string `yaml:"font" toml:"font"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:         640,
			Height:        480,
			ColorBitDepth: 32,
			RefreshRate:   60,
			Title:         DefaultTitle,
		},
		Encoding: "cp932",
		AssetDir: "resource",
		Assets: Assets{
			Music:          "Fantasie_Impromptu_op66.mid",
			AltMusic:       "onestop.mid",
			LongSound:      "ringout.wav",
			ShortSound:     "_decision3_.wav",
			Image:          "_img_320x240_0000.png",
			Texture:        "_texture_128x128_0000.bmp",
			VertexShader:   "shader_VS.vso",
			PixelShader:    "shader_PS.pso",
			GeometryShader: "shader_GS.gso",
			Font:           "_font_32_u8_0000.dft",
		},
	}
}

// Load reads path on top of Default and validates the result.
func Load(path string) (Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data on top of Default. Unknown keys are rejected.
func Parse(data []byte, format Format) (Config, error) {
	cfg := Default()
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("parse yaml: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("parse toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, k := range undecoded {
				keys = append(keys, k.String())
			}
			sort.Strings(keys)
			return Config{}, fmt.Errorf("parse toml: unknown keys %s", strings.Join(keys, ", "))
		}
	default:
		return Config{}, fmt.Errorf("%w: %d", ErrUnknownFormat, int(format))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Encode writes cfg in the given format.
func Encode(w io.Writer, cfg Config, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(cfg); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrUnknownFormat, int(format))
	}
}

// WriteFile writes cfg to path, choosing the format from the extension.
func WriteFile(path string, cfg Config) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, cfg, format); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c Config) Validate() error {
	var errs []error
	w := c.Window
	if w.Width <= 0 || w.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", w.Width, w.Height))
	}
	switch w.ColorBitDepth {
	case 16, 32:
	default:
		errs = append(errs, fmt.Errorf("colorBitDepth %d must be 16 or 32", w.ColorBitDepth))
	}
	if w.RefreshRate < 0 {
		errs = append(errs, fmt.Errorf("refreshRate %d is negative", w.RefreshRate))
	}
	if _, err := native.ParseEncoding(c.Encoding); err != nil {
		errs = append(errs, err)
	}
	if _, err := parseDirect3D(c.Direct3D); err != nil {
		errs = append(errs, err)
	}
	if c.Frames < 0 {
		errs = append(errs, fmt.Errorf("frames %d is negative", c.Frames))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func parseDirect3D(s string) (int32, error) {
	switch strings.ToLower(s) {
	case "":
		return dx.Direct3DNone, nil
	case "9":
		return dx.Direct3D9, nil
	case "9ex":
		return dx.Direct3D9Ex, nil
	case "11":
		return dx.Direct3D11, nil
	default:
		return 0, fmt.Errorf("unknown direct3d version %q", s)
	}
}

// Path joins an asset name onto AssetDir.
func (c Config) Path(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.AssetDir, name)
}

// TdxOptions converts the window settings for tdx.New.
func (c Config) TdxOptions() tdx.Options {
	d3d, _ := parseDirect3D(c.Direct3D)
	return tdx.Options{
		Windowed:      !c.Window.Fullscreen,
		Width:         c.Window.Width,
		Height:        c.Window.Height,
		ColorBitDepth: c.Window.ColorBitDepth,
		RefreshRate:   c.Window.RefreshRate,
		Title:         c.Window.Title,
		AppLog:        c.AppLog,
		Direct3D:      d3d,
	}
}

// NativeOptions converts the string settings for native.Open.
func (c Config) NativeOptions() native.Options {
	enc, _ := native.ParseEncoding(c.Encoding)
	return native.Options{DLLPath: c.DLL, Encoding: enc}
}
