package options

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Options holds everything the application reads at startup. Pointer
// fields are bound to command line flags.
type Options struct {
	Width          *int
	Height         *int
	Title          *string
	VertexShader   *string
	FragmentShader *string
	ClearColor     *string // "r,g,b,a"
	Mesh           *string // "quad" or "paddles"
	Watch          *bool   // rebuild the program when a shader file changes
	WebGL          *bool   // shader files are WebGL2 GLSL and need translating
	ConfigFile     *string
	Help           *bool
}

// FileConfig is the TOML form of Options. Absent keys leave the flag
// value in place.
type FileConfig struct {
	Width          *int      `toml:"width"`
	Height         *int      `toml:"height"`
	Title          *string   `toml:"title"`
	VertexShader   *string   `toml:"vertex_shader"`
	FragmentShader *string   `toml:"fragment_shader"`
	ClearColor     []float32 `toml:"clear_color"`
	Mesh           *string   `toml:"mesh"`
	Watch          *bool     `toml:"watch"`
	WebGL          *bool     `toml:"webgl"`
}

// Parse reads flags from args and, when -config is given, merges the
// named TOML file underneath them: a flag set on the command line always
// wins over the file.
func Parse(name string, args []string, output io.Writer) (*Options, *flag.FlagSet, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	o := &Options{
		Width:          fs.Int("width", 300, "Width of the window"),
		Height:         fs.Int("height", 300, "Height of the window"),
		Title:          fs.String("title", "Pong!", "Window title"),
		VertexShader:   fs.String("vert", "shaders/pong.vert", "Path to the vertex shader"),
		FragmentShader: fs.String("frag", "shaders/pong.frag", "Path to the fragment shader"),
		ClearColor:     fs.String("clear", "0.2,0.3,0.3,1.0", "Background color as r,g,b,a"),
		Mesh:           fs.String("mesh", "quad", "Mesh to draw (quad, paddles)"),
		Watch:          fs.Bool("watch", false, "Rebuild shaders when their files change"),
		WebGL:          fs.Bool("webgl", false, "Translate WebGL2 shader sources to desktop GLSL"),
		ConfigFile:     fs.String("config", "", "Path to a TOML config file"),
		Help:           fs.Bool("help", false, "Show help message"),
	}
	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}

	if *o.ConfigFile != "" {
		fc, err := LoadFile(*o.ConfigFile)
		if err != nil {
			return nil, fs, err
		}
		set := make(map[string]bool)
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
		o.merge(fc, set)
	}

	if err := o.Validate(); err != nil {
		return nil, fs, err
	}
	return o, fs, nil
}

// LoadFile decodes a TOML config file.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	fc := &FileConfig{}
	if err := toml.Unmarshal(data, fc); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return fc, nil
}

func (o *Options) merge(fc *FileConfig, set map[string]bool) {
	mergeValue(o.Width, fc.Width, set["width"])
	mergeValue(o.Height, fc.Height, set["height"])
	mergeValue(o.Title, fc.Title, set["title"])
	mergeValue(o.VertexShader, fc.VertexShader, set["vert"])
	mergeValue(o.FragmentShader, fc.FragmentShader, set["frag"])
	mergeValue(o.Mesh, fc.Mesh, set["mesh"])
	mergeValue(o.Watch, fc.Watch, set["watch"])
	mergeValue(o.WebGL, fc.WebGL, set["webgl"])
	if len(fc.ClearColor) > 0 && !set["clear"] {
		parts := make([]string, len(fc.ClearColor))
		for i, v := range fc.ClearColor {
			parts[i] = strconv.FormatFloat(float64(v), 'f', -1, 32)
		}
		*o.ClearColor = strings.Join(parts, ",")
	}
}

func mergeValue[T any](dst, src *T, flagSet bool) {
	if src != nil && !flagSet {
		*dst = *src
	}
}

// Validate checks values that flag parsing cannot.
func (o *Options) Validate() error {
	if *o.Width <= 0 || *o.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", *o.Width, *o.Height)
	}
	switch *o.Mesh {
	case "quad", "paddles":
	default:
		return fmt.Errorf("unknown mesh %q", *o.Mesh)
	}
	if _, err := o.RGBA(); err != nil {
		return err
	}
	return nil
}

// RGBA parses ClearColor. Three components imply an alpha of 1.
func (o *Options) RGBA() ([4]float32, error) {
	var c [4]float32
	fields := strings.Split(*o.ClearColor, ",")
	if len(fields) != 3 && len(fields) != 4 {
		return c, fmt.Errorf("clear color %q: want r,g,b or r,g,b,a", *o.ClearColor)
	}
	c[3] = 1
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
		if err != nil {
			return c, fmt.Errorf("clear color %q: %w", *o.ClearColor, err)
		}
		if v < 0 || v > 1 {
			return c, fmt.Errorf("clear color %q: component %g outside [0,1]", *o.ClearColor, v)
		}
		c[i] = float32(v)
	}
	return c, nil
}

// IsHelp reports whether err is the result of -h.
func IsHelp(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
