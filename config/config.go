package config

import (
	"io/ioutil"
	"path/filepath"
)

import (
	"github.com/timtadh/data-structures/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the parameters of one mining run. MaxVertices only bounds
// patterns when it is larger than MinVertices, any smaller value disables
// the upper bound.
type Config struct {
	Output      string `yaml:"output"`
	Support     int    `yaml:"support"`
	MinVertices int    `yaml:"min-vertices"`
	MaxVertices int    `yaml:"max-vertices"`
	Directed    bool   `yaml:"directed"`
	Format      string `yaml:"format"`
	Metrics     string `yaml:"metrics"`
}

func Default() *Config {
	return &Config{
		MinVertices: 1,
		MaxVertices: 10,
		Format:      "txt",
	}
}

// Load reads a yaml parameter file into c. Keys missing from the file keep
// their current values.
func (c *Config) Load(path string) error {
	bytes, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	err = yaml.Unmarshal(bytes, c)
	if err != nil {
		return errors.Errorf("could not parse config %v: %v", path, err)
	}
	return nil
}

func (c *Config) Copy() *Config {
	return &Config{
		Output:      c.Output,
		Support:     c.Support,
		MinVertices: c.MinVertices,
		MaxVertices: c.MaxVertices,
		Directed:    c.Directed,
		Format:      c.Format,
		Metrics:     c.Metrics,
	}
}

func (c *Config) Validate() error {
	if c.Support <= 0 {
		return errors.Errorf("support must be > 0, got %d", c.Support)
	}
	if c.MinVertices < 0 {
		return errors.Errorf("min-vertices must be >= 0, got %d", c.MinVertices)
	}
	return nil
}

func (c *Config) OutputFile(name string) string {
	return filepath.Join(c.Output, name)
}

func (c *Config) HasUpperBound() bool {
	return c.MaxVertices > c.MinVertices
}

// Acceptable is true when a pattern with the given number of vertices falls
// inside the size window and should be reported.
func (c *Config) Acceptable(vertices int) bool {
	if c.MinVertices > 0 && vertices < c.MinVertices {
		return false
	}
	return !c.TooLarge(vertices)
}

// TooLarge is true when the pattern exceeds the upper bound. It is never
// true when the upper bound is disabled.
func (c *Config) TooLarge(vertices int) bool {
	return c.HasUpperBound() && vertices > c.MaxVertices
}
