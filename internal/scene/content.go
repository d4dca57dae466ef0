package scene

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"portfolio-engine/internal/compositor"
)

// Content is the page copy and decorative layout, loaded from a YAML file.
// Defaults and validation are centralized here so the rest of the code can
// assume a well-formed document.
type Content struct {
	Hero     Hero            `yaml:"hero"`
	Bio      string          `yaml:"bio"`
	Timeline []TimelineEntry `yaml:"timeline"`
	Signals  []SignalEntry   `yaml:"signals"`
	Contact  []ContactLink   `yaml:"contact"`
	Decor    []DecorEntry    `yaml:"decor"`
}

type Hero struct {
	Title    string   `yaml:"title"`
	Tagline  string   `yaml:"tagline"`
	Keywords []string `yaml:"keywords"`
}

type TimelineEntry struct {
	Year   string `yaml:"year"`
	Title  string `yaml:"title"`
	Detail string `yaml:"detail"`
}

// SignalEntry is one proof-of-work card.
type SignalEntry struct {
	Title  string `yaml:"title"`
	Detail string `yaml:"detail"`
	Link   string `yaml:"link,omitempty"`
}

type ContactLink struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// DecorEntry places one decorative parallax element in scene coordinates.
type DecorEntry struct {
	Texture          string  `yaml:"texture"`
	X                float64 `yaml:"x"`
	Y                float64 `yaml:"y"`
	W                float64 `yaml:"w"`
	H                float64 `yaml:"h"`
	Speed            float64 `yaml:"speed"`
	InteractionSpeed float64 `yaml:"interaction_speed"`
	Size             string  `yaml:"size"`
}

// LoadContent reads and validates the content file.
func LoadContent(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}

	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	c.applyDefaults()
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid content: %w", err)
	}
	return &c, nil
}

func (c *Content) applyDefaults() {
	if c.Hero.Title == "" {
		c.Hero.Title = "Untitled"
	}
	for i := range c.Decor {
		d := &c.Decor[i]
		if d.Size == "" {
			d.Size = "medium"
		}
		if d.Speed == 0 {
			d.Speed = 0.1
		}
		if d.InteractionSpeed == 0 {
			d.InteractionSpeed = 0.5
		}
	}
}

func (c *Content) validate() error {
	for i := range c.Decor {
		if _, err := ParseSize(c.Decor[i].Size); err != nil {
			return fmt.Errorf("decor[%d]: %w", i, err)
		}
	}
	for i, t := range c.Timeline {
		if t.Title == "" {
			return fmt.Errorf("timeline[%d]: missing title", i)
		}
	}
	return nil
}

// ParseSize maps a content size name to a compositor size class.
func ParseSize(s string) (compositor.Size, error) {
	switch s {
	case "small":
		return compositor.SizeSmall, nil
	case "medium":
		return compositor.SizeMedium, nil
	case "large":
		return compositor.SizeLarge, nil
	}
	return compositor.SizeMedium, errors.New("unknown size class: " + s)
}
