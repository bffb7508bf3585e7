package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formbind/pkg/page"
)

// fileConfig is the TOML document accepted by -config.
type fileConfig struct {
	Title       string      `toml:"title"`
	Description string      `toml:"description"`
	Legend      string      `toml:"legend"`
	Lang        string      `toml:"lang"`
	Stylesheet  string      `toml:"stylesheet"`
	Theme       themeConfig `toml:"theme"`
}

type themeConfig struct {
	Name    string            `toml:"name"`
	Variant string            `toml:"variant"`
	Version string            `toml:"version"`
	Tokens  map[string]string `toml:"tokens"`
}

func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config %s: unknown keys %v", path, undecoded)
	}
	return cfg, nil
}

// pageConfig converts the file config into page options; non-empty flag
// values win over the file.
func (c fileConfig) pageConfig(title string) page.Config {
	out := page.Config{
		Title:       c.Title,
		Description: c.Description,
		Lang:        c.Lang,
		Stylesheet:  c.Stylesheet,
	}
	if strings.TrimSpace(title) != "" {
		out.Title = title
	}
	if c.Theme.Name != "" || len(c.Theme.Tokens) > 0 {
		out.Theme = &theme.Selection{
			Theme:   c.Theme.Name,
			Variant: c.Theme.Variant,
			Manifest: &theme.Manifest{
				Name:    c.Theme.Name,
				Version: c.Theme.Version,
				Tokens:  c.Theme.Tokens,
			},
		}
	}
	return out
}
