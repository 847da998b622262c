package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	flag "github.com/spf13/pflag"

	"github.com/obsfmt/obsfmt/canonmd"
	"github.com/obsfmt/obsfmt/internal/obsutil"
)

// configName is discovered upward from the working directory, so a vault
// root can pin formatting for everything under it.
const configName = ".obsfmt.toml"

// config is the on-disk formatter configuration.
type config struct {
	// Wrap is "keep", "no", or a positive column width.
	Wrap any `toml:"wrap"`
}

func loadConfig(path string) (*config, error) {
	if path == "" {
		found, err := obsutil.FindUpward(configName)
		if err != nil || found == "" {
			return &config{}, err
		}
		path = found
	}
	var cfg config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

// wrapOption translates the wrap setting into a renderer option; nil
// keeps line breaks as written.
func (c *config) wrapOption() (canonmd.Option, error) {
	switch v := c.Wrap.(type) {
	case nil:
		return nil, nil
	case string:
		switch v {
		case "keep":
			return nil, nil
		case "no":
			return canonmd.WithNoWrap(), nil
		}
	case int64:
		if v > 0 {
			return canonmd.WithWrap(int(v)), nil
		}
	}
	return nil, fmt.Errorf(`config: wrap must be "keep", "no", or a positive width (got %v)`, c.Wrap)
}

// renderOptions resolves the renderer configuration: the config file
// supplies the default and an explicit --wrap flag overrides it.
func renderOptions() ([]canonmd.Option, error) {
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return nil, err
	}
	opt, err := cfg.wrapOption()
	if err != nil {
		return nil, err
	}
	if flag.CommandLine.Changed("wrap") {
		switch {
		case *wrapWidth == 0:
			opt = nil
		case *wrapWidth < 0:
			opt = canonmd.WithNoWrap()
		default:
			opt = canonmd.WithWrap(*wrapWidth)
		}
	}
	if opt == nil {
		return nil, nil
	}
	return []canonmd.Option{opt}, nil
}
