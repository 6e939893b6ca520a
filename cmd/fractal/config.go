package main

import (
	"fmt"

	"github.com/spf13/viper"
)

// config mirrors the viper tree. Render settings live under the
// "render" key so a config file reads naturally:
//
//	render:
//	  width: 1920
//	  height: 1080
//	  variant: julia
//	  variant_args: "-0.8,0.156"
type config struct {
	Render renderConfig `mapstructure:"render"`
}

type renderConfig struct {
	Width       int     `mapstructure:"width"`
	Height      int     `mapstructure:"height"`
	Iterations  int     `mapstructure:"iterations"`
	Variant     string  `mapstructure:"variant"`
	VariantArgs string  `mapstructure:"variant_args"`
	XMin        float64 `mapstructure:"x_min"`
	XMax        float64 `mapstructure:"x_max"`
	YMin        float64 `mapstructure:"y_min"`
	YMax        float64 `mapstructure:"y_max"`
	Horizon     float64 `mapstructure:"horizon"`
	Workers     int     `mapstructure:"workers"`
	Tasks       int     `mapstructure:"tasks"`
	Processes   bool    `mapstructure:"processes"`
	Output      string  `mapstructure:"output"`
	Palette     string  `mapstructure:"palette"`
	Supersample int     `mapstructure:"supersample"`
}

func setConfigDefaults() {
	viper.SetDefault("render.width", 1024)
	viper.SetDefault("render.height", 768)
	viper.SetDefault("render.iterations", 256)
	viper.SetDefault("render.variant", "mandelbrot")
	viper.SetDefault("render.output", "fractal.png")
	viper.SetDefault("render.palette", "fire")
	viper.SetDefault("render.supersample", 1)
}

func loadConfig() (config, error) {
	var cfg config
	if err := viper.Unmarshal(&cfg); err != nil {
		return config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
