// Package config defines the top-level CLI surface bound by kong.
package config

import "github.com/quacken/quacken/internal/cmd"

// Log groups the logging flags shared by all commands.
type Log struct {
	Level   string `help:"Log level (trace, debug, info, warn, error)" default:"info" env:"QUACKEN_LOG_LEVEL"`
	File    string `help:"Write logs to this file instead of the console" env:"QUACKEN_LOG_FILE"`
	RawFile string `help:"Write hex dumps of every encoded line to this file"`
}

// CLI is the root command structure.
type CLI struct {
	Config string `help:"Path to a config file (JSON/YAML/TOML)" env:"QUACKEN_CONFIG"`
	Log    Log    `embed:"" prefix:"log."`

	Encode    cmd.Encode        `cmd:"" default:"withargs" help:"Encode a DuckyScript source into a HID payload"`
	Inject    cmd.Inject        `cmd:"" help:"Encode a script and play it into a HID gadget device"`
	Type      cmd.Type          `cmd:"" help:"Type literal text into a HID gadget device"`
	ConfigCmd cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration file helpers"`
}
