package main

import (
	"os"
	"strings"

	"github.com/quacken/quacken/internal/config"
	"github.com/quacken/quacken/internal/configpaths"
	"github.com/quacken/quacken/internal/log"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
)

func main() {

	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	var cli config.CLI
	ctx := kong.Parse(&cli,
		kong.Name("quacken"),
		kong.Description("DuckyScript to USB HID keystroke payload encoder"),
		kong.UsageOnError(),
		// Argument and usage errors exit with 2, matching the original CLI contract.
		kong.Exit(func(code int) {
			if code != 0 {
				os.Exit(2)
			}
			os.Exit(0)
		}),
		// Load configuration from JSON/YAML/TOML in priority order; flags/env override config values.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	// When the payload is streamed to stdout, every diagnostic has to stay on
	// stderr, so the stdout log handler is disabled up front.
	logger, closeFiles, err := log.SetupLogger(cli.Log.Level, cli.Log.File, payloadOnStdout(os.Args[1:]))
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	var rawLogger log.RawLogger
	if cli.Log.RawFile != "" {
		f, err := os.OpenFile(cli.Log.RawFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			logger.Error("failed to open raw log file", "file", cli.Log.RawFile, "error", err)
			rawLogger = log.NewRaw(nil)
		} else {
			rawLogger = log.NewRaw(f)
			closeFiles = append(closeFiles, f)
		}
	} else if cli.Log.Level == "trace" && !payloadOnStdout(os.Args[1:]) {
		rawLogger = log.NewRaw(os.Stdout)
	} else {
		rawLogger = log.NewRaw(nil)
	}

	ctx.Bind(logger)
	ctx.BindTo(rawLogger, (*log.RawLogger)(nil))

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	if v := os.Getenv("QUACKEN_CONFIG"); v != "" {
		return v
	}
	return ""
}

// payloadOnStdout pre-scans the arguments for the passthru flags, which turn
// stdout into the payload stream before kong has parsed anything.
func payloadOnStdout(args []string) bool {
	for _, a := range args {
		switch a {
		case "-p", "--passthru", "-r", "--rawpassthru":
			return true
		}
		if strings.HasPrefix(a, "-") && !strings.HasPrefix(a, "--") && len(a) > 1 {
			// short flags may be grouped (-pl de)
			if strings.ContainsAny(a[1:], "pr") {
				return true
			}
		}
	}
	return false
}
