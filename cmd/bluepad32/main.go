package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alia5/bluepad32go/internal/config"
	"github.com/alia5/bluepad32go/internal/configpaths"
	"github.com/alia5/bluepad32go/internal/log"
	"github.com/alia5/bluepad32go/platform"

	_ "github.com/alia5/bluepad32go/parser/android"
	_ "github.com/alia5/bluepad32go/parser/ds3"
	_ "github.com/alia5/bluepad32go/parser/ds4"
	_ "github.com/alia5/bluepad32go/parser/ds5"
	_ "github.com/alia5/bluepad32go/parser/icade"
	_ "github.com/alia5/bluepad32go/parser/switchpro"
	_ "github.com/alia5/bluepad32go/parser/wii"
	_ "github.com/alia5/bluepad32go/parser/xboxone"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
	"golang.org/x/term"
)

func main() {
	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	var cli config.CLI
	ctx := kong.Parse(&cli,
		kong.Name("bluepad32go"),
		kong.Description("Bluetooth gamepad host firmware, reimplemented as a Go library/CLI"),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, closeFiles, err := log.SetupLogger(cli.Log.Level, cli.Log.File)
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
	} else if cli.Log.Level == "trace" {
		rawLogger = log.NewRaw(os.Stdout)
	} else {
		rawLogger = log.NewRaw(nil)
	}

	ctx.Bind(logger)
	ctx.BindTo(rawLogger, (*log.RawLogger)(nil))
	ctx.BindTo(terminalPairingPrompt{}, (*platform.PairingConfirmHandler)(nil))

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
	if v := os.Getenv("BLUEPAD32_CONFIG"); v != "" {
		return v
	}
	return ""
}

// terminalPairingPrompt implements platform.PairingConfirmHandler by
// asking the operator on stdin/stdout, using golang.org/x/term so the
// prompt gets normal line editing even while the terminal would
// otherwise be in whatever mode a raw-HCI adapter left it in. Accepting
// is the default if stdin isn't a terminal at all (headless/service
// use), matching ConfirmPairing's own always-accept fallback.
type terminalPairingPrompt struct{}

func (terminalPairingPrompt) ConfirmPairing(dev platform.DeviceInfo) bool {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return true
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return true
	}
	defer func() { _ = term.Restore(fd, oldState) }()

	prompt := fmt.Sprintf("Pair with %s (%s)? [y/N] ", addrString(dev.RemoteAddr), dev.Name)
	t := term.NewTerminal(stdioReadWriter{}, prompt)
	line, err := t.ReadLine()
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "y")
}

type stdioReadWriter struct{}

func (stdioReadWriter) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdioReadWriter) Write(p []byte) (int, error) { return os.Stdout.Write(p) }

func addrString(addr [6]byte) string {
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X",
		addr[0], addr[1], addr[2], addr[3], addr[4], addr[5])
}
