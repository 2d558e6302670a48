package main

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"FreehandBoard/internal/config"
	"FreehandBoard/internal/crash"
	applog "FreehandBoard/internal/log"
	"FreehandBoard/internal/ui"
	"FreehandBoard/internal/version"
)

func usage() {
	fmt.Println("Freehand Board", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  freehandboard              Open the drawing window")
	fmt.Println("  freehandboard version      Show version")
	fmt.Println("  freehandboard config       Print the effective configuration")
	fmt.Println("  freehandboard config init  Write the default configuration file")
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	defer crash.Recover()

	cfg, cfgErr := config.Load("")
	applog.Init(applog.Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.Source,
		File:      cfg.Logging.File,
	})
	l := applog.WithComponent("main")
	if cfgErr != nil {
		l.Warn("config problem, using defaults where needed", slog.Any("err", cfgErr))
	}

	if len(args) > 0 {
		switch args[0] {
		case "version", "--version", "-v":
			fmt.Println(version.String())
			return 0
		case "config":
			if len(args) > 1 && args[1] == "init" {
				return initConfig(l)
			}
			out, err := yaml.Marshal(cfg)
			if err != nil {
				l.Error("marshal config", slog.Any("err", err))
				return 1
			}
			if _, err := os.Stdout.Write(out); err != nil {
				l.Error("write config", slog.Any("err", err))
				return 1
			}
			return 0
		case "help", "-h", "--help":
			usage()
			return 0
		default:
			usage()
			return 2
		}
	}

	l.Info("starting", slog.String("ver", version.String()))
	if err := ui.RunApp(cfg); err != nil {
		l.Error("drawing board failed", slog.Any("err", err))
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

func initConfig(l *slog.Logger) int {
	path, err := config.DefaultPath()
	if err != nil {
		l.Error("resolve config path", slog.Any("err", err))
		return 1
	}
	if _, err := os.Stat(path); err == nil {
		fmt.Println("Config already exists:", path)
		return 1
	}
	if err := config.Save(path, config.Defaults()); err != nil {
		l.Error("write config", slog.String("path", path), slog.Any("err", err))
		return 1
	}
	fmt.Println("Wrote", path)
	return 0
}
