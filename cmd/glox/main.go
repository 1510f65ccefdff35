package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/labstack/gommon/color"
	"github.com/mliezun/glox/internal"
	"github.com/sirupsen/logrus"
)

type stdPrinter struct {
	color bool
}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	if s.color && w == os.Stderr {
		return fmt.Fprintln(w, color.Red(fmt.Sprint(a...)))
	}
	return fmt.Fprintln(w, a...)
}

func main() {
	configPath := flag.String("config", defaultConfigPath(), "path to the YAML config file")
	logLevel := flag.String("log-level", "", "log level (debug, info, warn, error)")
	noColor := flag.Bool("no-color", false, "disable coloured diagnostics")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: glox [flags] [script]")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logrus.Fatal(err)
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *noColor {
		cfg.Color = false
	}

	logger, err := newLogger(cfg)
	if err != nil {
		logrus.Fatal(err)
	}
	if !cfg.Color {
		color.Disable()
	}

	session := internal.NewInterpreter(stdPrinter{color: cfg.Color}, internal.WithLogger(logger))

	switch flag.NArg() {
	case 0:
		if err := runPrompt(session, cfg); err != nil {
			logger.Fatal(err)
		}
	case 1:
		os.Exit(runFile(session, logger, flag.Arg(0)))
	default:
		flag.Usage()
		os.Exit(64)
	}
}

func newLogger(cfg *config) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(level)
	return logger, nil
}

func runFile(session *internal.Interpreter, logger *logrus.Logger, path string) int {
	absPath, err := filepath.Abs(path)
	if err != nil {
		logger.Error(err)
		return 66
	}

	b, err := os.ReadFile(absPath)
	if err != nil {
		logger.Error(err)
		return 66
	}

	logger.WithField("path", absPath).Debug("running file")
	return session.Run(string(b)).ExitCode()
}
