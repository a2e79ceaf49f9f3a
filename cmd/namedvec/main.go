package main

import (
	"bytes"
	"flag"
	"io"
	"os"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mibar/namedvec/internal/logging"
	"github.com/mibar/namedvec/internal/script"
)

func main() {
	file := flag.String("file", "", "path to the YAML script (default: read from stdin)")
	output := flag.String("output", "", "path to output JSON file (default: write to stdout)")
	pretty := flag.Bool("pretty", false, "pretty-print the JSON output")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	logFormat := flag.String("log-format", "console", `"console" or "json"`)
	flag.Parse()

	level, err := zapcore.ParseLevel(*logLevel)
	if err != nil {
		fatalf("invalid log level: %v", err)
	}
	format, err := logging.ParseFormat(*logFormat)
	if err != nil {
		fatalf("%v", err)
	}
	logger := logging.New(zapcore.Lock(os.Stderr), format, level)
	defer logger.Sync()

	if err := run(logger, *file, *output, *pretty); err != nil {
		logger.Error("namedvec failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(logger *zap.Logger, file, output string, pretty bool) error {
	var r io.Reader = os.Stdin
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	s, err := script.Load(r)
	if err != nil {
		return err
	}

	res, runErr := script.NewRunner(logger).Run(s)

	out, err := json.Marshal(res)
	if err != nil {
		return err
	}
	if pretty {
		var buf bytes.Buffer
		if err := json.Indent(&buf, out, "", "  "); err != nil {
			return err
		}
		out = buf.Bytes()
	}
	out = append(out, '\n')

	if output != "" {
		if err := os.WriteFile(output, out, 0o644); err != nil {
			return err
		}
	} else if _, err := os.Stdout.Write(out); err != nil {
		return err
	}

	logger.Info("script finished",
		zap.Int("ops", len(s.Ops)),
		zap.Int("items", res.Items.Len()),
	)
	return runErr
}

// fatalf reports flag errors, before the configured logger exists.
func fatalf(format string, args ...any) {
	logger := logging.New(zapcore.Lock(os.Stderr), logging.FormatConsole, zapcore.ErrorLevel)
	logger.Sugar().Errorf(format, args...)
	logger.Sync()
	os.Exit(1)
}
