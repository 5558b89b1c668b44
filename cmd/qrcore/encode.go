package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lumenqr/qrcore"
	"github.com/lumenqr/qrcore/internal/config"
	"github.com/lumenqr/qrcore/render"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [text]",
	Short: "Encode text into a QR Code and render it",
	Args:  cobra.ExactArgs(1),
	RunE:  runEncode,
}

var (
	flagConfig    string
	flagEcc       string
	flagQuietZone int
	flagVersion   int
	flagMask      int
	flagStyle     string
	flagOut       string
	flagScale     int
	flagVerbose   bool
)

func init() {
	encodeCmd.Flags().StringVar(&flagConfig, "config", "", "config file (default: ~/.qrcore/config.yaml)")
	encodeCmd.Flags().StringVar(&flagEcc, "ecc", "", "error correction level: L, M, Q, H (overrides config)")
	encodeCmd.Flags().IntVar(&flagQuietZone, "quiet-zone", -1, "quiet zone width, 0-10 (overrides config)")
	encodeCmd.Flags().IntVar(&flagVersion, "version", 0, "force a specific version, 1-40 (default: auto)")
	encodeCmd.Flags().IntVar(&flagMask, "mask", -1, "force a specific mask, 0-7 (default: auto)")
	encodeCmd.Flags().StringVar(&flagStyle, "style", "", "output style: terminal, png (overrides config)")
	encodeCmd.Flags().StringVar(&flagOut, "out", "", "output file for png style (default: stdout, binary)")
	encodeCmd.Flags().IntVar(&flagScale, "scale", 8, "pixels per module for png style")
	encodeCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "print version/ecc/mask summary to stderr")
}

func runEncode(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := setupLogging(cfg.LogLevel); err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}

	ecc := cfg.EccLevel
	if flagEcc != "" {
		ecc = flagEcc
	}
	level, err := parseEccLevel(ecc)
	if err != nil {
		return err
	}

	quietZone := cfg.QuietZone
	if flagQuietZone >= 0 {
		quietZone = flagQuietZone
	}

	style := cfg.Style
	if flagStyle != "" {
		style = flagStyle
	}

	opts := qrcore.DefaultOptions()
	opts.EccLevel = level
	opts.QuietZone = quietZone
	opts.QuietZoneSet = true
	if flagVersion > 0 {
		opts.Version = flagVersion
		opts.VersionSet = true
	}
	if flagMask >= 0 {
		opts.Mask = flagMask
		opts.MaskSet = true
	}

	slog.Info("encoding", "len", len(args[0]), "ecc", level, "style", style)

	m, err := qrcore.Generate(args[0], opts)
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	if flagVerbose {
		fmt.Fprintln(os.Stderr, render.Summary(m))
	}

	switch style {
	case "", "terminal":
		fmt.Print(render.Terminal(m))
		return nil
	case "png":
		out := os.Stdout
		if flagOut != "" {
			f, err := os.Create(flagOut)
			if err != nil {
				return fmt.Errorf("creating output file: %w", err)
			}
			defer f.Close()
			return render.PNG(f, m, flagScale)
		}
		return render.PNG(out, m, flagScale)
	default:
		return fmt.Errorf("unknown style %q: want terminal or png", style)
	}
}

func parseEccLevel(s string) (qrcore.EccLevel, error) {
	switch strings.ToUpper(s) {
	case "L":
		return qrcore.Low, nil
	case "M", "":
		return qrcore.Medium, nil
	case "Q":
		return qrcore.Quartile, nil
	case "H":
		return qrcore.High, nil
	default:
		return 0, fmt.Errorf("unknown ecc level %q: want L, M, Q or H", s)
	}
}

func setupLogging(level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
	return nil
}
