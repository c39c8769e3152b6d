package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fieldline/scoutbook/config"
	"github.com/fieldline/scoutbook/export"
	"github.com/fieldline/scoutbook/extract"
	"github.com/fieldline/scoutbook/gamebook"
	"github.com/fieldline/scoutbook/server"
	"github.com/fieldline/scoutbook/store"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "scoutbook",
		Short: "Gamebook extractor",
		Long: `Scoutbook converts fixed-layout gamebook PDFs into structured JSON:
header metadata, the quarter scoreboard, scoring plays, team and player
statistics, drive summaries and the tokenized play-by-play log.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(mcpCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig is shared flag handling: an optional --config YAML path plus
// environment overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

func parseCmd() *cobra.Command {
	var (
		inPath        string
		outPath       string
		skipMalformed bool
		persist       bool
	)

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Extract one gamebook PDF to a JSON document",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if skipMalformed {
				cfg.SkipMalformedPlays = true
			}

			doc, counts, err := parseGamebook(inPath, cfg)
			if err != nil {
				return err
			}

			if outPath == "" || outPath == "-" {
				if err := export.WriteJSON(os.Stdout, doc); err != nil {
					return err
				}
			} else if err := export.SaveJSON(outPath, doc); err != nil {
				return err
			}
			slog.Info("gamebook extracted", "in", inPath, "out", outPath, "drives", len(doc.Drives.PlayByPlay), "operations", counts)

			if persist {
				if cfg.PostgresDSN == "" {
					return fmt.Errorf("--store requires a postgres DSN (config file or %s)", config.EnvPostgresDSN)
				}
				return storeDocument(cmd.Context(), cfg.PostgresDSN, doc)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "gamebook PDF to extract (required)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "-", "output JSON path, - for stdout")
	cmd.Flags().BoolVar(&skipMalformed, "skip-malformed", false, "drop play events that fail validation instead of aborting")
	cmd.Flags().BoolVar(&persist, "store", false, "also persist the document to Postgres")
	cmd.Flags().String("config", "", "YAML config file")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

func exportCmd() *cobra.Command {
	var (
		inPath  string
		outPath string
		format  string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Extract a gamebook PDF and render it as json, xlsx or md",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			doc, _, err := parseGamebook(inPath, cfg)
			if err != nil {
				return err
			}

			switch strings.ToLower(format) {
			case "json":
				return export.SaveJSON(outPath, doc)
			case "xlsx":
				return export.SaveXLSX(outPath, doc)
			case "md", "markdown":
				return os.WriteFile(outPath, []byte(export.RenderMarkdown(doc)), 0o644)
			default:
				return fmt.Errorf("unknown format %q (want json, xlsx or md)", format)
			}
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "gamebook PDF to extract (required)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output path (required)")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json, xlsx or md")
	cmd.Flags().String("config", "", "YAML config file")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP extraction API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTPAddr = addr
			}

			srv := &http.Server{
				Addr:         cfg.HTTPAddr,
				Handler:      server.NewRouter(cfg),
				ReadTimeout:  30 * time.Second,
				WriteTimeout: 60 * time.Second,
			}
			slog.Info("extraction API listening", "addr", cfg.HTTPAddr)
			return srv.ListenAndServe()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().String("config", "", "YAML config file")
	return cmd
}

func mcpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Run the extraction engine as an MCP server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return server.ServeMCP(cfg, version)
		},
	}
	cmd.Flags().String("config", "", "YAML config file")
	return cmd
}

// parseGamebook runs the full pipeline for one file: size check, page-text
// extraction, document assembly. The returned counts are the observer tally.
func parseGamebook(path string, cfg *config.Config) (*gamebook.Document, map[string]int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("gamebook not found: %s", path)
	}
	if info.Size() > cfg.MaxUploadBytes {
		return nil, nil, fmt.Errorf("gamebook too large: %d bytes (max %d)", info.Size(), cfg.MaxUploadBytes)
	}

	pages, err := extract.PagesFromFile(path)
	if err != nil {
		return nil, nil, err
	}

	obs := &gamebook.CountingObserver{}
	doc, err := gamebook.Assemble(pages, gamebook.Options{
		SkipMalformed: cfg.SkipMalformedPlays,
		Observer:      obs,
	})
	if err != nil {
		return nil, nil, err
	}
	return doc, obs.Counts(), nil
}

func storeDocument(ctx context.Context, dsn string, doc *gamebook.Document) error {
	st, err := store.Open(dsn)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	if err := st.EnsureSchema(ctx); err != nil {
		return err
	}
	id, err := st.SaveDocument(ctx, doc)
	if err != nil {
		return err
	}
	slog.Info("document stored", "id", id)
	return nil
}
