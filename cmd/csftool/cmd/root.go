/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Starkku/CSFTool/pkg/config"
	"github.com/Starkku/CSFTool/pkg/csf"
	"github.com/Starkku/CSFTool/pkg/textfile"
)

type options struct {
	infile      string
	outfile     string
	textfile    string
	addLines    bool
	exportLines bool
	language    int32
	debug       bool
	configPath  string
}

var opts options

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "csftool",
	Short: "CSFTool - convert CSF string tables to and from text files",
	Long: `CSFTool converts the binary CSF string table format used by
Westwood-era RTS games to and from a LABEL|VALUE text line format.

Exactly one of --addlines or --exportlines must be selected. When both are
given, --addlines wins.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

		cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		if opts.debug || cfg.Debug {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}

		if !opts.addLines && !opts.exportLines {
			return fmt.Errorf("one of --addlines or --exportlines is required")
		}
		if opts.infile == "" {
			return fmt.Errorf("an input file is required")
		}

		langOverride, err := resolveLanguage(cmd, cfg)
		if err != nil {
			return err
		}

		// Flags are valid from here on; failures are runtime errors and
		// should not print usage.
		cmd.SilenceUsage = true

		textPath := opts.textfile
		if textPath == "" {
			textPath = deriveTextPath(opts.infile, cfg.TextExtension)
		}

		if opts.addLines {
			return runAddLines(textPath, langOverride)
		}
		return runExportLines(textPath)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&opts.infile, "infile", "i", "", "input string table file")
	f.StringVarP(&opts.outfile, "outfile", "o", "", "output string table file (defaults to the input file)")
	f.StringVarP(&opts.textfile, "textfile", "t", "", "text file to import from or export to (defaults to the input file with a .txt extension)")
	f.BoolVarP(&opts.addLines, "addlines", "a", false, "add labels from the text file to the string table")
	f.BoolVarP(&opts.exportLines, "exportlines", "e", false, "export string table labels to the text file")
	f.Int32VarP(&opts.language, "language-override", "l", 0, "override the table's language id (-1 to 9)")
	f.BoolVarP(&opts.debug, "debug-logging", "d", false, "enable debug logging")
	f.StringVar(&opts.configPath, "config", "", "path to a csftool.yaml defaults file")
}

// resolveConfig loads defaults from --config when given, otherwise from a
// csftool.yaml next to the input file when one exists.
func resolveConfig() (*config.Config, error) {
	if opts.configPath != "" {
		return config.LoadConfig(opts.configPath)
	}
	if opts.infile != "" {
		implicit := filepath.Join(filepath.Dir(opts.infile), "csftool.yaml")
		if config.ConfigExists(implicit) {
			return config.LoadConfig(implicit)
		}
	}
	return config.DefaultConfig(), nil
}

// resolveLanguage returns the language override to apply, or nil when none
// was requested. The flag wins over the config file value.
func resolveLanguage(cmd *cobra.Command, cfg *config.Config) (*csf.LanguageID, error) {
	raw := cfg.LanguageOverride
	if cmd.Flags().Changed("language-override") {
		raw = &opts.language
	}
	if raw == nil {
		return nil, nil
	}
	if *raw < -1 || *raw > 9 {
		return nil, fmt.Errorf("language override %d is outside the valid range [-1, 9]", *raw)
	}
	lang := csf.LanguageFromInt(*raw)
	return &lang, nil
}

// deriveTextPath replaces the input filename's extension with ext.
func deriveTextPath(infile, ext string) string {
	base := infile[:len(infile)-len(filepath.Ext(infile))]
	return base + ext
}

func runAddLines(textPath string, langOverride *csf.LanguageID) error {
	var table *csf.StringTable
	if _, err := os.Stat(opts.infile); err == nil {
		table, err = csf.Load(opts.infile)
		if err != nil {
			return err
		}
		log.Debug().
			Str("file", opts.infile).
			Int("labels", table.LabelCount()).
			Int("strings", table.StringCount()).
			Str("language", table.Language.String()).
			Msg("Loaded string table")
	} else {
		table = csf.NewStringTable()
		table.Filename = opts.infile
		log.Debug().
			Str("file", opts.infile).
			Msg("Input file not found, starting from an empty table")
	}

	if langOverride != nil && table.Language != *langOverride {
		table.Language = *langOverride
		table.Altered = true
		log.Debug().Str("language", langOverride.String()).Msg("Applied language override")
	}

	added, skipped, err := textfile.ImportFile(table, textPath)
	if err != nil {
		return err
	}
	log.Info().
		Str("file", textPath).
		Int("added", added).
		Int("skipped", skipped).
		Msg("Imported text lines")

	if !table.Altered {
		log.Info().Msg("No changes to save")
		return nil
	}

	out := opts.outfile
	if out == "" {
		out = opts.infile
	}
	if err := table.Save(out); err != nil {
		return err
	}
	log.Info().
		Str("file", out).
		Int("labels", table.LabelCount()).
		Int("strings", table.StringCount()).
		Msg("Saved string table")
	return nil
}

func runExportLines(textPath string) error {
	table, err := csf.Load(opts.infile)
	if err != nil {
		return err
	}
	log.Debug().
		Str("file", opts.infile).
		Int("labels", table.LabelCount()).
		Int("strings", table.StringCount()).
		Str("language", table.Language.String()).
		Msg("Loaded string table")

	if err := textfile.ExportFile(table, textPath); err != nil {
		return err
	}
	log.Info().
		Str("file", textPath).
		Int("labels", table.LabelCount()).
		Msg("Exported text lines")
	return nil
}
