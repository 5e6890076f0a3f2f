package main

import (
	"encoding/json"
	"flag"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wikiforge/ftml"
	"github.com/wikiforge/ftml/catalogue"
	"github.com/wikiforge/ftml/diag"
	"github.com/wikiforge/ftml/internal/config"
	"github.com/wikiforge/ftml/settings"
)

// output is the top-level document this CLI writes to stdout: the AST
// alongside its diagnostics, rather than two separate JSON values.
type output struct {
	Tree   interface{} `json:"tree"`
	Errors interface{} `json:"errors"`
}

func main() {
	catalogueFile := flag.String("catalogue", "", "path to a custom block catalogue TOML file (default: the bundled catalogue)")
	inputFile := flag.String("file", "", "path to a wikitext file (default: read from stdin)")
	tokensOnly := flag.Bool("tokens", false, "print the token stream instead of parsing")
	flag.Parse()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read config file")
	}

	if cfg.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	var in io.Reader = os.Stdin
	if *inputFile != "" {
		f, err := os.Open(*inputFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", *inputFile).Msg("cannot open input file")
		}
		defer f.Close()
		in = f
	}

	raw, err := io.ReadAll(in)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read input")
	}
	input := string(raw)

	if *tokensOnly {
		toks := ftml.Tokenize(input)
		if err := json.NewEncoder(os.Stdout).Encode(toks); err != nil {
			log.Fatal().Err(err).Msg("cannot encode tokens")
		}
		return
	}

	var cat *catalogue.Catalogue
	if *catalogueFile != "" {
		cat, err = catalogue.LoadFile(*catalogueFile, &log.Logger)
	} else if cfg.CatalogueFile != "" {
		cat, err = catalogue.LoadFile(cfg.CatalogueFile, &log.Logger)
	} else {
		cat, err = catalogue.Default(&log.Logger)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load block catalogue")
	}

	st := &settings.Settings{
		Layout:              settings.Layout(cfg.Layout),
		AllowHTMLAttributes: cfg.AllowHTML,
		RecursionLimit:      cfg.RecursionLimit,
		EnableInclude:       cfg.EnableInclude,
	}

	tree, errs := ftml.Parse(input, cat, st, &log.Logger)
	if errs == nil {
		errs = []diag.ParseError{}
	}

	if len(errs) > 0 {
		log.Warn().Int("count", len(errs)).Msg("parse produced diagnostics")
	}

	if err := json.NewEncoder(os.Stdout).Encode(output{Tree: tree, Errors: errs}); err != nil {
		log.Fatal().Err(err).Msg("cannot encode output")
	}
}
