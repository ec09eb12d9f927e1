// The pmxfile-recode command re-encodes a PMX file with changed settings.
package main

import (
	"flag"
	"fmt"

	"github.com/mmdformats/pmxfile/internal/cli"
	"github.com/mmdformats/pmxfile/pmx"
	"github.com/rs/zerolog/log"
)

const usage = `usage: pmxfile-recode [-profile FILE] [INPUT] [OUTPUT]

Reads a PMX file from INPUT, and writes to OUTPUT the same model re-encoded as
version 2.0. The text encoding and index widths of the output are taken from
the source file, changed by the TOML profile given with -profile:

	encoding = "utf-8"      # or "utf-16le"
	fit_index_sizes = true  # smallest widths that address each list
	[index_sizes]           # explicit widths; 0 keeps the current width
	vertex = 2
	bone = 2

INPUT and OUTPUT are paths to files. If INPUT is "-" or unspecified, then stdin
is used. If OUTPUT is "-" or unspecified, then stdout is used. Warnings and
errors are written to stderr.
`

func main() {
	logger := cli.InitLogger("pmxfile-recode")

	var profilePath string
	flag.StringVar(&profilePath, "profile", "", "path to a TOML recode profile")
	flag.Usage = func() { fmt.Fprint(flag.CommandLine.Output(), usage) }
	flag.Parse()

	var profile Profile
	if profilePath != "" {
		var err error
		if profile, err = loadProfile(profilePath); err != nil {
			log.Fatal().Err(err).Str("path", profilePath).Msg("load profile")
		}
		logger.Info().Str("path", profilePath).Msg("loaded profile")
	}

	files, err := cli.Open(flag.Args())
	if err != nil {
		log.Fatal().Err(err).Msg("open files")
	}
	defer func() {
		if err := files.Close(); err != nil {
			logger.Error().Err(err).Msg("close files")
		}
	}()

	doc, warn, err := pmx.Decoder{}.Decode(files.Input)
	cli.LogWarnings(logger, "decode", warn)
	if err != nil {
		logger.Error().Err(err).Msg("decode")
		return
	}

	if err := profile.Apply(doc); err != nil {
		logger.Error().Err(err).Msg("apply profile")
		return
	}

	warn, err = pmx.Encoder{}.Encode(files.Output, doc)
	cli.LogWarnings(logger, "encode", warn)
	if err != nil {
		logger.Error().Err(err).Msg("encode")
		return
	}
	logger.Info().
		Int("vertices", len(doc.Vertices)).
		Int("materials", len(doc.Materials)).
		Str("encoding", doc.Settings.Encoding.String()).
		Msg("recoded")
}
