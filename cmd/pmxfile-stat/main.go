// The pmxfile-stat command displays stats for a PMX file.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/mmdformats/pmxfile/internal/cli"
	"github.com/rs/zerolog/log"
)

const usage = `usage: pmxfile-stat [INPUT] [OUTPUT]

Reads a PMX file from INPUT, and writes to OUTPUT statistics for the file as
JSON. The statistics include blake2b-256 digests of the input and of the file
re-encoded, and whether the two are identical.

INPUT and OUTPUT are paths to files. If INPUT is "-" or unspecified, then stdin
is used. If OUTPUT is "-" or unspecified, then stdout is used. Warnings and
errors are written to stderr.
`

func main() {
	logger := cli.InitLogger("pmxfile-stat")

	flag.Usage = func() { fmt.Fprint(flag.CommandLine.Output(), usage) }
	flag.Parse()

	files, err := cli.Open(flag.Args())
	if err != nil {
		log.Fatal().Err(err).Msg("open files")
	}
	defer func() {
		if err := files.Close(); err != nil {
			logger.Error().Err(err).Msg("close files")
		}
	}()

	b, err := io.ReadAll(files.Input)
	if err != nil {
		logger.Error().Err(err).Msg("read input")
		return
	}

	stats := Compute(b)
	for _, w := range stats.Warnings {
		logger.Warn().Str("warning", w).Msg("decode")
	}
	if stats.Error != "" {
		logger.Error().Str("error", stats.Error).Msg("decode")
	}

	je := json.NewEncoder(files.Output)
	je.SetEscapeHTML(false)
	je.SetIndent("", "\t")
	if err := je.Encode(stats); err != nil {
		logger.Error().Err(err).Msg("write output")
	}
}
