// The pmxfile-glb command converts the mesh of a PMX file to binary glTF.
package main

import (
	"flag"
	"fmt"

	"github.com/mmdformats/pmxfile/glb"
	"github.com/mmdformats/pmxfile/internal/cli"
	"github.com/mmdformats/pmxfile/pmx"
	"github.com/rs/zerolog/log"
)

const usage = `usage: pmxfile-glb [INPUT] [OUTPUT]

Reads a PMX file from INPUT, and writes to OUTPUT a GLB file containing the
mesh and materials of the model. Texture paths are written as image URIs
relative to the output.

INPUT and OUTPUT are paths to files. If INPUT is "-" or unspecified, then stdin
is used. If OUTPUT is "-" or unspecified, then stdout is used. Warnings and
errors are written to stderr.
`

func main() {
	logger := cli.InitLogger("pmxfile-glb")

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

	doc, warn, err := pmx.Decoder{}.Decode(files.Input)
	cli.LogWarnings(logger, "decode", warn)
	if err != nil {
		logger.Error().Err(err).Msg("decode")
		return
	}

	if err := glb.Encode(files.Output, doc); err != nil {
		logger.Error().Err(err).Msg("encode glb")
		return
	}
	logger.Info().
		Str("name", doc.Name).
		Int("vertices", len(doc.Vertices)).
		Int("materials", len(doc.Materials)).
		Msg("converted")
}
