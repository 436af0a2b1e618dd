// jpegfidelity compresses an image to JPEG, decodes it again and reports how
// much the round trip lost.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jcgregorio/logger"
	"github.com/urfave/cli/v2"

	"github.com/cocosip/go-jpeg-fidelity/codec"
	"github.com/cocosip/go-jpeg-fidelity/fidelity"
	_ "github.com/cocosip/go-jpeg-fidelity/jpeg/jpegli"
	"github.com/cocosip/go-jpeg-fidelity/jpeg/stdjpeg"
	"github.com/cocosip/go-jpeg-fidelity/source"
)

const usageText = `Usage: jpegfidelity [flags] <sourcefile> <destfile> <quality_factor>
sourcefile: Source image file (PNG, JPEG, GIF, BMP, TIFF, WebP or 8-bit DICOM).
destfile: Destination JPEG file.
quality_factor: 1-100, higher=better
`

// errUsage is returned after the usage text has been printed.
var errUsage = errors.New("invalid command line")

// appFlags holds the command line flags.
type appFlags struct {
	Codec           string
	Target          string
	AverageChannels bool
	JSON            bool
	Verbose         bool
}

func (flags *appFlags) AsCliFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Destination: &flags.Codec,
			Name:        "codec",
			Value:       stdjpeg.Name,
			Usage:       "JPEG codec to round-trip through.",
			EnvVars:     []string{"JPEGFIDELITY_CODEC"},
		},
		&cli.StringFlag{
			Destination: &flags.Target,
			Name:        "target",
			Value:       fidelity.TargetFile.String(),
			Usage:       "Compression target: file writes the output directly, buffer encodes into memory first.",
			EnvVars:     []string{"JPEGFIDELITY_TARGET"},
		},
		&cli.BoolFlag{
			Destination: &flags.AverageChannels,
			Name:        "average-channels",
			Usage:       "Divide error sums by the number of compared samples instead of the number of pixels.",
		},
		&cli.BoolFlag{
			Destination: &flags.JSON,
			Name:        "json",
			Usage:       "Print the report as JSON.",
		},
		&cli.BoolFlag{
			Destination: &flags.Verbose,
			Name:        "verbose",
			Usage:       "Log every stage to stderr.",
		},
	}
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes the program and returns its exit status.
func run(args []string, stdout, stderr io.Writer) int {
	var flags appFlags
	app := &cli.App{
		Name:            "jpegfidelity",
		Usage:           "Measure the fidelity loss of a JPEG round trip.",
		UsageText:       usageText,
		Flags:           flags.AsCliFlags(),
		Writer:          stdout,
		ErrWriter:       stderr,
		HideHelpCommand: true,
		ExitErrHandler:  func(*cli.Context, error) {},
		Action: func(c *cli.Context) error {
			return action(c, &flags, stdout, stderr)
		},
	}

	if err := app.Run(args); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(stderr, err)
		}
		return 1
	}
	return 0
}

func action(c *cli.Context, flags *appFlags, stdout, stderr io.Writer) error {
	if !flags.JSON {
		fmt.Fprintln(stdout, "jpegfidelity: JPEG round-trip fidelity checker")
	}
	if c.NArg() != 3 {
		fmt.Fprint(stdout, usageText)
		return errUsage
	}
	srcPath, dstPath := c.Args().Get(0), c.Args().Get(1)
	quality, err := strconv.Atoi(c.Args().Get(2))
	if err != nil || codec.ValidateQuality(quality) != nil {
		fmt.Fprintln(stdout, "Quality factor must range from 1-100!")
		return errUsage
	}

	target, err := fidelity.ParseTarget(flags.Target)
	if err != nil {
		return err
	}
	jpegCodec, err := codec.Get(flags.Codec)
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, codec.Names())
	}

	opts := []fidelity.Option{
		fidelity.WithTarget(target),
		fidelity.WithLogger(logger.NewFromOptions(&logger.Options{
			SyncWriter:   syncWriter(stderr),
			IncludeDebug: flags.Verbose,
		})),
	}
	if flags.AverageChannels {
		opts = append(opts, fidelity.WithChannelAveraging())
	}
	if !flags.JSON {
		opts = append(opts, fidelity.WithProgress(func(stage string, rep *fidelity.Report) {
			printProgress(stdout, stage, rep)
		}))
	}

	rep, err := fidelity.New(source.NewLoader(), jpegCodec, opts...).Run(srcPath, dstPath, quality)
	if err != nil {
		return err
	}

	if flags.JSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	printReport(stdout, rep)
	return nil
}

// printProgress prints each line as soon as its stage is reached, so a failed
// run still shows how far it got.
func printProgress(w io.Writer, stage string, rep *fidelity.Report) {
	switch stage {
	case fidelity.StageSource:
		fmt.Fprintf(w, "Source image resolution: %dx%d\n", rep.Width, rep.Height)
	case fidelity.StageEncode:
		fmt.Fprintf(w, "Writing JPEG image to file: %s\n", rep.Dest)
	case fidelity.StageDecode:
		fmt.Fprintf(w, "Compressed file size: %d (%s)\n", rep.CompressedSize, humanize.Bytes(uint64(rep.CompressedSize)))
	}
}

func printReport(w io.Writer, rep *fidelity.Report) {
	fmt.Fprintln(w, rep.Metrics)
	fmt.Fprintln(w, "Success.")
}

type nopSyncWriter struct {
	io.Writer
}

func (nopSyncWriter) Sync() error {
	return nil
}

func syncWriter(w io.Writer) logger.SyncWriter {
	if sw, ok := w.(logger.SyncWriter); ok {
		return sw
	}
	return nopSyncWriter{w}
}
