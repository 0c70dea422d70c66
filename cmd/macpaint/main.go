package main

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/codegangsta/cli"
	"github.com/sirupsen/logrus"

	"github.com/kevin-cantwell/macpaint"
	"github.com/kevin-cantwell/macpaint/internal/config"
	"github.com/kevin-cantwell/macpaint/internal/finder"
)

func main() {
	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "macpaint"
	app.Usage = "Converts pictures to and from MacPaint documents."
	app.UsageText = "1) macpaint to-macpaint [options] INPUT OUTPUT\n" +
		/*      */ "   2) macpaint from-macpaint [options] INPUT OUTPUT"
	app.Author = "Kevin Cantwell"
	app.Email = "kevin.cantwell@gmail.com"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config",
			Usage: "Read defaults from `FILE` instead of " + config.DefaultPath() + ".",
		},
		cli.BoolFlag{
			Name:  "verbose,v",
			Usage: "Log every step.",
		},
	}
	app.Before = func(c *cli.Context) error {
		logrus.SetOutput(os.Stderr)
		logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		if c.GlobalBool("verbose") {
			logrus.SetLevel(logrus.DebugLevel)
		}
		return nil
	}
	app.Commands = []cli.Command{
		{
			Name:      "to-macpaint",
			Aliases:   []string{"p"},
			Usage:     "Dither a picture into a MacPaint document.",
			ArgsUsage: "INPUT OUTPUT",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "informat",
					Usage: "Decode INPUT as `FORMAT` (png, jpeg, gif, bmp, tiff, webp) instead of guessing.",
				},
				cli.StringFlag{
					Name:  "fit,f",
					Usage: "`FIT` = none rejects pictures that are not 576x720. FIT = pad crops or pads from the top left. FIT = scale shrinks and centres.",
				},
				cli.StringFlag{
					Name:  "dither,d",
					Usage: "`DITHER` is one of " + strings.Join(macpaint.DithererNames(), ", ") + ".",
				},
				cli.IntFlag{
					Name:  "threshold,t",
					Usage: "`LEVEL` below which the threshold ditherer draws ink.",
				},
				cli.Float64Flag{
					Name:  "gamma,g",
					Usage: "`GAMMA` = 1.0 gives the original image. GAMMA less than 1.0 darkens the image and GAMMA greater than 1.0 lightens it.",
				},
				cli.Float64Flag{
					Name:  "brightness,b",
					Usage: "`BRIGHTNESS` = 0 gives the original image. BRIGHTNESS = -100 gives solid black image. BRIGHTNESS = 100 gives solid white image.",
				},
				cli.Float64Flag{
					Name:  "contrast,c",
					Usage: "`CONTRAST` = 0 gives the original image. CONTRAST = -100 gives solid grey image. CONTRAST = 100 gives maximum contrast.",
				},
				cli.Float64Flag{
					Name:  "sharpen,s",
					Usage: "`SHARPEN` = 0 gives the original image. SHARPEN greater than 0 sharpens the image.",
				},
				cli.BoolFlag{
					Name:  "invert,i",
					Usage: "Inverts the image.",
				},
				cli.Float64Flag{
					Name:  "sigmoid-midpoint",
					Usage: "`MIDPOINT` of contrast that must be between 0 and 1.",
				},
				cli.Float64Flag{
					Name:  "sigmoid-factor",
					Usage: "`FACTOR` = 0 gives the original image. FACTOR greater than 0 increases contrast. FACTOR less than 0 decreases contrast.",
				},
				cli.StringFlag{
					Name:  "header",
					Usage: "Copy the pattern table from the MacPaint document `FILE`.",
				},
				cli.BoolFlag{
					Name:  "macbinary",
					Usage: "Wrap the document in a MacBinary header.",
				},
				cli.BoolFlag{
					Name:  "no-tag",
					Usage: "Do not set the Finder type and creator on OUTPUT.",
				},
			},
			Action: toMacPaint,
		},
		{
			Name:      "from-macpaint",
			Aliases:   []string{"m"},
			Usage:     "Render a MacPaint document as a modern picture.",
			ArgsUsage: "INPUT OUTPUT",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "depth",
					Usage: "`BITS` per pixel: 1, 8 or 24.",
				},
				cli.StringFlag{
					Name:  "format",
					Usage: "`FORMAT` = png, bmp or tiff. Guessed from OUTPUT when omitted.",
				},
				cli.BoolFlag{
					Name:  "deflate",
					Usage: "Deflate-compress TIFF output.",
				},
			},
			Action: fromMacPaint,
		},
		{
			Name:      "info",
			Usage:     "Describe a MacPaint document.",
			ArgsUsage: "INPUT",
			Action:    info,
		},
		{
			Name:      "preview",
			Usage:     "Show a MacPaint document in the terminal as braille.",
			ArgsUsage: "INPUT",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "fit,f",
					Usage: "`FIT` = 80,25 scales the page down to fit 80 columns and 25 lines. Defaults to the terminal size.",
				},
			},
			Action: preview,
		},
		{
			Name:      "patterns",
			Usage:     "Draw a MacPaint document's fill patterns.",
			ArgsUsage: "INPUT OUTPUT",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "scale",
					Usage: "`SCALE` pixels per pattern dot.",
					Value: 4,
				},
			},
			Action: patterns,
		},
	}
	if err := app.Run(os.Args); err != nil {
		exit(err.Error(), 1)
	}
}

// settings loads the config file and lets the command's flags override it.
func settings(c *cli.Context) (config.Config, error) {
	cfg, err := config.Load(c.GlobalString("config"))
	if err != nil {
		return cfg, err
	}
	if c.IsSet("dither") {
		cfg.Dither = c.String("dither")
	}
	if c.IsSet("threshold") {
		t := c.Int("threshold")
		if t < 0 || t > 255 {
			return cfg, fmt.Errorf("threshold %d out of range 0..255", t)
		}
		cfg.Threshold = uint8(t)
	}
	if c.IsSet("fit") {
		cfg.Fit = c.String("fit")
	}
	if c.IsSet("depth") {
		cfg.Depth = c.String("depth")
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("gamma") {
		cfg.Adjust.Gamma = c.Float64("gamma")
	}
	if c.IsSet("brightness") {
		cfg.Adjust.Brightness = c.Float64("brightness")
	}
	if c.IsSet("contrast") {
		cfg.Adjust.Contrast = c.Float64("contrast")
	}
	if c.IsSet("sharpen") {
		cfg.Adjust.Sharpen = c.Float64("sharpen")
	}
	if c.IsSet("sigmoid-midpoint") {
		cfg.Adjust.SigmoidMidpoint = c.Float64("sigmoid-midpoint")
	}
	if c.IsSet("sigmoid-factor") {
		cfg.Adjust.SigmoidFactor = c.Float64("sigmoid-factor")
	}
	if c.Bool("invert") {
		cfg.Adjust.Invert = true
	}
	if c.Bool("macbinary") {
		cfg.MacBinary = true
	}
	if c.Bool("no-tag") {
		cfg.Tag = false
	}
	return cfg, cfg.Validate()
}

func args(c *cli.Context, n int) ([]string, error) {
	if len(c.Args()) != n {
		return nil, fmt.Errorf("%s wants %d arguments, got %d (usage: %s %s)",
			c.Command.Name, n, len(c.Args()), c.Command.Name, c.Command.ArgsUsage)
	}
	return c.Args(), nil
}

func toMacPaint(c *cli.Context) error {
	a, err := args(c, 2)
	if err != nil {
		return fail(err)
	}
	input, output := a[0], a[1]
	cfg, err := settings(c)
	if err != nil {
		return fail(err)
	}
	log := logrus.WithFields(logrus.Fields{"input": input, "output": output})

	r, err := openInput(input)
	if err != nil {
		return fail(err)
	}
	img, format, err := decodeImage(r, c.String("informat"))
	r.Close()
	if err != nil {
		return fail(fmt.Errorf("%s: %v", input, err))
	}
	log.WithFields(logrus.Fields{"format": format, "size": img.Bounds().Size()}).Debug("decoded")

	img = adjustImage(img, cfg.Adjust)
	if img, err = fitImage(img, cfg.Fit); err != nil {
		return fail(err)
	}

	d, err := macpaint.DithererByName(cfg.Dither)
	if err != nil {
		return fail(err)
	}
	if _, ok := d.(macpaint.Threshold); ok {
		d = macpaint.Threshold{Level: cfg.Threshold}
	}
	opts := []macpaint.EncoderOpt{macpaint.WithDitherer(d)}
	if path := c.String("header"); path != "" {
		tmpl, err := readDocument(path)
		if err != nil {
			return fail(err)
		}
		opts = append(opts, macpaint.WithHeader(tmpl.Header))
	}
	if cfg.MacBinary {
		opts = append(opts, macpaint.WithMacBinary(documentName(output)))
	}

	data, err := macpaint.ToLegacy(img, opts...)
	var dim macpaint.DimensionError
	if errors.As(err, &dim) {
		return fail(fmt.Errorf("%v; use --fit pad or --fit scale", err))
	}
	if err != nil {
		return fail(err)
	}
	if err := writeOutput(output, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	}); err != nil {
		return fail(err)
	}
	log.WithFields(logrus.Fields{"dither": cfg.Dither, "bytes": len(data)}).Info("wrote MacPaint document")

	if cfg.Tag && output != stdio {
		if err := finder.Tag(output, macpaint.FileType, macpaint.Creator); err != nil {
			log.WithError(err).Warn("could not set Finder type and creator")
		} else {
			log.Debug("tagged PNTG/MPNT")
		}
	}
	return nil
}

func fromMacPaint(c *cli.Context) error {
	a, err := args(c, 2)
	if err != nil {
		return fail(err)
	}
	input, output := a[0], a[1]
	cfg, err := settings(c)
	if err != nil {
		return fail(err)
	}
	log := logrus.WithFields(logrus.Fields{"input": input, "output": output})

	f, err := readDocument(input)
	if err != nil {
		return fail(err)
	}
	depth, err := macpaint.ParseDepth(cfg.Depth)
	if err != nil {
		return fail(err)
	}
	format := outputFormat(cfg.Format, output)
	img := macpaint.Render(f.Bitmap, depth)
	if err := writeOutput(output, func(w io.Writer) error {
		return encodeImage(w, img, format, c.Bool("deflate"))
	}); err != nil {
		return fail(err)
	}
	log.WithFields(logrus.Fields{"depth": depth, "format": format}).Info("wrote picture")
	return nil
}

func info(c *cli.Context) error {
	a, err := args(c, 1)
	if err != nil {
		return fail(err)
	}
	f, err := readDocument(a[0])
	if err != nil {
		return fail(err)
	}
	fmt.Printf("version:   %d\n", f.Header.Version)
	fmt.Printf("patterns:  %d of %d in use\n", f.Header.UsedPatterns(), macpaint.PatternCount)
	fmt.Printf("ink:       %.1f%%\n", 100*float64(f.Bitmap.Ink())/float64(macpaint.Width*macpaint.Height))
	fmt.Printf("packed:    %d bytes\n", f.PackedSize())
	if f.Trailing > 0 {
		fmt.Printf("trailing:  %d bytes\n", f.Trailing)
	}
	if mb := f.MacBinary; mb != nil {
		fmt.Printf("macbinary: %q %s/%s modified %s\n", mb.Name, mb.Type, mb.Creator, mb.Modified.Format("2006-01-02 15:04"))
	}
	if fileType, creator, err := finder.Read(a[0]); err == nil {
		fmt.Printf("finder:    %s/%s\n", fileType, creator)
	}
	return nil
}

func patterns(c *cli.Context) error {
	a, err := args(c, 2)
	if err != nil {
		return fail(err)
	}
	f, err := readDocument(a[0])
	if err != nil {
		return fail(err)
	}
	sheet := f.Header.PatternSheet(c.Int("scale"))
	if err := writeOutput(a[1], func(w io.Writer) error {
		return png.Encode(w, sheet)
	}); err != nil {
		return fail(err)
	}
	return nil
}

func preview(c *cli.Context) error {
	a, err := args(c, 1)
	if err != nil {
		return fail(err)
	}
	f, err := readDocument(a[0])
	if err != nil {
		return fail(err)
	}
	cols, lines, err := previewSize(c.String("fit"))
	if err != nil {
		return fail(err)
	}
	page := shrinkPage(macpaint.Render(f.Bitmap, macpaint.Gray8), cols, lines)
	return writeBraille(os.Stdout, page)
}

// previewSize parses "COLS,LINES", falling back to the terminal size and
// then to 80x25. One line is left for the prompt.
func previewSize(fit string) (cols, lines int, err error) {
	if fit != "" {
		parts := strings.Split(fit, ",")
		if len(parts) != 2 {
			return 0, 0, errors.New("fit option must be comma separated")
		}
		if cols, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
			return 0, 0, fmt.Errorf("fit columns: %v", err)
		}
		if lines, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
			return 0, 0, fmt.Errorf("fit lines: %v", err)
		}
		return cols, lines, nil
	}
	cols, lines, err = terminalSize()
	if err != nil || cols == 0 || lines == 0 {
		cols, lines = 80, 25
	}
	return cols, lines - 1, nil
}

func readDocument(input string) (*macpaint.File, error) {
	data, err := readInput(input)
	if err != nil {
		return nil, err
	}
	f, err := macpaint.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", input, err)
	}
	return f, nil
}

// documentName is the classic Mac file name for output.
func documentName(output string) string {
	if output == stdio {
		return "untitled"
	}
	name := filepath.Base(output)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func fail(err error) error {
	return cli.NewExitError(err.Error(), 1)
}

func exit(msg string, code int) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(code)
}
