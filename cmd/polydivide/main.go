package main

import (
	"log/slog"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/polydivide/internal"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Divide a polygon and print the cuts. Input on stdin should be newline
// separated points in the form "x y", or use --svg to read the first polygon
// of an SVG file.
var (
	app = kingpin.New("polydivide", "Divide a polygon into equal area regions with cuts parallel to one of its edges.")

	divisor   = app.Flag("regions", "Number of regions.").Short('n').Default("2").Int()
	edge      = app.Flag("edge", "Index i of the reference edge, which runs from point i-1 to point i.").Short('e').Default("0").Int()
	tolerance = app.Flag("tolerance", "Area tolerance, as a fraction of the total area.").Default("1e-12").Float64()
	strategy  = app.Flag("strategy", "Cut search strategy.").Default("bisection").Enum("bisection", "trapezoid")
	workers   = app.Flag("workers", "Number of cuts to search concurrently.").Default("1").Int()
	clockwise = app.Flag("clockwise", "Accept clockwise polygons.").Bool()

	svgFile = app.Flag("svg", "Read the polygon from an SVG file instead of stdin.").ExistingFile()
	format  = app.Flag("format", "Output format.").Default("text").Enum("text", "yaml")
	noColor = app.Flag("no-color", "Disable colored text output.").Bool()
	pngFile = app.Flag("png", "Render the division to this PNG file.").String()
	scale   = app.Flag("scale", "Pixels per unit when rendering.").Default("50").Float64()
	imgcat  = app.Flag("imgcat", "Display the rendering in the terminal (iTerm only). Requires --png.").Bool()
	debug   = app.Flag("debug", "Log the search to stderr.").Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if *debug {
		internal.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var (
		points []internal.Point
		err    error
	)
	if *svgFile != "" {
		points, err = readSVG(*svgFile)
	} else {
		points, err = readPoints(os.Stdin)
	}
	app.FatalIfError(err, "reading polygon")

	opts := []internal.Option{
		internal.WithTolerance(*tolerance),
		internal.WithWorkers(*workers),
	}
	if *strategy == internal.StrategyTrapezoid.String() {
		opts = append(opts, internal.WithStrategy(internal.StrategyTrapezoid))
	}
	if *clockwise {
		opts = append(opts, internal.AllowClockwise())
	}

	division, err := divide(points, *divisor, *edge, opts...)
	app.FatalIfError(err, "dividing polygon")

	switch *format {
	case "yaml":
		app.FatalIfError(writeYAML(os.Stdout, division), "writing yaml")
	default:
		writeText(os.Stdout, division, aurora.NewAurora(!*noColor))
	}

	if *pngFile != "" {
		img := internal.RenderDivision(division, *scale)
		app.FatalIfError(internal.SavePNG(*pngFile, img), "rendering")
		if *imgcat {
			app.FatalIfError(internal.CatPNG(*pngFile, os.Stdout), "displaying")
		}
	}
}

func divide(points []internal.Point, n, idx int, opts ...internal.Option) (division *internal.Division, err error) {
	defer func() {
		recoveredErr := internal.HandleDividePanicRecover(recover())
		if recoveredErr != nil {
			division = nil
			err = recoveredErr
		}
	}()
	return internal.Divide(points, n, idx, opts...)
}
