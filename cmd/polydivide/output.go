package main

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/polydivide/internal"
	"gopkg.in/yaml.v3"
)

type yamlPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type yamlCut struct {
	Offset     float64   `yaml:"offset"`
	Start      yamlPoint `yaml:"start"`
	End        yamlPoint `yaml:"end"`
	Iterations int       `yaml:"iterations"`
	Converged  bool      `yaml:"converged"`
}

type yamlDivision struct {
	Area    float64   `yaml:"area"`
	Regions int       `yaml:"regions"`
	Edge    int       `yaml:"edge"`
	Cuts    []yamlCut `yaml:"cuts"`
}

func toYAMLPoint(p internal.Point) yamlPoint {
	return yamlPoint{X: p.X, Y: p.Y}
}

func writeYAML(w io.Writer, d *internal.Division) error {
	out := yamlDivision{
		Area:    d.Total,
		Regions: len(d.Cuts) + 1,
		Edge:    d.Edge,
		Cuts:    make([]yamlCut, 0, len(d.Cuts)),
	}
	for _, cut := range d.Cuts {
		out.Cuts = append(out.Cuts, yamlCut{
			Offset:     cut.Offset,
			Start:      toYAMLPoint(cut.Segment.Start),
			End:        toYAMLPoint(cut.Segment.End),
			Iterations: cut.Iterations,
			Converged:  cut.Converged,
		})
	}
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	return encoder.Encode(out)
}

func writeText(w io.Writer, d *internal.Division, au aurora.Aurora) {
	regions := len(d.Cuts) + 1
	fmt.Fprintf(w, "area %s, %d regions of %s\n",
		au.Bold(fmt.Sprintf("%g", d.Total)),
		regions,
		au.Bold(fmt.Sprintf("%g", d.Total/float64(regions))),
	)
	for _, cut := range d.Cuts {
		status := au.Green("ok")
		if !cut.Converged {
			status = au.Yellow("best effort")
		}
		fmt.Fprintf(w, "%s %s %s (%s)\n",
			au.Cyan(fmt.Sprintf("cut %d:", cut.K)),
			cut.Segment.Start,
			cut.Segment.End,
			status,
		)
	}
}
