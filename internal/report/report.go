// Package report writes headless run results to a stream.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/san-kum/dotsim/internal/sim"
)

type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatTable, FormatCSV, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (want table, csv or json)", s)
}

// Run describes the run a Result came from.
type Run struct {
	Preset        string  `json:"preset,omitempty"`
	Seed          int64   `json:"seed"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	TickMs        float64 `json:"tick_ms"`
	Ticks         int     `json:"ticks"`
	InitialBodies int     `json:"initial_bodies"`
}

type exportData struct {
	Run        Run                `json:"run"`
	Steps      int                `json:"steps"`
	Destroyed  int                `json:"destroyed"`
	Times      []float64          `json:"times"`
	Bodies     []int              `json:"bodies"`
	Explosions []int              `json:"explosions"`
	Centroids  []*[2]float64      `json:"centroids"`
	Metrics    map[string]float64 `json:"metrics"`
}

func Write(w io.Writer, f Format, run Run, result *sim.Result) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, result)
	case FormatJSON:
		return WriteJSON(w, run, result)
	default:
		return WriteTable(w, result)
	}
}

// WriteCSV writes one row per tick. Ticks without a centroid leave its
// columns empty.
func WriteCSV(w io.Writer, result *sim.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"time_ms", "bodies", "explosions", "centroid_x", "centroid_y"}); err != nil {
		return err
	}

	for i := range result.Times {
		row := []string{
			strconv.FormatFloat(result.Times[i], 'f', 3, 64),
			strconv.Itoa(result.Bodies[i]),
			strconv.Itoa(result.Explosions[i]),
			"", "",
		}
		if c := result.Centroids[i]; c.OK {
			row[3] = strconv.FormatFloat(c.X, 'f', 3, 64)
			row[4] = strconv.FormatFloat(c.Y, 'f', 3, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func WriteJSON(w io.Writer, run Run, result *sim.Result) error {
	data := exportData{
		Run:        run,
		Steps:      result.StepsTaken,
		Destroyed:  result.Destroyed,
		Times:      result.Times,
		Bodies:     result.Bodies,
		Explosions: result.Explosions,
		Centroids:  make([]*[2]float64, 0, len(result.Centroids)),
		Metrics:    result.Metrics,
	}
	// one entry per tick, null when the tick had no bodies
	for _, c := range result.Centroids {
		if !c.OK {
			data.Centroids = append(data.Centroids, nil)
			continue
		}
		data.Centroids = append(data.Centroids, &[2]float64{c.X, c.Y})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// WriteTable writes the final metric values sorted by name.
func WriteTable(w io.Writer, result *sim.Result) error {
	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "METRIC\tVALUE")
	fmt.Fprintf(tw, "steps\t%d\n", result.StepsTaken)
	for _, name := range names {
		fmt.Fprintf(tw, "%s\t%.6f\n", name, result.Metrics[name])
	}
	return tw.Flush()
}
