// SPDX-License-Identifier: MIT

package lab

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Write renders rep in the given format.
func Write(w io.Writer, rep *Report, format string) error {
	switch format {
	case FormatText, "":
		return WriteText(w, rep)
	case FormatJSON:
		return WriteJSON(w, rep)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// WriteJSON renders rep as indented JSON.
func WriteJSON(w io.Writer, rep *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(rep)
}

// WriteText renders rep as an aligned table, one line per result.
func WriteText(w io.Writer, rep *Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "run %s\n", rep.RunID)
	fmt.Fprintln(tw, "JOB\tKIND\tRESULT\tDETAIL")

	for _, o := range rep.Outcomes {
		switch {
		case o.Error != "" && o.Value == nil:
			fmt.Fprintf(tw, "%s\t%s\terror\t%s\n", o.Name, o.Kind, o.Error)
		case o.Value != nil:
			detail := fmt.Sprintf("err≈%.2g intervals=%d evals=%d", o.AbsError, o.Intervals, o.Evaluations)
			if o.Error != "" {
				detail += " (" + o.Error + ")"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", o.Name, o.Kind, o.Value, detail)
		case len(o.Points) > 0:
			for _, p := range o.Points {
				if p.Error != "" {
					fmt.Fprintf(tw, "%s\t%s\terror\tz0=%s: %s\n", o.Name, o.Kind, p.Z0, p.Error)

					continue
				}
				detail := "z0=" + p.Z0.String()
				if o.Kind == KindCauchy {
					detail += fmt.Sprintf(" |Δf|=%.2g", p.Delta)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", o.Name, o.Kind, p.Result, detail)
			}
		default:
			for _, pl := range o.Planes {
				fmt.Fprintf(tw, "%s\t%s\t[%.6g, %.6g]\t%s %dx%d\n",
					o.Name, o.Kind, pl.Min, pl.Max, pl.Name, o.Shape[0], o.Shape[1])
			}
		}
	}

	return tw.Flush()
}
