package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"

	"github.com/finboard/finboard-cli/internal/dataset"
	"github.com/finboard/finboard-cli/internal/render"
)

// loadSession builds a session from the shared --file/--sample flags. Every
// data command goes through this one path.
func loadSession(file string, sample bool) (*dataset.Session, error) {
	s := dataset.NewSession()
	switch {
	case sample:
		s.LoadSample()
	case file != "":
		if err := s.LoadFile(file); err != nil {
			return nil, err
		}
	default:
		return nil, eris.New("either --file or --sample is required")
	}
	return s, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printTable renders a TableData as aligned text.
func printTable(t render.TableData) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if t.Title != "" {
		fmt.Fprintln(w, t.Title)
	}
	for i, c := range t.Columns {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, c.Label)
	}
	fmt.Fprintln(w)
	for _, row := range t.Rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, cell)
		}
		fmt.Fprintln(w)
	}
	_ = w.Flush()
	fmt.Println()
}
