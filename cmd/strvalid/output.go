package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/dmitrymomot/strvalid/pkg/card"
	"github.com/dmitrymomot/strvalid/pkg/validator"
)

// result is the outcome for one value. Card numbers are masked and passwords
// are never echoed.
type result struct {
	Check  string     `json:"check"`
	Value  string     `json:"value"`
	Valid  bool       `json:"valid"`
	Errors []string   `json:"errors,omitempty"`
	Card   *card.Info `json:"card,omitempty"`
}

// render writes one line per result plus its messages in text mode, or one
// JSON object per line in JSON mode.
func (a *app) render(w io.Writer, results []result) error {
	if a.format == formatJSON {
		enc := json.NewEncoder(w)
		for _, r := range results {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
		return nil
	}

	passed := 0
	for _, r := range results {
		status := a.tr.T(a.lang, "cli.invalid")
		if r.Valid {
			passed++
			status = a.tr.T(a.lang, "cli.valid")
		}

		line := r.Value + ": " + status
		if r.Card != nil && r.Card.Issuer != card.Unknown {
			line += " (" + a.tr.T(a.lang, "cli.issuer", "issuer", r.Card.Issuer.String()) + ")"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		for _, msg := range r.Errors {
			if _, err := fmt.Fprintf(w, "  - %s\n", msg); err != nil {
				return err
			}
		}
	}

	if len(results) > 1 {
		_, err := fmt.Fprintln(w, a.tr.T(a.lang, "cli.summary",
			"passed", strconv.Itoa(passed),
			"total", strconv.Itoa(len(results)),
		))
		return err
	}
	return nil
}

func (a *app) listChecks(w io.Writer) int {
	names := append(validator.Checks(), "card", "password")

	var err error
	if a.format == formatJSON {
		err = json.NewEncoder(w).Encode(names)
	} else {
		for _, name := range names {
			if _, err = fmt.Fprintln(w, name); err != nil {
				break
			}
		}
	}
	if err != nil {
		return exitUsage
	}
	return exitOK
}
