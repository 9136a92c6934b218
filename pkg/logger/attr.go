package logger

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/dmitrymomot/strvalid/pkg/card"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups the non-nil errors under "errors". With no non-nil error it
// returns an empty Attr, which handlers drop.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under "error", or returns an empty Attr for nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Check records the name of the check being run.
func Check(name string) slog.Attr {
	return slog.String("check", name)
}

func Field(name string) slog.Attr {
	return slog.String("field", name)
}

func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}

// Issuer records a card issuer. Anything with a String method is logged as text.
func Issuer(issuer any) slog.Attr {
	if s, ok := issuer.(fmt.Stringer); ok {
		return slog.String("issuer", s.String())
	}
	return slog.Any("issuer", issuer)
}

// Card records a card number with everything but the first six and last four
// digits masked. Full card numbers must never reach the logs.
func Card(number string) slog.Attr {
	return slog.String("card", card.Mask(number))
}

// Reason records a validation diagnostic; empty reasons yield an empty Attr.
func Reason(reason any) slog.Attr {
	if reason == nil {
		return slog.Attr{}
	}
	if s, ok := reason.(fmt.Stringer); ok {
		reason = s.String()
	}
	if reason == "" {
		return slog.Attr{}
	}
	return slog.Any("reason", reason)
}

// RunID records the identifier of one command invocation.
func RunID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("run_id", id)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}
