package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/strvalid/pkg/card"
	"github.com/dmitrymomot/strvalid/pkg/i18n"
	"github.com/dmitrymomot/strvalid/pkg/logger"
	"github.com/dmitrymomot/strvalid/pkg/runid"
	"github.com/dmitrymomot/strvalid/pkg/sanitizer"
	"github.com/dmitrymomot/strvalid/pkg/validator"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

const (
	formatText = "text"
	formatJSON = "json"
)

// stdinValue as the value argument makes the command read one value per line.
const stdinValue = "-"

// maxLineSize bounds a single stdin value.
const maxLineSize = 1 << 20

var errNoValues = errors.New("no values on stdin")

type evaluator func(ctx context.Context, value string) result

type app struct {
	cfg    Config
	lang   string
	format string
	v      *validator.Validator
	tr     *i18n.Translator
	log    *slog.Logger
}

// run executes one command line and returns the process exit code.
func run(ctx context.Context, cfg Config, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("strvalid", flag.ContinueOnError)
	flags.SetOutput(stderr)
	lang := flags.String("lang", cfg.Lang, "message language, e.g. en or de-AT")
	output := flags.String("output", cfg.Output, "output format: text or json")
	normalize := flags.Bool("normalize", cfg.Normalize, "trim values and strip card separators before checking")
	flags.Usage = func() { printUsage(flags) }
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "strvalid: %v\n", err)
		return exitUsage
	}
	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Service),
		logger.WithLevel(level),
		logger.WithOutput(stderr),
		logger.WithContextExtractors(runid.LoggerExtractor()),
	)
	ctx = runid.WithContext(ctx, runid.New())

	if *output != formatText && *output != formatJSON {
		fmt.Fprintf(stderr, "strvalid: unknown output format %q\n", *output)
		return exitUsage
	}

	tr, err := newTranslator(ctx, log.With(logger.Component("i18n")))
	if err != nil {
		log.ErrorContext(ctx, "failed to load translations", logger.Error(err))
		return exitUsage
	}

	a := &app{
		cfg:    cfg,
		lang:   tr.Lang(*lang),
		format: *output,
		v:      validator.Default(),
		tr:     tr,
		log:    log,
	}

	rest := flags.Args()
	if len(rest) == 0 {
		flags.Usage()
		return exitUsage
	}
	if rest[0] == "checks" {
		return a.listChecks(stdout)
	}
	if len(rest) < 2 {
		flags.Usage()
		return exitUsage
	}

	check, value, params := rest[0], rest[1], rest[2:]
	eval, err := a.evaluator(check, params)
	if err != nil {
		fmt.Fprintf(stderr, "strvalid: %v\n", err)
		return exitUsage
	}

	values := []string{value}
	if value == stdinValue {
		if values, err = readValues(stdin); err != nil {
			fmt.Fprintf(stderr, "strvalid: %v\n", err)
			return exitUsage
		}
	}

	if *normalize {
		eval = normalized(sanitizer.ForCheck(check), eval)
	}

	start := time.Now()
	results, err := evaluate(ctx, values, eval)
	if err != nil {
		log.ErrorContext(ctx, "run aborted", logger.Check(check), logger.Error(err))
		return exitUsage
	}

	if err := a.render(stdout, results); err != nil {
		log.ErrorContext(ctx, "failed to write results", logger.Error(err))
		return exitUsage
	}

	failed := 0
	for _, r := range results {
		if !r.Valid {
			failed++
		}
	}
	log.DebugContext(ctx, "run finished",
		logger.Check(check),
		slog.Int("values", len(results)),
		slog.Int("failed", failed),
		logger.Duration(time.Since(start)),
	)

	if failed > 0 {
		return exitFail
	}
	return exitOK
}

func (a *app) evaluator(check string, params []string) (evaluator, error) {
	switch check {
	case "card", "credit_card":
		if len(params) > 0 {
			return nil, fmt.Errorf("%s takes exactly one value", check)
		}
		return a.checkCard, nil
	case "password":
		if len(params) > 0 {
			return nil, fmt.Errorf("password takes exactly one value")
		}
		return a.checkPassword, nil
	}

	// Building the rule once up front reports unknown checks and bad
	// parameters before any value is read.
	if _, err := a.v.Rule(check, "value", "", params...); err != nil {
		return nil, err
	}
	return func(ctx context.Context, value string) result {
		rule, err := a.v.Rule(check, "value", value, params...)
		if err != nil {
			return result{Check: check, Value: value, Errors: []string{err.Error()}}
		}
		r := a.apply(check, value, rule)
		a.log.DebugContext(ctx, "value checked", logger.Check(check), logger.Valid(r.Valid))
		return r
	}, nil
}

func (a *app) checkCard(ctx context.Context, number string) result {
	info := a.v.CreditCardInfo(number)
	info.Number = card.Mask(number)

	r := result{Check: "card", Value: info.Number, Valid: info.Valid, Card: &info}
	if !info.Valid {
		r.Errors = []string{a.tr.Td(a.lang, info.Reason.TranslationKey(), info.Reason.String())}
	}

	a.log.DebugContext(ctx, "card checked",
		logger.Card(number),
		logger.Issuer(info.Issuer),
		logger.Valid(info.Valid),
		logger.Reason(info.Reason),
	)
	return r
}

func (a *app) checkPassword(ctx context.Context, password string) result {
	r := a.apply("password", strings.Repeat("*", 8), a.v.PasswordRules("password", password, a.cfg.PasswordMinLength)...)
	a.log.DebugContext(ctx, "password checked", logger.Valid(r.Valid), slog.Int("failed_rules", len(r.Errors)))
	return r
}

// apply runs rules and translates every failure.
func (a *app) apply(check, display string, rules ...validator.Rule) result {
	r := result{Check: check, Value: display, Valid: true}
	for _, e := range validator.ExtractValidationErrors(validator.Apply(rules...)) {
		r.Valid = false
		r.Errors = append(r.Errors, a.tr.Tv(a.lang, e.TranslationKey, e.Error(), e.TranslationValues))
	}
	return r
}

// normalized cleans each value with clean before handing it to eval.
func normalized(clean func(string) string, eval evaluator) evaluator {
	return func(ctx context.Context, value string) result {
		return eval(ctx, clean(value))
	}
}

// evaluate checks values concurrently and returns results in input order.
func evaluate(ctx context.Context, values []string, eval evaluator) ([]result, error) {
	results := make([]result, len(values))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, value := range values {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = eval(ctx, value)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// readValues returns the non-blank lines of r with line endings removed.
func readValues(r io.Reader) ([]string, error) {
	var values []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		values = append(values, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	if len(values) == 0 {
		return nil, errNoValues
	}
	return values, nil
}

func printUsage(flags *flag.FlagSet) {
	w := flags.Output()
	fmt.Fprintln(w, "usage: strvalid [-lang xx] [-output text|json] [-normalize] <check> <value|-> [params...]")
	fmt.Fprintln(w, "       strvalid [-lang xx] [-output text|json] [-normalize] card <number|->")
	fmt.Fprintln(w, "       strvalid [-lang xx] [-output text|json] password <value|->")
	fmt.Fprintln(w, "       strvalid checks")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "A value of - reads one value per line from stdin.")
	fmt.Fprintln(w)
	flags.PrintDefaults()
}
