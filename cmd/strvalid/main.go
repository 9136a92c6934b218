// Command strvalid runs string checks from the command line.
//
//	strvalid [-lang xx] [-output text|json] [-normalize] <check> <value> [params...]
//	strvalid checks
//	strvalid card 4111111111111111
//	strvalid password 'Secr3t!pass'
//	cat emails.txt | strvalid email -
//	strvalid -normalize card "4111 1111 1111 1111"
//
// It exits with 0 when every value passes, 1 when any fails and 2 on usage or
// configuration errors.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/strvalid/pkg/config"
)

// Config is read from the environment and an optional .env file.
type Config struct {
	Env               string `env:"STRVALID_ENV" envDefault:"development"`
	Service           string `env:"STRVALID_SERVICE" envDefault:"strvalid"`
	LogLevel          string `env:"STRVALID_LOG_LEVEL" envDefault:"info"`
	Lang              string `env:"STRVALID_LANG" envDefault:"en"`
	Output            string `env:"STRVALID_OUTPUT" envDefault:"text"`
	PasswordMinLength int    `env:"STRVALID_PASSWORD_MIN_LENGTH" envDefault:"8"`
	Normalize         bool   `env:"STRVALID_NORMALIZE" envDefault:"false"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "strvalid: %v\n", err)
		os.Exit(exitUsage)
	}

	code := run(ctx, cfg, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
