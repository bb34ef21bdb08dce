// Command token mints bearer tokens for passcheck API clients.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/vaultpass/passcheck/internal/crypto"
)

type options struct {
	Client string        `short:"c" long:"client" description:"name of the API client the token is issued to" required:"true" value-name:"NAME"`
	Secret string        `short:"s" long:"secret" description:"signing secret shared with the API" env:"JWT_SECRET" value-name:"SECRET"`
	Expiry time.Duration `short:"e" long:"expiry" description:"token lifetime" default:"720h" value-name:"DURATION"`
}

func main() {
	godotenv.Load()

	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	token, err := crypto.GenerateToken(opts.Client, opts.Secret, opts.Expiry)
	if err != nil {
		fmt.Fprintln(os.Stderr, "token:", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
