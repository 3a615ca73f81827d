package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/doisnobolsoapp/pocket/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// A .env file may carry GEMINI_API_KEY or DNB_DATA_DIR.
	godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// Shell completion; exits early when invoked by the shell.
	sub := make(map[string]*complete.Command)
	for _, name := range cmd.Names() {
		sub[name] = &complete.Command{Flags: map[string]complete.Predictor{}}
	}
	completer := &complete.Command{
		Sub:   sub,
		Flags: map[string]complete.Predictor{"data-dir": predict.Dirs("*")},
	}
	completer.Complete("dnb")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
