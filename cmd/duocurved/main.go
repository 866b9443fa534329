package main

import (
	"encoding/json"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/duocurve-network/duocurve-daemon/config"
)

func main() {
	app := cli.NewApp()

	app.Version = "0.1.0"
	app.Name = "duocurve daemon CLI"
	app.Usage = "Command line interface for the dual-curve exchange engine"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "caller",
			Usage: "the identity performing the command",
		},
	}
	app.Before = func(ctx *cli.Context) error {
		log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))
		return nil
	}
	app.Commands = append(
		app.Commands,
		&configure,
		&showconfig,
		&nominateauthority,
		&acceptauthority,
		&addwhitelist,
		&changecreator,
		&createmarket,
		&listmarkets,
		&showmarket,
		&swapcmd,
		&quote,
		&listtrades,
		&claim,
		&fund,
		&balance,
		&addwebhook,
		&removewebhook,
	)

	err := app.Run(os.Args)
	if err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[duocurved] %v\n", err)
	os.Exit(1)
}

func printRespJSON(resp interface{}) {
	buf, err := json.MarshalIndent(resp, "", "\t")
	if err != nil {
		fmt.Println("unable to decode response: ", err)
		return
	}
	fmt.Println(string(buf))
}
