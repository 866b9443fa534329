package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
)

var nominateauthority = cli.Command{
	Name:  "nominateauthority",
	Usage: "nominate a new admin authority, step 1 of the ownership transfer",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "new-authority",
			Usage: "the identity nominated as the next authority",
		},
	},
	Action: nominateAuthorityAction,
}

func nominateAuthorityAction(ctx *cli.Context) error {
	id, err := caller(ctx)
	if err != nil {
		return err
	}

	svc, cleanup, err := openServices()
	if err != nil {
		return err
	}
	defer cleanup()

	newAuthority := ctx.String("new-authority")
	if err := svc.operator.NominateAuthority(
		context.Background(), id, newAuthority,
	); err != nil {
		return err
	}

	fmt.Println("nominated authority:", newAuthority)
	return nil
}

var acceptauthority = cli.Command{
	Name:   "acceptauthority",
	Usage:  "accept a pending nomination, step 2 of the ownership transfer",
	Action: acceptAuthorityAction,
}

func acceptAuthorityAction(ctx *cli.Context) error {
	id, err := caller(ctx)
	if err != nil {
		return err
	}

	svc, cleanup, err := openServices()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := svc.operator.AcceptAuthority(context.Background(), id); err != nil {
		return err
	}

	fmt.Println("authority transferred to:", id)
	return nil
}

var addwhitelist = cli.Command{
	Name:  "addwhitelist",
	Usage: "whitelist an identity for the discounted fee tier",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "address",
			Usage: "the identity to whitelist",
		},
	},
	Action: addWhitelistAction,
}

func addWhitelistAction(ctx *cli.Context) error {
	id, err := caller(ctx)
	if err != nil {
		return err
	}

	svc, cleanup, err := openServices()
	if err != nil {
		return err
	}
	defer cleanup()

	address := ctx.String("address")
	if err := svc.operator.AddWhitelist(
		context.Background(), id, address,
	); err != nil {
		return err
	}

	fmt.Println("whitelisted:", address)
	return nil
}

var changecreator = cli.Command{
	Name:  "changecreator",
	Usage: "re-point the creator of a market",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "market",
			Usage: "the market id",
		},
		&cli.StringFlag{
			Name:  "new-creator",
			Usage: "the identity taking over creator fees",
		},
	},
	Action: changeCreatorAction,
}

func changeCreatorAction(ctx *cli.Context) error {
	id, err := caller(ctx)
	if err != nil {
		return err
	}

	svc, cleanup, err := openServices()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := svc.operator.ChangeCreator(
		context.Background(), id, ctx.String("market"), ctx.String("new-creator"),
	); err != nil {
		return err
	}

	fmt.Println("creator updated")
	return nil
}
