package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
)

var fund = cli.Command{
	Name:  "fund",
	Usage: "credit lamports to an account of the local settlement ledger",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "account",
			Usage: "the account to credit",
		},
		&cli.Uint64Flag{
			Name:  "amount",
			Usage: "the amount of lamports",
		},
	},
	Action: fundAction,
}

func fundAction(ctx *cli.Context) error {
	svc, cleanup, err := openServices()
	if err != nil {
		return err
	}
	defer cleanup()

	account := ctx.String("account")
	amount := ctx.Uint64("amount")
	if err := svc.ledger.FundSOL(account, amount); err != nil {
		return err
	}

	fmt.Printf("credited %d lamports to %s\n", amount, account)
	return nil
}

var balance = cli.Command{
	Name:  "balance",
	Usage: "print the balances of an account",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "account",
			Usage: "the account to inspect",
		},
		&cli.StringFlag{
			Name:  "mint",
			Usage: "also print the balance of this token",
		},
	},
	Action: balanceAction,
}

func balanceAction(ctx *cli.Context) error {
	svc, cleanup, err := openServices()
	if err != nil {
		return err
	}
	defer cleanup()

	account := ctx.String("account")
	solBalance, err := svc.ledger.BalanceOf(context.Background(), account)
	if err != nil {
		return err
	}
	fmt.Println("lamports:", solBalance)

	if mint := ctx.String("mint"); mint != "" {
		tokenBalance, err := svc.ledger.TokenBalanceOf(
			context.Background(), mint, account,
		)
		if err != nil {
			return err
		}
		fmt.Println("tokens:", tokenBalance)
	}
	return nil
}
