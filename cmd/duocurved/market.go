package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/duocurve-network/duocurve-daemon/internal/core/application"
	"github.com/duocurve-network/duocurve-daemon/internal/core/domain"
)

var createmarket = cli.Command{
	Name:  "createmarket",
	Usage: "launch a new market with fresh yes and no curves",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "yes-mint",
			Usage: "the yes outcome token mint",
		},
		&cli.StringFlag{
			Name:  "no-mint",
			Usage: "the no outcome token mint",
		},
		&cli.StringFlag{
			Name:  "info",
			Usage: "opaque market label attached to the market",
		},
		&cli.BoolFlag{
			Name:  "from-info",
			Usage: "derive the market id from the info label instead of the mint pair",
		},
	},
	Action: createMarketAction,
}

func createMarketAction(ctx *cli.Context) error {
	id, err := caller(ctx)
	if err != nil {
		return err
	}

	svc, cleanup, err := openServices()
	if err != nil {
		return err
	}
	defer cleanup()

	market, err := svc.market.CreateMarket(
		context.Background(), parseCreateMarketArgs(ctx, id),
	)
	if err != nil {
		return err
	}

	printRespJSON(market)
	return nil
}

func parseCreateMarketArgs(
	ctx *cli.Context, creator string,
) application.CreateMarketRequest {
	req := application.CreateMarketRequest{
		YesMint:    ctx.String("yes-mint"),
		NoMint:     ctx.String("no-mint"),
		Creator:    creator,
		MarketInfo: ctx.String("info"),
		MarketType: domain.MarketTypeMintPair,
	}
	if ctx.Bool("from-info") {
		req.MarketType = domain.MarketTypeInfoLabel
	}
	return req
}

var listmarkets = cli.Command{
	Name:   "listmarkets",
	Usage:  "list all created markets",
	Action: listMarketsAction,
}

func listMarketsAction(ctx *cli.Context) error {
	svc, cleanup, err := openServices()
	if err != nil {
		return err
	}
	defer cleanup()

	markets, err := svc.market.ListMarkets(context.Background())
	if err != nil {
		return err
	}

	printRespJSON(markets)
	return nil
}

var showmarket = cli.Command{
	Name:  "showmarket",
	Usage: "print the reserves of a market",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "market",
			Usage: "the market id",
		},
	},
	Action: showMarketAction,
}

func showMarketAction(ctx *cli.Context) error {
	svc, cleanup, err := openServices()
	if err != nil {
		return err
	}
	defer cleanup()

	market, err := svc.market.GetMarket(context.Background(), ctx.String("market"))
	if err != nil {
		return err
	}

	printRespJSON(market)
	return nil
}

var listtrades = cli.Command{
	Name:  "listtrades",
	Usage: "list settled trades of a market",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "market",
			Usage: "the market id",
		},
	},
	Action: listTradesAction,
}

func listTradesAction(ctx *cli.Context) error {
	svc, cleanup, err := openServices()
	if err != nil {
		return err
	}
	defer cleanup()

	trades, err := svc.market.ListTrades(context.Background(), ctx.String("market"))
	if err != nil {
		return err
	}

	printRespJSON(trades)
	return nil
}

var claim = cli.Command{
	Name:  "claim",
	Usage: "withdraw accrued creator fees of a market",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "market",
			Usage: "the market id",
		},
	},
	Action: claimAction,
}

func claimAction(ctx *cli.Context) error {
	id, err := caller(ctx)
	if err != nil {
		return err
	}

	svc, cleanup, err := openServices()
	if err != nil {
		return err
	}
	defer cleanup()

	claimed, err := svc.market.ClaimCreatorFees(
		context.Background(), ctx.String("market"), id,
	)
	if err != nil {
		return err
	}

	fmt.Println("claimed lamports:", claimed)
	return nil
}
