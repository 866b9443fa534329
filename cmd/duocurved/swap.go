package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/duocurve-network/duocurve-daemon/internal/core/application"
	"github.com/duocurve-network/duocurve-daemon/internal/core/domain"
)

var swapFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "market",
		Usage: "the market id",
	},
	&cli.Uint64Flag{
		Name:  "amount",
		Usage: "lamports in for a buy, tokens in for a sell",
	},
	&cli.StringFlag{
		Name:  "direction",
		Usage: "either 'buy' or 'sell'",
	},
	&cli.StringFlag{
		Name:  "side",
		Usage: "either 'yes' or 'no'",
	},
}

var swapcmd = cli.Command{
	Name:  "swap",
	Usage: "trade against one curve of a market",
	Flags: append(swapFlags,
		&cli.Uint64Flag{
			Name:  "min-receive",
			Usage: "slippage bound, tokens for a buy, net lamports for a sell",
		},
	),
	Action: swapAction,
}

func swapAction(ctx *cli.Context) error {
	id, err := caller(ctx)
	if err != nil {
		return err
	}

	direction, side, err := parseSwapArgs(ctx)
	if err != nil {
		return err
	}

	svc, cleanup, err := openServices()
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := svc.swap.Swap(context.Background(), application.SwapRequest{
		MarketID:             ctx.String("market"),
		Trader:               id,
		Amount:               ctx.Uint64("amount"),
		Direction:            direction,
		Side:                 side,
		MinimumReceiveAmount: ctx.Uint64("min-receive"),
	})
	if err != nil {
		return err
	}

	printRespJSON(result)
	return nil
}

var quote = cli.Command{
	Name:   "quote",
	Usage:  "preview a swap without touching any balance",
	Flags:  swapFlags,
	Action: quoteAction,
}

func quoteAction(ctx *cli.Context) error {
	direction, side, err := parseSwapArgs(ctx)
	if err != nil {
		return err
	}

	svc, cleanup, err := openServices()
	if err != nil {
		return err
	}
	defer cleanup()

	preview, err := svc.swap.PreviewSwap(
		context.Background(),
		ctx.String("market"), ctx.Uint64("amount"), direction, side,
	)
	if err != nil {
		return err
	}

	printRespJSON(preview)
	return nil
}

func parseSwapArgs(
	ctx *cli.Context,
) (domain.TradeDirection, domain.Side, error) {
	var direction domain.TradeDirection
	switch ctx.String("direction") {
	case "buy":
		direction = domain.TradeBuy
	case "sell":
		direction = domain.TradeSell
	default:
		return 0, 0, fmt.Errorf("direction must be either 'buy' or 'sell'")
	}

	var side domain.Side
	switch ctx.String("side") {
	case "yes":
		side = domain.SideYes
	case "no":
		side = domain.SideNo
	default:
		return 0, 0, fmt.Errorf("side must be either 'yes' or 'no'")
	}

	return direction, side, nil
}
