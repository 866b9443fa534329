package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/duocurve-network/duocurve-daemon/internal/core/domain"
)

var configure = cli.Command{
	Name:  "configure",
	Usage: "initialize or replace the engine configuration",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "authority",
			Usage: "the admin identity allowed to reconfigure the engine",
		},
		&cli.StringFlag{
			Name:  "backend-sign-authority",
			Usage: "the identity allowed to re-point market creators",
		},
		&cli.StringFlag{
			Name:  "team-wallet",
			Usage: "the account receiving platform fees",
		},
		&cli.StringFlag{
			Name:  "team-wallet2",
			Usage: "the account receiving skimmed real reserves",
		},
		&cli.Uint64Flag{
			Name:  "platform-buy-fee",
			Usage: "standard platform buy fee in basis points",
		},
		&cli.Uint64Flag{
			Name:  "platform-sell-fee",
			Usage: "standard platform sell fee in basis points",
		},
		&cli.Uint64Flag{
			Name:  "platform-buy-small-fee",
			Usage: "discounted platform buy fee in basis points",
		},
		&cli.Uint64Flag{
			Name:  "platform-sell-small-fee",
			Usage: "discounted platform sell fee in basis points",
		},
		&cli.Uint64Flag{
			Name:  "creator-buy-fee",
			Usage: "creator buy fee in basis points",
		},
		&cli.Uint64Flag{
			Name:  "creator-sell-fee",
			Usage: "creator sell fee in basis points",
		},
		&cli.Uint64Flag{
			Name:  "token-supply",
			Usage: "supply minted per outcome token at market creation",
		},
		&cli.UintFlag{
			Name:  "token-decimals",
			Usage: "decimals of the outcome tokens",
			Value: 6,
		},
		&cli.Uint64Flag{
			Name:  "initial-virtual-yes-token",
			Usage: "virtual token seeding of the yes curve",
		},
		&cli.Uint64Flag{
			Name:  "initial-virtual-yes-sol",
			Usage: "virtual lamport seeding of the yes curve",
		},
		&cli.Uint64Flag{
			Name:  "initial-real-yes-token",
			Usage: "real token seeding of the yes curve",
		},
		&cli.Uint64Flag{
			Name:  "initial-virtual-no-token",
			Usage: "virtual token seeding of the no curve",
		},
		&cli.Uint64Flag{
			Name:  "initial-virtual-no-sol",
			Usage: "virtual lamport seeding of the no curve",
		},
		&cli.Uint64Flag{
			Name:  "initial-real-no-token",
			Usage: "real token seeding of the no curve",
		},
		&cli.Int64Flag{
			Name:  "limit-timestamp",
			Usage: "the fee discount window in seconds after a first swap",
		},
		&cli.Float64Flag{
			Name:  "cross-sol-factor",
			Usage: "fraction of a buy migrated to the opposite curve, in [0, 1]",
		},
		&cli.Uint64Flag{
			Name:  "min-sol-liquidity",
			Usage: "lamport floor no shift may push a curve below",
		},
	},
	Action: configureAction,
}

func configureAction(ctx *cli.Context) error {
	id, err := caller(ctx)
	if err != nil {
		return err
	}

	svc, cleanup, err := openServices()
	if err != nil {
		return err
	}
	defer cleanup()

	newConfig := domain.Config{
		Authority:            ctx.String("authority"),
		BackendSignAuthority: ctx.String("backend-sign-authority"),
		TeamWallet:           ctx.String("team-wallet"),
		TeamWallet2:          ctx.String("team-wallet2"),
		PlatformBuyFee:       ctx.Uint64("platform-buy-fee"),
		PlatformSellFee:      ctx.Uint64("platform-sell-fee"),
		PlatformBuySmallFee:  ctx.Uint64("platform-buy-small-fee"),
		PlatformSellSmallFee: ctx.Uint64("platform-sell-small-fee"),
		CreatorBuyFee:        ctx.Uint64("creator-buy-fee"),
		CreatorSellFee:       ctx.Uint64("creator-sell-fee"),
		TokenSupply:          ctx.Uint64("token-supply"),
		TokenDecimals:        uint8(ctx.Uint("token-decimals")),

		InitialVirtualYesTokenReserves: ctx.Uint64("initial-virtual-yes-token"),
		InitialVirtualYesSolReserves:   ctx.Uint64("initial-virtual-yes-sol"),
		InitialRealYesTokenReserves:    ctx.Uint64("initial-real-yes-token"),
		InitialVirtualNoTokenReserves:  ctx.Uint64("initial-virtual-no-token"),
		InitialVirtualNoSolReserves:    ctx.Uint64("initial-virtual-no-sol"),
		InitialRealNoTokenReserves:     ctx.Uint64("initial-real-no-token"),

		LimitTimestamp:  ctx.Int64("limit-timestamp"),
		CrossSolFactor:  ctx.Float64("cross-sol-factor"),
		MinSolLiquidity: ctx.Uint64("min-sol-liquidity"),
	}

	if err := svc.operator.Configure(
		context.Background(), id, newConfig,
	); err != nil {
		return err
	}

	printRespJSON(newConfig)
	return nil
}

var showconfig = cli.Command{
	Name:   "showconfig",
	Usage:  "print the current engine configuration",
	Action: showConfigAction,
}

func showConfigAction(ctx *cli.Context) error {
	svc, cleanup, err := openServices()
	if err != nil {
		return err
	}
	defer cleanup()

	cfg, err := svc.operator.GetConfig(context.Background())
	if err != nil {
		return err
	}

	printRespJSON(cfg)
	return nil
}
