package application

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/duocurve-network/duocurve-daemon/internal/core/domain"
	"github.com/duocurve-network/duocurve-daemon/internal/core/ports"
)

// OperatorService covers the administrative workflow: engine configuration,
// the 2-step authority hand-off, whitelist management and creator
// reassignment. Every operation is gated by an identity equality check
// against the stored config; callers are assumed pre-authenticated by the
// host.
type OperatorService interface {
	Configure(ctx context.Context, caller string, newConfig domain.Config) error
	GetConfig(ctx context.Context) (*domain.Config, error)
	NominateAuthority(ctx context.Context, caller, newAuthority string) error
	AcceptAuthority(ctx context.Context, caller string) error
	AddWhitelist(ctx context.Context, caller, address string) error
	ChangeCreator(ctx context.Context, caller, marketID, newCreator string) error
}

type operatorService struct {
	repoManager ports.RepoManager
}

// NewOperatorService returns the administrative service.
func NewOperatorService(repoManager ports.RepoManager) OperatorService {
	return &operatorService{repoManager: repoManager}
}

// Configure writes the engine config. The very first call bootstraps the
// deployment; afterwards only the stored authority may replace it. The
// pending authority is always reset by a reconfiguration.
func (o *operatorService) Configure(
	ctx context.Context, caller string, newConfig domain.Config,
) error {
	if err := newConfig.Validate(); err != nil {
		return err
	}

	return o.repoManager.ConfigRepository().UpdateConfig(
		ctx, func(c *domain.Config) (*domain.Config, error) {
			if c.Initialized && caller != c.Authority {
				return nil, ErrIncorrectAuthority
			}
			newConfig.Initialized = true
			newConfig.PendingAuthority = ""
			log.WithField("authority", newConfig.Authority).Info("config updated")
			return &newConfig, nil
		},
	)
}

func (o *operatorService) GetConfig(ctx context.Context) (*domain.Config, error) {
	return o.repoManager.ConfigRepository().GetConfig(ctx)
}

// NominateAuthority starts the 2-step ownership transfer.
func (o *operatorService) NominateAuthority(
	ctx context.Context, caller, newAuthority string,
) error {
	if newAuthority == "" {
		return ErrInvalidNewAuthority
	}
	return o.repoManager.ConfigRepository().UpdateConfig(
		ctx, func(c *domain.Config) (*domain.Config, error) {
			if !c.Initialized {
				return nil, domain.ErrConfigNotInitialized
			}
			if caller != c.Authority {
				return nil, ErrIncorrectAuthority
			}
			c.PendingAuthority = newAuthority
			return c, nil
		},
	)
}

// AcceptAuthority completes the hand-off: only the nominated identity may
// claim the authority role.
func (o *operatorService) AcceptAuthority(ctx context.Context, caller string) error {
	return o.repoManager.ConfigRepository().UpdateConfig(
		ctx, func(c *domain.Config) (*domain.Config, error) {
			if !c.Initialized {
				return nil, domain.ErrConfigNotInitialized
			}
			if c.PendingAuthority == "" || caller != c.PendingAuthority {
				return nil, ErrIncorrectAuthority
			}
			c.Authority = c.PendingAuthority
			c.PendingAuthority = ""
			log.WithField("authority", c.Authority).Info("authority hand-off completed")
			return c, nil
		},
	)
}

// AddWhitelist enables the discounted fee tier for an identity. The first
// swap timestamp stays zero until the identity's first swap.
func (o *operatorService) AddWhitelist(
	ctx context.Context, caller, address string,
) error {
	if address == "" {
		return ErrInvalidTrader
	}
	cfg, err := o.repoManager.ConfigRepository().GetConfig(ctx)
	if err != nil {
		return err
	}
	if caller != cfg.Authority {
		return ErrIncorrectAuthority
	}

	return o.repoManager.WhitelistRepository().AddWhitelist(
		ctx, &domain.Whitelist{Address: address, IsAllow: true},
	)
}

// ChangeCreator re-points the market's creator. Gated by the backend
// signing authority, not the market creator.
func (o *operatorService) ChangeCreator(
	ctx context.Context, caller, marketID, newCreator string,
) error {
	if newCreator == "" {
		return ErrInvalidTrader
	}
	cfg, err := o.repoManager.ConfigRepository().GetConfig(ctx)
	if err != nil {
		return err
	}
	if caller != cfg.BackendSignAuthority {
		return ErrIncorrectAuthority
	}

	return o.repoManager.MarketRepository().UpdateMarket(
		ctx, marketID, func(m *domain.Market) (*domain.Market, error) {
			m.Creator = newCreator
			return m, nil
		},
	)
}
