// Package inmemory provides a volatile implementation of the repositories,
// used by the test suites and as a throwaway backend.
package inmemory

import (
	"errors"

	"github.com/duocurve-network/duocurve-daemon/internal/core/domain"
	"github.com/duocurve-network/duocurve-daemon/internal/core/ports"
)

var (
	// ErrMarketNotFound ...
	ErrMarketNotFound = errors.New("market not found")
	// ErrWhitelistNotFound ...
	ErrWhitelistNotFound = errors.New("whitelist entry not found")
)

type repoManager struct {
	configRepository    *configRepository
	marketRepository    *marketRepository
	whitelistRepository *whitelistRepository
	tradeRepository     *tradeRepository
}

// NewRepoManager returns a repo manager backed by in-memory maps.
func NewRepoManager() ports.RepoManager {
	return &repoManager{
		configRepository:    &configRepository{},
		marketRepository:    &marketRepository{markets: map[string]domain.Market{}},
		whitelistRepository: &whitelistRepository{entries: map[string]domain.Whitelist{}},
		tradeRepository:     &tradeRepository{},
	}
}

func (r *repoManager) ConfigRepository() domain.ConfigRepository {
	return r.configRepository
}

func (r *repoManager) MarketRepository() domain.MarketRepository {
	return r.marketRepository
}

func (r *repoManager) WhitelistRepository() domain.WhitelistRepository {
	return r.whitelistRepository
}

func (r *repoManager) TradeRepository() domain.TradeRepository {
	return r.tradeRepository
}

func (r *repoManager) Close() {}
