package ports

import (
	"github.com/duocurve-network/duocurve-daemon/internal/core/domain"
)

// RepoManager gives access to all the repositories of the daemon from a
// single place.
type RepoManager interface {
	ConfigRepository() domain.ConfigRepository
	MarketRepository() domain.MarketRepository
	WhitelistRepository() domain.WhitelistRepository
	TradeRepository() domain.TradeRepository

	// Close should be used to gracefully close the connection with the db.
	Close()
}
