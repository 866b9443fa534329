package dbbadger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"

	"github.com/duocurve-network/duocurve-daemon/internal/core/domain"
	"github.com/duocurve-network/duocurve-daemon/internal/core/ports"
)

// repoManager holds all the badgerhold stores in a single data structure.
type repoManager struct {
	store      *badgerhold.Store
	eventStore *badgerhold.Store

	configRepository    domain.ConfigRepository
	marketRepository    domain.MarketRepository
	whitelistRepository domain.WhitelistRepository
	tradeRepository     domain.TradeRepository
}

// NewRepoManager opens (or creates if not exists) the badger stores on disk.
// It expects a base data dir and an optional logger. Market, config and
// whitelist records live in a main store, trade history in a dedicated one.
func NewRepoManager(baseDbDir string, logger badger.Logger) (ports.RepoManager, error) {
	mainDb, err := createDb(filepath.Join(baseDbDir, "main"), logger)
	if err != nil {
		return nil, fmt.Errorf("opening main db: %w", err)
	}

	eventDb, err := createDb(filepath.Join(baseDbDir, "trades"), logger)
	if err != nil {
		return nil, fmt.Errorf("opening trades db: %w", err)
	}

	return &repoManager{
		store:               mainDb,
		eventStore:          eventDb,
		configRepository:    newConfigRepositoryImpl(mainDb),
		marketRepository:    newMarketRepositoryImpl(mainDb),
		whitelistRepository: newWhitelistRepositoryImpl(mainDb),
		tradeRepository:     newTradeRepositoryImpl(eventDb),
	}, nil
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

func (r *repoManager) Close() {
	r.store.Close()
	r.eventStore.Close()
}

// JSONEncode is a custom JSON based encoder for badger.
func JSONEncode(value interface{}) ([]byte, error) {
	var buff bytes.Buffer

	en := json.NewEncoder(&buff)
	if err := en.Encode(value); err != nil {
		return nil, err
	}

	return buff.Bytes(), nil
}

// JSONDecode is a custom JSON based decoder for badger.
func JSONDecode(data []byte, value interface{}) error {
	de := json.NewDecoder(bytes.NewReader(data))
	return de.Decode(value)
}

func createDb(dbDir string, logger badger.Logger) (*badgerhold.Store, error) {
	opts := badger.DefaultOptions(dbDir)
	opts.Logger = logger

	return badgerhold.Open(badgerhold.Options{
		Encoder:          JSONEncode,
		Decoder:          JSONDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})
}
