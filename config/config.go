package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/btcsuite/btcd/btcutil"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	// DatadirKey is the local data directory to store the internal state of
	// the daemon
	DatadirKey = "DATA_DIR_PATH"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// DbTypeKey is the storage backend to use. Either "badger" or "inmemory"
	DbTypeKey = "DB_TYPE"
	// PubSubTypeKey is the event sink to use. Either "log" or "webhook"
	PubSubTypeKey = "PUBSUB_TYPE"
	// NoBreakerKey disables the circuit breaker guarding the settlement engine
	NoBreakerKey = "NO_BREAKER"

	DbLocation = "db"
	// LedgerStateFilename is where the settlement book is persisted between
	// CLI invocations
	LedgerStateFilename = "ledger.json"
	// HooksStateFilename is where the registered webhooks are persisted
	HooksStateFilename = "hooks.json"

	DbTypeBadger   = "badger"
	DbTypeInMemory = "inmemory"

	PubSubTypeLog     = "log"
	PubSubTypeWebhook = "webhook"
)

var vip *viper.Viper
var defaultDatadir = btcutil.AppDataDir("duocurve-daemon", false)

func init() {
	vip = viper.New()
	vip.SetEnvPrefix("DUOCURVE")
	vip.AutomaticEnv()

	vip.SetDefault(DatadirKey, defaultDatadir)
	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(DbTypeKey, DbTypeBadger)
	vip.SetDefault(PubSubTypeKey, PubSubTypeLog)
	vip.SetDefault(NoBreakerKey, false)

	if err := validate(); err != nil {
		log.WithError(err).Panic("error while validating config")
	}

	if err := initDatadir(); err != nil {
		log.WithError(err).Panic("error while creating datadir")
	}
}

//GetString ...
func GetString(key string) string {
	return vip.GetString(key)
}

//GetInt ...
func GetInt(key string) int {
	return vip.GetInt(key)
}

//GetBool ...
func GetBool(key string) bool {
	return vip.GetBool(key)
}

func GetDatadir() string {
	return GetString(DatadirKey)
}

// Set a value for the given key
func Set(key string, value interface{}) {
	vip.Set(key, value)
}

// IsSet returns whether the give key is set
func IsSet(key string) bool {
	return vip.IsSet(key)
}

func validate() error {
	datadir := GetString(DatadirKey)
	if len(datadir) <= 0 {
		return fmt.Errorf("datadir must not be null")
	}

	dbType := GetString(DbTypeKey)
	if dbType != DbTypeBadger && dbType != DbTypeInMemory {
		return fmt.Errorf(
			"db type must be either '%s' or '%s'", DbTypeBadger, DbTypeInMemory,
		)
	}

	pubsubType := GetString(PubSubTypeKey)
	if pubsubType != PubSubTypeLog && pubsubType != PubSubTypeWebhook {
		return fmt.Errorf(
			"pubsub type must be either '%s' or '%s'",
			PubSubTypeLog, PubSubTypeWebhook,
		)
	}
	return nil
}

func initDatadir() error {
	datadir := GetDatadir()
	return makeDirectoryIfNotExists(filepath.Join(datadir, DbLocation))
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0755)
	}
	return nil
}
