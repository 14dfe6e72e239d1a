package config

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

// DecodeWatchedAddress parses the watched address as a mainnet Bitcoin
// address. Callers only warn on failure: the explorer remains the authority
// on which addresses it accepts.
func (c Config) DecodeWatchedAddress() (btcutil.Address, error) {
	return btcutil.DecodeAddress(c.WatchedAddress, &chaincfg.MainNetParams)
}
