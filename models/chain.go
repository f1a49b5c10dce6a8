// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ChainType selects the network the wallet operates on. It is stored with the
// wallet so that a wallet file created for one network is never restored
// against another.
type ChainType string

const (
	Mainnet ChainType = "main"
	Testnet ChainType = "test"
	Regtest ChainType = "regtest"
)

// Valid reports whether c is one of the supported networks.
func (c ChainType) Valid() bool {
	switch c {
	case Mainnet, Testnet, Regtest:
		return true
	default:
		return false
	}
}

// LatestBlock is the chain-data server reply for the current chain tip.
type LatestBlock struct {
	Height uint64 `json:"height"`
	Hash   string `json:"hash"`
}

// ServerInfo describes the chain-data server the wallet is connected to.
type ServerInfo struct {
	Version                 string `json:"version"`
	Vendor                  string `json:"vendor"`
	ChainName               string `json:"chain_name"`
	BlockHeight             uint64 `json:"block_height"`
	SaplingActivationHeight uint64 `json:"sapling_activation_height"`
}

// CompactBlock is the reduced block representation served to light clients:
// enough to find the transactions that pay the wallet, nothing more.
type CompactBlock struct {
	Height uint64      `json:"height"`
	Hash   string      `json:"hash"`
	Time   time.Time   `json:"time"`
	Txs    []CompactTx `json:"txs"`
}

// CompactTx is a single output inside a [CompactBlock] or the mempool.
type CompactTx struct {
	TxID    string `json:"txid"`
	Address string `json:"address"`
	Value   int64  `json:"value"`
	Memo    string `json:"memo,omitempty"`
}
