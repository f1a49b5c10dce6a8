// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Transaction is a wallet-relevant output found while scanning blocks.
type Transaction struct {
	TxID        string    `json:"txid"`
	BlockHeight uint64    `json:"block_height"`
	Address     string    `json:"address"`
	Value       int64     `json:"value"`
	Memo        string    `json:"memo,omitempty"`
	Unconfirmed bool      `json:"unconfirmed"`
	Datetime    time.Time `json:"datetime"`
}

// TransactionFilter narrows [Transaction] listings. Zero values mean "no
// restriction".
type TransactionFilter struct {
	Address    string
	FromHeight uint64
	Limit      uint64
}
