// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncStatus is the snapshot returned by the syncstatus command. It is the
// only way callers observe the progress of a detached sync, rescan or import.
type SyncStatus struct {
	SyncID           uint64 `json:"sync_id"`
	InProgress       bool   `json:"in_progress"`
	LastError        string `json:"last_error,omitempty"`
	StartBlock       uint64 `json:"start_block"`
	EndBlock         uint64 `json:"end_block"`
	SyncedBlocks     uint64 `json:"synced_blocks"`
	TotalBlocks      uint64 `json:"total_blocks"`
	LastSyncedHeight uint64 `json:"last_synced_height"`
}
