package domain

import "errors"

var (
	ErrSnapshotNotFound  = errors.New("snapshot not found")
	ErrSnapshotCorrupt   = errors.New("snapshot corrupt")
	ErrSnapshotPersist   = errors.New("snapshot persist failed")
	ErrRefreshInProgress = errors.New("refresh already in progress")
	ErrPriceNotFound     = errors.New("price not found")
	ErrNoMatchingCoins   = errors.New("no matching coins")
)
