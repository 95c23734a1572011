// Package infoladder resolves append-only info histories where each edit adds
// a new snapshot and an approval flag marks the snapshots safe to publish.
package infoladder

import (
	"sort"
	"time"
)

// Record is one snapshot on a ladder.
type Record interface {
	VersionID() int64
	VersionCreatedAt() time.Time
	VersionApproved() bool
}

// Newer orders snapshots by creation time, then by id for equal timestamps.
func Newer(a, b Record) bool {
	at, bt := a.VersionCreatedAt(), b.VersionCreatedAt()
	if !at.Equal(bt) {
		return at.After(bt)
	}
	return a.VersionID() > b.VersionID()
}

// SortNewestFirst sorts records in place, newest first.
func SortNewestFirst[T Record](records []T) {
	sort.SliceStable(records, func(i, j int) bool {
		return Newer(records[i], records[j])
	})
}

// Latest returns the newest record regardless of approval.
func Latest[T Record](records []T) (T, bool) {
	return latestWhere(records, func(T) bool { return true })
}

// LatestApproved returns the newest approved record.
func LatestApproved[T Record](records []T) (T, bool) {
	return latestWhere(records, func(r T) bool { return r.VersionApproved() })
}

// LatestApprovedExcluding is LatestApproved ignoring the record with id.
func LatestApprovedExcluding[T Record](records []T, id int64) (T, bool) {
	return latestWhere(records, func(r T) bool {
		return r.VersionApproved() && r.VersionID() != id
	})
}

// HasPending reports whether the newest record is still awaiting approval.
func HasPending[T Record](records []T) bool {
	latest, ok := Latest(records)
	return ok && !latest.VersionApproved()
}

// Superseded lists the ids to purge after keepID was inserted: everything
// except keepID and the newest approved record other than keepID.
func Superseded[T Record](records []T, keepID int64) []int64 {
	retain := map[int64]struct{}{keepID: {}}
	if approved, ok := LatestApprovedExcluding(records, keepID); ok {
		retain[approved.VersionID()] = struct{}{}
	}

	out := make([]int64, 0, len(records))
	for _, r := range records {
		if _, ok := retain[r.VersionID()]; ok {
			continue
		}
		out = append(out, r.VersionID())
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Unapproved lists the ids of records that are not approved.
func Unapproved[T Record](records []T) []int64 {
	out := make([]int64, 0, len(records))
	for _, r := range records {
		if !r.VersionApproved() {
			out = append(out, r.VersionID())
		}
	}
	return out
}

func latestWhere[T Record](records []T, keep func(T) bool) (T, bool) {
	var (
		best  T
		found bool
	)
	for _, r := range records {
		if !keep(r) {
			continue
		}
		if !found || Newer(r, best) {
			best = r
			found = true
		}
	}
	return best, found
}
