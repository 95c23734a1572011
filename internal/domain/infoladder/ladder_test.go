package infoladder

import (
	"reflect"
	"testing"
	"time"
)

type snapshot struct {
	id       int64
	created  time.Time
	approved bool
}

func (s snapshot) VersionID() int64            { return s.id }
func (s snapshot) VersionCreatedAt() time.Time { return s.created }
func (s snapshot) VersionApproved() bool       { return s.approved }

var base = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func at(minutes int) time.Time {
	return base.Add(time.Duration(minutes) * time.Minute)
}

func TestLatestAndLatestApproved(t *testing.T) {
	records := []snapshot{
		{id: 1, created: at(0), approved: true},
		{id: 2, created: at(10), approved: true},
		{id: 3, created: at(20), approved: false},
	}

	latest, ok := Latest(records)
	if !ok || latest.id != 3 {
		t.Fatalf("unexpected latest: %+v", latest)
	}
	approved, ok := LatestApproved(records)
	if !ok || approved.id != 2 {
		t.Fatalf("unexpected latest approved: %+v", approved)
	}
	if !HasPending(records) {
		t.Fatalf("expected pending ladder")
	}
}

func TestLatest_TieBrokenByID(t *testing.T) {
	records := []snapshot{
		{id: 7, created: at(0)},
		{id: 9, created: at(0)},
		{id: 8, created: at(0)},
	}

	latest, _ := Latest(records)
	if latest.id != 9 {
		t.Fatalf("expected id 9, got %d", latest.id)
	}
}

func TestLatestApproved_Empty(t *testing.T) {
	if _, ok := LatestApproved([]snapshot{{id: 1, created: at(0)}}); ok {
		t.Fatalf("expected no approved record")
	}
	if _, ok := Latest[snapshot](nil); ok {
		t.Fatalf("expected no record for empty ladder")
	}
}

func TestSuperseded(t *testing.T) {
	tests := []struct {
		name    string
		records []snapshot
		keepID  int64
		want    []int64
	}{
		{
			name: "keeps new row and prior approved",
			records: []snapshot{
				{id: 1, created: at(0), approved: true},
				{id: 2, created: at(10), approved: true},
				{id: 3, created: at(20), approved: false},
				{id: 4, created: at(30), approved: false},
			},
			keepID: 4,
			want:   []int64{1, 3},
		},
		{
			name: "no approved row keeps only the new one",
			records: []snapshot{
				{id: 1, created: at(0)},
				{id: 2, created: at(10)},
			},
			keepID: 2,
			want:   []int64{1},
		},
		{
			name: "single row is already pruned",
			records: []snapshot{
				{id: 5, created: at(0)},
			},
			keepID: 5,
			want:   []int64{},
		},
		{
			name: "approved keep row does not retain an older approved row",
			records: []snapshot{
				{id: 1, created: at(0), approved: true},
				{id: 2, created: at(10), approved: true},
			},
			keepID: 2,
			want:   []int64{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Superseded(tc.records, tc.keepID)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("unexpected ids: got=%v want=%v", got, tc.want)
			}
		})
	}
}

func TestSuperseded_AtMostTwoSurvivors(t *testing.T) {
	records := make([]snapshot, 0, 10)
	for i := 1; i <= 10; i++ {
		records = append(records, snapshot{id: int64(i), created: at(i), approved: i%3 == 0})
	}

	purged := Superseded(records, 10)
	survivors := len(records) - len(purged)
	if survivors > 2 {
		t.Fatalf("expected at most 2 survivors, got %d", survivors)
	}

	purgedSet := make(map[int64]bool, len(purged))
	for _, id := range purged {
		purgedSet[id] = true
	}
	if purgedSet[10] || purgedSet[9] {
		t.Fatalf("expected new row 10 and approved row 9 to survive, purged=%v", purged)
	}
}

func TestSuperseded_Idempotent(t *testing.T) {
	records := []snapshot{
		{id: 1, created: at(0), approved: true},
		{id: 2, created: at(10)},
		{id: 3, created: at(20)},
	}

	purged := Superseded(records, 3)
	remaining := make([]snapshot, 0, len(records))
	for _, r := range records {
		drop := false
		for _, id := range purged {
			if r.id == id {
				drop = true
			}
		}
		if !drop {
			remaining = append(remaining, r)
		}
	}

	if again := Superseded(remaining, 3); len(again) != 0 {
		t.Fatalf("expected second prune to delete nothing, got %v", again)
	}
}
