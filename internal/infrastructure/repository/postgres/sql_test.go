package postgres

import (
	"database/sql"
	"fmt"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get team: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped ErrNoRows to be not found")
	}
	if isNotFound(fmt.Errorf("pq: relation teams does not exist")) {
		t.Fatalf("expected unrelated error to be reported")
	}
}

func TestNullInt64Ptr(t *testing.T) {
	if got := nullInt64ToPtr(sql.NullInt64{}); got != nil {
		t.Fatalf("expected nil, got %d", *got)
	}

	id := int64(42)
	got := nullInt64ToPtr(ptrToNullInt64(&id))
	if got == nil || *got != 42 {
		t.Fatalf("expected 42, got %v", got)
	}
	if ptrToNullInt64(nil).Valid {
		t.Fatalf("expected invalid null int")
	}
}

func TestNullFloat64Ptr(t *testing.T) {
	lat := 50.7236
	got := nullFloat64ToPtr(ptrToNullFloat64(&lat))
	if got == nil || *got != lat {
		t.Fatalf("expected %f, got %v", lat, got)
	}
	if nullFloat64ToPtr(sql.NullFloat64{}) != nil {
		t.Fatalf("expected nil for invalid float")
	}
}

func TestInt64sToAny(t *testing.T) {
	got := int64sToAny([]int64{3, 1})
	if len(got) != 2 || got[0] != int64(3) || got[1] != int64(1) {
		t.Fatalf("unexpected values: %v", got)
	}
}

func TestTeamRowToDomain(t *testing.T) {
	row := teamTableModel{
		ID:          7,
		SeasonID:    1,
		DivisionID:  2,
		ClubID:      3,
		HomeVenueID: 4,
		TeamName:    "Riverside A",
		HomeDay:     "tuesday",
		HomeTime:    "19:30:00",
		Approved:    true,
	}

	got, err := row.toDomain()
	if err != nil {
		t.Fatalf("convert team row: %v", err)
	}
	if got.HomeTime.Hour != 19 || got.HomeTime.Minute != 30 || got.HomeDay != "tuesday" {
		t.Fatalf("unexpected team: %+v", got)
	}

	row.HomeTime = "late"
	if _, err := row.toDomain(); err == nil {
		t.Fatalf("expected invalid home time to fail")
	}
}
