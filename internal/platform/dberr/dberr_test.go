package dberr

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/lib/pq"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		code pq.ErrorCode
		want error
	}{
		{name: "unique", code: "23505", want: ErrUniqueViolation},
		{name: "foreign key", code: "23503", want: ErrForeignKeyViolation},
		{name: "check", code: "23514", want: ErrCheckViolation},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			raw := fmt.Errorf("insert team: %w", &pq.Error{Code: tc.code, Constraint: "teams_season_name_key"})
			err := Classify(raw)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if !IsIntegrity(err) {
				t.Fatalf("expected integrity error")
			}
			if !strings.Contains(err.Error(), "teams_season_name_key") {
				t.Fatalf("expected constraint name in %q", err.Error())
			}
		})
	}
}

func TestClassify_PassThrough(t *testing.T) {
	plain := errors.New("connection reset")
	if got := Classify(plain); got != plain {
		t.Fatalf("expected unchanged error, got %v", got)
	}
	if Classify(nil) != nil {
		t.Fatalf("expected nil")
	}
	other := &pq.Error{Code: "42P01"}
	if got := Classify(other); IsIntegrity(got) {
		t.Fatalf("expected undefined table to stay unclassified")
	}
}

func TestMemoryHelpers(t *testing.T) {
	if !errors.Is(Unique("players_name_dob_key"), ErrUniqueViolation) {
		t.Fatalf("expected unique violation")
	}
	if !errors.Is(ForeignKey("team_players_team_id_fkey"), ErrForeignKeyViolation) {
		t.Fatalf("expected foreign key violation")
	}
}
