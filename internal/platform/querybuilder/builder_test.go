package querybuilder

import (
	"reflect"
	"testing"
)

func TestToSQL(t *testing.T) {
	tests := []struct {
		name      string
		build     func() (string, []any, error)
		wantQuery string
		wantArgs  []any
	}{
		{
			name: "select with expr and limit",
			build: Select("*").From("seasons").
				Where(Expr("is_current"), Eq("is_visible", true)).
				OrderBy("start_date DESC", "id").
				Limit(1).
				ToSQL,
			wantQuery: "SELECT * FROM seasons WHERE is_current AND is_visible = $1 ORDER BY start_date DESC, id LIMIT 1",
			wantArgs:  []any{true},
		},
		{
			name: "expr binds question marks in order",
			build: Select("id").From("fixtures").
				Where(Eq("season_id", int64(10)), Expr("(home_team_id = ? OR away_team_id = ?)", int64(60), int64(61))).
				ToSQL,
			wantQuery: "SELECT id FROM fixtures WHERE season_id = $1 AND (home_team_id = $2 OR away_team_id = $3)",
			wantArgs:  []any{int64(10), int64(60), int64(61)},
		},
		{
			name: "multi row insert with conflict suffix",
			build: InsertInto("season_divisions").
				Columns("season_id", "division_id").
				Values(int64(10), int64(1)).
				Values(int64(10), int64(2)).
				Suffix("ON CONFLICT (season_id, division_id) DO NOTHING").
				ToSQL,
			wantQuery: "INSERT INTO season_divisions (season_id, division_id) VALUES ($1, $2), ($3, $4) ON CONFLICT (season_id, division_id) DO NOTHING",
			wantArgs:  []any{int64(10), int64(1), int64(10), int64(2)},
		},
		{
			name: "update returning",
			build: Update("club_infos").
				Set("approved", true).
				Where(Eq("id", int64(7))).
				Suffix("RETURNING *").
				ToSQL,
			wantQuery: "UPDATE club_infos SET approved = $1 WHERE id = $2 RETURNING *",
			wantArgs:  []any{true, int64(7)},
		},
		{
			name: "delete keeping newest rows",
			build: DeleteFrom("club_infos").
				Where(Eq("club_id", int64(4)), NotIn("id", []any{int64(9), int64(7)})).
				ToSQL,
			wantQuery: "DELETE FROM club_infos WHERE club_id = $1 AND id NOT IN ($2, $3)",
			wantArgs:  []any{int64(4), int64(9), int64(7)},
		},
		{
			name: "empty in lists",
			build: Select("id").From("teams").
				Where(In("id", nil), NotIn("club_id", nil)).
				ToSQL,
			wantQuery: "SELECT id FROM teams WHERE 1=0 AND 1=1",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			query, args, err := tc.build()
			if err != nil {
				t.Fatalf("ToSQL: %v", err)
			}
			if query != tc.wantQuery {
				t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", tc.wantQuery, query)
			}
			if len(args) != len(tc.wantArgs) || (len(args) > 0 && !reflect.DeepEqual(args, tc.wantArgs)) {
				t.Fatalf("unexpected args: %+v, want %+v", args, tc.wantArgs)
			}
		})
	}
}

func TestToSQL_Errors(t *testing.T) {
	tests := map[string]func() (string, []any, error){
		"select without table": Select("id").ToSQL,
		"insert without rows":  InsertInto("clubs").Columns("name").ToSQL,
		"insert row width":     InsertInto("clubs").Columns("name", "id").Values("Riverside").ToSQL,
		"update without sets":  Update("clubs").Where(Eq("id", 1)).ToSQL,
		"unconditional delete": DeleteFrom("club_infos").ToSQL,
	}
	for name, build := range tests {
		if _, _, err := build(); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestInsertModelSkipsReadonly(t *testing.T) {
	type row struct {
		ID       int64  `db:"id,readonly"`
		Name     string `db:"name"`
		Rank     int    `db:"rank"`
		internal string `db:"internal"`
		Ignored  string `db:"-"`
	}

	query, args, err := InsertModel("divisions", &row{ID: 3, Name: "Premier", Rank: 1, internal: "x"}, "RETURNING id")
	if err != nil {
		t.Fatalf("InsertModel: %v", err)
	}

	wantQuery := "INSERT INTO divisions (name, rank) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "Premier" || args[1] != 1 {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := InsertModel("divisions", (*row)(nil), ""); err == nil {
		t.Fatalf("expected error for nil model")
	}
}
