package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/tt-league/internal/domain/team"
	"github.com/riskibarqy/tt-league/internal/platform/dberr"
	qb "github.com/riskibarqy/tt-league/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context, filter team.Filter) ([]team.Team, error) {
	conds := []qb.Condition{qb.Expr("TRUE")}
	if filter.SeasonID != 0 {
		conds = append(conds, qb.Eq("season_id", filter.SeasonID))
	}
	if filter.DivisionID != 0 {
		conds = append(conds, qb.Eq("division_id", filter.DivisionID))
	}
	if filter.ClubID != 0 {
		conds = append(conds, qb.Eq("club_id", filter.ClubID))
	}
	return r.selectTeams(ctx, conds...)
}

func (r *TeamRepository) GetByIDs(ctx context.Context, teamIDs []int64) ([]team.Team, error) {
	return r.selectTeams(ctx, qb.In("id", int64sToAny(teamIDs)))
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	teams, err := r.selectTeams(ctx, qb.Eq("id", teamID))
	if err != nil {
		return team.Team{}, false, err
	}
	if len(teams) == 0 {
		return team.Team{}, false, nil
	}
	return teams[0], true, nil
}

func (r *TeamRepository) selectTeams(ctx context.Context, conds ...qb.Condition) ([]team.Team, error) {
	query, args, err := qb.Select(teamColumns...).From("teams").
		Where(conds...).
		OrderBy("LOWER(team_name)", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		t, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *TeamRepository) Create(ctx context.Context, t team.Team) (team.Team, error) {
	query, args, err := qb.InsertModel("teams", teamModelOf(t), "RETURNING id")
	if err != nil {
		return team.Team{}, fmt.Errorf("build insert team query: %w", err)
	}
	if err := r.db.GetContext(ctx, &t.ID, query, args...); err != nil {
		return team.Team{}, fmt.Errorf("insert team: %w", dberr.Classify(err))
	}
	return t, nil
}

func (r *TeamRepository) Update(ctx context.Context, t team.Team) error {
	model := teamModelOf(t)
	query, args, err := qb.Update("teams").
		Set("season_id", model.SeasonID).
		Set("division_id", model.DivisionID).
		Set("club_id", model.ClubID).
		Set("home_venue_id", model.HomeVenueID).
		Set("team_name", model.TeamName).
		Set("home_day", model.HomeDay).
		Set("home_time", model.HomeTime).
		Set("approved", model.Approved).
		Where(qb.Eq("id", t.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update team query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update team: %w", dberr.Classify(err))
	}
	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, teamID int64) error {
	query, args, err := qb.DeleteFrom("teams").Where(qb.Eq("id", teamID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete team query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete team: %w", dberr.Classify(err))
	}
	return nil
}

func (r *TeamRepository) ListMembers(ctx context.Context, teamID int64) ([]team.Member, error) {
	return r.selectMembers(ctx, qb.Eq("team_id", teamID))
}

func (r *TeamRepository) GetMembers(ctx context.Context, memberIDs []int64) ([]team.Member, error) {
	return r.selectMembers(ctx, qb.In("id", int64sToAny(memberIDs)))
}

func (r *TeamRepository) ListMembersByPlayerAndSeason(ctx context.Context, playerID, seasonID int64) ([]team.Member, error) {
	return r.selectMembers(ctx,
		qb.Eq("player_id", playerID),
		qb.Expr("team_id IN (SELECT id FROM teams WHERE season_id = ?)", seasonID),
	)
}

func (r *TeamRepository) GetMember(ctx context.Context, memberID int64) (team.Member, bool, error) {
	members, err := r.selectMembers(ctx, qb.Eq("id", memberID))
	if err != nil {
		return team.Member{}, false, err
	}
	if len(members) == 0 {
		return team.Member{}, false, nil
	}
	return members[0], true, nil
}

func (r *TeamRepository) selectMembers(ctx context.Context, conds ...qb.Condition) ([]team.Member, error) {
	query, args, err := qb.Select("*").From("team_players").Where(conds...).OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select team players query: %w", err)
	}

	var rows []teamPlayerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select team players: %w", err)
	}

	out := make([]team.Member, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TeamRepository) CreateMember(ctx context.Context, m team.Member) (team.Member, error) {
	model := teamPlayerTableModel{PlayerID: m.PlayerID, TeamID: m.TeamID, PaidFees: m.PaidFees}
	query, args, err := qb.InsertModel("team_players", model, "RETURNING id")
	if err != nil {
		return team.Member{}, fmt.Errorf("build insert team player query: %w", err)
	}
	if err := r.db.GetContext(ctx, &m.ID, query, args...); err != nil {
		return team.Member{}, fmt.Errorf("insert team player: %w", dberr.Classify(err))
	}
	return m, nil
}

func (r *TeamRepository) UpdateMember(ctx context.Context, m team.Member) error {
	query, args, err := qb.Update("team_players").
		Set("player_id", m.PlayerID).
		Set("team_id", m.TeamID).
		Set("paid_fees", m.PaidFees).
		Where(qb.Eq("id", m.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update team player query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update team player: %w", dberr.Classify(err))
	}
	return nil
}

func (r *TeamRepository) DeleteMember(ctx context.Context, memberID int64) error {
	query, args, err := qb.DeleteFrom("team_players").Where(qb.Eq("id", memberID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete team player query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete team player: %w", dberr.Classify(err))
	}
	return nil
}
