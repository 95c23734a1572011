package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/tt-league/internal/domain/player"
	"github.com/riskibarqy/tt-league/internal/platform/dberr"
	qb "github.com/riskibarqy/tt-league/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	return r.selectPlayers(ctx, qb.Expr("TRUE"))
}

func (r *PlayerRepository) ListByClub(ctx context.Context, clubID int64) ([]player.Player, error) {
	return r.selectPlayers(ctx, qb.Eq("current_club_id", clubID))
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, playerIDs []int64) ([]player.Player, error) {
	return r.selectPlayers(ctx, qb.In("id", int64sToAny(playerIDs)))
}

func (r *PlayerRepository) selectPlayers(ctx context.Context, cond qb.Condition) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").
		Where(cond).
		OrderBy("surname", "forename", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int64) (player.Player, bool, error) {
	query, args, err := qb.Select("*").From("players").Where(qb.Eq("id", playerID)).ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) (player.Player, error) {
	query, args, err := qb.InsertModel("players", playerModelOf(p), "RETURNING id")
	if err != nil {
		return player.Player{}, fmt.Errorf("build insert player query: %w", err)
	}
	if err := r.db.GetContext(ctx, &p.ID, query, args...); err != nil {
		return player.Player{}, fmt.Errorf("insert player: %w", dberr.Classify(err))
	}
	return p, nil
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) error {
	model := playerModelOf(p)
	query, args, err := qb.Update("players").
		Set("forename", model.Forename).
		Set("surname", model.Surname).
		Set("date_of_birth", model.DateOfBirth).
		Set("current_club_id", model.CurrentClubID).
		Set("club_status", model.ClubStatus).
		Where(qb.Eq("id", p.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update player query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update player: %w", dberr.Classify(err))
	}
	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID int64) error {
	query, args, err := qb.DeleteFrom("players").Where(qb.Eq("id", playerID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete player query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete player: %w", dberr.Classify(err))
	}
	return nil
}
