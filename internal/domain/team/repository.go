package team

import "context"

// Repository describes team and team roster persistence.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Team, error)
	GetByID(ctx context.Context, teamID int64) (Team, bool, error)
	GetByIDs(ctx context.Context, teamIDs []int64) ([]Team, error)
	Create(ctx context.Context, t Team) (Team, error)
	Update(ctx context.Context, t Team) error
	Delete(ctx context.Context, teamID int64) error

	ListMembers(ctx context.Context, teamID int64) ([]Member, error)
	GetMember(ctx context.Context, memberID int64) (Member, bool, error)
	GetMembers(ctx context.Context, memberIDs []int64) ([]Member, error)
	ListMembersByPlayerAndSeason(ctx context.Context, playerID, seasonID int64) ([]Member, error)
	CreateMember(ctx context.Context, m Member) (Member, error)
	UpdateMember(ctx context.Context, m Member) error
	DeleteMember(ctx context.Context, memberID int64) error
}
