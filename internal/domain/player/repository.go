package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	GetByID(ctx context.Context, id int64) (Player, bool, error)
	ListByTeamIDs(ctx context.Context, teamIDs []int64) ([]Player, error)
	ExistsByName(ctx context.Context, firstName, lastName string) (bool, error)
	ExistsByAttributes(ctx context.Context, item Player) (bool, error)
	Create(ctx context.Context, item Player) (Player, error)
	Update(ctx context.Context, item Player) (Player, error)
	Delete(ctx context.Context, id int64) error
	DeleteByTeamID(ctx context.Context, teamID int64) error
}
