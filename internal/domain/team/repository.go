package team

import "context"

// Repository describes team persistence needs from use cases.
// Returned teams never carry their roster; rosters live in player.Repository.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Team, bool, error)
	List(ctx context.Context, opts ListOptions) ([]Team, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, item Team) (Team, error)
	Update(ctx context.Context, item Team) (Team, error)
	Delete(ctx context.Context, id int64) error
}
