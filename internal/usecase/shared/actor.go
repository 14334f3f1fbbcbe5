package shared

import (
	"storebook/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the already-authenticated identity behind a request. The
// lifecycle operations receive it as an explicit parameter; nothing in
// the usecase layer reads ambient session state.
type Actor struct {
	id   uuid.UUID
	role user.Role
}

func NewCustomerActor(id uuid.UUID) Actor {
	return Actor{id: id, role: user.RoleCustomer}
}

func NewMerchantActor(id uuid.UUID) Actor {
	return Actor{id: id, role: user.RoleMerchant}
}

func NewActor(id uuid.UUID, role user.Role) Actor {
	return Actor{id: id, role: role}
}

func (a Actor) ID() uuid.UUID   { return a.id }
func (a Actor) Role() user.Role { return a.role }

func (a Actor) IsCustomer() bool { return a.role == user.RoleCustomer }
func (a Actor) IsMerchant() bool { return a.role == user.RoleMerchant }
