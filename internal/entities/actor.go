package entities

type Role string

const (
	RoleBuyer   Role = "buyer"
	RoleSeller  Role = "seller"
	RoleCourier Role = "courier"
	RoleAdmin   Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) Valid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleCourier, RoleAdmin:
		return true
	default:
		return false
	}
}

// Actor аутентифицированный пользователь, приходит от identity провайдера и не перепроверяется.
type Actor struct {
	ID   string
	Role Role
	Name string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
