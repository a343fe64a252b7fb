package entities

import "errors"

var ErrUnknownRole = errors.New("unknown role")

// Role describes what a signed-in user is allowed to do.
type Role interface {
	Name() string
}

// Administrator is a role that may add questions to the store.
type Administrator interface {
	Role
	CanAdminister() bool
}

// Player is a role that may take the quiz.
type Player interface {
	Role
	CanPlay() bool
}

// AdminRole can only manage questions.
type AdminRole struct{}

func (AdminRole) Name() string { return "Admin" }
func (AdminRole) CanAdminister() bool { return true }

// PlayerRole can only play.
type PlayerRole struct{}

func (PlayerRole) Name() string { return "Player" }
func (PlayerRole) CanPlay() bool { return true }

// RegisteredRole combines both capabilities.
type RegisteredRole struct {
	AdminRole
	PlayerRole
}

func (RegisteredRole) Name() string { return "Registered user" }

// RoleByChoice maps a role menu choice (1 admin, 2 player, 3 registered user) to a role.
func RoleByChoice(choice int) (Role, error) {
	switch choice {
	case 1:
		return AdminRole{}, nil
	case 2:
		return PlayerRole{}, nil
	case 3:
		return RegisteredRole{}, nil
	default:
		return nil, ErrUnknownRole
	}
}

// CanAdminister reports whether the role carries the admin capability.
func CanAdminister(r Role) bool {
	a, ok := r.(Administrator)
	return ok && a.CanAdminister()
}

// CanPlay reports whether the role carries the player capability.
func CanPlay(r Role) bool {
	p, ok := r.(Player)
	return ok && p.CanPlay()
}
