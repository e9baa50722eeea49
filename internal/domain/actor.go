package domain

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleMadmin   Role = "madmin" // department manager
	RoleEngineer Role = "engineer"
	RoleStaff    Role = "staff"
	RoleClient   Role = "client"
)

// RoleSet is the canonical representation of an actor's roles. The legacy
// single-role field is folded into this set when the actor is built.
type RoleSet map[Role]struct{}

func NewRoleSet(roles ...Role) RoleSet {
	s := make(RoleSet, len(roles))
	for _, r := range roles {
		if r != "" {
			s[r] = struct{}{}
		}
	}
	return s
}

func (s RoleSet) Has(r Role) bool {
	_, ok := s[r]
	return ok
}

func (s RoleSet) Strings() []string {
	out := make([]string, 0, len(s))
	for r := range s {
		out = append(out, string(r))
	}
	return out
}

// Actor is the per-request identity consumed by the scoped query layer and
// the booking ledger. Built from token claims by the auth middleware.
type Actor struct {
	ID            int64
	Username      string
	Roles         RoleSet
	DepartmentIDs []int64
	ClientID      *int64
}

func (a *Actor) IsAdmin() bool {
	return a.Roles.Has(RoleAdmin)
}

// IsDepartmentScoped reports whether the actor's visibility is limited to
// their assigned departments.
func (a *Actor) IsDepartmentScoped() bool {
	return !a.IsAdmin() && (a.Roles.Has(RoleMadmin) || a.Roles.Has(RoleEngineer))
}

func (a *Actor) HasDepartment(id int64) bool {
	for _, d := range a.DepartmentIDs {
		if d == id {
			return true
		}
	}
	return false
}

// FirstDepartment returns the actor's primary department, or 0 if the actor
// has no department assignments.
func (a *Actor) FirstDepartment() int64 {
	if len(a.DepartmentIDs) == 0 {
		return 0
	}
	return a.DepartmentIDs[0]
}
