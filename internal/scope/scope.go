// Package scope implements the permission-scoped read filters applied to
// every list/get of clients, projects, bookings, attendance and financial
// records, plus the department write guard. Filters are plain gorm scopes so
// repositories can chain them onto any query.
package scope

import (
	"errors"

	"studiodesk/internal/domain"

	"gorm.io/gorm"
)

var ErrNoDepartmentAccess = errors.New("no access to this department")

// denyAll yields an empty result set. Deny-by-default is a result, not an
// error: an actor without an elevated role gets an empty list.
func denyAll(db *gorm.DB) *gorm.DB {
	return db.Where("1 = 0")
}

func departmentIn(a *domain.Actor) func(*gorm.DB) *gorm.DB {
	ids := a.DepartmentIDs
	return func(db *gorm.DB) *gorm.DB {
		if len(ids) == 0 {
			return denyAll(db)
		}
		return db.Where("department_id IN ?", ids)
	}
}

// Clients scopes reads of client records.
func Clients(a *domain.Actor) func(*gorm.DB) *gorm.DB {
	switch {
	case a.IsAdmin():
		return passThrough
	case a.IsDepartmentScoped():
		return departmentIn(a)
	default:
		return denyAll
	}
}

// Projects scopes reads of project records by the project's own department.
func Projects(a *domain.Actor) func(*gorm.DB) *gorm.DB {
	switch {
	case a.IsAdmin():
		return passThrough
	case a.IsDepartmentScoped():
		return departmentIn(a)
	default:
		return denyAll
	}
}

// Bookings scopes calendar reads. Client actors see bookings linked to their
// own client record; bare staff see only bookings they created.
func Bookings(a *domain.Actor) func(*gorm.DB) *gorm.DB {
	switch {
	case a.IsAdmin():
		return passThrough
	case a.IsDepartmentScoped():
		return departmentIn(a)
	case a.Roles.Has(domain.RoleClient) && a.ClientID != nil:
		id := *a.ClientID
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("client_id = ?", id)
		}
	default:
		id := a.ID
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("created_by = ?", id)
		}
	}
}

// Attendance scopes attendance reads; non-elevated actors see only their own
// records.
func Attendance(a *domain.Actor) func(*gorm.DB) *gorm.DB {
	switch {
	case a.IsAdmin():
		return passThrough
	case a.IsDepartmentScoped():
		return departmentIn(a)
	default:
		id := a.ID
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("user_id = ?", id)
		}
	}
}

// Invoices scopes invoice reads. Client actors see their own invoices.
func Invoices(a *domain.Actor) func(*gorm.DB) *gorm.DB {
	switch {
	case a.IsAdmin():
		return passThrough
	case a.IsDepartmentScoped():
		return departmentIn(a)
	case a.Roles.Has(domain.RoleClient) && a.ClientID != nil:
		id := *a.ClientID
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("client_id = ?", id)
		}
	default:
		return denyAll
	}
}

// Expenses scopes expense reads; only admins and department-scoped roles see
// any rows.
func Expenses(a *domain.Actor) func(*gorm.DB) *gorm.DB {
	switch {
	case a.IsAdmin():
		return passThrough
	case a.IsDepartmentScoped():
		return departmentIn(a)
	default:
		return denyAll
	}
}

func passThrough(db *gorm.DB) *gorm.DB { return db }

// CheckDepartmentWrite validates that the actor may write a record owned by
// departmentID. It runs on create and update independently of the read
// scoping above, because a write could target a department the actor cannot
// normally see.
func CheckDepartmentWrite(a *domain.Actor, departmentID int64) error {
	if a.IsAdmin() {
		return nil
	}
	if a.Roles.Has(domain.RoleMadmin) && a.HasDepartment(departmentID) {
		return nil
	}
	return ErrNoDepartmentAccess
}
