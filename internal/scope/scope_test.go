package scope

import (
	"testing"

	"studiodesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

type scopedRow struct {
	ID           int64 `gorm:"primaryKey"`
	DepartmentID int64
	ClientID     *int64
	CreatedBy    *int64
	UserID       int64
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: ":memory:"}),
		&gorm.Config{},
	)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&scopedRow{}))
	return db
}

func i64(v int64) *int64 { return &v }

func seedRows(t *testing.T, db *gorm.DB) {
	t.Helper()
	rows := []scopedRow{
		{ID: 1, DepartmentID: 1, ClientID: i64(10), CreatedBy: i64(100), UserID: 100},
		{ID: 2, DepartmentID: 1, ClientID: i64(11), CreatedBy: i64(101), UserID: 101},
		{ID: 3, DepartmentID: 2, ClientID: i64(10), CreatedBy: i64(102), UserID: 102},
		{ID: 4, DepartmentID: 3, ClientID: i64(12), CreatedBy: i64(100), UserID: 100},
	}
	require.NoError(t, db.Create(&rows).Error)
}

func idsOf(t *testing.T, db *gorm.DB, sc func(*gorm.DB) *gorm.DB) []int64 {
	t.Helper()
	var out []int64
	require.NoError(t, db.Model(&scopedRow{}).Scopes(sc).Order("id").Pluck("id", &out).Error)
	return out
}

func TestClients_AdminSeesEverything(t *testing.T) {
	db := openTestDB(t)
	seedRows(t, db)

	admin := &domain.Actor{ID: 1, Roles: domain.NewRoleSet(domain.RoleAdmin)}
	assert.Equal(t, []int64{1, 2, 3, 4}, idsOf(t, db, Clients(admin)))
}

func TestClients_MadminFilteredToAssignedDepartments(t *testing.T) {
	db := openTestDB(t)
	seedRows(t, db)

	madmin := &domain.Actor{ID: 2, Roles: domain.NewRoleSet(domain.RoleMadmin), DepartmentIDs: []int64{1, 3}}
	assert.Equal(t, []int64{1, 2, 4}, idsOf(t, db, Clients(madmin)))
}

func TestClients_MadminWithoutDepartmentsSeesNothing(t *testing.T) {
	db := openTestDB(t)
	seedRows(t, db)

	madmin := &domain.Actor{ID: 2, Roles: domain.NewRoleSet(domain.RoleMadmin)}
	assert.Empty(t, idsOf(t, db, Clients(madmin)))
}

func TestClients_BareStaffDeniedByDefault(t *testing.T) {
	db := openTestDB(t)
	seedRows(t, db)

	staff := &domain.Actor{ID: 100, Roles: domain.NewRoleSet(domain.RoleStaff)}
	assert.Empty(t, idsOf(t, db, Clients(staff)))
	assert.Empty(t, idsOf(t, db, Projects(staff)))
}

func TestBookings_EngineerScopedByDepartment(t *testing.T) {
	db := openTestDB(t)
	seedRows(t, db)

	eng := &domain.Actor{ID: 5, Roles: domain.NewRoleSet(domain.RoleEngineer), DepartmentIDs: []int64{2}}
	assert.Equal(t, []int64{3}, idsOf(t, db, Bookings(eng)))
}

func TestBookings_ClientSeesOnlyOwnClientRows(t *testing.T) {
	db := openTestDB(t)
	seedRows(t, db)

	client := &domain.Actor{ID: 9, Roles: domain.NewRoleSet(domain.RoleClient), ClientID: i64(10)}
	assert.Equal(t, []int64{1, 3}, idsOf(t, db, Bookings(client)))
	assert.Equal(t, []int64{1, 3}, idsOf(t, db, Invoices(client)))
}

func TestBookings_ClientCannotFetchForeignRowByID(t *testing.T) {
	db := openTestDB(t)
	seedRows(t, db)

	client := &domain.Actor{ID: 9, Roles: domain.NewRoleSet(domain.RoleClient), ClientID: i64(10)}

	// row 2 belongs to client 11; through the scope it does not exist
	var row scopedRow
	err := db.Scopes(Bookings(client)).Where("id = ?", 2).First(&row).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, db.Scopes(Bookings(client)).Where("id = ?", 1).First(&row).Error)
	assert.Equal(t, int64(1), row.ID)
}

func TestBookings_StaffSeesOnlyOwnCreations(t *testing.T) {
	db := openTestDB(t)
	seedRows(t, db)

	staff := &domain.Actor{ID: 100, Roles: domain.NewRoleSet(domain.RoleStaff)}
	assert.Equal(t, []int64{1, 4}, idsOf(t, db, Bookings(staff)))
}

func TestAttendance_StaffRestrictedToOwnUserID(t *testing.T) {
	db := openTestDB(t)
	seedRows(t, db)

	staff := &domain.Actor{ID: 100, Roles: domain.NewRoleSet(domain.RoleStaff)}
	assert.Equal(t, []int64{1, 4}, idsOf(t, db, Attendance(staff)))

	madmin := &domain.Actor{ID: 3, Roles: domain.NewRoleSet(domain.RoleMadmin), DepartmentIDs: []int64{2}}
	assert.Equal(t, []int64{3}, idsOf(t, db, Attendance(madmin)))
}

func TestExpenses_ClientDenied(t *testing.T) {
	db := openTestDB(t)
	seedRows(t, db)

	client := &domain.Actor{ID: 9, Roles: domain.NewRoleSet(domain.RoleClient), ClientID: i64(10)}
	assert.Empty(t, idsOf(t, db, Expenses(client)))
}

func TestCheckDepartmentWrite(t *testing.T) {
	admin := &domain.Actor{ID: 1, Roles: domain.NewRoleSet(domain.RoleAdmin)}
	madmin := &domain.Actor{ID: 2, Roles: domain.NewRoleSet(domain.RoleMadmin), DepartmentIDs: []int64{1, 2}}
	engineer := &domain.Actor{ID: 3, Roles: domain.NewRoleSet(domain.RoleEngineer), DepartmentIDs: []int64{1}}
	staff := &domain.Actor{ID: 4, Roles: domain.NewRoleSet(domain.RoleStaff)}

	assert.NoError(t, CheckDepartmentWrite(admin, 99))
	assert.NoError(t, CheckDepartmentWrite(madmin, 2))
	assert.ErrorIs(t, CheckDepartmentWrite(madmin, 3), ErrNoDepartmentAccess)
	assert.ErrorIs(t, CheckDepartmentWrite(engineer, 1), ErrNoDepartmentAccess)
	assert.ErrorIs(t, CheckDepartmentWrite(staff, 1), ErrNoDepartmentAccess)
}
