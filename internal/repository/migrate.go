package repository

import "gorm.io/gorm"

// AutoMigrate creates the schema for the sqlite development path. Postgres
// deployments use the SQL migrations instead, which additionally carry the
// booking no-overlap exclusion constraint.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&departmentModel{},
		&userModel{},
		&userRoleModel{},
		&userDepartmentModel{},
		&studioModel{},
		&clientModel{},
		&projectModel{},
		&bookingModel{},
		&attendanceModel{},
		&invoiceModel{},
		&expenseModel{},
		&blockedIPModel{},
	)
}
