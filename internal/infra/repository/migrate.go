package repository

import "gorm.io/gorm"

// Models lists every persisted model in migration order.
func Models() []any {
	return []any{
		&MedicationModel{},
		&VitalsModel{},
		&ContactModel{},
		&ProfileModel{},
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
