package database

import (
	"errors"
	"log"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func GetMigrator(db *gorm.DB) *gormigrate.Gormigrate {
	migrator := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "0",
			Migrate: func(txn *gorm.DB) error {
				return txn.AutoMigrate(&Laptop{})
			},
			Rollback: func(txn *gorm.DB) error {
				return txn.Migrator().DropTable(&Laptop{})
			},
		},
		{
			ID:      "1",
			Migrate: seedCatalog,
		},
	})

	migrator.InitSchema(func(txn *gorm.DB) error {
		// This is run by the migrator if no previous migration is detected.
		// It creates the latest schema directly instead of replaying the
		// migrations one by one.

		log.Println("clean database detected, running full schema initialization")

		if err := txn.AutoMigrate(&Laptop{}); err != nil {
			return err
		}
		return seedCatalog(txn)
	})

	return migrator
}

// seedCatalog loads the demo catalog. Rows already present (by product name)
// are left alone so reruns are harmless.
func seedCatalog(txn *gorm.DB) error {
	for _, laptop := range demoCatalog {
		var existing Laptop
		err := txn.Where("productname = ?", laptop.ProductName).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		row := laptop
		if err := txn.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}
