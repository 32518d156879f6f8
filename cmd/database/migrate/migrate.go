package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"guia-compras/entities"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Receipt{}); err != nil {
		log.Fatalf("Error migrating receipt database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.LineItem{}); err != nil {
		log.Fatalf("Error migrating line item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Bill{}); err != nil {
		log.Fatalf("Error migrating bill database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
