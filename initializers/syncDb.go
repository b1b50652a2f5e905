package initializers

import (
	"log"

	"github.com/Kariqs/foodcourt-api/models"
	"gorm.io/gorm"
)

func SyncDatabase() {
	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database synced successfully.")

	if !AppConfig.SeedDefaults {
		return
	}
	if err := SeedDefaults(DB); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Item{},
		&models.Customer{},
		&models.Waiter{},
		&models.Order{},
		&models.OrderItem{},
		&models.DayEndReport{},
	)
}

func strPtr(s string) *string { return &s }

var defaultItems = []models.Item{
	{Name: "Veg Sandwich", PriceCents: 12000},
	{Name: "Masala Dosa", PriceCents: 15000},
	{Name: "Pav Bhaji", PriceCents: 18000},
	{Name: "Cold Coffee", PriceCents: 9000},
	{Name: "Fresh Lime Soda", PriceCents: 7000},
	{Name: "Paneer Tikka", PriceCents: 21000},
}

var defaultWaiters = []models.Waiter{
	{Name: "Asha", Phone: strPtr("9876543210"), Status: models.WaiterFree},
	{Name: "Ravi", Phone: strPtr("9876512345"), Status: models.WaiterFree},
	{Name: "Meena", Phone: strPtr("9876509876"), Status: models.WaiterFree},
}

// SeedDefaults fills the catalog and the waiter roster, but only tables that are empty.
func SeedDefaults(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var itemCount int64
		if err := tx.Model(&models.Item{}).Count(&itemCount).Error; err != nil {
			return err
		}
		if itemCount == 0 {
			items := append([]models.Item(nil), defaultItems...)
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
			log.Printf("Seeded %d catalog items.", len(items))
		}

		var waiterCount int64
		if err := tx.Model(&models.Waiter{}).Count(&waiterCount).Error; err != nil {
			return err
		}
		if waiterCount == 0 {
			waiters := append([]models.Waiter(nil), defaultWaiters...)
			if err := tx.Create(&waiters).Error; err != nil {
				return err
			}
			log.Printf("Seeded %d waiters.", len(waiters))
		}
		return nil
	})
}
