package main

import (
	"fmt"
	"time"

	"github.com/saralchem/orderdesk/internal/config"
	"github.com/saralchem/orderdesk/internal/constants"
	"github.com/saralchem/orderdesk/internal/logger"
	"github.com/saralchem/orderdesk/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a development database with demo staff, customers, catalog and a
// couple of orders in different workflow stages.
func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("failed to migrate database: %v", err)
	}

	if err := models.InitDefaultStaff("admin", "admin123"); err != nil {
		stdLog.Fatalf("failed to create default staff: %v", err)
	}

	staff := []models.Staff{
		{Username: "sunita.sales", Role: constants.RoleSales},
		{Username: "wh.kanchan", Role: constants.RoleWarehouse},
		{Username: "manager.rk", Role: constants.RoleManager},
	}
	for i := range staff {
		hash, err := bcrypt.GenerateFromPassword([]byte("orderdesk123"), bcrypt.DefaultCost)
		if err != nil {
			stdLog.Fatalf("failed to hash password: %v", err)
		}
		staff[i].PasswordHash = string(hash)
		if err := models.DB.Where("username = ?", staff[i].Username).
			FirstOrCreate(&staff[i]).Error; err != nil {
			stdLog.Fatalf("failed to seed staff %s: %v", staff[i].Username, err)
		}
	}

	industrial := models.Category{Name: "Industrial Chemicals", SortOrder: 1}
	if err := models.DB.Where("name = ?", industrial.Name).FirstOrCreate(&industrial).Error; err != nil {
		stdLog.Fatalf("failed to seed category: %v", err)
	}
	solvents := models.Category{Name: "Solvents", ParentID: &industrial.ID, SortOrder: 1}
	pigments := models.Category{Name: "Pigments", ParentID: &industrial.ID, SortOrder: 2}
	for _, c := range []*models.Category{&solvents, &pigments} {
		if err := models.DB.Where("name = ?", c.Name).FirstOrCreate(c).Error; err != nil {
			stdLog.Fatalf("failed to seed category %s: %v", c.Name, err)
		}
	}

	products := []models.Product{
		{
			CategoryID: solvents.ID,
			Name:       "Isopropyl Alcohol 99%",
			HSNCode:    "29051220",
			Unit:       "drum",
			Price:      models.NewMoneyFromDecimal(decimal.NewFromInt(5400)),
			Variants:   models.StringArray{"25L", "50L", "200L"},
			IsActive:   true,
			SortOrder:  1,
		},
		{
			CategoryID: solvents.ID,
			Name:       "Toluene Industrial Grade",
			HSNCode:    "29023000",
			Unit:       "drum",
			Price:      models.NewMoneyFromDecimal(decimal.NewFromInt(4800)),
			Variants:   models.StringArray{"50L", "200L"},
			IsActive:   true,
			SortOrder:  2,
		},
		{
			CategoryID: pigments.ID,
			Name:       "Titanium Dioxide Rutile",
			HSNCode:    "32061110",
			Unit:       "bag",
			Price:      models.NewMoneyFromDecimal(decimal.NewFromInt(2600)),
			Variants:   models.StringArray{"25kg", "50kg"},
			IsActive:   true,
			SortOrder:  1,
		},
	}
	for i := range products {
		if err := models.DB.Where("name = ?", products[i].Name).
			FirstOrCreate(&products[i]).Error; err != nil {
			stdLog.Fatalf("failed to seed product %s: %v", products[i].Name, err)
		}
	}

	customers := []models.Customer{
		{
			Name:    "Mehta Coatings Pvt Ltd",
			Email:   "purchase@mehtacoatings.in",
			Phone:   "+91-9820012345",
			Company: "Mehta Coatings Pvt Ltd",
			GSTIN:   "27AABCM1234F1Z5",
			Address: "Plot 14, MIDC Taloja, Navi Mumbai",
			Status:  constants.CustomerStatusActive,
		},
		{
			Name:    "Shree Pigment Works",
			Email:   "orders@shreepigments.in",
			Phone:   "+91-9876501234",
			Company: "Shree Pigment Works",
			GSTIN:   "24AADFS5678K1Z2",
			Address: "GIDC Vatva, Ahmedabad",
			Status:  constants.CustomerStatusActive,
		},
	}
	for i := range customers {
		if err := models.DB.Where("email = ?", customers[i].Email).
			FirstOrCreate(&customers[i]).Error; err != nil {
			stdLog.Fatalf("failed to seed customer %s: %v", customers[i].Email, err)
		}
	}

	orders := []models.Order{
		{
			OrderNo:    fmt.Sprintf("SC%s100001", time.Now().Format("20060102")),
			CustomerID: customers[0].ID,
			Status:     constants.OrderStatusPlaced,
			Version:    1,
			Items: []models.OrderItem{
				{ProductID: products[0].ID, Variant: "200L", Name: products[0].Name, Unit: products[0].Unit, Quantity: 10},
				{ProductID: products[1].ID, Variant: "200L", Name: products[1].Name, Unit: products[1].Unit, Quantity: 4},
			},
		},
		{
			OrderNo:    fmt.Sprintf("SC%s100002", time.Now().Format("20060102")),
			CustomerID: customers[1].ID,
			Status:     constants.OrderStatusWarehouseProcessing,
			Version:    2,
			Items: []models.OrderItem{
				{ProductID: products[2].ID, Variant: "25kg", Name: products[2].Name, Unit: products[2].Unit, Quantity: 40},
			},
		},
	}
	for i := range orders {
		if err := models.DB.Where("order_no = ?", orders[i].OrderNo).
			FirstOrCreate(&orders[i]).Error; err != nil {
			stdLog.Fatalf("failed to seed order %s: %v", orders[i].OrderNo, err)
		}
	}

	stdLog.Printf("seed complete: %d staff, %d categories, %d products, %d customers, %d orders",
		len(staff)+1, 3, len(products), len(customers), len(orders))
}
