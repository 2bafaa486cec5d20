package config

import (
	"fmt"
	"log"

	"factory-floor-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

// BuildDSN assembles the MySQL DSN from environment variables.
// Format: user:password@tcp(host:port)/dbname?charset=utf8mb4&parseTime=True&loc=Local
func BuildDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		GetEnv("DB_USER", "root"),
		GetEnv("DB_PASSWORD", ""),
		GetEnv("DB_HOST", "127.0.0.1"),
		GetEnv("DB_PORT", "3306"),
		GetEnv("DB_NAME", "factory_floor"),
	)
}

func ConnectDB() {
	// TranslateError makes duplicate-key and not-found conditions surface as
	// gorm.ErrDuplicatedKey/gorm.ErrRecordNotFound so they can be mapped to
	// the error taxonomy instead of leaking driver error text.
	db, err := gorm.Open(mysql.Open(BuildDSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect to database: " + err.Error())
	}

	sqlDB, err := db.DB()
	if err != nil {
		panic("failed to access database pool: " + err.Error())
	}
	sqlDB.SetMaxOpenConns(GetEnvAsInt("DB_MAX_OPEN_CONNS", 25))
	sqlDB.SetMaxIdleConns(GetEnvAsInt("DB_MAX_IDLE_CONNS", 5))

	log.Println("database connection established")

	if err := Migrate(db); err != nil {
		panic("failed to migrate database: " + err.Error())
	}

	DB = db
}

// Migrate creates/updates all tables from the model structs.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Department{},
		&model.ProductionLine{},
		&model.Station{},
		&model.Operator{},
		&model.Shift{},
		&model.ShiftAssignment{},
		&model.AttendanceLog{},
		&model.StationPerformance{},
	)
}
