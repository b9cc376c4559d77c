package database

import (
	"log"

	"hrms/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Init(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		// employeeId/candidateId references are logical only; the schema
		// must keep accepting rows whose reference does not resolve
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, err
	}

	// Auto migrate the schema
	err = db.AutoMigrate(
		&models.User{},
		&models.Candidate{},
		&models.Employee{},
		&models.Attendance{},
		&models.Leave{},
	)
	if err != nil {
		return nil, err
	}

	// Seed default admin if not exists
	if err := seedDefaultAdmin(db); err != nil {
		return nil, err
	}

	return db, nil
}

func seedDefaultAdmin(db *gorm.DB) error {
	var count int64
	db.Model(&models.User{}).Where("username = ?", "admin").Count(&count)
	if count > 0 {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Username: "admin",
		FullName: "Administrator",
		Password: string(hashedPassword),
		Role:     models.RoleHR,
	}

	result := db.Create(&admin)
	if result.Error != nil {
		return result.Error
	}

	log.Println("Default admin user created (username: admin, password: admin)")
	return nil
}
