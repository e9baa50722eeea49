package main

import (
	"context"
	"log"
	"time"

	"studiodesk/internal/config"
	"studiodesk/internal/database"
	"studiodesk/internal/domain"
	"studiodesk/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config failed:", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	if err := database.Migrate(db, cfg.DatabaseURL); err != nil {
		log.Fatal("migrate failed:", err)
	}

	ctx := context.Background()

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM expenses")
	db.Exec("DELETE FROM invoices")
	db.Exec("DELETE FROM attendance_records")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM projects")
	db.Exec("DELETE FROM clients")
	db.Exec("DELETE FROM user_departments")
	db.Exec("DELETE FROM user_roles")
	db.Exec("DELETE FROM users")
	db.Exec("DELETE FROM studios")
	db.Exec("DELETE FROM departments")
	db.Exec("DELETE FROM blocked_ips")

	departmentRepo := repository.NewDepartmentRepository(db)
	userRepo := repository.NewUserRepository(db)
	studioRepo := repository.NewStudioRepository(db)
	clientRepo := repository.NewClientRepository(db)

	log.Println("Creating departments...")
	departments := []domain.Department{
		{ID: 1, Name: "Recording"},
		{ID: 2, Name: "Photography"},
		{ID: 3, Name: "Outside Services"},
	}
	for i := range departments {
		if err := departmentRepo.Create(ctx, &departments[i]); err != nil {
			log.Fatal("department seed failed:", err)
		}
	}

	log.Println("Creating studios...")
	promo := 90.0
	halfDay := 500.0
	fullDay := 900.0
	studios := []domain.Studio{
		{
			Name:       "Control Room A",
			Type:       domain.StudioRecording,
			HourlyRate: 100,
			PromoRate:  &promo,
			Pricing:    domain.PricingStructure{HalfDayRate: &halfDay, FullDayRate: &fullDay},
			Capacity:   8,
			Features:   []string{"SSL console", "vocal booth", "grand piano"},
			IsActive:   true,
		},
		{
			Name:       "Daylight Stage",
			Type:       domain.StudioPhotography,
			HourlyRate: 80,
			Capacity:   12,
			Features:   []string{"cyclorama", "north-facing windows"},
			IsActive:   true,
		},
		{
			Name:       "Mobile Unit",
			Type:       domain.StudioOutside,
			HourlyRate: 150,
			Capacity:   4,
			Features:   []string{"location kit", "generator"},
			IsActive:   true,
		},
	}
	for i := range studios {
		if err := studioRepo.Create(ctx, &studios[i]); err != nil {
			log.Fatal("studio seed failed:", err)
		}
	}

	log.Println("Creating users...")
	users := []struct {
		username    string
		password    string
		name        string
		roles       []domain.Role
		departments []int64
	}{
		{"admin", "admin123", "Site Admin", []domain.Role{domain.RoleAdmin}, nil},
		{"madmin.rec", "madmin123", "Recording Manager", []domain.Role{domain.RoleMadmin}, []int64{1}},
		{"madmin.photo", "madmin123", "Photography Manager", []domain.Role{domain.RoleMadmin}, []int64{2}},
		{"engineer1", "engineer123", "Audio Engineer", []domain.Role{domain.RoleEngineer}, []int64{1}},
		{"staff1", "staff123", "Front Desk", []domain.Role{domain.RoleStaff}, []int64{1}},
	}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("hash failed:", err)
		}
		user := domain.User{
			Username:      u.username,
			Email:         u.username + "@studiodesk.local",
			PasswordHash:  string(hash),
			Name:          u.name,
			Roles:         u.roles,
			DepartmentIDs: u.departments,
			IsActive:      true,
		}
		if err := userRepo.Create(ctx, &user); err != nil {
			log.Fatal("user seed failed:", err)
		}
		log.Printf("User created: %s / %s", u.username, u.password)
	}

	log.Println("Creating sample client...")
	client := domain.Client{
		Name:         "Kate Winters",
		Email:        "kate@example.com",
		Phone:        "+1 555 010 2030",
		DepartmentID: 1,
		IsActive:     true,
	}
	if err := clientRepo.Create(ctx, &client); err != nil {
		log.Fatal("client seed failed:", err)
	}

	clientHash, _ := bcrypt.GenerateFromPassword([]byte("client123"), bcrypt.DefaultCost)
	portalUser := domain.User{
		Username:     "kate",
		Email:        client.Email,
		PasswordHash: string(clientHash),
		Name:         client.Name,
		Roles:        []domain.Role{domain.RoleClient},
		ClientID:     &client.ID,
		IsActive:     true,
	}
	if err := userRepo.Create(ctx, &portalUser); err != nil {
		log.Fatal("portal user seed failed:", err)
	}
	log.Println("Client portal login: kate / client123")

	log.Println("Seed finished at", time.Now().Format(time.RFC3339))
}
