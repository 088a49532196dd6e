package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"peticiona-backend/config"
	"peticiona-backend/models"
	"peticiona-backend/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if !config.LoadDotEnv() {
		log.Println("Warning: No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	users := repository.NewUserRepository(pool)

	email := "advogado@example.com"
	password := "testpassword123"
	oabNumber := "OAB/SP 123.456"

	existing, err := users.GetByEmail(ctx, email)
	if err == nil {
		log.Printf("User with email %s already exists (ID: %s)", email, existing.ID)
		return
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		log.Fatalf("Failed to look up user: %v", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
		Name:         "Advogado Teste",
		OABNumber:    &oabNumber,
	}
	if err := users.Create(ctx, user); err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	// Every seeded account starts with the house style as its default template
	tmpl := &models.TemplateSettings{
		UserID:    user.ID,
		Name:      "Padrão ABNT",
		Settings:  models.DefaultStyleSettings(),
		IsDefault: true,
	}
	if err := repository.NewTemplateRepository(pool).Create(ctx, tmpl); err != nil {
		log.Fatalf("Failed to create default template: %v", err)
	}

	fmt.Printf("✅ Test user created successfully!\n")
	fmt.Printf("   ID: %s\n", user.ID)
	fmt.Printf("   Email: %s\n", email)
	fmt.Printf("   Password: %s\n", password)
	fmt.Printf("   Name: %s\n", user.Name)
	fmt.Printf("   OAB: %s\n", oabNumber)
	fmt.Printf("   Default template: %s\n", tmpl.ID)
}
