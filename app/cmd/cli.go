package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"goshop/app/configs"
	"goshop/app/db/seeders"
	"goshop/app/models"
	"goshop/app/models/migrations"
	"goshop/app/repositories"
	"goshop/app/services"

	"github.com/urfave/cli/v3"
	"golang.org/x/crypto/bcrypt"
)

func RunCli() {
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					log.Println("✅ Migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Seed the database with a demo catalog",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := seeders.DBSeed(ctx, db); err != nil {
						return err
					}
					log.Println("✅ Seeding complete")
					return nil
				},
			},
			{
				Name:  "create-superuser",
				Usage: "Create a staff superuser account",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "phone", Required: true, Usage: "11-digit phone number starting with 09"},
					&cli.StringFlag{Name: "password", Required: true, Usage: "Password for the admin account"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}

					phone := c.String("phone")
					if err := services.ValidatePhone(phone); err != nil {
						return err
					}
					hash, err := bcrypt.GenerateFromPassword([]byte(c.String("password")), bcrypt.DefaultCost)
					if err != nil {
						return fmt.Errorf("failed to hash password: %w", err)
					}

					userRepo := repositories.NewUserRepository(db)
					existing, err := userRepo.FindByPhone(ctx, phone)
					if err != nil {
						return err
					}
					if existing != nil {
						return fmt.Errorf("user with phone %s already exists", phone)
					}

					user := &models.User{
						Phone:       phone,
						Password:    string(hash),
						IsActive:    true,
						IsStaff:     true,
						IsSuperuser: true,
					}
					if err := userRepo.Create(ctx, user); err != nil {
						return err
					}
					log.Printf("✅ Superuser %s created", phone)
					return nil
				},
			},
			{
				Name:  "generate-keys",
				Usage: "Generate new session authentication and encryption keys for .env",
				Action: func(ctx context.Context, c *cli.Command) error {

					if err := configs.GenerateAndPrintSessionKeys(); err != nil {
						return err
					}
					log.Println("✅ Key generation complete. Please copy the keys to your .env file.")
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
