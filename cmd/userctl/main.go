// Command userctl creates a user account directly in the document store,
// bypassing the HTTP API. It shares the server configuration, so the same
// environment variables and flags apply.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"golang.org/x/term"

	"github.com/mlaurent/userboard/internal/server/config"
	"github.com/mlaurent/userboard/internal/server/password"
	"github.com/mlaurent/userboard/internal/server/repositories/users"
	"github.com/mlaurent/userboard/internal/server/services"
)

func getSimpleText(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Println(prompt)
	text, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func getPassword() ([]byte, error) {
	fmt.Println("Enter password")
	return term.ReadPassword(int(os.Stdin.Fd()))
}

func main() {
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	reader := bufio.NewReader(os.Stdin)

	name, err := getSimpleText(reader, "Enter name")
	if err != nil {
		log.Fatal(err)
	}

	email, err := getSimpleText(reader, "Enter email")
	if err != nil {
		log.Fatal(err)
	}

	ageText, err := getSimpleText(reader, "Enter age (optional)")
	if err != nil {
		log.Fatal(err)
	}
	var age *int
	if ageText != "" {
		n, err := strconv.Atoi(ageText)
		if err != nil {
			log.Fatalf("invalid age: %v", err)
		}
		age = &n
	}

	pwd, err := getPassword()
	if err != nil {
		log.Fatal(err)
	}

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("mongo connect error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("mongo ping error: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("mongo disconnect error: %v", err)
		}
	}()

	repo := users.NewMongoRepository(client.Database(cfg.MongoDatabase))
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("mongo index error: %v", err)
	}

	svc := services.NewUserService(repo, password.NewBcryptHasher(cfg.BcryptCost))

	u, err := svc.Create(ctx, services.RegisterInput{
		Name:     name,
		Email:    email,
		Password: string(pwd),
		Age:      age,
	})
	if err != nil {
		log.Fatalf("create user error: %v", err)
	}

	fmt.Printf("created user %s (%s)\n", u.ID.Hex(), u.Email)
}
