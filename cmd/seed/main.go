package main

import (
	"context"
	"log"

	"github.com/Rky1/sweet_shop/internal/config"
	"github.com/Rky1/sweet_shop/internal/hash"
	"github.com/Rky1/sweet_shop/internal/models"
)

// Seeds the database with a known admin, a regular user and a sample
// catalog. Wipes existing users and sweets first.
func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	db, err := config.InitDB(context.Background(), configuration)
	if err != nil {
		log.Fatalf("database init error: %v", err)
	}

	if err := db.Exec("DELETE FROM sweets").Error; err != nil {
		log.Fatalf("clearing sweets: %v", err)
	}
	if err := db.Exec("DELETE FROM users").Error; err != nil {
		log.Fatalf("clearing users: %v", err)
	}
	log.Println("cleared existing data")

	users := []struct {
		username, email, password, role string
	}{
		{"admin", "admin@sweetshop.com", "admin123", models.RoleAdmin},
		{"Rky1", "rky1@example.com", "password123", models.RoleUser},
	}
	for _, u := range users {
		pwHash, err := hash.HashPassword(u.password)
		if err != nil {
			log.Fatalf("hashing password for %s: %v", u.email, err)
		}
		user := models.User{Username: u.username, Email: u.email, PasswordHash: pwHash, Role: u.role}
		if err := db.Create(&user).Error; err != nil {
			log.Fatalf("creating user %s: %v", u.email, err)
		}
		log.Printf("created %s user: %s / %s", u.role, u.email, u.password)
	}

	sweets := []models.Sweet{
		{Name: "Milk Chocolate Bar", Category: "chocolate", Price: 199, Quantity: 50, Description: "Smooth and creamy milk chocolate"},
		{Name: "Dark Chocolate Premium", Category: "chocolate", Price: 299, Quantity: 30, Description: "Rich 70% dark chocolate bar"},
		{Name: "Sour Gummy Worms", Category: "gummy", Price: 149, Quantity: 100, Description: "Tangy and chewy gummy worms"},
		{Name: "Rainbow Lollipop", Category: "lollipop", Price: 49, Quantity: 75, Description: "Colorful swirl lollipop"},
		{Name: "Chocolate Chip Cookies", Category: "cookie", Price: 249, Quantity: 25, Description: "Freshly baked cookies with chocolate chips"},
		{Name: "Red Velvet Cake Slice", Category: "cake", Price: 399, Quantity: 10, Description: "Rich red velvet cake with cream cheese frosting"},
		{Name: "Strawberry Candy", Category: "candy", Price: 99, Quantity: 80, Description: "Sweet strawberry flavored hard candy"},
		{Name: "Caramel Delight", Category: "other", Price: 179, Quantity: 40, Description: "Soft caramel squares"},
		{Name: "Out of Stock Item", Category: "chocolate", Price: 449, Quantity: 0, Description: "This item is out of stock to test purchase validation"},
	}
	for i := range sweets {
		if err := db.Create(&sweets[i]).Error; err != nil {
			log.Fatalf("creating sweet %q: %v", sweets[i].Name, err)
		}
	}
	log.Printf("%d sweets created", len(sweets))
	log.Println("seed complete")
}
