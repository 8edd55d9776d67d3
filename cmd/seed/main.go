package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"

	"solemate/internal/domain/models"
	"solemate/internal/repository"
	"solemate/internal/storage/postgresql"

	"github.com/brianvoe/gofakeit/v7"
)

const fillerCount = 1000

// Fixed "top picks" always seeded first, in this order.
var topPicks = []models.Product{
	{Name: "Nike Falcon", Price: 7999, Category: "Men", Image: "shoe.jpg", Link: "https://amazon.com"},
	{Name: "Nike Pegasus", Price: 6499, Category: "Women", Image: "Nike_Pegasus.jpeg", Link: "https://flipkart.com"},
	{Name: "Nike Redstar", Price: 5999, Category: "Kids", Image: "Nike_Redstar.jpg", Link: "https://amazon.com"},
	{Name: "Nike Revolution", Price: 8999, Category: "Sports", Image: "Nike_Revolution.jpeg", Link: "https://flipkart.com"},
	{Name: "Nike Runner", Price: 4999, Category: "Joggers", Image: "Nike_Runner.jpeg", Link: "https://amazon.com"},
	{Name: "Nike Whitetiger", Price: 9999, Category: "Boots", Image: "Nike_Whitetiger.jpg", Link: "https://flipkart.com"},
}

var (
	categories = []string{"Men", "Women", "Kids", "Sports", "Boots"}
	images     = []string{"shoe.jpg", "Nike_Pegasus.jpeg", "Nike_Runner.jpeg", "Nike_Whitetiger.jpg"}
	links      = []string{"https://amazon.com", "https://flipkart.com", "https://myntra.com"}
)

func main() {
	var dsn string
	flag.StringVar(&dsn, "dsn", "", "postgres connection string")
	flag.Parse()

	if dsn == "" {
		dsn = os.Getenv("DSN")
	}
	if dsn == "" {
		fmt.Fprintln(os.Stderr, "seed: -dsn flag or DSN env is required")
		os.Exit(1)
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	ctx := context.Background()

	storage, err := postgresql.New(ctx, dsn)
	if err != nil {
		log.Error("failed to connect", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer storage.Stop()

	if err := storage.EnsureSchema(ctx); err != nil {
		log.Error("failed to ensure schema", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repo := repository.NewProductRepository(storage.DB)

	if err := repo.DeleteAllProducts(ctx); err != nil {
		log.Error("failed to clear products", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for _, p := range topPicks {
		if _, err := repo.SaveProduct(ctx, p); err != nil {
			log.Error("failed to insert top pick", slog.String("name", p.Name), slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	for i := 0; i < fillerCount; i++ {
		p := randomProduct()
		if _, err := repo.SaveProduct(ctx, p); err != nil {
			log.Error("failed to insert filler product", slog.Int("index", i), slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	log.Info("seeded catalog",
		slog.Int("top_picks", len(topPicks)),
		slog.Int("filler", fillerCount),
	)
}

func randomProduct() models.Product {
	return models.Product{
		Name:     capitalize(gofakeit.Word()) + " " + capitalize(gofakeit.Word()),
		Price:    gofakeit.Price(2500, 12000),
		Category: categories[rand.Intn(len(categories))],
		Image:    images[rand.Intn(len(images))],
		Link:     links[rand.Intn(len(links))],
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
