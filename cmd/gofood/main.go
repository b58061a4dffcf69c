package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"gofood/internal/catalog"
	"gofood/internal/checkout"
	"gofood/internal/config"
	"gofood/internal/logger"
	"gofood/internal/metrics"
	"gofood/internal/money"
	"gofood/internal/storage"
	"gofood/internal/store"
	"gofood/internal/user"
)

func main() {
	search := flag.String("search", "", "free-text menu search")
	category := flag.String("category", catalog.CategoryAll, "menu category filter")
	order := flag.Int("order", 0, "add this product id to the cart and check out")
	quantity := flag.Int("quantity", 1, "quantity for -order")
	size := flag.String("size", string(catalog.SizeFull), "portion size for -order (half|full)")
	email := flag.String("email", "", "sign in with this account email")
	password := flag.String("password", "", "password for -email")
	signup := flag.Bool("signup", false, "register a new account instead of logging in")
	name := flag.String("name", "", "account name for -signup")
	phone := flag.String("phone", "", "account phone for -signup")
	address := flag.String("address", "", "account address for -signup")
	flag.Parse()

	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	kv, err := storage.NewFile(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}

	m := &metrics.StoreMetrics{}
	appStore := store.New(kv, logger.L(), store.WithMetrics(m))

	catalogSvc := catalog.NewService(catalog.NewRepository())
	checkoutSvc := checkout.NewService(appStore, cfg.CheckoutDelay, checkout.WithMetrics(m))
	authSvc := user.NewService(kv, cfg.SessionSecret, cfg.AuthDelay)

	ctx := logger.WithSessionID(context.Background(), uuid.NewString())

	if *email != "" {
		params := user.SignUpParams{
			Name:     *name,
			Email:    *email,
			Phone:    *phone,
			Address:  *address,
			Password: *password,
		}
		if err := signIn(ctx, authSvc, appStore, *signup, params); err != nil {
			log.Fatalf("Sign in failed: %v", err)
		}
	}

	if err := appStore.SetSearchTerm(*search); err != nil {
		log.Fatalf("Failed to set search term: %v", err)
	}
	if err := appStore.SetFilterCategory(*category); err != nil {
		log.Fatalf("Failed to set category: %v", err)
	}

	products, err := catalogSvc.Browse(ctx, appStore.SearchTerm(), appStore.FilterCategory())
	if err != nil {
		log.Fatalf("Failed to browse catalog: %v", err)
	}

	fmt.Print(renderMenu(products))

	if *order != 0 {
		if err := placeOrder(ctx, catalogSvc, appStore, checkoutSvc, *order, *quantity, catalog.Size(*size)); err != nil {
			log.Fatalf("Checkout failed: %v", err)
		}
	}

	if cart := appStore.Cart(); len(cart) > 0 {
		fmt.Printf("\nCart: %d items, total %s\n", appStore.CartItemsCount(), money.Format(appStore.CartTotal()))
	}
	for _, o := range appStore.Orders() {
		fmt.Printf("Order %s: %d items, total %s\n", o.ID, len(o.Items), money.Format(o.Total))
	}
}

func renderMenu(products []catalog.Product) string {
	if len(products) == 0 {
		return "No items found. Try adjusting your search or filter criteria.\n"
	}

	var b strings.Builder
	for _, p := range products {
		fmt.Fprintf(&b, "%2d  %-20s %-8s half %s / full %s  ★%.1f\n",
			p.ID,
			p.Name,
			p.Category,
			money.Format(p.Price.Half),
			money.Format(p.Price.Full),
			p.Rating,
		)
	}
	return b.String()
}

// signIn registers or authenticates the account, checks the returned
// session token and stores the user in application state.
func signIn(
	ctx context.Context,
	authSvc user.Service,
	appStore *store.Store,
	register bool,
	params user.SignUpParams,
) error {
	var (
		token string
		u     store.User
		err   error
	)
	if register {
		token, u, err = authSvc.SignUp(ctx, params)
	} else {
		token, u, err = authSvc.Login(ctx, params.Email, params.Password)
	}
	if err != nil {
		return err
	}

	if _, err := authSvc.ParseSession(token); err != nil {
		return err
	}
	if err := appStore.SetUser(&u); err != nil {
		return err
	}

	fmt.Printf("Welcome, %s!\n", u.Name)
	return nil
}

func placeOrder(
	ctx context.Context,
	catalogSvc catalog.Service,
	appStore *store.Store,
	checkoutSvc checkout.Service,
	productID, quantity int,
	size catalog.Size,
) error {
	p, err := catalogSvc.GetProduct(ctx, productID)
	if err != nil {
		return err
	}

	err = appStore.AddLine(store.CartLine{
		ProductID:   p.ID,
		Name:        p.Name,
		Description: p.Description,
		Image:       p.ImageURL,
		UnitPrice:   p.Price.For(size),
		Size:        size,
		Quantity:    quantity,
		Category:    p.Category,
	})
	if err != nil {
		return err
	}

	fmt.Printf("\n%s added to cart! Processing order...\n", p.Name)

	order, err := checkoutSvc.PlaceOrder(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Checkout successful! Order %s placed, total %s\n", order.ID, money.Format(order.Total))
	return nil
}
