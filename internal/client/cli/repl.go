package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	isAdmin(ctx context.Context) bool

	Login(ctx context.Context) error
	MobileLogin(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	Status(ctx context.Context, verbose bool) error

	Products(ctx context.Context) error
	Product(ctx context.Context, id string) error
	Categories(ctx context.Context) error
	News(ctx context.Context) error
	Promotions(ctx context.Context) error
	About(ctx context.Context) error

	Cart(ctx context.Context) error
	AddToCart(ctx context.Context, args []string) error
	RemoveItem(ctx context.Context, id string) error
	ClearCart(ctx context.Context) error
	Checkout(ctx context.Context) error

	Orders(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Users(ctx context.Context) error
	AddProduct(ctx context.Context) error
	UpdateProduct(ctx context.Context, id string) error
	DeleteProduct(ctx context.Context, id string) error
}

const (
	helpGuest = "Available commands: products, product <id>, categories, news, promotions, about, " +
		"login, mobile-login, signup, status [-v], exit"
	helpUser = "Available commands: products, product <id>, categories, news, promotions, about, " +
		"cart, add-to-cart <productId> [qty] [size] [color], remove-item <itemId>, clear-cart, checkout, " +
		"status [-v], logout, exit"
	helpAdmin = helpUser + "\nAdmin commands: orders, dashboard, users, add-product, update-product <id>, delete-product <id>"
)

// runREPL starts a simple read-eval-print loop for the shop CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Errors returned by a command are printed
// and the loop goes on. The loop exits on EOF or when the user types
// "exit" or "quit".
//
// Commands read their own prompts from the same reader, so the REPL never
// buffers ahead of them.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("gown %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if quit := dispatch(ctx, a, cmd, args); quit {
			return
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) bool {
	var err error

	switch cmd {
	case "help":
		switch {
		case a.isAdmin(ctx):
			printlnFn(helpAdmin)
		case a.isLoggedIn(ctx):
			printlnFn(helpUser)
		default:
			printlnFn(helpGuest)
		}

	case "login":
		err = a.Login(ctx)
	case "mobile-login":
		err = a.MobileLogin(ctx)
	case "signup":
		err = a.Signup(ctx)
	case "logout":
		err = a.Logout(ctx)
	case "status":
		verbose := len(args) > 0 && (args[0] == "-v" || args[0] == "--verbose")
		err = a.Status(ctx, verbose)

	case "products":
		err = a.Products(ctx)
	case "product":
		if len(args) == 0 {
			printlnFn("Usage: product <id>")
			return false
		}
		err = a.Product(ctx, args[0])
	case "categories":
		err = a.Categories(ctx)
	case "news":
		err = a.News(ctx)
	case "promotions":
		err = a.Promotions(ctx)
	case "about":
		err = a.About(ctx)

	case "cart":
		err = a.Cart(ctx)
	case "add-to-cart":
		if len(args) == 0 {
			printlnFn("Usage: add-to-cart <productId> [qty] [size] [color]")
			return false
		}
		err = a.AddToCart(ctx, args)
	case "remove-item":
		if len(args) == 0 {
			printlnFn("Usage: remove-item <itemId>")
			return false
		}
		err = a.RemoveItem(ctx, args[0])
	case "clear-cart":
		err = a.ClearCart(ctx)
	case "checkout":
		err = a.Checkout(ctx)

	case "orders":
		err = a.Orders(ctx)
	case "dashboard":
		err = a.Dashboard(ctx)
	case "users":
		err = a.Users(ctx)
	case "add-product":
		err = a.AddProduct(ctx)
	case "update-product":
		if len(args) == 0 {
			printlnFn("Usage: update-product <id>")
			return false
		}
		err = a.UpdateProduct(ctx, args[0])
	case "delete-product":
		if len(args) == 0 {
			printlnFn("Usage: delete-product <id>")
			return false
		}
		err = a.DeleteProduct(ctx, args[0])

	case "exit", "quit":
		printlnFn("Bye!")
		return true

	default:
		printlnFn("Unknown command:", cmd)
	}

	if err != nil {
		printlnFn("Error:", userMessage(err))
	}
	return false
}
