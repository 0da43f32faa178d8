package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/niksmo/storefront/config"
	"github.com/niksmo/storefront/internal/adapter/apiclient"
	"github.com/niksmo/storefront/internal/adapter/notifier"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/session"
	"github.com/niksmo/storefront/pkg/sigctx"
)

const usage = `commands:
  list                      show the catalog
  add <n>                   add catalog item n to the cart
  remove <n>                remove catalog item n from the cart
  qty <n> <quantity>        set the quantity for catalog item n
  cart                      show the cart
  clear                     empty the cart
  ship <first> <last> <address...>  fill the shipping form
  checkout                  place the order
  help                      show this message
  quit                      leave
`

// shopctl hosts one client session: the cart store and checkout flow
// live here, the catalog and order service live behind the API.
func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()

	client := apiclient.New(cfg.APIBaseURL)
	printer := notifier.NewPrinter(os.Stdout)

	s := shell{
		ctx:      sigCtx,
		client:   client,
		cart:     session.NewCartStore(printer),
		printer:  printer,
		checkout: nil,
	}
	s.checkout = session.NewCheckout(s.cart, client, printer)

	s.run()
}

type shell struct {
	ctx      context.Context
	client   apiclient.Client
	cart     *session.CartStore
	checkout *session.Checkout
	printer  notifier.Printer

	catalog []domain.Product
}

func (s *shell) run() {
	fmt.Print(usage)

	scanner := bufio.NewScanner(os.Stdin)
	for prompt(); scanner.Scan(); prompt() {
		if s.ctx.Err() != nil {
			return
		}

		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "list":
			s.list()
		case "add":
			s.add(args[1:])
		case "remove":
			s.remove(args[1:])
		case "qty":
			s.setQuantity(args[1:])
		case "cart":
			s.showCart()
		case "clear":
			s.cart.Clear()
		case "ship":
			s.ship(args[1:])
		case "checkout":
			s.placeOrder()
		case "help":
			fmt.Print(usage)
		case "quit":
			return
		default:
			fmt.Printf("unknown command %q, try help\n", args[0])
		}
	}
}

func prompt() {
	fmt.Print("> ")
}

func (s *shell) list() {
	catalog, err := s.client.FetchProducts(s.ctx, domain.CatalogFilter{})
	if err != nil {
		fmt.Println("failed to load the catalog:", err)
		return
	}
	s.catalog = catalog

	for i, p := range catalog {
		fmt.Printf("%2d. %-24s %-16s $%s\n",
			i+1, p.Name, p.Brand, p.Price.StringFixed(2))
	}
}

func (s *shell) product(args []string) (domain.Product, bool) {
	if len(s.catalog) == 0 {
		fmt.Println("run list first")
		return domain.Product{}, false
	}
	if len(args) == 0 {
		fmt.Println("item number is required")
		return domain.Product{}, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(s.catalog) {
		fmt.Printf("no item %q in the catalog\n", args[0])
		return domain.Product{}, false
	}
	return s.catalog[n-1], true
}

func (s *shell) add(args []string) {
	if p, ok := s.product(args); ok {
		s.cart.Add(p)
	}
}

func (s *shell) remove(args []string) {
	if p, ok := s.product(args); ok {
		s.cart.Remove(p.ProductID)
	}
}

func (s *shell) setQuantity(args []string) {
	p, ok := s.product(args)
	if !ok {
		return
	}
	if len(args) < 2 {
		fmt.Println("quantity is required")
		return
	}
	quantity, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Printf("invalid quantity %q\n", args[1])
		return
	}
	s.cart.SetQuantity(p.ProductID, quantity)
}

func (s *shell) showCart() {
	items := s.cart.Items()
	if len(items) == 0 {
		fmt.Println("your cart is empty")
		return
	}
	for _, item := range items {
		fmt.Printf("%2d x %-24s $%s\n",
			item.Quantity, item.Product.Name,
			item.Product.Price.StringFixed(2))
	}
	fmt.Printf("total items: %d\n", s.cart.TotalItems())
	fmt.Printf("total price: $%s\n", s.cart.TotalPrice().StringFixed(2))
}

func (s *shell) ship(args []string) {
	if len(args) < 3 {
		fmt.Println("first name, last name and address are required")
		return
	}
	s.checkout.SetShipping(domain.ShippingInfo{
		FirstName: args[0],
		LastName:  args[1],
		Address:   strings.Join(args[2:], " "),
	})
}

func (s *shell) placeOrder() {
	_, err := s.checkout.Submit(s.ctx)
	if err != nil {
		return // the notifier already reported it
	}

	// a successful checkout is terminal, the next one starts fresh
	s.checkout = session.NewCheckout(s.cart, s.client, s.printer)
}
