package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/nextgen-foodcourt/foodcourt-client/analytics"
	"github.com/nextgen-foodcourt/foodcourt-client/cart"
	"github.com/nextgen-foodcourt/foodcourt-client/config"
	"github.com/nextgen-foodcourt/foodcourt-client/events"
	"github.com/nextgen-foodcourt/foodcourt-client/gateway"
	"github.com/nextgen-foodcourt/foodcourt-client/models"
	"github.com/nextgen-foodcourt/foodcourt-client/orders"
	"github.com/nextgen-foodcourt/foodcourt-client/session"
	"github.com/nextgen-foodcourt/foodcourt-client/storage"
	"github.com/nextgen-foodcourt/foodcourt-client/validation"
)

// app bundles the wired-up client so command handlers stay small.
type app struct {
	cfg  config.Config
	bus  *events.Bus
	cart *cart.Store
	sess *session.Store
	api  *gateway.Client
	orch *orders.Orchestrator
}

func main() {
	cfg := config.Load()

	kv, err := storage.OpenGormStore(cfg.StateDBPath)
	if err != nil {
		log.Fatalf("❌ Could not open state store: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	bus := events.New()
	cartStore := cart.New(kv, bus)
	sess := session.New(kv, bus, cartStore)
	api := gateway.New(gateway.Config{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.HTTPTimeout,
		Session: sess,
		Logger:  logger,
	})

	a := &app{
		cfg:  cfg,
		bus:  bus,
		cart: cartStore,
		sess: sess,
		api:  api,
		orch: orders.New(api, logger),
	}

	// The CLI's cart badge: re-query the container whenever it changes,
	// exactly like the header badge in the web client did.
	bus.Subscribe(events.CartChanged, func() {
		fmt.Printf("🛒 Cart: %d item(s), total %s\n", a.cart.Count(), a.cart.TotalPrice())
	})

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		reportError(err)
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.login(ctx, args)
	case "register":
		return a.register(ctx, args)
	case "logout":
		return a.logout(ctx)
	case "whoami":
		return a.whoami()
	case "cuisines":
		return a.cuisines(ctx)
	case "outlets":
		return a.outlets(ctx)
	case "menu":
		return a.menu(ctx, args)
	case "add":
		return a.add(ctx, args)
	case "qty":
		return a.qty(args)
	case "note":
		return a.note(args)
	case "remove":
		return a.remove(args)
	case "cart":
		return a.showCart()
	case "checkout":
		return a.checkout(ctx)
	case "tables":
		return a.tables(ctx)
	case "reserve":
		return a.reserve(ctx, args)
	case "orders":
		return a.listOrders(ctx)
	case "advance":
		return a.advance(ctx, args)
	case "reset":
		return a.reset(ctx, args)
	case "analytics":
		return a.analytics(ctx, args)
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: login <email> <password>")
	}
	if err := validation.ValidateLogin(args[0], args[1]); err != nil {
		return err
	}
	sess, err := a.api.Login(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	a.sess.Login(sess.User, sess.Token)
	fmt.Printf("👋 Welcome back, %s (%s)\n", sess.User.Name, sess.User.Role)
	return nil
}

func (a *app) register(ctx context.Context, args []string) error {
	if len(args) != 6 {
		return errors.New("usage: register <name> <email> <password> <confirm> <phone> <customer|owner>")
	}
	role := models.Role(args[5])
	if err := validation.ValidateRegistration(args[0], args[1], args[2], args[3], args[4], role); err != nil {
		return err
	}
	user, err := a.api.Register(ctx, gateway.RegisterRequest{
		Name:     args[0],
		Email:    args[1],
		Password: args[2],
		PhoneNo:  args[4],
		Role:     role,
	})
	if err != nil {
		return err
	}
	fmt.Printf("✅ Registered %s — now run: login %s <password>\n", user.Name, user.Email)
	return nil
}

func (a *app) logout(ctx context.Context) error {
	// Best effort server-side blacklist; local state clears regardless.
	if a.sess.IsAuthenticated() {
		if err := a.api.Logout(ctx); err != nil {
			log.Printf("⚠️ Server logout failed: %v", err)
		}
	}
	a.sess.Logout()
	fmt.Println("👋 Logged out")
	return nil
}

func (a *app) whoami() error {
	user, ok := a.sess.CurrentUser()
	if !ok {
		fmt.Println("Not logged in")
		return nil
	}
	fmt.Printf("%s <%s> role=%s", user.Name, user.Email, user.Role)
	if claims, ok := a.sess.Claims(); ok {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			fmt.Printf(" token-expires=%s", exp.Format(time.RFC3339))
		}
	}
	fmt.Println()
	return nil
}

func (a *app) cuisines(ctx context.Context) error {
	cuisines, err := a.api.ListCuisines(ctx)
	if err != nil {
		return err
	}
	for _, c := range cuisines {
		fmt.Printf("%3d  %s\n", c.ID, c.Name)
	}
	return nil
}

func (a *app) outlets(ctx context.Context) error {
	outlets, err := a.api.ListOutlets(ctx)
	if err != nil {
		return err
	}
	for _, o := range outlets {
		fmt.Printf("%3d  %-25s %s\n", o.ID, o.Name, o.Description)
	}
	return nil
}

func (a *app) menu(ctx context.Context, args []string) error {
	var items []models.MenuItem
	var err error
	if len(args) == 1 {
		outletID, convErr := strconv.Atoi(args[0])
		if convErr != nil {
			return errors.New("usage: menu [outletID]")
		}
		items, err = a.api.ListMenuItemsByOutlet(ctx, outletID)
	} else {
		items, err = a.api.ListMenuItems(ctx)
	}
	if err != nil {
		return err
	}
	for _, mi := range items {
		fmt.Printf("%3d  %-25s %8.2f  %s\n", mi.ID, mi.Name, mi.Price, mi.Category)
	}
	return nil
}

func (a *app) add(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: add <dishID>")
	}
	dishID, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.New("usage: add <dishID>")
	}

	items, err := a.api.ListMenuItems(ctx)
	if err != nil {
		return err
	}
	var dish *models.MenuItem
	for i := range items {
		if items[i].ID == dishID {
			dish = &items[i]
			break
		}
	}
	if dish == nil {
		return fmt.Errorf("no dish with id %d", dishID)
	}

	outletName := ""
	if outlet, err := a.api.GetOutlet(ctx, dish.OutletID); err == nil {
		outletName = outlet.Name
	}
	a.cart.AddItem(dish.ID, dish.Name, dish.Price, outletName)
	return nil
}

func (a *app) qty(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: qty <dishID> <quantity>")
	}
	dishID, err1 := strconv.Atoi(args[0])
	quantity, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		return errors.New("usage: qty <dishID> <quantity>")
	}
	a.cart.SetQuantity(dishID, quantity)
	return nil
}

func (a *app) note(args []string) error {
	if len(args) < 2 {
		return errors.New("usage: note <dishID> <text>")
	}
	dishID, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.New("usage: note <dishID> <text>")
	}
	a.cart.SetNotes(dishID, args[1])
	return nil
}

func (a *app) remove(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: remove <dishID>")
	}
	dishID, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.New("usage: remove <dishID>")
	}
	a.cart.RemoveItem(dishID)
	return nil
}

func (a *app) showCart() error {
	lines := a.cart.Lines()
	if len(lines) == 0 {
		fmt.Println("Cart is empty")
		return nil
	}
	for _, l := range lines {
		fmt.Printf("%3d  %-25s x%-3d %8.2f  %s\n", l.DishID, l.Name, l.Quantity, l.UnitPrice, l.Notes)
	}
	fmt.Printf("Total: %s\n", a.cart.TotalPrice())
	return nil
}

func (a *app) checkout(ctx context.Context) error {
	user, ok := a.sess.CurrentUser()
	if !ok {
		return errors.New("log in before checking out")
	}
	snap := a.cart.Snapshot()
	if len(snap.Lines) == 0 {
		return errors.New("cart is empty")
	}

	result, err := a.orch.Submit(ctx, user.ID, snap)
	if err != nil {
		// Cart stays intact so the customer can retry.
		return err
	}
	a.cart.Clear()
	fmt.Printf("✅ Order #%d placed: %d item(s), total %.2f\n",
		result.Order.ID, len(result.Items), result.Order.TotalPrice)
	return nil
}

func (a *app) tables(ctx context.Context) error {
	tables, err := a.api.ListAvailableTables(ctx)
	if err != nil {
		return err
	}
	for _, t := range tables {
		fmt.Printf("%3d  table %-6s seats %d\n", t.ID, t.TableNumber, t.Capacity)
	}
	return nil
}

func (a *app) reserve(ctx context.Context, args []string) error {
	if len(args) != 4 {
		return errors.New("usage: reserve <tableID> <YYYY-MM-DD> <HH:MM:SS> <guests>")
	}
	user, ok := a.sess.CurrentUser()
	if !ok {
		return errors.New("log in before reserving a table")
	}
	tableID, err1 := strconv.Atoi(args[0])
	guests, err2 := strconv.Atoi(args[3])
	if err1 != nil || err2 != nil {
		return errors.New("usage: reserve <tableID> <YYYY-MM-DD> <HH:MM:SS> <guests>")
	}
	if err := validation.ValidateReservation(args[1], args[2], guests, time.Now()); err != nil {
		return err
	}
	res, err := a.api.CreateReservation(ctx, gateway.CreateReservationRequest{
		UserID:      user.ID,
		TableID:     tableID,
		BookingDate: args[1],
		BookingTime: args[2],
		NoOfPeople:  guests,
	})
	if err != nil {
		return err
	}
	fmt.Printf("✅ Reservation #%d confirmed for %s %s\n", res.ID, res.BookingDate, res.BookingTime)
	return nil
}

func (a *app) listOrders(ctx context.Context) error {
	list, err := a.api.ListOrders(ctx)
	if err != nil {
		return err
	}
	for _, o := range list {
		fmt.Printf("%4d  user=%-4d %8.2f  %s\n", o.ID, o.UserID, o.TotalPrice, o.Status)
	}
	return nil
}

// advance moves an order one step forward along
// pending → preparing → ready → delivered.
func (a *app) advance(ctx context.Context, args []string) error {
	order, err := a.findOrder(ctx, args, "advance")
	if err != nil {
		return err
	}
	next, ok := order.Status.Next()
	if !ok {
		return fmt.Errorf("order #%d is %s; only a reset is possible", order.ID, order.Status)
	}
	updated, err := a.api.UpdateOrderStatus(ctx, order.ID, next)
	if err != nil {
		return err
	}
	fmt.Printf("✅ Order #%d: %s → %s\n", updated.ID, order.Status, updated.Status)
	return nil
}

func (a *app) reset(ctx context.Context, args []string) error {
	order, err := a.findOrder(ctx, args, "reset")
	if err != nil {
		return err
	}
	if !order.Status.CanTransitionTo(models.OrderStatusPending) {
		return fmt.Errorf("order #%d is already pending", order.ID)
	}
	updated, err := a.api.UpdateOrderStatus(ctx, order.ID, models.OrderStatusPending)
	if err != nil {
		return err
	}
	fmt.Printf("✅ Order #%d reset to %s\n", updated.ID, updated.Status)
	return nil
}

func (a *app) findOrder(ctx context.Context, args []string, verb string) (models.Order, error) {
	if len(args) != 1 {
		return models.Order{}, fmt.Errorf("usage: %s <orderID>", verb)
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return models.Order{}, fmt.Errorf("usage: %s <orderID>", verb)
	}
	list, err := a.api.ListOrders(ctx)
	if err != nil {
		return models.Order{}, err
	}
	for _, o := range list {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, fmt.Errorf("no order with id %d", id)
}

func (a *app) analytics(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: analytics <outletID> <report.xlsx>")
	}
	outletID, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.New("usage: analytics <outletID> <report.xlsx>")
	}
	a.sess.SetSelectedOutlet(outletID)

	menuItems, err := a.api.ListMenuItems(ctx)
	if err != nil {
		return err
	}
	orderList, err := a.api.ListOrders(ctx)
	if err != nil {
		return err
	}
	orderItems, err := a.api.ListOrderItems(ctx)
	if err != nil {
		return err
	}
	reservations, err := a.api.ListReservations(ctx)
	if err != nil {
		return err
	}

	stats := analytics.Compute(outletID, menuItems, orderList, orderItems, reservations, time.Now())
	fmt.Printf("Outlet %d: %d orders (%d today, %d completed), revenue %.2f, %d reservations, top dish %q\n",
		stats.OutletID, stats.TotalOrders, stats.OrdersToday, stats.CompletedOrders,
		stats.TotalRevenue, stats.Reservations, stats.MostOrderedDish)

	f, err := os.Create(args[1])
	if err != nil {
		return err
	}
	defer f.Close()
	if err := analytics.ExportXLSX(f, []analytics.OutletStats{stats}, time.Now()); err != nil {
		return err
	}
	fmt.Printf("📊 Report written to %s\n", args[1])
	return nil
}

// reportError degrades every failure to a readable message, never a
// stack trace.
func reportError(err error) {
	var authErr *gateway.AuthError
	var httpErr *gateway.HTTPError
	var netErr *gateway.NetworkError
	var valErr validation.ValidationError
	switch {
	case errors.As(err, &authErr):
		fmt.Fprintln(os.Stderr, "🔒 Session expired — please log in again")
	case errors.As(err, &httpErr):
		fmt.Fprintf(os.Stderr, "❌ %v\n", httpErr)
	case errors.As(err, &netErr):
		fmt.Fprintln(os.Stderr, "📡 Could not reach the server — is the backend running?")
	case errors.As(err, &valErr):
		fmt.Fprintf(os.Stderr, "⚠️ %v\n", valErr)
	default:
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `NextGen Food Court client

Usage:
  foodcourt-client <command> [args]

Account:
  login <email> <password>
  register <name> <email> <password> <confirm> <phone> <customer|owner>
  logout
  whoami

Browse:
  cuisines | outlets | menu [outletID] | tables

Cart & checkout:
  add <dishID> | qty <dishID> <n> | note <dishID> <text> | remove <dishID>
  cart | checkout
  reserve <tableID> <YYYY-MM-DD> <HH:MM:SS> <guests>

Owner:
  orders | advance <orderID> | reset <orderID>
  analytics <outletID> <report.xlsx>`)
}
