package main

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nextgen-foodcourt/foodcourt-client/models"
)

// account is a user plus the password the real backend would hash.
type account struct {
	models.User
	Password string `json:"-"`
}

type state struct {
	mu     sync.Mutex
	secret []byte
	nextID int

	users        []account
	cuisines     []models.Cuisine
	outlets      []models.Outlet
	menuItems    []models.MenuItem
	orders       []models.Order
	orderItems   []models.OrderItem
	tables       []models.Table
	reservations []models.Reservation
}

func newState(secret []byte) *state {
	return &state{secret: secret, nextID: 1}
}

// id hands out the next entity ID. Caller holds the lock.
func (s *state) id() int {
	id := s.nextID
	s.nextID++
	return id
}

func (s *state) mintToken(u models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  u.ID,
		"role": string(u.Role),
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *state) seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	owner := account{
		User: models.User{
			ID: s.id(), Name: "Grace Wanjiru", Email: "grace@foodcourt.dev",
			PhoneNo: "0700000001", Role: models.RoleOwner,
		},
		Password: "owner123",
	}
	customer := account{
		User: models.User{
			ID: s.id(), Name: "Brian Otieno", Email: "brian@foodcourt.dev",
			PhoneNo: "0700000002", Role: models.RoleCustomer,
		},
		Password: "customer123",
	}
	s.users = append(s.users, owner, customer)

	swahili := models.Cuisine{ID: s.id(), Name: "Swahili"}
	indian := models.Cuisine{ID: s.id(), Name: "Indian"}
	s.cuisines = append(s.cuisines, swahili, indian)

	mamaNtilie := models.Outlet{
		ID: s.id(), Name: "Mama Ntilie", Contact: "0711000001",
		Description: "Coastal classics", CuisineID: swahili.ID, OwnerID: owner.ID,
	}
	spiceRoute := models.Outlet{
		ID: s.id(), Name: "Spice Route", Contact: "0711000002",
		Description: "North Indian grill", CuisineID: indian.ID, OwnerID: owner.ID,
	}
	s.outlets = append(s.outlets, mamaNtilie, spiceRoute)

	s.menuItems = append(s.menuItems,
		models.MenuItem{ID: s.id(), Name: "Pilau", Description: "Spiced rice with beef", Price: 350, Category: "Mains", OutletID: mamaNtilie.ID},
		models.MenuItem{ID: s.id(), Name: "Biryani", Description: "Layered rice and chicken", Price: 450, Category: "Mains", OutletID: mamaNtilie.ID},
		models.MenuItem{ID: s.id(), Name: "Butter Chicken", Description: "With naan", Price: 650, Category: "Mains", OutletID: spiceRoute.ID},
		models.MenuItem{ID: s.id(), Name: "Samosa", Description: "Two pieces", Price: 100, Category: "Snacks", OutletID: spiceRoute.ID},
	)

	s.tables = append(s.tables,
		models.Table{ID: s.id(), OutletID: mamaNtilie.ID, TableNumber: "T1", Capacity: 4, Status: "available", IsAvailable: "Yes"},
		models.Table{ID: s.id(), OutletID: mamaNtilie.ID, TableNumber: "T2", Capacity: 2, Status: "available", IsAvailable: "Yes"},
		models.Table{ID: s.id(), OutletID: spiceRoute.ID, TableNumber: "T3", Capacity: 6, Status: "available", IsAvailable: "Yes"},
	)
}
