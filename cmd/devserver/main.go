// Devserver is an in-memory replica of the NextGen Food Court backend
// for local development: same routes, same field names, same error
// bodies. The real backend stays the source of truth; this one just
// keeps the client hackable offline.
package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	log.Println("✅ Starting food court devserver...")

	_ = godotenv.Load()
	port := envOr("PORT", "5555")
	secret := []byte(envOr("JWT_SECRET", "dev-only-secret"))

	s := newState(secret)
	s.seed()

	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "message": "Backend is running"})
	})

	r.POST("/register", s.register)
	r.POST("/login", s.login)

	authed := r.Group("/", requireAuth(secret))
	authed.POST("/logout", s.logout)
	authed.GET("/check-auth", s.checkAuth)

	r.GET("/cuisines", s.listCuisines)
	r.POST("/cuisines", s.createCuisine)

	r.GET("/outlets", s.listOutlets)
	r.POST("/outlets", s.createOutlet)
	r.GET("/outlets/:id", s.getOutlet)

	r.GET("/menu-items", s.listMenuItems)
	r.POST("/menu-items", s.createMenuItem)
	r.PATCH("/menu-items/:id", s.updateMenuItem)
	r.DELETE("/menu-items/:id", s.deleteMenuItem)

	r.GET("/orders", s.listOrders)
	r.POST("/orders", s.createOrder)
	r.PATCH("/orders/:id", s.updateOrder)
	r.DELETE("/orders/:id", s.deleteOrder)

	r.GET("/order-items", s.listOrderItems)
	r.POST("/order-items", s.createOrderItem)

	r.GET("/tables", s.listTables)
	r.POST("/tables", s.createTable)

	r.GET("/reservations", s.listReservations)
	r.POST("/reservations", s.createReservation)
	r.DELETE("/reservations/:id", s.deleteReservation)

	log.Printf("🚀 Devserver listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
