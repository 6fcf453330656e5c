package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nextgen-foodcourt/foodcourt-client/models"
)

// ---------- auth ----------

type registerInput struct {
	Name     string      `json:"name" binding:"required"`
	Email    string      `json:"email" binding:"required"`
	Password string      `json:"password" binding:"required"`
	PhoneNo  string      `json:"phone_no" binding:"required"`
	Role     models.Role `json:"role" binding:"required"`
}

func (s *state) register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == input.Email {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
			return
		}
	}
	acct := account{
		User: models.User{
			ID: s.id(), Name: input.Name, Email: input.Email,
			PhoneNo: input.PhoneNo, Role: input.Role,
		},
		Password: input.Password,
	}
	s.users = append(s.users, acct)
	c.JSON(http.StatusCreated, acct.User)
}

func (s *state) login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == input.Email && u.Password == input.Password {
			token, err := s.mintToken(u.User)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to mint token"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"access_token": token, "user": u.User})
			return
		}
	}
	c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
}

func (s *state) logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

func (s *state) checkAuth(c *gin.Context) {
	userID, _ := c.Get("user_id")
	c.JSON(http.StatusOK, gin.H{"message": "Authenticated", "user": userID})
}

// ---------- cuisines ----------

func (s *state) listCuisines(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.cuisines)
}

func (s *state) createCuisine(c *gin.Context) {
	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cuisine := models.Cuisine{ID: s.id(), Name: input.Name}
	s.cuisines = append(s.cuisines, cuisine)
	c.JSON(http.StatusCreated, cuisine)
}

// ---------- outlets ----------

func (s *state) listOutlets(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.outlets)
}

func (s *state) getOutlet(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.outlets {
		if o.ID == id {
			c.JSON(http.StatusOK, o)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Outlet not found."})
}

func (s *state) createOutlet(c *gin.Context) {
	var input models.Outlet
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Outlet already exists or invalid data"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	input.ID = s.id()
	s.outlets = append(s.outlets, input)
	c.JSON(http.StatusCreated, input)
}

// ---------- menu items ----------

func (s *state) listMenuItems(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if raw := c.Query("outlet_id"); raw != "" {
		outletID, _ := strconv.Atoi(raw)
		filtered := make([]models.MenuItem, 0)
		for _, mi := range s.menuItems {
			if mi.OutletID == outletID {
				filtered = append(filtered, mi)
			}
		}
		c.JSON(http.StatusOK, filtered)
		return
	}
	c.JSON(http.StatusOK, s.menuItems)
}

func (s *state) createMenuItem(c *gin.Context) {
	var input models.MenuItem
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Menu item already exists or invalid data"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	input.ID = s.id()
	s.menuItems = append(s.menuItems, input)
	c.JSON(http.StatusCreated, input)
}

func (s *state) updateMenuItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var input map[string]any
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.menuItems {
		if s.menuItems[i].ID != id {
			continue
		}
		mi := &s.menuItems[i]
		if v, ok := input["name"].(string); ok {
			mi.Name = v
		}
		if v, ok := input["description"].(string); ok {
			mi.Description = v
		}
		if v, ok := input["price"].(float64); ok {
			mi.Price = v
		}
		if v, ok := input["category"].(string); ok {
			mi.Category = v
		}
		c.JSON(http.StatusOK, *mi)
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found."})
}

func (s *state) deleteMenuItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.menuItems {
		if s.menuItems[i].ID == id {
			s.menuItems = append(s.menuItems[:i], s.menuItems[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted successfully"})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found."})
}

// ---------- orders ----------

func (s *state) listOrders(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.orders)
}

func (s *state) createOrder(c *gin.Context) {
	var input models.Order
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Order already exists or invalid data"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	input.ID = s.id()
	if input.Status == "" {
		input.Status = models.OrderStatusPending
	}
	input.CreatedAt = time.Now().Format("2006-01-02 15:04:05")
	s.orders = append(s.orders, input)
	c.JSON(http.StatusCreated, input)
}

func (s *state) updateOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var input struct {
		Status     *models.OrderStatus `json:"status"`
		TotalPrice *float64            `json:"total_price"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		if input.Status != nil {
			s.orders[i].Status = *input.Status
		}
		if input.TotalPrice != nil {
			s.orders[i].TotalPrice = *input.TotalPrice
		}
		c.JSON(http.StatusOK, s.orders[i])
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Order not found."})
}

func (s *state) deleteOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Order not found."})
}

// ---------- order items ----------

func (s *state) listOrderItems(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.orderItems)
}

func (s *state) createOrderItem(c *gin.Context) {
	var input models.OrderItem
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order item data"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	// Order items never reference a non-existent order.
	found := false
	for _, o := range s.orders {
		if o.ID == input.OrderID {
			found = true
			break
		}
	}
	if !found {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order item data"})
		return
	}

	input.ID = s.id()
	if input.Quantity == 0 {
		input.Quantity = 1
	}
	s.orderItems = append(s.orderItems, input)
	c.JSON(http.StatusCreated, input)
}

// ---------- tables ----------

func (s *state) listTables(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.tables)
}

func (s *state) createTable(c *gin.Context) {
	var input models.Table
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Table creation failed"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	input.ID = s.id()
	if input.Status == "" {
		input.Status = "available"
	}
	if input.IsAvailable == "" {
		input.IsAvailable = "Yes"
	}
	s.tables = append(s.tables, input)
	c.JSON(http.StatusCreated, input)
}

// ---------- reservations ----------

func (s *state) listReservations(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.reservations)
}

func (s *state) createReservation(c *gin.Context) {
	var input models.Reservation
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation data"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var table *models.Table
	for i := range s.tables {
		if s.tables[i].ID == input.TableID {
			table = &s.tables[i]
			break
		}
	}
	if table == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
		return
	}
	if !table.Available() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Table is not available"})
		return
	}

	input.ID = s.id()
	if input.Status == "" {
		input.Status = "Confirmed"
	}
	if input.NoOfPeople == 0 {
		input.NoOfPeople = 1
	}
	table.IsAvailable = "No"
	s.reservations = append(s.reservations, input)
	c.JSON(http.StatusCreated, input)
}

func (s *state) deleteReservation(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reservations {
		if s.reservations[i].ID != id {
			continue
		}
		tableID := s.reservations[i].TableID
		s.reservations = append(s.reservations[:i], s.reservations[i+1:]...)
		for j := range s.tables {
			if s.tables[j].ID == tableID {
				s.tables[j].IsAvailable = "Yes"
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "Reservation deleted successfully"})
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
}
