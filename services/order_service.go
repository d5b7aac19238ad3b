package services

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/fundraiser-shop/database"
	"github.com/yeremiapane/fundraiser-shop/models"
	"github.com/yeremiapane/fundraiser-shop/utils"
)

// CreateOrderInput is what the checkout form submits. The cart supplies the rest.
type CreateOrderInput struct {
	CustomerName            string
	CustomerContact         string
	DeliveryOption          models.DeliveryOption
	DeliveryAddress         string
	ZelleConfirmationNumber string
	IsRecurring             bool
}

// OrderService is the shared list of submitted orders.
type OrderService struct {
	mu     sync.Mutex
	store  database.Store
	cart   *CartService
	now    func() time.Time
	rng    *rand.Rand
	events EventPublisher

	orders []models.Order
}

type OrderOption func(*OrderService)

// WithClock overrides time.Now for order dates and generated ids.
func WithClock(now func() time.Time) OrderOption {
	return func(s *OrderService) { s.now = now }
}

// WithRand fixes the source used for group assignment.
func WithRand(rng *rand.Rand) OrderOption {
	return func(s *OrderService) { s.rng = rng }
}

// WithEvents sets the publisher notified after each mutation. nil keeps the no-op publisher.
func WithEvents(p EventPublisher) OrderOption {
	return func(s *OrderService) {
		if p != nil {
			s.events = p
		}
	}
}

func NewOrderService(store database.Store, cart *CartService, opts ...OrderOption) *OrderService {
	s := &OrderService{
		store:  store,
		cart:   cart,
		now:    time.Now,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		events: noopPublisher{},
		orders: []models.Order{},
	}
	for _, opt := range opts {
		opt(s)
	}

	database.LoadJSON(store, database.KeyOrders, &s.orders)
	if s.orders == nil {
		s.orders = []models.Order{}
	}
	return s
}

// CreateOrder turns the current cart into an order and clears the cart.
// Input validation is the caller's job. Events are published after the lock is released.
func (s *OrderService) CreateOrder(in CreateOrderInput) models.Order {
	order := s.insertOrder(in)
	s.events.Publish(EventOrderCreated, order)
	return cloneOrder(order)
}

func (s *OrderService) insertOrder(in CreateOrderInput) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cart.Checkout()
	now := s.now()

	orderNumber := NewCartID(now)
	if cart.CartID != nil {
		orderNumber = *cart.CartID
	}

	order := models.Order{
		ID:                      NewOrderID(now),
		CustomerName:            in.CustomerName,
		CustomerContact:         in.CustomerContact,
		Items:                   cart.Items,
		DonationAmount:          cart.DonationAmount,
		AssignedGroup:           models.GroupNames[s.rng.Intn(len(models.GroupNames))],
		OrderDate:               now,
		IsFulfilled:             false,
		TotalPrice:              ComputeTotal(cart.Items, in.IsRecurring, cart.DonationAmount),
		DeliveryOption:          in.DeliveryOption,
		OrderNumber:             orderNumber,
		ZelleConfirmationNumber: in.ZelleConfirmationNumber,
		IsRecurring:             in.IsRecurring,
	}
	if in.DeliveryOption == models.Delivery {
		order.DeliveryAddress = in.DeliveryAddress
	}

	s.orders = append(s.orders, order)
	s.persistLocked()

	utils.InfoLogger.WithFields(logrus.Fields{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"group":        order.AssignedGroup,
		"total":        order.TotalPrice,
	}).Info("order created")

	return cloneOrder(order)
}

// UpdateOrder merges patch into the order and recomputes its total.
// An unknown id is ignored; found reports whether anything was updated.
func (s *OrderService) UpdateOrder(orderID string, patch models.OrderPatch) (models.Order, bool) {
	order, ok := s.applyPatch(orderID, patch)
	if !ok {
		return models.Order{}, false
	}
	s.events.Publish(EventOrderUpdated, order)
	return cloneOrder(order), true
}

func (s *OrderService) applyPatch(orderID string, patch models.OrderPatch) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(orderID)
	if i < 0 {
		return models.Order{}, false
	}

	order := s.orders[i]
	patch.Apply(&order)
	order.TotalPrice = ComputeTotal(order.Items, order.IsRecurring, order.DonationAmount)
	s.orders[i] = order
	s.persistLocked()

	utils.InfoLogger.WithFields(logrus.Fields{
		"order_id": order.ID,
		"total":    order.TotalPrice,
	}).Info("order updated")

	return cloneOrder(order), true
}

// ToggleFulfilled flips isFulfilled. An unknown id is ignored.
func (s *OrderService) ToggleFulfilled(orderID string) (models.Order, bool) {
	order, ok := s.flipFulfilled(orderID)
	if !ok {
		return models.Order{}, false
	}
	s.events.Publish(EventOrderFulfillmentToggle, order)
	return cloneOrder(order), true
}

func (s *OrderService) flipFulfilled(orderID string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(orderID)
	if i < 0 {
		return models.Order{}, false
	}

	s.orders[i].IsFulfilled = !s.orders[i].IsFulfilled
	order := s.orders[i]
	s.persistLocked()

	utils.InfoLogger.WithFields(logrus.Fields{
		"order_id":  order.ID,
		"fulfilled": order.IsFulfilled,
	}).Info("fulfillment toggled")

	return cloneOrder(order), true
}

// Get returns a copy of one order.
func (s *OrderService) Get(orderID string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(orderID)
	if i < 0 {
		return models.Order{}, false
	}
	return cloneOrder(s.orders[i]), true
}

// List returns every order in submission order.
func (s *OrderService) List() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Order, len(s.orders))
	for i, o := range s.orders {
		out[i] = cloneOrder(o)
	}
	return out
}

// ListByFulfillment returns the pending (false) or completed (true) orders.
func (s *OrderService) ListByFulfillment(fulfilled bool) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Order{}
	for _, o := range s.orders {
		if o.IsFulfilled == fulfilled {
			out = append(out, cloneOrder(o))
		}
	}
	return out
}

// ProductionLine is the number of units to prepare for one product.
type ProductionLine struct {
	ProductID   string                   `json:"productId"`
	ProductName string                   `json:"productName"`
	Sizes       map[models.OrderSize]int `json:"sizes"`
}

// ProductionSummary totals the units needed across unfulfilled orders.
// Recurring orders count each quantity RecurringMultiplier times.
func (s *OrderService) ProductionSummary() []ProductionLine {
	pending := s.ListByFulfillment(false)

	byProduct := map[string]*ProductionLine{}
	for _, order := range pending {
		multiplier := 1
		if order.IsRecurring {
			multiplier = RecurringMultiplier
		}
		for _, item := range order.Items {
			line, ok := byProduct[item.ProductID]
			if !ok {
				line = &ProductionLine{
					ProductID:   item.ProductID,
					ProductName: item.ProductName,
					Sizes:       map[models.OrderSize]int{},
				}
				for _, size := range models.OrderSizes {
					line.Sizes[size] = 0
				}
				byProduct[item.ProductID] = line
			}
			line.Sizes[item.Size] += item.Quantity * multiplier
		}
	}

	out := make([]ProductionLine, 0, len(byProduct))
	for _, line := range byProduct {
		out = append(out, *line)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ProductName != out[j].ProductName {
			return out[i].ProductName < out[j].ProductName
		}
		return out[i].ProductID < out[j].ProductID
	})
	return out
}

// GroupSales is one bar of the sales-by-group dashboard.
type GroupSales struct {
	Group  models.GroupName `json:"group"`
	Name   string           `json:"name"`
	Sales  float64          `json:"sales"`
	Orders int              `json:"orders"`
}

type DashboardStats struct {
	Groups          []GroupSales `json:"groups"`
	TotalRevenue    float64      `json:"totalRevenue"`
	TotalOrders     int          `json:"totalOrders"`
	AvgOrderValue   float64      `json:"avgOrderValue"`
	PendingOrders   int          `json:"pendingOrders"`
	FulfilledOrders int          `json:"fulfilledOrders"`
}

// DashboardStats aggregates revenue and order counts per volunteer group.
// Orders assigned to a group outside GroupNames are not counted.
func (s *OrderService) DashboardStats() DashboardStats {
	orders := s.List()

	stats := DashboardStats{Groups: make([]GroupSales, len(models.GroupNames))}
	index := map[models.GroupName]int{}
	for i, g := range models.GroupNames {
		stats.Groups[i] = GroupSales{Group: g, Name: g.ShortName()}
		index[g] = i
	}

	for _, o := range orders {
		i, ok := index[o.AssignedGroup]
		if !ok {
			continue
		}
		stats.Groups[i].Sales += o.TotalPrice
		stats.Groups[i].Orders++
		if o.IsFulfilled {
			stats.FulfilledOrders++
		} else {
			stats.PendingOrders++
		}
	}

	for _, g := range stats.Groups {
		stats.TotalRevenue += g.Sales
		stats.TotalOrders += g.Orders
	}
	if stats.TotalOrders > 0 {
		stats.AvgOrderValue = stats.TotalRevenue / float64(stats.TotalOrders)
	}
	return stats
}

func (s *OrderService) indexLocked(orderID string) int {
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			return i
		}
	}
	return -1
}

func (s *OrderService) persistLocked() {
	if err := database.SaveJSON(s.store, database.KeyOrders, s.orders); err != nil {
		utils.ErrorLogger.WithField("key", database.KeyOrders).Errorf("persist orders: %v", err)
	}
}

func cloneOrder(o models.Order) models.Order {
	o.Items = models.CloneItems(o.Items)
	return o
}
