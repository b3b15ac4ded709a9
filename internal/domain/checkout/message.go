// internal/domain/checkout/message.go
package checkout

import (
	"fmt"
	"math"
	"net/url"
	"strings"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
)

// Service builds the outbound order message and its messaging deep link.
// Building the link is the terminal checkout action: there is no order
// persistence and no payment capture here.
type Service struct {
	config *config.Config
}

// NewService creates a new checkout service
func NewService(cfg *config.Config) *Service {
	return &Service{config: cfg}
}

// OrderRequest carries the customer-supplied contact fields
type OrderRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	PhoneNumber  string `json:"phone_number" binding:"required"`
	Address      string `json:"address" binding:"required"`
}

// OrderLink is the built checkout deep link plus the message it carries
type OrderLink struct {
	URL     string  `json:"url"`
	Message string  `json:"message"`
	Total   float64 `json:"total"`
}

// BuildOrderMessage renders the multi-line order summary text
func (s *Service) BuildOrderMessage(req *OrderRequest, items []cart.LineItem, total float64) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*New Order from %s*\n\n", s.config.Checkout.StoreName)
	b.WriteString("*Customer Details:*\n")
	fmt.Fprintf(&b, "Name: %s\n", req.CustomerName)
	fmt.Fprintf(&b, "Phone: %s\n", req.PhoneNumber)
	fmt.Fprintf(&b, "Address: %s\n\n", req.Address)

	b.WriteString("*Order Items:*\n")
	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s (%s) x %d - %s\n",
			i+1, item.Name, item.Size, item.Quantity, FormatPrice(item.Price*float64(item.Quantity)))
	}

	fmt.Fprintf(&b, "\n*Total Order Value: %s*", FormatPrice(total))
	b.WriteString("\n\nI would like to confirm this order.")

	return b.String()
}

// BuildOrderLink derives the messaging deep link from the session cart and
// contact fields. Pure; no network I/O.
func (s *Service) BuildOrderLink(req *OrderRequest, items []cart.LineItem) OrderLink {
	total := cart.Total(items)
	message := s.BuildOrderMessage(req, items, total)

	link := fmt.Sprintf("%s/%s?text=%s",
		s.config.Checkout.WhatsAppBaseURL,
		s.config.Checkout.WhatsAppNumber,
		encodeComponent(message))

	return OrderLink{
		URL:     link,
		Message: message,
		Total:   total,
	}
}

// encodeComponent percent-encodes a query value with %20 for spaces,
// matching encodeURIComponent rather than Go's form encoding.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// FormatPrice renders a rupee amount with Indian digit grouping and no
// fraction digits: 600 -> ₹600, 1500 -> ₹1,500, 100000 -> ₹1,00,000.
func FormatPrice(amount float64) string {
	rupees := int64(math.Round(amount))

	sign := ""
	if rupees < 0 {
		sign = "-"
		rupees = -rupees
	}

	digits := fmt.Sprintf("%d", rupees)
	if len(digits) <= 3 {
		return sign + "₹" + digits
	}

	// Last three digits, then groups of two
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)

	return sign + "₹" + strings.Join(groups, ",") + "," + tail
}
