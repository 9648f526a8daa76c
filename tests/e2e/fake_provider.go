//go:build e2e

package e2e

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/gin-gonic/gin"
)

const accountHeader = "X-Razorpay-Account"

type RecordedOrder struct {
	Body    map[string]any
	Account string
}

// FakeProvider serves the subset of the Razorpay REST API the service calls.
type FakeProvider struct {
	server *httptest.Server

	mu            sync.Mutex
	orders        []RecordedOrder
	refundCalls   map[string]int
	idempotency   map[string]string
	failingRefund map[string]bool
}

func NewFakeProvider() *FakeProvider {
	p := &FakeProvider{}
	p.Reset()

	r := gin.New()
	r.POST("/v1/orders", p.createOrder)
	r.POST("/v1/payments/:id/refund", p.refund)
	r.POST("/v1/contacts", p.createContact)
	r.GET("/v2/accounts/:id", p.account)
	p.server = httptest.NewServer(r)
	return p
}

func (p *FakeProvider) URL() string { return p.server.URL }

func (p *FakeProvider) Close() { p.server.Close() }

func (p *FakeProvider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.orders = nil
	p.refundCalls = map[string]int{}
	p.idempotency = map[string]string{}
	p.failingRefund = map[string]bool{}
}

// FailRefunds makes refunds for the payment fail with a 400 until HealRefunds is called.
func (p *FakeProvider) FailRefunds(paymentID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failingRefund[paymentID] = true
}

func (p *FakeProvider) HealRefunds(paymentID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.failingRefund, paymentID)
}

func (p *FakeProvider) RefundCalls(paymentID string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.refundCalls[paymentID]
}

func (p *FakeProvider) IdempotencyKey(paymentID string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.idempotency[paymentID]
}

func (p *FakeProvider) Orders() []RecordedOrder {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]RecordedOrder(nil), p.orders...)
}

func (p *FakeProvider) createOrder(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, providerError("BAD_REQUEST_ERROR", err.Error()))
		return
	}

	p.mu.Lock()
	p.orders = append(p.orders, RecordedOrder{Body: body, Account: c.GetHeader(accountHeader)})
	id := fmt.Sprintf("order_e2e%04d", len(p.orders))
	p.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"id":       id,
		"amount":   body["amount"],
		"currency": body["currency"],
		"receipt":  body["receipt"],
		"status":   "created",
	})
}

func (p *FakeProvider) refund(c *gin.Context) {
	paymentID := c.Param("id")

	p.mu.Lock()
	p.refundCalls[paymentID]++
	p.idempotency[paymentID] = c.GetHeader("X-Refund-Idempotency")
	failing := p.failingRefund[paymentID]
	p.mu.Unlock()

	if failing {
		c.JSON(http.StatusBadRequest, providerError("BAD_REQUEST_ERROR", "The payment has been fully refunded already"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":         "rfnd_" + paymentID,
		"payment_id": paymentID,
		"status":     "processed",
	})
}

func (p *FakeProvider) createContact(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"id": "cont_e2e"})
}

func (p *FakeProvider) account(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"id":           c.Param("id"),
		"status":       "created",
		"verification": gin.H{"status": "under_review"},
		"settings": gin.H{
			"payments": gin.H{"enabled": true},
			"payouts":  gin.H{"enabled": false},
		},
		"requirements": gin.H{"currently_due": []string{"bank_account"}},
	})
}

func providerError(code, description string) gin.H {
	return gin.H{"error": gin.H{"code": code, "description": description}}
}
