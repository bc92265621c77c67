// Command example demonstrates guard clauses in a constructor and the
// OpenAPI schema a chain documents.
//
// Run:
//
//	go run ./_example
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"

	"github.com/Gobd/guard"
)

var orderIDPattern = regexp.MustCompile(`^ORD-\d{6}$`)

// Order is a sample domain type with guarded construction.
type Order struct {
	ID       string
	Quantity int
	Total    float64
}

func NewOrder(id string, quantity int, total float64) (*Order, error) {
	if err := guard.String(id, "id").NotNullOrWhitespace().Matches(orderIDPattern).Err(); err != nil {
		return nil, err
	}
	if err := guard.Numeric(quantity, "quantity").Positive().Max(1000).Err(); err != nil {
		return nil, err
	}
	if err := guard.Numeric(total, "total").GreaterThan(0).Err(); err != nil {
		return nil, err
	}
	return &Order{ID: id, Quantity: quantity, Total: total}, nil
}

func main() {
	if _, err := NewOrder("ORD-000042", 3, 19.99); err != nil {
		log.Fatal(err)
	}
	fmt.Println("order accepted")

	_, err := NewOrder("bogus", 3, 19.99)
	fmt.Println(err)
	fmt.Println("shape violation:", errors.Is(err, guard.ErrShape))

	_, err = NewOrder("ORD-000042", 0, 19.99)
	fmt.Println(err)
	fmt.Println("bounds violation:", errors.Is(err, guard.ErrBounds))

	// The same chain documents itself as an OpenAPI schema.
	schema := guard.Numeric(3, "quantity").Positive().Max(1000).Schema()
	b, _ := json.Marshal(schema)
	fmt.Println(string(b))
}
