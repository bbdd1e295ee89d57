// Package verification генерирует и проверяет коды передачи заказа (забор у продавца и вручение покупателю).
//
// Коды только из цифр: их диктуют голосом, поэтому вопрос регистра не возникает.
package verification

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strings"
)

const (
	PickupCodeLength   = 4
	DeliveryCodeLength = 5

	alphabet = "0123456789"
)

type Generator struct {
	random io.Reader
}

func New() *Generator {
	return &Generator{random: rand.Reader}
}

// NewWithReader генератор на произвольном источнике случайности (для тестов).
func NewWithReader(r io.Reader) *Generator {
	return &Generator{random: r}
}

func (g *Generator) PickupCode() (string, error) {
	return g.generate(PickupCodeLength)
}

func (g *Generator) DeliveryCode() (string, error) {
	return g.generate(DeliveryCodeLength)
}

func (g *Generator) generate(length int) (string, error) {
	base := big.NewInt(int64(len(alphabet)))

	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		n, err := rand.Int(g.random, base)
		if err != nil {
			return "", fmt.Errorf("generate code: %w", err)
		}
		sb.WriteByte(alphabet[n.Int64()])
	}
	return sb.String(), nil
}

// Verify точное сравнение после обрезки пробелов. Пустой ожидаемый код никогда не совпадает.
func Verify(submitted, expected string) bool {
	expected = strings.TrimSpace(expected)
	if expected == "" {
		return false
	}
	return strings.TrimSpace(submitted) == expected
}
