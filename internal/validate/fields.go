// Package validate holds the pure field and record validators. Nothing in
// here touches the database; every function either returns a normalized
// value or a field-level failure reason.
package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ovenlight/mealdesk-backend/internal/domain/money"
)

const (
	maxNameLen        = 50
	maxDescriptionLen = 200
	maxAddressLen     = 200
	maxInt32          = 2147483647
)

var (
	namePattern        = regexp.MustCompile(`^[a-zA-Z !]+$`)
	descriptionPattern = regexp.MustCompile(`^[a-zA-Z .!,#]+$`)
	addressPattern     = regexp.MustCompile(`^[a-zA-Z0-9 ,-]+$`)
	whitespaceRun      = regexp.MustCompile(`\s+`)

	maxMoney = decimal.NewFromInt(maxInt32)
)

// NormalizeText trims the value and collapses runs of whitespace to a
// single space.
func NormalizeText(v string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(v), " ")
}

// Name validates and normalizes a catalog entity name.
func Name(v string) (string, string) {
	name := NormalizeText(v)
	if name == "" {
		return "", "name is required"
	}
	if len(name) > maxNameLen {
		return "", fmt.Sprintf("name must be at most %d characters", maxNameLen)
	}
	if !namePattern.MatchString(name) {
		return "", "name may only contain letters, spaces and exclamation marks"
	}
	return name, ""
}

// Description validates and normalizes an optional product description.
func Description(v string) (string, string) {
	desc := NormalizeText(v)
	if desc == "" {
		return "", ""
	}
	if len(desc) > maxDescriptionLen {
		return "", fmt.Sprintf("description must be at most %d characters", maxDescriptionLen)
	}
	if !descriptionPattern.MatchString(desc) {
		return "", "description may only contain letters, spaces and . ! , #"
	}
	return desc, ""
}

// Address validates and normalizes an order delivery address.
func Address(v string) (string, string) {
	addr := NormalizeText(v)
	if addr == "" {
		return "", "address is required"
	}
	if len(addr) > maxAddressLen {
		return "", fmt.Sprintf("address must be at most %d characters", maxAddressLen)
	}
	if !addressPattern.MatchString(addr) {
		return "", "address may only contain letters, digits, spaces, commas and hyphens"
	}
	return addr, ""
}

// NonNegativeInt validates a raw value as an integer in [0, 2147483647].
func NonNegativeInt(v string) (int, string) {
	raw := strings.TrimSpace(v)
	if raw == "" {
		return 0, "must be a non-negative integer"
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, "must be a non-negative integer"
	}
	if n < 0 {
		return 0, "must be a non-negative integer"
	}
	if n > maxInt32 {
		return 0, fmt.Sprintf("must be at most %d", maxInt32)
	}
	return n, ""
}

// Price validates a raw decimal string as a non-negative amount bounded by
// 2147483647 and rounds it to two decimal places, half away from zero.
func Price(v string) (money.Amount, string) {
	raw := strings.TrimSpace(v)
	if raw == "" {
		return money.Zero(), "price is required"
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return money.Zero(), "price must be a decimal number"
	}
	if d.IsNegative() {
		return money.Zero(), "price must not be negative"
	}
	if d.GreaterThan(maxMoney) {
		return money.Zero(), fmt.Sprintf("price must be at most %d", maxInt32)
	}
	return money.New(d).Round2(), ""
}
