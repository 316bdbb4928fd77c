package validate

import (
	"strings"

	"github.com/ovenlight/mealdesk-backend/internal/domain/failure"
	"github.com/ovenlight/mealdesk-backend/internal/domain/money"
)

// RawValue captures any scalar JSON token verbatim. Type mismatches in a
// field (a string where a number belongs, and vice versa) then surface as
// field validation failures instead of aborting the whole body parse.
type RawValue struct {
	Raw string
	Set bool
}

func (r *RawValue) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	r.Raw = s
	r.Set = true
	return nil
}

// ProductInput is the raw shape of a create/update product request.
type ProductInput struct {
	Name        RawValue `json:"name"`
	Price       RawValue `json:"price"`
	Description RawValue `json:"description"`
	Stock       RawValue `json:"stock"`
	Calories    RawValue `json:"calories"`
}

// ProductRecord is a fully normalized product payload.
type ProductRecord struct {
	Name        string
	Price       money.Amount
	Description string
	Stock       int
	Calories    int
}

// Product checks every field and returns either a normalized record or the
// full ordered list of field failures. A structurally absent required
// field contributes exactly one "is required" failure and skips that
// field's remaining checks.
func Product(in ProductInput) (ProductRecord, []failure.FieldError) {
	var rec ProductRecord
	var fields []failure.FieldError

	if !in.Name.Set {
		fields = append(fields, failure.FieldError{Field: "name", Message: "name is required"})
	} else if name, reason := Name(in.Name.Raw); reason != "" {
		fields = append(fields, failure.FieldError{Field: "name", Message: reason})
	} else {
		rec.Name = name
	}

	if !in.Price.Set {
		fields = append(fields, failure.FieldError{Field: "price", Message: "price is required"})
	} else if price, reason := Price(in.Price.Raw); reason != "" {
		fields = append(fields, failure.FieldError{Field: "price", Message: reason})
	} else {
		rec.Price = price
	}

	if in.Description.Set {
		if desc, reason := Description(in.Description.Raw); reason != "" {
			fields = append(fields, failure.FieldError{Field: "description", Message: reason})
		} else {
			rec.Description = desc
		}
	}

	if in.Stock.Set {
		if stock, reason := NonNegativeInt(in.Stock.Raw); reason != "" {
			fields = append(fields, failure.FieldError{Field: "stock", Message: "stock " + reason})
		} else {
			rec.Stock = stock
		}
	}

	if in.Calories.Set {
		if cal, reason := NonNegativeInt(in.Calories.Raw); reason != "" {
			fields = append(fields, failure.FieldError{Field: "calories", Message: "calories " + reason})
		} else {
			rec.Calories = cal
		}
	}

	return rec, fields
}

// NamedInput is the raw shape of a category or tag request.
type NamedInput struct {
	Name RawValue `json:"name"`
}

// Named validates a category/tag payload down to its normalized name.
func Named(in NamedInput) (string, []failure.FieldError) {
	if !in.Name.Set {
		return "", []failure.FieldError{{Field: "name", Message: "name is required"}}
	}
	name, reason := Name(in.Name.Raw)
	if reason != "" {
		return "", []failure.FieldError{{Field: "name", Message: reason}}
	}
	return name, nil
}

// OrderAddress validates a delivery address field.
func OrderAddress(in RawValue) (string, []failure.FieldError) {
	if !in.Set {
		return "", []failure.FieldError{{Field: "address", Message: "address is required"}}
	}
	addr, reason := Address(in.Raw)
	if reason != "" {
		return "", []failure.FieldError{{Field: "address", Message: reason}}
	}
	return addr, nil
}

// LineQuantity validates a line item quantity field.
func LineQuantity(in RawValue) (int, []failure.FieldError) {
	if !in.Set {
		return 0, []failure.FieldError{{Field: "quantity", Message: "quantity is required"}}
	}
	qty, reason := NonNegativeInt(in.Raw)
	if reason != "" {
		return 0, []failure.FieldError{{Field: "quantity", Message: "quantity " + reason}}
	}
	return qty, nil
}
