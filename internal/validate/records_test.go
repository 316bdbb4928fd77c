package validate

import (
	"encoding/json"
	"testing"
)

func TestProductChecksEveryField(t *testing.T) {
	var in ProductInput
	body := `{"name":"Burger-9","price":"oops","stock":"-2","calories":"abc"}`
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	_, fields := Product(in)
	if len(fields) != 4 {
		t.Fatalf("expected 4 field failures, got %d: %+v", len(fields), fields)
	}
	order := []string{"name", "price", "stock", "calories"}
	for i, f := range fields {
		if f.Field != order[i] {
			t.Fatalf("field %d = %q, want %q", i, f.Field, order[i])
		}
	}
}

func TestProductMissingRequiredShortCircuitsOnlyThatField(t *testing.T) {
	var in ProductInput
	if err := json.Unmarshal([]byte(`{"price":"1.2"}`), &in); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	rec, fields := Product(in)
	if len(fields) != 1 || fields[0].Field != "name" || fields[0].Message != "name is required" {
		t.Fatalf("unexpected failures: %+v", fields)
	}
	if rec.Price.String() != "1.20" {
		t.Fatalf("price = %q, want 1.20", rec.Price.String())
	}
}

func TestProductNormalizes(t *testing.T) {
	var in ProductInput
	body := `{"name":" Big   Burger ","price":1.2,"description":"  Tasty  burger ","stock":10,"calories":550}`
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	rec, fields := Product(in)
	if len(fields) != 0 {
		t.Fatalf("unexpected failures: %+v", fields)
	}
	if rec.Name != "Big Burger" {
		t.Fatalf("name = %q", rec.Name)
	}
	if rec.Description != "Tasty burger" {
		t.Fatalf("description = %q", rec.Description)
	}
	if rec.Price.String() != "1.20" || rec.Stock != 10 || rec.Calories != 550 {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestRawValueAcceptsQuotedAndBareScalars(t *testing.T) {
	var in struct {
		A RawValue `json:"a"`
		B RawValue `json:"b"`
		C RawValue `json:"c"`
	}
	if err := json.Unmarshal([]byte(`{"a":"1.5","b":2,"c":null}`), &in); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !in.A.Set || in.A.Raw != "1.5" {
		t.Fatalf("a = %+v", in.A)
	}
	if !in.B.Set || in.B.Raw != "2" {
		t.Fatalf("b = %+v", in.B)
	}
	if in.C.Set {
		t.Fatalf("c should be unset on null")
	}
}

func TestNamed(t *testing.T) {
	name, fields := Named(NamedInput{Name: RawValue{Raw: " Sides ", Set: true}})
	if len(fields) != 0 || name != "Sides" {
		t.Fatalf("got %q %+v", name, fields)
	}
	if _, fields := Named(NamedInput{}); len(fields) != 1 {
		t.Fatalf("expected missing-name failure, got %+v", fields)
	}
}

func TestLineQuantity(t *testing.T) {
	if qty, fields := LineQuantity(RawValue{Raw: "3", Set: true}); qty != 3 || len(fields) != 0 {
		t.Fatalf("got %d %+v", qty, fields)
	}
	if _, fields := LineQuantity(RawValue{Raw: "-1", Set: true}); len(fields) != 1 {
		t.Fatalf("expected failure for negative quantity")
	}
	if _, fields := LineQuantity(RawValue{}); len(fields) != 1 {
		t.Fatalf("expected failure for missing quantity")
	}
}
