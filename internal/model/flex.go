package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Clients send some fields either as JSON strings or as JSON numbers
// (a pincode as 411001, a price as "999"). These decoders accept both.

var null = []byte("null")

func quoted(b []byte) bool {
	return len(b) > 0 && b[0] == '"'
}

// text decodes a string or a number, keeping the number's literal text
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, null) {
		return nil
	}
	if quoted(b) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", b)
	}
	*t = text(n)
	return nil
}

// number decodes a number or a numeric string
type number float64

func (n *number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, null) {
		return nil
	}
	if quoted(b) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("expected number, got %q", s)
		}
		*n = number(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*n = number(f)
	return nil
}

// integer decodes an integral number (3 or 3.0) or an integer string
type integer int

func (i *integer) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, null) {
		return nil
	}
	if quoted(b) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("expected integer, got %q", s)
		}
		*i = integer(v)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return fmt.Errorf("expected integer, got %s", b)
	}
	*i = integer(f)
	return nil
}

func (a *Address) UnmarshalJSON(b []byte) error {
	var raw struct {
		Flat     text `json:"flat"`
		Street   text `json:"street"`
		Landmark text `json:"landmark"`
		City     text `json:"city"`
		State    text `json:"state"`
		Country  text `json:"country"`
		Pincode  text `json:"pincode"`
		Mobile   text `json:"mobile"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*a = Address{
		Flat:     string(raw.Flat),
		Street:   string(raw.Street),
		Landmark: string(raw.Landmark),
		City:     string(raw.City),
		State:    string(raw.State),
		Country:  string(raw.Country),
		Pincode:  string(raw.Pincode),
		Mobile:   string(raw.Mobile),
	}
	return nil
}

func (r *CreateProductRequest) UnmarshalJSON(b []byte) error {
	var raw struct {
		Name        string  `json:"name"`
		Brand       string  `json:"brand"`
		Price       number  `json:"price"`
		Qty         integer `json:"qty"`
		Image       string  `json:"image"`
		Category    string  `json:"category"`
		Description string  `json:"description"`
		Usage       string  `json:"usage"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*r = CreateProductRequest{
		Name:        raw.Name,
		Brand:       raw.Brand,
		Price:       float64(raw.Price),
		Qty:         int(raw.Qty),
		Image:       raw.Image,
		Category:    raw.Category,
		Description: raw.Description,
		Usage:       raw.Usage,
	}
	return nil
}

func (r *PlaceOrderRequest) UnmarshalJSON(b []byte) error {
	var raw struct {
		Items []OrderItem `json:"items"`
		Tax   number      `json:"tax"`
		Total number      `json:"total"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*r = PlaceOrderRequest{Items: raw.Items, Tax: float64(raw.Tax), Total: float64(raw.Total)}
	return nil
}
