package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MacroKind tags the representation held by a MacroValue.
type MacroKind uint8

const (
	MacroNull MacroKind = iota
	MacroNumber
	MacroText
)

// MacroValue is a nutrition field as stored in the catalog: either a plain
// number or free text such as "250-290 kcal". It keeps the stored form so the
// catalog can be served back unchanged; the nutrition engine normalizes it.
type MacroValue struct {
	Kind   MacroKind
	Number float64
	Text   string
}

// MacroNumberValue builds a numeric MacroValue.
func MacroNumberValue(v float64) MacroValue {
	return MacroValue{Kind: MacroNumber, Number: v}
}

// MacroTextValue builds a textual MacroValue.
func MacroTextValue(s string) MacroValue {
	return MacroValue{Kind: MacroText, Text: s}
}

// Scan implements sql.Scanner.
func (m *MacroValue) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*m = MacroValue{}
	case string:
		*m = MacroTextValue(v)
	case []byte:
		*m = MacroTextValue(string(v))
	case int64:
		*m = MacroNumberValue(float64(v))
	case int32:
		*m = MacroNumberValue(float64(v))
	case int:
		*m = MacroNumberValue(float64(v))
	case float64:
		*m = MacroNumberValue(v)
	case float32:
		*m = MacroNumberValue(float64(v))
	default:
		return fmt.Errorf("macro value: unsupported source %T", src)
	}
	return nil
}

func (m MacroValue) MarshalJSON() ([]byte, error) {
	switch m.Kind {
	case MacroNumber:
		return json.Marshal(m.Number)
	case MacroText:
		return json.Marshal(m.Text)
	default:
		return []byte("null"), nil
	}
}

func (m *MacroValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*m = MacroValue{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*m = MacroTextValue(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("macro value: %w", err)
	}
	*m = MacroNumberValue(n)
	return nil
}

// Flag is a boolean column that may be stored as 0/1 integers.
type Flag bool

// Scan implements sql.Scanner.
func (f *Flag) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*f = false
	case bool:
		*f = Flag(v)
	case int64:
		*f = v != 0
	case int32:
		*f = v != 0
	case int:
		*f = v != 0
	case string:
		return f.parse(v)
	case []byte:
		return f.parse(string(v))
	default:
		return fmt.Errorf("flag: unsupported source %T", src)
	}
	return nil
}

func (f *Flag) parse(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		*f = false
		return nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("flag: %w", err)
	}
	*f = Flag(b)
	return nil
}

func (f Flag) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(f))
}

func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*f = false
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return f.parse(s)
	case bytes.Equal(data, []byte("true")), bytes.Equal(data, []byte("false")):
		*f = Flag(data[0] == 't')
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("flag: %w", err)
	}
	*f = n != 0
	return nil
}

// RawDish is a catalog row before nutrition normalization.
type RawDish struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Description   *string    `json:"description"`
	Calories      MacroValue `json:"calories"`
	Protein       MacroValue `json:"protein"`
	Carbs         MacroValue `json:"carbs"`
	Fats          MacroValue `json:"fats"`
	Price         float64    `json:"price"`
	Category      *string    `json:"category"`
	IsVegetarian  Flag       `json:"is_vegetarian"`
	IsHighProtein Flag       `json:"is_high_protein"`
	IsLowCalorie  Flag       `json:"is_low_calorie"`
	ImageURL      *string    `json:"image_url"`
	Available     Flag       `json:"available"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Dish is a catalog entry whose macros are plain non-negative numbers.
type Dish struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description"`
	Calories      float64   `json:"calories"`
	Protein       float64   `json:"protein"`
	Carbs         float64   `json:"carbs"`
	Fats          float64   `json:"fats"`
	Price         float64   `json:"price"`
	Category      *string   `json:"category"`
	IsVegetarian  bool      `json:"is_vegetarian"`
	IsHighProtein bool      `json:"is_high_protein"`
	IsLowCalorie  bool      `json:"is_low_calorie"`
	ImageURL      *string   `json:"image_url"`
	Available     bool      `json:"available"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DishFilter narrows catalog listings for the menu page.
type DishFilter struct {
	Vegetarian *bool
	Search     string
}

// Match reports whether the dish passes the filter.
func (f DishFilter) Match(d RawDish) bool {
	if f.Vegetarian != nil && bool(d.IsVegetarian) != *f.Vegetarian {
		return false
	}
	term := strings.ToLower(strings.TrimSpace(f.Search))
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(d.Name), term) {
		return true
	}
	return d.Description != nil && strings.Contains(strings.ToLower(*d.Description), term)
}
