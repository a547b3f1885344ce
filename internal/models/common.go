package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// PersonName is a structured name stored as a JSONB sub-document.
type PersonName struct {
	FirstName  string `json:"firstName"`
	MiddleName string `json:"middleName,omitempty"`
	LastName   string `json:"lastName"`
}

// Value implements driver.Valuer for JSONB storage.
func (n PersonName) Value() (driver.Value, error) {
	return json.Marshal(n)
}

// Scan implements sql.Scanner for JSONB retrieval.
func (n *PersonName) Scan(src interface{}) error {
	return scanJSON(src, n)
}

// Guardian describes a student's parental guardians.
type Guardian struct {
	FatherName       string `json:"fatherName"`
	FatherOccupation string `json:"fatherOccupation"`
	FatherContactNo  string `json:"fatherContactNo"`
	MotherName       string `json:"motherName"`
	MotherOccupation string `json:"motherOccupation"`
	MotherContactNo  string `json:"motherContactNo"`
	Address          string `json:"address"`
}

func (g Guardian) Value() (driver.Value, error) {
	return json.Marshal(g)
}

func (g *Guardian) Scan(src interface{}) error {
	return scanJSON(src, g)
}

// LocalGuardian describes a student's local contact person.
type LocalGuardian struct {
	Name       string `json:"name"`
	Occupation string `json:"occupation"`
	ContactNo  string `json:"contactNo"`
	Address    string `json:"address"`
}

func (g LocalGuardian) Value() (driver.Value, error) {
	return json.Marshal(g)
}

func (g *LocalGuardian) Scan(src interface{}) error {
	return scanJSON(src, g)
}

func scanJSON(src, dest interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
}
