package models

import (
	"bytes"
	"encoding/json"
	"testing"

	"gorm.io/gorm"
)

func TestListingMarshalOmitsUnloadedUser(t *testing.T) {
	listing := Listing{Title: "Sea view flat", Price: 120}

	data, err := json.Marshal(&listing)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var out map[string]json.RawMessage
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if _, ok := out["user"]; ok {
		t.Fatalf("expected no user key when the association is not loaded, got %s", data)
	}
}

// The custom marshaler has a pointer receiver, so handlers must pass
// *Listing to ctx.JSON. This covers the pointer path they rely on.
func TestListingMarshalHidesOwnerPassword(t *testing.T) {
	listing := Listing{Title: "Sea view flat", Price: 120}
	listing.User = User{
		Model:    gorm.Model{ID: 7},
		Email:    "owner@example.com",
		Password: "bcrypt-hash-value",
		Listings: []Listing{{Title: "another"}},
	}

	data, err := json.Marshal(&listing)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	if bytes.Contains(data, []byte("bcrypt-hash-value")) {
		t.Fatalf("password hash leaked into listing JSON: %s", data)
	}
	if bytes.Contains(data, []byte(`"password"`)) {
		t.Fatalf("password key present in listing JSON: %s", data)
	}

	var out struct {
		User *struct {
			Email    string    `json:"email"`
			Listings []Listing `json:"listings"`
		} `json:"user"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if out.User == nil || out.User.Email != "owner@example.com" {
		t.Fatalf("expected the loaded owner in listing JSON, got %s", data)
	}
	if len(out.User.Listings) != 0 {
		t.Fatal("expected the owner's listings to be dropped to break the circular reference")
	}
}

func TestUserMarshalSavedListingsAlwaysArray(t *testing.T) {
	user := User{Model: gorm.Model{ID: 3}, Email: "u@example.com", Password: "secret"}

	data, err := json.Marshal(&user)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	if bytes.Contains(data, []byte("secret")) {
		t.Fatalf("password leaked into user JSON: %s", data)
	}
	if !bytes.Contains(data, []byte(`"savedListings":[]`)) {
		t.Fatalf("expected savedListings to serialize as an empty array, got %s", data)
	}
}
