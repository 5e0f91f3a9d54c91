package domain

import (
	"encoding/json"
	"testing"
)

func TestServiceAddress(t *testing.T) {
	addr := NewServiceAddress("4000")
	if addr != "localhost:4000" {
		t.Errorf("Expected localhost:4000, got %s", addr)
	}
	if addr.String() != "localhost:4000" {
		t.Errorf("Expected String() localhost:4000, got %s", addr.String())
	}
}

func TestNewDocument(t *testing.T) {
	t.Run("NilProjects", func(t *testing.T) {
		doc := NewDocument(NewServiceAddress("4000"), nil)
		data, err := json.Marshal(doc)
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		want := `{"main":"localhost:4000","projects":{}}`
		if string(data) != want {
			t.Errorf("Expected %s, got %s", want, data)
		}
	})

	t.Run("WithProjects", func(t *testing.T) {
		doc := NewDocument(NewServiceAddress("4000"), map[string]ServiceAddress{
			"api": NewServiceAddress("5000"),
		})
		data, err := json.Marshal(doc)
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		want := `{"main":"localhost:4000","projects":{"api":"localhost:5000"}}`
		if string(data) != want {
			t.Errorf("Expected %s, got %s", want, data)
		}
	})
}
