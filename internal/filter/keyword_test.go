package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"apiextract/internal/models"
)

func str(s string) *string { return &s }

func TestMatcher_Match(t *testing.T) {
	m := NewMatcher()

	tests := []struct {
		name string
		rec  models.Record
		want bool
	}{
		{"url match", models.Record{URL: str("http://x/clientes/1")}, true},
		{"url match uppercase", models.Record{URL: str("/API/CLIENTES")}, true},
		{"title match without url", models.Record{Title: str("Lista de Clientes")}, true},
		{"title match with non-matching url", models.Record{URL: str("/customers"), Title: str("Clientes ativos")}, true},
		{"neither field matches", models.Record{URL: str("/orders"), Title: str("Pedidos")}, false},
		{"no fields", models.Record{}, false},
		{"type only", models.Record{Type: str("clientes")}, false},
		{"partial keyword", models.Record{URL: str("/cliente/1")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Match(&tt.rec))
		})
	}
}

func TestMatcher_Select_PreservesOrder(t *testing.T) {
	records := []*models.Record{
		{Type: str("GET"), URL: str("/clientes/2")},
		{Type: str("GET"), URL: str("/produtos")},
		{Type: str("POST"), Title: str("Novo cliente em CLIENTES")},
		{Type: str("DELETE"), URL: str("/clientes/1")},
	}

	got := NewMatcher().Select(records)

	assert.Equal(t, []*models.Record{records[0], records[2], records[3]}, got)
}

func TestMatcher_Select_NoMatches(t *testing.T) {
	got := NewMatcher().Select([]*models.Record{{URL: str("/x")}})
	assert.Empty(t, got)
}
