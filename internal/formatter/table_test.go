package formatter

import (
	"strings"
	"testing"
)

func TestTable(t *testing.T) {
	tests := []struct {
		name     string
		header   []string
		rows     [][]string
		expected string
	}{
		{
			name:   "Basic table",
			header: []string{"Type", "URL"},
			rows:   [][]string{{"GET", "/clientes"}},
			expected: `
| Type | URL       |
| ---- | --------- |
| GET  | /clientes |
`,
		},
		{
			name:   "Minimum column width",
			header: []string{"A", "B"},
			rows:   [][]string{{"x", "y"}},
			expected: `
| A   | B   |
| --- | --- |
| x   | y   |
`,
		},
		{
			name:   "Short rows and trimmed cells",
			header: []string{"Type", "URL", "Headers"},
			rows:   [][]string{{"  POST ", "/a"}},
			expected: `
| Type | URL | Headers |
| ---- | --- | ------- |
| POST | /a  |         |
`,
		},
		{
			name:   "Pipes are escaped",
			header: []string{"Title"},
			rows:   [][]string{{"a|b"}},
			expected: `
| Title |
| ----- |
| a\|b  |
`,
		},
		{
			name:   "Newlines collapse inside cells",
			header: []string{"Title"},
			rows:   [][]string{{"Listar\n  clientes"}},
			expected: `
| Title           |
| --------------- |
| Listar clientes |
`,
		},
		{
			// 客(2) 户(2) 列(2) 表(2) = 8 display columns
			name:   "Mixed CJK and ASCII",
			header: []string{"Title"},
			rows:   [][]string{{"客户列表"}, {"Clientes"}},
			expected: `
| Title    |
| -------- |
| 客户列表 |
| Clientes |
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strings.Join(Table(tt.header, tt.rows), "\n")
			if got != strings.TrimSpace(tt.expected) {
				t.Errorf("Table() = \n%v\nwant \n%v", got, tt.expected)
			}
		})
	}
}

func TestTable_Empty(t *testing.T) {
	if got := Table(nil, nil); got != nil {
		t.Errorf("Table(nil, nil) = %v, want nil", got)
	}
}
