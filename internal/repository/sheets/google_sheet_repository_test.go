package sheets

import (
	"reflect"
	"testing"
)

func TestFirstColumn(t *testing.T) {
	tests := []struct {
		name    string
		columns [][]interface{}
		want    []string
	}{
		{"empty sheet", nil, nil},
		{"trimmed cells", [][]interface{}{{"Numéro", " M-1 ", "", 42}, {"ignored"}}, []string{"Numéro", "M-1", "", "42"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := firstColumn(tt.columns); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}
