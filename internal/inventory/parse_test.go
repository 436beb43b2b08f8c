package inventory

import "testing"

func TestParseItem(t *testing.T) {
	tests := []struct {
		line   string
		name   string
		amount float64
		unit   string
	}{
		{"2 cups flour", "flour", 2, "cups"},
		{"100ml milk", "milk", 100, "ml"},
		{"2.5 kg potatoes", "potatoes", 2.5, "kg"},
		{"1,5 l water", "water", 1.5, "l"},
		{"3 eggs", "eggs", 3, ""},
		{"3eggs", "eggs", 3, ""},
		{"1 pinch salt", "salt", 1, "pinch"},
		{"2 tablespoons olive oil", "olive oil", 2, "tbsp"},
		{"flour", "flour", 1, ""},
		{"  Tomato Sauce  ", "Tomato Sauce", 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := ParseItem(tt.line)
			if !ok {
				t.Fatalf("ParseItem(%q) returned not ok", tt.line)
			}
			if got.Name != tt.name {
				t.Errorf("name: got %q, want %q", got.Name, tt.name)
			}
			if got.Amount != tt.amount {
				t.Errorf("amount: got %v, want %v", got.Amount, tt.amount)
			}
			if got.Unit != tt.unit {
				t.Errorf("unit: got %q, want %q", got.Unit, tt.unit)
			}
			if got.ID == "" {
				t.Error("parsed item should get an id")
			}
		})
	}
}

func TestParseItemRejectsEmptyLines(t *testing.T) {
	for _, line := range []string{"", "   ", "\t"} {
		if _, ok := ParseItem(line); ok {
			t.Errorf("ParseItem(%q) should return not ok", line)
		}
	}
}
