package strcase

import (
	"testing"
)

func TestCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"my_camel_string", "myCamelString"},
		{"my-camel-string", "myCamelString"},
		{"my.camel string", "myCamelString"},
		{"MyCamelString", "myCamelString"},
		{"value__with__runs", "valueWithRuns"},
		{"trailing_", "trailing"},
		{"already", "already"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := CamelCase(tt.input)
			if result != tt.expected {
				t.Errorf("CamelCase(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"MyCamelString", "my_camel_string"},
		{"myCamelString", "my_camel_string"},
		{"value1Thing", "value1_thing"},
		{"XMLParser", "xmlparser"},
		{"already_snake", "already_snake"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := SnakeCase(tt.input)
			if result != tt.expected {
				t.Errorf("SnakeCase(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestUnderscoreCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"myCamelCase", "my_camel_case"},
		{"getHTTPResponse", "get_httpresponse"},
		{"some-dashed value", "some_dashed_value"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := UnderscoreCase(tt.input)
			if result != tt.expected {
				t.Errorf("UnderscoreCase(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestDashCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"my_camelCase", "my-camel-case"},
		{"MyCamelString", "my-camel-string"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := DashCase(tt.input)
			if result != tt.expected {
				t.Errorf("DashCase(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	fn, ok := Lookup("snake")
	if !ok || fn("someKey") != "some_key" {
		t.Errorf("Lookup(snake) did not resolve SnakeCase")
	}

	fn, ok = Lookup("")
	if !ok || fn("someKey") != "someKey" {
		t.Errorf("Lookup(\"\") did not resolve NoOp")
	}

	if _, ok := Lookup("shouting"); ok {
		t.Errorf("Lookup(shouting) unexpectedly resolved")
	}
}
