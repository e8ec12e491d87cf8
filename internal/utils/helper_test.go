package utils

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseIDs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: nil,
		},
		{
			name:     "only separators",
			input:    " , ,\n\t",
			expected: nil,
		},
		{
			name:     "single id",
			input:    "00040534",
			expected: []string{"00040534"},
		},
		{
			name:     "comma separated",
			input:    "00040534,00070353,660978",
			expected: []string{"00040534", "00070353", "660978"},
		},
		{
			name:     "comma and space separated",
			input:    "00040534, 00070353 ,  660978",
			expected: []string{"00040534", "00070353", "660978"},
		},
		{
			name:     "whitespace separated",
			input:    "716552 00836244\t00836816\n00837285",
			expected: []string{"716552", "00836244", "00836816", "00837285"},
		},
		{
			name:     "ids with underscores are kept whole",
			input:    "00838511_00838525,,00040534",
			expected: []string{"00838511_00838525", "00040534"},
		},
		{
			name:     "order and duplicates preserved",
			input:    "b,a,b",
			expected: []string{"b", "a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseIDs(tt.input)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("ParseIDs(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestReadIDsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ids.txt")
	content := "# sample documents\n00040534\n00070353, 00093726\n\n   \n# 660978\n716552\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	ids, err := ReadIDsFile(path)
	if err != nil {
		t.Fatalf("ReadIDsFile() unexpected error: %v", err)
	}

	expected := []string{"00040534", "00070353", "00093726", "716552"}
	if !reflect.DeepEqual(ids, expected) {
		t.Errorf("ReadIDsFile() = %q, want %q", ids, expected)
	}
}

func TestReadIDsFileMissing(t *testing.T) {
	if _, err := ReadIDsFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("ReadIDsFile() should fail for a missing file")
	}
}

func TestMergeIDs(t *testing.T) {
	tests := []struct {
		name     string
		ids      []string
		extra    []string
		expected []string
	}{
		{"nothing to merge", []string{"a"}, nil, []string{"a"}},
		{"into empty", nil, []string{"a", "b"}, []string{"a", "b"}},
		{"skips known ids", []string{"a", "b"}, []string{"b", "c"}, []string{"a", "b", "c"}},
		{"skips repeated extras", []string{"a"}, []string{"c", "c"}, []string{"a", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MergeIDs(tt.ids, tt.extra...)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("MergeIDs(%q, %q) = %q, want %q", tt.ids, tt.extra, result, tt.expected)
			}
		})
	}
}
