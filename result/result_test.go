package result

import (
	"bytes"
	"testing"
)

func TestSerializeMatchesWireFormat(t *testing.T) {
	var r Result
	r.Sections[Columns] = Section{Content: []byte("1"), Placeholders: nil}
	r.Sections[Where] = Section{Content: []byte("a = ?"), Placeholders: []int{4}}

	var buf bytes.Buffer
	if err := Serialize(&buf, &r); err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	want := "columns 0 1 1\nwhere 1 4 5 a = ?\n"
	if got := buf.String(); got != want {
		t.Fatalf("Serialize() = %q, want %q", got, want)
	}
}

func TestSerializeOmitsLimit(t *testing.T) {
	var r Result
	r.Sections[Columns] = Section{Content: []byte("1")}
	r.Sections[Limit] = Section{Content: []byte("? OFFSET ?"), Placeholders: []int{0, 9}}
	r.Sections[Tables] = Section{Content: []byte("t")}

	var buf bytes.Buffer
	if err := Serialize(&buf, &r); err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	if bytes.Contains(buf.Bytes(), []byte("limit")) {
		t.Fatalf("Serialize() included limit: %q", buf.String())
	}
	want := "columns 0 1 1\ntables 0 1 t\n"
	if got := buf.String(); got != want {
		t.Fatalf("Serialize() = %q, want %q", got, want)
	}
}

func TestSerializeSkipsUnpopulatedSections(t *testing.T) {
	var r Result
	r.Sections[Columns] = Section{Content: []byte("*")}

	var buf bytes.Buffer
	if err := Serialize(&buf, &r); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if got, want := buf.String(), "columns 0 1 *\n"; got != want {
		t.Fatalf("Serialize() = %q, want %q", got, want)
	}
}

func TestStatusMessage(t *testing.T) {
	cases := []struct {
		status Status
		want   string
	}{
		{OK, "PARSE_OK"},
		{InvalidArgument, "PARSE_ERROR_INVALID_ARGUMENT"},
		{InvalidSyntax, "PARSE_INVALID_SYNTAX"},
		{Status(99), "UNKNOWN"},
	}
	for _, c := range cases {
		if got := c.status.Message(); got != c.want {
			t.Errorf("Status(%d).Message() = %q, want %q", c.status, got, c.want)
		}
	}
}
