package jsonutil

import "testing"

func TestStripFences(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"{\"a\":1}", "{\"a\":1}"},
		{"```json\n{\"a\":1}\n```", "{\"a\":1}"},
		{"```\n{\"a\":1}\n```", "{\"a\":1}"},
		{"  ```json\n{\"a\":1}\n```  ", "{\"a\":1}"},
		{"```json{\"a\":1}```", "{\"a\":1}"},
		{"plain text", "plain text"},
	}
	for _, c := range cases {
		if got := StripFences(c.in); got != c.want {
			t.Fatalf("StripFences(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestUnmarshalFlex_Direct(t *testing.T) {
	var v struct {
		A int `json:"a"`
	}
	if err := UnmarshalFlex([]byte(`{"a":2}`), &v); err != nil {
		t.Fatalf("direct unmarshal: %v", err)
	}
	if v.A != 2 {
		t.Fatalf("a = %d", v.A)
	}
}

func TestUnmarshalFlex_DoublyEncoded(t *testing.T) {
	var v struct {
		A int `json:"a"`
	}
	if err := UnmarshalFlex([]byte(`"{\"a\":3}"`), &v); err != nil {
		t.Fatalf("doubly encoded unmarshal: %v", err)
	}
	if v.A != 3 {
		t.Fatalf("a = %d", v.A)
	}
}

func TestUnmarshalFlex_GarbageKeepsOriginalError(t *testing.T) {
	var v map[string]any
	if err := UnmarshalFlex([]byte("not json"), &v); err == nil {
		t.Fatalf("expected error for garbage input")
	}
}

func TestMarshalNoEscape(t *testing.T) {
	out, err := MarshalNoEscape(map[string]string{"k": "<b>&</b>"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"k":"<b>&</b>"}` {
		t.Fatalf("unexpected output: %s", out)
	}
}
