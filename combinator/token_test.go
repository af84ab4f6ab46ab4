package combinator_test

import (
	"testing"

	"github.com/dhamidi/feast/combinator"
	"github.com/dhamidi/feast/input"
	"github.com/dhamidi/feast/pass"
	"github.com/google/go-cmp/cmp"
)

type bytePass = pass.Slice[byte]

func remaining(p bytePass) string {
	return string(p.Input().Tokens())
}

func TestTagMatch(t *testing.T) {
	p := pass.FromString("hello")

	got, next, err := combinator.Tag[bytePass]([]byte("hello"))(p)
	if err != nil {
		t.Fatalf("Tag(hello) error = %v", err)
	}
	if string(got.Tokens()) != "hello" {
		t.Errorf("matched = %q, want %q", got.Tokens(), "hello")
	}
	if remaining(next) != "" {
		t.Errorf("remaining = %q, want empty", remaining(next))
	}
}

func TestTagMismatch(t *testing.T) {
	p := pass.FromString("help!")

	_, next, err := combinator.Tag[bytePass]([]byte("hello"))(p)
	if !pass.IsUnexpected(err) {
		t.Fatalf("Tag(hello) on help! error = %v, want Unexpected", err)
	}
	if off, _ := pass.OffsetOf(err); off != 3 {
		t.Errorf("error offset = %d, want 3", off)
	}
	u, _ := pass.UnexpectedOf[byte](err)
	if tok, ok := u.Unexpected.Token(); !ok || tok != 'p' {
		t.Errorf("observed = %v, want 'p'", u.Unexpected)
	}
	if diff := cmp.Diff(input.ExpectTag([]byte("hello")), u.Expecting); diff != "" {
		t.Errorf("hint mismatch (-want +got):\n%s", diff)
	}
	if !next.Equal(p) {
		t.Errorf("failure pass = %v, want unconsumed %v", next, p)
	}
}

func TestTagIncomplete(t *testing.T) {
	tests := []struct {
		input string
		tag   string
		need  int
	}{
		{"", "a", 1},
		{"hel", "hello", 2},
		// Shorter than the tag, so the mismatch at 'p' is never examined.
		{"help", "hello", 1},
		{"xyz", "xyzzy", 2},
		// Running out of input wins even when a shorter prefix already differs.
		{"hx", "hello", 3},
	}

	for _, tt := range tests {
		t.Run(tt.tag+"/"+tt.input, func(t *testing.T) {
			p := pass.FromString(tt.input)
			_, next, err := combinator.Tag[bytePass]([]byte(tt.tag))(p)
			if !pass.IsIncomplete(err) {
				t.Fatalf("error = %v, want Incomplete", err)
			}
			if pass.IsUnexpected(err) {
				t.Error("short input reported as Unexpected")
			}
			if req, _ := pass.RequirementOf(err); req != input.NeedExact(tt.need) {
				t.Errorf("requirement = %v, want %v", req, input.NeedExact(tt.need))
			}
			if !next.Equal(p) {
				t.Errorf("failure pass = %v, want %v", next, p)
			}
		})
	}
}

func TestTagProperties(t *testing.T) {
	tags := []string{"", "a", "ab", "hello", "\x00\xff"}
	suffixes := []string{"", "x", " world", "hello"}

	for _, tag := range tags {
		for _, suffix := range suffixes {
			in := tag + suffix
			got, next, err := combinator.Tag[bytePass]([]byte(tag))(pass.FromString(in))
			if err != nil {
				t.Errorf("Tag(%q) on %q error = %v", tag, in, err)
				continue
			}
			if string(got.Tokens()) != tag {
				t.Errorf("Tag(%q) on %q matched %q", tag, in, got.Tokens())
			}
			if remaining(next) != suffix || next.Offset() != len(tag) {
				t.Errorf("Tag(%q) on %q left %q at %d, want %q at %d",
					tag, in, remaining(next), next.Offset(), suffix, len(tag))
			}
		}
	}

	for k := 0; k < 5; k++ {
		target := []byte("hello")
		in := []byte("hello!")
		in[k] = '#'
		_, next, err := combinator.Tag[bytePass](target)(pass.FromBytes(in))
		u, ok := pass.UnexpectedOf[byte](err)
		if !ok {
			t.Errorf("divergence at %d: error = %v, want Unexpected", k, err)
			continue
		}
		if tok, _ := u.Unexpected.Token(); tok != '#' || u.At != k {
			t.Errorf("divergence at %d: observed %v at %d", k, u.Unexpected, u.At)
		}
		if next.Offset() != 0 {
			t.Errorf("divergence at %d: consumed to %d", k, next.Offset())
		}
	}
}

func TestTagCustomTokens(t *testing.T) {
	type kind int
	const (
		ident kind = iota
		lparen
		rparen
	)

	p := pass.FromSlice([]kind{ident, lparen, rparen, ident})
	got, next, err := combinator.Tag[pass.Slice[kind]]([]kind{ident, lparen})(p)
	if err != nil {
		t.Fatalf("Tag error = %v", err)
	}
	if diff := cmp.Diff([]kind{ident, lparen}, got.Tokens()); diff != "" {
		t.Errorf("matched mismatch (-want +got):\n%s", diff)
	}
	if next.Offset() != 2 {
		t.Errorf("Offset() = %d, want 2", next.Offset())
	}

	_, next, err = combinator.Tag[pass.Slice[kind]]([]kind{rparen})(next)
	if err != nil || next.Offset() != 3 {
		t.Fatalf("Tag(rparen) = %v at %d, want match ending at 3", err, next.Offset())
	}

	_, failed, err := combinator.Tag[pass.Slice[kind]]([]kind{rparen})(next)
	u, ok := pass.UnexpectedOf[kind](err)
	if !ok {
		t.Fatalf("Tag(rparen) at ident error = %v, want Unexpected", err)
	}
	if tok, _ := u.Unexpected.Token(); tok != ident || u.At != 0 {
		t.Errorf("observed %v at %d, want ident at 0", u.Unexpected, u.At)
	}
	if !failed.Equal(next) {
		t.Errorf("failure pass = %v, want unconsumed %v", failed, next)
	}
}

func TestInRange(t *testing.T) {
	digit := combinator.InRange[bytePass](byte('0'), byte('9'))
	tests := []struct {
		input      string
		want       byte
		wantErr    func(error) bool
		wantRemain string
	}{
		{"1", '1', nil, ""},
		{"0x", '0', nil, "x"},
		{"9", '9', nil, ""},
		{"a1", 0, pass.IsUnexpected, "a1"},
		{"/", 0, pass.IsUnexpected, "/"},
		{":", 0, pass.IsUnexpected, ":"},
		{"", 0, pass.IsIncomplete, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, next, err := digit(pass.FromString(tt.input))
			if tt.wantErr != nil {
				if !tt.wantErr(err) {
					t.Errorf("error = %v, wrong kind", err)
				}
			} else if err != nil {
				t.Fatalf("error = %v", err)
			}
			if got != tt.want {
				t.Errorf("value = %q, want %q", got, tt.want)
			}
			if remaining(next) != tt.wantRemain {
				t.Errorf("remaining = %q, want %q", remaining(next), tt.wantRemain)
			}
		})
	}
}

func TestInRangeHint(t *testing.T) {
	_, _, err := combinator.InRange[bytePass](byte('a'), byte('f'))(pass.FromString("z"))
	u, ok := pass.UnexpectedOf[byte](err)
	if !ok {
		t.Fatalf("error = %v, want Unexpected", err)
	}
	if diff := cmp.Diff(input.ExpectRange(byte('a'), byte('f')), u.Expecting); diff != "" {
		t.Errorf("hint mismatch (-want +got):\n%s", diff)
	}
	want := "unexpected 'z' at offset 0, expecting 'a'..'f'"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestInRangeRunes(t *testing.T) {
	greek := combinator.InRange[pass.Slice[rune]]('α', 'ω')
	p := pass.FromSlice([]rune("λx"))

	got, next, err := greek(p)
	if err != nil || got != 'λ' || next.Offset() != 1 {
		t.Errorf("InRange(α, ω) on λx = %q, %v, %v", got, next, err)
	}
	if _, _, err := greek(next); !pass.IsUnexpected(err) {
		t.Errorf("InRange(α, ω) on x error = %v, want Unexpected", err)
	}
}

func TestInRangeEmptyRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("InRange(9, 0) did not panic")
		}
	}()
	combinator.InRange[bytePass](byte('9'), byte('0'))
}

func TestSatisfy(t *testing.T) {
	vowel := combinator.Satisfy[bytePass]("vowel", func(b byte) bool {
		switch b {
		case 'a', 'e', 'i', 'o', 'u':
			return true
		}
		return false
	})

	got, next, err := vowel(pass.FromString("ox"))
	if err != nil || got != 'o' || remaining(next) != "x" {
		t.Errorf("vowel on ox = %q, %q, %v", got, remaining(next), err)
	}

	_, next, err = vowel(next)
	u, ok := pass.UnexpectedOf[byte](err)
	if !ok || u.Expecting.Kind != input.HintNamed || u.Expecting.Name != "vowel" {
		t.Errorf("vowel on x error = %v, want Unexpected expecting vowel", err)
	}
	if next.Offset() != 1 {
		t.Errorf("failure offset = %d, want 1", next.Offset())
	}
}
