package weburl

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func FuzzParse(f *testing.F) {
	f.Add("https://some_host.a.b.c:123/some/path?b=2&a=1#frag")
	f.Add("http://example.com/")
	f.Add("ws://h/a%20b?k%3Dk=v%26v")
	f.Add("wss://a.b:0/x#")
	f.Add("http://h/p#f?notquery")
	f.Add("http://h/x?a=1&&b=2")
	f.Add("http://h/x?flag")
	f.Add("https://h/%2F%25%3F")
	f.Add("http://1a.com/")
	f.Add("http://example.com:99999/x")
	f.Add("gopher://x/")

	f.Fuzz(func(t *testing.T, input string) {
		u, err := Parse(input)
		if err != nil {
			t.Skip()
		}

		s := u.String()
		again, err := Parse(s)
		if err != nil {
			t.Fatalf("failed to parse formatted form %q: %s", s, err)
		}

		if diff := cmp.Diff(*u, *again); diff != "" {
			t.Logf("input: %q", input)
			t.Logf("1st parse: %#v", u)
			t.Logf("formatted: %q", s)
			t.Logf("2nd parse: %#v", again)
			t.Errorf("first parse and reparse differ\n%s", diff)
		}

		if s2 := again.String(); s2 != s {
			t.Errorf("formatting is not stable: %q then %q", s, s2)
		}
	})
}
