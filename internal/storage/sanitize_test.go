package storage

import "testing"

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"receipt.pdf", "receipt.pdf"},
		{"my receipt.pdf", "my_receipt.pdf"},
		{"../../etc/passwd", "passwd"},
		{"..\\..\\windows\\system32", "system32"},
		{"/var/tmp/evil.sh", "evil.sh"},
		{".hidden", "hidden"},
		{"...", "file"},
		{"", "file"},
		{"ümläut.txt", "_ml_ut.txt"},
		{"tax-return_2024.PDF", "tax-return_2024.PDF"},
		{"a b/c d.txt", "c_d.txt"},
	}

	for _, tc := range cases {
		if got := SanitizeFilename(tc.in); got != tc.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
