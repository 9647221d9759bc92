package core

import "testing"

func TestItoa(t *testing.T) {
	testCases := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{7, "7"},
		{65040, "65040"},
		{-122, "-122"},
	}
	for _, tc := range testCases {
		if got := itoa(tc.n); got != tc.want {
			t.Errorf("itoa(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}

	if got := u64toa(1 << 40); got != "1099511627776" {
		t.Errorf("u64toa(1<<40) = %q", got)
	}
	if got := u64toa(^uint64(0)); got != "18446744073709551615" {
		t.Errorf("u64toa(max) = %q", got)
	}
	if got := utoa(8000000); got != "8000000" {
		t.Errorf("utoa(8000000) = %q", got)
	}
}
