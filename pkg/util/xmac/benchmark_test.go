package xmac

import "testing"

func BenchmarkParse(b *testing.B) {
	inputs := []struct {
		name  string
		input string
	}{
		{"colon", "aa:bb:cc:dd:ee:ff"},
		{"space", "AA BB CC DD EE FF"},
		{"bare", "aabbccddeeff"},
		{"invalid", "aa:bb-cc:dd-ee:ff"},
	}

	for _, tc := range inputs {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_, _ = Parse(tc.input)
			}
		})
	}
}

func BenchmarkString(b *testing.B) {
	addr := MustParse("aa:bb:cc:dd:ee:ff")
	b.ReportAllocs()
	for b.Loop() {
		_ = addr.String()
	}
}

func BenchmarkFromRaw(b *testing.B) {
	raw := []byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}
	b.ReportAllocs()
	for b.Loop() {
		_, _ = FromRaw(raw)
	}
}
