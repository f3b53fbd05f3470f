package xmac

import (
	"errors"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	want := Addr{bytes: [6]byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66}}
	hexWant := Addr{bytes: [6]byte{0x1a, 0x2b, 0x3c, 0x4d, 0x5e, 0x6f}}

	tests := []struct {
		name    string
		input   string
		want    Addr
		wantErr error
	}{
		// 各类分隔符
		{"colon", "11:22:33:44:55:66", want, nil},
		{"dash", "11-22-33-44-55-66", want, nil},
		{"dot", "11.22.33.44.55.66", want, nil},
		{"underscore", "11_22_33_44_55_66", want, nil},
		{"space", "11 22 33 44 55 66", want, nil},
		{"tab", "11\t22\t33\t44\t55\t66", want, nil},
		{"bare", "112233445566", want, nil},

		// 大小写
		{"lower_hex", "1a-2b-3c-4d-5e-6f", hexWant, nil},
		{"upper_hex", "1A-2B-3C-4D-5E-6F", hexWant, nil},
		{"mixed_case", "1a:2B:3c:4D:5e:6F", hexWant, nil},
		{"upper_space", "AA BB CC 11 22 33", Addr{bytes: [6]byte{0xaa, 0xbb, 0xcc, 0x11, 0x22, 0x33}}, nil},
		{"all_f", "FFFFFFFFFFFF", Addr{bytes: [6]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}}, nil},
		{"zero", "00:00:00:00:00:00", Addr{}, nil},

		// 首尾空白
		{"leading_space", "   11:22:33:44:55:66", want, nil},
		{"trailing_newline", "11:22:33:44:55:66\r\n", want, nil},
		{"surrounding_tabs", "\t112233445566\t", want, nil},

		// 分隔符一致性
		{"mixed_colon_dash", "11:22-33:44-55:66", Addr{}, ErrInvalidFormat},
		{"partial_separator", "1a2b3c 4d5e6f", Addr{}, ErrInvalidFormat},
		{"missing_one_separator", "11:22:3344:55:66", Addr{}, ErrInvalidFormat},
		{"space_then_tab", "11 22\t33 44 55 66", Addr{}, ErrInvalidFormat},
		{"trailing_separator", "11:22:33:44:55:66:", Addr{}, ErrInvalidFormat},
		{"double_separator", "11::22::33::44::55::66", Addr{}, ErrInvalidFormat},

		// 长度与字符
		{"empty", "", Addr{}, ErrInvalidFormat},
		{"only_space", "   ", Addr{}, ErrInvalidFormat},
		{"too_short", "FFFFFFFFFFF", Addr{}, ErrInvalidFormat},
		{"too_long", "FFFFFFFFFFFFF", Addr{}, ErrInvalidFormat},
		{"eui64", "11:22:33:44:55:66:77:88", Addr{}, ErrInvalidFormat},
		{"invalid_hex", "gg:22:33:44:55:66", Addr{}, ErrInvalidFormat},
		{"invalid_hex_last", "11:22:33:44:55:6z", Addr{}, ErrInvalidFormat},
		{"wrong_separator", "11;22;33;44;55;66", Addr{}, ErrInvalidFormat},
		{"cisco_dot", "1122.3344.5566", Addr{}, ErrInvalidFormat},
		{"single_digits", "1:2:3:4:5:6", Addr{}, ErrInvalidFormat},
		{"unicode_space", "\u00a011:22:33:44:55:66", Addr{}, ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_ErrorMentionsInput(t *testing.T) {
	_, err := Parse("11:22-33:44-55:66")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), `"11:22-33:44-55:66"`) {
		t.Errorf("error %q should quote the input", err)
	}
}

func TestParse_NormalizedFormsAgree(t *testing.T) {
	inputs := []string{
		"aa:bb:cc:11:22:33",
		"AA-BB-CC-11-22-33",
		"aa.bb.cc.11.22.33",
		"aa_bb_cc_11_22_33",
		"AA BB CC 11 22 33",
		"AABBCC112233",
		" aabbcc112233 ",
	}
	want := MustParse("aa:bb:cc:11:22:33")
	for _, in := range inputs {
		got, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", in, err)
		}
		if got != want {
			t.Errorf("Parse(%q) = %v, want %v", in, got, want)
		}
		if got.String() != "aa:bb:cc:11:22:33" {
			t.Errorf("Parse(%q).String() = %q", in, got.String())
		}
	}
}

func TestMustParse(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		addr := MustParse("00:21:9b:07:20:74")
		if addr.String() != "00:21:9b:07:20:74" {
			t.Errorf("MustParse() = %v", addr)
		}
	})

	t.Run("panics", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("MustParse should panic on invalid input")
			}
		}()
		MustParse("not a mac")
	})
}

func TestIsSeparator(t *testing.T) {
	for _, c := range []byte{'-', ':', '.', '_', ' ', '\t', '\n', '\v', '\f', '\r'} {
		if !isSeparator(c) {
			t.Errorf("isSeparator(%q) = false, want true", c)
		}
	}
	for _, c := range []byte{';', ',', '/', 'a', '0', 0} {
		if isSeparator(c) {
			t.Errorf("isSeparator(%q) = true, want false", c)
		}
	}
}

func TestHexValue(t *testing.T) {
	tests := []struct {
		c    byte
		want int
	}{
		{'0', 0}, {'9', 9}, {'a', 10}, {'f', 15}, {'A', 10}, {'F', 15},
		{'g', -1}, {'G', -1}, {'/', -1}, {':', -1},
	}
	for _, tt := range tests {
		if got := hexValue(tt.c); got != tt.want {
			t.Errorf("hexValue(%q) = %d, want %d", tt.c, got, tt.want)
		}
	}
}
