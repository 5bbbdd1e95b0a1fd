package patricia

import (
	"testing"
)

func TestKeyPrefix(t *testing.T) {
	type args struct {
		key uint64
		bit uint8
	}
	tests := []struct {
		name string
		args args
		want uint64
	}{
		{"bit 0 masks everything", args{0xFFFFFFFFFFFFFFFF, 0}, 0},
		{"bit 1 keeps bit 0", args{0b1011, 1}, 0b1},
		{"bit 3 keeps low three", args{0b1011, 3}, 0b011},
		{"bit 63 keeps all but msb", args{0xFFFFFFFFFFFFFFFF, 63}, 0x7FFFFFFFFFFFFFFF},
		{"zero key", args{0, 63}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keyPrefix(tt.args.key, tt.args.bit); got != tt.want {
				t.Errorf("keyPrefix() = %#x, want %#x", got, tt.want)
			}
		})
	}
}

func TestGoesLeft(t *testing.T) {
	type args struct {
		key uint64
		bit uint8
	}
	tests := []struct {
		name string
		args args
		want bool
	}{
		{"bit 0 clear", args{0b10, 0}, true},
		{"bit 0 set", args{0b11, 0}, false},
		{"bit 63 clear", args{0x7FFFFFFFFFFFFFFF, 63}, true},
		{"bit 63 set", args{0x8000000000000000, 63}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := goesLeft(tt.args.key, tt.args.bit); got != tt.want {
				t.Errorf("goesLeft() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBranchingBit(t *testing.T) {
	tests := []struct {
		name string
		diff uint64
		want uint8
	}{
		{"1 -> 0", 1, 0},
		{"2 -> 1", 2, 1},
		{"3 -> 0", 3, 0},
		{"0b1100 -> 2", 0b1100, 2},
		{"msb only -> 63", 0x8000000000000000, 63},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := branchingBit(tt.diff); got != tt.want {
				t.Errorf("branchingBit(%#x) = %d, want %d", tt.diff, got, tt.want)
			}
		})
	}
}

func TestBranchingBitMatchesKeyDivergence(t *testing.T) {
	// For any two distinct keys, the branching bit is below 64 and the keys
	// agree on every bit strictly below it.
	pairs := [][2]uint64{
		{0, 1},
		{1, 2},
		{123, 124},
		{0xDEADBEEF, 0xDEADBEEE},
		{0, 0x8000000000000000},
	}
	for _, p := range pairs {
		diff := p[0] ^ p[1]
		bit := branchingBit(diff)
		if keyPrefix(p[0], bit) != keyPrefix(p[1], bit) {
			t.Errorf("keys %#x and %#x disagree below branching bit %d", p[0], p[1], bit)
		}
		if goesLeft(p[0], bit) == goesLeft(p[1], bit) {
			t.Errorf("keys %#x and %#x route the same way at branching bit %d", p[0], p[1], bit)
		}
	}
}
