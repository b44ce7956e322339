package utils

import "testing"

func TestBytesToUint16(t *testing.T) {
	if got := BytesToUint16(0x12, 0x34); got != 0x1234 {
		t.Errorf("expected 0x1234, got 0x%04X", got)
	}
	if got := BytesToUint16(0x00, 0xFF); got != 0x00FF {
		t.Errorf("expected 0x00FF, got 0x%04X", got)
	}
}

func TestUint16ToBytes(t *testing.T) {
	upper, lower := Uint16ToBytes(0xABCD)
	if upper != 0xAB || lower != 0xCD {
		t.Errorf("expected 0xAB/0xCD, got 0x%02X/0x%02X", upper, lower)
	}
}

func TestBytesRoundTrip(t *testing.T) {
	for v := 0; v <= 0xFFFF; v++ {
		upper, lower := Uint16ToBytes(uint16(v))
		if got := BytesToUint16(upper, lower); got != uint16(v) {
			t.Fatalf("0x%04X round-tripped to 0x%04X", v, got)
		}
	}
}
