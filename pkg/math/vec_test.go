package math

import (
	"math"
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 12}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}

	zero := Vec3{}.Normalize()
	if zero != (Vec3{}) {
		t.Errorf("zero vector should normalize to itself, got %v", zero)
	}
}

func TestMat4Mul(t *testing.T) {
	// Identity is a multiplicative no-op
	m := Perspective(float32(math.Pi/4), 16.0/9.0, 0.1, 100)
	got := m.Mul(Identity())
	for i := 0; i < 16; i++ {
		if math.Abs(float64(got[i]-m[i])) > 0.0001 {
			t.Errorf("Mat4.Mul(Identity) element %d: got %v, want %v", i, got[i], m[i])
		}
	}
}

func TestMat4Scale(t *testing.T) {
	m := Scale(2)
	if m[0] != 2 || m[5] != 2 || m[10] != 2 || m[15] != 1 {
		t.Errorf("Scale(2) diagonal wrong: %v", m)
	}
}
