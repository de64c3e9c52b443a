package wrapit

import (
	"reflect"
	"testing"
)

func TestFlagSingleCharBool(t *testing.T) {
	flag, ok := Flag("x", true)
	if !ok {
		t.Fatal("expected a rendered flag")
	}
	if flag != "-x" {
		t.Fatalf("expected -x, got %q", flag)
	}

	if _, ok := Flag("x", false); ok {
		t.Fatal("expected no flag for a false boolean")
	}
}

func TestFlagMultiCharBool(t *testing.T) {
	flag, ok := Flag("force", true)
	if !ok {
		t.Fatal("expected a rendered flag")
	}
	if flag != "--force" {
		t.Fatalf("expected --force, got %q", flag)
	}
}

func TestFlagScalarUnderscores(t *testing.T) {
	flag, ok := Flag("resource_dir", "/usr/lib")
	if !ok {
		t.Fatal("expected a rendered flag")
	}
	if flag != "--resource-dir=/usr/lib" {
		t.Fatalf("expected --resource-dir=/usr/lib, got %q", flag)
	}
}

func TestFlagSingleCharScalar(t *testing.T) {
	flag, ok := Flag("o", "out.jl")
	if !ok {
		t.Fatal("expected a rendered flag")
	}
	if flag != "-o=out.jl" {
		t.Fatalf("expected -o=out.jl, got %q", flag)
	}
}

func TestFlagsPreserveOrderAndSkipReturnCode(t *testing.T) {
	opts := []Option{
		{Name: "resource_dir", Value: "/usr/lib"},
		{Name: OptionReturnCode, Value: true},
		{Name: "v", Value: true},
		{Name: "quiet", Value: false},
		{Name: "n", Value: 3},
	}
	got := Flags(opts)
	want := []string{"--resource-dir=/usr/lib", "-v", "-n=3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestReturnCode(t *testing.T) {
	if ReturnCode(nil) {
		t.Fatal("expected false for no options")
	}
	if !ReturnCode([]Option{{Name: OptionReturnCode, Value: true}}) {
		t.Fatal("expected true for returncode=true")
	}
	if ReturnCode([]Option{{Name: OptionReturnCode, Value: false}}) {
		t.Fatal("expected false for returncode=false")
	}
	if !ReturnCode([]Option{{Name: OptionReturnCode, Value: "true"}}) {
		t.Fatal("expected true for string coercion")
	}
}
