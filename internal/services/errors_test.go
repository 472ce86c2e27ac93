package services

import (
	"errors"
	"testing"
)

func TestWrapPreservesMarkerAndCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(ErrDescribe, "processor", "describe", "icons/arrow.svg", cause)

	if !errors.Is(err, ErrDescribe) {
		t.Fatal("wrapped error must match its marker")
	}
	if !errors.Is(err, cause) {
		t.Fatal("wrapped error must match its cause")
	}
	want := "describe error: processor: describe: icons/arrow.svg: connection refused"
	if err.Error() != want {
		t.Fatalf("error = %q, want %q", err.Error(), want)
	}
}

func TestWrapWithoutCause(t *testing.T) {
	err := Wrap(ErrWrite, "processor", "persist", "", nil)
	if !errors.Is(err, ErrWrite) {
		t.Fatal("wrapped error must match its marker")
	}
	if err.Error() != "write error: processor: persist" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestWrapNilMarkerDefaultsToConfiguration(t *testing.T) {
	err := Wrap(nil, "", "", "missing api key", nil)
	if !errors.Is(err, ErrConfiguration) {
		t.Fatal("nil marker should classify as configuration error")
	}
}

func TestKind(t *testing.T) {
	cases := []struct {
		marker error
		want   string
	}{
		{ErrRead, "read"},
		{ErrRasterize, "rasterize"},
		{ErrDescribe, "describe"},
		{ErrWrite, "write"},
		{ErrConfiguration, "configuration"},
		{errors.New("unclassified"), "internal"},
	}
	for _, tc := range cases {
		err := Wrap(tc.marker, "processor", "op", "", nil)
		if got := Kind(err); got != tc.want {
			t.Fatalf("Kind(%v) = %q, want %q", err, got, tc.want)
		}
	}
}
