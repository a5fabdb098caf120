package outcome

import (
	"testing"

	"github.com/ib-77/adt/pkg/optional"
)

func TestToOption(t *testing.T) {
	t.Parallel()
	if o := Success[int, string](3).ToOption(); !optional.Contains(o, 3) {
		t.Fatalf("expected Some(3), got %v", o)
	}
	if o := Failure[int]("e").ToOption(); !o.IsAbsent() {
		t.Fatalf("expected None for failure, got %v", o)
	}
}

func TestToFailureOption(t *testing.T) {
	t.Parallel()
	if o := Failure[int]("e").ToFailureOption(); !optional.Contains(o, "e") {
		t.Fatalf("expected Some(e), got %v", o)
	}
	if o := Success[int, string](3).ToFailureOption(); !o.IsAbsent() {
		t.Fatalf("expected None for success, got %v", o)
	}
}

func TestOkOr(t *testing.T) {
	t.Parallel()
	if r := OkOr(optional.Present(3), "missing"); !Contains(r, 3) {
		t.Fatalf("expected Ok(3), got %v", r)
	}
	if r := OkOr(optional.Absent[int](), "missing"); !ContainsFailure(r, "missing") {
		t.Fatalf("expected Err(missing), got %v", r)
	}
}

func TestOkOrElse_LazyOnlyWhenAbsent(t *testing.T) {
	t.Parallel()
	called := false
	r := OkOrElse(optional.Present(3), func() string { called = true; return "missing" })
	if !Contains(r, 3) || called {
		t.Fatalf("expected Ok(3) without invoking errFn, got: %v, called=%v", r, called)
	}
	if r := OkOrElse(optional.Absent[int](), func() string { return "missing" }); !ContainsFailure(r, "missing") {
		t.Fatalf("expected Err(missing), got %v", r)
	}
}

func TestTranspose_ThreeShapes(t *testing.T) {
	t.Parallel()
	if o := Transpose(Success[optional.Optional[int], string](optional.Absent[int]())); !o.IsAbsent() {
		t.Fatalf("Ok(None): expected None, got %v", o)
	}

	o := Transpose(Success[optional.Optional[int], string](optional.Present(7)))
	if !o.IsPresent() || !Contains(o.Unwrap(), 7) {
		t.Fatalf("Ok(Some(7)): expected Some(Ok(7)), got %v", o)
	}

	o = Transpose(Failure[optional.Optional[int]]("e"))
	if !o.IsPresent() || !ContainsFailure(o.Unwrap(), "e") {
		t.Fatalf("Err(e): expected Some(Err(e)), got %v", o)
	}
}

func TestTranspose_RoundTrip(t *testing.T) {
	t.Parallel()
	shapes := []Outcome[optional.Optional[int], string]{
		Success[optional.Optional[int], string](optional.Absent[int]()),
		Success[optional.Optional[int], string](optional.Present(7)),
		Failure[optional.Optional[int]]("e"),
	}
	for _, x := range shapes {
		back := TransposeOption(Transpose(x))
		if back.IsSuccess() != x.IsSuccess() {
			t.Fatalf("round trip changed the tag: %v became %v", x, back)
		}
		if x.IsSuccess() {
			want, got := x.Unwrap(), back.Unwrap()
			if want.IsPresent() != got.IsPresent() ||
				(want.IsPresent() && want.Unwrap() != got.Unwrap()) {
				t.Fatalf("round trip changed the payload: %v became %v", x, back)
			}
		} else if back.UnwrapFailure() != x.UnwrapFailure() {
			t.Fatalf("round trip changed the failure: %v became %v", x, back)
		}
	}
}
