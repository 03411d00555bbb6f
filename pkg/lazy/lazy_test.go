package lazy

import (
	"errors"
	"testing"
)

func TestIteratorDrain(t *testing.T) {
	tests := []struct {
		name   string
		values []int
	}{
		{name: "Empty", values: nil},
		{name: "Single", values: []int{7}},
		{name: "Several", values: []int{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := New(FromSlice(tt.values))

			var got []int
			for it.HasNext() {
				v, err := it.Next()
				if err != nil {
					t.Fatalf("Next() error = %v", err)
				}
				got = append(got, v)
			}

			if len(got) != len(tt.values) {
				t.Fatalf("drained %d values, want %d", len(got), len(tt.values))
			}
			for i, v := range tt.values {
				if got[i] != v {
					t.Errorf("got[%d] = %d, want %d", i, got[i], v)
				}
			}
		})
	}
}

func TestIteratorEmptyExhaustedImmediately(t *testing.T) {
	it := New(FromSlice[string](nil))
	if it.HasNext() {
		t.Error("HasNext() = true for empty source")
	}
}

func TestIteratorNextPastEnd(t *testing.T) {
	it := New(FromSlice([]int{42}))

	if _, err := it.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if it.HasNext() {
		t.Error("HasNext() = true after draining single value")
	}
	if _, err := it.Next(); !errors.Is(err, ErrExhausted) {
		t.Errorf("Next() past end: error = %v, want ErrExhausted", err)
	}
}

func TestHasNextDoesNotConsume(t *testing.T) {
	pulls := 0
	src := func() (int, bool) {
		pulls++
		if pulls > 3 {
			return 0, false
		}
		return pulls, true
	}

	it := New(src)
	if pulls != 1 {
		t.Fatalf("construction pulled %d values, want 1", pulls)
	}

	for i := 0; i < 10; i++ {
		it.HasNext()
	}
	if pulls != 1 {
		t.Errorf("HasNext consumed from source: %d pulls, want 1", pulls)
	}

	v, err := it.Next()
	if err != nil || v != 1 {
		t.Errorf("Next() = %d, %v, want 1, nil", v, err)
	}
}
