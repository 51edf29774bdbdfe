package literal

import (
	"strings"
	"testing"
	"time"
)

// benchmarkValues returns a set of values for targeted benchmarking
func benchmarkValues() map[string]any {
	ordered := NewOrderedMap()
	for _, k := range []string{"a", "b", "c", "d"} {
		ordered.Set(k, k)
	}

	shows := make([]show, 100)
	for i := range shows {
		shows[i] = show{ID: i, Name: "show"}
	}

	return map[string]any{
		"Int":          42,
		"ShortString":  "up",
		"LongString":   strings.Repeat("escape \"me\"\n", 100),
		"Time":         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		"IntList":      []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		"OrderedMap":   ordered,
		"Composite":    showFilter{Title: "Up", Genre: genreDrama, Released: date{2009, 5, 29}},
		"CompositeBig": showFilter{Title: "Up", Shows: shows, Released: date{2009, 5, 29}},
	}
}

// BenchmarkSerialize benchmarks the reflection serializer with various values
func BenchmarkSerialize(b *testing.B) {
	typ, fn := dateCoercion()
	serializer := NewSerializer(Coercions{typ: fn})

	for name, value := range benchmarkValues() {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := serializer.Serialize(value); err != nil {
					b.Fatalf("Failed to serialize: %v", err)
				}
			}
		})
	}
}

// BenchmarkSize reports the literal size for each value
func BenchmarkSize(b *testing.B) {
	typ, fn := dateCoercion()
	serializer := NewSerializer(Coercions{typ: fn})

	for name, value := range benchmarkValues() {
		b.Run(name, func(b *testing.B) {
			out, err := serializer.Serialize(value)
			if err != nil {
				b.Fatalf("Failed to serialize: %v", err)
			}
			b.ReportMetric(float64(len(out)), "bytes")
			for i := 0; i < b.N; i++ {
				_ = out
			}
		})
	}
}
